package services

import (
	"errors"
	"testing"

	"github.com/Archismita-Das/HealthifyMe/models"
	"github.com/Archismita-Das/HealthifyMe/repositories"
)

func newFoodService(t *testing.T) *FoodService {
	t.Helper()
	db := newTestDB(t)
	foods := []models.Food{
		{FoodName: "Paneer Tikka", Calories: 270, Type: "protein", Cuisine: "Indian", DietCategory: "vegetarian"},
		{FoodName: "Dal Tadka", Calories: 180, Type: "protein", Cuisine: "Indian", DietCategory: "vegan"},
		{FoodName: "Grilled Chicken Breast", Calories: 165, Type: "protein", Cuisine: "Global", DietCategory: "non-veg"},
		{FoodName: "Mixed Salad", Calories: 55, Type: "vegetable", Cuisine: "Global", DietCategory: "vegan"},
	}
	if err := db.Create(&foods).Error; err != nil {
		t.Fatalf("seed foods: %v", err)
	}
	return NewFoodService(repositories.NewFoodRepository(db))
}

func TestFoodSearchIsCaseInsensitiveSubstring(t *testing.T) {
	svc := newFoodService(t)

	foods, err := svc.Search("PANEER")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(foods) != 1 || foods[0].FoodName != "Paneer Tikka" {
		t.Errorf("Search(PANEER) = %v, want the Paneer Tikka entry", foods)
	}

	var vErr *ValidationError
	if _, err := svc.Search("   "); !errors.As(err, &vErr) {
		t.Errorf("blank search: error = %v, want ValidationError", err)
	}
}

func TestFoodGetNotFound(t *testing.T) {
	svc := newFoodService(t)

	if _, err := svc.Get(9999); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(9999) error = %v, want ErrNotFound", err)
	}
}

func TestFoodFilterPrecedence(t *testing.T) {
	svc := newFoodService(t)
	max := 200

	cases := []struct {
		name   string
		filter FoodFilter
		want   int
	}{
		{"cuisine+diet+maxCalories", FoodFilter{Cuisine: "Indian", Diet: "vegan", MaxCalories: &max}, 1},
		{"diet wins over cuisine alone", FoodFilter{Diet: "vegan"}, 2},
		{"cuisine only", FoodFilter{Cuisine: "Indian"}, 2},
		{"type only", FoodFilter{Type: "vegetable"}, 1},
		{"maxCalories only", FoodFilter{MaxCalories: &max}, 3},
		{"no filters returns all", FoodFilter{}, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			foods, err := svc.Filter(tc.filter)
			if err != nil {
				t.Fatalf("Filter failed: %v", err)
			}
			if len(foods) != tc.want {
				t.Errorf("len(foods) = %d, want %d", len(foods), tc.want)
			}
		})
	}
}

func TestFoodCatalogStats(t *testing.T) {
	svc := newFoodService(t)

	stats, err := svc.Stats()
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	want := CatalogStats{TotalFoods: 4, IndianFoods: 2, GlobalFoods: 2, VeganFoods: 2, VegetarianFoods: 1}
	if *stats != want {
		t.Errorf("stats = %+v, want %+v", *stats, want)
	}
}
