package config

import (
	"log"

	"github.com/Archismita-Das/HealthifyMe/models"

	"gorm.io/gorm"
)

func floatPtr(v float64) *float64 { return &v }

// SeedFoods loads a starter catalog on first boot. The catalog is
// read-only through the API, so an already-populated table is left
// alone.
func SeedFoods(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Food{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	foods := []models.Food{
		{FoodName: "Banana", Calories: 105, Type: "fruit", Cuisine: "Common", DietCategory: "vegan", Protein: floatPtr(1.3), Carbs: floatPtr(27.0), Fats: floatPtr(0.4)},
		{FoodName: "Apple", Calories: 95, Type: "fruit", Cuisine: "Common", DietCategory: "vegan", Protein: floatPtr(0.5), Carbs: floatPtr(25.0), Fats: floatPtr(0.3)},
		{FoodName: "Boiled Egg", Calories: 78, Type: "protein", Cuisine: "Common", DietCategory: "non-veg", Protein: floatPtr(6.3), Carbs: floatPtr(0.6), Fats: floatPtr(5.3)},
		{FoodName: "Grilled Chicken Breast", Calories: 165, Type: "protein", Cuisine: "Global", DietCategory: "non-veg", Protein: floatPtr(31.0), Carbs: floatPtr(0.0), Fats: floatPtr(3.6)},
		{FoodName: "Paneer Tikka", Calories: 270, Type: "protein", Cuisine: "Indian", DietCategory: "vegetarian", Protein: floatPtr(18.0), Carbs: floatPtr(8.0), Fats: floatPtr(19.0)},
		{FoodName: "Dal Tadka", Calories: 180, Type: "protein", Cuisine: "Indian", DietCategory: "vegan", Protein: floatPtr(9.0), Carbs: floatPtr(27.0), Fats: floatPtr(4.0)},
		{FoodName: "Chapati", Calories: 104, Type: "carb", Cuisine: "Indian", DietCategory: "vegan", Protein: floatPtr(3.0), Carbs: floatPtr(18.0), Fats: floatPtr(2.5)},
		{FoodName: "Steamed Rice", Calories: 205, Type: "carb", Cuisine: "Common", DietCategory: "vegan", Protein: floatPtr(4.3), Carbs: floatPtr(45.0), Fats: floatPtr(0.4)},
		{FoodName: "Oatmeal", Calories: 150, Type: "carb", Cuisine: "Global", DietCategory: "vegan", Protein: floatPtr(5.0), Carbs: floatPtr(27.0), Fats: floatPtr(2.5)},
		{FoodName: "Greek Yogurt", Calories: 100, Type: "dairy", Cuisine: "Global", DietCategory: "vegetarian", Protein: floatPtr(17.0), Carbs: floatPtr(6.0), Fats: floatPtr(0.7)},
		{FoodName: "Palak Paneer", Calories: 290, Type: "vegetable", Cuisine: "Indian", DietCategory: "vegetarian", Protein: floatPtr(14.0), Carbs: floatPtr(10.0), Fats: floatPtr(22.0)},
		{FoodName: "Mixed Salad", Calories: 55, Type: "vegetable", Cuisine: "Global", DietCategory: "vegan", Protein: floatPtr(2.0), Carbs: floatPtr(10.0), Fats: floatPtr(0.5)},
	}
	if err := db.Create(&foods).Error; err != nil {
		return err
	}
	log.Printf("seeded food catalog with %d items", len(foods))
	return nil
}
