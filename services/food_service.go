package services

import (
	"errors"
	"strings"

	"github.com/Archismita-Das/HealthifyMe/models"
	"github.com/Archismita-Das/HealthifyMe/repositories"

	"gorm.io/gorm"
)

// FoodService reads the food catalog. Pure pass-through queries; the
// catalog is seeded at startup and never modified through the API.
type FoodService struct {
	repo *repositories.FoodRepository
}

func NewFoodService(repo *repositories.FoodRepository) *FoodService {
	return &FoodService{repo: repo}
}

// FoodFilter narrows the catalog. Nil/empty fields are ignored;
// precedence when several are set: cuisine+diet+maxCalories together,
// then diet, cuisine, type, maxCalories alone.
type FoodFilter struct {
	Cuisine     string
	Diet        string
	Type        string
	MaxCalories *int
}

// CatalogStats summarizes the seeded catalog.
type CatalogStats struct {
	TotalFoods      int64 `json:"totalFoods"`
	IndianFoods     int64 `json:"indianFoods"`
	GlobalFoods     int64 `json:"globalFoods"`
	VeganFoods      int64 `json:"veganFoods"`
	VegetarianFoods int64 `json:"vegetarianFoods"`
}

func (s *FoodService) List() ([]models.Food, error) {
	foods, err := s.repo.FindAll()
	if err != nil {
		return nil, storageError("list foods", err)
	}
	return foods, nil
}

func (s *FoodService) Get(id uint) (*models.Food, error) {
	food, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, storageError("get food", err)
	}
	return food, nil
}

func (s *FoodService) Search(name string) ([]models.Food, error) {
	if strings.TrimSpace(name) == "" {
		return nil, validationErrorf("Search name is required")
	}
	foods, err := s.repo.FindByNameContaining(name)
	if err != nil {
		return nil, storageError("search foods", err)
	}
	return foods, nil
}

func (s *FoodService) ByCuisine(cuisine string) ([]models.Food, error) {
	foods, err := s.repo.FindByCuisine(cuisine)
	if err != nil {
		return nil, storageError("foods by cuisine", err)
	}
	return foods, nil
}

func (s *FoodService) Filter(f FoodFilter) ([]models.Food, error) {
	var (
		foods []models.Food
		err   error
	)
	switch {
	case f.Cuisine != "" && f.Diet != "" && f.MaxCalories != nil:
		foods, err = s.repo.FindByCuisineAndDietAndCaloriesLessThan(f.Cuisine, f.Diet, *f.MaxCalories)
	case f.Diet != "":
		foods, err = s.repo.FindByDietCategory(f.Diet)
	case f.Cuisine != "":
		foods, err = s.repo.FindByCuisine(f.Cuisine)
	case f.Type != "":
		foods, err = s.repo.FindByType(f.Type)
	case f.MaxCalories != nil:
		foods, err = s.repo.FindByCaloriesLessThan(*f.MaxCalories)
	default:
		foods, err = s.repo.FindAll()
	}
	if err != nil {
		return nil, storageError("filter foods", err)
	}
	return foods, nil
}

func (s *FoodService) Stats() (*CatalogStats, error) {
	stats := &CatalogStats{}
	var err error
	if stats.TotalFoods, err = s.repo.Count(); err != nil {
		return nil, storageError("count foods", err)
	}
	if stats.IndianFoods, err = s.repo.CountByCuisine("Indian"); err != nil {
		return nil, storageError("count foods", err)
	}
	if stats.GlobalFoods, err = s.repo.CountByCuisine("Global"); err != nil {
		return nil, storageError("count foods", err)
	}
	if stats.VeganFoods, err = s.repo.CountByDietCategory("vegan"); err != nil {
		return nil, storageError("count foods", err)
	}
	if stats.VegetarianFoods, err = s.repo.CountByDietCategory("vegetarian"); err != nil {
		return nil, storageError("count foods", err)
	}
	return stats, nil
}
