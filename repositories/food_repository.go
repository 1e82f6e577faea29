package repositories

import (
	"strings"

	"github.com/Archismita-Das/HealthifyMe/models"

	"gorm.io/gorm"
)

// FoodRepository reads the food catalog. The catalog is seeded at
// startup and never written through the API.
type FoodRepository struct{ db *gorm.DB }

func NewFoodRepository(db *gorm.DB) *FoodRepository { return &FoodRepository{db: db} }

func (r *FoodRepository) FindAll() ([]models.Food, error) {
	var foods []models.Food
	err := r.db.Find(&foods).Error
	return foods, err
}

func (r *FoodRepository) FindByID(id uint) (*models.Food, error) {
	var food models.Food
	if err := r.db.First(&food, id).Error; err != nil {
		return nil, err
	}
	return &food, nil
}

// FindByNameContaining does a case-insensitive substring match.
func (r *FoodRepository) FindByNameContaining(name string) ([]models.Food, error) {
	var foods []models.Food
	pattern := "%" + strings.ToLower(name) + "%"
	err := r.db.
		Where("LOWER(food_name) LIKE ?", pattern).
		Find(&foods).Error
	return foods, err
}

func (r *FoodRepository) FindByCuisine(cuisine string) ([]models.Food, error) {
	var foods []models.Food
	err := r.db.Where("cuisine = ?", cuisine).Find(&foods).Error
	return foods, err
}

func (r *FoodRepository) FindByDietCategory(diet string) ([]models.Food, error) {
	var foods []models.Food
	err := r.db.Where("diet_category = ?", diet).Find(&foods).Error
	return foods, err
}

func (r *FoodRepository) FindByType(foodType string) ([]models.Food, error) {
	var foods []models.Food
	err := r.db.Where("type = ?", foodType).Find(&foods).Error
	return foods, err
}

func (r *FoodRepository) FindByCaloriesLessThan(maxCalories int) ([]models.Food, error) {
	var foods []models.Food
	err := r.db.Where("calories < ?", maxCalories).Find(&foods).Error
	return foods, err
}

func (r *FoodRepository) FindByCuisineAndDietAndCaloriesLessThan(cuisine, diet string, maxCalories int) ([]models.Food, error) {
	var foods []models.Food
	err := r.db.
		Where("cuisine = ? AND diet_category = ? AND calories < ?", cuisine, diet, maxCalories).
		Find(&foods).Error
	return foods, err
}

func (r *FoodRepository) Count() (int64, error) {
	var n int64
	err := r.db.Model(&models.Food{}).Count(&n).Error
	return n, err
}

func (r *FoodRepository) CountByCuisine(cuisine string) (int64, error) {
	var n int64
	err := r.db.Model(&models.Food{}).Where("cuisine = ?", cuisine).Count(&n).Error
	return n, err
}

func (r *FoodRepository) CountByDietCategory(diet string) (int64, error) {
	var n int64
	err := r.db.Model(&models.Food{}).Where("diet_category = ?", diet).Count(&n).Error
	return n, err
}
