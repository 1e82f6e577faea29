package repositories

import (
	"time"

	"github.com/Archismita-Das/HealthifyMe/models"

	"gorm.io/gorm"
)

// MealRepository is the tracking-store surface for meal entries. All
// queries are keyed by user id, or by (user id, date).
type MealRepository struct{ db *gorm.DB }

func NewMealRepository(db *gorm.DB) *MealRepository { return &MealRepository{db: db} }

func (r *MealRepository) Create(meal *models.Meal) error {
	return r.db.Create(meal).Error
}

// FindByUserOrdered returns every meal for the user, most recent
// first: date descending, then creation time descending within a day.
func (r *MealRepository) FindByUserOrdered(userID uint) ([]models.Meal, error) {
	var meals []models.Meal
	err := r.db.
		Where("user_id = ?", userID).
		Order("date DESC, created_at DESC").
		Find(&meals).Error
	return meals, err
}

func (r *MealRepository) FindByUserAndDate(userID uint, date time.Time) ([]models.Meal, error) {
	var meals []models.Meal
	err := r.db.
		Where("user_id = ? AND date = ?", userID, date).
		Order("created_at DESC").
		Find(&meals).Error
	return meals, err
}

// FindByUserAndDateRange returns meals with start <= date <= end.
func (r *MealRepository) FindByUserAndDateRange(userID uint, start, end time.Time) ([]models.Meal, error) {
	var meals []models.Meal
	err := r.db.
		Where("user_id = ? AND date >= ? AND date <= ?", userID, start, end).
		Order("date DESC, created_at DESC").
		Find(&meals).Error
	return meals, err
}

// TotalCaloriesByUserAndDate sums calories in SQL so the total stays
// exact integer arithmetic regardless of entry count.
func (r *MealRepository) TotalCaloriesByUserAndDate(userID uint, date time.Time) (int, error) {
	var total int
	err := r.db.
		Model(&models.Meal{}).
		Select("COALESCE(SUM(calories), 0)").
		Where("user_id = ? AND date = ?", userID, date).
		Scan(&total).Error
	return total, err
}

func (r *MealRepository) TotalProteinByUserAndDate(userID uint, date time.Time) (float64, error) {
	var total float64
	err := r.db.
		Model(&models.Meal{}).
		Select("COALESCE(SUM(protein), 0)").
		Where("user_id = ? AND date = ?", userID, date).
		Scan(&total).Error
	return total, err
}

func (r *MealRepository) CountByUserAndDate(userID uint, date time.Time) (int64, error) {
	var n int64
	err := r.db.
		Model(&models.Meal{}).
		Where("user_id = ? AND date = ?", userID, date).
		Count(&n).Error
	return n, err
}

func (r *MealRepository) DeleteByUserAndDate(userID uint, date time.Time) error {
	return r.db.
		Where("user_id = ? AND date = ?", userID, date).
		Delete(&models.Meal{}).Error
}
