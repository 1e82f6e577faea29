package repositories

import (
	"time"

	"github.com/Archismita-Das/HealthifyMe/models"

	"gorm.io/gorm"
)

// WaterLogRepository is the tracking-store surface for hydration
// records. The (user id, date) pair is the logical key; the water
// service is responsible for keeping it unique.
type WaterLogRepository struct{ db *gorm.DB }

func NewWaterLogRepository(db *gorm.DB) *WaterLogRepository { return &WaterLogRepository{db: db} }

func (r *WaterLogRepository) Create(log *models.WaterLog) error {
	return r.db.Create(log).Error
}

// Save persists changes to an existing record, keeping its id.
func (r *WaterLogRepository) Save(log *models.WaterLog) error {
	return r.db.Save(log).Error
}

// FindByUserAndDate returns gorm.ErrRecordNotFound when no record
// exists for the key; callers distinguish that from liters == 0.
func (r *WaterLogRepository) FindByUserAndDate(userID uint, date time.Time) (*models.WaterLog, error) {
	var log models.WaterLog
	err := r.db.
		Where("user_id = ? AND date = ?", userID, date).
		First(&log).Error
	if err != nil {
		return nil, err
	}
	return &log, nil
}

// FindByUserAndDateRange returns records with start <= date <= end,
// most recent first.
func (r *WaterLogRepository) FindByUserAndDateRange(userID uint, start, end time.Time) ([]models.WaterLog, error) {
	var logs []models.WaterLog
	err := r.db.
		Where("user_id = ? AND date >= ? AND date <= ?", userID, start, end).
		Order("date DESC").
		Find(&logs).Error
	return logs, err
}

func (r *WaterLogRepository) FindByUserOrdered(userID uint) ([]models.WaterLog, error) {
	var logs []models.WaterLog
	err := r.db.
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&logs).Error
	return logs, err
}

// DeleteByUserAndDate removes the record for the key if one exists.
// Deleting a missing key is not an error.
func (r *WaterLogRepository) DeleteByUserAndDate(userID uint, date time.Time) error {
	return r.db.
		Where("user_id = ? AND date = ?", userID, date).
		Delete(&models.WaterLog{}).Error
}
