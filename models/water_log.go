package models

import "time"

// WaterLog holds a user's water intake for one calendar date.
// At most one row exists per (user_id, date); the water service
// enforces that with a lookup-then-write, so the index is
// intentionally not unique.
type WaterLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index:idx_water_user_date" json:"userId"`
	Date      time.Time `gorm:"not null;index:idx_water_user_date" json:"date"`
	Liters    float64   `gorm:"not null" json:"liters"`
	CreatedAt time.Time `gorm:"<-:create" json:"createdAt"`
}
