package services

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/Archismita-Das/HealthifyMe/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db") + "?_busy_timeout=5000&_journal_mode=WAL"
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&models.Food{}, &models.Meal{}, &models.WaterLog{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

// fixedClock pins "today" so window math is deterministic.
type fixedClock struct{ today time.Time }

func (c fixedClock) Today() time.Time { return c.today }

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.Local)
}
