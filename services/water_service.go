package services

import (
	"errors"
	"math"
	"sync"
	"time"

	"github.com/Archismita-Das/HealthifyMe/models"
	"github.com/Archismita-Das/HealthifyMe/repositories"

	"gorm.io/gorm"
)

// WaterService owns hydration records: one per (user, date), written
// through two distinct paths. Set replaces the day's value, Add
// accumulates into it. Both do a lookup-then-write, serialized per key
// so concurrent writes for the same day cannot lose an update.
type WaterService struct {
	repo       *repositories.WaterLogRepository
	clock      Clock
	goalLiters float64

	mu       sync.Mutex
	keyLocks map[waterKey]*keyLock
}

type waterKey struct {
	userID uint
	date   time.Time
}

// keyLock is a mutex with a holder-plus-waiter count so the entry can
// be dropped from the map once nobody references it. Without the count
// the map would grow by one entry per (user, date) ever written.
type keyLock struct {
	sync.Mutex
	refs int
}

func NewWaterService(repo *repositories.WaterLogRepository, clock Clock, goalLiters float64) *WaterService {
	return &WaterService{
		repo:       repo,
		clock:      clock,
		goalLiters: goalLiters,
		keyLocks:   map[waterKey]*keyLock{},
	}
}

// WaterStats aggregates an inclusive window of hydration records.
type WaterStats struct {
	TotalLiters   float64 `json:"totalLiters"`
	AveragePerDay float64 `json:"averagePerDay"`
	DaysLogged    int     `json:"daysLogged"`
	MaxInDay      float64 `json:"maxInDay"`
	MinInDay      float64 `json:"minInDay"`
	GoalMet       int     `json:"goalMet"`
}

func (s *WaterService) lockKey(userID uint, date time.Time) func() {
	key := waterKey{userID: userID, date: date}

	s.mu.Lock()
	l, ok := s.keyLocks[key]
	if !ok {
		l = &keyLock{}
		s.keyLocks[key] = l
	}
	l.refs++
	s.mu.Unlock()

	l.Lock()
	return func() {
		l.Unlock()
		s.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(s.keyLocks, key)
		}
		s.mu.Unlock()
	}
}

// Set records the given liters for (userID, date), replacing any
// existing value for that day. The record's id is preserved on
// overwrite. Zero liters is allowed: a day can be reset.
func (s *WaterService) Set(userID uint, date time.Time, liters float64) (*models.WaterLog, error) {
	if userID == 0 {
		return nil, validationErrorf("User ID is required")
	}
	if date.IsZero() {
		return nil, validationErrorf("Date is required")
	}
	if liters < 0 {
		return nil, validationErrorf("Liters must not be negative")
	}
	day := DateOf(date)

	unlock := s.lockKey(userID, day)
	defer unlock()

	existing, err := s.repo.FindByUserAndDate(userID, day)
	switch {
	case err == nil:
		existing.Liters = liters
		if err := s.repo.Save(existing); err != nil {
			return nil, storageError("update water log", err)
		}
		return existing, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		log := &models.WaterLog{UserID: userID, Date: day, Liters: liters}
		if err := s.repo.Create(log); err != nil {
			return nil, storageError("create water log", err)
		}
		return log, nil
	default:
		return nil, storageError("find water log", err)
	}
}

// Add accumulates liters into today's record, creating it from zero
// when absent. Unlike Set, zero or negative amounts are rejected: you
// can reset a day to zero but you cannot add nothing.
func (s *WaterService) Add(userID uint, liters float64) (*models.WaterLog, error) {
	if userID == 0 {
		return nil, validationErrorf("User ID is required")
	}
	if liters <= 0 {
		return nil, validationErrorf("Liters must be greater than zero")
	}
	today := s.clock.Today()

	unlock := s.lockKey(userID, today)
	defer unlock()

	existing, err := s.repo.FindByUserAndDate(userID, today)
	switch {
	case err == nil:
		existing.Liters += liters
		if err := s.repo.Save(existing); err != nil {
			return nil, storageError("update water log", err)
		}
		return existing, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		log := &models.WaterLog{UserID: userID, Date: today, Liters: liters}
		if err := s.repo.Create(log); err != nil {
			return nil, storageError("create water log", err)
		}
		return log, nil
	default:
		return nil, storageError("find water log", err)
	}
}

// GetForDate returns the record for the key, or ErrNotFound. Absence
// is reported distinctly from a record holding zero liters.
func (s *WaterService) GetForDate(userID uint, date time.Time) (*models.WaterLog, error) {
	log, err := s.repo.FindByUserAndDate(userID, DateOf(date))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, storageError("find water log", err)
	}
	return log, nil
}

func (s *WaterService) GetToday(userID uint) (*models.WaterLog, error) {
	return s.GetForDate(userID, s.clock.Today())
}

// ListAll returns every hydration record for the user, most recent
// first.
func (s *WaterService) ListAll(userID uint) ([]models.WaterLog, error) {
	logs, err := s.repo.FindByUserOrdered(userID)
	if err != nil {
		return nil, storageError("list water logs", err)
	}
	return logs, nil
}

// History returns records in the inclusive window of windowDays days
// ending today, most recent first.
func (s *WaterService) History(userID uint, windowDays int) ([]models.WaterLog, error) {
	logs, _, err := s.window(userID, windowDays)
	return logs, err
}

func (s *WaterService) window(userID uint, windowDays int) ([]models.WaterLog, time.Time, error) {
	if windowDays < 1 {
		return nil, time.Time{}, validationErrorf("Days must be at least 1")
	}
	anchor := s.clock.Today()
	start := anchor.AddDate(0, 0, -(windowDays - 1))
	logs, err := s.repo.FindByUserAndDateRange(userID, start, anchor)
	if err != nil {
		return nil, time.Time{}, storageError("list water logs", err)
	}
	return logs, anchor, nil
}

// Stats aggregates the same inclusive window History uses. The average
// divides by the requested window length, not by the number of days
// actually logged, so sparse weeks read low. An empty window is a
// valid all-zero result.
func (s *WaterService) Stats(userID uint, windowDays int) (*WaterStats, error) {
	logs, _, err := s.window(userID, windowDays)
	if err != nil {
		return nil, err
	}

	stats := &WaterStats{}
	if len(logs) == 0 {
		return stats, nil
	}

	total := 0.0
	max := logs[0].Liters
	min := logs[0].Liters
	goalMet := 0
	for _, l := range logs {
		total += l.Liters
		if l.Liters > max {
			max = l.Liters
		}
		if l.Liters < min {
			min = l.Liters
		}
		if l.Liters >= s.goalLiters {
			goalMet++
		}
	}

	stats.TotalLiters = round1(total)
	stats.AveragePerDay = round2(total / float64(windowDays))
	stats.DaysLogged = len(logs)
	stats.MaxInDay = max
	stats.MinInDay = min
	stats.GoalMet = goalMet
	return stats, nil
}

// DeleteForDate removes the record for the key. Deleting a day that
// was never logged succeeds quietly.
func (s *WaterService) DeleteForDate(userID uint, date time.Time) error {
	day := DateOf(date)

	unlock := s.lockKey(userID, day)
	defer unlock()

	if err := s.repo.DeleteByUserAndDate(userID, day); err != nil {
		return storageError("delete water log", err)
	}
	return nil
}

func round1(x float64) float64 { return math.Round(x*10) / 10 }

func round2(x float64) float64 { return math.Round(x*100) / 100 }
