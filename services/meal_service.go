package services

import (
	"strings"
	"time"

	"github.com/Archismita-Das/HealthifyMe/models"
	"github.com/Archismita-Das/HealthifyMe/repositories"
)

type MealService struct {
	repo  *repositories.MealRepository
	clock Clock
}

func NewMealService(repo *repositories.MealRepository, clock Clock) *MealService {
	return &MealService{repo: repo, clock: clock}
}

// LogMealRequest carries one meal entry to record. Date and Quantity
// are pointers so "omitted" is distinguishable from a zero value.
type LogMealRequest struct {
	UserID   uint
	FoodID   *uint
	FoodName string
	Calories int
	Protein  *float64
	Carbs    *float64
	Fats     *float64
	MealType string
	Date     *time.Time
	Quantity *float64
}

// DailyTotals is the per-day nutrition summary.
type DailyTotals struct {
	Calories int     `json:"calories"`
	Protein  float64 `json:"protein"`
}

// Log validates and persists a meal entry. Validation runs before any
// store call, so a rejected entry never writes. Date defaults to
// today, quantity to 1.0.
func (s *MealService) Log(req LogMealRequest) (*models.Meal, error) {
	if req.UserID == 0 {
		return nil, validationErrorf("User ID is required")
	}
	if strings.TrimSpace(req.FoodName) == "" {
		return nil, validationErrorf("Food name is required")
	}
	if req.Calories <= 0 {
		return nil, validationErrorf("Valid calories are required")
	}
	if strings.TrimSpace(req.MealType) == "" {
		return nil, validationErrorf("Meal type is required")
	}

	date := s.clock.Today()
	if req.Date != nil {
		date = DateOf(*req.Date)
	}
	quantity := 1.0
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	meal := &models.Meal{
		UserID:   req.UserID,
		FoodID:   req.FoodID,
		FoodName: req.FoodName,
		Calories: req.Calories,
		Protein:  req.Protein,
		Carbs:    req.Carbs,
		Fats:     req.Fats,
		MealType: req.MealType,
		Date:     date,
		Quantity: quantity,
	}
	if err := s.repo.Create(meal); err != nil {
		return nil, storageError("create meal", err)
	}
	return meal, nil
}

// ListForUser returns every meal for the user, most recent first.
// No meals is an empty slice, not an error.
func (s *MealService) ListForUser(userID uint) ([]models.Meal, error) {
	meals, err := s.repo.FindByUserOrdered(userID)
	if err != nil {
		return nil, storageError("list meals", err)
	}
	return meals, nil
}

func (s *MealService) ListForDate(userID uint, date time.Time) ([]models.Meal, error) {
	meals, err := s.repo.FindByUserAndDate(userID, DateOf(date))
	if err != nil {
		return nil, storageError("list meals by date", err)
	}
	return meals, nil
}

func (s *MealService) ListForToday(userID uint) ([]models.Meal, error) {
	return s.ListForDate(userID, s.clock.Today())
}

// ListForRange returns meals with start <= date <= end, both bounds
// included.
func (s *MealService) ListForRange(userID uint, start, end time.Time) ([]models.Meal, error) {
	meals, err := s.repo.FindByUserAndDateRange(userID, DateOf(start), DateOf(end))
	if err != nil {
		return nil, storageError("list meals by range", err)
	}
	return meals, nil
}

// TotalsForDate sums calories and protein across the day's entries.
// A day with no entries yields zero totals.
func (s *MealService) TotalsForDate(userID uint, date time.Time) (*DailyTotals, error) {
	day := DateOf(date)
	calories, err := s.repo.TotalCaloriesByUserAndDate(userID, day)
	if err != nil {
		return nil, storageError("sum calories", err)
	}
	protein, err := s.repo.TotalProteinByUserAndDate(userID, day)
	if err != nil {
		return nil, storageError("sum protein", err)
	}
	return &DailyTotals{Calories: calories, Protein: protein}, nil
}

// DeleteForDate removes all of the user's meals on a date. Idempotent.
func (s *MealService) DeleteForDate(userID uint, date time.Time) error {
	if err := s.repo.DeleteByUserAndDate(userID, DateOf(date)); err != nil {
		return storageError("delete meals", err)
	}
	return nil
}
