package models

import "time"

// Meal is one logged food entry for a user on a calendar date.
// Date is normalized to local midnight; CreatedAt is assigned on
// insert and never updated (there is no meal update endpoint).
type Meal struct {
	ID       uint     `gorm:"primaryKey" json:"id"`
	UserID   uint     `gorm:"not null;index:idx_meals_user_date" json:"userId"`
	FoodID   *uint    `json:"foodId,omitempty"` // optional link to the food catalog
	FoodName string   `gorm:"not null" json:"foodName"`
	Calories int      `gorm:"not null" json:"calories"`
	Protein  *float64 `json:"protein,omitempty"`
	Carbs    *float64 `json:"carbs,omitempty"`
	Fats     *float64 `json:"fats,omitempty"`

	// breakfast, lunch, dinner, snack. Validated non-blank, not a
	// closed enum
	MealType string `gorm:"not null" json:"mealType"`

	Date      time.Time `gorm:"not null;index:idx_meals_user_date" json:"date"`
	Quantity  float64   `gorm:"not null;default:1" json:"quantity"`
	CreatedAt time.Time `gorm:"<-:create" json:"createdAt"`
}
