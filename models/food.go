package models

// Food is a read-only catalog item users can pick when logging meals.
type Food struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	FoodName string `gorm:"not null" json:"foodName"`
	Calories int    `gorm:"not null" json:"calories"`

	Type         string `gorm:"not null" json:"type"`                              // protein, carb, fat, vegetable, fruit, dairy
	Cuisine      string `gorm:"not null" json:"cuisine"`                           // Indian, Global, Common
	DietCategory string `gorm:"column:diet_category;not null" json:"dietCategory"` // vegan, vegetarian, non-veg

	Protein     *float64 `json:"protein,omitempty"`
	Carbs       *float64 `json:"carbs,omitempty"`
	Fats        *float64 `json:"fats,omitempty"`
	Description string   `gorm:"type:text" json:"description,omitempty"`
}
