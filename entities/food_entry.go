package entities

import (
	"time"

	"github.com/google/uuid"
)

const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
	MealSnack     = "snack"
)

type FoodEntry struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID   uuid.UUID `gorm:"index" json:"user_id"`
	Name     string    `json:"name"`
	Calories float64   `json:"calories"`
	Protein  float64   `json:"protein"`
	Carbs    float64   `json:"carbs"`
	Fat      float64   `json:"fat"`
	ImageURL string    `json:"image_url,omitempty"`
	Meal     string    `json:"meal"` // "breakfast", "lunch", "dinner", "snack"
	LoggedAt time.Time `gorm:"index" json:"logged_at"`

	Timestamp
}
