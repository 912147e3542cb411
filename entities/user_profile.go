package entities

import (
	"github.com/google/uuid"
)

const (
	ActivitySedentary  = "sedentary"
	ActivityLight      = "light"
	ActivityModerate   = "moderate"
	ActivityActive     = "active"
	ActivityVeryActive = "very-active"
)

// UserProfile is the single profile per device. It is overwritten wholesale
// on every save; no history is retained.
type UserProfile struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID           uuid.UUID `gorm:"uniqueIndex" json:"user_id"`
	Name             string    `json:"name"`
	Email            string    `json:"email,omitempty"`
	Age              int       `json:"age"`
	Weight           float64   `json:"weight"`
	Height           float64   `json:"height"`
	TargetWeight     float64   `json:"target_weight"`
	ActivityLevel    string    `json:"activity_level"`
	DailyCalorieGoal int       `json:"daily_calorie_goal"`

	Timestamp
}
