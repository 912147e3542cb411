package entities

import (
	"github.com/google/uuid"
)

// GamificationState is the persisted snapshot for one device. LastActiveDate
// gates the once-per-day streak check across restarts and is stored as a
// plain "2006-01-02" local date.
type GamificationState struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID           uuid.UUID `gorm:"uniqueIndex" json:"user_id"`
	CurrentStreak    int       `json:"current_streak"`
	LongestStreak    int       `json:"longest_streak"`
	TotalMealsLogged int       `json:"total_meals_logged"`
	TotalDaysActive  int       `json:"total_days_active"`
	Level            int       `json:"level"`
	XP               int       `json:"xp"`
	XPToNextLevel    int       `json:"xp_to_next_level"`
	LastActiveDate   string    `json:"last_active_date"`

	Achievements []Achievement `gorm:"foreignKey:StateID" json:"achievements"`
	Timestamp
}

// Achievement rows are instantiated once per state from the fixed catalog.
// Unlocked is one-way; rows are never deleted or re-locked.
type Achievement struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	StateID     uuid.UUID `gorm:"index" json:"state_id"`
	Key         string    `gorm:"index" json:"key"` // "first_meal", "streak_3", ...
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Unlocked    bool      `json:"unlocked"`
	Progress    int       `json:"progress"`
	Target      int       `json:"target"`

	Timestamp
}
