package entities

import (
	"time"

	"github.com/google/uuid"
)

type Subscription struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID    uuid.UUID `gorm:"uniqueIndex" json:"user_id"`
	PlanID    string    `json:"plan_id"`
	IsPremium bool      `json:"is_premium"`
	ExpiresAt time.Time `json:"expires_at"`

	Timestamp
}

type PaymentTransaction struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID        uuid.UUID `gorm:"index" json:"user_id"`
	PlanID        string    `json:"plan_id"`
	PaymentMethod string    `json:"payment_method"` // "card", "pix"
	Amount        float64   `json:"amount"`
	Currency      string    `json:"currency"`
	Status        string    `json:"status"` // "Pending", "Success", "Failed"

	Timestamp
}
