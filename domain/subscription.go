package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetPlans     = "subscription plans retrieved successfully"
	MessageSuccessCheckout     = "payment confirmed, premium activated"
	MessageSuccessGetStatus    = "subscription status retrieved successfully"
	MessageFailedGetPlans      = "failed to retrieve subscription plans"
	MessageFailedCheckout      = "failed to process payment"
	MessageFailedGetStatus     = "failed to retrieve subscription status"

	ErrInvalidPlan          = errors.New("invalid subscription plan")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrPaymentFailed        = errors.New("payment processing failed")
)

const (
	PlanMonthly   = "monthly"
	PlanQuarterly = "quarterly"

	PaymentMethodCard = "card"
	PaymentMethodPix  = "pix"
)

type (
	SubscriptionPlan struct {
		ID           string   `json:"id"`
		Name         string   `json:"name"`
		Price        float64  `json:"price"`
		MonthlyPrice float64  `json:"monthly_price"`
		Currency     string   `json:"currency"`
		Duration     string   `json:"duration"`
		Features     []string `json:"features"`
		IsPopular    bool     `json:"is_popular"`
	}

	CheckoutRequest struct {
		PlanID        string `json:"plan_id" validate:"required,oneof=monthly quarterly"`
		PaymentMethod string `json:"payment_method" validate:"required,oneof=card pix"`
	}

	CheckoutResponse struct {
		TransactionID string    `json:"transaction_id"`
		PlanID        string    `json:"plan_id"`
		AmountCharged float64   `json:"amount_charged"`
		IsPremium     bool      `json:"is_premium"`
		ExpiresAt     time.Time `json:"expires_at"`
	}

	SubscriptionStatusResponse struct {
		IsPremium bool       `json:"is_premium"`
		PlanID    string     `json:"plan_id,omitempty"`
		ExpiresAt *time.Time `json:"expires_at,omitempty"`
	}

	PaymentRequest struct {
		Amount        float64 `json:"amount"`
		Currency      string  `json:"currency"`
		PaymentMethod string  `json:"payment_method"`
		OrderID       string  `json:"order_id"`
		Email         string  `json:"email,omitempty"`
	}

	PaymentResult struct {
		Success     bool   `json:"success"`
		Reference   string `json:"reference"`
		RedirectURL string `json:"redirect_url,omitempty"`
	}
)
