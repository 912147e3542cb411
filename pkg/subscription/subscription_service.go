package subscription

import (
	"context"
	"errors"

	"FitGenius-Backend/domain"
	"FitGenius-Backend/entities"
	"FitGenius-Backend/internal/utils"
	"FitGenius-Backend/internal/utils/mailing"
	"FitGenius-Backend/pkg/payment"
	"FitGenius-Backend/pkg/profile"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// pixDiscount applies when paying via pix.
const pixDiscount = 0.95

type (
	SubscriptionService interface {
		GetPlans(ctx context.Context) []domain.SubscriptionPlan
		// Checkout runs the simulated payment and flips the device to
		// premium on success.
		Checkout(ctx context.Context, req domain.CheckoutRequest, userID string) (domain.CheckoutResponse, error)
		GetStatus(ctx context.Context, userID string) (domain.SubscriptionStatusResponse, error)
	}

	subscriptionService struct {
		subscriptionRepository SubscriptionRepository
		profileRepository      profile.ProfileRepository
		gateway                payment.PaymentGateway
		clock                  utils.Clock
	}
)

var plans = []domain.SubscriptionPlan{
	{
		ID:           domain.PlanMonthly,
		Name:         "Premium Monthly",
		Price:        39.90,
		MonthlyPrice: 39.90,
		Currency:     "BRL",
		Duration:     "1 month",
		Features:     []string{"AI meal recognition", "Personalized suggestions", "Full progress history"},
	},
	{
		ID:           domain.PlanQuarterly,
		Name:         "Premium Quarterly",
		Price:        89.70,
		MonthlyPrice: 29.90,
		Currency:     "BRL",
		Duration:     "3 months",
		Features:     []string{"AI meal recognition", "Personalized suggestions", "Full progress history", "Save 25%"},
		IsPopular:    true,
	},
}

func NewSubscriptionService(
	subscriptionRepository SubscriptionRepository,
	profileRepository profile.ProfileRepository,
	gateway payment.PaymentGateway,
	clock utils.Clock,
) SubscriptionService {
	return &subscriptionService{
		subscriptionRepository: subscriptionRepository,
		profileRepository:      profileRepository,
		gateway:                gateway,
		clock:                  clock,
	}
}

func (s *subscriptionService) GetPlans(ctx context.Context) []domain.SubscriptionPlan {
	return plans
}

func (s *subscriptionService) Checkout(ctx context.Context, req domain.CheckoutRequest, userID string) (domain.CheckoutResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.CheckoutResponse{}, domain.ErrParseUUID
	}

	plan, ok := planByID(req.PlanID)
	if !ok {
		return domain.CheckoutResponse{}, domain.ErrInvalidPlan
	}

	amount := plan.Price
	if req.PaymentMethod == domain.PaymentMethodPix {
		amount = amount * pixDiscount
	}

	transaction := &entities.PaymentTransaction{
		ID:            uuid.New(),
		UserID:        userUUID,
		PlanID:        plan.ID,
		PaymentMethod: req.PaymentMethod,
		Amount:        amount,
		Currency:      plan.Currency,
		Status:        "Pending",
	}
	if err := s.subscriptionRepository.CreateTransaction(ctx, transaction); err != nil {
		return domain.CheckoutResponse{}, err
	}

	userProfile, profileErr := s.profileRepository.GetProfileByUserID(ctx, userID)

	paymentReq := domain.PaymentRequest{
		Amount:        amount,
		Currency:      plan.Currency,
		PaymentMethod: req.PaymentMethod,
		OrderID:       transaction.ID.String(),
	}
	if profileErr == nil && userProfile.Email != "" {
		paymentReq.Email = userProfile.Email
	}

	result, err := s.gateway.Charge(ctx, paymentReq)
	if err != nil || !result.Success {
		transaction.Status = "Failed"
		_ = s.subscriptionRepository.UpdateTransaction(ctx, transaction)
		return domain.CheckoutResponse{}, domain.ErrPaymentFailed
	}

	transaction.Status = "Success"
	if err := s.subscriptionRepository.UpdateTransaction(ctx, transaction); err != nil {
		return domain.CheckoutResponse{}, err
	}

	months := 1
	if plan.ID == domain.PlanQuarterly {
		months = 3
	}
	expiresAt := s.clock.Now().AddDate(0, months, 0)

	subscription, err := s.subscriptionRepository.GetSubscriptionByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CheckoutResponse{}, err
		}
		subscription = &entities.Subscription{
			ID:     uuid.New(),
			UserID: userUUID,
		}
	}
	subscription.PlanID = plan.ID
	subscription.IsPremium = true
	subscription.ExpiresAt = expiresAt

	if err := s.subscriptionRepository.SaveSubscription(ctx, subscription); err != nil {
		return domain.CheckoutResponse{}, err
	}

	// Receipt mail is fire-and-forget; a mail failure never fails the
	// checkout.
	if profileErr == nil && userProfile.Email != "" {
		go func(email, name, planName string, amount float64) {
			if err := mailing.SendPaymentReceipt(email, name, planName, amount); err != nil {
				log.Warnf("failed to send payment receipt to %s: %v", email, err)
			}
		}(userProfile.Email, userProfile.Name, plan.Name, amount)
	}

	return domain.CheckoutResponse{
		TransactionID: transaction.ID.String(),
		PlanID:        plan.ID,
		AmountCharged: amount,
		IsPremium:     true,
		ExpiresAt:     expiresAt,
	}, nil
}

func (s *subscriptionService) GetStatus(ctx context.Context, userID string) (domain.SubscriptionStatusResponse, error) {
	subscription, err := s.subscriptionRepository.GetSubscriptionByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.SubscriptionStatusResponse{IsPremium: false}, nil
		}
		return domain.SubscriptionStatusResponse{}, err
	}

	isPremium := subscription.IsPremium && subscription.ExpiresAt.After(s.clock.Now())

	resp := domain.SubscriptionStatusResponse{
		IsPremium: isPremium,
	}
	if isPremium {
		resp.PlanID = subscription.PlanID
		resp.ExpiresAt = &subscription.ExpiresAt
	}
	return resp, nil
}

func planByID(id string) (domain.SubscriptionPlan, bool) {
	for _, p := range plans {
		if p.ID == id {
			return p, true
		}
	}
	return domain.SubscriptionPlan{}, false
}
