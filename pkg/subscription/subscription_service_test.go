package subscription

import (
	"context"
	"errors"
	"testing"
	"time"

	"FitGenius-Backend/domain"
	"FitGenius-Backend/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

type fakeSubscriptionRepository struct {
	subscription *entities.Subscription
	transactions []*entities.PaymentTransaction
}

func (r *fakeSubscriptionRepository) GetSubscriptionByUserID(ctx context.Context, userID string) (*entities.Subscription, error) {
	if r.subscription == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return r.subscription, nil
}

func (r *fakeSubscriptionRepository) SaveSubscription(ctx context.Context, subscription *entities.Subscription) error {
	r.subscription = subscription
	return nil
}

func (r *fakeSubscriptionRepository) CreateTransaction(ctx context.Context, transaction *entities.PaymentTransaction) error {
	r.transactions = append(r.transactions, transaction)
	return nil
}

func (r *fakeSubscriptionRepository) UpdateTransaction(ctx context.Context, transaction *entities.PaymentTransaction) error {
	return nil
}

type fakeProfileRepository struct {
	profile *entities.UserProfile
}

func (r *fakeProfileRepository) GetProfileByUserID(ctx context.Context, userID string) (*entities.UserProfile, error) {
	if r.profile == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return r.profile, nil
}

func (r *fakeProfileRepository) SaveProfile(ctx context.Context, profile *entities.UserProfile) error {
	r.profile = profile
	return nil
}

type fakeGateway struct {
	result  domain.PaymentResult
	err     error
	lastReq domain.PaymentRequest
}

func (g *fakeGateway) Charge(ctx context.Context, req domain.PaymentRequest) (domain.PaymentResult, error) {
	g.lastReq = req
	return g.result, g.err
}

const testUserID = "0b0f9a4e-32d5-4be0-8c4c-1c6cf2b3a111"

func TestGetPlans(t *testing.T) {
	service := NewSubscriptionService(&fakeSubscriptionRepository{}, &fakeProfileRepository{}, &fakeGateway{}, fixedClock{})

	plans := service.GetPlans(context.Background())

	require.Len(t, plans, 2)
	assert.Equal(t, domain.PlanMonthly, plans[0].ID)
	assert.Equal(t, 39.90, plans[0].Price)
	assert.Equal(t, domain.PlanQuarterly, plans[1].ID)
	assert.Equal(t, 89.70, plans[1].Price)
	assert.Equal(t, 29.90, plans[1].MonthlyPrice)
	assert.True(t, plans[1].IsPopular)
}

func TestCheckoutMonthlyCard(t *testing.T) {
	now := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)
	repo := &fakeSubscriptionRepository{}
	gateway := &fakeGateway{result: domain.PaymentResult{Success: true, Reference: "ref-1"}}
	service := NewSubscriptionService(repo, &fakeProfileRepository{}, gateway, fixedClock{now: now})

	res, err := service.Checkout(context.Background(), domain.CheckoutRequest{
		PlanID:        domain.PlanMonthly,
		PaymentMethod: domain.PaymentMethodCard,
	}, testUserID)
	require.NoError(t, err)

	assert.Equal(t, domain.PlanMonthly, res.PlanID)
	assert.Equal(t, 39.90, res.AmountCharged)
	assert.True(t, res.IsPremium)
	assert.Equal(t, now.AddDate(0, 1, 0), res.ExpiresAt)

	require.NotNil(t, repo.subscription)
	assert.True(t, repo.subscription.IsPremium)
	assert.Equal(t, domain.PlanMonthly, repo.subscription.PlanID)

	require.Len(t, repo.transactions, 1)
	assert.Equal(t, "Success", repo.transactions[0].Status)
	assert.Equal(t, 39.90, gateway.lastReq.Amount)
}

func TestCheckoutQuarterlyPixDiscount(t *testing.T) {
	now := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)
	repo := &fakeSubscriptionRepository{}
	gateway := &fakeGateway{result: domain.PaymentResult{Success: true}}
	service := NewSubscriptionService(repo, &fakeProfileRepository{}, gateway, fixedClock{now: now})

	res, err := service.Checkout(context.Background(), domain.CheckoutRequest{
		PlanID:        domain.PlanQuarterly,
		PaymentMethod: domain.PaymentMethodPix,
	}, testUserID)
	require.NoError(t, err)

	assert.InDelta(t, 85.215, res.AmountCharged, 0.0001)
	assert.Equal(t, now.AddDate(0, 3, 0), res.ExpiresAt)
}

func TestCheckoutGatewayFailure(t *testing.T) {
	repo := &fakeSubscriptionRepository{}
	gateway := &fakeGateway{err: errors.New("gateway down")}
	service := NewSubscriptionService(repo, &fakeProfileRepository{}, gateway, fixedClock{now: time.Now()})

	_, err := service.Checkout(context.Background(), domain.CheckoutRequest{
		PlanID:        domain.PlanMonthly,
		PaymentMethod: domain.PaymentMethodCard,
	}, testUserID)

	assert.ErrorIs(t, err, domain.ErrPaymentFailed)
	assert.Nil(t, repo.subscription)
	require.Len(t, repo.transactions, 1)
	assert.Equal(t, "Failed", repo.transactions[0].Status)
}

func TestCheckoutUnknownPlan(t *testing.T) {
	service := NewSubscriptionService(&fakeSubscriptionRepository{}, &fakeProfileRepository{}, &fakeGateway{}, fixedClock{})

	_, err := service.Checkout(context.Background(), domain.CheckoutRequest{
		PlanID:        "lifetime",
		PaymentMethod: domain.PaymentMethodCard,
	}, testUserID)

	assert.ErrorIs(t, err, domain.ErrInvalidPlan)
}

func TestGetStatus(t *testing.T) {
	now := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

	t.Run("no subscription", func(t *testing.T) {
		service := NewSubscriptionService(&fakeSubscriptionRepository{}, &fakeProfileRepository{}, &fakeGateway{}, fixedClock{now: now})

		res, err := service.GetStatus(context.Background(), testUserID)
		require.NoError(t, err)
		assert.False(t, res.IsPremium)
	})

	t.Run("active subscription", func(t *testing.T) {
		repo := &fakeSubscriptionRepository{subscription: &entities.Subscription{
			PlanID:    domain.PlanMonthly,
			IsPremium: true,
			ExpiresAt: now.AddDate(0, 0, 10),
		}}
		service := NewSubscriptionService(repo, &fakeProfileRepository{}, &fakeGateway{}, fixedClock{now: now})

		res, err := service.GetStatus(context.Background(), testUserID)
		require.NoError(t, err)
		assert.True(t, res.IsPremium)
		assert.Equal(t, domain.PlanMonthly, res.PlanID)
	})

	t.Run("expired subscription", func(t *testing.T) {
		repo := &fakeSubscriptionRepository{subscription: &entities.Subscription{
			PlanID:    domain.PlanMonthly,
			IsPremium: true,
			ExpiresAt: now.AddDate(0, 0, -1),
		}}
		service := NewSubscriptionService(repo, &fakeProfileRepository{}, &fakeGateway{}, fixedClock{now: now})

		res, err := service.GetStatus(context.Background(), testUserID)
		require.NoError(t, err)
		assert.False(t, res.IsPremium)
		assert.Empty(t, res.PlanID)
	})
}
