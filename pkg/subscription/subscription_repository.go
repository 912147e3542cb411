package subscription

import (
	"context"

	"FitGenius-Backend/entities"

	"gorm.io/gorm"
)

type (
	SubscriptionRepository interface {
		GetSubscriptionByUserID(ctx context.Context, userID string) (*entities.Subscription, error)
		SaveSubscription(ctx context.Context, subscription *entities.Subscription) error
		CreateTransaction(ctx context.Context, transaction *entities.PaymentTransaction) error
		UpdateTransaction(ctx context.Context, transaction *entities.PaymentTransaction) error
	}

	subscriptionRepository struct {
		db *gorm.DB
	}
)

func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) GetSubscriptionByUserID(ctx context.Context, userID string) (*entities.Subscription, error) {
	var subscription entities.Subscription
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&subscription).Error; err != nil {
		return nil, err
	}
	return &subscription, nil
}

func (r *subscriptionRepository) SaveSubscription(ctx context.Context, subscription *entities.Subscription) error {
	return r.db.WithContext(ctx).Save(subscription).Error
}

func (r *subscriptionRepository) CreateTransaction(ctx context.Context, transaction *entities.PaymentTransaction) error {
	return r.db.WithContext(ctx).Create(transaction).Error
}

func (r *subscriptionRepository) UpdateTransaction(ctx context.Context, transaction *entities.PaymentTransaction) error {
	return r.db.WithContext(ctx).Save(transaction).Error
}
