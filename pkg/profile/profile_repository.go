package profile

import (
	"context"

	"FitGenius-Backend/entities"

	"gorm.io/gorm"
)

type (
	ProfileRepository interface {
		GetProfileByUserID(ctx context.Context, userID string) (*entities.UserProfile, error)
		SaveProfile(ctx context.Context, profile *entities.UserProfile) error
	}

	profileRepository struct {
		db *gorm.DB
	}
)

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) GetProfileByUserID(ctx context.Context, userID string) (*entities.UserProfile, error) {
	var profile entities.UserProfile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) SaveProfile(ctx context.Context, profile *entities.UserProfile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}
