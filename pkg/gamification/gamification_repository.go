package gamification

import (
	"context"

	"FitGenius-Backend/entities"

	"gorm.io/gorm"
)

type (
	GamificationRepository interface {
		GetStateByUserID(ctx context.Context, userID string) (*entities.GamificationState, error)
		CreateState(ctx context.Context, state *entities.GamificationState) error
		SaveState(ctx context.Context, state *entities.GamificationState) error
	}

	gamificationRepository struct {
		db *gorm.DB
	}
)

func NewGamificationRepository(db *gorm.DB) GamificationRepository {
	return &gamificationRepository{db: db}
}

func (r *gamificationRepository) GetStateByUserID(ctx context.Context, userID string) (*entities.GamificationState, error) {
	var state entities.GamificationState
	if err := r.db.WithContext(ctx).
		Preload("Achievements").
		Where("user_id = ?", userID).
		First(&state).Error; err != nil {
		return nil, err
	}
	return &state, nil
}

func (r *gamificationRepository) CreateState(ctx context.Context, state *entities.GamificationState) error {
	return r.db.WithContext(ctx).Create(state).Error
}

// SaveState overwrites the whole snapshot, achievements included. There is a
// single writer per device, so last-writer-wins is fine.
func (r *gamificationRepository) SaveState(ctx context.Context, state *entities.GamificationState) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Achievements").Save(state).Error; err != nil {
			return err
		}
		for i := range state.Achievements {
			if err := tx.Save(&state.Achievements[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
