package entry

import (
	"context"
	"time"

	"FitGenius-Backend/entities"

	"gorm.io/gorm"
)

type (
	EntryRepository interface {
		CreateEntry(ctx context.Context, entry *entities.FoodEntry) error
		DeleteEntry(ctx context.Context, id string, userID string) error
		GetEntryByID(ctx context.Context, id string) (*entities.FoodEntry, error)
		ListEntries(ctx context.Context, userID string) ([]*entities.FoodEntry, error)
		ListEntriesByDateRange(ctx context.Context, userID string, from, to time.Time) ([]*entities.FoodEntry, error)
	}

	entryRepository struct {
		db *gorm.DB
	}
)

func NewEntryRepository(db *gorm.DB) EntryRepository {
	return &entryRepository{db: db}
}

func (r *entryRepository) CreateEntry(ctx context.Context, entry *entities.FoodEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *entryRepository) DeleteEntry(ctx context.Context, id string, userID string) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&entities.FoodEntry{}).Error
}

func (r *entryRepository) GetEntryByID(ctx context.Context, id string) (*entities.FoodEntry, error) {
	var entry entities.FoodEntry
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// ListEntries returns the device's entries in insertion order, which is also
// display order.
func (r *entryRepository) ListEntries(ctx context.Context, userID string) ([]*entities.FoodEntry, error) {
	var entries []*entities.FoodEntry
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("logged_at asc").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *entryRepository) ListEntriesByDateRange(ctx context.Context, userID string, from, to time.Time) ([]*entities.FoodEntry, error) {
	var entries []*entities.FoodEntry
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND logged_at >= ? AND logged_at < ?", userID, from, to).
		Order("logged_at asc").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
