package progress

import (
	"context"
	"errors"
	"time"

	"FitGenius-Backend/domain"
	"FitGenius-Backend/entities"
	"FitGenius-Backend/internal/utils"
	"FitGenius-Backend/pkg/entry"
	"FitGenius-Backend/pkg/profile"

	"gorm.io/gorm"
)

type (
	ProgressService interface {
		// GetDailyProgress returns exactly `days` buckets, oldest first,
		// ending at today. Days without entries yield all-zero totals.
		GetDailyProgress(ctx context.Context, userID string, days int) ([]domain.DailyTotals, error)
		GetTodayProgress(ctx context.Context, userID string) (domain.TodayProgressResponse, error)
	}

	progressService struct {
		entryRepository   entry.EntryRepository
		profileRepository profile.ProfileRepository
		clock             utils.Clock
	}
)

func NewProgressService(
	entryRepository entry.EntryRepository,
	profileRepository profile.ProfileRepository,
	clock utils.Clock,
) ProgressService {
	return &progressService{
		entryRepository:   entryRepository,
		profileRepository: profileRepository,
		clock:             clock,
	}
}

func (s *progressService) GetDailyProgress(ctx context.Context, userID string, days int) ([]domain.DailyTotals, error) {
	if days < 1 {
		days = 7
	}

	now := s.clock.Now()
	from := startOfDay(now.AddDate(0, 0, -(days - 1)))
	to := startOfDay(now).Add(24 * time.Hour)

	entries, err := s.entryRepository.ListEntriesByDateRange(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	return AggregateLastNDays(entries, days, now), nil
}

func (s *progressService) GetTodayProgress(ctx context.Context, userID string) (domain.TodayProgressResponse, error) {
	buckets, err := s.GetDailyProgress(ctx, userID, 1)
	if err != nil {
		return domain.TodayProgressResponse{}, err
	}
	today := buckets[len(buckets)-1]

	var goal float64
	userProfile, err := s.profileRepository.GetProfileByUserID(ctx, userID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.TodayProgressResponse{}, err
	}
	if userProfile != nil {
		goal = float64(userProfile.DailyCalorieGoal)
	}

	remaining := goal - today.TotalCalories
	if remaining < 0 {
		remaining = 0
	}

	return domain.TodayProgressResponse{
		Date: today.Date,
		Calories: domain.NutrientProgress{
			Consumed: today.TotalCalories,
			Goal:     goal,
			Percent:  percentOf(today.TotalCalories, goal),
		},
		Protein:           today.TotalProtein,
		Carbs:             today.TotalCarbs,
		Fat:               today.TotalFat,
		CaloriesRemaining: remaining,
	}, nil
}

// AggregateLastNDays buckets entries into n calendar days ending at the
// reference time's local date. The view is derived on every call and never
// persisted.
func AggregateLastNDays(entries []*entities.FoodEntry, n int, reference time.Time) []domain.DailyTotals {
	buckets := make([]domain.DailyTotals, 0, n)
	index := make(map[string]int, n)

	for i := n - 1; i >= 0; i-- {
		date := utils.LocalDate(reference.AddDate(0, 0, -i))
		index[date] = len(buckets)
		buckets = append(buckets, domain.DailyTotals{Date: date})
	}

	for _, e := range entries {
		pos, ok := index[utils.LocalDate(e.LoggedAt)]
		if !ok {
			continue
		}
		buckets[pos].TotalCalories += e.Calories
		buckets[pos].TotalProtein += e.Protein
		buckets[pos].TotalCarbs += e.Carbs
		buckets[pos].TotalFat += e.Fat
		buckets[pos].EntryCount++
	}

	return buckets
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func percentOf(consumed, goal float64) float64 {
	if goal <= 0 {
		return 0
	}
	p := consumed / goal
	if p > 1 {
		return 1
	}
	return p
}
