package suggestion

import (
	"context"
	"testing"
	"time"

	"FitGenius-Backend/domain"
	"FitGenius-Backend/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

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

type fakeProgressService struct {
	today domain.TodayProgressResponse
}

func (s *fakeProgressService) GetDailyProgress(ctx context.Context, userID string, days int) ([]domain.DailyTotals, error) {
	return nil, nil
}

func (s *fakeProgressService) GetTodayProgress(ctx context.Context, userID string) (domain.TodayProgressResponse, error) {
	return s.today, nil
}

func TestDietSuggestions(t *testing.T) {
	assert.Equal(t, dietOverGoal, DietSuggestions(-100))
	assert.Equal(t, dietFullMeal, DietSuggestions(800))
	assert.Equal(t, dietLightSnack, DietSuggestions(300))
	assert.Equal(t, dietLightSnack, DietSuggestions(0))
	assert.Equal(t, dietLightSnack, DietSuggestions(500))
}

func TestExerciseSuggestions(t *testing.T) {
	assert.Equal(t, exerciseByActivity[entities.ActivitySedentary], ExerciseSuggestions("sedentary"))
	assert.Equal(t, exerciseByActivity[entities.ActivityVeryActive], ExerciseSuggestions("very-active"))
	assert.Equal(t, exerciseByActivity[entities.ActivityModerate], ExerciseSuggestions("unknown"))
}

func TestGetSuggestions(t *testing.T) {
	profileRepo := &fakeProfileRepository{profile: &entities.UserProfile{
		DailyCalorieGoal: 2000,
		ActivityLevel:    entities.ActivityLight,
	}}
	progressStub := &fakeProgressService{today: domain.TodayProgressResponse{
		Date: time.Now().Format("2006-01-02"),
		Calories: domain.NutrientProgress{
			Consumed: 2300,
			Goal:     2000,
		},
	}}
	service := NewSuggestionService(progressStub, profileRepo)

	res, err := service.GetSuggestions(context.Background(), "device-1")
	require.NoError(t, err)

	assert.True(t, res.OverGoal)
	assert.Equal(t, -300.0, res.CaloriesRemaining)
	assert.Equal(t, dietOverGoal, res.Diet)
	assert.Equal(t, exerciseByActivity[entities.ActivityLight], res.Exercise)
}

func TestGetSuggestionsWithoutProfile(t *testing.T) {
	service := NewSuggestionService(&fakeProgressService{}, &fakeProfileRepository{})

	_, err := service.GetSuggestions(context.Background(), "device-1")
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
}
