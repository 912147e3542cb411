package profile

import (
	"context"
	"testing"

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

const testUserID = "9f6c1d2a-77b3-4f70-9a0e-6f5b2c8d4e21"

var saveRequest = domain.SaveProfileRequest{
	Name:          "Ana",
	Email:         "ana@example.com",
	Age:           25,
	Weight:        70,
	Height:        170,
	TargetWeight:  65,
	ActivityLevel: entities.ActivityModerate,
}

func TestSaveProfileDerivesGoal(t *testing.T) {
	repo := &fakeProfileRepository{}
	service := NewProfileService(repo)

	res, err := service.SaveProfile(context.Background(), saveRequest, testUserID)
	require.NoError(t, err)

	assert.Equal(t, "Ana", res.Name)
	assert.Equal(t, 2135, res.DailyCalorieGoal)
	assert.InDelta(t, 24.22, res.BMI, 0.01)
	assert.Equal(t, "Normal weight", res.BMICategory)
	require.NotNil(t, repo.profile)
	assert.Equal(t, 2135, repo.profile.DailyCalorieGoal)
}

func TestSaveProfileOverwrites(t *testing.T) {
	repo := &fakeProfileRepository{}
	service := NewProfileService(repo)

	_, err := service.SaveProfile(context.Background(), saveRequest, testUserID)
	require.NoError(t, err)

	updated := saveRequest
	updated.Weight = 65
	updated.ActivityLevel = entities.ActivityActive

	res, err := service.SaveProfile(context.Background(), updated, testUserID)
	require.NoError(t, err)

	assert.Equal(t, 65.0, res.Weight)
	assert.Equal(t, entities.ActivityActive, res.ActivityLevel)
	assert.Equal(t, res.DailyCalorieGoal, repo.profile.DailyCalorieGoal)
	// Recomputed from the new metrics, not carried over.
	assert.NotEqual(t, 2135, res.DailyCalorieGoal)
}

func TestSaveProfileRejectsBadMetrics(t *testing.T) {
	service := NewProfileService(&fakeProfileRepository{})

	bad := saveRequest
	bad.Weight = 0

	_, err := service.SaveProfile(context.Background(), bad, testUserID)
	assert.ErrorIs(t, err, domain.ErrInvalidBodyMetrics)
}

func TestGetProfileNotFound(t *testing.T) {
	service := NewProfileService(&fakeProfileRepository{})

	_, err := service.GetProfile(context.Background(), testUserID)
	assert.ErrorIs(t, err, domain.ErrProfileNotFound)
}
