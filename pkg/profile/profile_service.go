package profile

import (
	"context"
	"errors"

	"FitGenius-Backend/domain"
	"FitGenius-Backend/entities"
	"FitGenius-Backend/internal/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ProfileService interface {
		// SaveProfile overwrites the device's single profile wholesale and
		// derives the daily calorie goal from the submitted metrics.
		SaveProfile(ctx context.Context, req domain.SaveProfileRequest, userID string) (domain.ProfileResponse, error)
		GetProfile(ctx context.Context, userID string) (domain.ProfileResponse, error)
	}

	profileService struct {
		profileRepository ProfileRepository
	}
)

func NewProfileService(profileRepository ProfileRepository) ProfileService {
	return &profileService{profileRepository: profileRepository}
}

func (s *profileService) SaveProfile(ctx context.Context, req domain.SaveProfileRequest, userID string) (domain.ProfileResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ProfileResponse{}, domain.ErrParseUUID
	}

	goal, err := utils.CalculateDailyCalorieGoal(req.Weight, req.Height, req.Age, req.ActivityLevel)
	if err != nil {
		return domain.ProfileResponse{}, domain.ErrInvalidBodyMetrics
	}

	profile, err := s.profileRepository.GetProfileByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ProfileResponse{}, err
		}
		profile = &entities.UserProfile{
			ID:     uuid.New(),
			UserID: userUUID,
		}
	}

	profile.Name = req.Name
	profile.Email = req.Email
	profile.Age = req.Age
	profile.Weight = req.Weight
	profile.Height = req.Height
	profile.TargetWeight = req.TargetWeight
	profile.ActivityLevel = req.ActivityLevel
	profile.DailyCalorieGoal = goal

	if err := s.profileRepository.SaveProfile(ctx, profile); err != nil {
		return domain.ProfileResponse{}, err
	}

	return toProfileResponse(profile), nil
}

func (s *profileService) GetProfile(ctx context.Context, userID string) (domain.ProfileResponse, error) {
	profile, err := s.profileRepository.GetProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ProfileResponse{}, domain.ErrProfileNotFound
		}
		return domain.ProfileResponse{}, err
	}
	return toProfileResponse(profile), nil
}

func toProfileResponse(profile *entities.UserProfile) domain.ProfileResponse {
	resp := domain.ProfileResponse{
		Name:             profile.Name,
		Email:            profile.Email,
		Age:              profile.Age,
		Weight:           profile.Weight,
		Height:           profile.Height,
		TargetWeight:     profile.TargetWeight,
		ActivityLevel:    profile.ActivityLevel,
		DailyCalorieGoal: profile.DailyCalorieGoal,
	}

	if bmi, err := utils.CalculateBMI(profile.Height, profile.Weight); err == nil {
		resp.BMI = bmi
		resp.BMICategory = utils.BMICategory(bmi)
	}

	return resp
}
