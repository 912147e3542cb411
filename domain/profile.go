package domain

import (
	"errors"
)

var (
	MessageSuccessSaveProfile = "profile saved successfully"
	MessageSuccessGetProfile  = "profile retrieved successfully"
	MessageFailedSaveProfile  = "failed to save profile"
	MessageFailedGetProfile   = "failed to retrieve profile"

	ErrProfileNotFound      = errors.New("profile not found")
	ErrInvalidBodyMetrics   = errors.New("weight, height and age must be positive")
	ErrInvalidActivityLevel = errors.New("invalid activity level")
)

type (
	SaveProfileRequest struct {
		Name          string  `json:"name" validate:"required"`
		Email         string  `json:"email" validate:"omitempty,email"`
		Age           int     `json:"age" validate:"required,min=1,max=120"`
		Weight        float64 `json:"weight" validate:"required,gt=0"`
		Height        float64 `json:"height" validate:"required,gt=0"`
		TargetWeight  float64 `json:"target_weight" validate:"required,gt=0"`
		ActivityLevel string  `json:"activity_level" validate:"required,oneof=sedentary light moderate active very-active"`
	}

	ProfileResponse struct {
		Name             string  `json:"name"`
		Email            string  `json:"email,omitempty"`
		Age              int     `json:"age"`
		Weight           float64 `json:"weight"`
		Height           float64 `json:"height"`
		TargetWeight     float64 `json:"target_weight"`
		ActivityLevel    string  `json:"activity_level"`
		DailyCalorieGoal int     `json:"daily_calorie_goal"`
		BMI              float64 `json:"bmi,omitempty"`
		BMICategory      string  `json:"bmi_category,omitempty"`
	}
)
