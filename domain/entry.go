package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessLogMeal       = "meal logged successfully"
	MessageSuccessGetEntries    = "food entries retrieved successfully"
	MessageSuccessDeleteEntry   = "food entry deleted successfully"
	MessageFailedLogMeal        = "failed to log meal"
	MessageFailedGetEntries     = "failed to retrieve food entries"
	MessageFailedDeleteEntry    = "failed to delete food entry"
	MessageFailedAnalyzePhoto   = "failed to analyze meal photo"
	MessageFailedInvalidPhoto   = "invalid meal photo"

	ErrEntryNotFound      = errors.New("food entry not found")
	ErrRecognitionFailed  = errors.New("meal recognition failed")
	ErrInvalidImageFormat = errors.New("invalid image format")
)

type (
	LogMealRequest struct {
		Photo *multipart.FileHeader `json:"photo" form:"photo" validate:"required"`
	}

	FoodEntryResponse struct {
		ID       string    `json:"id"`
		Name     string    `json:"name"`
		Calories float64   `json:"calories"`
		Protein  float64   `json:"protein"`
		Carbs    float64   `json:"carbs"`
		Fat      float64   `json:"fat"`
		ImageURL string    `json:"image_url,omitempty"`
		Meal     string    `json:"meal"`
		LoggedAt time.Time `json:"logged_at"`
	}

	LogMealResponse struct {
		Entry         FoodEntryResponse     `json:"entry"`
		Stats         GamificationResponse  `json:"stats"`
		NewlyUnlocked []AchievementResponse `json:"newly_unlocked"`
	}
)
