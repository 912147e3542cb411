package entry

import (
	"context"
	"errors"
	"fmt"

	"FitGenius-Backend/domain"
	"FitGenius-Backend/entities"
	"FitGenius-Backend/internal/utils"
	"FitGenius-Backend/internal/utils/storage"
	"FitGenius-Backend/pkg/gamification"
	"FitGenius-Backend/pkg/recognition"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	EntryService interface {
		LogMeal(ctx context.Context, req domain.LogMealRequest, userID string) (domain.LogMealResponse, error)
		GetEntries(ctx context.Context, userID string) ([]domain.FoodEntryResponse, error)
		DeleteEntry(ctx context.Context, id string, userID string) error
	}

	entryService struct {
		entryRepository     EntryRepository
		recognizer          recognition.FoodRecognizer
		gamificationService gamification.GamificationService
		s3                  storage.AwsS3
		clock               utils.Clock
	}
)

func NewEntryService(
	entryRepository EntryRepository,
	recognizer recognition.FoodRecognizer,
	gamificationService gamification.GamificationService,
	s3 storage.AwsS3,
	clock utils.Clock,
) EntryService {
	return &entryService{
		entryRepository:     entryRepository,
		recognizer:          recognizer,
		gamificationService: gamificationService,
		s3:                  s3,
		clock:               clock,
	}
}

func (s *entryService) LogMeal(ctx context.Context, req domain.LogMealRequest, userID string) (domain.LogMealResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.LogMealResponse{}, domain.ErrParseUUID
	}

	meal, err := s.recognizer.Recognize(ctx, req.Photo)
	if err != nil {
		return domain.LogMealResponse{}, domain.ErrRecognitionFailed
	}

	entryID := uuid.New()
	loggedAt := s.clock.Now()

	// Photo storage is best-effort: a failed upload loses the image, never
	// the entry.
	var imageURL string
	if s.s3 != nil {
		fileName := fmt.Sprintf("meal-%s", entryID.String())
		objectKey, uploadErr := s.s3.UploadFile(fileName, req.Photo, "meal-photos", storage.AllowImage...)
		if uploadErr != nil {
			log.Warnf("failed to upload meal photo for entry %s: %v", entryID, uploadErr)
		} else {
			imageURL = s.s3.GetPublicLinkKey(objectKey)
		}
	}

	foodEntry := &entities.FoodEntry{
		ID:       entryID,
		UserID:   userUUID,
		Name:     meal.Name,
		Calories: meal.Calories,
		Protein:  meal.Protein,
		Carbs:    meal.Carbs,
		Fat:      meal.Fat,
		ImageURL: imageURL,
		Meal:     meal.Meal,
		LoggedAt: loggedAt,
	}

	if err := s.entryRepository.CreateEntry(ctx, foodEntry); err != nil {
		return domain.LogMealResponse{}, err
	}

	stats, newlyUnlocked, err := s.gamificationService.RecordMealLogged(ctx, userID, loggedAt)
	if err != nil {
		return domain.LogMealResponse{}, err
	}

	return domain.LogMealResponse{
		Entry:         toEntryResponse(foodEntry),
		Stats:         stats,
		NewlyUnlocked: newlyUnlocked,
	}, nil
}

func (s *entryService) GetEntries(ctx context.Context, userID string) ([]domain.FoodEntryResponse, error) {
	entries, err := s.entryRepository.ListEntries(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.FoodEntryResponse, 0, len(entries))
	for _, e := range entries {
		response = append(response, toEntryResponse(e))
	}
	return response, nil
}

func (s *entryService) DeleteEntry(ctx context.Context, id string, userID string) error {
	foodEntry, err := s.entryRepository.GetEntryByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrEntryNotFound
		}
		return err
	}

	if foodEntry.UserID.String() != userID {
		return domain.ErrEntryNotFound
	}

	if foodEntry.ImageURL != "" && s.s3 != nil {
		objectKey := s.s3.GetObjectKeyFromLink(foodEntry.ImageURL)
		if objectKey != "" {
			_ = s.s3.DeleteFile(objectKey)
		}
	}

	return s.entryRepository.DeleteEntry(ctx, id, userID)
}

func toEntryResponse(e *entities.FoodEntry) domain.FoodEntryResponse {
	return domain.FoodEntryResponse{
		ID:       e.ID.String(),
		Name:     e.Name,
		Calories: e.Calories,
		Protein:  e.Protein,
		Carbs:    e.Carbs,
		Fat:      e.Fat,
		ImageURL: e.ImageURL,
		Meal:     e.Meal,
		LoggedAt: e.LoggedAt,
	}
}
