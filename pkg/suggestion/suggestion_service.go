package suggestion

import (
	"context"

	"FitGenius-Backend/domain"
	"FitGenius-Backend/entities"
	"FitGenius-Backend/pkg/profile"
	"FitGenius-Backend/pkg/progress"
)

type (
	// SuggestionService builds rule-based diet and exercise tips from the
	// profile and today's intake.
	SuggestionService interface {
		GetSuggestions(ctx context.Context, userID string) (domain.SuggestionsResponse, error)
	}

	suggestionService struct {
		progressService   progress.ProgressService
		profileRepository profile.ProfileRepository
	}
)

// fullMealThreshold is the remaining-calorie mark above which a full meal is
// still recommended instead of a light snack.
const fullMealThreshold = 500

var dietOverGoal = []string{
	"Considere pular o lanche da tarde ou optar por frutas",
	"Aumente a ingestão de água para reduzir a fome",
	"Faça uma caminhada leve de 20 minutos após o jantar",
}

var dietFullMeal = []string{
	"Você ainda pode consumir uma refeição completa",
	"Adicione proteínas magras como frango ou peixe",
	"Inclua vegetais variados para mais nutrientes",
}

var dietLightSnack = []string{
	"Opte por um lanche leve como iogurte natural",
	"Frutas são uma ótima opção para o restante do dia",
	"Mantenha-se hidratado com água e chás sem açúcar",
}

var exerciseByActivity = map[string][]string{
	entities.ActivitySedentary:  {"Comece com caminhadas de 15 minutos", "Alongamentos matinais", "Subir escadas em vez de elevador"},
	entities.ActivityLight:      {"Caminhada rápida de 30 minutos", "Yoga ou pilates", "Ciclismo leve"},
	entities.ActivityModerate:   {"Corrida leve de 30 minutos", "Natação", "Treino funcional"},
	entities.ActivityActive:     {"HIIT de 20 minutos", "Corrida intensa", "Crossfit"},
	entities.ActivityVeryActive: {"Treino de força avançado", "Corrida de longa distância", "Esportes competitivos"},
}

func NewSuggestionService(progressService progress.ProgressService, profileRepository profile.ProfileRepository) SuggestionService {
	return &suggestionService{
		progressService:   progressService,
		profileRepository: profileRepository,
	}
}

func (s *suggestionService) GetSuggestions(ctx context.Context, userID string) (domain.SuggestionsResponse, error) {
	userProfile, err := s.profileRepository.GetProfileByUserID(ctx, userID)
	if err != nil {
		return domain.SuggestionsResponse{}, domain.ErrProfileNotFound
	}

	today, err := s.progressService.GetTodayProgress(ctx, userID)
	if err != nil {
		return domain.SuggestionsResponse{}, err
	}

	remaining := float64(userProfile.DailyCalorieGoal) - today.Calories.Consumed
	overGoal := remaining < 0

	return domain.SuggestionsResponse{
		Diet:              DietSuggestions(remaining),
		Exercise:          ExerciseSuggestions(userProfile.ActivityLevel),
		CaloriesRemaining: remaining,
		OverGoal:          overGoal,
	}, nil
}

func DietSuggestions(caloriesRemaining float64) []string {
	switch {
	case caloriesRemaining < 0:
		return dietOverGoal
	case caloriesRemaining > fullMealThreshold:
		return dietFullMeal
	default:
		return dietLightSnack
	}
}

// ExerciseSuggestions falls back to the moderate set for unknown levels.
func ExerciseSuggestions(activityLevel string) []string {
	if tips, ok := exerciseByActivity[activityLevel]; ok {
		return tips
	}
	return exerciseByActivity[entities.ActivityModerate]
}
