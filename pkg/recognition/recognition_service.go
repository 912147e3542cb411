package recognition

import (
	"context"
	"math/rand"
	"mime/multipart"
	"time"

	"FitGenius-Backend/entities"
	"FitGenius-Backend/internal/utils"
)

type (
	// FoodRecognizer turns a meal photo into a nutrition record. The shipped
	// implementation is a simulation; a real recognition backend can be
	// substituted without touching the logging or gamification layers.
	FoodRecognizer interface {
		Recognize(ctx context.Context, photo *multipart.FileHeader) (RecognizedMeal, error)
	}

	RecognizedMeal struct {
		Name     string
		Calories float64
		Protein  float64
		Carbs    float64
		Fat      float64
		Meal     string
	}

	foodRecord struct {
		name     string
		calories float64
		protein  float64
		carbs    float64
		fat      float64
	}

	mockRecognizer struct {
		clock utils.Clock
		rng   *rand.Rand
		delay time.Duration
	}
)

// analysisDelay simulates recognition latency.
const analysisDelay = 2 * time.Second

// The demo nutrition catalog. Recognition draws one record at random.
var foodCatalog = []foodRecord{
	{"Arroz com Feijão", 350, 12, 65, 5},
	{"Frango Grelhado", 165, 31, 0, 3.6},
	{"Salada Verde", 50, 2, 10, 0.5},
	{"Macarrão à Bolonhesa", 450, 20, 60, 15},
	{"Pizza Margherita", 550, 18, 70, 20},
	{"Hambúrguer", 600, 25, 45, 30},
	{"Sushi", 300, 15, 50, 5},
	{"Banana", 105, 1.3, 27, 0.4},
	{"Ovo Cozido", 78, 6, 0.6, 5},
	{"Iogurte Natural", 120, 10, 12, 4},
}

func NewMockRecognizer(clock utils.Clock) FoodRecognizer {
	return &mockRecognizer{
		clock: clock,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
		delay: analysisDelay,
	}
}

func (r *mockRecognizer) Recognize(ctx context.Context, photo *multipart.FileHeader) (RecognizedMeal, error) {
	if r.delay > 0 {
		timer := time.NewTimer(r.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return RecognizedMeal{}, ctx.Err()
		case <-timer.C:
		}
	}

	record := foodCatalog[r.rng.Intn(len(foodCatalog))]

	return RecognizedMeal{
		Name:     record.name,
		Calories: record.calories,
		Protein:  record.protein,
		Carbs:    record.carbs,
		Fat:      record.fat,
		Meal:     MealSlotForHour(r.clock.Now().Hour()),
	}, nil
}

// MealSlotForHour classifies a local hour into a meal slot.
func MealSlotForHour(hour int) string {
	switch {
	case hour >= 6 && hour < 11:
		return entities.MealBreakfast
	case hour >= 11 && hour < 15:
		return entities.MealLunch
	case hour >= 18 && hour < 22:
		return entities.MealDinner
	default:
		return entities.MealSnack
	}
}
