package recognition

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"FitGenius-Backend/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

func TestMealSlotForHour(t *testing.T) {
	tests := []struct {
		hour int
		want string
	}{
		{6, entities.MealBreakfast},
		{10, entities.MealBreakfast},
		{11, entities.MealLunch},
		{14, entities.MealLunch},
		{15, entities.MealSnack},
		{17, entities.MealSnack},
		{18, entities.MealDinner},
		{21, entities.MealDinner},
		{22, entities.MealSnack},
		{3, entities.MealSnack},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, MealSlotForHour(tt.hour), "hour %d", tt.hour)
	}
}

func TestRecognizeDrawsFromCatalog(t *testing.T) {
	clock := fixedClock{now: time.Date(2025, time.March, 10, 12, 30, 0, 0, time.UTC)}
	recognizer := &mockRecognizer{
		clock: clock,
		rng:   rand.New(rand.NewSource(1)),
	}

	meal, err := recognizer.Recognize(context.Background(), nil)
	require.NoError(t, err)

	var found bool
	for _, record := range foodCatalog {
		if record.name == meal.Name {
			found = true
			assert.Equal(t, record.calories, meal.Calories)
			assert.Equal(t, record.protein, meal.Protein)
			assert.Equal(t, record.carbs, meal.Carbs)
			assert.Equal(t, record.fat, meal.Fat)
		}
	}
	assert.True(t, found, "recognized meal %q not in catalog", meal.Name)
	assert.Equal(t, entities.MealLunch, meal.Meal)
}

func TestRecognizeHonorsCancellation(t *testing.T) {
	recognizer := &mockRecognizer{
		clock: fixedClock{now: time.Now()},
		rng:   rand.New(rand.NewSource(1)),
		delay: time.Minute,
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := recognizer.Recognize(ctx, nil)
	assert.ErrorIs(t, err, context.Canceled)
}
