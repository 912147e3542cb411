package domain

var (
	MessageSuccessGetDailyProgress = "daily progress retrieved successfully"
	MessageSuccessGetTodayProgress = "today's progress retrieved successfully"
	MessageFailedGetDailyProgress  = "failed to retrieve daily progress"
	MessageFailedGetTodayProgress  = "failed to retrieve today's progress"
)

type (
	DailyTotals struct {
		Date          string  `json:"date"` // "2006-01-02"
		TotalCalories float64 `json:"total_calories"`
		TotalProtein  float64 `json:"total_protein"`
		TotalCarbs    float64 `json:"total_carbs"`
		TotalFat      float64 `json:"total_fat"`
		EntryCount    int     `json:"entry_count"`
	}

	NutrientProgress struct {
		Consumed float64 `json:"consumed"`
		Goal     float64 `json:"goal"`
		Percent  float64 `json:"percent"`
	}

	TodayProgressResponse struct {
		Date              string           `json:"date"`
		Calories          NutrientProgress `json:"calories"`
		Protein           float64          `json:"protein"`
		Carbs             float64          `json:"carbs"`
		Fat               float64          `json:"fat"`
		CaloriesRemaining float64          `json:"calories_remaining"`
	}
)
