package domain

var (
	MessageSuccessGetStats = "gamification stats retrieved successfully"
	MessageFailedGetStats  = "failed to retrieve gamification stats"
)

type (
	AchievementResponse struct {
		Key         string `json:"key"`
		Title       string `json:"title"`
		Description string `json:"description"`
		Unlocked    bool   `json:"unlocked"`
		Progress    int    `json:"progress"`
		Target      int    `json:"target"`
	}

	GamificationResponse struct {
		CurrentStreak    int                   `json:"current_streak"`
		LongestStreak    int                   `json:"longest_streak"`
		TotalMealsLogged int                   `json:"total_meals_logged"`
		TotalDaysActive  int                   `json:"total_days_active"`
		Level            int                   `json:"level"`
		XP               int                   `json:"xp"`
		XPToNextLevel    int                   `json:"xp_to_next_level"`
		Achievements     []AchievementResponse `json:"achievements"`
	}
)
