package domain

var (
	MessageSuccessGetSuggestions = "suggestions retrieved successfully"
	MessageFailedGetSuggestions  = "failed to retrieve suggestions"
)

type (
	SuggestionsResponse struct {
		Diet              []string `json:"diet"`
		Exercise          []string `json:"exercise"`
		CaloriesRemaining float64  `json:"calories_remaining"`
		OverGoal          bool     `json:"over_goal"`
	}
)
