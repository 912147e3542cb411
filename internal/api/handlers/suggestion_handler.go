package handlers

import (
	"FitGenius-Backend/domain"
	"FitGenius-Backend/internal/api/presenters"
	"FitGenius-Backend/pkg/suggestion"
	"errors"

	"github.com/gofiber/fiber/v2"
)

type (
	SuggestionHandler interface {
		GetSuggestions(c *fiber.Ctx) error
	}

	suggestionHandler struct {
		suggestionService suggestion.SuggestionService
	}
)

func NewSuggestionHandler(suggestionService suggestion.SuggestionService) SuggestionHandler {
	return &suggestionHandler{suggestionService: suggestionService}
}

func (h *suggestionHandler) GetSuggestions(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.suggestionService.GetSuggestions(c.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetSuggestions, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetSuggestions, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetSuggestions)
}
