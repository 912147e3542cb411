package handlers

import (
	"FitGenius-Backend/domain"
	"FitGenius-Backend/internal/api/presenters"
	"FitGenius-Backend/pkg/gamification"

	"github.com/gofiber/fiber/v2"
)

type (
	GamificationHandler interface {
		GetStats(c *fiber.Ctx) error
	}

	gamificationHandler struct {
		gamificationService gamification.GamificationService
	}
)

func NewGamificationHandler(gamificationService gamification.GamificationService) GamificationHandler {
	return &gamificationHandler{gamificationService: gamificationService}
}

func (h *gamificationHandler) GetStats(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	stats, err := h.gamificationService.GetStats(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetStats, err)
	}

	return presenters.SuccessResponse(c, stats, fiber.StatusOK, domain.MessageSuccessGetStats)
}
