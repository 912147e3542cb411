package handlers

import (
	"FitGenius-Backend/domain"
	"FitGenius-Backend/internal/api/presenters"
	"FitGenius-Backend/pkg/progress"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type (
	ProgressHandler interface {
		GetDailyProgress(c *fiber.Ctx) error
		GetTodayProgress(c *fiber.Ctx) error
	}

	progressHandler struct {
		progressService progress.ProgressService
	}
)

func NewProgressHandler(progressService progress.ProgressService) ProgressHandler {
	return &progressHandler{progressService: progressService}
}

func (h *progressHandler) GetDailyProgress(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	days, err := strconv.Atoi(c.Query("days", "7"))
	if err != nil || days < 1 {
		days = 7
	}

	buckets, err := h.progressService.GetDailyProgress(c.Context(), userID, days)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetDailyProgress, err)
	}

	return presenters.SuccessResponse(c, buckets, fiber.StatusOK, domain.MessageSuccessGetDailyProgress)
}

func (h *progressHandler) GetTodayProgress(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.progressService.GetTodayProgress(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetTodayProgress, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetTodayProgress)
}
