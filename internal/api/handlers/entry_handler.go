package handlers

import (
	"FitGenius-Backend/domain"
	"FitGenius-Backend/internal/api/presenters"
	"FitGenius-Backend/pkg/entry"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	EntryHandler interface {
		LogMeal(c *fiber.Ctx) error
		GetEntries(c *fiber.Ctx) error
		DeleteEntry(c *fiber.Ctx) error
	}

	entryHandler struct {
		entryService entry.EntryService
		validator    *validator.Validate
	}
)

func NewEntryHandler(entryService entry.EntryService, validator *validator.Validate) EntryHandler {
	return &entryHandler{
		entryService: entryService,
		validator:    validator,
	}
}

func (h *entryHandler) LogMeal(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.LogMealRequest)

	file, err := c.FormFile("photo")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	req.Photo = file

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedInvalidPhoto, err)
	}

	res, err := h.entryService.LogMeal(c.Context(), *req, userID)
	if err != nil {
		if errors.Is(err, domain.ErrRecognitionFailed) {
			return presenters.ErrorResponse(c, fiber.StatusBadGateway, domain.MessageFailedAnalyzePhoto, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLogMeal, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessLogMeal)
}

func (h *entryHandler) GetEntries(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	entries, err := h.entryService.GetEntries(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetEntries, err)
	}

	return presenters.SuccessResponse(c, entries, fiber.StatusOK, domain.MessageSuccessGetEntries)
}

func (h *entryHandler) DeleteEntry(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	entryID := c.Params("id")

	if err := h.entryService.DeleteEntry(c.Context(), entryID, userID); err != nil {
		if errors.Is(err, domain.ErrEntryNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeleteEntry, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteEntry, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteEntry)
}
