package handlers

import (
	"FitGenius-Backend/domain"
	"FitGenius-Backend/internal/api/presenters"
	"FitGenius-Backend/pkg/subscription"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	SubscriptionHandler interface {
		GetPlans(c *fiber.Ctx) error
		Checkout(c *fiber.Ctx) error
		GetStatus(c *fiber.Ctx) error
	}

	subscriptionHandler struct {
		subscriptionService subscription.SubscriptionService
		validator           *validator.Validate
	}
)

func NewSubscriptionHandler(subscriptionService subscription.SubscriptionService, validator *validator.Validate) SubscriptionHandler {
	return &subscriptionHandler{
		subscriptionService: subscriptionService,
		validator:           validator,
	}
}

func (h *subscriptionHandler) GetPlans(c *fiber.Ctx) error {
	plans := h.subscriptionService.GetPlans(c.Context())
	return presenters.SuccessResponse(c, plans, fiber.StatusOK, domain.MessageSuccessGetPlans)
}

func (h *subscriptionHandler) Checkout(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CheckoutRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCheckout, err)
	}

	res, err := h.subscriptionService.Checkout(c.Context(), *req, userID)
	if err != nil {
		if errors.Is(err, domain.ErrPaymentFailed) {
			return presenters.ErrorResponse(c, fiber.StatusPaymentRequired, domain.MessageFailedCheckout, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCheckout, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCheckout)
}

func (h *subscriptionHandler) GetStatus(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.subscriptionService.GetStatus(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetStatus, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetStatus)
}
