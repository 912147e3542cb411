package middleware

import (
	"FitGenius-Backend/domain"
	"FitGenius-Backend/internal/api/presenters"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/google/uuid"
)

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		DeviceMiddleware() fiber.Handler
	}

	middleware struct{}
)

func NewMiddleware() Middleware {
	return &middleware{}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, X-Device-ID",
		AllowMethods: "GET, POST, PUT, PATCH, DELETE",
	})
}

// DeviceMiddleware scopes requests to an anonymous client-generated device
// UUID. There are no accounts; the header plays the role the browser's
// localStorage origin played in the original client.
func (m *middleware) DeviceMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		deviceID := c.Get("X-Device-ID")
		if deviceID == "" {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetDeviceID, domain.ErrDeviceIDMissing)
		}

		if _, err := uuid.Parse(deviceID); err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetDeviceID, domain.ErrDeviceIDInvalid)
		}

		c.Locals("user_id", deviceID)
		return c.Next()
	}
}
