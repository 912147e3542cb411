package routes

import (
	"FitGenius-Backend/internal/api/handlers"
	"FitGenius-Backend/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                 *fiber.App
	ProfileHandler      handlers.ProfileHandler
	EntryHandler        handlers.EntryHandler
	ProgressHandler     handlers.ProgressHandler
	GamificationHandler handlers.GamificationHandler
	SuggestionHandler   handlers.SuggestionHandler
	SubscriptionHandler handlers.SubscriptionHandler
	Middleware          middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.GuestRoute()
	c.Profile()
	c.Entries()
	c.Progress()
	c.Gamification()
	c.Suggestions()
	c.Subscription()
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}

func (c *Config) Profile() {
	profile := c.App.Group("/api/v1/profile", c.Middleware.DeviceMiddleware())
	{
		profile.Put("", c.ProfileHandler.SaveProfile)
		profile.Get("", c.ProfileHandler.GetProfile)
	}
}

func (c *Config) Entries() {
	entries := c.App.Group("/api/v1/entries", c.Middleware.DeviceMiddleware())
	{
		entries.Post("", c.EntryHandler.LogMeal)
		entries.Get("", c.EntryHandler.GetEntries)
		entries.Delete("/:id", c.EntryHandler.DeleteEntry)
	}
}

func (c *Config) Progress() {
	progress := c.App.Group("/api/v1/progress", c.Middleware.DeviceMiddleware())
	{
		progress.Get("/daily", c.ProgressHandler.GetDailyProgress)
		progress.Get("/today", c.ProgressHandler.GetTodayProgress)
	}
}

func (c *Config) Gamification() {
	c.App.Get("/api/v1/gamification", c.Middleware.DeviceMiddleware(), c.GamificationHandler.GetStats)
}

func (c *Config) Suggestions() {
	c.App.Get("/api/v1/suggestions", c.Middleware.DeviceMiddleware(), c.SuggestionHandler.GetSuggestions)
}

func (c *Config) Subscription() {
	subscription := c.App.Group("/api/v1/subscription", c.Middleware.DeviceMiddleware())
	{
		subscription.Get("/plans", c.SubscriptionHandler.GetPlans)
		subscription.Post("/checkout", c.SubscriptionHandler.Checkout)
		subscription.Get("", c.SubscriptionHandler.GetStatus)
	}
}
