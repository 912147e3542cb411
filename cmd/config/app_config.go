package config

import (
	"FitGenius-Backend/internal/api/handlers"
	"FitGenius-Backend/internal/api/routes"
	"FitGenius-Backend/internal/middleware"
	"FitGenius-Backend/internal/utils"
	"FitGenius-Backend/internal/utils/storage"
	"FitGenius-Backend/pkg/entry"
	"FitGenius-Backend/pkg/gamification"
	"FitGenius-Backend/pkg/payment"
	"FitGenius-Backend/pkg/profile"
	"FitGenius-Backend/pkg/progress"
	"FitGenius-Backend/pkg/recognition"
	"FitGenius-Backend/pkg/subscription"
	"FitGenius-Backend/pkg/suggestion"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "America/Sao_Paulo",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	clock := utils.NewClock()

	// Repository
	profileRepository := profile.NewProfileRepository(db)
	entryRepository := entry.NewEntryRepository(db)
	gamificationRepository := gamification.NewGamificationRepository(db)
	subscriptionRepository := subscription.NewSubscriptionRepository(db)

	// Service
	recognizer := recognition.NewMockRecognizer(clock)
	gateway := payment.NewMockGateway()
	if utils.GetConfig("PAYMENT_GATEWAY") == "midtrans" {
		gateway = payment.NewMidtransGateway()
	}
	profileService := profile.NewProfileService(profileRepository)
	gamificationService := gamification.NewGamificationService(gamificationRepository)
	entryService := entry.NewEntryService(entryRepository, recognizer, gamificationService, s3, clock)
	progressService := progress.NewProgressService(entryRepository, profileRepository, clock)
	suggestionService := suggestion.NewSuggestionService(progressService, profileRepository)
	subscriptionService := subscription.NewSubscriptionService(subscriptionRepository, profileRepository, gateway, clock)

	// Handler
	profileHandler := handlers.NewProfileHandler(profileService, validator)
	entryHandler := handlers.NewEntryHandler(entryService, validator)
	progressHandler := handlers.NewProgressHandler(progressService)
	gamificationHandler := handlers.NewGamificationHandler(gamificationService)
	suggestionHandler := handlers.NewSuggestionHandler(suggestionService)
	subscriptionHandler := handlers.NewSubscriptionHandler(subscriptionService, validator)

	// routes
	routesConfig := routes.Config{
		App:                 app,
		ProfileHandler:      profileHandler,
		EntryHandler:        entryHandler,
		ProgressHandler:     progressHandler,
		GamificationHandler: gamificationHandler,
		SuggestionHandler:   suggestionHandler,
		SubscriptionHandler: subscriptionHandler,
		Middleware:          middlewares,
	}
	routesConfig.Setup()
	return app, nil
}
