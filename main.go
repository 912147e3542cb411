package main

import (
	"FitGenius-Backend/cmd/config"
	migration "FitGenius-Backend/cmd/database/migrate"
	"FitGenius-Backend/internal/utils"

	"github.com/gofiber/fiber/v2/log"
)

func main() {
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("error connecting to database: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("error migrating database: %v", err)
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("error creating app: %v", err)
	}

	if err := app.Listen(":" + utils.GetConfig("PORT")); err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
