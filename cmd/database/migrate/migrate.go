package migration

import (
	"FitGenius-Backend/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.UserProfile{}); err != nil {
		log.Fatalf("Error migrating user profile database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.FoodEntry{}); err != nil {
		log.Fatalf("Error migrating food entry database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.GamificationState{}); err != nil {
		log.Fatalf("Error migrating gamification state database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Achievement{}); err != nil {
		log.Fatalf("Error migrating achievement database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Subscription{}); err != nil {
		log.Fatalf("Error migrating subscription database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.PaymentTransaction{}); err != nil {
		log.Fatalf("Error migrating payment transaction database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
