package database

import (
	"log"

	"github.com/recruitwarx/portal/internal/config"
	"github.com/recruitwarx/portal/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the Postgres connection and brings the schema up to date.
func Connect(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	log.Println("Database connection established")

	if err := Migrate(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	if cfg.SeedSampleData {
		if err := Seed(db); err != nil {
			log.Printf("⚠️  Sample data seeding failed: %v", err)
		}
	}

	return db
}

// Migrate creates or updates all tables.
func Migrate(db *gorm.DB) error {
	log.Println("Running Migrations...")
	return db.AutoMigrate(
		&models.User{},
		&models.Company{},
		&models.Job{},
		&models.Application{},
		&models.Interview{},
		&models.Message{},
		&models.Notification{},
	)
}
