package database

import (
	"fmt"
	"log"
	"os"

	"github.com/launchjobs/jobboard-api/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Connect() *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		envOr("DB_HOST", "localhost"),
		envOr("DB_USER", "postgres"),
		envOr("DB_PASSWORD", "password"),
		envOr("DB_NAME", "jobboard"),
		envOr("DB_PORT", "5432"),
		envOr("DB_SSLMODE", "disable"),
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	log.Println("Database connection established")

	// Migration: This creates the tables in Postgres automatically
	log.Println("Running Migrations...")
	DB.AutoMigrate(&models.User{}, &models.Job{})
	return DB
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
