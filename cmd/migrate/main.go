package main

import (
	"log"
	"os"

	"wedding-portal-be/internal/model"
	"wedding-portal-be/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	// 2. Connect to Database using existing GORM helpers
	db, err := database.NewGormDBFromDSN(dsn, false)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	// 3. Extensions
	setupSQL := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto;`,
		`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	}
	for _, sql := range setupSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute setup SQL: %v. Continuing...", err)
		}
	}

	// 4. Tables
	models := model.All()
	log.Printf("Running AutoMigrate for %d tables...", len(models))
	if err := db.AutoMigrate(models...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	// 5. Post-migration: partial indexes AutoMigrate cannot express
	postMigrationSQL := []string{
		`CREATE INDEX IF NOT EXISTS idx_guests_wedding_rsvp ON guests (wedding_id, rsvp_status);`,
		`CREATE INDEX IF NOT EXISTS idx_media_uploads_pending ON media_uploads (wedding_id) WHERE is_approved = false;`,
		`CREATE INDEX IF NOT EXISTS idx_chatbot_logs_unanswered ON chatbot_logs (wedding_id, created_at) WHERE could_not_answer = true;`,
	}
	for _, sql := range postMigrationSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute post-migration SQL: %v", err)
		}
	}

	log.Println("Database migration completed")
}
