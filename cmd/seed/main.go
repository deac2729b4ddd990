package main

import (
	"log"
	"os"
	"strings"
	"time"

	"wedding-portal-be/internal/model"
	"wedding-portal-be/pkg/database"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Seeds one demo wedding with a small catalog and a few guests. Running it
// twice is a no-op because the admin email is unique.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn, false)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	email := strings.ToLower(getEnv("SEED_ADMIN_EMAIL", "couple@example.com"))
	password := getEnv("SEED_ADMIN_PASSWORD", "changeme123")

	var existing model.Wedding
	if err := db.Where("admin_email = ?", email).First(&existing).Error; err == nil {
		log.Printf("Wedding for %s already exists, skipping...", email)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Error hashing password: %v", err)
	}

	venue := "Palm Garden Resort"
	city := "Marrakesh"
	wedding := model.Wedding{
		CoupleNames:       "Layla & Omar",
		WeddingDate:       time.Now().AddDate(0, 3, 0).Truncate(24 * time.Hour),
		VenueName:         &venue,
		VenueCity:         &city,
		AdminEmail:        email,
		AdminPasswordHash: string(hash),
		IsActive:          true,
	}
	if err := db.Create(&wedding).Error; err != nil {
		log.Fatalf("Error creating wedding: %v", err)
	}
	log.Printf("Created wedding %s (%s)", wedding.CoupleNames, wedding.Id)

	SeedCatalog(db, &wedding)
	SeedGuests(db, &wedding)

	log.Println("Seeding completed!")
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
