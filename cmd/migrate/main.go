package main

import (
	"log"
	"os"

	"ai-comicstory-be/internal/model"
	"ai-comicstory-be/pkg/database"

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
	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Step 1: Setting up extensions...")
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
		log.Printf("Warn: Failed to create pgcrypto extension: %v. Continuing...", err)
	}

	log.Println("Step 2: Running AutoMigrate...")
	if err := db.AutoMigrate(&model.Story{}); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	// Ids are assigned in Go; the database default covers rows inserted by hand.
	log.Println("Step 3: Column defaults...")
	postMigrationSQL := []string{
		`ALTER TABLE stories ALTER COLUMN id SET DEFAULT gen_random_uuid();`,
		`ALTER TABLE stories ALTER COLUMN created_at SET DEFAULT now();`,
	}
	for _, sql := range postMigrationSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute post-migration SQL: %v", err)
		}
	}

	log.Println("Migration complete.")
}
