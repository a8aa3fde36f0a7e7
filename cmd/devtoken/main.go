package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"ai-comicstory-be/internal/pkg/serverutils"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

// Prints a bearer token for local testing against the REST API.
func main() {
	_ = godotenv.Load()

	userFlag := flag.String("user", "", "user id (random when empty)")
	ttlFlag := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		color.Red("JWT_SECRET is not set")
		os.Exit(1)
	}

	userId := uuid.New()
	if *userFlag != "" {
		parsed, err := uuid.Parse(*userFlag)
		if err != nil {
			color.Red("Invalid user id: %v", err)
			os.Exit(1)
		}
		userId = parsed
	}

	token, err := serverutils.SignToken(secret, userId, *ttlFlag)
	if err != nil {
		color.Red("Failed to sign token: %v", err)
		os.Exit(1)
	}

	color.Cyan("user_id: %s", userId)
	fmt.Println(token)
}
