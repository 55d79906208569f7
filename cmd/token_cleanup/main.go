package main

import (
	"context"
	"log"
	"os"
	"time"

	"petsitter/internal/database"
	"petsitter/internal/repository"
)

// Removes auth tokens that expired or were revoked more than 30 days ago.
// Meant to run from cron.
func main() {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		databaseURL = "petsitter.db"
	}

	db, err := database.Connect(databaseURL)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	tokens := repository.NewAuthTokenRepository(db)

	removed, err := tokens.DeleteStale(context.Background(), time.Now().AddDate(0, 0, -30))
	if err != nil {
		log.Fatalf("token cleanup failed: %v", err)
	}

	log.Printf("token cleanup completed: removed=%d", removed)
}
