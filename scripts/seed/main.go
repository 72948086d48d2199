// Standalone seeder for local development.
// Usage: go run scripts/seed/main.go
package main

import (
	"fmt"
	"log"

	"github.com/gstrauss42/life-tracker/internal/config"
	"github.com/gstrauss42/life-tracker/internal/seed"
	"gorm.io/gorm"
)

func main() {
	cfg := config.Load()

	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Run(db); err != nil {
		log.Fatalf("Seed failed: %v", err)
	}

	fmt.Println("\nSample user IDs for testing:")
	printUserIDs(db)
}

func printUserIDs(db *gorm.DB) {
	type row struct {
		ID          string
		DisplayName string
		Timezone    string
	}
	var rows []row
	if err := db.Table("users").Select("id, display_name, timezone").Scan(&rows).Error; err != nil {
		log.Printf("Failed to list users: %v", err)
		return
	}
	for _, r := range rows {
		fmt.Printf("  %s (%s, %s)\n", r.ID, r.DisplayName, r.Timezone)
	}
}
