package main

import (
	"log"

	"github.com/foodplanner/backend/config"
	"github.com/foodplanner/backend/internal/database"
	"github.com/foodplanner/backend/internal/service"
)

// Seeds the recipe catalog without starting the API server. Safe to run
// repeatedly: seeding only happens while the catalog is empty.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	if err := service.NewRecipeService(db, nil).SeedIfEmpty(); err != nil {
		log.Fatalf("Failed to seed recipe catalog: %v", err)
	}
	log.Println("Recipe catalog ready")
}
