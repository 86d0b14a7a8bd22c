package main

import (
	"fmt"
	"log"

	"farmsync/internal/config"
	"farmsync/internal/database"
	"farmsync/internal/models"
	"farmsync/internal/repository"
	"farmsync/internal/services"
)

// Recreates the schema from scratch and seeds a demo owner account. Meant
// for local development only.
func main() {
	fmt.Println("Initializing database...")

	cfg := config.Load()

	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	fmt.Println("Dropping existing tables...")
	err = db.Migrator().DropTable(
		&models.Identity{},
		&models.Farm{},
		&models.Worker{},
		&models.EggProduction{},
		&models.FeedUsage{},
		&models.Mortality{},
		&models.Vaccination{},
		&models.DailyNote{},
	)
	if err != nil {
		log.Printf("Warning: Error dropping tables: %v", err)
	}

	fmt.Println("Creating tables...")
	if err := database.AutoMigrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	fmt.Println("Creating demo owner account...")
	identityService := services.NewIdentityService(repository.NewIdentityRepository(db))

	if _, err := identityService.SignUp("owner@example.com", "changeme123", "Demo Owner", "+256700000000"); err != nil {
		log.Printf("Warning: Failed to create demo owner: %v", err)
	} else {
		fmt.Println("Demo owner created")
		fmt.Println("Email: owner@example.com")
		fmt.Println("Password: changeme123")
	}

	fmt.Println("Done")
}
