package main

import (
	"context"
	"log"
	"os"

	"codekickstart-be/internal/repository/unitofwork"
	"codekickstart-be/internal/service"
	"codekickstart-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	gocache "github.com/patrickmn/go-cache"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	uowFactory := unitofwork.NewRepositoryFactory(db)
	languageService := service.NewLanguageService(uowFactory, gocache.New(gocache.NoExpiration, 0))

	color.Cyan("Seeding language catalog...")

	res, err := languageService.SeedLanguages(context.Background())
	if err != nil {
		log.Fatalf("Error: Seeding failed: %v", err)
	}

	color.Green("✅ %s", res.Result)
}
