package main

import (
	"log"
	"smart-home-api/db"
	"smart-home-api/rest"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	store, err := db.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer store.Close()

	log.Println("Connected to database successfully")

	if err := store.InitSchema(); err != nil {
		log.Printf("Warning: Failed to initialize schema: %v", err)
	}

	if err := store.RunMigrations(); err != nil {
		log.Printf("Warning: Failed to run migrations: %v", err)
	}

	version, err := store.GetCurrentVersion()
	if err != nil {
		log.Printf("Warning: Failed to get current schema version: %v", err)
	} else {
		log.Printf("Database schema version: %d", version)
	}

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PATCH, DELETE, OPTIONS",
	}))

	rest.Init(app, store)

	log.Println("Starting server on :8080")
	if err := app.Listen(":8080"); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
