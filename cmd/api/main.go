package main

import (
	"log"

	_ "github.com/joho/godotenv/autoload"

	_ "github.com/The0ne18/jobsbreeze-api/docs"
	"github.com/The0ne18/jobsbreeze-api/internal/adapter/http/routes"
	"github.com/The0ne18/jobsbreeze-api/internal/infrastructure/config"
)

// @title           JobsBreeze API
// @version         1.0
// @description     Business management service for contractors: estimates, clients, invoices and payments, backed by DynamoDB.

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := routes.Run(cfg); err != nil {
		log.Fatalf("Failed to startup the application: %v", err)
	}
}
