// Runs the schema migrations and exits.
// How to run:
// go run cmd/migrate/main.go
package main

import (
	"strconv"

	"github.com/joho/godotenv"

	"github.com/anoline/anoline/config"
	"github.com/anoline/anoline/internal/db"
	"github.com/anoline/anoline/internal/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logger.Warn("No .env file found, using environment variables")
	}
	logger.InitializeAndConfigure()

	port, err := strconv.Atoi(config.GetEnv("DB_PORT", strconv.Itoa(db.DefaultPort)))
	if err != nil {
		logger.Fatalf("Invalid DB_PORT: %v", err)
	}

	dbConn, err := db.New(db.Options{
		Host:     config.GetEnv("DB_HOST", db.DefaultHost),
		User:     config.GetEnv("DB_USER", db.DefaultUser),
		Password: config.GetEnv("DB_PASSWORD", db.DefaultPassword),
		DBName:   config.GetEnv("DB_NAME", db.DefaultDBName),
		Port:     port,
	})
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.Migrate(dbConn); err != nil {
		logger.Fatalf("Migration failed: %v", err)
	}
	logger.Info("Migrations applied")
}
