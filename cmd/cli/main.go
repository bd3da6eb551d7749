package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/anoline/anoline/cmd/cli/commands"
	"github.com/anoline/anoline/internal/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logger.Debug("No .env file found, using environment variables")
	}

	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
