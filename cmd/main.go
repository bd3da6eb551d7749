package main

import (
	"strconv"

	"github.com/joho/godotenv"

	"github.com/anoline/anoline/config"
	"github.com/anoline/anoline/internal/api/v1/handlers"
	"github.com/anoline/anoline/internal/api/v1/routes"
	"github.com/anoline/anoline/internal/app"
	"github.com/anoline/anoline/internal/constants"
	"github.com/anoline/anoline/internal/db"
	"github.com/anoline/anoline/internal/db/repos"
	"github.com/anoline/anoline/internal/logger"
	"github.com/anoline/anoline/internal/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logger.Warn("No .env file found, using environment variables")
	}
	logger.InitializeAndConfigure()

	dbConn, err := db.New(dbOptions())
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}

	partRepo := repos.NewPartRepository(dbConn)
	jigRepo := repos.NewJigRepository(dbConn)
	jobRepo := repos.NewComponentJobRepository(dbConn)
	ganttRepo := repos.NewGanttJobRepository(dbConn)

	catalog := services.NewCatalog(partRepo, jigRepo)
	planner := services.NewPlanner(partRepo, jigRepo, jobRepo)
	gantt := services.NewGantt(jobRepo, ganttRepo)

	server := app.NewApp(routes.Handlers{
		Catalog: handlers.NewCatalogHandler(catalog),
		Plan:    handlers.NewPlanHandler(planner),
		Gantt:   handlers.NewGanttHandler(gantt),
	})

	port := config.GetEnv(constants.EnvServerPort, routes.DefaultPort)
	logger.Infof("Starting server on port %s", port)
	if err := server.Listen(":" + port); err != nil {
		logger.Fatalf("Server stopped: %v", err)
	}
}

func dbOptions() db.Options {
	port, err := strconv.Atoi(config.GetEnv("DB_PORT", strconv.Itoa(db.DefaultPort)))
	if err != nil {
		logger.Fatalf("Invalid DB_PORT: %v", err)
	}
	return db.Options{
		Host:     config.GetEnv("DB_HOST", db.DefaultHost),
		User:     config.GetEnv("DB_USER", db.DefaultUser),
		Password: config.GetEnv("DB_PASSWORD", db.DefaultPassword),
		DBName:   config.GetEnv("DB_NAME", db.DefaultDBName),
		Port:     port,
	}
}
