// Package routes wires the versioned API surface onto a fiber app.
package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/anoline/anoline/internal/api/v1/handlers"
)

// API defaults shared by the server and the client.
const (
	// DefaultPort is the port the API server listens on
	DefaultPort = "8080"
	// APIv1Prefix is the path prefix of the v1 API
	APIv1Prefix = "/api/v1"
	// DefaultBaseURL is where a local client finds the server
	DefaultBaseURL = "http://localhost:" + DefaultPort
)

// Handlers bundles every handler the router needs
type Handlers struct {
	Catalog *handlers.CatalogHandler
	Plan    *handlers.PlanHandler
	Gantt   *handlers.GanttHandler
}

// SetupRoutes configures all the v1 routes
func SetupRoutes(router fiber.Router, h Handlers) {
	parts := router.Group("/parts")
	parts.Post("/", h.Catalog.CreatePart)
	parts.Get("/", h.Catalog.ListParts)
	parts.Get("/:number", h.Catalog.GetPart)

	jigs := router.Group("/jigs")
	jigs.Post("/", h.Catalog.CreateJig)
	jigs.Get("/", h.Catalog.ListJigs)

	plans := router.Group("/plans")
	plans.Post("/", h.Plan.CreatePlan)
	plans.Post("/preview", h.Plan.PreviewPlan)
	plans.Get("/", h.Plan.ListPlans)
	plans.Get("/:id", h.Plan.GetPlan)
	plans.Delete("/:id", h.Plan.DeletePlan)

	gantt := router.Group("/gantt")
	gantt.Post("/schedule", h.Gantt.ScheduleJob)
	gantt.Post("/adjust", h.Gantt.AdjustJob)
	gantt.Post("/shift", h.Gantt.ShiftJob)
	gantt.Get("/data", h.Gantt.Data)
	gantt.Get("/jobs/:id", h.Gantt.ListJobLoads)
	gantt.Delete("/jobs/:id", h.Gantt.DeleteJob)
	gantt.Delete("/loads/:id", h.Gantt.DeleteLoad)
	gantt.Post("/expired", h.Gantt.DeleteExpired)
}

// Register registers the v1 routes
func Register(app *fiber.App, h Handlers) {
	v1Group := app.Group(APIv1Prefix)
	SetupRoutes(v1Group, h)
}
