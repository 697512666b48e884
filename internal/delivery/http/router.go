package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/SeytekM/SmartBuilderPro/internal/service"
)

// SetupRoutes configures all HTTP routes
func SetupRoutes(app *fiber.App, projectSvc *service.ProjectService, territorySvc *service.TerritoryService, assessmentSvc *service.AssessmentService) {
	handler := NewHandler(projectSvc, territorySvc, assessmentSvc)

	// Health check and service info
	app.Get("/health", handler.HealthCheck)
	app.Get("/", handler.Root)
	app.Get("/stats", handler.Stats)

	// Projects
	app.Post("/projects", handler.CreateProject)
	app.Get("/projects", handler.ListProjects)
	app.Get("/projects/:id", handler.GetProject)
	app.Delete("/projects/:id", handler.DeleteProject)

	// Territories (creating one triggers a best-effort assessment)
	app.Post("/territories", handler.CreateTerritory)
	app.Get("/territories/:id", handler.GetTerritory)

	// Assessments are keyed by territory ID
	app.Get("/assessments/:territoryID", handler.GetAssessment)
}
