package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/SeytekM/SmartBuilderPro/internal/domain"
	"github.com/SeytekM/SmartBuilderPro/internal/service"
)

// AppName and AppVersion identify the service in health and root responses.
const (
	AppName    = "SmartBuilder Pro"
	AppVersion = "1.0.0"
)

// Handler contains all HTTP handlers
type Handler struct {
	projectSvc    *service.ProjectService
	territorySvc  *service.TerritoryService
	assessmentSvc *service.AssessmentService
}

// NewHandler creates a new handler
func NewHandler(projectSvc *service.ProjectService, territorySvc *service.TerritoryService, assessmentSvc *service.AssessmentService) *Handler {
	return &Handler{
		projectSvc:    projectSvc,
		territorySvc:  territorySvc,
		assessmentSvc: assessmentSvc,
	}
}

// HealthCheck returns service health status
func (h *Handler) HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"service": "smartbuilder-backend",
		"version": AppVersion,
	})
}

// Root returns service info with entity counts
func (h *Handler) Root(c *fiber.Ctx) error {
	ctx := c.Context()

	projects, err := h.projectSvc.Count(ctx)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count projects")
	}
	territories, err := h.territorySvc.Count(ctx)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count territories")
	}

	return c.JSON(fiber.Map{
		"app":         AppName,
		"version":     AppVersion,
		"status":      "running",
		"projects":    projects,
		"territories": territories,
	})
}

// Stats returns system statistics including cache occupancy
func (h *Handler) Stats(c *fiber.Ctx) error {
	ctx := c.Context()

	projects, err := h.projectSvc.Count(ctx)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count projects")
	}
	territories, err := h.territorySvc.Count(ctx)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count territories")
	}
	assessments, err := h.assessmentSvc.Count(ctx)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to count assessments")
	}

	return c.JSON(fiber.Map{
		"projects":    projects,
		"territories": territories,
		"assessments": assessments,
		"cache_size":  h.assessmentSvc.CacheLen(),
	})
}

// CreateProject creates a new project
func (h *Handler) CreateProject(c *fiber.Ctx) error {
	var req domain.ProjectCreate
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	project, err := h.projectSvc.Create(c.Context(), req)
	if errors.Is(err, domain.ErrValidation) {
		return fiber.NewError(fiber.StatusBadRequest, "Project name must be 1-200 characters")
	}
	if err != nil {
		zap.L().Error("create project failed", zap.Error(err))
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create project")
	}

	return c.JSON(project)
}

// ListProjects returns all projects
func (h *Handler) ListProjects(c *fiber.Ctx) error {
	projects, err := h.projectSvc.List(c.Context())
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to list projects")
	}
	if projects == nil {
		projects = []domain.Project{}
	}
	return c.JSON(projects)
}

// GetProject returns a project by ID
func (h *Handler) GetProject(c *fiber.Ctx) error {
	project, err := h.projectSvc.Get(c.Context(), c.Params("id"))
	if errors.Is(err, domain.ErrNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "Project not found")
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch project")
	}
	return c.JSON(project)
}

// DeleteProject removes a project with its territories and assessments
func (h *Handler) DeleteProject(c *fiber.Ctx) error {
	err := h.projectSvc.Delete(c.Context(), c.Params("id"))
	if errors.Is(err, domain.ErrNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "Project not found")
	}
	if err != nil {
		zap.L().Error("delete project failed", zap.Error(err))
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete project")
	}
	return c.JSON(fiber.Map{"message": "Project deleted"})
}

// CreateTerritory creates a territory and runs a best-effort assessment
func (h *Handler) CreateTerritory(c *fiber.Ctx) error {
	var req domain.TerritoryCreate
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	territory, err := h.territorySvc.Create(c.Context(), req)
	if errors.Is(err, domain.ErrNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "Project not found")
	}
	if errors.Is(err, domain.ErrValidation) {
		return fiber.NewError(fiber.StatusBadRequest, "Coordinates must contain a closed ring of at least 4 [lon, lat] positions")
	}
	if err != nil {
		zap.L().Error("create territory failed", zap.Error(err))
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create territory")
	}

	return c.JSON(territory)
}

// GetTerritory returns a territory by ID
func (h *Handler) GetTerritory(c *fiber.Ctx) error {
	territory, err := h.territorySvc.Get(c.Context(), c.Params("id"))
	if errors.Is(err, domain.ErrNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "Territory not found")
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch territory")
	}
	return c.JSON(territory)
}

// GetAssessment returns the assessment for a territory. Territories whose
// assessment failed have no record and yield a 404, not a zeroed scorecard.
func (h *Handler) GetAssessment(c *fiber.Ctx) error {
	assessment, err := h.assessmentSvc.GetByTerritory(c.Context(), c.Params("territoryID"))
	if errors.Is(err, domain.ErrNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "Assessment not found")
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch assessment")
	}
	return c.JSON(assessment)
}
