package handlers

import (
	"errors"
	"strconv"

	fiber "github.com/gofiber/fiber/v2"

	"github.com/anoline/anoline/internal/process"
	"github.com/anoline/anoline/internal/services"
	"github.com/anoline/anoline/internal/types"
)

// PlanHandler handles HTTP requests for component job plans
type PlanHandler struct {
	planner *services.Planner
}

// NewPlanHandler creates a new instance of PlanHandler
func NewPlanHandler(planner *services.Planner) *PlanHandler {
	return &PlanHandler{planner: planner}
}

// CreatePlan handles compiling and persisting a component job for an order line
func (h *PlanHandler) CreatePlan(c *fiber.Ctx) error {
	var req services.PlanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrInvalidInput("Invalid request body"))
	}

	job, err := h.planner.CreatePlan(c.Context(), &req)
	if err != nil {
		return planError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(types.Success(job))
}

// PreviewPlan handles compiling a component job without persisting it
func (h *PlanHandler) PreviewPlan(c *fiber.Ctx) error {
	var req services.PlanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrInvalidInput("Invalid request body"))
	}

	job, err := h.planner.PreviewPlan(c.Context(), &req)
	if err != nil {
		return planError(c, err)
	}

	return c.JSON(types.Success(job))
}

// GetPlan handles retrieving a component job by ID
func (h *PlanHandler) GetPlan(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrInvalidInput("Invalid job ID"))
	}

	job, err := h.planner.GetPlan(c.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrJobNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ErrNotFound(err.Error()))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrServer(err.Error()))
	}

	return c.JSON(types.Success(job))
}

// ListPlans handles retrieving component jobs with pagination
func (h *PlanHandler) ListPlans(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	listOpts := getPaginationOptions(page)

	jobs, err := h.planner.ListPlans(c.Context(), listOpts)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrServer(err.Error()))
	}

	return c.JSON(types.Success(map[string]interface{}{
		"jobs": jobs,
		"pagination": types.PaginationResponse{
			Total:  len(jobs),
			Page:   page,
			Limit:  listOpts.Limit,
			Offset: listOpts.Offset,
		},
	}))
}

// DeletePlan handles deleting a component job by ID
func (h *PlanHandler) DeletePlan(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrInvalidInput("Invalid job ID"))
	}

	if err := h.planner.DeletePlan(c.Context(), id); err != nil {
		if errors.Is(err, services.ErrJobNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ErrNotFound(err.Error()))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrServer(err.Error()))
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// planError maps compilation failures onto the right status codes
func planError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrPartNotFound):
		return c.Status(fiber.StatusNotFound).JSON(types.ErrNotFound(err.Error()))
	case errors.Is(err, process.ErrInvalidSpec), errors.Is(err, process.ErrInvalidCapacity):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(types.ErrInvalidInput(err.Error()))
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrServer(err.Error()))
	}
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
