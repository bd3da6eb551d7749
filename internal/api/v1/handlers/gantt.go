package handlers

import (
	"errors"
	"time"

	fiber "github.com/gofiber/fiber/v2"

	"github.com/anoline/anoline/internal/process"
	"github.com/anoline/anoline/internal/services"
	"github.com/anoline/anoline/internal/types"
)

// GanttHandler handles HTTP requests for scheduled load timelines
type GanttHandler struct {
	gantt *services.Gantt
}

// NewGanttHandler creates a new instance of GanttHandler
func NewGanttHandler(gantt *services.Gantt) *GanttHandler {
	return &GanttHandler{gantt: gantt}
}

// ScheduleJob handles placing every load of a component job on the timeline
func (h *GanttHandler) ScheduleJob(c *fiber.Ctx) error {
	var req services.ScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrInvalidInput("Invalid request body"))
	}
	if req.Start.IsZero() {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrInvalidInput("Start time is required"))
	}

	loads, err := h.gantt.ScheduleJob(c.Context(), &req)
	if err != nil {
		return ganttError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(types.Success(loads))
}

// AdjustJob handles relabelling the slots of a scheduled component job
func (h *GanttHandler) AdjustJob(c *fiber.Ctx) error {
	var req services.AdjustRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrInvalidInput("Invalid request body"))
	}

	if err := h.gantt.AdjustJob(c.Context(), &req); err != nil {
		return ganttError(c, err)
	}

	return c.JSON(types.Success(nil))
}

// ShiftJob handles rigidly moving a scheduled component job in time
func (h *GanttHandler) ShiftJob(c *fiber.Ctx) error {
	var req services.ShiftRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrInvalidInput("Invalid request body"))
	}

	if err := h.gantt.ShiftJob(c.Context(), &req); err != nil {
		return ganttError(c, err)
	}

	return c.JSON(types.Success(nil))
}

// Data handles retrieving the full chart payload
func (h *GanttHandler) Data(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	listOpts := getPaginationOptions(page)

	data, err := h.gantt.Data(c.Context(), listOpts)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrServer(err.Error()))
	}

	return c.JSON(types.Success(data))
}

// ListJobLoads handles retrieving every scheduled load of a component job
func (h *GanttHandler) ListJobLoads(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrInvalidInput("Invalid job ID"))
	}

	loads, err := h.gantt.ListByJob(c.Context(), id)
	if err != nil {
		return ganttError(c, err)
	}

	return c.JSON(types.Success(loads))
}

// DeleteJob handles deleting every scheduled load of a component job
func (h *GanttHandler) DeleteJob(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrInvalidInput("Invalid job ID"))
	}

	if err := h.gantt.DeleteJob(c.Context(), id); err != nil {
		return ganttError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteLoad handles deleting a single scheduled load
func (h *GanttHandler) DeleteLoad(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrInvalidInput("Invalid load ID"))
	}

	if err := h.gantt.DeleteLoad(c.Context(), id); err != nil {
		return ganttError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// DeleteExpired handles purging loads past the retention horizon
func (h *GanttHandler) DeleteExpired(c *fiber.Ctx) error {
	deleted, err := h.gantt.DeleteExpired(c.Context(), time.Now().UTC())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrServer(err.Error()))
	}

	return c.JSON(types.Success(map[string]interface{}{"deleted": deleted}))
}

// ganttError maps scheduling failures onto the right status codes
func ganttError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrJobNotFound), errors.Is(err, services.ErrScheduleNotFound):
		return c.Status(fiber.StatusNotFound).JSON(types.ErrNotFound(err.Error()))
	case errors.Is(err, process.ErrInvalidSpec),
		errors.Is(err, process.ErrInvalidCapacity),
		errors.Is(err, process.ErrUnknownOperationSlot):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(types.ErrInvalidInput(err.Error()))
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrServer(err.Error()))
	}
}
