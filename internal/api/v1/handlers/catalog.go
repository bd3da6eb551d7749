// Package handlers provides HTTP request handling
package handlers

import (
	"errors"

	fiber "github.com/gofiber/fiber/v2"

	"github.com/anoline/anoline/internal/db/models"
	"github.com/anoline/anoline/internal/services"
	"github.com/anoline/anoline/internal/types"
)

// CatalogHandler handles HTTP requests for part and jig reference data
type CatalogHandler struct {
	catalog *services.Catalog
}

// NewCatalogHandler creates a new instance of CatalogHandler
func NewCatalogHandler(catalog *services.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// CreatePart handles registering a new part specification
func (h *CatalogHandler) CreatePart(c *fiber.Ctx) error {
	var part models.Part
	if err := c.BodyParser(&part); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrInvalidInput("Invalid request body"))
	}

	if err := h.catalog.CreatePart(c.Context(), &part); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrInvalidInput(err.Error()))
	}

	return c.Status(fiber.StatusCreated).JSON(types.Success(part))
}

// GetPart handles retrieving a part by part number
func (h *CatalogHandler) GetPart(c *fiber.Ctx) error {
	partNumber := c.Params("number")
	if partNumber == "" {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrInvalidInput("Part number is required"))
	}

	part, err := h.catalog.GetPart(c.Context(), partNumber)
	if err != nil {
		if errors.Is(err, services.ErrPartNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(types.ErrNotFound(err.Error()))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrServer(err.Error()))
	}

	return c.JSON(types.Success(part))
}

// ListParts handles retrieving parts with pagination
func (h *CatalogHandler) ListParts(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	listOpts := getPaginationOptions(page)

	parts, err := h.catalog.ListParts(c.Context(), listOpts)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrServer(err.Error()))
	}

	return c.JSON(types.Success(map[string]interface{}{
		"parts": parts,
		"pagination": types.PaginationResponse{
			Total:  len(parts),
			Page:   page,
			Limit:  listOpts.Limit,
			Offset: listOpts.Offset,
		},
	}))
}

// CreateJig handles registering a new jig type
func (h *CatalogHandler) CreateJig(c *fiber.Ctx) error {
	var jig models.Jig
	if err := c.BodyParser(&jig); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrInvalidInput("Invalid request body"))
	}

	if err := h.catalog.CreateJig(c.Context(), &jig); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(types.ErrInvalidInput(err.Error()))
	}

	return c.Status(fiber.StatusCreated).JSON(types.Success(jig))
}

// ListJigs handles retrieving jig types with pagination
func (h *CatalogHandler) ListJigs(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	listOpts := getPaginationOptions(page)

	jigs, err := h.catalog.ListJigs(c.Context(), listOpts)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(types.ErrServer(err.Error()))
	}

	return c.JSON(types.Success(map[string]interface{}{
		"jigs": jigs,
		"pagination": types.PaginationResponse{
			Total:  len(jigs),
			Page:   page,
			Limit:  listOpts.Limit,
			Offset: listOpts.Offset,
		},
	}))
}
