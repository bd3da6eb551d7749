package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/anoline/anoline/internal/db/models"
	"github.com/anoline/anoline/internal/db/repos"
)

// Catalog manages the part and jig reference data the planner compiles from.
type Catalog struct {
	parts *repos.PartRepository
	jigs  *repos.JigRepository
}

// NewCatalog creates a new catalog service instance
func NewCatalog(parts *repos.PartRepository, jigs *repos.JigRepository) *Catalog {
	return &Catalog{parts: parts, jigs: jigs}
}

// CreatePart registers a new part specification
func (c *Catalog) CreatePart(ctx context.Context, part *models.Part) error {
	if err := part.Validate(); err != nil {
		return fmt.Errorf("invalid part: %w", err)
	}
	return c.parts.Create(ctx, part)
}

// GetPart retrieves a part by its part number
func (c *Catalog) GetPart(ctx context.Context, partNumber string) (*models.Part, error) {
	part, err := c.parts.GetByNumber(ctx, partNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrPartNotFound, partNumber)
		}
		return nil, err
	}
	return part, nil
}

// ListParts returns a page of part specifications
func (c *Catalog) ListParts(ctx context.Context, opts *models.ListOptions) ([]models.Part, error) {
	return c.parts.List(ctx, opts)
}

// CreateJig registers a new jig type in the inventory
func (c *Catalog) CreateJig(ctx context.Context, jig *models.Jig) error {
	if err := jig.Validate(); err != nil {
		return fmt.Errorf("invalid jig: %w", err)
	}
	return c.jigs.Create(ctx, jig)
}

// ListJigs returns a page of jig types
func (c *Catalog) ListJigs(ctx context.Context, opts *models.ListOptions) ([]models.Jig, error) {
	return c.jigs.List(ctx, opts)
}
