package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/anoline/anoline/internal/db/models"
	"github.com/anoline/anoline/internal/db/repos"
	"github.com/anoline/anoline/internal/logger"
	"github.com/anoline/anoline/internal/process"
)

// PlanRequest is one committed order line to compile into a component job.
type PlanRequest struct {
	PartNumber   string `json:"part_number"`
	OrderLineID  uint   `json:"order_line_id"`
	OrderID      uint   `json:"order_id"`
	CustomerID   uint   `json:"customer_id"`
	CustomerName string `json:"customer_name"`
	Quantity     int    `json:"quantity"`
}

// Planner compiles order lines into component jobs: jig/load decomposition
// plus the ordered operation route.
type Planner struct {
	parts *repos.PartRepository
	jigs  *repos.JigRepository
	jobs  *repos.ComponentJobRepository
}

// NewPlanner creates a new planner service instance
func NewPlanner(parts *repos.PartRepository, jigs *repos.JigRepository, jobs *repos.ComponentJobRepository) *Planner {
	return &Planner{parts: parts, jigs: jigs, jobs: jobs}
}

// CreatePlan compiles and persists the component job for one order line.
// Compilation is all-or-nothing: any failure leaves no partial record.
func (p *Planner) CreatePlan(ctx context.Context, req *PlanRequest) (*models.ComponentJob, error) {
	if req.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive, got %d", process.ErrInvalidCapacity, req.Quantity)
	}

	part, err := p.parts.GetByNumber(ctx, strings.TrimSpace(req.PartNumber))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrPartNotFound, req.PartNumber)
		}
		return nil, err
	}

	job, err := p.compile(ctx, part, req)
	if err != nil {
		return nil, err
	}

	if err := p.jobs.Create(ctx, job); err != nil {
		return nil, fmt.Errorf("failed to persist component job: %w", err)
	}

	logger.Infof("compiled component job %d for part %s: %d loads, %d jigs",
		job.ID, job.PartNumber, job.LoadsRequired, job.RequiredJigs)
	return job, nil
}

// PreviewPlan compiles a component job without persisting it
func (p *Planner) PreviewPlan(ctx context.Context, req *PlanRequest) (*models.ComponentJob, error) {
	if req.Quantity <= 0 {
		return nil, fmt.Errorf("%w: quantity must be positive, got %d", process.ErrInvalidCapacity, req.Quantity)
	}
	part, err := p.parts.GetByNumber(ctx, strings.TrimSpace(req.PartNumber))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrPartNotFound, req.PartNumber)
		}
		return nil, err
	}
	return p.compile(ctx, part, req)
}

func (p *Planner) compile(ctx context.Context, part *models.Part, req *PlanRequest) (*models.ComponentJob, error) {
	var jig *models.Jig
	if part.JigType != nil && *part.JigType != "" {
		found, err := p.jigs.GetByType(ctx, *part.JigType)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		jig = found
	}

	capacity, usedDefaults := process.ResolveCapacity(part, jig)
	if usedDefaults {
		logger.Warnf("jig type for part %s not resolved, using default capacity UPJ=%d JPL=%d MPJ=%d",
			part.PartNumber, capacity.UPJ, capacity.JPL, capacity.MPJ)
	}

	plan, err := process.Decompose(req.Quantity, capacity)
	if err != nil {
		return nil, err
	}

	ops, independent, err := process.Compile(part, plan)
	if err != nil {
		return nil, err
	}

	return &models.ComponentJob{
		PartNumber:   part.PartNumber,
		OrderLineID:  req.OrderLineID,
		OrderID:      req.OrderID,
		CustomerID:   req.CustomerID,
		CustomerName: req.CustomerName,
		Quantity:     req.Quantity,

		RequiredJigs:           plan.RequiredJigs,
		LoadsRequired:          plan.LoadsRequired,
		BuzzbarsRequired:       plan.BuzzbarsRequired,
		UnitsPerLoad:           plan.UnitsPerLoad,
		QuantityOfFinalLoad:    plan.QuantityOfFinalLoad,
		JiggingDurationPerLoad: plan.JiggingDurationPerLoad,
		JigDefaultsApplied:     usedDefaults,

		Operations:                ops,
		LoadIndependentOperations: independent,
	}, nil
}

// GetPlan retrieves a component job by ID
func (p *Planner) GetPlan(ctx context.Context, id uint) (*models.ComponentJob, error) {
	job, err := p.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %d", ErrJobNotFound, id)
		}
		return nil, err
	}
	return job, nil
}

// ListPlans returns a page of component jobs
func (p *Planner) ListPlans(ctx context.Context, opts *models.ListOptions) ([]models.ComponentJob, error) {
	return p.jobs.List(ctx, opts)
}

// DeletePlan removes a component job by ID
func (p *Planner) DeletePlan(ctx context.Context, id uint) error {
	err := p.jobs.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %d", ErrJobNotFound, id)
	}
	return err
}
