package repos

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/anoline/anoline/internal/db/models"
)

// ComponentJobRepository provides access to compiled component jobs
type ComponentJobRepository struct {
	db *gorm.DB
}

// NewComponentJobRepository creates a new component job repository instance
func NewComponentJobRepository(db *gorm.DB) *ComponentJobRepository {
	return &ComponentJobRepository{db: db}
}

// Create persists a compiled component job
func (r *ComponentJobRepository) Create(ctx context.Context, job *models.ComponentJob) error {
	return r.db.WithContext(ctx).Create(job).Error
}

// GetByID retrieves a component job by its ID
func (r *ComponentJobRepository) GetByID(ctx context.Context, id uint) (*models.ComponentJob, error) {
	var job models.ComponentJob
	err := r.db.WithContext(ctx).First(&job, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("component job %d not found: %w", id, err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get component job: %w", err)
	}
	return &job, nil
}

// List returns a page of component jobs, newest first
func (r *ComponentJobRepository) List(ctx context.Context, opts *models.ListOptions) ([]models.ComponentJob, error) {
	var jobs []models.ComponentJob
	err := r.db.WithContext(ctx).Model(&models.ComponentJob{}).
		Limit(opts.Limit).Offset(opts.Offset).
		Order("created_at DESC").
		Find(&jobs).Error
	return jobs, err
}

// Count returns the total number of component jobs
func (r *ComponentJobRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.ComponentJob{}).Count(&count).Error
	return count, err
}

// Delete removes a component job by ID
func (r *ComponentJobRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.ComponentJob{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete component job: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("component job %d not found: %w", id, gorm.ErrRecordNotFound)
	}
	return nil
}
