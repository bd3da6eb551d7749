package repos

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/anoline/anoline/internal/db/models"
)

// GanttJobRepository provides access to scheduled load timelines
type GanttJobRepository struct {
	db *gorm.DB
}

// NewGanttJobRepository creates a new gantt job repository instance
func NewGanttJobRepository(db *gorm.DB) *GanttJobRepository {
	return &GanttJobRepository{db: db}
}

// CreateBatch persists every load timeline of a job in a single transaction.
// Either the whole schedule lands or none of it does.
func (r *GanttJobRepository) CreateBatch(ctx context.Context, jobs []models.GanttJob) error {
	if len(jobs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range jobs {
			if err := tx.Create(&jobs[i]).Error; err != nil {
				return fmt.Errorf("failed to create load %d: %w", jobs[i].LoadNumber, err)
			}
		}
		return nil
	})
}

// GetByID retrieves a single load timeline by its ID
func (r *GanttJobRepository) GetByID(ctx context.Context, id uint) (*models.GanttJob, error) {
	var job models.GanttJob
	err := r.db.WithContext(ctx).First(&job, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("gantt job %d not found: %w", id, err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get gantt job: %w", err)
	}
	return &job, nil
}

// ListByComponentJob returns every load timeline of a component job in load order
func (r *GanttJobRepository) ListByComponentJob(ctx context.Context, componentJobID uint) ([]models.GanttJob, error) {
	var jobs []models.GanttJob
	err := r.db.WithContext(ctx).
		Where(&models.GanttJob{ComponentJobID: componentJobID}).
		Order("load_number ASC").
		Find(&jobs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list gantt jobs: %w", err)
	}
	return jobs, nil
}

// List returns a page of load timelines ordered by creation time then load number
func (r *GanttJobRepository) List(ctx context.Context, opts *models.ListOptions) ([]models.GanttJob, error) {
	var jobs []models.GanttJob
	err := r.db.WithContext(ctx).Model(&models.GanttJob{}).
		Limit(opts.Limit).Offset(opts.Offset).
		Order("created_at DESC, load_number ASC").
		Find(&jobs).Error
	return jobs, err
}

// UpdateByComponentJob applies mutate to every load of a component job and
// saves the results in one transaction. Used for post-hoc slot relabelling
// and timeline shifts, where all loads of a job must move together.
func (r *GanttJobRepository) UpdateByComponentJob(ctx context.Context, componentJobID uint, mutate func(*models.GanttJob)) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var jobs []models.GanttJob
		if err := tx.Where(&models.GanttJob{ComponentJobID: componentJobID}).
			Order("load_number ASC").
			Find(&jobs).Error; err != nil {
			return fmt.Errorf("failed to load gantt jobs: %w", err)
		}
		if len(jobs) == 0 {
			return fmt.Errorf("no gantt jobs for component job %d: %w", componentJobID, gorm.ErrRecordNotFound)
		}
		for i := range jobs {
			mutate(&jobs[i])
			if err := tx.Save(&jobs[i]).Error; err != nil {
				return fmt.Errorf("failed to save load %d: %w", jobs[i].LoadNumber, err)
			}
		}
		return nil
	})
}

// Delete removes a single load timeline by ID
func (r *GanttJobRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.GanttJob{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete gantt job: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("gantt job %d not found: %w", id, gorm.ErrRecordNotFound)
	}
	return nil
}

// DeleteByComponentJob removes every load timeline of a component job
func (r *GanttJobRepository) DeleteByComponentJob(ctx context.Context, componentJobID uint) (int64, error) {
	result := r.db.WithContext(ctx).
		Where(&models.GanttJob{ComponentJobID: componentJobID}).
		Delete(&models.GanttJob{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete gantt jobs: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// DeleteOlderThan removes load timelines whose jigging started before the
// cutoff. Rows with no jigging interval are kept.
func (r *GanttJobRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("jigging_start IS NOT NULL AND jigging_start < ?", cutoff).
		Delete(&models.GanttJob{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete expired gantt jobs: %w", result.Error)
	}
	return result.RowsAffected, nil
}
