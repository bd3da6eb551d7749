package repos

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/anoline/anoline/internal/db/models"
)

// PartRepository provides access to part specification records
type PartRepository struct {
	db *gorm.DB
}

// NewPartRepository creates a new part repository instance
func NewPartRepository(db *gorm.DB) *PartRepository {
	return &PartRepository{db: db}
}

// Create creates a new part in the database
func (r *PartRepository) Create(ctx context.Context, part *models.Part) error {
	return r.db.WithContext(ctx).Create(part).Error
}

// GetByNumber retrieves a part by its part number
func (r *PartRepository) GetByNumber(ctx context.Context, partNumber string) (*models.Part, error) {
	var part models.Part
	err := r.db.WithContext(ctx).Where(&models.Part{PartNumber: partNumber}).First(&part).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("part %s not found: %w", partNumber, err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get part: %w", err)
	}
	return &part, nil
}

// List returns a page of parts ordered by part number
func (r *PartRepository) List(ctx context.Context, opts *models.ListOptions) ([]models.Part, error) {
	var parts []models.Part
	err := r.db.WithContext(ctx).Model(&models.Part{}).
		Limit(opts.Limit).Offset(opts.Offset).
		Order("part_number ASC").
		Find(&parts).Error
	return parts, err
}
