package repos

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/anoline/anoline/internal/db/models"
)

// JigRepository provides access to the jig inventory
type JigRepository struct {
	db *gorm.DB
}

// NewJigRepository creates a new jig repository instance
func NewJigRepository(db *gorm.DB) *JigRepository {
	return &JigRepository{db: db}
}

// Create creates a new jig type in the inventory
func (r *JigRepository) Create(ctx context.Context, jig *models.Jig) error {
	return r.db.WithContext(ctx).Create(jig).Error
}

// GetByType retrieves a jig by its type name. The type is trimmed before
// lookup; stray whitespace in part records has caused misses before.
func (r *JigRepository) GetByType(ctx context.Context, jigType string) (*models.Jig, error) {
	var jig models.Jig
	err := r.db.WithContext(ctx).Where(&models.Jig{JigType: strings.TrimSpace(jigType)}).First(&jig).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("jig type %q not found: %w", jigType, err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get jig: %w", err)
	}
	return &jig, nil
}

// List returns a page of jig types
func (r *JigRepository) List(ctx context.Context, opts *models.ListOptions) ([]models.Jig, error) {
	var jigs []models.Jig
	err := r.db.WithContext(ctx).Model(&models.Jig{}).
		Limit(opts.Limit).Offset(opts.Offset).
		Order("jig_type ASC").
		Find(&jigs).Error
	return jigs, err
}
