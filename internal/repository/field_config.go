package repository

import (
	"context"
	"tzfield/internal/models"

	"github.com/google/uuid"
)

// FieldConfigRepository defines the interface for field configuration operations
type FieldConfigRepository interface {
	Repository
	Create(ctx context.Context, cfg *models.FieldConfig) error
	Update(ctx context.Context, cfg *models.FieldConfig) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.FieldConfig, error)
	GetByProjectID(ctx context.Context, projectID string) (*models.FieldConfig, error)
	List(ctx context.Context, filter FieldConfigFilter) ([]models.FieldConfig, error)
}

// FieldConfigFilter defines the filter options for listing field configurations
type FieldConfigFilter struct {
	Search    *string // Search by project id
	OrderBy   string  // Field to order by
	OrderDesc bool    // Order descending
	Limit     *int    // Limit results
	Offset    *int    // Offset results
}
