package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"
	"tzfield/internal/models"
	"tzfield/internal/repository"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type fieldConfigRepository struct {
	repository.BaseRepository
}

// NewFieldConfigRepository creates a new PostgreSQL field configuration repository
func NewFieldConfigRepository(db *sql.DB) repository.FieldConfigRepository {
	return &fieldConfigRepository{
		BaseRepository: repository.NewBaseRepository(db),
	}
}

func (r *fieldConfigRepository) Create(ctx context.Context, cfg *models.FieldConfig) error {
	// One installation per project
	var count int
	err := r.DB().QueryRowContext(ctx,
		"SELECT COUNT(*) FROM field_configs WHERE project_id = $1",
		cfg.ProjectID,
	).Scan(&count)
	if err != nil {
		return err
	}
	if count > 0 {
		return repository.ErrConfigExists
	}

	query := `
		INSERT INTO field_configs (id, project_id, default_time_zone, output_mode, suggested_zones, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		RETURNING created_at, updated_at`

	cfg.ID = uuid.New()
	if cfg.SuggestedZones == nil {
		cfg.SuggestedZones = pq.StringArray{}
	}

	err = r.DB().QueryRowContext(ctx, query,
		cfg.ID,
		cfg.ProjectID,
		cfg.DefaultTimeZone,
		cfg.OutputMode,
		cfg.SuggestedZones,
		time.Now(),
	).Scan(&cfg.CreatedAt, &cfg.UpdatedAt)

	if err != nil {
		if strings.Contains(err.Error(), "field_configs_project_id_key") {
			return repository.ErrConfigExists
		}
		return err
	}
	return nil
}

func (r *fieldConfigRepository) Update(ctx context.Context, cfg *models.FieldConfig) error {
	query := `
		UPDATE field_configs
		SET default_time_zone = $1, output_mode = $2, suggested_zones = $3, updated_at = $4
		WHERE id = $5
		RETURNING project_id, created_at, updated_at`

	if cfg.SuggestedZones == nil {
		cfg.SuggestedZones = pq.StringArray{}
	}

	err := r.DB().QueryRowContext(ctx, query,
		cfg.DefaultTimeZone,
		cfg.OutputMode,
		cfg.SuggestedZones,
		time.Now(),
		cfg.ID,
	).Scan(&cfg.ProjectID, &cfg.CreatedAt, &cfg.UpdatedAt)

	if err == sql.ErrNoRows {
		return repository.ErrNotFound
	}
	return err
}

func (r *fieldConfigRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.DB().ExecContext(ctx, "DELETE FROM field_configs WHERE id = $1", id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *fieldConfigRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.FieldConfig, error) {
	return r.get(ctx, "id = $1", id)
}

func (r *fieldConfigRepository) GetByProjectID(ctx context.Context, projectID string) (*models.FieldConfig, error) {
	return r.get(ctx, "project_id = $1", projectID)
}

func (r *fieldConfigRepository) get(ctx context.Context, where string, arg interface{}) (*models.FieldConfig, error) {
	query := `
		SELECT id, project_id, default_time_zone, output_mode, suggested_zones, created_at, updated_at
		FROM field_configs
		WHERE ` + where

	cfg := &models.FieldConfig{}
	err := r.DB().QueryRowContext(ctx, query, arg).Scan(
		&cfg.ID,
		&cfg.ProjectID,
		&cfg.DefaultTimeZone,
		&cfg.OutputMode,
		&cfg.SuggestedZones,
		&cfg.CreatedAt,
		&cfg.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func (r *fieldConfigRepository) List(ctx context.Context, filter repository.FieldConfigFilter) ([]models.FieldConfig, error) {
	conditions := make([]string, 0)
	args := make([]interface{}, 0)
	argCount := 1

	if filter.Search != nil {
		conditions = append(conditions, fmt.Sprintf("project_id ILIKE $%d", argCount))
		args = append(args, "%"+*filter.Search+"%")
		argCount++
	}

	query := `
		SELECT id, project_id, default_time_zone, output_mode, suggested_zones, created_at, updated_at
		FROM field_configs`

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	// Add ORDER BY clause
	if filter.OrderBy != "" {
		query += fmt.Sprintf(" ORDER BY %s", filter.OrderBy)
		if filter.OrderDesc {
			query += " DESC"
		} else {
			query += " ASC"
		}
	} else {
		query += " ORDER BY project_id ASC"
	}

	// Add LIMIT and OFFSET
	if filter.Limit != nil {
		query += fmt.Sprintf(" LIMIT $%d", argCount)
		args = append(args, *filter.Limit)
		argCount++
	}

	if filter.Offset != nil {
		query += fmt.Sprintf(" OFFSET $%d", argCount)
		args = append(args, *filter.Offset)
	}

	rows, err := r.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var configs []models.FieldConfig
	for rows.Next() {
		var cfg models.FieldConfig
		if err := rows.Scan(
			&cfg.ID,
			&cfg.ProjectID,
			&cfg.DefaultTimeZone,
			&cfg.OutputMode,
			&cfg.SuggestedZones,
			&cfg.CreatedAt,
			&cfg.UpdatedAt,
		); err != nil {
			return nil, err
		}
		configs = append(configs, cfg)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return configs, nil
}
