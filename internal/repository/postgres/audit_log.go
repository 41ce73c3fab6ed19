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

type auditLogRepository struct {
	repository.BaseRepository
}

// NewAuditLogRepository creates a new PostgreSQL audit log repository
func NewAuditLogRepository(db *sql.DB) repository.AuditLogRepository {
	return &auditLogRepository{
		BaseRepository: repository.NewBaseRepository(db),
	}
}

func (r *auditLogRepository) Create(ctx context.Context, entry *models.CreateAuditLogRequest) error {
	query := `
		INSERT INTO audit_logs (id, project_id, action, value, ip_address, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.DB().ExecContext(ctx, query,
		uuid.New(),
		entry.ProjectID,
		entry.Action,
		entry.Value,
		entry.IPAddress,
		time.Now(),
	)
	return err
}

func (r *auditLogRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.AuditLog, error) {
	query := `
		SELECT id, project_id, action, value, ip_address, created_at
		FROM audit_logs
		WHERE id = $1`

	var entry models.AuditLog
	err := r.DB().QueryRowContext(ctx, query, id).Scan(
		&entry.ID,
		&entry.ProjectID,
		&entry.Action,
		&entry.Value,
		&entry.IPAddress,
		&entry.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *auditLogRepository) List(ctx context.Context, filter repository.AuditLogFilter) ([]models.AuditLog, error) {
	conditions := make([]string, 0)
	args := make([]interface{}, 0)
	argCount := 1

	if filter.ProjectID != nil {
		conditions = append(conditions, fmt.Sprintf("project_id = $%d", argCount))
		args = append(args, *filter.ProjectID)
		argCount++
	}

	if len(filter.Actions) > 0 {
		actions := make([]string, len(filter.Actions))
		for i, a := range filter.Actions {
			actions[i] = string(a)
		}
		conditions = append(conditions, fmt.Sprintf("action = ANY($%d)", argCount))
		args = append(args, pq.Array(actions))
		argCount++
	}

	if filter.CreatedAfter != nil {
		conditions = append(conditions, fmt.Sprintf("created_at >= $%d", argCount))
		args = append(args, *filter.CreatedAfter)
		argCount++
	}

	if filter.CreatedBefore != nil {
		conditions = append(conditions, fmt.Sprintf("created_at <= $%d", argCount))
		args = append(args, *filter.CreatedBefore)
		argCount++
	}

	query := `
		SELECT id, project_id, action, value, ip_address, created_at
		FROM audit_logs`

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	if filter.OrderDesc {
		query += " ORDER BY created_at DESC"
	} else {
		query += " ORDER BY created_at ASC"
	}

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

	var entries []models.AuditLog
	for rows.Next() {
		var entry models.AuditLog
		if err := rows.Scan(
			&entry.ID,
			&entry.ProjectID,
			&entry.Action,
			&entry.Value,
			&entry.IPAddress,
			&entry.CreatedAt,
		); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *auditLogRepository) CleanupOld(ctx context.Context, olderThan time.Duration) error {
	_, err := r.DB().ExecContext(ctx,
		"DELETE FROM audit_logs WHERE created_at < $1",
		time.Now().Add(-olderThan),
	)
	return err
}
