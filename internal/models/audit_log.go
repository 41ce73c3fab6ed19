package models

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction represents the type of action performed
type AuditAction string

const (
	AuditActionFormat       AuditAction = "format"
	AuditActionStructured   AuditAction = "structured"
	AuditActionConfigCreate AuditAction = "config_create"
	AuditActionConfigUpdate AuditAction = "config_update"
	AuditActionConfigDelete AuditAction = "config_delete"
	AuditActionZoneReload   AuditAction = "zone_reload"
)

// AuditLog records one persisted conversion or administrative change, so a
// content team can reconstruct what the editor wrote and when.
type AuditLog struct {
	ID        uuid.UUID   `json:"id" db:"id"`
	ProjectID *string     `json:"project_id" db:"project_id"` // Optional: reloads are system-level
	Action    AuditAction `json:"action" db:"action"`
	Value     string      `json:"value" db:"value"` // The emitted stored value or change summary
	IPAddress string      `json:"ip_address" db:"ip_address"`
	CreatedAt time.Time   `json:"created_at" db:"created_at"`
}

// CreateAuditLogRequest represents the request to record a new audit entry
type CreateAuditLogRequest struct {
	ProjectID *string     `json:"project_id"`
	Action    AuditAction `json:"action" binding:"required"`
	Value     string      `json:"value"`
	IPAddress string      `json:"ip_address"`
}
