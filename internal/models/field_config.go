package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Output modes for a configured field.
const (
	OutputModeString = "string"
	OutputModeJSON   = "json"
)

// FieldConfig is the per-installation configuration of the field editor:
// which CMS project it belongs to, the site default time zone, whether the
// field persists a bare IXDTF string or the structured JSON payload, and any
// extra zones to surface in the suggested group.
type FieldConfig struct {
	ID              uuid.UUID      `json:"id" db:"id"`
	ProjectID       string         `json:"project_id" db:"project_id" binding:"required" example:"site-blog"`
	DefaultTimeZone string         `json:"default_time_zone" db:"default_time_zone" binding:"required" example:"Europe/Stockholm"`
	OutputMode      string         `json:"output_mode" db:"output_mode" binding:"required,oneof=string json" example:"string"`
	SuggestedZones  pq.StringArray `json:"suggested_zones" db:"suggested_zones" swaggertype:"array,string" example:"America/New_York"`
	CreatedAt       time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at" db:"updated_at"`
}

// CreateFieldConfigRequest represents the request to register a field installation
type CreateFieldConfigRequest struct {
	ProjectID       string   `json:"project_id" binding:"required" example:"site-blog"`
	DefaultTimeZone string   `json:"default_time_zone" binding:"required,iana_zone" example:"Europe/Stockholm"`
	OutputMode      string   `json:"output_mode" binding:"required,oneof=string json" example:"string"`
	SuggestedZones  []string `json:"suggested_zones" binding:"omitempty,dive,iana_zone"`
}

// UpdateFieldConfigRequest represents the request to update a field installation
type UpdateFieldConfigRequest struct {
	DefaultTimeZone string   `json:"default_time_zone" binding:"required,iana_zone" example:"Europe/Stockholm"`
	OutputMode      string   `json:"output_mode" binding:"required,oneof=string json" example:"json"`
	SuggestedZones  []string `json:"suggested_zones" binding:"omitempty,dive,iana_zone"`
}
