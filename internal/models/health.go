package models

import "time"

// HealthResponse represents the response from the health check endpoint
type HealthResponse struct {
	Status    string    `json:"status" example:"healthy"`
	Time      time.Time `json:"time" example:"2025-03-20T13:00:00Z"`
	ZoneCount int       `json:"zone_count" example:"418"`
}
