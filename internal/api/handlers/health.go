package handlers

import (
	"database/sql"
	"net/http"
	"time"
	"tzfield/internal/models"
	"tzfield/internal/tzindex"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	db    *sql.DB
	index *tzindex.Index
}

func NewHealthHandler(db *sql.DB, index *tzindex.Index) *HealthHandler {
	return &HealthHandler{db: db, index: index}
}

// Health godoc
// @Summary Health check
// @Description Returns the health status of the API, its database and the zone index
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Failure 503 {object} models.ErrorResponse "Service unavailable"
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	if err := h.db.Ping(); err != nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{Error: "database connection failed"})
		return
	}

	c.JSON(http.StatusOK, models.HealthResponse{
		Status:    "healthy",
		Time:      time.Now().UTC(),
		ZoneCount: h.index.Count(),
	})
}
