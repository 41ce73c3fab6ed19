package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"tzfield/internal/api/middleware"
	"tzfield/internal/models"
	"tzfield/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// FieldConfigHandler manages per-installation field configurations.
type FieldConfigHandler struct {
	repo      repository.FieldConfigRepository
	auditRepo repository.AuditLogRepository
}

// NewFieldConfigHandler creates a new FieldConfigHandler
func NewFieldConfigHandler(repo repository.FieldConfigRepository, auditRepo repository.AuditLogRepository) *FieldConfigHandler {
	return &FieldConfigHandler{repo: repo, auditRepo: auditRepo}
}

// ListConfigs godoc
// @Summary List field configurations
// @Description Returns all registered field installations
// @Tags configs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param search query string false "Search by project id"
// @Param order_by query string false "Order by field (project_id, created_at)"
// @Param order_desc query boolean false "Order descending"
// @Param limit query integer false "Limit results"
// @Param offset query integer false "Offset results"
// @Success 200 {array} models.FieldConfig
// @Failure 400 {object} models.ErrorResponse "Invalid parameters"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 403 {object} models.ErrorResponse "Admin access required"
// @Failure 429 {object} models.ErrorResponse "Rate limit exceeded"
// @Failure 500 {object} models.ErrorResponse "Internal Server Error"
// @Router /configs [get]
func (h *FieldConfigHandler) ListConfigs(c *gin.Context) {
	filter := repository.FieldConfigFilter{}

	if search := c.Query("search"); search != "" {
		filter.Search = &search
	}

	if orderBy := c.Query("order_by"); orderBy != "" {
		// The value ends up in the ORDER BY clause, so only known columns pass.
		if orderBy != "project_id" && orderBy != "created_at" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid order_by field"})
			return
		}
		filter.OrderBy = orderBy
		if desc := c.Query("order_desc"); desc != "" {
			filter.OrderDesc = desc == "true"
		}
	}

	if limitStr := c.Query("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 0 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid limit"})
			return
		}
		filter.Limit = &limit
	}

	if offsetStr := c.Query("offset"); offsetStr != "" {
		offset, err := strconv.Atoi(offsetStr)
		if err != nil || offset < 0 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid offset"})
			return
		}
		filter.Offset = &offset
	}

	configs, err := h.repo.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to fetch configurations"})
		return
	}

	c.JSON(http.StatusOK, configs)
}

// GetConfig godoc
// @Summary Get a field configuration by ID
// @Description Returns a field configuration by its ID
// @Tags configs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Configuration ID"
// @Success 200 {object} models.FieldConfig
// @Failure 400 {object} models.ErrorResponse "Invalid configuration ID"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 403 {object} models.ErrorResponse "Admin access required"
// @Failure 404 {object} models.ErrorResponse "Configuration not found"
// @Failure 429 {object} models.ErrorResponse "Rate limit exceeded"
// @Failure 500 {object} models.ErrorResponse "Internal Server Error"
// @Router /configs/{id} [get]
func (h *FieldConfigHandler) GetConfig(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid configuration ID"})
		return
	}

	cfg, err := h.repo.GetByID(c.Request.Context(), id)
	if err == repository.ErrNotFound {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Configuration not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to fetch configuration"})
		return
	}

	c.JSON(http.StatusOK, cfg)
}

// GetOwnConfig godoc
// @Summary Get the session's field configuration
// @Description Returns the configuration registered for the authenticated session's project
// @Tags configs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.FieldConfig
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "Configuration not found"
// @Failure 429 {object} models.ErrorResponse "Rate limit exceeded"
// @Failure 500 {object} models.ErrorResponse "Internal Server Error"
// @Router /configs/me [get]
func (h *FieldConfigHandler) GetOwnConfig(c *gin.Context) {
	session := middleware.SessionFrom(c)
	if session == nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "Unauthorized"})
		return
	}

	cfg, err := h.repo.GetByProjectID(c.Request.Context(), session.ProjectID)
	if err == repository.ErrNotFound {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Configuration not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to fetch configuration"})
		return
	}

	c.JSON(http.StatusOK, cfg)
}

// CreateConfig godoc
// @Summary Register a field installation
// @Description Registers the field for a CMS project. Each project holds at most one configuration.
// @Tags configs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param config body models.CreateFieldConfigRequest true "Configuration to create"
// @Success 201 {object} models.FieldConfig
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 403 {object} models.ErrorResponse "Admin access required"
// @Failure 409 {object} models.ErrorResponse "Project already configured"
// @Failure 429 {object} models.ErrorResponse "Rate limit exceeded"
// @Failure 500 {object} models.ErrorResponse "Internal Server Error"
// @Router /configs [post]
func (h *FieldConfigHandler) CreateConfig(c *gin.Context) {
	var req models.CreateFieldConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	cfg := models.FieldConfig{
		ProjectID:       req.ProjectID,
		DefaultTimeZone: req.DefaultTimeZone,
		OutputMode:      req.OutputMode,
		SuggestedZones:  req.SuggestedZones,
	}

	if err := h.repo.Create(c.Request.Context(), &cfg); err == repository.ErrConfigExists {
		c.JSON(http.StatusConflict, models.ErrorResponse{Error: "Project already configured"})
		return
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to create configuration"})
		return
	}

	h.audit(c, models.AuditActionConfigCreate, cfg)
	c.JSON(http.StatusCreated, cfg)
}

// UpdateConfig godoc
// @Summary Update a field configuration
// @Description Updates an existing field configuration. The project binding is immutable.
// @Tags configs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Configuration ID"
// @Param config body models.UpdateFieldConfigRequest true "Updated configuration"
// @Success 200 {object} models.FieldConfig
// @Failure 400 {object} models.ErrorResponse "Invalid request body or configuration ID"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 403 {object} models.ErrorResponse "Admin access required"
// @Failure 404 {object} models.ErrorResponse "Configuration not found"
// @Failure 429 {object} models.ErrorResponse "Rate limit exceeded"
// @Failure 500 {object} models.ErrorResponse "Internal Server Error"
// @Router /configs/{id} [put]
func (h *FieldConfigHandler) UpdateConfig(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid configuration ID"})
		return
	}

	var req models.UpdateFieldConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	cfg := models.FieldConfig{
		ID:              id,
		DefaultTimeZone: req.DefaultTimeZone,
		OutputMode:      req.OutputMode,
		SuggestedZones:  req.SuggestedZones,
	}

	if err := h.repo.Update(c.Request.Context(), &cfg); err == repository.ErrNotFound {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Configuration not found"})
		return
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to update configuration"})
		return
	}

	h.audit(c, models.AuditActionConfigUpdate, cfg)
	c.JSON(http.StatusOK, cfg)
}

// DeleteConfig godoc
// @Summary Delete a field configuration
// @Description Removes a field installation
// @Tags configs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Configuration ID"
// @Success 204 "No Content"
// @Failure 400 {object} models.ErrorResponse "Invalid configuration ID"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 403 {object} models.ErrorResponse "Admin access required"
// @Failure 404 {object} models.ErrorResponse "Configuration not found"
// @Failure 429 {object} models.ErrorResponse "Rate limit exceeded"
// @Failure 500 {object} models.ErrorResponse "Internal Server Error"
// @Router /configs/{id} [delete]
func (h *FieldConfigHandler) DeleteConfig(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid configuration ID"})
		return
	}

	cfg, err := h.repo.GetByID(c.Request.Context(), id)
	if err == repository.ErrNotFound {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Configuration not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to fetch configuration"})
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err == repository.ErrNotFound {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "Configuration not found"})
		return
	} else if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to delete configuration"})
		return
	}

	h.audit(c, models.AuditActionConfigDelete, *cfg)
	c.Status(http.StatusNoContent)
}

func (h *FieldConfigHandler) audit(c *gin.Context, action models.AuditAction, cfg models.FieldConfig) {
	entry := models.CreateAuditLogRequest{
		Action:    action,
		Value:     fmt.Sprintf("project=%s default_time_zone=%s output_mode=%s", cfg.ProjectID, cfg.DefaultTimeZone, cfg.OutputMode),
		IPAddress: c.ClientIP(),
	}
	if session := middleware.SessionFrom(c); session != nil {
		entry.ProjectID = &session.ProjectID
	}
	if err := h.auditRepo.Create(c.Request.Context(), &entry); err != nil {
		log.Printf("Failed to record audit entry: %v", err)
	}
}
