package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"
	"tzfield/internal/api/middleware"
	"tzfield/internal/config"
	"tzfield/internal/models"
	"tzfield/internal/options"
	"tzfield/internal/repository"
	"tzfield/internal/tzindex"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ZoneHandler serves the time zone picker option list and the operational
// zone index reload endpoint.
type ZoneHandler struct {
	index      *tzindex.Index
	builder    *options.Builder
	configRepo repository.FieldConfigRepository
	auditRepo  repository.AuditLogRepository
	cfg        *config.Config
}

// NewZoneHandler creates a new ZoneHandler
func NewZoneHandler(index *tzindex.Index, configRepo repository.FieldConfigRepository, auditRepo repository.AuditLogRepository, cfg *config.Config) *ZoneHandler {
	return &ZoneHandler{
		index:      index,
		builder:    options.NewBuilder(index),
		configRepo: configRepo,
		auditRepo:  auditRepo,
		cfg:        cfg,
	}
}

// Options godoc
// @Summary List selectable time zones
// @Description Returns the ranked, grouped option list for the picker: the suggested group (UTC, the site default, the editor's browser zone, configured extras) followed by one group per region. Labels carry the current UTC offset, so the list changes across DST boundaries.
// @Tags zones
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param query query string false "Filter options; all space-separated tokens must match"
// @Param locale query string false "Editor locale for localized zone names" default(en)
// @Param browser_zone query string false "IANA zone reported by the editor's browser"
// @Param config query string false "Field configuration ID; defaults to the session project's configuration"
// @Success 200 {object} models.ZoneOptionsResponse
// @Failure 400 {object} models.ErrorResponse "Invalid configuration ID"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 429 {object} models.ErrorResponse "Rate limit exceeded"
// @Failure 500 {object} models.ErrorResponse "Internal Server Error"
// @Router /zones/options [get]
func (h *ZoneHandler) Options(c *gin.Context) {
	siteZone := h.cfg.Zones.DefaultTimeZone
	var extra []string

	fieldConfig, err := h.lookupConfig(c)
	switch {
	case err == nil && fieldConfig != nil:
		siteZone = fieldConfig.DefaultTimeZone
		extra = fieldConfig.SuggestedZones
	case err == errBadConfigID:
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid configuration ID"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to fetch field configuration"})
		return
	}

	req := options.Request{
		Suggested: options.SuggestedSet(siteZone, c.Query("browser_zone"), extra),
		Locale:    c.DefaultQuery("locale", "en"),
		Now:       time.Now(),
		Query:     c.Query("query"),
	}

	c.JSON(http.StatusOK, models.ZoneOptionsResponse{Options: h.builder.Build(req)})
}

var errBadConfigID = errors.New("invalid configuration id")

// lookupConfig resolves the field configuration for an options request: an
// explicit config id wins, otherwise the session project's registration. A
// nil result with nil error means no configuration applies.
func (h *ZoneHandler) lookupConfig(c *gin.Context) (*models.FieldConfig, error) {
	if configID := c.Query("config"); configID != "" {
		id, err := uuid.Parse(configID)
		if err != nil {
			return nil, errBadConfigID
		}
		fieldConfig, err := h.configRepo.GetByID(c.Request.Context(), id)
		if err == repository.ErrNotFound {
			return nil, nil
		}
		return fieldConfig, err
	}

	session := middleware.SessionFrom(c)
	if session == nil {
		return nil, nil
	}
	fieldConfig, err := h.configRepo.GetByProjectID(c.Request.Context(), session.ProjectID)
	if err == repository.ErrNotFound {
		return nil, nil
	}
	return fieldConfig, err
}

// Reload godoc
// @Summary Rescan the zone index
// @Description Re-enumerates the tzdata directory so a host package update is picked up without a restart. Authorized by the provisioning key, not a session token.
// @Tags zones
// @Accept json
// @Produce json
// @Param X-Provision-Key header string true "Provisioning key"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} models.ErrorResponse "Invalid provisioning key"
// @Failure 500 {object} models.ErrorResponse "Internal Server Error"
// @Router /admin/zones/reload [post]
func (h *ZoneHandler) Reload(c *gin.Context) {
	if err := h.index.Reload(); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to reload zone index"})
		return
	}

	entry := models.CreateAuditLogRequest{
		Action:    models.AuditActionZoneReload,
		Value:     fmt.Sprintf("%d zones", h.index.Count()),
		IPAddress: c.ClientIP(),
	}
	if err := h.auditRepo.Create(c.Request.Context(), &entry); err != nil {
		log.Printf("Failed to record audit entry: %v", err)
	}

	c.JSON(http.StatusOK, gin.H{
		"zones":     h.index.Count(),
		"loaded_at": h.index.LoadedAt(),
	})
}
