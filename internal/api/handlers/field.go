package handlers

import (
	"log"
	"net/http"
	"tzfield/internal/api/middleware"
	"tzfield/internal/ixdtf"
	"tzfield/internal/models"
	"tzfield/internal/repository"

	"github.com/gin-gonic/gin"
)

// FieldHandler converts between the editor's wall-time + zone pair and the
// stored field representations.
type FieldHandler struct {
	auditRepo repository.AuditLogRepository
}

// NewFieldHandler creates a new FieldHandler
func NewFieldHandler(auditRepo repository.AuditLogRepository) *FieldHandler {
	return &FieldHandler{auditRepo: auditRepo}
}

// Parse godoc
// @Summary Parse a stored field value
// @Description Recovers the local datetime and IANA zone from a previously stored value: an IXDTF string, the structured JSON payload, or one of the legacy shapes. Malformed input yields empty fields rather than an error so the editor can always open.
// @Tags field
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param value body models.ParseFieldRequest true "Stored raw value"
// @Success 200 {object} models.ZonedValue
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 429 {object} models.ErrorResponse "Rate limit exceeded"
// @Router /field/parse [post]
func (h *FieldHandler) Parse(c *gin.Context) {
	var req models.ParseFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	c.JSON(http.StatusOK, ixdtf.Parse(req.Value))
}

// Format godoc
// @Summary Format a value as an IXDTF string
// @Description Renders the pair as an RFC 9557 string with the offset derived from the zone's rules. The ixdtf field is null when the wall time does not exist in the zone (DST gap).
// @Tags field
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param value body models.FormatFieldRequest true "Edited value"
// @Success 200 {object} models.FormatFieldResponse
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 429 {object} models.ErrorResponse "Rate limit exceeded"
// @Router /field/format [post]
func (h *FieldHandler) Format(c *gin.Context) {
	var req models.FormatFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	value := models.ZonedValue{LocalDateTime: req.LocalDateTime, TimeZone: req.TimeZone}
	formatted, ok := ixdtf.Format(value)
	if !ok {
		c.JSON(http.StatusOK, models.FormatFieldResponse{})
		return
	}

	h.audit(c, models.AuditActionFormat, formatted)
	c.JSON(http.StatusOK, models.FormatFieldResponse{Ixdtf: &formatted})
}

// Structured godoc
// @Summary Format a value as the structured JSON payload
// @Description Projects the pair onto the nine-field structured object. An empty object is the "no value" sentinel, returned when the wall time does not exist in the zone.
// @Tags field
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param value body models.FormatFieldRequest true "Edited value"
// @Success 200 {object} models.StructuredValue
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 429 {object} models.ErrorResponse "Rate limit exceeded"
// @Router /field/structured [post]
func (h *FieldHandler) Structured(c *gin.Context) {
	var req models.FormatFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	value := models.ZonedValue{LocalDateTime: req.LocalDateTime, TimeZone: req.TimeZone}
	structured := ixdtf.BuildStructured(value)
	if structured == nil {
		c.JSON(http.StatusOK, gin.H{})
		return
	}

	h.audit(c, models.AuditActionStructured, structured.ZonedDateTimeIxdtf)
	c.JSON(http.StatusOK, structured)
}

// audit records the emitted value. Conversions never fail because the audit
// trail is unavailable.
func (h *FieldHandler) audit(c *gin.Context, action models.AuditAction, value string) {
	entry := models.CreateAuditLogRequest{
		Action:    action,
		Value:     value,
		IPAddress: c.ClientIP(),
	}
	if session := middleware.SessionFrom(c); session != nil {
		entry.ProjectID = &session.ProjectID
	}
	if err := h.auditRepo.Create(c.Request.Context(), &entry); err != nil {
		log.Printf("Failed to record audit entry: %v", err)
	}
}
