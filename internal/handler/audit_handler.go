package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"veridoc/internal/domain"
	"veridoc/internal/service"
)

// AuditHandler handles audit trail endpoints.
type AuditHandler struct {
	auditService    service.AuditService
	registryService service.RegistryService
}

// NewAuditHandler creates a new AuditHandler.
func NewAuditHandler(auditService service.AuditService, registryService service.RegistryService) *AuditHandler {
	return &AuditHandler{auditService: auditService, registryService: registryService}
}

// ListByDocument handles GET /api/v1/documents/:id/audit
// @Summary Get a document's audit trail
// @Description List audit events in chronological order with optional search and actor filters
// @Tags audit
// @Produce json
// @Param id path string true "Document ID (UUID)"
// @Param search query string false "Match against action, description, and actor"
// @Param actor query string false "Filter by exact actor name"
// @Success 200 {object} Response{data=[]domain.AuditEvent} "Audit trail"
// @Failure 400 {object} ErrorResponseBody "Invalid ID"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 404 {object} ErrorResponseBody "Document not found"
// @Security BearerAuth
// @Router /documents/{id}/audit [get]
func (h *AuditHandler) ListByDocument(c *gin.Context) {
	docID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid document ID")
		return
	}

	// Confirm the document exists so an empty trail is distinguishable from
	// a bad id.
	if _, err := h.registryService.GetByID(c.Request.Context(), docID); err != nil {
		HandleError(c, err)
		return
	}

	filter := &domain.AuditFilter{
		Search: c.Query("search"),
		Actor:  c.Query("actor"),
	}
	events, err := h.auditService.Query(c.Request.Context(), docID, filter)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, events)
}
