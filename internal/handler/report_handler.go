package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"veridoc/internal/domain"
	"veridoc/internal/service"
)

// xlsxContentType is the MIME type for XLSX downloads.
const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportHandler handles compliance reporting and export endpoints.
type ReportHandler struct {
	reportService service.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// StatusSummary handles GET /api/v1/reports/status-summary
// @Summary Register status summary
// @Description Aggregate document counts by lifecycle status plus overdue review count
// @Tags reports
// @Produce json
// @Success 200 {object} Response{data=domain.StatusSummary} "Summary counts"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /reports/status-summary [get]
func (h *ReportHandler) StatusSummary(c *gin.Context) {
	summary, err := h.reportService.StatusSummary(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, summary)
}

// ExportRegister handles GET /api/v1/reports/register/export
// @Summary Export the document register
// @Description Download the filtered register as an XLSX workbook
// @Tags reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param search query string false "Match against title, number, creator, and category"
// @Param type query string false "Filter by document type"
// @Param security query string false "Filter by security classification"
// @Param status query string false "Filter by lifecycle status"
// @Success 200 {file} binary "XLSX workbook"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /reports/register/export [get]
func (h *ReportHandler) ExportRegister(c *gin.Context) {
	filter := &domain.DocumentFilter{
		Search:   c.Query("search"),
		Type:     c.Query("type"),
		Security: domain.SecurityLevel(c.Query("security")),
		Status:   domain.DocumentStatus(c.Query("status")),
	}

	data, filename, err := h.reportService.RegisterXLSX(c.Request.Context(), filter)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, xlsxContentType, data)
}

// ExportAudit handles GET /api/v1/documents/:id/audit/export
// @Summary Export a document's audit trail
// @Description Download the audit trail as a CSV file
// @Tags reports
// @Produce text/csv
// @Param id path string true "Document ID (UUID)"
// @Param search query string false "Match against action, description, and actor"
// @Param actor query string false "Filter by exact actor name"
// @Success 200 {file} binary "CSV file"
// @Failure 400 {object} ErrorResponseBody "Invalid ID"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 404 {object} ErrorResponseBody "Document not found"
// @Security BearerAuth
// @Router /documents/{id}/audit/export [get]
func (h *ReportHandler) ExportAudit(c *gin.Context) {
	docID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid document ID")
		return
	}

	filter := &domain.AuditFilter{
		Search: c.Query("search"),
		Actor:  c.Query("actor"),
	}
	data, filename, err := h.reportService.AuditCSV(c.Request.Context(), docID, filter)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}
