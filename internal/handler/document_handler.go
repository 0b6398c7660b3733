package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"veridoc/internal/domain"
	"veridoc/internal/service"
)

// DocumentHandler handles document register endpoints.
type DocumentHandler struct {
	registryService service.RegistryService
}

// NewDocumentHandler creates a new DocumentHandler.
func NewDocumentHandler(registryService service.RegistryService) *DocumentHandler {
	return &DocumentHandler{registryService: registryService}
}

// Create handles POST /api/v1/documents
// @Summary Register a controlled document
// @Description Create a document with its initial version, lifecycle entry, and workflow tasks
// @Tags documents
// @Accept json
// @Produce json
// @Param request body CreateDocumentRequest true "Document details"
// @Success 201 {object} Response{data=domain.DocumentRecord} "Document registered"
// @Failure 400 {object} ErrorResponseBody "Invalid request"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /documents [post]
func (h *DocumentHandler) Create(c *gin.Context) {
	userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	var req struct {
		Title            string     `json:"title" binding:"required"`
		DocumentNumber   string     `json:"document_number" binding:"required"`
		DocumentCategory string     `json:"document_category" binding:"required"`
		DocumentType     string     `json:"document_type"`
		DocumentSecurity string     `json:"document_security"`
		IssuedBy         string     `json:"issued_by" binding:"required"`
		IssuerRole       string     `json:"issuer_role" binding:"required"`
		InitialVersion   string     `json:"initial_version"`
		DateOfIssue      *time.Time `json:"date_of_issue"`
		EffectiveFrom    *time.Time `json:"effective_from"`
		NextReviewDate   *time.Time `json:"next_review_date"`
		TemplateID       *uuid.UUID `json:"template_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "title, document_number, document_category, issued_by, and issuer_role are required")
		return
	}

	input := &service.CreateDocumentInput{
		Title:            req.Title,
		DocumentNumber:   req.DocumentNumber,
		DocumentCategory: req.DocumentCategory,
		DocumentType:     req.DocumentType,
		DocumentSecurity: domain.SecurityLevel(req.DocumentSecurity),
		IssuedBy:         req.IssuedBy,
		IssuerRole:       domain.UserRole(req.IssuerRole),
		InitialVersion:   req.InitialVersion,
		TemplateID:       req.TemplateID,
		CreatedBy:        userID,
	}
	if req.DateOfIssue != nil {
		input.DateOfIssue = *req.DateOfIssue
	}
	if req.EffectiveFrom != nil {
		input.EffectiveFrom = *req.EffectiveFrom
	}
	if req.NextReviewDate != nil {
		input.NextReviewDate = *req.NextReviewDate
	}

	doc, err := h.registryService.Create(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, doc)
}

// GetByID handles GET /api/v1/documents/:id
// @Summary Get document by ID
// @Description Get a document with its versions, lifecycle history, and workflow configuration
// @Tags documents
// @Produce json
// @Param id path string true "Document ID (UUID)"
// @Success 200 {object} Response{data=domain.DocumentRecord} "Document details"
// @Failure 400 {object} ErrorResponseBody "Invalid ID"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 404 {object} ErrorResponseBody "Document not found"
// @Security BearerAuth
// @Router /documents/{id} [get]
func (h *DocumentHandler) GetByID(c *gin.Context) {
	docID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid document ID")
		return
	}

	doc, err := h.registryService.GetByID(c.Request.Context(), docID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, doc)
}

// List handles GET /api/v1/documents
// @Summary List the document register
// @Description List documents with optional search, type, security, and status filters
// @Tags documents
// @Produce json
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Param search query string false "Match against title, number, creator, and category"
// @Param type query string false "Filter by document type"
// @Param security query string false "Filter by security classification"
// @Param status query string false "Filter by lifecycle status"
// @Success 200 {object} Response{data=[]domain.DocumentRecord,meta=PagMeta} "Register page"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /documents [get]
func (h *DocumentHandler) List(c *gin.Context) {
	offset, limit := parsePagination(c)

	filter := &domain.DocumentFilter{
		Search:   c.Query("search"),
		Type:     c.Query("type"),
		Security: domain.SecurityLevel(c.Query("security")),
		Status:   domain.DocumentStatus(c.Query("status")),
	}

	docs, total, err := h.registryService.List(c.Request.Context(), filter, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, docs, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// AddVersion handles POST /api/v1/documents/:id/versions
// @Summary Open a new document version
// @Description Append a new version; fails while the latest version is still unsigned
// @Tags documents
// @Accept json
// @Produce json
// @Param id path string true "Document ID (UUID)"
// @Param request body AddVersionRequest true "Version details"
// @Success 201 {object} Response{data=domain.DocumentVersion} "Version opened"
// @Failure 400 {object} ErrorResponseBody "Invalid request"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 404 {object} ErrorResponseBody "Document not found"
// @Failure 409 {object} ErrorResponseBody "Latest version still unsigned"
// @Security BearerAuth
// @Router /documents/{id}/versions [post]
func (h *DocumentHandler) AddVersion(c *gin.Context) {
	userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	docID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid document ID")
		return
	}

	var req struct {
		ChangeSummary string `json:"change_summary" binding:"required"`
		Version       string `json:"version"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "change_summary is required")
		return
	}

	version, err := h.registryService.AddVersion(c.Request.Context(), &service.AddVersionInput{
		DocumentID:    docID,
		ActorID:       userID,
		ChangeSummary: req.ChangeSummary,
		Label:         req.Version,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, version)
}

// UpdateChangeSummary handles PATCH /api/v1/documents/:id/versions/:versionId
// @Summary Update a version's change summary
// @Description Edit the change summary of an unsigned version; signed versions are frozen
// @Tags documents
// @Accept json
// @Produce json
// @Param id path string true "Document ID (UUID)"
// @Param versionId path string true "Version ID (UUID)"
// @Param request body UpdateSummaryRequest true "New change summary"
// @Success 200 {object} Response{data=domain.DocumentVersion} "Version updated"
// @Failure 400 {object} ErrorResponseBody "Invalid request"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 404 {object} ErrorResponseBody "Document or version not found"
// @Failure 409 {object} ErrorResponseBody "Version already signed"
// @Security BearerAuth
// @Router /documents/{id}/versions/{versionId} [patch]
func (h *DocumentHandler) UpdateChangeSummary(c *gin.Context) {
	userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	docID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid document ID")
		return
	}
	versionID, err := uuid.Parse(c.Param("versionId"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid version ID")
		return
	}

	var req struct {
		ChangeSummary string `json:"change_summary" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "change_summary is required")
		return
	}

	version, err := h.registryService.UpdateChangeSummary(c.Request.Context(), &service.UpdateSummaryInput{
		DocumentID:    docID,
		VersionID:     versionID,
		ActorID:       userID,
		ChangeSummary: req.ChangeSummary,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, version)
}

// Retire handles POST /api/v1/documents/:id/retire
// @Summary Retire a document
// @Description Move a document to the terminal Obsolete status
// @Tags documents
// @Produce json
// @Param id path string true "Document ID (UUID)"
// @Success 200 {object} Response{data=domain.DocumentRecord} "Document retired"
// @Failure 400 {object} ErrorResponseBody "Invalid ID"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 403 {object} ErrorResponseBody "Role lacks retire permission"
// @Failure 404 {object} ErrorResponseBody "Document not found"
// @Failure 409 {object} ErrorResponseBody "Document already obsolete"
// @Security BearerAuth
// @Router /documents/{id}/retire [post]
func (h *DocumentHandler) Retire(c *gin.Context) {
	userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	docID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid document ID")
		return
	}

	doc, err := h.registryService.Retire(c.Request.Context(), docID, userID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, doc)
}

// RegisterType handles POST /api/v1/document-types
// @Summary Register a document type
// @Description Extend the controlled document-type vocabulary; types are unique case-insensitively
// @Tags document-types
// @Accept json
// @Produce json
// @Param request body RegisterTypeRequest true "Type details"
// @Success 201 {object} Response{data=domain.DocumentType} "Type registered"
// @Failure 400 {object} ErrorResponseBody "Invalid request"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 403 {object} ErrorResponseBody "Role lacks manage permission"
// @Failure 409 {object} ErrorResponseBody "Type already registered"
// @Security BearerAuth
// @Router /document-types [post]
func (h *DocumentHandler) RegisterType(c *gin.Context) {
	userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	var req struct {
		Type        string `json:"type" binding:"required"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "type is required")
		return
	}

	docType, err := h.registryService.RegisterType(c.Request.Context(), &service.RegisterTypeInput{
		Type:        req.Type,
		Description: req.Description,
		ActorID:     userID,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, docType)
}

// ListTypes handles GET /api/v1/document-types
// @Summary List document types
// @Description List the controlled document-type vocabulary
// @Tags document-types
// @Produce json
// @Success 200 {object} Response{data=[]domain.DocumentType} "Type vocabulary"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /document-types [get]
func (h *DocumentHandler) ListTypes(c *gin.Context) {
	types, err := h.registryService.ListTypes(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, types)
}

// parsePagination extracts offset/limit query parameters with sane bounds.
func parsePagination(c *gin.Context) (offset, limit int) {
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return offset, limit
}
