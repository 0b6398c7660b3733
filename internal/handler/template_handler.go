package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"veridoc/internal/domain"
	"veridoc/internal/port"
)

// TemplateHandler handles workflow template catalog endpoints.
type TemplateHandler struct {
	templateRepo port.TemplateRepository
}

// NewTemplateHandler creates a new TemplateHandler.
func NewTemplateHandler(templateRepo port.TemplateRepository) *TemplateHandler {
	return &TemplateHandler{templateRepo: templateRepo}
}

// List handles GET /api/v1/workflow-templates
// @Summary List workflow templates
// @Description List the workflow template catalog
// @Tags workflow-templates
// @Produce json
// @Success 200 {object} Response{data=[]domain.WorkflowTemplate} "Template catalog"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security BearerAuth
// @Router /workflow-templates [get]
func (h *TemplateHandler) List(c *gin.Context) {
	templates, err := h.templateRepo.List(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, templates)
}

// GetByID handles GET /api/v1/workflow-templates/:id
// @Summary Get a workflow template
// @Description Get one workflow template with its ordered steps
// @Tags workflow-templates
// @Produce json
// @Param id path string true "Template ID (UUID)"
// @Success 200 {object} Response{data=domain.WorkflowTemplate} "Template"
// @Failure 400 {object} ErrorResponseBody "Invalid ID"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 404 {object} ErrorResponseBody "Template not found"
// @Security BearerAuth
// @Router /workflow-templates/{id} [get]
func (h *TemplateHandler) GetByID(c *gin.Context) {
	tplID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid template ID")
		return
	}

	tpl, err := h.templateRepo.GetByID(c.Request.Context(), tplID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, tpl)
}

// Create handles POST /api/v1/workflow-templates
// @Summary Create a workflow template
// @Description Add a template to the catalog; requires the manage:workflow permission
// @Tags workflow-templates
// @Accept json
// @Produce json
// @Param request body domain.WorkflowTemplate true "Template definition"
// @Success 201 {object} Response{data=domain.WorkflowTemplate} "Template created"
// @Failure 400 {object} ErrorResponseBody "Invalid request"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 403 {object} ErrorResponseBody "Role lacks manage permission"
// @Security BearerAuth
// @Router /workflow-templates [post]
func (h *TemplateHandler) Create(c *gin.Context) {
	var req struct {
		Name      string                `json:"name" binding:"required"`
		IsDefault bool                  `json:"is_default"`
		Steps     []domain.WorkflowStep `json:"steps" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "name and steps are required")
		return
	}
	if len(req.Steps) == 0 {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "a template needs at least one step")
		return
	}
	for _, step := range req.Steps {
		if _, ok := domain.StageEntryStatus[step.Stage]; !ok {
			RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "unknown workflow stage: "+string(step.Stage))
			return
		}
		if step.Role == "" || step.MinimumSignatures < 0 || step.SLADays < 0 {
			RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "each step needs a role and non-negative signature and SLA values")
			return
		}
		if step.SignatureMeaning != "" && !domain.ValidSignatureMeanings[step.SignatureMeaning] {
			RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "unknown signature meaning: "+string(step.SignatureMeaning))
			return
		}
	}

	tpl := &domain.WorkflowTemplate{
		ID:        uuid.New(),
		Name:      req.Name,
		IsDefault: req.IsDefault,
		Steps:     req.Steps,
	}
	if err := h.templateRepo.Create(c.Request.Context(), tpl); err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, tpl)
}
