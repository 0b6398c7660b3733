package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"veridoc/internal/service"
)

// WorkflowHandler handles workflow task endpoints.
type WorkflowHandler struct {
	workflowService service.WorkflowService
}

// NewWorkflowHandler creates a new WorkflowHandler.
func NewWorkflowHandler(workflowService service.WorkflowService) *WorkflowHandler {
	return &WorkflowHandler{workflowService: workflowService}
}

// ListTasks handles GET /api/v1/documents/:id/tasks
// @Summary List workflow tasks
// @Description List a document's workflow tasks in template step order
// @Tags workflow
// @Produce json
// @Param id path string true "Document ID (UUID)"
// @Success 200 {object} Response{data=[]domain.WorkflowTask} "Task list"
// @Failure 400 {object} ErrorResponseBody "Invalid ID"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 404 {object} ErrorResponseBody "Document not found"
// @Security BearerAuth
// @Router /documents/{id}/tasks [get]
func (h *WorkflowHandler) ListTasks(c *gin.Context) {
	docID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid document ID")
		return
	}

	tasks, err := h.workflowService.ListTasks(c.Request.Context(), docID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, tasks)
}

// CompleteTask handles POST /api/v1/documents/:id/tasks/:taskId/complete
// @Summary Complete a workflow task
// @Description Close a pending task and advance the document's lifecycle status
// @Tags workflow
// @Produce json
// @Param id path string true "Document ID (UUID)"
// @Param taskId path string true "Task ID (UUID)"
// @Success 200 {object} Response{data=domain.WorkflowTask} "Task completed"
// @Failure 400 {object} ErrorResponseBody "Invalid ID"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 403 {object} ErrorResponseBody "Actor role does not match the task"
// @Failure 404 {object} ErrorResponseBody "Document or task not found"
// @Failure 409 {object} ErrorResponseBody "Task already completed, prior steps pending, or signatures missing"
// @Security BearerAuth
// @Router /documents/{id}/tasks/{taskId}/complete [post]
func (h *WorkflowHandler) CompleteTask(c *gin.Context) {
	userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	docID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid document ID")
		return
	}
	taskID, err := uuid.Parse(c.Param("taskId"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid task ID")
		return
	}

	task, err := h.workflowService.CompleteTask(c.Request.Context(), &service.CompleteTaskInput{
		DocumentID: docID,
		TaskID:     taskID,
		ActorID:    userID,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, task)
}
