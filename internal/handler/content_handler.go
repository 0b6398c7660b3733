package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"veridoc/internal/service"
)

// ContentHandler handles version content upload and retrieval endpoints.
type ContentHandler struct {
	contentService service.ContentService
}

// NewContentHandler creates a new ContentHandler.
func NewContentHandler(contentService service.ContentService) *ContentHandler {
	return &ContentHandler{contentService: contentService}
}

// Upload handles POST /api/v1/documents/:id/versions/:versionId/content
// @Summary Upload version content
// @Description Attach a content file to an unsigned version; signed versions are frozen
// @Tags content
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Document ID (UUID)"
// @Param versionId path string true "Version ID (UUID)"
// @Param file formData file true "Content file"
// @Success 200 {object} Response{data=domain.DocumentVersion} "Content attached"
// @Failure 400 {object} ErrorResponseBody "Missing file or invalid request"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 404 {object} ErrorResponseBody "Document or version not found"
// @Failure 409 {object} ErrorResponseBody "Version already signed"
// @Failure 500 {object} ErrorResponseBody "Upload failed"
// @Security BearerAuth
// @Router /documents/{id}/versions/{versionId}/content [post]
func (h *ContentHandler) Upload(c *gin.Context) {
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

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return
	}
	defer func() { _ = file.Close() }()

	version, err := h.contentService.Upload(c.Request.Context(), &service.UploadContentInput{
		DocumentID:  docID,
		VersionID:   versionID,
		ActorID:     userID,
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        file,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, version)
}

// Download handles GET /api/v1/documents/:id/versions/:versionId/content
// @Summary Download version content
// @Description Stream the content file attached to a version
// @Tags content
// @Produce octet-stream
// @Param id path string true "Document ID (UUID)"
// @Param versionId path string true "Version ID (UUID)"
// @Success 200 {file} binary "Content file"
// @Failure 400 {object} ErrorResponseBody "Invalid ID"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 404 {object} ErrorResponseBody "No content attached"
// @Security BearerAuth
// @Router /documents/{id}/versions/{versionId}/content [get]
func (h *ContentHandler) Download(c *gin.Context) {
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

	download, err := h.contentService.Download(c.Request.Context(), docID, versionID)
	if err != nil {
		HandleError(c, err)
		return
	}

	contentType := download.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, download.FileName))
	c.Data(http.StatusOK, contentType, download.Data)
}

// PresignedURL handles GET /api/v1/documents/:id/versions/:versionId/content-url
// @Summary Get a presigned content URL
// @Description Return a time-limited URL for direct content download
// @Tags content
// @Produce json
// @Param id path string true "Document ID (UUID)"
// @Param versionId path string true "Version ID (UUID)"
// @Success 200 {object} Response{data=object} "Presigned URL"
// @Failure 400 {object} ErrorResponseBody "Invalid ID"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 404 {object} ErrorResponseBody "No content attached"
// @Security BearerAuth
// @Router /documents/{id}/versions/{versionId}/content-url [get]
func (h *ContentHandler) PresignedURL(c *gin.Context) {
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

	url, err := h.contentService.PresignedURL(c.Request.Context(), docID, versionID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"url": url})
}
