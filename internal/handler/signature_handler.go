package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"veridoc/internal/domain"
	"veridoc/internal/service"
)

// SignatureHandler handles electronic signature endpoints.
type SignatureHandler struct {
	signatureService service.SignatureService
}

// NewSignatureHandler creates a new SignatureHandler.
func NewSignatureHandler(signatureService service.SignatureService) *SignatureHandler {
	return &SignatureHandler{signatureService: signatureService}
}

// Sign handles POST /api/v1/documents/:id/signatures
// @Summary Capture an electronic signature
// @Description Sign a document version with a PIN second factor, meaning, and justification
// @Tags signatures
// @Accept json
// @Produce json
// @Param id path string true "Document ID (UUID)"
// @Param request body SignRequest true "Signature details"
// @Success 201 {object} Response{data=domain.ElectronicSignature} "Signature captured"
// @Failure 400 {object} ErrorResponseBody "Missing justification or invalid request"
// @Failure 401 {object} ErrorResponseBody "Signature rejected"
// @Failure 403 {object} ErrorResponseBody "Role lacks signing permission for this meaning"
// @Failure 404 {object} ErrorResponseBody "Document or version not found"
// @Failure 409 {object} ErrorResponseBody "Document already obsolete"
// @Security BearerAuth
// @Router /documents/{id}/signatures [post]
func (h *SignatureHandler) Sign(c *gin.Context) {
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
		VersionID     uuid.UUID               `json:"version_id" binding:"required"`
		PIN           string                  `json:"pin" binding:"required"`
		Meaning       domain.SignatureMeaning `json:"meaning" binding:"required"`
		Justification string                  `json:"justification"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "version_id, pin, and meaning are required")
		return
	}

	signature, err := h.signatureService.Sign(c.Request.Context(), &service.SignInput{
		DocumentID:    docID,
		VersionID:     req.VersionID,
		SignerID:      userID,
		PIN:           req.PIN,
		Meaning:       req.Meaning,
		Justification: req.Justification,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, signature)
}
