package handler

import (
	"github.com/google/uuid"

	"veridoc/internal/domain"
)

// Swagger type definitions for API documentation.
// These types are used by swag to generate OpenAPI documentation.

// --- Request Types ---

// LoginRequest represents the login request body.
type LoginRequest struct {
	Email    string `json:"email" binding:"required" example:"qa.lead@veridoc.local"`
	Password string `json:"password" binding:"required" example:"securepassword123"`
}

// RefreshRequest represents the token refresh request body.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

// CreateDocumentRequest represents the create document request body.
type CreateDocumentRequest struct {
	Title            string `json:"title" binding:"required" example:"Equipment Cleaning Procedure"`
	DocumentNumber   string `json:"document_number" binding:"required" example:"SOP-014"`
	DocumentCategory string `json:"document_category" binding:"required" example:"Quality"`
	DocumentType     string `json:"document_type" example:"SOP"`
	DocumentSecurity string `json:"document_security" example:"Confidential"`
	IssuedBy         string `json:"issued_by" binding:"required" example:"Priya Nair"`
	IssuerRole       string `json:"issuer_role" binding:"required" example:"Quality Head"`
	InitialVersion   string `json:"initial_version" example:"0.1"`
	DateOfIssue      string `json:"date_of_issue" example:"2026-03-01T00:00:00Z"`
	EffectiveFrom    string `json:"effective_from" example:"2026-03-08T00:00:00Z"`
	NextReviewDate   string `json:"next_review_date" example:"2026-08-28T00:00:00Z"`
	TemplateID       string `json:"template_id" example:"550e8400-e29b-41d4-a716-446655440000"`
}

// AddVersionRequest represents the add version request body.
type AddVersionRequest struct {
	ChangeSummary string `json:"change_summary" binding:"required" example:"Updated sanitizer contact times per validation study VR-22."`
	Version       string `json:"version" example:"1.1"`
}

// UpdateSummaryRequest represents the change summary update request body.
type UpdateSummaryRequest struct {
	ChangeSummary string `json:"change_summary" binding:"required" example:"Clarified rinse step timing."`
}

// RegisterTypeRequest represents the document type registration request body.
type RegisterTypeRequest struct {
	Type        string `json:"type" binding:"required" example:"Validation Protocol"`
	Description string `json:"description" example:"Protocols governing process and equipment validation"`
}

// SignRequest represents the electronic signature request body.
type SignRequest struct {
	VersionID     uuid.UUID               `json:"version_id" binding:"required" example:"660e8400-e29b-41d4-a716-446655440001"`
	PIN           string                  `json:"pin" binding:"required" example:"482916"`
	Meaning       domain.SignatureMeaning `json:"meaning" binding:"required" example:"Approval"`
	Justification string                  `json:"justification" binding:"required" example:"Reviewed against change control CC-2026-041."`
}

// --- Response Types ---

// Response wraps a success response.
type Response struct {
	Success bool        `json:"success" example:"true"`
	Data    interface{} `json:"data,omitempty"`
	Meta    *PagMeta    `json:"meta,omitempty"`
}

// ErrorResponseBody wraps an error response.
type ErrorResponseBody struct {
	Success bool      `json:"success" example:"false"`
	Error   *APIError `json:"error"`
}
