package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an authenticated user of the document management system. The
// password hash authenticates the session; the PIN digest is the separate
// second factor required for electronic signatures.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	FullName     string    `db:"full_name" json:"full_name"`
	Role         UserRole  `db:"role" json:"role"`
	PINDigest    string    `db:"pin_digest" json:"-"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// RoleDefinition maps a role name to its closed permission set.
type RoleDefinition struct {
	ID          uuid.UUID    `db:"id" json:"id"`
	Name        UserRole     `db:"name" json:"name"`
	Description string       `db:"description" json:"description"`
	Permissions []Permission `json:"permissions"`
}

// HasPermission reports whether the role definition grants p.
func (r *RoleDefinition) HasPermission(p Permission) bool {
	for _, have := range r.Permissions {
		if have == p {
			return true
		}
	}
	return false
}

// ElectronicSignature is an authenticated, justified assertion bound to one
// document version. Produced only by the signature service; never edited or
// removed afterwards.
type ElectronicSignature struct {
	ID            uuid.UUID        `json:"id"`
	SignedBy      string           `json:"signed_by"`
	SignerRole    UserRole         `json:"signer_role"`
	SignedAt      time.Time        `json:"signed_at"`
	Meaning       SignatureMeaning `json:"meaning"`
	Justification string           `json:"justification"`
}

// DocumentVersion is one revision of a controlled document. A version with
// at least one signature is frozen: its change summary and content may no
// longer change.
type DocumentVersion struct {
	ID            uuid.UUID             `json:"id"`
	Version       string                `json:"version"`
	CreatedAt     time.Time             `json:"created_at"`
	ChangeSummary string                `json:"change_summary"`
	SignedOffBy   []ElectronicSignature `json:"signed_off_by"`

	// Content attachment coordinates, set by the content upload path.
	FileName    string `json:"file_name,omitempty"`
	ContentType string `json:"content_type,omitempty"`
	ContentKey  string `json:"content_key,omitempty"`
	FileSize    int64  `json:"file_size,omitempty"`
}

// Signed reports whether the version carries at least one signature.
func (v *DocumentVersion) Signed() bool {
	return len(v.SignedOffBy) > 0
}

// LifecycleEntry is one historical record of a document's stage and status
// at a point in time.
type LifecycleEntry struct {
	ID          uuid.UUID      `json:"id"`
	Stage       WorkflowStage  `json:"stage"`
	Status      DocumentStatus `json:"status"`
	UpdatedAt   time.Time      `json:"updated_at"`
	Actor       string         `json:"actor"`
	Role        UserRole       `json:"role"`
	SignatureID *uuid.UUID     `json:"signature_id,omitempty"`
}

// WorkflowStep is one required step of a workflow template.
type WorkflowStep struct {
	Stage             WorkflowStage    `json:"stage"`
	Role              UserRole         `json:"role"`
	MinimumSignatures int              `json:"minimum_signatures"`
	SLADays           int              `json:"sla_days"`
	SignatureMeaning  SignatureMeaning `json:"signature_meaning"`
}

// WorkflowTemplate is an ordered set of review/approval steps. The template
// is deep-copied into each document at creation time so later template edits
// never retroactively alter an in-flight document.
type WorkflowTemplate struct {
	ID        uuid.UUID      `json:"id"`
	Name      string         `json:"name"`
	IsDefault bool           `json:"is_default"`
	Steps     []WorkflowStep `json:"steps"`
}

// Clone returns an independent copy of the template with a fresh identity.
func (t *WorkflowTemplate) Clone() WorkflowTemplate {
	steps := make([]WorkflowStep, len(t.Steps))
	copy(steps, t.Steps)
	return WorkflowTemplate{
		ID:        uuid.New(),
		Name:      t.Name,
		IsDefault: t.IsDefault,
		Steps:     steps,
	}
}

// WorkflowTask is a per-document instance of a template step.
type WorkflowTask struct {
	ID          uuid.UUID     `db:"id" json:"id"`
	DocumentID  uuid.UUID     `db:"document_id" json:"document_id"`
	StepIndex   int           `db:"step_index" json:"step_index"`
	Stage       WorkflowStage `db:"stage" json:"stage"`
	AssignedTo  string        `db:"assigned_to" json:"assigned_to"`
	Role        UserRole      `db:"role" json:"role"`
	DueDate     time.Time     `db:"due_date" json:"due_date"`
	Status      TaskStatus    `db:"status" json:"status"`
	SignatureID *uuid.UUID    `db:"signature_id" json:"signature_id,omitempty"`
	CreatedAt   time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time     `db:"updated_at" json:"updated_at"`
}

// AuditEvent is one immutable entry of a document's audit trail. ID and
// Timestamp are assigned by the ledger; callers cannot override them.
type AuditEvent struct {
	ID          uuid.UUID         `json:"id"`
	DocumentID  uuid.UUID         `json:"document_id"`
	Seq         int64             `json:"seq"`
	Timestamp   time.Time         `json:"timestamp"`
	Actor       string            `json:"actor"`
	Role        UserRole          `json:"role"`
	Action      AuditAction       `json:"action"`
	Description string            `json:"description"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// AuditFilter narrows an audit trail query. Search matches action,
// description, and actor case-insensitively; Actor matches exactly. Both
// conditions AND together.
type AuditFilter struct {
	Search string
	Actor  string
}

// DocumentType is one entry of the controlled document-type vocabulary.
type DocumentType struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Type        string    `db:"type" json:"type"`
	Description string    `db:"description" json:"description"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// DocumentRecord is the unit of control: metadata, lifecycle history,
// version history, and the workflow configuration frozen at creation time.
// The audit trail lives in the ledger, keyed by document id.
type DocumentRecord struct {
	ID               uuid.UUID      `json:"id"`
	Title            string         `json:"title"`
	DocumentNumber   string         `json:"document_number"`
	DocumentCategory string         `json:"document_category"`
	DocumentType     string         `json:"document_type"`
	DocumentSecurity SecurityLevel  `json:"document_security"`
	CreatedBy        string         `json:"created_by"`
	DateCreated      time.Time      `json:"date_created"`
	IssuedBy         string         `json:"issued_by"`
	IssuerRole       UserRole       `json:"issuer_role"`
	DateOfIssue      time.Time      `json:"date_of_issue"`
	EffectiveFrom    time.Time      `json:"effective_from"`
	NextReviewDate   time.Time      `json:"next_review_date"`
	Status           DocumentStatus `json:"status"`

	Versions       []DocumentVersion `json:"versions"`
	Lifecycle      []LifecycleEntry  `json:"lifecycle"`
	WorkflowConfig WorkflowTemplate  `json:"workflow_config"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ActiveVersion returns the latest version, or nil when none exist.
func (d *DocumentRecord) ActiveVersion() *DocumentVersion {
	if len(d.Versions) == 0 {
		return nil
	}
	return &d.Versions[len(d.Versions)-1]
}

// VersionByID locates a version by id, or nil.
func (d *DocumentRecord) VersionByID(id uuid.UUID) *DocumentVersion {
	for i := range d.Versions {
		if d.Versions[i].ID == id {
			return &d.Versions[i]
		}
	}
	return nil
}

// CurrentStage returns the stage of the most recent lifecycle entry.
func (d *DocumentRecord) CurrentStage() WorkflowStage {
	if len(d.Lifecycle) == 0 {
		return StageDrafting
	}
	return d.Lifecycle[len(d.Lifecycle)-1].Stage
}

// DocumentFilter narrows register listings. Search matches title, number,
// creator, and category case-insensitively; the remaining fields match
// exactly when non-empty.
type DocumentFilter struct {
	Search   string
	Type     string
	Security SecurityLevel
	Status   DocumentStatus
}

// StatusSummary aggregates register counts for compliance dashboards.
type StatusSummary struct {
	Total         int                    `json:"total"`
	ByStatus      map[DocumentStatus]int `json:"by_status"`
	OverdueReview int                    `json:"overdue_review"`
}
