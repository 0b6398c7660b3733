package domain

// DocumentStatus is the lifecycle state of a controlled document.
type DocumentStatus string

const (
	StatusDraft           DocumentStatus = "Draft"
	StatusInReview        DocumentStatus = "In Review"
	StatusPendingApproval DocumentStatus = "Pending Approval"
	StatusApproved        DocumentStatus = "Approved"
	StatusEffective       DocumentStatus = "Effective"
	StatusObsolete        DocumentStatus = "Obsolete"
)

// Terminal reports whether no further workflow progression is possible.
func (s DocumentStatus) Terminal() bool {
	return s == StatusEffective || s == StatusObsolete
}

// WorkflowStage identifies a step in the controlled review cycle.
type WorkflowStage string

const (
	StageDrafting         WorkflowStage = "Drafting"
	StageReview           WorkflowStage = "Review"
	StageQualityAssurance WorkflowStage = "Quality Assurance"
	StageApproval         WorkflowStage = "Approval"
	StageRelease          WorkflowStage = "Release"
)

// StageEntryStatus maps a stage to the document status that applies while
// that stage is the one in progress.
var StageEntryStatus = map[WorkflowStage]DocumentStatus{
	StageDrafting:         StatusDraft,
	StageReview:           StatusInReview,
	StageQualityAssurance: StatusInReview,
	StageApproval:         StatusPendingApproval,
	StageRelease:          StatusApproved,
}

// SignatureMeaning is the declared intent of an electronic signature.
type SignatureMeaning string

const (
	MeaningReview    SignatureMeaning = "Review"
	MeaningApproval  SignatureMeaning = "Approval"
	MeaningExecution SignatureMeaning = "Execution"
)

// ValidSignatureMeanings enumerates the accepted signature meanings.
var ValidSignatureMeanings = map[SignatureMeaning]bool{
	MeaningReview:    true,
	MeaningApproval:  true,
	MeaningExecution: true,
}

// SecurityLevel classifies a document's access restriction.
type SecurityLevel string

const (
	SecurityConfidential SecurityLevel = "Confidential"
	SecurityInternal     SecurityLevel = "Internal"
	SecurityRestricted   SecurityLevel = "Restricted"
	SecurityPublic       SecurityLevel = "Public"
)

// ValidSecurityLevels enumerates the accepted security classifications.
var ValidSecurityLevels = map[SecurityLevel]bool{
	SecurityConfidential: true,
	SecurityInternal:     true,
	SecurityRestricted:   true,
	SecurityPublic:       true,
}

// TaskStatus is the completion state of a workflow task.
type TaskStatus string

const (
	TaskPending   TaskStatus = "Pending"
	TaskCompleted TaskStatus = "Completed"
)

// Permission is a closed enumeration of role capabilities. Free-text
// permission strings are rejected at the boundary so a typo cannot silently
// grant or deny access.
type Permission string

const (
	PermSignReview      Permission = "sign:review"
	PermSignApproval    Permission = "sign:approval"
	PermSignExecution   Permission = "sign:execution"
	PermManageWorkflow  Permission = "manage:workflow"
	PermManageDocuments Permission = "manage:documents"
	PermManageTypes     Permission = "manage:types"
	PermRetireDocuments Permission = "retire:documents"
)

// ValidPermissions enumerates every recognized permission.
var ValidPermissions = map[Permission]bool{
	PermSignReview:      true,
	PermSignApproval:    true,
	PermSignExecution:   true,
	PermManageWorkflow:  true,
	PermManageDocuments: true,
	PermManageTypes:     true,
	PermRetireDocuments: true,
}

// PermissionForMeaning returns the permission required to sign with the
// given meaning, e.g. Approval requires sign:approval.
func PermissionForMeaning(m SignatureMeaning) Permission {
	switch m {
	case MeaningReview:
		return PermSignReview
	case MeaningApproval:
		return PermSignApproval
	case MeaningExecution:
		return PermSignExecution
	}
	return Permission("")
}

// AuditAction identifies the kind of recorded mutation.
type AuditAction string

const (
	AuditDocumentCreated       AuditAction = "Document Created"
	AuditVersionAdded          AuditAction = "Version Added"
	AuditSummaryUpdated        AuditAction = "Change Summary Updated"
	AuditWorkflowStepCompleted AuditAction = "Workflow Step Completed"
	AuditDocumentRetired       AuditAction = "Document Retired"
	AuditContentUploaded       AuditAction = "Version Content Uploaded"
)

// SignatureCapturedAction builds the audit action for a captured signature,
// e.g. "Approval Signature Captured".
func SignatureCapturedAction(m SignatureMeaning) AuditAction {
	return AuditAction(string(m) + " Signature Captured")
}

// UserRole names the quality-system role a user acts under. Roles are
// defined in the roles table together with their permission set.
type UserRole string

const (
	RoleAdministrator      UserRole = "Administrator"
	RoleDocumentController UserRole = "Document Controller"
	RoleQualityAssurance   UserRole = "QA"
	RoleQualityHead        UserRole = "Quality Head"
)
