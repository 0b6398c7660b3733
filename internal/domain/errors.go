package domain

import "errors"

var (
	ErrValidation           = errors.New("required field missing or malformed")
	ErrNotFound             = errors.New("resource not found")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrForbidden            = errors.New("role lacks required permission")
	ErrDuplicateType        = errors.New("document type already registered")
	ErrInvalidState         = errors.New("operation not valid in current lifecycle state")
	ErrOutOfOrder           = errors.New("workflow prerequisite not satisfied")
	ErrMissingJustification = errors.New("signature justification is required")
	ErrUnknownSigner        = errors.New("signer is not a registered credential holder")
	ErrInvalidCredential    = errors.New("signing credential rejected")
	ErrInvalidLogin         = errors.New("invalid login credentials")
	ErrUserInactive         = errors.New("user is inactive")
	ErrUploadFailed         = errors.New("content upload to storage failed")
)
