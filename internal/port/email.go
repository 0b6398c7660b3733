package port

import (
	"context"
	"time"
)

// EmailSender defines the contract for workflow notification emails.
type EmailSender interface {
	SendTaskReady(ctx context.Context, toEmail, toName, docTitle, docNumber, stage string, dueDate time.Time) error
	SendDocumentEffective(ctx context.Context, toEmail, toName, docTitle, docNumber string) error
}
