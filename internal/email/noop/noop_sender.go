package noop

import (
	"context"
	"log"
	"time"

	"veridoc/internal/port"
)

type noopSender struct{}

// NewNoopSender creates a no-op EmailSender that logs notifications to stdout.
func NewNoopSender() port.EmailSender {
	return &noopSender{}
}

func (s *noopSender) SendTaskReady(_ context.Context, toEmail, toName, docTitle, docNumber, stage string, dueDate time.Time) error {
	log.Printf("[NOOP EMAIL] Task ready for %s (%s): %s (%s) at stage %s, due %s",
		toName, toEmail, docTitle, docNumber, stage, dueDate.Format("2006-01-02"))
	return nil
}

func (s *noopSender) SendDocumentEffective(_ context.Context, toEmail, toName, docTitle, docNumber string) error {
	log.Printf("[NOOP EMAIL] Document effective notice for %s (%s): %s (%s)",
		toName, toEmail, docTitle, docNumber)
	return nil
}
