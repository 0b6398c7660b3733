package service

import (
	"bytes"
	"context"
	"fmt"

	"github.com/google/uuid"

	"veridoc/internal/csvexport"
	"veridoc/internal/domain"
	"veridoc/internal/port"
	"veridoc/internal/xlsxexport"
)

// exportPageSize bounds a single repository read while exporting.
const exportPageSize = 500

// ReportService produces compliance summaries and register/audit exports.
type ReportService interface {
	StatusSummary(ctx context.Context) (*domain.StatusSummary, error)
	RegisterXLSX(ctx context.Context, filter *domain.DocumentFilter) ([]byte, string, error)
	AuditCSV(ctx context.Context, documentID uuid.UUID, filter *domain.AuditFilter) ([]byte, string, error)
}

type reportService struct {
	docRepo port.DocumentRepository
	audit   AuditService
}

// NewReportService creates a new ReportService implementation.
func NewReportService(docRepo port.DocumentRepository, audit AuditService) ReportService {
	return &reportService{
		docRepo: docRepo,
		audit:   audit,
	}
}

func (s *reportService) StatusSummary(ctx context.Context) (*domain.StatusSummary, error) {
	return s.docRepo.StatusSummary(ctx)
}

func (s *reportService) RegisterXLSX(ctx context.Context, filter *domain.DocumentFilter) ([]byte, string, error) {
	var all []domain.DocumentRecord
	for offset := 0; ; offset += exportPageSize {
		page, total, err := s.docRepo.List(ctx, filter, offset, exportPageSize)
		if err != nil {
			return nil, "", fmt.Errorf("listing register: %w", err)
		}
		all = append(all, page...)
		if offset+exportPageSize >= total || len(page) == 0 {
			break
		}
	}

	data, err := xlsxexport.BuildRegister(all)
	if err != nil {
		return nil, "", fmt.Errorf("building register export: %w", err)
	}
	return data, xlsxexport.BuildFilename(), nil
}

func (s *reportService) AuditCSV(ctx context.Context, documentID uuid.UUID, filter *domain.AuditFilter) ([]byte, string, error) {
	doc, err := s.docRepo.GetByID(ctx, documentID)
	if err != nil {
		return nil, "", err
	}
	events, err := s.audit.Query(ctx, documentID, filter)
	if err != nil {
		return nil, "", err
	}

	var buf bytes.Buffer
	buf.Write(csvexport.BOM)
	w := csvexport.NewWriter(&buf)
	if err := w.WriteHeader(); err != nil {
		return nil, "", fmt.Errorf("writing header: %w", err)
	}
	if err := w.WriteEvents(events); err != nil {
		return nil, "", fmt.Errorf("writing events: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", fmt.Errorf("flushing export: %w", err)
	}
	return buf.Bytes(), csvexport.BuildFilename(doc.DocumentNumber), nil
}
