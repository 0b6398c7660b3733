package service_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"veridoc/internal/domain"
	"veridoc/internal/service"
	"veridoc/mocks"
)

func setupReport() (*mocks.MockDocumentRepo, *mocks.MockAuditRepo, service.ReportService) {
	docRepo := new(mocks.MockDocumentRepo)
	auditRepo := new(mocks.MockAuditRepo)
	svc := service.NewReportService(docRepo, service.NewAuditService(auditRepo))
	return docRepo, auditRepo, svc
}

func TestStatusSummary(t *testing.T) {
	docRepo, _, svc := setupReport()

	expected := &domain.StatusSummary{
		Total:         12,
		ByStatus:      map[domain.DocumentStatus]int{domain.StatusEffective: 9, domain.StatusDraft: 3},
		OverdueReview: 2,
	}
	docRepo.On("StatusSummary", mock.Anything).Return(expected, nil)

	summary, err := svc.StatusSummary(context.Background())

	require.NoError(t, err)
	assert.Equal(t, expected, summary)
}

func TestRegisterXLSX_SinglePage(t *testing.T) {
	docRepo, _, svc := setupReport()

	docs := []domain.DocumentRecord{{
		ID:             uuid.New(),
		Title:          "Deviation Handling SOP",
		DocumentNumber: "SOP-0042",
		Status:         domain.StatusEffective,
	}}
	docRepo.On("List", mock.Anything, (*domain.DocumentFilter)(nil), 0, 500).Return(docs, 1, nil)

	data, filename, err := svc.RegisterXLSX(context.Background(), nil)

	require.NoError(t, err)
	assert.NotEmpty(t, data)
	assert.True(t, strings.HasPrefix(filename, "document_register_"))
	assert.True(t, strings.HasSuffix(filename, ".xlsx"))
	docRepo.AssertExpectations(t)
}

func TestAuditCSV_Export(t *testing.T) {
	docRepo, auditRepo, svc := setupReport()

	doc := &domain.DocumentRecord{
		ID:             uuid.New(),
		DocumentNumber: "SOP-0042",
	}
	events := []domain.AuditEvent{{
		ID:          uuid.New(),
		DocumentID:  doc.ID,
		Seq:         1,
		Timestamp:   time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
		Actor:       "Marcus Webb",
		Role:        domain.RoleDocumentController,
		Action:      domain.AuditDocumentCreated,
		Description: "Marcus Webb created Deviation Handling SOP with number SOP-0042.",
	}}

	docRepo.On("GetByID", mock.Anything, doc.ID).Return(doc, nil)
	auditRepo.On("ListByDocument", mock.Anything, doc.ID, (*domain.AuditFilter)(nil)).Return(events, nil)

	data, filename, err := svc.AuditCSV(context.Background(), doc.ID, nil)

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(filename, "SOP-0042_audit_"))

	// BOM first, then parseable CSV.
	require.True(t, bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}))
	records, err := csv.NewReader(bytes.NewReader(data[3:])).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Document Created", records[1][4])
}

func TestAuditCSV_UnknownDocument(t *testing.T) {
	docRepo, auditRepo, svc := setupReport()

	docID := uuid.New()
	docRepo.On("GetByID", mock.Anything, docID).Return(nil, domain.ErrNotFound)

	_, _, err := svc.AuditCSV(context.Background(), docID, nil)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	auditRepo.AssertNotCalled(t, "ListByDocument", mock.Anything, mock.Anything, mock.Anything)
}
