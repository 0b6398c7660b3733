package csvexport_test

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"veridoc/internal/csvexport"
	"veridoc/internal/domain"
)

func sampleEvents() []domain.AuditEvent {
	ts := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	return []domain.AuditEvent{
		{
			ID:          uuid.New(),
			Seq:         1,
			Timestamp:   ts,
			Actor:       "Marcus Webb",
			Role:        domain.RoleDocumentController,
			Action:      domain.AuditDocumentCreated,
			Description: "Marcus Webb created Deviation Handling SOP with number SOP-0042.",
		},
		{
			ID:          uuid.New(),
			Seq:         2,
			Timestamp:   ts.Add(time.Hour),
			Actor:       "Elena Duarte",
			Role:        domain.RoleQualityHead,
			Action:      domain.SignatureCapturedAction(domain.MeaningApproval),
			Description: `Elena Duarte signed version 1.0 with justification: includes "quoted", text.`,
		},
	}
}

func TestWriter_HeaderAndRows(t *testing.T) {
	var buf bytes.Buffer
	w := csvexport.NewWriter(&buf)

	require.NoError(t, w.WriteHeader())
	require.NoError(t, w.WriteEvents(sampleEvents()))
	w.Flush()
	require.NoError(t, w.Error())

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"Sequence", "Timestamp", "Actor", "Role", "Action", "Description"}, records[0])
	assert.Equal(t, "1", records[1][0])
	assert.Equal(t, "2026-03-14T09:30:00Z", records[1][1])
	assert.Equal(t, "Document Created", records[1][4])

	// Embedded quotes and commas survive the round trip.
	assert.Equal(t, "Approval Signature Captured", records[2][4])
	assert.Equal(t, `Elena Duarte signed version 1.0 with justification: includes "quoted", text.`, records[2][5])
}

func TestSanitizeFilename(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"SOP-0042", "SOP-0042"},
		{"SOP 0042/Rev B", "SOP_0042_Rev_B"},
		{"__weird__///name__", "weird_name"},
		{strings.Repeat("a", 150), strings.Repeat("a", 100)},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, csvexport.SanitizeFilename(tc.in))
	}
}

func TestBuildFilename(t *testing.T) {
	name := csvexport.BuildFilename("SOP-0042")
	want := fmt.Sprintf("SOP-0042_audit_%s.csv", time.Now().Format("2006-01-02"))
	assert.Equal(t, want, name)
}
