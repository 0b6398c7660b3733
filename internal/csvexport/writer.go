package csvexport

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"veridoc/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the CSV header row for audit trail exports.
var columns = []string{
	"Sequence",
	"Timestamp",
	"Actor",
	"Role",
	"Action",
	"Description",
}

// Writer wraps csv.Writer for exporting audit trails as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteEvents converts a batch of audit events to CSV rows and writes them.
func (w *Writer) WriteEvents(events []domain.AuditEvent) error {
	for i := range events {
		if err := w.csv.Write(eventToRow(&events[i])); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

func eventToRow(e *domain.AuditEvent) []string {
	return []string{
		strconv.FormatInt(e.Seq, 10),
		e.Timestamp.Format(time.RFC3339),
		e.Actor,
		string(e.Role),
		string(e.Action),
		e.Description,
	}
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans a document number for use in Content-Disposition.
// Replaces non-alphanumeric chars (except - _) with _, collapses consecutive
// underscores, and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns a sanitized filename for Content-Disposition header.
// Format: {sanitized_document_number}_audit_{YYYY-MM-DD}.csv
func BuildFilename(documentNumber string) string {
	sanitized := SanitizeFilename(documentNumber)
	date := time.Now().Format("2006-01-02")
	return fmt.Sprintf("%s_audit_%s.csv", sanitized, date)
}
