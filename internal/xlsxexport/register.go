package xlsxexport

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"veridoc/internal/domain"
)

const sheetName = "Document Register"

// columns defines the register export header row.
var columns = []string{
	"Document Number",
	"Title",
	"Category",
	"Type",
	"Security",
	"Status",
	"Current Version",
	"Created By",
	"Issued By",
	"Date Of Issue",
	"Effective From",
	"Next Review Date",
	"Signatures",
}

// BuildRegister renders the document register as an XLSX workbook and
// returns the encoded file bytes.
func BuildRegister(docs []domain.DocumentRecord) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("creating sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("removing default sheet: %w", err)
	}

	for col, name := range columns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, fmt.Errorf("header cell: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, name); err != nil {
			return nil, fmt.Errorf("header cell %s: %w", cell, err)
		}
	}

	for i := range docs {
		row := documentToRow(&docs[i])
		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, fmt.Errorf("row cell: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return nil, fmt.Errorf("row cell %s: %w", cell, err)
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("encoding workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// BuildFilename returns the download filename for a register export.
// Format: document_register_{YYYY-MM-DD}.xlsx
func BuildFilename() string {
	return fmt.Sprintf("document_register_%s.xlsx", time.Now().Format("2006-01-02"))
}

func documentToRow(doc *domain.DocumentRecord) []string {
	version := ""
	signatures := 0
	if active := doc.ActiveVersion(); active != nil {
		version = active.Version
		signatures = len(active.SignedOffBy)
	}
	return []string{
		doc.DocumentNumber,
		doc.Title,
		doc.DocumentCategory,
		doc.DocumentType,
		string(doc.DocumentSecurity),
		string(doc.Status),
		version,
		doc.CreatedBy,
		doc.IssuedBy,
		doc.DateOfIssue.Format("2006-01-02"),
		doc.EffectiveFrom.Format("2006-01-02"),
		doc.NextReviewDate.Format("2006-01-02"),
		fmt.Sprintf("%d", signatures),
	}
}
