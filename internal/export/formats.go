package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Format identifies an output file format.
type Format string

const (
	// FormatXLSX is the primary spreadsheet format.
	FormatXLSX Format = "xlsx"
	// FormatCSV is the plain delimited-text fallback.
	FormatCSV Format = "csv"
	// FormatHTML is the best-effort gallery supplement.
	FormatHTML Format = "html"
)

const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypeCSV  = "text/csv"
	contentTypeHTML = "text/html"

	sheetName = "Members"
)

// ContentError reports a cell whose value cannot be represented in the
// target format; the writer reacts by sanitizing and retrying.
type ContentError struct {
	Cell string
}

func (e ContentError) Error() string {
	return fmt.Sprintf("cell %s contains characters not representable in xlsx", e.Cell)
}

// renderXLSX materializes rows (header first) as an XLSX workbook. Values
// carrying illegal control characters yield a ContentError before any
// workbook state is written.
func renderXLSX(rows [][]string) ([]byte, error) {
	for i, row := range rows {
		for j, cell := range row {
			if containsIllegalRune(cell) {
				name, err := excelize.CoordinatesToCellName(j+1, i+1)
				if err != nil {
					name = fmt.Sprintf("(%d,%d)", j+1, i+1)
				}
				return nil, ContentError{Cell: name}
			}
		}
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("drop default sheet: %w", err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		values := make([]any, len(row))
		for j, v := range row {
			values[j] = v
		}
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+1, err)
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// renderCSV materializes rows as comma-delimited UTF-8 text.
func renderCSV(rows [][]string) ([]byte, error) {
	buf := &bytes.Buffer{}
	writer := csv.NewWriter(buf)
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return nil, err
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func containsIllegalRune(s string) bool {
	for _, r := range s {
		if isIllegalRune(r) {
			return true
		}
	}
	return false
}
