package source

import (
	"context"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/evscope-org/evscope/dataset"
)

// ============================================================================
// EXCEL SOURCE — Frames from .xlsx workbooks
// ============================================================================
// State agencies publish the registration data as spreadsheet exports
// too; this source reads the first sheet of a workbook. The first row
// is the header row.
// ============================================================================

// ExcelSource loads a dataset from the first sheet of an Excel file.
type ExcelSource struct {
	path string
}

// Excel creates a source backed by an .xlsx workbook.
func Excel(path string) *ExcelSource {
	return &ExcelSource{path: path}
}

// GetTable reads the workbook's first sheet into an all-text frame.
func (s *ExcelSource) GetTable(ctx context.Context, name string) (*dataset.Frame, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("opening Excel file: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q has no rows", sheet)
	}

	headers := rows[0]
	for i, h := range headers {
		headers[i] = strings.TrimSpace(h)
	}

	return dataset.FromRows(headers, rows[1:]), nil
}
