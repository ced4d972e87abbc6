package source

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/evscope-org/evscope/dataset"
)

// ============================================================================
// CSV SOURCE — Frames from CSV files
// ============================================================================

// CSVSource loads datasets from CSV files. With a directory root,
// dataset names resolve to "<root>/<name>.csv"; with a file path, the
// name is ignored and the file is always returned.
type CSVSource struct {
	path  string
	isDir bool
}

// CSVFile creates a source backed by a single CSV file.
func CSVFile(path string) *CSVSource {
	return &CSVSource{path: path}
}

// CSVDir creates a source resolving dataset names inside a directory.
func CSVDir(root string) *CSVSource {
	return &CSVSource{path: root, isDir: true}
}

// GetTable reads and parses the CSV for the named dataset.
func (s *CSVSource) GetTable(ctx context.Context, name string) (*dataset.Frame, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := s.path
	if s.isDir {
		path = filepath.Join(s.path, name+".csv")
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset file: %w", err)
	}
	defer f.Close()

	return ParseCSV(f)
}

// ParseCSV reads a header row plus data rows into an all-text frame.
// Headers are trimmed; malformed rows with the wrong field count are
// skipped rather than failing the load.
func ParseCSV(r io.Reader) (*dataset.Frame, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV headers: %w", err)
	}
	for i, h := range headers {
		headers[i] = strings.TrimSpace(h)
	}

	var rows [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue // skip malformed rows
		}
		rows = append(rows, row)
	}

	return dataset.FromRows(headers, rows), nil
}
