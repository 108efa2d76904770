// Package tabular loads CSV and spreadsheet files into a simple
// header-plus-rows table for the answer handlers.
package tabular

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Table is a header row plus data rows. A header row is always assumed.
type Table struct {
	Header []string
	Rows   [][]string
}

// LoadCSV reads the CSV file at path. The first record is the header.
// Ragged rows are tolerated.
func LoadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open CSV: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read CSV: %w", err)
	}
	if len(records) == 0 {
		return &Table{}, nil
	}
	return &Table{Header: records[0], Rows: records[1:]}, nil
}

// LoadExcel reads the first sheet of the workbook at path. The first row is
// the header.
func LoadExcel(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return &Table{}, nil
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("get rows for sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return &Table{}, nil
	}
	return &Table{Header: rows[0], Rows: rows[1:]}, nil
}

// Column returns the index of the column with the exact given name.
func (t *Table) Column(name string) (int, bool) {
	for i, h := range t.Header {
		if strings.TrimSpace(h) == name {
			return i, true
		}
	}
	return 0, false
}

// First returns the first row's value in column idx, or the empty string
// when the table has no rows or the first row is short.
func (t *Table) First(idx int) string {
	if len(t.Rows) == 0 || idx >= len(t.Rows[0]) {
		return ""
	}
	return t.Rows[0][idx]
}

// Preview formats the header and up to maxRows data rows as tab-separated
// text, for inclusion in an LLM prompt.
func (t *Table) Preview(maxRows int) string {
	var b strings.Builder
	b.WriteString(strings.Join(t.Header, "\t"))
	for i, row := range t.Rows {
		if i >= maxRows {
			break
		}
		b.WriteByte('\n')
		b.WriteString(strings.Join(row, "\t"))
	}
	return b.String()
}
