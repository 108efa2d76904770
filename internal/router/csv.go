package router

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hyperjump/kotae/internal/tabular"
	"go.uber.org/zap"
)

const (
	noCSVInZipAnswer        = "No CSV files found in the ZIP archive."
	noAnswerColumnAnswer    = "No 'answer' column found in the CSV."
	unsupportedFormatAnswer = "Unsupported file format."
)

// answerCSV answers questions about an attached CSV, spreadsheet, or ZIP
// containing one. ZIP contents are extracted to a scratch directory that is
// removed when handling completes.
func (r *Router) answerCSV(ctx context.Context, question, filePath string) string {
	path := filePath
	if tabular.IsZip(filePath) {
		scratch, err := os.MkdirTemp("", "kotae-zip-")
		if err != nil {
			return "Error processing CSV file: " + err.Error()
		}
		defer os.RemoveAll(scratch)
		if err := tabular.ExtractZip(filePath, scratch); err != nil {
			return "Error processing CSV file: " + err.Error()
		}
		path = tabular.FindTableFile(scratch)
		if path == "" {
			return noCSVInZipAnswer
		}
	}

	var tbl *tabular.Table
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		tbl, err = tabular.LoadCSV(path)
	case ".xlsx":
		tbl, err = tabular.LoadExcel(path)
	default:
		return unsupportedFormatAnswer
	}
	if err != nil {
		r.logger.Warn("table load failed", zap.String("path", path), zap.Error(err))
		return "Error processing CSV file: " + err.Error()
	}

	// "answer column" questions are answered from the table directly,
	// without the LLM: return the first row's value of the "answer" column.
	if strings.Contains(strings.ToLower(question), "answer column") {
		idx, ok := tbl.Column("answer")
		if !ok {
			return noAnswerColumnAnswer
		}
		return tbl.First(idx)
	}

	rows := r.cfg.CSVPreviewRows
	prompt := fmt.Sprintf("%s\n\nCSV content (first %d rows):\n%s", question, rows, tbl.Preview(rows))
	return r.llm.Answer(ctx, prompt)
}
