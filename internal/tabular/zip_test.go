package tabular

import (
	"archive/zip"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeZip(t *testing.T, dir, name string, entries map[string]string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	zw := zip.NewWriter(f)
	for entry, content := range entries {
		w, err := zw.Create(entry)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatal(err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestIsZip(t *testing.T) {
	dir := t.TempDir()
	byExt := writeZip(t, dir, "archive.zip", map[string]string{"a.txt": "x"})
	if !IsZip(byExt) {
		t.Error("zip extension should be detected")
	}

	// Uploads are stored without the original name; detection must work on
	// signature alone.
	bySig := writeZip(t, dir, "upload.bin", map[string]string{"a.txt": "x"})
	if !IsZip(bySig) {
		t.Error("zip signature should be detected")
	}

	plain := writeCSV(t, dir, "plain.csv", "a,b\n1,2\n")
	if IsZip(plain) {
		t.Error("csv should not be detected as zip")
	}
}

func TestExtractZipAndFindTableFile(t *testing.T) {
	dir := t.TempDir()
	src := writeZip(t, dir, "data.zip", map[string]string{
		"readme.txt":        "notes",
		"nested/inner.csv":  "id,answer\n1,42\n",
		"nested/other.xlsx": "not really a workbook",
	})

	dest := t.TempDir()
	if err := ExtractZip(src, dest); err != nil {
		t.Fatal(err)
	}
	found := FindTableFile(dest)
	if found == "" || !strings.HasSuffix(found, "inner.csv") {
		t.Errorf("FindTableFile: got %q", found)
	}
	tbl, err := LoadCSV(found)
	if err != nil {
		t.Fatal(err)
	}
	if tbl.Rows[0][1] != "42" {
		t.Errorf("rows: %v", tbl.Rows)
	}
}

func TestFindTableFile_preferCSVOverExcel(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.xlsx"), []byte("x"), 0600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "z.csv"), []byte("a\n1\n"), 0600); err != nil {
		t.Fatal(err)
	}
	if got := FindTableFile(dir); !strings.HasSuffix(got, "z.csv") {
		t.Errorf("got %q", got)
	}
}

func TestFindTableFile_none(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0600); err != nil {
		t.Fatal(err)
	}
	if got := FindTableFile(dir); got != "" {
		t.Errorf("got %q, want empty", got)
	}
}

func TestExtractZip_rejectsEscapingEntry(t *testing.T) {
	dir := t.TempDir()
	src := writeZip(t, dir, "evil.zip", map[string]string{"../escape.txt": "x"})
	if err := ExtractZip(src, t.TempDir()); err == nil {
		t.Error("expected error for entry escaping extraction directory")
	}
}
