package tabular

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// zipSignature is the local file header magic of a ZIP archive.
var zipSignature = []byte{'P', 'K', 0x03, 0x04}

// IsZip reports whether the file at path is a ZIP archive, by extension or
// by signature. Uploads lose their original name, so the signature check
// matters for files saved without a .zip extension.
func IsZip(path string) bool {
	if strings.EqualFold(filepath.Ext(path), ".zip") {
		return true
	}
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()
	sig := make([]byte, 4)
	if _, err := io.ReadFull(f, sig); err != nil {
		return false
	}
	return bytes.Equal(sig, zipSignature)
}

// ExtractZip extracts all entries of the archive at src into destDir.
// Entries that would escape destDir are rejected.
func ExtractZip(src, destDir string) error {
	zr, err := zip.OpenReader(src)
	if err != nil {
		return fmt.Errorf("open archive: %w", err)
	}
	defer zr.Close()

	for _, f := range zr.File {
		target := filepath.Join(destDir, filepath.Clean(f.Name))
		if !strings.HasPrefix(target, filepath.Clean(destDir)+string(os.PathSeparator)) {
			return fmt.Errorf("archive entry %q escapes extraction directory", f.Name)
		}
		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0o755); err != nil {
				return fmt.Errorf("create directory %q: %w", f.Name, err)
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return fmt.Errorf("create directory for %q: %w", f.Name, err)
		}
		if err := extractZipEntry(f, target); err != nil {
			return err
		}
	}
	return nil
}

func extractZipEntry(f *zip.File, target string) error {
	rc, err := f.Open()
	if err != nil {
		return fmt.Errorf("open entry %q: %w", f.Name, err)
	}
	defer rc.Close()

	out, err := os.Create(target)
	if err != nil {
		return fmt.Errorf("create %q: %w", target, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, rc); err != nil {
		return fmt.Errorf("write %q: %w", target, err)
	}
	return nil
}

// FindTableFile walks root recursively and returns the first file ending in
// .csv in traversal order, falling back to the first .xlsx. Returns the
// empty string when neither is present.
func FindTableFile(root string) string {
	var firstExcel string
	var firstCSV string
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".csv":
			if firstCSV == "" {
				firstCSV = path
			}
			return filepath.SkipAll
		case ".xlsx":
			if firstExcel == "" {
				firstExcel = path
			}
		}
		return nil
	})
	if firstCSV != "" {
		return firstCSV
	}
	return firstExcel
}
