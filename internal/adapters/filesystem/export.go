package filesystem

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"folio/internal/domain"
	"folio/internal/ports"
)

// Exporter implements ports.ExportTarget by writing pretty-printed JSON
// files into an output directory. This is the whole write path: the
// operator moves the file into the site's data directory and redeploys.
type Exporter struct {
	outDir string
}

var _ ports.ExportTarget = (*Exporter)(nil)

// NewExporter creates an exporter writing into outDir.
func NewExporter(outDir string) *Exporter {
	return &Exporter{outDir: outDir}
}

// Persist serializes doc to indented JSON and writes it atomically under
// fileName, returning the written path. The document is a JSON-safe tree
// by construction, so a marshal failure is unexpected but still comes
// back as a plain error rather than a panic.
func (e *Exporter) Persist(doc domain.Document, fileName string) (string, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("serializing %s: %w", fileName, err)
	}
	data = append(data, '\n')

	if err := ensureDir(e.outDir); err != nil {
		return "", err
	}

	path := filepath.Join(e.outDir, fileName)
	if err := atomicWriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}

// atomicWriteFile writes to a temp file in the target directory and
// renames it into place, so a crash never leaves a half-written export.
func atomicWriteFile(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
