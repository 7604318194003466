package report

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/taechang-erp/webtest/pkg/models"
)

// Writer writes test reports to disk
type Writer struct {
	Path string
}

// NewWriter creates a new report writer
func NewWriter(path string) *Writer {
	return &Writer{
		Path: path,
	}
}

// SaveToFile saves the report as indented JSON, creating parent
// directories as needed
func (w *Writer) SaveToFile(report *models.Report) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}

	if dir := filepath.Dir(w.Path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	return os.WriteFile(w.Path, data, 0644)
}
