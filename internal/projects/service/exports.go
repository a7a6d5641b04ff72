package service

import (
	"fmt"
	"os"
	"path/filepath"
)

// ============================================================
// Export Storage
// ============================================================

// ExportStorage lays out exported files as <root>/<projectID>/...
type ExportStorage struct {
	root string
}

func NewExportStorage(root string) *ExportStorage {
	return &ExportStorage{root: root}
}

func (s *ExportStorage) ProjectDir(projectID string) string {
	return filepath.Join(s.root, projectID)
}

func (s *ExportStorage) CutListPath(projectID string) string {
	return filepath.Join(s.ProjectDir(projectID), "cutlist.csv")
}

func (s *ExportStorage) ElevationPath(projectID, cabinetID string) string {
	return filepath.Join(s.ProjectDir(projectID), "elevations", cabinetID+".svg")
}

// SaveFile пишет файл, создавая недостающие директории.
func (s *ExportStorage) SaveFile(target string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", filepath.Dir(target), err)
	}
	if err := os.WriteFile(target, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", target, err)
	}
	return nil
}
