package syncer

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Mirror keeps a best-effort local backup copy of every published image,
// grouped per document. It is a convenience archive: callers log its errors
// and carry on, publication never depends on it.
type Mirror struct {
	dir string
	log *zap.Logger
}

// NewMirror creates a mirror rooted at dir.
func NewMirror(dir string, log *zap.Logger) *Mirror {
	return &Mirror{dir: dir, log: log}
}

// Save copies the file at sourcePath into the mirror under
// <dir>/<folderKey>/<filename>. An existing byte-identical copy is left
// untouched to avoid needless writes.
func (m *Mirror) Save(sourcePath, folderKey, filename string) error {
	destDir := filepath.Join(m.dir, folderKey)
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return fmt.Errorf("failed to create mirror directory %s: %w", destDir, err)
	}

	source, err := os.ReadFile(sourcePath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", sourcePath, err)
	}

	dest := filepath.Join(destDir, filename)
	if existing, err := os.ReadFile(dest); err == nil && bytes.Equal(existing, source) {
		return nil
	}

	if err := os.WriteFile(dest, source, 0o644); err != nil {
		return fmt.Errorf("failed to write mirror copy %s: %w", dest, err)
	}
	m.log.Debug("Mirrored image locally", zap.String("path", dest))
	return nil
}
