package ledger

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// hashChunkSize bounds memory while hashing large documents.
const hashChunkSize = 32 * 1024

// Ledger maps absolute document paths to the content hash recorded at the
// last successful processing. An entry exists iff the document was processed
// successfully at least once.
type Ledger struct {
	path    string
	entries map[string]string
	log     *zap.Logger
}

// Open loads the ledger persisted at path. A missing or unreadable ledger is
// not fatal: the run continues with an empty ledger and simply reprocesses
// every document.
func Open(path string, log *zap.Logger) *Ledger {
	l := &Ledger{
		path:    path,
		entries: make(map[string]string),
		log:     log,
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn("Failed to read ledger, starting empty", zap.String("path", path), zap.Error(err))
		}
		return l
	}

	if err := yaml.Unmarshal(data, &l.entries); err != nil {
		log.Warn("Ledger is corrupt, starting empty", zap.String("path", path), zap.Error(err))
		l.entries = make(map[string]string)
	}
	if l.entries == nil {
		l.entries = make(map[string]string)
	}
	return l
}

// IsModified reports whether the file at path has changed since it was last
// recorded. A file with no recorded hash counts as modified.
func (l *Ledger) IsModified(path string) (bool, error) {
	current, err := hashFile(path)
	if err != nil {
		return false, err
	}
	stored, ok := l.entries[path]
	return !ok || stored != current, nil
}

// Record stores the current content hash of the file at path, overwriting
// any previous entry.
func (l *Ledger) Record(path string) error {
	hash, err := hashFile(path)
	if err != nil {
		return err
	}
	l.entries[path] = hash
	return nil
}

// Len returns the number of recorded documents.
func (l *Ledger) Len() int {
	return len(l.entries)
}

// Persist writes the full mapping back to the ledger file as YAML. The
// parent directory is created if needed.
func (l *Ledger) Persist() error {
	data, err := yaml.Marshal(l.entries)
	if err != nil {
		return fmt.Errorf("failed to encode ledger: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return fmt.Errorf("failed to create ledger directory: %w", err)
	}
	if err := os.WriteFile(l.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write ledger %s: %w", l.path, err)
	}
	return nil
}

// hashFile computes the SHA-256 digest of the file contents, reading in
// fixed-size chunks.
func hashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open %s for hashing: %w", path, err)
	}
	defer f.Close()

	hasher := sha256.New()
	if _, err := io.CopyBuffer(hasher, f, make([]byte, hashChunkSize)); err != nil {
		return "", fmt.Errorf("failed to hash %s: %w", path, err)
	}
	return hex.EncodeToString(hasher.Sum(nil)), nil
}
