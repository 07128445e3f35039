package syncer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Config holds configuration for the document sync run.
type Config struct {
	// PostsDir is the root directory scanned for markdown documents. Required.
	PostsDir string `mapstructure:"posts_dir" default:""`
	// Extensions is the comma-separated whitelist of image file extensions.
	Extensions string `mapstructure:"extensions" default:".jpg,.jpeg,.png,.gif,.bmp,.webp"`
	// LedgerPath is the location of the hash ledger file.
	// Defaults to ~/.image-sync/ledger.yaml.
	LedgerPath string `mapstructure:"ledger_path" default:""`
	// MirrorDir is the local backup directory for published images.
	// Defaults to an images/ directory next to PostsDir.
	MirrorDir string `mapstructure:"mirror_dir" default:""`
	// RemotePrefix is the namespace images are published under.
	RemotePrefix string `mapstructure:"remote_prefix" default:"images"`
	// WindowsPaths rewrites embed targets back to backslash separators when
	// documents are saved. Matching always happens on forward slashes.
	WindowsPaths bool `mapstructure:"windows_paths" default:"false"`
}

// Validate checks the settings that must be present before a run can start.
func (c Config) Validate() error {
	if c.PostsDir == "" {
		return fmt.Errorf("sync.posts_dir must be configured")
	}
	return nil
}

// AllowedExtensions parses the extension whitelist into a lookup set with
// lowercased, dot-prefixed keys.
func (c Config) AllowedExtensions() map[string]struct{} {
	set := make(map[string]struct{})
	for _, ext := range strings.Split(c.Extensions, ",") {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		set[ext] = struct{}{}
	}
	return set
}

// ResolvedLedgerPath returns the configured ledger location, or the per-user
// default when unset.
func (c Config) ResolvedLedgerPath() (string, error) {
	if c.LedgerPath != "" {
		return c.LedgerPath, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot resolve home directory: %w", err)
	}
	return filepath.Join(home, ".image-sync", "ledger.yaml"), nil
}

// ResolvedMirrorDir returns the configured mirror directory, or the default
// images/ directory alongside the posts root.
func (c Config) ResolvedMirrorDir() string {
	if c.MirrorDir != "" {
		return c.MirrorDir
	}
	return filepath.Join(filepath.Dir(filepath.Clean(c.PostsDir)), "images")
}
