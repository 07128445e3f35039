package remote

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotFound is returned by Get when no object exists at the requested path.
var ErrNotFound = errors.New("remote: object not found")

// Object is the content stored at a logical path, together with the opaque
// revision marker required to authorize an update of that path.
type Object struct {
	Content  []byte
	Revision string
}

// Repository defines the operations consumed from the remote content store.
// Implementations are bound to a single repository/bucket and branch, fixed
// at construction time.
type Repository interface {
	// Get fetches the object at path, or ErrNotFound if it does not exist.
	Get(ctx context.Context, path string) (*Object, error)
	// Create stores a new object at path. It fails if the path already exists.
	Create(ctx context.Context, path string, content []byte, message string) error
	// Update replaces the object at path. The revision marker must match the
	// object's current revision.
	Update(ctx context.Context, path string, content []byte, message, revision string) error
	// URL returns the public URL for path. It is derived from configuration
	// alone and never depends on a remote response.
	URL(path string) string
}

// NewRepository creates a Repository for the configured provider.
func NewRepository(cfg Config) (Repository, error) {
	switch cfg.Provider {
	case "github":
		token, err := cfg.LoadToken()
		if err != nil {
			return nil, fmt.Errorf("failed to load remote credentials: %w", err)
		}
		return NewGitHubRepository(cfg, token), nil
	case "s3":
		return NewS3Repository(cfg)
	default:
		return nil, fmt.Errorf("unknown remote provider %q", cfg.Provider)
	}
}
