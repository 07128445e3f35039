package remote

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/go-github/v66/github"
)

// GitHubRepository publishes objects as files on a branch of a GitHub
// repository using the contents API. The blob SHA reported by the API serves
// as the revision marker.
type GitHubRepository struct {
	client  *github.Client
	owner   string
	repo    string
	branch  string
	baseURL string
	timeout time.Duration
}

// NewGitHubRepository creates a repository bound to the configured
// owner/repo/branch, authenticated with the given token.
func NewGitHubRepository(cfg Config, token string) *GitHubRepository {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}

	return &GitHubRepository{
		client:  github.NewClient(nil).WithAuthToken(token),
		owner:   cfg.Owner,
		repo:    cfg.Repo,
		branch:  cfg.Branch,
		baseURL: cfg.BaseURL,
		timeout: time.Duration(timeout) * time.Second,
	}
}

func (r *GitHubRepository) Get(ctx context.Context, path string) (*Object, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	fc, _, resp, err := r.client.Repositories.GetContents(ctx, r.owner, r.repo, path,
		&github.RepositoryContentGetOptions{Ref: r.branch})
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch %s: %w", path, err)
	}
	if fc == nil {
		// Path resolved to a directory listing.
		return nil, ErrNotFound
	}

	content, err := fc.GetContent()
	if err != nil {
		return nil, fmt.Errorf("failed to decode content of %s: %w", path, err)
	}

	return &Object{Content: []byte(content), Revision: fc.GetSHA()}, nil
}

func (r *GitHubRepository) Create(ctx context.Context, path string, content []byte, message string) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	_, _, err := r.client.Repositories.CreateFile(ctx, r.owner, r.repo, path,
		&github.RepositoryContentFileOptions{
			Message: github.String(message),
			Content: content,
			Branch:  github.String(r.branch),
		})
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	return nil
}

func (r *GitHubRepository) Update(ctx context.Context, path string, content []byte, message, revision string) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	_, _, err := r.client.Repositories.UpdateFile(ctx, r.owner, r.repo, path,
		&github.RepositoryContentFileOptions{
			Message: github.String(message),
			Content: content,
			SHA:     github.String(revision),
			Branch:  github.String(r.branch),
		})
	if err != nil {
		return fmt.Errorf("failed to update %s: %w", path, err)
	}
	return nil
}

func (r *GitHubRepository) URL(path string) string {
	if r.baseURL != "" {
		return strings.TrimSuffix(r.baseURL, "/") + "/" + path
	}
	return fmt.Sprintf("https://raw.githubusercontent.com/%s/%s/%s/%s", r.owner, r.repo, r.branch, path)
}
