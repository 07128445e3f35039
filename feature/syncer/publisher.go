package syncer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"image-sync/core/remote"
)

// Publisher ensures the remote store holds byte-identical content at a
// logical path, creating or updating as needed.
type Publisher struct {
	repo remote.Repository
	log  *zap.Logger
}

// NewPublisher creates a publisher backed by the given repository.
func NewPublisher(repo remote.Repository, log *zap.Logger) *Publisher {
	return &Publisher{repo: repo, log: log}
}

// Publish makes sure the remote object at remotePath holds the bytes of the
// file at localPath and returns its public URL. When the remote content is
// already identical no write is issued. The URL is derived from
// configuration alone, so it is valid even when nothing was written.
func (p *Publisher) Publish(ctx context.Context, localPath, remotePath string) (string, error) {
	content, err := os.ReadFile(localPath)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", localPath, err)
	}

	url := p.repo.URL(remotePath)

	existing, err := p.repo.Get(ctx, remotePath)
	switch {
	case err == nil && bytes.Equal(existing.Content, content):
		p.log.Info("Remote image already in sync, skipping upload", zap.String("remote_path", remotePath))
		return url, nil

	case err == nil:
		if err := p.repo.Update(ctx, remotePath, content, "Update image: "+remotePath, existing.Revision); err != nil {
			return "", err
		}
		p.log.Info("Updated remote image", zap.String("remote_path", remotePath))
		return url, nil

	case errors.Is(err, remote.ErrNotFound):
		if err := p.repo.Create(ctx, remotePath, content, "Add image: "+remotePath); err != nil {
			return "", err
		}
		p.log.Info("Uploaded remote image", zap.String("remote_path", remotePath))
		return url, nil

	default:
		return "", fmt.Errorf("failed to check remote object %s: %w", remotePath, err)
	}
}
