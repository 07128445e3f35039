package syncer

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"image-sync/core/remote"
	"image-sync/core/remote/mocks"
)

func writeImage(t *testing.T, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pic.png")
	require.NoError(t, os.WriteFile(path, content, 0o644))
	return path
}

func TestPublish_CreatesWhenAbsent(t *testing.T) {
	local := writeImage(t, []byte("image-bytes"))

	repo := new(mocks.Repository)
	repo.On("URL", "images/post/pic.png").Return("https://cdn.example.com/images/post/pic.png")
	repo.On("Get", mock.Anything, "images/post/pic.png").Return(nil, remote.ErrNotFound)
	repo.On("Create", mock.Anything, "images/post/pic.png", []byte("image-bytes"), "Add image: images/post/pic.png").Return(nil)

	pub := NewPublisher(repo, zap.NewNop())
	url, err := pub.Publish(context.Background(), local, "images/post/pic.png")

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/images/post/pic.png", url)
	repo.AssertExpectations(t)
}

func TestPublish_UpdatesWhenContentDiffers(t *testing.T) {
	local := writeImage(t, []byte("new-bytes"))

	repo := new(mocks.Repository)
	repo.On("URL", "images/post/pic.png").Return("https://cdn.example.com/images/post/pic.png")
	repo.On("Get", mock.Anything, "images/post/pic.png").
		Return(&remote.Object{Content: []byte("old-bytes"), Revision: "rev-1"}, nil)
	repo.On("Update", mock.Anything, "images/post/pic.png", []byte("new-bytes"), "Update image: images/post/pic.png", "rev-1").Return(nil)

	pub := NewPublisher(repo, zap.NewNop())
	url, err := pub.Publish(context.Background(), local, "images/post/pic.png")

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/images/post/pic.png", url)
	repo.AssertExpectations(t)
}

func TestPublish_NoWriteWhenContentIdentical(t *testing.T) {
	local := writeImage(t, []byte("image-bytes"))

	repo := new(mocks.Repository)
	repo.On("URL", "images/post/pic.png").Return("https://cdn.example.com/images/post/pic.png")
	repo.On("Get", mock.Anything, "images/post/pic.png").
		Return(&remote.Object{Content: []byte("image-bytes"), Revision: "rev-1"}, nil)

	pub := NewPublisher(repo, zap.NewNop())
	url, err := pub.Publish(context.Background(), local, "images/post/pic.png")

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/images/post/pic.png", url)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPublish_PublishTwiceIsIdempotent(t *testing.T) {
	local := writeImage(t, []byte("image-bytes"))

	repo := new(mocks.Repository)
	repo.On("URL", "images/post/pic.png").Return("https://cdn.example.com/images/post/pic.png")
	// First publish finds nothing; second finds the freshly created bytes.
	repo.On("Get", mock.Anything, "images/post/pic.png").Return(nil, remote.ErrNotFound).Once()
	repo.On("Create", mock.Anything, "images/post/pic.png", []byte("image-bytes"), mock.Anything).Return(nil).Once()
	repo.On("Get", mock.Anything, "images/post/pic.png").
		Return(&remote.Object{Content: []byte("image-bytes"), Revision: "rev-1"}, nil).Once()

	pub := NewPublisher(repo, zap.NewNop())

	first, err := pub.Publish(context.Background(), local, "images/post/pic.png")
	require.NoError(t, err)
	second, err := pub.Publish(context.Background(), local, "images/post/pic.png")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	repo.AssertNumberOfCalls(t, "Create", 1)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPublish_RemoteFailureSurfaces(t *testing.T) {
	local := writeImage(t, []byte("image-bytes"))

	repo := new(mocks.Repository)
	repo.On("URL", mock.Anything).Return("https://cdn.example.com/x")
	repo.On("Get", mock.Anything, mock.Anything).Return(nil, remote.ErrNotFound)
	repo.On("Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(assert.AnError)

	pub := NewPublisher(repo, zap.NewNop())
	_, err := pub.Publish(context.Background(), local, "images/post/pic.png")

	assert.Error(t, err)
}

func TestPublish_MissingLocalFile(t *testing.T) {
	repo := new(mocks.Repository)
	pub := NewPublisher(repo, zap.NewNop())

	_, err := pub.Publish(context.Background(), filepath.Join(t.TempDir(), "missing.png"), "images/post/missing.png")
	assert.Error(t, err)
	repo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}
