package remote

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadToken(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		expectErr string
		expect    string
	}{
		{
			name:    "valid credentials",
			content: `{"github_token": "ghp_secret"}`,
			expect:  "ghp_secret",
		},
		{
			name:      "missing token field",
			content:   `{"other": "value"}`,
			expectErr: "missing the github_token field",
		},
		{
			name:      "invalid JSON",
			content:   `not json`,
			expectErr: "not valid JSON",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "credentials.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))

			token, err := Config{TokenFile: path}.LoadToken()
			if tt.expectErr != "" {
				assert.ErrorContains(t, err, tt.expectErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expect, token)
		})
	}
}

func TestLoadToken_MissingFile(t *testing.T) {
	_, err := Config{TokenFile: filepath.Join(t.TempDir(), "nope.json")}.LoadToken()
	assert.ErrorContains(t, err, "cannot read credentials file")
}

func TestGitHubRepository_URL(t *testing.T) {
	cfg := Config{Owner: "alice", Repo: "blog", Branch: "images"}

	repo := NewGitHubRepository(cfg, "token")
	assert.Equal(t,
		"https://raw.githubusercontent.com/alice/blog/images/images/post/pic.png",
		repo.URL("images/post/pic.png"),
	)
}

func TestGitHubRepository_URL_BaseOverride(t *testing.T) {
	cfg := Config{Owner: "alice", Repo: "blog", Branch: "images", BaseURL: "https://cdn.example.com/"}

	repo := NewGitHubRepository(cfg, "token")
	assert.Equal(t, "https://cdn.example.com/images/post/pic.png", repo.URL("images/post/pic.png"))
}

func TestNewRepository_UnknownProvider(t *testing.T) {
	_, err := NewRepository(Config{Provider: "ftp"})
	assert.ErrorContains(t, err, "unknown remote provider")
}
