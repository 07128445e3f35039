package remote

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config holds configuration for the remote content store.
type Config struct {
	// Provider selects the store backend (github or s3).
	Provider string `mapstructure:"provider" default:"github"`
	// Owner is the repository owner (github provider).
	Owner string `mapstructure:"owner" default:""`
	// Repo is the repository name (github provider).
	Repo string `mapstructure:"repo" default:""`
	// Branch is the branch objects are published to (github provider).
	Branch string `mapstructure:"branch" default:"images"`
	// TokenFile is the path of the JSON credentials file. It must live
	// outside the synced tree; defaults to ~/.image-sync/credentials.json.
	TokenFile string `mapstructure:"token_file" default:""`
	// BaseURL overrides the derived public URL prefix. Trailing slash optional.
	BaseURL string `mapstructure:"base_url" default:""`
	// TimeoutSeconds bounds every remote call.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`

	// Endpoint is the URL of the storage service (s3 provider).
	Endpoint string `mapstructure:"endpoint" default:"localhost:9000"`
	// AccessKey is the access key ID for authentication (s3 provider).
	AccessKey string `mapstructure:"access_key" default:""`
	// SecretKey is the secret access key for authentication (s3 provider).
	SecretKey string `mapstructure:"secret_key" default:""`
	// UseSSL indicates whether to use SSL/TLS for connections (s3 provider).
	UseSSL bool `mapstructure:"use_ssl" default:"false"`
	// Bucket is the name of the bucket to publish into (s3 provider).
	Bucket string `mapstructure:"bucket" default:"images"`
	// Region is the location of the bucket (e.g., us-east-1).
	Region string `mapstructure:"region" default:""`
}

// credentials is the shape of the token file.
type credentials struct {
	GitHubToken string `json:"github_token"`
}

// LoadToken reads the access token from the user-scoped credentials file.
// The token is never stored in the main configuration or the environment of
// the synced tree.
func (c Config) LoadToken() (string, error) {
	path := c.TokenFile
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot resolve home directory: %w", err)
		}
		path = filepath.Join(home, ".image-sync", "credentials.json")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("cannot read credentials file %s: %w", path, err)
	}

	var creds credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return "", fmt.Errorf("credentials file %s is not valid JSON: %w", path, err)
	}
	if creds.GitHubToken == "" {
		return "", fmt.Errorf("credentials file %s is missing the github_token field", path)
	}
	return creds.GitHubToken, nil
}
