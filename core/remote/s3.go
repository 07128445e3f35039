package remote

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	miniocreds "github.com/minio/minio-go/v7/pkg/credentials"
)

// S3Repository publishes objects into an S3-compatible bucket. The object
// ETag serves as the revision marker. S3 offers no compare-and-swap, so
// Update cannot enforce the revision precondition and writes unconditionally.
type S3Repository struct {
	client  *minio.Client
	bucket  string
	baseURL string
	timeout time.Duration
}

// NewS3Repository creates a repository bound to the configured bucket.
func NewS3Repository(cfg Config) (*S3Repository, error) {
	// Minio expects endpoint without scheme
	endpoint := strings.TrimPrefix(cfg.Endpoint, "http://")
	endpoint = strings.TrimPrefix(endpoint, "https://")

	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	// Create custom transport with strict timeouts
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeoutDuration,
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:     miniocreds.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:    cfg.UseSSL,
		Region:    cfg.Region,
		Transport: transport,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	scheme := "http"
	if cfg.UseSSL {
		scheme = "https"
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = fmt.Sprintf("%s://%s/%s", scheme, endpoint, cfg.Bucket)
	}

	return &S3Repository{
		client:  client,
		bucket:  cfg.Bucket,
		baseURL: baseURL,
		timeout: timeoutDuration,
	}, nil
}

func (r *S3Repository) Get(ctx context.Context, path string) (*Object, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	obj, err := r.client.GetObject(ctx, r.bucket, path, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", path, err)
	}
	defer obj.Close()

	stat, err := obj.Stat()
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	content, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return &Object{Content: content, Revision: strings.Trim(stat.ETag, `"`)}, nil
}

func (r *S3Repository) Create(ctx context.Context, path string, content []byte, message string) error {
	return r.put(ctx, path, content)
}

func (r *S3Repository) Update(ctx context.Context, path string, content []byte, message, revision string) error {
	return r.put(ctx, path, content)
}

func (r *S3Repository) put(ctx context.Context, path string, content []byte) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	_, err := r.client.PutObject(ctx, r.bucket, path,
		bytes.NewReader(content), int64(len(content)),
		minio.PutObjectOptions{ContentType: http.DetectContentType(content)})
	if err != nil {
		return fmt.Errorf("failed to put %s: %w", path, err)
	}
	return nil
}

func (r *S3Repository) URL(path string) string {
	return strings.TrimSuffix(r.baseURL, "/") + "/" + path
}
