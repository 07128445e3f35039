// Package remote provides an abstraction layer for the remote content store
// that published images live in.
//
// It exposes a Repository interface with three operations (Get, Create,
// Update) plus deterministic public URL derivation, and two backends:
//
//   - GitHub: files on a branch of a repository via the contents API. The
//     blob SHA is the revision marker required for updates. Public URLs are
//     derived raw.githubusercontent.com URLs unless a base URL is configured.
//   - S3: objects in an S3-compatible bucket via the MinIO client. The ETag
//     is reported as the revision marker, but S3 cannot enforce it on writes.
//
// # Repository Interface
//
// The Repository interface abstracts the underlying store, making it easy to
// mock remote interactions for unit testing (as seen in core/remote/mocks).
//
// # Usage
//
//	repo, err := remote.NewRepository(cfg)
//	obj, err := repo.Get(ctx, "images/post/cover.png")
package remote
