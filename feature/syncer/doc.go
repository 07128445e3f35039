// Package syncer implements the change-detection and idempotent-sync engine
// that publishes local images referenced by markdown documents.
//
// # Pipeline
//
// The Service enumerates documents under the posts root and gates each one
// on the hash ledger: a document whose content hash matches the recorded
// value is never parsed again. Dirty documents go through the Rewriter,
// which extracts image embeds, resolves each target against the document's
// directory, mirrors the file locally (best effort) and hands it to the
// Publisher. The Publisher performs at-most-once, content-addressed
// publication: identical remote bytes mean no write at all, differing bytes
// an update keyed on the fetched revision marker, a missing object a create.
// Successful publications rewrite the reference text to the public URL; the
// document is written back only when at least one reference changed.
//
// # Failure policy
//
// Errors follow an attempt-log-continue policy at three boundaries: a bad
// reference skips that reference, a bad document skips that document (and
// leaves its ledger entry stale so it is retried), and only configuration or
// enumeration failures abort the run.
package syncer
