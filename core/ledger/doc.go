// Package ledger persists per-document content hashes between runs.
//
// The ledger is the change-detection gate of the sync engine: a document is
// reprocessed only when its current SHA-256 digest differs from the recorded
// one (or when it has never been recorded). Entries are written only after a
// document has been processed successfully, so a failed document is always
// retried on the next run.
//
// The on-disk format is a flat YAML map of absolute path to hex digest,
// chosen so the file stays human-inspectable. Loading a missing or corrupt
// ledger yields an empty one; persisting is best-effort. Both failure modes
// only cost redundant reprocessing, never data loss.
package ledger
