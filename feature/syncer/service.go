package syncer

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"image-sync/core/ledger"
)

// Summary reports the outcome of a run.
type Summary struct {
	// Total is the number of documents found under the posts root.
	Total int
	// Processed is the number of documents processed successfully this run.
	Processed int
	// Skipped is the number of documents already up to date.
	Skipped int
	// Failed is the number of documents that errored and will be retried
	// next run.
	Failed int
}

// Service orchestrates a sync run: it enumerates documents, applies the
// ledger gate, drives the rewriter per document and records successes.
type Service struct {
	cfg      Config
	ledger   *ledger.Ledger
	rewriter *Rewriter
	dryRun   bool
	log      *zap.Logger
}

// NewService wires the orchestrator.
func NewService(cfg Config, led *ledger.Ledger, rewriter *Rewriter, dryRun bool, log *zap.Logger) *Service {
	return &Service{
		cfg:      cfg,
		ledger:   led,
		rewriter: rewriter,
		dryRun:   dryRun,
		log:      log,
	}
}

// Run processes every markdown document under the posts root once.
// A failure to enumerate the root is fatal; a failure on one document is
// logged and leaves its ledger entry stale so it is retried next run.
func (s *Service) Run(ctx context.Context) (*Summary, error) {
	docs, err := s.listDocuments()
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate documents under %s: %w", s.cfg.PostsDir, err)
	}

	s.log.Info("Found documents", zap.Int("count", len(docs)))
	summary := &Summary{Total: len(docs)}

	for i, path := range docs {
		log := s.log.With(zap.String("document", path))
		log.Info("Considering document", zap.Int("index", i+1), zap.Int("total", len(docs)))

		modified, err := s.ledger.IsModified(path)
		if err != nil {
			log.Error("Failed to hash document", zap.Error(err))
			summary.Failed++
			continue
		}
		if !modified {
			log.Info("Document unchanged since last run, skipping")
			summary.Skipped++
			continue
		}

		if _, err := s.rewriter.Process(ctx, path); err != nil {
			log.Error("Failed to process document", zap.Error(err))
			summary.Failed++
			continue
		}

		if !s.dryRun {
			if err := s.ledger.Record(path); err != nil {
				log.Error("Failed to record document hash", zap.Error(err))
				summary.Failed++
				continue
			}
		}
		summary.Processed++
	}

	if !s.dryRun {
		if err := s.ledger.Persist(); err != nil {
			// Only costs redundant reprocessing next run.
			s.log.Warn("Failed to persist ledger", zap.Error(err))
		}
	}

	s.log.Info("Sync complete",
		zap.Int("processed", summary.Processed),
		zap.Int("skipped", summary.Skipped),
		zap.Int("failed", summary.Failed),
		zap.Int("total", summary.Total),
	)
	return summary, nil
}

// listDocuments walks the posts root and returns all markdown files in walk
// order.
func (s *Service) listDocuments() ([]string, error) {
	var docs []string
	err := filepath.WalkDir(s.cfg.PostsDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(strings.ToLower(d.Name()), ".md") {
			docs = append(docs, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return docs, nil
}
