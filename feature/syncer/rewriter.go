package syncer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Rewriter processes a single document at a time: it extracts image embeds,
// classifies each reference, publishes the local ones and rewrites their
// text to the published URL.
type Rewriter struct {
	cfg    Config
	pub    *Publisher
	mirror *Mirror
	exts   map[string]struct{}
	dryRun bool
	log    *zap.Logger
}

// NewRewriter creates a rewriter. With dryRun set it classifies and reports
// references but performs no mirroring, publishing or file writes.
func NewRewriter(cfg Config, pub *Publisher, mirror *Mirror, dryRun bool, log *zap.Logger) *Rewriter {
	return &Rewriter{
		cfg:    cfg,
		pub:    pub,
		mirror: mirror,
		exts:   cfg.AllowedExtensions(),
		dryRun: dryRun,
		log:    log,
	}
}

// Process rewrites the document at path in place and reports whether its
// content changed. Reference-level problems are logged and skipped; only
// failures to load or save the document itself surface as errors.
func (r *Rewriter) Process(ctx context.Context, path string) (bool, error) {
	doc, err := LoadDocument(path)
	if err != nil {
		return false, err
	}

	refs := doc.References()
	log := r.log.With(zap.String("document", path))
	log.Info("Found image references", zap.Int("count", len(refs)))

	// Identical reference text is rewritten everywhere by one substitution
	// pass, so later occurrences must not be processed again: a second pass
	// would match the filename suffix of the URL just substituted.
	seen := make(map[string]struct{}, len(refs))

	for i, ref := range refs {
		log.Info("Processing reference",
			zap.Int("index", i+1),
			zap.Int("total", len(refs)),
			zap.String("reference", ref),
		)
		if _, ok := seen[ref]; ok {
			continue
		}
		seen[ref] = struct{}{}
		r.processReference(ctx, doc, ref, log)
	}

	if !doc.Dirty {
		log.Info("No references needed rewriting")
		return false, nil
	}
	if r.dryRun {
		log.Info("Dry-run: document rewrite suppressed")
		return true, nil
	}
	if err := doc.Save(r.cfg.WindowsPaths); err != nil {
		return false, err
	}
	log.Info("Document updated")
	return true, nil
}

// processReference handles one embed target. Every skip condition here is
// expected and informational, not an error.
func (r *Rewriter) processReference(ctx context.Context, doc *Document, ref string, log *zap.Logger) {
	if strings.HasPrefix(ref, "http") {
		log.Info("Skipping external reference", zap.String("reference", ref))
		return
	}

	resolved, err := r.resolve(doc, ref)
	if err != nil {
		log.Warn("Reference does not resolve to a local file",
			zap.String("reference", ref), zap.Error(err))
		return
	}

	ext := strings.ToLower(filepath.Ext(resolved))
	if _, ok := r.exts[ext]; !ok {
		log.Info("Skipping reference with disallowed extension",
			zap.String("reference", ref), zap.String("extension", ext))
		return
	}

	remotePath := fmt.Sprintf("%s/%s/%s", r.cfg.RemotePrefix, doc.FolderKey(), filepath.Base(resolved))

	if r.dryRun {
		log.Info("Dry-run: would publish image",
			zap.String("local_path", resolved), zap.String("remote_path", remotePath))
		return
	}

	if err := r.mirror.Save(resolved, doc.FolderKey(), filepath.Base(resolved)); err != nil {
		log.Warn("Failed to mirror image locally", zap.Error(err))
	}

	url, err := r.pub.Publish(ctx, resolved, remotePath)
	if err != nil {
		log.Warn("Publish failed, reference left unchanged",
			zap.String("reference", ref), zap.Error(err))
		return
	}

	doc.Rewrite(ref, url)
	log.Info("Rewrote reference", zap.String("reference", ref), zap.String("url", url))
}

// resolve maps a reference to an absolute path on disk. Relative references
// resolve against the document's own directory.
func (r *Rewriter) resolve(doc *Document, ref string) (string, error) {
	p := filepath.FromSlash(ref)
	if !filepath.IsAbs(p) {
		p = filepath.Join(filepath.Dir(doc.Path), p)
	}
	if _, err := os.Stat(p); err != nil {
		return "", err
	}
	return p, nil
}
