package cmd

import (
	"context"
	"fmt"

	"image-sync/core/config"
	"image-sync/core/ledger"
	"image-sync/core/logger"
	"image-sync/core/remote"
	"image-sync/feature/syncer"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var dryRun bool

// syncCmd performs one batch synchronization run and exits.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Publish referenced images and rewrite documents (one-shot run)",
	Long: `Scan the configured posts directory for markdown documents, publish every
local image they reference to the remote store and rewrite the references to
the published URLs.

Documents whose content hash is unchanged since the last successful run are
skipped. A per-document failure is logged and retried on the next run; only
configuration and enumeration errors abort the run.

Examples:
  # Full run
  image-sync sync

  # Report what would be published without touching anything
  image-sync sync --dry-run`,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Classify and report references without publishing or writing")

	RootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Sync.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Initialize logger
	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	l = logger.WithRunID(l)
	defer func() { _ = l.Sync() }()

	l.Info("Starting image sync",
		zap.String("posts_dir", cfg.Sync.PostsDir),
		zap.String("provider", cfg.Remote.Provider),
		zap.Bool("dry_run", dryRun),
	)

	// Connect to the remote content store
	repo, err := remote.NewRepository(cfg.Remote)
	if err != nil {
		return fmt.Errorf("failed to connect to remote store: %w", err)
	}

	// Open the hash ledger
	ledgerPath, err := cfg.Sync.ResolvedLedgerPath()
	if err != nil {
		return fmt.Errorf("failed to resolve ledger path: %w", err)
	}
	led := ledger.Open(ledgerPath, l)
	l.Info("Ledger loaded", zap.String("path", ledgerPath), zap.Int("entries", led.Len()))

	// Wire the sync pipeline
	pub := syncer.NewPublisher(repo, l)
	mirror := syncer.NewMirror(cfg.Sync.ResolvedMirrorDir(), l)
	rewriter := syncer.NewRewriter(cfg.Sync, pub, mirror, dryRun, l)
	service := syncer.NewService(cfg.Sync, led, rewriter, dryRun, l)

	summary, err := service.Run(ctx)
	if err != nil {
		return err
	}

	l.Info("Run finished",
		zap.Int("processed", summary.Processed),
		zap.Int("total", summary.Total),
	)
	return nil
}
