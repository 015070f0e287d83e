package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/archiveinsight/backend/config"
	"github.com/archiveinsight/backend/internal/infrastructure/archive"
	"github.com/archiveinsight/backend/internal/infrastructure/cache"
	"github.com/archiveinsight/backend/internal/infrastructure/extraction"
	"github.com/archiveinsight/backend/internal/usecase"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "dupcheck",
	Short: "Check project submissions against the archive",
	Long: `dupcheck compares a project write-up with every archived project and
reports whether it duplicates an existing submission.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default searches ./config.yaml)")
}

// Execute runs the root command. Reports go to stdout so they can be piped.
func Execute() error {
	rootCmd.SetOut(os.Stdout)
	return rootCmd.Execute()
}

// services are the dependencies one command invocation works with
type services struct {
	analyzer *usecase.AnalysisService
	store    archive.Store
	cache    cache.Store
}

func (s *services) Close() {
	if s.cache != nil {
		_ = s.cache.Close()
	}
	if s.store != nil {
		_ = s.store.Close()
	}
}

// newServices builds the analysis stack from the --config file and environment
func newServices(ctx context.Context) (*services, error) {
	cfg, err := config.LoadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}

	policy, err := usecase.ParseGatingPolicy(cfg.Analysis.GatingPolicy)
	if err != nil {
		return nil, err
	}

	store, err := archive.Open(ctx, cfg.Archive.Type, cfg.Archive.SQLitePath)
	if err != nil {
		return nil, fmt.Errorf("opening archive: %w", err)
	}

	reportCache, err := cache.Open(ctx, cfg.Cache.Type, cfg.Cache.RedisURL)
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("opening cache: %w", err)
	}

	analyzer := usecase.NewAnalysisService(
		store,
		extraction.NewExtractor(extraction.Config{EnableDebugLogging: cfg.Analysis.EnableDebugLogging}),
		reportCache,
		usecase.AnalysisServiceConfig{
			CacheTTL:           cfg.Cache.TTL,
			Policy:             policy,
			AllowedExtensions:  cfg.Upload.AllowedExtensions,
			ExtraTechSynonyms:  cfg.Analysis.TechSynonyms,
			EnableDebugLogging: cfg.Analysis.EnableDebugLogging,
		},
	)

	return &services{analyzer: analyzer, store: store, cache: reportCache}, nil
}
