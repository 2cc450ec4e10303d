package cli

// This file turns resolved CLI settings into an errstore.Store by loading
// and merging the configured catalogs.

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"errstore/internal/catalog"
	"errstore/internal/config"
	"errstore/pkg/errstore"
)

// StoreFlags are the flags shared by every command reading catalogs.
type StoreFlags struct {
	Catalogs  []string
	Format    string
	Overwrite bool

	// Strict ignores overwrite from every source.
	Strict bool
}

func (f *StoreFlags) bind(cmd *cobra.Command, withFormat bool) {
	cmd.Flags().StringArrayVar(&f.Catalogs, "catalog", nil, "Catalog file to load (repeatable; env ERRSTORE_CATALOGS)")
	cmd.Flags().BoolVar(&f.Overwrite, "overwrite", false, "Let later catalogs overwrite colliding codes instead of failing")
	if withFormat {
		cmd.Flags().StringVarP(&f.Format, "format", "o", "", "Output format: json or yaml (env ERRSTORE_FORMAT)")
	}
}

// StoreLoader builds stores from catalogs.
type StoreLoader struct {
	logger *zap.Logger
}

// NewStoreLoader returns a loader whose catalogs log "log: true" entries
// through logger.
func NewStoreLoader(logger *zap.Logger) *StoreLoader {
	return &StoreLoader{logger: logger}
}

// Load resolves the effective config and builds the merged store.
func (l *StoreLoader) Load(flags StoreFlags) (*errstore.Store, *config.Config, error) {
	cfg, err := config.Resolve(&config.Config{
		Catalogs:  flags.Catalogs,
		Format:    flags.Format,
		Overwrite: flags.Overwrite,
	})
	if err != nil {
		wrapped := wrapWithSentinel(ErrResolveConfigFailed, err, fmt.Sprintf("failed to resolve config: %v", err))
		logStructuredError(l.logger, wrapped, "Failed to resolve config")
		return nil, nil, wrapped
	}
	if flags.Strict {
		cfg.Overwrite = false
	}
	if len(cfg.Catalogs) == 0 {
		err := newWithSentinel(ErrCatalogRequired, "at least one catalog is required (flag --catalog, env ERRSTORE_CATALOGS, or config file)")
		logStructuredError(l.logger, err, "Catalog required")
		return nil, nil, err
	}

	l.logger.Debug("Loading catalogs", zap.Strings("catalogs", cfg.Catalogs), zap.Bool("overwrite", cfg.Overwrite))
	store, err := catalog.Build(cfg.Catalogs, cfg.Overwrite, catalog.WithLogger(errstore.NewZapLogger(l.logger)))
	if err != nil {
		wrapped := wrapWithSentinelAndContext(ErrBuildStoreFailed, err,
			fmt.Sprintf("failed to build error store: %v", err),
			map[string]any{"catalogs": cfg.Catalogs})
		logStructuredError(l.logger, wrapped, "Failed to build error store")
		return nil, nil, wrapped
	}
	return store, cfg, nil
}
