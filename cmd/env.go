package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ryan-rushton/omni/internal/catalog"
	"github.com/ryan-rushton/omni/internal/config"
	"github.com/ryan-rushton/omni/internal/history"
	"github.com/ryan-rushton/omni/internal/kvstore"
	"github.com/ryan-rushton/omni/internal/logging"
)

// env is everything a stateful command needs: config, logger, catalog and
// the recent-search history with its backing store.
type env struct {
	cfg       *config.Config
	logger    *slog.Logger
	logCloser io.Closer
	catalog   *catalog.Catalog
	store     kvstore.Store
	history   *history.Recent
}

func openEnv(cmd *cobra.Command) (*env, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if ephemeral, _ := cmd.Flags().GetBool("ephemeral"); ephemeral {
		cfg.History.Backend = kvstore.BackendMemory
	}

	logger, logCloser, err := logging.Open(cfg.Log)
	if err != nil {
		return nil, err
	}

	cat, err := catalog.Builtin()
	if err != nil {
		_ = logCloser.Close()
		return nil, fmt.Errorf("loading catalog: %w", err)
	}

	// Recent searches are a convenience; an unreadable store costs them for
	// this run but nothing else.
	store, err := kvstore.Open(cfg.History.Backend, cfg.History.Path)
	if err != nil {
		logger.Warn("history store unavailable, keeping recent searches in memory",
			"backend", cfg.History.Backend, "path", cfg.History.Path, "error", err)
		store = kvstore.NewMemory()
	}

	return &env{
		cfg:       cfg,
		logger:    logger,
		logCloser: logCloser,
		catalog:   cat,
		store:     store,
		history:   history.Open(store, logger),
	}, nil
}

func (e *env) Close() {
	if err := e.store.Close(); err != nil {
		e.logger.Warn("closing history store", "error", err)
	}
	_ = e.logCloser.Close()
}
