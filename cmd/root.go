package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/c14220110/caregiver-backend/config"
	"github.com/c14220110/caregiver-backend/pkg/logger"
	"github.com/c14220110/caregiver-backend/pkg/storage"
	"github.com/c14220110/caregiver-backend/pkg/storage/docstore"
)

// NewRootCmd: tanpa subcommand sama dengan "serve".
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "caregiver-backend",
		Short:         "Backend shift handover untuk caregiver dan keluarga pasien",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runServe,
	}
	root.PersistentFlags().String("log-level", "", "override LOG_LEVEL (debug, info, warn, error)")
	root.AddCommand(newServeCmd(), newSeedCmd())
	return root
}

// Execute dipanggil dari main.
func Execute() error {
	return NewRootCmd().Execute()
}

// bootstrap memuat config, logger, dan store yang dipakai semua subcommand.
func bootstrap(cmd *cobra.Command) (*config.Config, *slog.Logger, docstore.Store, io.Closer, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, nil, err
	}
	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		cfg.LogLevel = lvl
	}

	log, err := logger.New(logger.Config{Level: cfg.LogLevel, Environment: cfg.AppEnv, File: cfg.LogFile})
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("logger: %w", err)
	}

	store, closer, err := storage.Open(cmd.Context(), cfg, log)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("store: %w", err)
	}
	return cfg, log, store, closer, nil
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
