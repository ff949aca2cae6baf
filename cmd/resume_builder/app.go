package main

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/openresume/resume-builder/internal/config"
	"github.com/openresume/resume-builder/internal/storage"
)

// app bundles the resolved configuration with the wired storage adapter, so
// every subcommand sets up the same way.
type app struct {
	cfg     config.Config
	log     *logrus.Logger
	adapter *storage.Adapter
	closer  func() error
}

// addCommonFlags registers the flags every subcommand shares.
func addCommonFlags(cmd *cobra.Command) (configPath *string, verbose *bool) {
	configPath = cmd.Flags().String("config", "", "Path to config.json file (values can be overridden by other flags)")
	verbose = cmd.Flags().BoolP("verbose", "v", false, "Print detailed debug information")
	cmd.Flags().String("state-dir", "", "Directory for file-backed state")
	cmd.Flags().String("redis-url", "", "Redis URL; file storage when empty")
	return configPath, verbose
}

// resolveConfig layers defaults, the optional config file, environment
// variables, and explicitly set flags, in increasing precedence.
func resolveConfig(cmd *cobra.Command, configPath string, verbose bool) (config.Config, error) {
	cfg := config.FromEnv().MergeWithDefaults(config.Default())

	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return config.Config{}, err
		}
		cfg = config.FromEnv().MergeWithDefaults(loaded.MergeWithDefaults(config.Default()))
	}

	if cmd.Flags().Changed("state-dir") {
		cfg.StateDir, _ = cmd.Flags().GetString("state-dir")
	}
	if cmd.Flags().Changed("redis-url") {
		cfg.RedisURL, _ = cmd.Flags().GetString("redis-url")
	}
	cfg.Verbose = verbose

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// newApp resolves configuration and wires the storage backend. Redis is used
// when a URL is configured, a per-key file store otherwise.
func newApp(cmd *cobra.Command, configPath string, verbose bool) (*app, error) {
	cfg, err := resolveConfig(cmd, configPath, verbose)
	if err != nil {
		return nil, err
	}

	log := logrus.New()
	if cfg.Verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	var store storage.Store
	closer := func() error { return nil }
	if cfg.RedisURL != "" {
		redisStore, err := storage.NewRedisStore(context.Background(), cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		store = redisStore
		closer = redisStore.Close
	} else {
		fileStore, err := storage.NewFileStore(cfg.StateDir)
		if err != nil {
			return nil, fmt.Errorf("failed to open state dir: %w", err)
		}
		store = fileStore
	}

	return &app{
		cfg:     cfg,
		log:     log,
		adapter: storage.NewAdapter(store, storage.WithLogger(log)),
		closer:  closer,
	}, nil
}

// Close releases the storage backend.
func (a *app) Close() error {
	return a.closer()
}
