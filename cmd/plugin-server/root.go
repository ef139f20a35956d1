package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jhaveripatric/plugin-server/internal/config"
	"github.com/jhaveripatric/plugin-server/internal/logging"
	"github.com/jhaveripatric/plugin-server/internal/manifest"
)

type options struct {
	settingsPath string
	manifestPath string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "plugin-server",
		Short:         "Serve a plugin manifest, its OpenAPI document and API docs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			config.LoadEnvFiles()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), opts)
		},
	}

	root.PersistentFlags().StringVar(&opts.settingsPath, "settings", "config/settings", "settings file (extension optional)")
	root.PersistentFlags().StringVar(&opts.manifestPath, "manifest", "config/manifest", "manifest file (extension optional)")

	root.AddCommand(
		newServeCmd(opts),
		newManifestCmd(opts),
		newValidateCmd(opts),
	)
	return root
}

// boot holds everything built before the listener opens.
type boot struct {
	settings *config.Settings
	manifest *manifest.Manifest
	logger   *zap.Logger
}

// load builds settings, logger and manifest in order, failing on the first error.
func load(opts *options) (*boot, error) {
	settings, err := config.Load(opts.settingsPath, nil)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	logger, err := logging.New(settings.LogLevel, settings.LogFormat)
	if err != nil {
		return nil, fmt.Errorf("initialize logger: %w", err)
	}

	m, err := manifest.NewLoader(settings).Load(opts.manifestPath)
	if err != nil {
		_ = logger.Sync()
		return nil, fmt.Errorf("load manifest: %w", err)
	}

	logger.Info("manifest built",
		zap.String("name_for_model", m.NameForModel),
		zap.String("auth_type", string(m.Auth.Type())),
		zap.String("api_url", m.API.URL.String()),
	)
	return &boot{settings: settings, manifest: m, logger: logger}, nil
}
