// Package cli provides CLI commands using Bubble Tea TUI.
package cli

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/bnema/docking/internal/application/usecase"
	"github.com/bnema/docking/internal/cli/styles"
	"github.com/bnema/docking/internal/domain/build"
	"github.com/bnema/docking/internal/infrastructure/config"
	"github.com/bnema/docking/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config        *config.Config
	ConfigManager *config.Manager // nil when the config dir is unusable
	Theme         *styles.Theme
	BuildInfo     build.Info

	// Use cases
	Docks    *usecase.ManageDocksUseCase
	SchemaUC *usecase.GetConfigSchemaUseCase

	// Context with logger
	ctx        context.Context
	logCleanup io.Closer
}

// NewApp creates a new CLI application with all dependencies.
func NewApp() (*App, error) {
	mgr, cfg := loadConfig()

	// Log to a rotated file only; the terminal belongs to the TUI.
	logger, logCleanup := newFileLogger(cfg)
	ctx := logging.WithContext(context.Background(), logger)

	if mgr != nil {
		logger.Debug().Str("config_file", mgr.ConfigPath()).Msg("configuration loaded")
	} else {
		logger.Warn().Msg("using default configuration")
	}

	docks := usecase.NewManageDocksUseCase(uuid.NewString, usecase.DockDefaults{
		SplitRatio:    cfg.Dock.DefaultSplitRatio,
		MinSplitRatio: cfg.Dock.MinSplitRatio,
	})

	return &App{
		Config:        cfg,
		ConfigManager: mgr,
		Theme:         styles.NewTheme(cfg),
		Docks:         docks,
		SchemaUC:      usecase.NewGetConfigSchemaUseCase(config.NewSchemaProvider()),
		ctx:           ctx,
		logCleanup:    logCleanup,
	}, nil
}

// Close releases all resources.
func (a *App) Close() error {
	if a.logCleanup != nil {
		return a.logCleanup.Close()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// loadConfig loads configuration from standard locations.
func loadConfig() (*config.Manager, *config.Config) {
	mgr, err := config.NewManager()
	if err != nil {
		// Return default config if manager fails
		return nil, config.DefaultConfig()
	}

	if err := mgr.Load(); err != nil {
		// Return default config if loading fails
		return nil, config.DefaultConfig()
	}

	return mgr, mgr.Get()
}

func newFileLogger(cfg *config.Config) (zerolog.Logger, io.Closer) {
	level, err := logging.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logCfg := logging.ConfigFromEnv(logging.Config{
		Level:      level,
		Format:     cfg.Logging.Format,
		TimeFormat: "15:04:05",
	})

	dir, err := config.ResolveLogDir(cfg)
	if err != nil {
		return zerolog.Nop(), nil
	}
	logger, closer, err := logging.NewWithFile(logCfg, logging.FileConfig{
		Dir:        dir,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAgeDays: cfg.Logging.MaxAgeDays,
		Compress:   cfg.Logging.Compress,
	})
	if err != nil {
		return zerolog.Nop(), nil
	}
	return logger, closer
}
