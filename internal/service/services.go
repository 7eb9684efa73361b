package service

import (
	"github.com/charmbracelet/log"
	"github.com/rlr-github/rory-themes/internal/catalog"
	"github.com/rlr-github/rory-themes/internal/config"
	"github.com/rlr-github/rory-themes/internal/install"
	"github.com/rlr-github/rory-themes/internal/logging"
	"github.com/rlr-github/rory-themes/internal/runner"
	"github.com/rlr-github/rory-themes/internal/settings"
)

// Services holds all service instances used by the application
type Services struct {
	Catalog  *catalog.Catalog
	Applier  *Applier
	Config   *ConfigService
	Settings *settings.Opener
	Logger   *log.Logger
}

// Paths are the files the services read and write.
type Paths struct {
	Config       string
	CurrentTheme string
	Settings     string
}

// DefaultPaths resolves the per-user paths, creating the config directory.
func DefaultPaths() (Paths, error) {
	configPath, err := config.GetConfigPath()
	if err != nil {
		return Paths{}, err
	}
	currentPath, err := config.CurrentThemePath()
	if err != nil {
		return Paths{}, err
	}
	settingsPath, err := config.SettingsPath()
	if err != nil {
		return Paths{}, err
	}
	return Paths{Config: configPath, CurrentTheme: currentPath, Settings: settingsPath}, nil
}

// NewServices creates a new Services instance with default paths.
// A nil logger discards output.
func NewServices(logger *log.Logger) (*Services, error) {
	paths, err := DefaultPaths()
	if err != nil {
		return nil, err
	}

	cfg, err := config.LoadOrDefault(paths.Config)
	if err != nil {
		return nil, err
	}

	return NewServicesWithPaths(paths, cfg, runner.New(), logger), nil
}

// NewServicesWithPaths creates a new Services instance with custom paths and
// runner (useful for testing)
func NewServicesWithPaths(paths Paths, cfg config.Config, r runner.Runner, logger *log.Logger) *Services {
	if logger == nil {
		logger = logging.Discard()
	}
	cat := catalog.Default()
	extra := cfg.ExpandedInstallDirs()

	applier := NewApplier(ApplierOptions{
		Catalog:          cat,
		Runner:           r,
		Candidates:       func() []string { return install.Candidates(extra) },
		CurrentThemePath: paths.CurrentTheme,
		DefaultTheme:     cfg.DefaultTheme,
		Launcher:         cfg.ExpandedLauncher(),
		StopGrace:        cfg.StopGraceDuration(),
		Logger:           logger,
	})

	return &Services{
		Catalog:  cat,
		Applier:  applier,
		Config:   NewConfigService(paths.Config, cfg),
		Settings: settings.New(paths.Settings),
		Logger:   logger,
	}
}
