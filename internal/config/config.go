package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/rlr-github/rory-themes/internal/catalog"
	"github.com/rlr-github/rory-themes/internal/osutil"
)

const (
	// AppName is the directory name shared with the theme-manager scripts
	AppName = "rory-terminal"
	// ConfigFile is the name of the selector's TOML configuration file
	ConfigFile = "selector.toml"
	// CurrentThemeFile holds the active theme id, written by theme-manager.sh
	CurrentThemeFile = "current-theme"
	// SettingsFile is the theme pack's own JSON settings file
	SettingsFile = "config.json"
	// LogFile receives the selector's log output
	LogFile = "selector.log"
)

const (
	defaultUITint    = "dracula"
	defaultLogLevel  = "info"
	defaultStopGrace = "2s"
)

var validLogLevels = []string{"debug", "info", "warn", "error"}

// Config represents the selector configuration
type Config struct {
	// DefaultTheme is reported as the current theme when none has been applied yet
	DefaultTheme string `toml:"default_theme"`
	// InstallDirs are extra installation directories, checked before the built-in candidates
	InstallDirs []string `toml:"install_dirs,omitempty"`
	// Launcher overrides the path of the preview launcher script
	Launcher string `toml:"launcher,omitempty"`
	// UITint is the bubbletint id used for the selector's own chrome
	UITint string `toml:"ui_tint"`
	// LogLevel is one of debug, info, warn, error
	LogLevel string `toml:"log_level"`
	// StopGrace is how long a stopped preview gets between SIGTERM and SIGKILL
	StopGrace string `toml:"stop_grace"`
}

// DefaultConfig returns a Config with the built-in defaults.
func DefaultConfig() Config {
	return Config{
		DefaultTheme: catalog.DefaultThemeID,
		InstallDirs:  nil,
		Launcher:     "",
		UITint:       defaultUITint,
		LogLevel:     defaultLogLevel,
		StopGrace:    defaultStopGrace,
	}
}

// Normalize lowercases enumerated values and fills empty ones with defaults.
func (c *Config) Normalize() {
	defaults := DefaultConfig()

	c.DefaultTheme = strings.ToLower(strings.TrimSpace(c.DefaultTheme))
	if c.DefaultTheme == "" {
		c.DefaultTheme = defaults.DefaultTheme
	}

	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = defaults.LogLevel
	}

	c.UITint = strings.TrimSpace(c.UITint)
	if c.UITint == "" {
		c.UITint = defaults.UITint
	}

	c.StopGrace = strings.TrimSpace(c.StopGrace)
	if c.StopGrace == "" {
		c.StopGrace = defaults.StopGrace
	}

	c.Launcher = strings.TrimSpace(c.Launcher)

	dirs := c.InstallDirs[:0]
	for _, d := range c.InstallDirs {
		if d = strings.TrimSpace(d); d != "" {
			dirs = append(dirs, d)
		}
	}
	c.InstallDirs = dirs
}

// Validate checks the configuration values.
func (c Config) Validate() error {
	if !catalog.Default().Has(c.DefaultTheme) {
		return fmt.Errorf("invalid default_theme %q: must be one of %s",
			c.DefaultTheme, strings.Join(catalog.Default().IDs(), ", "))
	}

	validLevel := false
	for _, l := range validLogLevels {
		if c.LogLevel == l {
			validLevel = true
			break
		}
	}
	if !validLevel {
		return fmt.Errorf("invalid log_level %q: must be one of %s",
			c.LogLevel, strings.Join(validLogLevels, ", "))
	}

	grace, err := time.ParseDuration(c.StopGrace)
	if err != nil {
		return fmt.Errorf("invalid stop_grace %q: %w", c.StopGrace, err)
	}
	if grace < 0 {
		return fmt.Errorf("invalid stop_grace %q: must not be negative", c.StopGrace)
	}

	for _, d := range c.InstallDirs {
		if !filepath.IsAbs(expandHome(d)) {
			return fmt.Errorf("invalid install_dirs entry %q: must be an absolute path", d)
		}
	}

	return nil
}

// StopGraceDuration returns StopGrace parsed, falling back to the default.
func (c Config) StopGraceDuration() time.Duration {
	d, err := time.ParseDuration(c.StopGrace)
	if err != nil || d < 0 {
		d, _ = time.ParseDuration(defaultStopGrace)
	}
	return d
}

// ExpandedInstallDirs returns InstallDirs with a leading ~ resolved.
func (c Config) ExpandedInstallDirs() []string {
	out := make([]string, 0, len(c.InstallDirs))
	for _, d := range c.InstallDirs {
		out = append(out, expandHome(d))
	}
	return out
}

// ExpandedLauncher returns Launcher with a leading ~ resolved.
func (c Config) ExpandedLauncher() string {
	if c.Launcher == "" {
		return ""
	}
	return expandHome(c.Launcher)
}

func expandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := osutil.Provider.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}

// Load reads and validates the config file at path.
// Keys absent from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadOrDefault loads the config at path, returning defaults when the file
// does not exist. Any other error is returned.
func LoadOrDefault(path string) (Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	return Load(path)
}

// Save validates cfg and writes it to path atomically.
func Save(path string, cfg Config) error {
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return err
	}

	var buf bytes.Buffer
	buf.WriteString("# rory-themes selector configuration\n\n")
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Chmod(0644); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// GenerateSampleConfig returns a commented sample configuration.
func GenerateSampleConfig() string {
	return `# rory-themes selector configuration

# Theme reported as current before any theme has been applied.
# One of: halloween, christmas, easter, hacker, matrix
default_theme = "hacker"

# Extra installation directories, checked before /opt/rory-terminal
# and ~/.local/share/rory-terminal.
# install_dirs = ["~/src/terminal-themes"]

# Path to the preview launcher script.
# Defaults to <install>/installers/desktop/rory-terminal-launcher.sh
# launcher = ""

# Colour scheme for the selector itself (any bubbletint id).
ui_tint = "dracula"

# Log verbosity: debug, info, warn, error
log_level = "info"

# Grace period between SIGTERM and SIGKILL when stopping a preview.
stop_grace = "2s"
`
}

// Dir returns the per-user config directory shared with the theme-manager
// scripts: $XDG_CONFIG_HOME/rory-terminal or ~/.config/rory-terminal.
func Dir() (string, error) {
	base, err := osutil.XDGDir("XDG_CONFIG_HOME", ".config")
	if err != nil {
		return "", err
	}
	return filepath.Join(base, AppName), nil
}

// DataDir returns $XDG_DATA_HOME/rory-terminal or ~/.local/share/rory-terminal.
func DataDir() (string, error) {
	base, err := osutil.XDGDir("XDG_DATA_HOME", ".local", "share")
	if err != nil {
		return "", err
	}
	return filepath.Join(base, AppName), nil
}

// GetConfigPath returns the path to the selector config file.
// Creates the config directory if it doesn't exist.
func GetConfigPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	if err := osutil.Provider.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFile), nil
}

// CurrentThemePath returns the path of the persisted current-theme file.
func CurrentThemePath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, CurrentThemeFile), nil
}

// SettingsPath returns the path of the theme pack's config.json.
func SettingsPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, SettingsFile), nil
}

// LogPath returns the path of the selector log file.
// Creates the config directory if it doesn't exist.
func LogPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	if err := osutil.Provider.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return filepath.Join(dir, LogFile), nil
}
