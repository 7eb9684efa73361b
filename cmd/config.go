package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/rlr-github/rory-themes/internal/catalog"
	"github.com/rlr-github/rory-themes/internal/config"
	"github.com/rlr-github/rory-themes/internal/service"
	"github.com/spf13/cobra"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Display or manage configuration settings",
	Long: `Display the current effective selector configuration.

Shows the configuration file location, whether it exists, and all current settings.
Configuration values are merged from the config file with sensible defaults.

rory-themes works without any configuration file. All settings have defaults:
  - default_theme: hacker
  - install_dirs: (none)
  - launcher: (from the installation)
  - ui_tint: dracula
  - log_level: info
  - stop_grace: 2s

Examples:
  rory-themes config               Show all current settings
  rory-themes config init          Write a commented sample config file
  rory-themes config path          Print the config file path

Configuration file location:
  $XDG_CONFIG_HOME/rory-terminal/selector.toml
  ~/.config/rory-terminal/selector.toml`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		showConfig()
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a sample config file",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		initConfig()
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, ok := resolveConfigPath()
		if !ok {
			return
		}
		_, _ = fmt.Fprintln(deps.Stdout, configPath)
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
}

func resolveConfigPath() (string, bool) {
	configPath, err := config.GetConfigPath()
	if err != nil {
		reportError("Failed to determine config file location", err.Error(),
			"Check that your home directory is accessible")
		return "", false
	}
	return configPath, true
}

// showConfig displays the current effective configuration
func showConfig() {
	configPath, ok := resolveConfigPath()
	if !ok {
		return
	}

	fileExists := false
	if _, err := os.Stat(configPath); err == nil {
		fileExists = true
	}

	// Load config (will use defaults if file doesn't exist)
	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to load configuration")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		_, _ = fmt.Fprintln(deps.Stderr)
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: Check that your config file is valid TOML format: %s\n", configPath)
		_, _ = fmt.Fprintf(deps.Stderr, "Valid default_theme values: %s\n", strings.Join(catalog.Default().IDs(), ", "))
		_, _ = fmt.Fprintln(deps.Stderr, "Valid log_level values: debug, info, warn, error")
		deps.Exit(1)
		return
	}

	_, _ = fmt.Fprintln(deps.Stdout, "Configuration for rory-themes")
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("=", 60))
	_, _ = fmt.Fprintln(deps.Stdout)

	_, _ = fmt.Fprintf(deps.Stdout, "Config file:     %s\n", configPath)
	if fileExists {
		_, _ = fmt.Fprintln(deps.Stdout, "Status:          File exists (using custom configuration)")
	} else {
		_, _ = fmt.Fprintln(deps.Stdout, "Status:          No config file (using defaults)")
	}
	_, _ = fmt.Fprintln(deps.Stdout)

	_, _ = fmt.Fprintln(deps.Stdout, "Current Settings:")
	_, _ = fmt.Fprintln(deps.Stdout, strings.Repeat("-", 60))
	_, _ = fmt.Fprintf(deps.Stdout, "Default Theme:   %s\n", cfg.DefaultTheme)
	if len(cfg.InstallDirs) == 0 {
		_, _ = fmt.Fprintln(deps.Stdout, "Install Dirs:    (none)")
	} else {
		_, _ = fmt.Fprintf(deps.Stdout, "Install Dirs:    %s\n", strings.Join(cfg.InstallDirs, ", "))
	}
	if cfg.Launcher == "" {
		_, _ = fmt.Fprintln(deps.Stdout, "Launcher:        (from installation)")
	} else {
		_, _ = fmt.Fprintf(deps.Stdout, "Launcher:        %s\n", cfg.Launcher)
	}
	_, _ = fmt.Fprintf(deps.Stdout, "UI Tint:         %s\n", cfg.UITint)
	_, _ = fmt.Fprintf(deps.Stdout, "Log Level:       %s\n", cfg.LogLevel)
	_, _ = fmt.Fprintf(deps.Stdout, "Stop Grace:      %s\n", cfg.StopGrace)
	_, _ = fmt.Fprintln(deps.Stdout)

	if !fileExists {
		_, _ = fmt.Fprintln(deps.Stdout, "Tip: Run 'rory-themes config init' to create a sample config file.")
		_, _ = fmt.Fprintln(deps.Stdout)
	}
}

// initConfig writes the sample configuration
func initConfig() {
	configPath, ok := resolveConfigPath()
	if !ok {
		return
	}

	svc := service.NewConfigService(configPath, config.DefaultConfig())
	if err := svc.Init(); err != nil {
		reportError("Failed to create config file", err.Error(),
			"Edit the existing file or remove it first")
		return
	}
	_, _ = fmt.Fprintf(deps.Stdout, "Created %s\n", configPath)
}
