package cmd

import (
	"fmt"
	"io"

	"github.com/rlr-github/rory-themes/internal/config"
	"github.com/rlr-github/rory-themes/internal/logging"
	"github.com/rlr-github/rory-themes/internal/service"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rory-themes",
	Short: "Theme selector for Rory Terminal",
	Long: `rory-themes picks the active Rory Terminal theme and previews its
matrix animation.

Usage:
  rory-themes                      Launch the interactive selector
  rory-themes list                 List available themes
  rory-themes show <theme>         Describe a theme
  rory-themes current              Print the current theme
  rory-themes apply <theme>        Apply a theme
  rory-themes preview <theme>      Run a theme's matrix animation
  rory-themes settings             Open the theme pack settings
  rory-themes config               Show selector configuration
  rory-themes shim -- <cmd>        Run a command with coloured output
  rory-themes completion <shell>   Generate a shell completion script

Themes: halloween, christmas, easter, hacker, matrix`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runTUI()
	},
}

// verbose mirrors debug logging to stderr.
var verbose bool

// closeLog closes the log file opened by defaultServices.
var closeLog = func() error { return nil }

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Write debug logs to stderr")
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(
		"rory-themes version {{.Version}}\n" +
			"commit: " + commit + "\n" +
			"built: " + date + "\n",
	)
}

// Execute runs the root command
func Execute() error {
	defer func() { _ = closeLog() }()
	return rootCmd.Execute()
}

// defaultServices builds the production services with a logger writing to
// the selector log file.
func defaultServices() (*service.Services, error) {
	logPath, err := config.LogPath()
	if err != nil {
		return nil, err
	}

	level := "info"
	var mirror io.Writer
	if verbose {
		level = "debug"
		mirror = deps.Stderr
	}
	logger, closer := logging.Open(logPath, level, mirror)

	services, err := service.NewServices(logger)
	if err != nil {
		_ = closer()
		return nil, err
	}
	if !verbose {
		logging.SetLevel(logger, services.Config.Get().LogLevel)
	}
	closeLog = closer
	return services, nil
}

// loadServices returns the services or reports the failure and exits.
func loadServices() (*service.Services, bool) {
	services, err := deps.Services()
	if err != nil {
		_, _ = fmt.Fprintln(deps.Stderr, "Error: Failed to initialize")
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %v\n", err)
		if path, perr := config.GetConfigPath(); perr == nil {
			_, _ = fmt.Fprintf(deps.Stderr, "Hint: Check that your config file is valid TOML: %s\n", path)
		} else {
			_, _ = fmt.Fprintln(deps.Stderr, "Hint: Check that your home directory is accessible")
		}
		deps.Exit(1)
		return nil, false
	}
	return services, true
}
