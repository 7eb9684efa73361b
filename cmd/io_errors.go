package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rlr-github/rory-themes/internal/catalog"
	"github.com/rlr-github/rory-themes/internal/runner"
	"github.com/rlr-github/rory-themes/internal/service"
)

// reportError prints the Error/Details/Hint block and exits 1.
// Empty details or hint lines are omitted.
func reportError(message, details, hint string) {
	_, _ = fmt.Fprintf(deps.Stderr, "Error: %s\n", message)
	if details != "" {
		_, _ = fmt.Fprintf(deps.Stderr, "Details: %s\n", details)
	}
	if hint != "" {
		_, _ = fmt.Fprintf(deps.Stderr, "Hint: %s\n", hint)
	}
	deps.Exit(1)
}

func reportUnknownTheme(id string, cat *catalog.Catalog) {
	reportError(
		fmt.Sprintf("Unknown theme '%s'", id),
		"",
		"Valid themes: "+strings.Join(cat.IDs(), ", "),
	)
}

func reportMissingInstallation() {
	reportError(
		"Rory Terminal installation not found!",
		"",
		"Install Rory Terminal, set RORY_TERMINAL_DIR, or add its location to install_dirs in the config file",
	)
}

// reportApplyError maps an Apply failure to CLI output.
func reportApplyError(err error, cat *catalog.Catalog, id string) {
	var exitErr *service.ExitError
	var spawnErr *service.SpawnError
	var scriptErr *service.ScriptError
	switch {
	case errors.Is(err, service.ErrThemeNotFound):
		reportUnknownTheme(id, cat)
	case errors.Is(err, service.ErrInstallationNotFound):
		reportMissingInstallation()
	case errors.As(err, &scriptErr):
		reportError(service.Describe(err), "", "Reinstall Rory Terminal to restore the theme manager")
	case errors.As(err, &exitErr):
		reportError("Failed to apply theme", exitErr.Error(), "")
	case errors.As(err, &spawnErr) && runner.IsMissingExecutable(spawnErr):
		reportError("Failed to apply theme", spawnErr.Error(), "Reinstall Rory Terminal to restore the theme manager")
	case errors.As(err, &spawnErr):
		reportError("Failed to apply theme", spawnErr.Error(), "Check that the theme manager script is executable")
	case errors.Is(err, service.ErrApplyInProgress):
		reportError("Failed to apply theme", err.Error(), "Wait for the running apply to finish")
	default:
		reportError("Failed to apply theme", err.Error(), "")
	}
}

// reportPreviewError maps a StartPreview failure to CLI output.
func reportPreviewError(err error, cat *catalog.Catalog, id string) {
	var spawnErr *service.SpawnError
	var scriptErr *service.ScriptError
	switch {
	case errors.Is(err, service.ErrThemeNotFound):
		reportUnknownTheme(id, cat)
	case errors.Is(err, service.ErrInstallationNotFound):
		reportMissingInstallation()
	case errors.As(err, &scriptErr):
		reportError(service.DescribePreview(id, err), scriptErr.Path, "")
	case errors.As(err, &spawnErr) && runner.IsMissingExecutable(spawnErr):
		reportError("Failed to start matrix animation", spawnErr.Error(), "Set launcher in the config file to a working launcher script")
	case errors.As(err, &spawnErr):
		reportError("Failed to start matrix animation", spawnErr.Error(), "Check that the launcher script is executable")
	default:
		reportError("Failed to start matrix animation", err.Error(), "")
	}
}
