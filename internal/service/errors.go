package service

import (
	"errors"
	"fmt"

	"github.com/rlr-github/rory-themes/internal/catalog"
	"github.com/rlr-github/rory-themes/internal/install"
	"github.com/rlr-github/rory-themes/internal/runner"
)

// Applier errors
var (
	ErrInstallationNotFound = install.ErrInstallationNotFound
	ErrThemeNotFound        = catalog.ErrThemeNotFound
	ErrScriptNotFound       = errors.New("script not found")
	ErrApplyInProgress      = errors.New("a theme is already being applied")
	ErrPreviewRunning       = errors.New("a preview is already running")
)

// SpawnError is returned when an external script cannot be started.
type SpawnError = runner.SpawnError

// ExitError is returned when an external script exits nonzero; its
// Diagnostic carries the script's standard error.
type ExitError = runner.ExitError

// ScriptError names the script that was expected but missing.
// It matches ErrScriptNotFound with errors.Is.
type ScriptError struct {
	Kind string
	Path string
}

func (e *ScriptError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.Path)
}

// Is reports whether target is ErrScriptNotFound.
func (e *ScriptError) Is(target error) bool {
	return target == ErrScriptNotFound
}

// Describe renders an Apply error as a message suitable for a notification.
func Describe(err error) string {
	var exitErr *ExitError
	var spawnErr *SpawnError
	var scriptErr *ScriptError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInstallationNotFound):
		return "Rory Terminal installation not found!"
	case errors.As(err, &scriptErr):
		return fmt.Sprintf("%s not found: %s", capitalize(scriptErr.Kind), scriptErr.Path)
	case errors.As(err, &exitErr):
		return "Failed to apply theme:\n" + exitErr.Error()
	case errors.As(err, &spawnErr):
		return "Failed to apply theme:\n" + spawnErr.Error()
	default:
		return err.Error()
	}
}

// DescribePreview renders a StartPreview error for theme id.
func DescribePreview(id string, err error) string {
	var spawnErr *SpawnError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInstallationNotFound):
		return "Rory Terminal installation not found!"
	case errors.Is(err, ErrScriptNotFound):
		return fmt.Sprintf("Matrix script not found for %s theme!", id)
	case errors.As(err, &spawnErr):
		return "Failed to start matrix animation:\n" + spawnErr.Error()
	default:
		return err.Error()
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	if s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0]-'a'+'A') + s[1:]
	}
	return s
}
