// Package install locates the Rory Terminal installation on disk.
package install

import (
	"errors"
	"path/filepath"

	"github.com/rlr-github/rory-themes/internal/config"
	"github.com/rlr-github/rory-themes/internal/osutil"
)

// EnvDir is set by the Homebrew wrappers to the installation prefix.
const EnvDir = "RORY_TERMINAL_DIR"

// SystemDir is the system-wide installation path.
const SystemDir = "/opt/rory-terminal"

// ErrInstallationNotFound is returned when no candidate directory exists.
var ErrInstallationNotFound = errors.New("rory terminal installation not found")

// Relative locations of the scripts inside an installation.
const (
	ThemeManagerRel = "core/option1-starship/theme-manager.sh"
	LauncherRel     = "installers/desktop/rory-terminal-launcher.sh"
	matrixDirRel    = "themes/bash"
)

// Candidates returns the ordered installation directories to probe:
// $RORY_TERMINAL_DIR, extra (from config), the system path, the per-user
// data path and the directory two levels above the running executable.
func Candidates(extra []string) []string {
	var out []string
	if dir := osutil.Provider.Getenv(EnvDir); dir != "" {
		out = append(out, dir)
	}
	out = append(out, extra...)
	out = append(out, SystemDir)
	if data, err := config.DataDir(); err == nil {
		out = append(out, data)
	}
	if exe, err := osutil.Provider.Executable(); err == nil && exe != "" {
		out = append(out, filepath.Dir(filepath.Dir(exe)))
	}
	return out
}

// Locate returns the first candidate that is an existing directory.
func Locate(candidates []string) (string, error) {
	for _, c := range candidates {
		if c != "" && osutil.IsDir(c) {
			return c, nil
		}
	}
	return "", ErrInstallationNotFound
}

// ThemeManager returns the theme-manager script path inside dir.
func ThemeManager(dir string) string {
	return filepath.Join(dir, ThemeManagerRel)
}

// Launcher returns the preview launcher script path inside dir.
func Launcher(dir string) string {
	return filepath.Join(dir, LauncherRel)
}

// MatrixScript returns the matrix animation script for themeID inside dir.
func MatrixScript(dir, themeID string) string {
	return filepath.Join(dir, matrixDirRel, "matrix-"+themeID+".sh")
}
