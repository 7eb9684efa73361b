// Package settings opens the theme pack's JSON settings file in the user's
// default application.
package settings

import (
	"errors"
	"fmt"
	"io"

	"github.com/pkg/browser"
	"github.com/rlr-github/rory-themes/internal/osutil"
)

// ErrNoSettingsFile is returned when config.json does not exist.
var ErrNoSettingsFile = errors.New("no configuration file found")

// NoFileHint is shown to the user when there is no settings file.
const NoFileHint = "Settings are managed through the theme manager."

// Opener opens the settings file.
type Opener struct {
	path string
	open func(path string) error
}

// New returns an Opener for path that uses the OS default application.
func New(path string) *Opener {
	return &Opener{path: path, open: openWithDefaultApp}
}

// NewWithFunc returns an Opener using open instead of the OS mechanism.
func NewWithFunc(path string, open func(path string) error) *Opener {
	return &Opener{path: path, open: open}
}

// Path returns the settings file location.
func (o *Opener) Path() string {
	return o.path
}

// Exists reports whether the settings file is present.
func (o *Opener) Exists() bool {
	return osutil.Exists(o.path)
}

// Open opens the settings file. It returns ErrNoSettingsFile when the file
// is absent, or the opener's error wrapped with the path so the caller can
// show the location instead.
func (o *Opener) Open() error {
	if !o.Exists() {
		return ErrNoSettingsFile
	}
	if err := o.open(o.path); err != nil {
		return fmt.Errorf("open %s: %w", o.path, err)
	}
	return nil
}

func openWithDefaultApp(path string) error {
	// xdg-open chatter would land on top of the TUI.
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
	return browser.OpenFile(path)
}
