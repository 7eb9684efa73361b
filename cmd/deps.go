package cmd

import (
	"context"
	"io"
	"os"

	"github.com/rlr-github/rory-themes/internal/service"
	"github.com/rlr-github/rory-themes/internal/shim"
	"github.com/rlr-github/rory-themes/internal/tui"
)

// Deps holds external dependencies for CLI commands, enabling testability.
type Deps struct {
	Stdout   io.Writer
	Stderr   io.Writer
	Stdin    io.Reader
	Exit     func(code int)
	Services func() (*service.Services, error)
	RunTUI   func(services *service.Services) error
	RunShim  func(ctx context.Context, argv []string, stdin io.Reader, stdout io.Writer) (int, error)
}

// DefaultDeps returns the default production dependencies.
func DefaultDeps() *Deps {
	return &Deps{
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
		Stdin:    os.Stdin,
		Exit:     os.Exit,
		Services: defaultServices,
		RunTUI:   tui.Run,
		RunShim:  shim.Run,
	}
}

// deps is the global dependencies instance used by commands.
// In production, this is DefaultDeps(). Tests can replace it.
// It is assigned in init because defaultServices reads deps.Stderr.
var deps *Deps

func init() {
	deps = DefaultDeps()
}

// SetDeps sets the global dependencies (for testing).
func SetDeps(d *Deps) {
	deps = d
}

// ResetDeps resets dependencies to defaults (for testing cleanup).
func ResetDeps() {
	deps = DefaultDeps()
}
