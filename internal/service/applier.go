package service

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/rlr-github/rory-themes/internal/catalog"
	"github.com/rlr-github/rory-themes/internal/install"
	"github.com/rlr-github/rory-themes/internal/logging"
	"github.com/rlr-github/rory-themes/internal/osutil"
	"github.com/rlr-github/rory-themes/internal/runner"
)

// ApplierOptions configures an Applier.
type ApplierOptions struct {
	Catalog *catalog.Catalog
	Runner  runner.Runner
	// Candidates returns the installation directories to probe, in order.
	Candidates func() []string
	// CurrentThemePath is the file holding the persisted theme id.
	CurrentThemePath string
	// DefaultTheme is used when the current-theme file gives nothing usable.
	DefaultTheme string
	// Launcher overrides the preview launcher inside the installation.
	Launcher string
	// StopGrace is the delay between SIGTERM and SIGKILL when stopping a preview.
	StopGrace time.Duration
	Logger    *log.Logger
}

// ApplyResult describes a successfully applied theme.
type ApplyResult struct {
	ThemeID string
	Name    string
}

// ApplyOutcome is the single value delivered by ApplyAsync.
type ApplyOutcome struct {
	Result ApplyResult
	Err    error
}

// Applier applies themes through the theme-manager script and owns the
// current-theme state and the preview process.
type Applier struct {
	catalog          *catalog.Catalog
	runner           runner.Runner
	candidates       func() []string
	currentThemePath string
	defaultTheme     string
	launcher         string
	stopGrace        time.Duration
	logger           *log.Logger

	mu       sync.Mutex
	current  string
	applying atomic.Bool

	previewMu sync.Mutex
	preview   *PreviewHandle
}

// NewApplier creates an Applier and reads the current theme once.
func NewApplier(opts ApplierOptions) *Applier {
	a := &Applier{
		catalog:          opts.Catalog,
		runner:           opts.Runner,
		candidates:       opts.Candidates,
		currentThemePath: opts.CurrentThemePath,
		defaultTheme:     opts.DefaultTheme,
		launcher:         opts.Launcher,
		stopGrace:        opts.StopGrace,
		logger:           opts.Logger,
	}
	if a.catalog == nil {
		a.catalog = catalog.Default()
	}
	if a.runner == nil {
		a.runner = runner.New()
	}
	if a.candidates == nil {
		a.candidates = func() []string { return install.Candidates(nil) }
	}
	if !a.catalog.Has(a.defaultTheme) {
		a.defaultTheme = a.catalog.DefaultTheme().ID
	}
	if a.logger == nil {
		a.logger = logging.Discard()
	}
	a.current = a.readCurrentTheme()
	return a
}

// ReadCurrentTheme returns the trimmed contents of the file at path, or
// fallback when the file is absent, unreadable, empty, or names a theme
// that is not in cat.
func ReadCurrentTheme(path, fallback string, cat *catalog.Catalog) string {
	if path == "" {
		return fallback
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fallback
	}
	id := strings.TrimSpace(string(data))
	if id == "" || (cat != nil && !cat.Has(id)) {
		return fallback
	}
	return id
}

func (a *Applier) readCurrentTheme() string {
	id := ReadCurrentTheme(a.currentThemePath, a.defaultTheme, a.catalog)
	a.logger.Debug("current theme", "theme", id, "path", a.currentThemePath)
	return id
}

// CurrentTheme returns the theme id last read from disk or last applied.
// An id in the current-theme file that is not in the catalog reads as the
// default theme.
func (a *Applier) CurrentTheme() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.current
}

// ReloadCurrentTheme re-reads the current-theme file.
func (a *Applier) ReloadCurrentTheme() string {
	id := a.readCurrentTheme()
	a.mu.Lock()
	a.current = id
	a.mu.Unlock()
	return id
}

// Catalog returns the theme catalog the Applier validates against.
func (a *Applier) Catalog() *catalog.Catalog {
	return a.catalog
}

// InstallDir locates the installation directory.
func (a *Applier) InstallDir() (string, error) {
	return install.Locate(a.candidates())
}

// Applying reports whether an apply is in flight.
func (a *Applier) Applying() bool {
	return a.applying.Load()
}

// Apply runs `theme-manager.sh set <id>` and waits for it. On success the
// current theme becomes id.
func (a *Applier) Apply(ctx context.Context, id string) (ApplyResult, error) {
	if !a.applying.CompareAndSwap(false, true) {
		return ApplyResult{}, ErrApplyInProgress
	}
	defer a.applying.Store(false)
	return a.apply(ctx, id)
}

// ApplyAsync runs Apply on its own goroutine and delivers exactly one
// outcome on the returned channel. A second call while one is in flight
// yields ErrApplyInProgress without starting any work.
func (a *Applier) ApplyAsync(ctx context.Context, id string) <-chan ApplyOutcome {
	ch := make(chan ApplyOutcome, 1)
	if !a.applying.CompareAndSwap(false, true) {
		ch <- ApplyOutcome{Err: ErrApplyInProgress}
		close(ch)
		return ch
	}

	go func() {
		defer close(ch)
		defer a.applying.Store(false)
		res, err := a.apply(ctx, id)
		ch <- ApplyOutcome{Result: res, Err: err}
	}()
	return ch
}

func (a *Applier) apply(ctx context.Context, id string) (ApplyResult, error) {
	theme, err := a.catalog.Get(id)
	if err != nil {
		return ApplyResult{}, err
	}

	dir, err := a.InstallDir()
	if err != nil {
		a.logger.Warn("apply failed", "theme", id, "err", err)
		return ApplyResult{}, err
	}

	script := install.ThemeManager(dir)
	if !osutil.Exists(script) {
		err := &ScriptError{Kind: "theme manager", Path: script}
		a.logger.Warn("apply failed", "theme", id, "err", err)
		return ApplyResult{}, err
	}

	a.logger.Info("applying theme", "theme", id, "script", script)
	start := time.Now()
	if err := a.runner.Run(ctx, script, "set", id); err != nil {
		a.logger.Error("theme manager failed", "theme", id, "err", err)
		return ApplyResult{}, fmt.Errorf("apply %s: %w", id, err)
	}

	a.mu.Lock()
	a.current = id
	a.mu.Unlock()

	a.logger.Info("theme applied", "theme", id, "took", time.Since(start).Round(time.Millisecond))
	return ApplyResult{ThemeID: theme.ID, Name: theme.Name}, nil
}
