package service

import (
	"errors"
	"os"
	"sync"
	"syscall"
	"time"

	"github.com/rlr-github/rory-themes/internal/install"
	"github.com/rlr-github/rory-themes/internal/osutil"
	"github.com/rlr-github/rory-themes/internal/runner"
)

// PreviewState is the lifecycle state of the matrix preview.
type PreviewState int

const (
	PreviewIdle PreviewState = iota
	PreviewRunning
)

func (s PreviewState) String() string {
	switch s {
	case PreviewRunning:
		return "running"
	default:
		return "idle"
	}
}

// PreviewHandle tracks a launched matrix preview process.
type PreviewHandle struct {
	ThemeID   string
	StartedAt time.Time

	proc  runner.Process
	grace time.Duration
	once  sync.Once
}

// PID returns the launcher's process id.
func (h *PreviewHandle) PID() int {
	return h.proc.PID()
}

// Done is closed when the launcher process exits.
func (h *PreviewHandle) Done() <-chan struct{} {
	return h.proc.Done()
}

// Elapsed returns how long ago the preview was launched.
func (h *PreviewHandle) Elapsed() time.Duration {
	return time.Since(h.StartedAt)
}

// Alive reports whether the launcher process is still running.
func (h *PreviewHandle) Alive() bool {
	select {
	case <-h.proc.Done():
		return false
	default:
		return true
	}
}

// Stop sends SIGTERM and, if the process is still alive after the grace
// period, SIGKILL. Errors from signalling an already-exited process are
// absorbed. Stop returns without waiting for the escalation.
func (h *PreviewHandle) Stop() {
	h.once.Do(func() {
		err := h.proc.Signal(syscall.SIGTERM)
		if errors.Is(err, os.ErrProcessDone) {
			return
		}
		if err != nil {
			_ = h.proc.Signal(os.Kill)
			return
		}
		go func() {
			select {
			case <-h.proc.Done():
			case <-time.After(h.grace):
				_ = h.proc.Signal(os.Kill)
			}
		}()
	})
}

// StartPreview launches the matrix preview for id in a separate terminal via
// the launcher script. It fails with ErrScriptNotFound, without invoking the
// launcher, when the theme has no matrix script.
func (a *Applier) StartPreview(id string) (*PreviewHandle, error) {
	if _, err := a.catalog.Get(id); err != nil {
		return nil, err
	}

	a.previewMu.Lock()
	defer a.previewMu.Unlock()

	if a.preview != nil && a.preview.Alive() {
		return nil, ErrPreviewRunning
	}
	a.preview = nil

	dir, err := a.InstallDir()
	if err != nil {
		return nil, err
	}

	script := install.MatrixScript(dir, id)
	if !osutil.Exists(script) {
		a.logger.Warn("preview unavailable", "theme", id, "script", script)
		return nil, &ScriptError{Kind: "matrix script", Path: script}
	}

	launcher := a.launcher
	if launcher == "" {
		launcher = install.Launcher(dir)
	}

	proc, err := a.runner.Start(launcher, "--matrix", "--theme", id)
	if err != nil {
		a.logger.Error("preview launch failed", "theme", id, "launcher", launcher, "err", err)
		return nil, err
	}

	h := &PreviewHandle{
		ThemeID:   id,
		StartedAt: time.Now(),
		proc:      proc,
		grace:     a.stopGrace,
	}
	a.preview = h
	a.logger.Info("preview started", "theme", id, "pid", h.PID())
	go a.watchPreview(h)
	return h, nil
}

// watchPreview reaps the launcher and logs how it ended.
func (a *Applier) watchPreview(h *PreviewHandle) {
	err := h.proc.Wait()
	a.logger.Debug("preview exited",
		"theme", h.ThemeID,
		"pid", h.PID(),
		"ran", h.Elapsed().Round(time.Millisecond),
		"err", err,
	)
}

// StopPreview stops the running preview, if any. It is safe to call when
// idle or after the process has already exited.
func (a *Applier) StopPreview() {
	a.previewMu.Lock()
	h := a.preview
	a.preview = nil
	a.previewMu.Unlock()

	if h == nil {
		return
	}
	h.Stop()
	a.logger.Info("preview stopped", "theme", h.ThemeID, "pid", h.PID())
}

// PreviewState reports Running only while the launched process is alive;
// a preview that exited on its own reads as Idle.
func (a *Applier) PreviewState() PreviewState {
	a.previewMu.Lock()
	defer a.previewMu.Unlock()

	if a.preview != nil && a.preview.Alive() {
		return PreviewRunning
	}
	return PreviewIdle
}

// Preview returns the live preview handle, or nil.
func (a *Applier) Preview() *PreviewHandle {
	a.previewMu.Lock()
	defer a.previewMu.Unlock()

	if a.preview != nil && a.preview.Alive() {
		return a.preview
	}
	return nil
}

// Shutdown stops any running preview.
func (a *Applier) Shutdown() {
	a.StopPreview()
}
