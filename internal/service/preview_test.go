package service

import (
	"testing"
	"time"

	"github.com/rlr-github/rory-themes/internal/install"
	"github.com/rlr-github/rory-themes/internal/runner"
)

func newProcessApplier(t *testing.T, launcherBody string, grace time.Duration) *Applier {
	t.Helper()
	dir := setupInstall(t, "exit 0", "hacker")
	writeScript(t, install.Launcher(dir), launcherBody)
	return NewApplier(ApplierOptions{
		Runner:     runner.New(),
		Candidates: func() []string { return []string{dir} },
		StopGrace:  grace,
	})
}

func waitDone(t *testing.T, h *PreviewHandle) {
	t.Helper()
	select {
	case <-h.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("preview process did not exit")
	}
}

func TestPreview_StopTerminatesProcess(t *testing.T) {
	a := newProcessApplier(t, "exec sleep 30", time.Second)

	h, err := a.StartPreview("hacker")
	if err != nil {
		t.Fatalf("StartPreview() returned error: %v", err)
	}
	if h.PID() <= 0 {
		t.Errorf("PID() = %d", h.PID())
	}

	a.StopPreview()
	waitDone(t, h)

	if a.PreviewState() != PreviewIdle {
		t.Error("expected idle after stop")
	}
}

func TestPreview_StopEscalatesToKill(t *testing.T) {
	a := newProcessApplier(t, "trap '' TERM\nexec sleep 30", 50*time.Millisecond)

	h, err := a.StartPreview("hacker")
	if err != nil {
		t.Fatalf("StartPreview() returned error: %v", err)
	}

	a.StopPreview()
	waitDone(t, h)
}

func TestPreview_ProcessExitsOnItsOwn(t *testing.T) {
	a := newProcessApplier(t, "exit 0", time.Second)

	h, err := a.StartPreview("hacker")
	if err != nil {
		t.Fatalf("StartPreview() returned error: %v", err)
	}
	waitDone(t, h)

	if a.PreviewState() != PreviewIdle {
		t.Error("expected idle after the launcher exited")
	}
	// Stopping an exited preview is a no-op.
	a.StopPreview()
}
