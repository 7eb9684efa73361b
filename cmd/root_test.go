package cmd

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/rlr-github/rory-themes/internal/config"
	"github.com/rlr-github/rory-themes/internal/install"
	"github.com/rlr-github/rory-themes/internal/osutil"
	"github.com/rlr-github/rory-themes/internal/runner"
	"github.com/rlr-github/rory-themes/internal/service"
)

type stubProcess struct {
	done chan struct{}
	once sync.Once
}

func (p *stubProcess) PID() int              { return 31337 }
func (p *stubProcess) Done() <-chan struct{} { return p.done }
func (p *stubProcess) Wait() error           { <-p.done; return nil }
func (p *stubProcess) Signal(os.Signal) error {
	select {
	case <-p.done:
		return os.ErrProcessDone
	default:
	}
	p.exit()
	return nil
}

func (p *stubProcess) exit() { p.once.Do(func() { close(p.done) }) }

// stubRunner records invocations. Started processes exit immediately
// unless keepRunning is set.
type stubRunner struct {
	mu          sync.Mutex
	runs        [][]string
	starts      [][]string
	runErr      error
	startErr    error
	keepRunning bool
}

func (r *stubRunner) Run(_ context.Context, name string, args ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.runs = append(r.runs, append([]string{name}, args...))
	return r.runErr
}

func (r *stubRunner) Start(name string, args ...string) (runner.Process, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.startErr != nil {
		return nil, r.startErr
	}
	r.starts = append(r.starts, append([]string{name}, args...))
	p := &stubProcess{done: make(chan struct{})}
	if !r.keepRunning {
		p.exit()
	}
	return p, nil
}

type testPathProvider struct {
	home string
}

func (p *testPathProvider) UserHomeDir() (string, error) { return p.home, nil }
func (p *testPathProvider) Getenv(string) string         { return "" }
func (p *testPathProvider) Executable() (string, error) {
	return filepath.Join(p.home, "opt", "rory-themes", "bin", "rory-themes"), nil
}
func (p *testPathProvider) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// testEnv is a temporary home with optional installation and the captured
// CLI output.
type testEnv struct {
	home       string
	installDir string
	runner     *stubRunner
	services   *service.Services
	stdout     *bytes.Buffer
	stderr     *bytes.Buffer
	exitCode   int
	exited     bool
}

// setupTestEnv isolates the per-user paths under a temp home and swaps in
// test deps. With withInstall an installation with the theme manager and the
// given matrix scripts is created.
func setupTestEnv(t *testing.T, withInstall bool, matrixThemes ...string) *testEnv {
	t.Helper()
	home := t.TempDir()
	osutil.SetProvider(&testPathProvider{home: home})
	t.Cleanup(osutil.ResetProvider)

	env := &testEnv{
		home:   home,
		runner: &stubRunner{},
		stdout: &bytes.Buffer{},
		stderr: &bytes.Buffer{},
	}

	cfg := config.DefaultConfig()
	if withInstall {
		env.installDir = filepath.Join(home, "install")
		writeExecutable(t, install.ThemeManager(env.installDir))
		for _, id := range matrixThemes {
			writeExecutable(t, install.MatrixScript(env.installDir, id))
		}
		cfg.InstallDirs = []string{env.installDir}
	}

	configDir := filepath.Join(home, ".config", "rory-terminal")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatal(err)
	}
	paths := service.Paths{
		Config:       filepath.Join(configDir, "selector.toml"),
		CurrentTheme: filepath.Join(configDir, "current-theme"),
		Settings:     filepath.Join(configDir, "config.json"),
	}

	SetDeps(&Deps{
		Stdout: env.stdout,
		Stderr: env.stderr,
		Stdin:  strings.NewReader(""),
		Exit: func(code int) {
			if !env.exited {
				env.exitCode = code
				env.exited = true
			}
		},
		Services: func() (*service.Services, error) {
			if env.services == nil {
				env.services = service.NewServicesWithPaths(paths, cfg, env.runner, nil)
			}
			return env.services, nil
		},
		RunTUI: func(*service.Services) error { return nil },
		RunShim: func(context.Context, []string, io.Reader, io.Writer) (int, error) {
			return 0, nil
		},
	})
	t.Cleanup(ResetDeps)
	return env
}

func writeExecutable(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("#!/bin/sh\nexit 0\n"), 0755); err != nil {
		t.Fatal(err)
	}
}

func TestDefaultDeps(t *testing.T) {
	t.Cleanup(ResetDeps)
	ResetDeps()

	if deps == nil {
		t.Fatal("deps should be set at package init")
	}
	if deps.Stdout != os.Stdout || deps.Stderr != os.Stderr || deps.Stdin != os.Stdin {
		t.Error("default deps should use the process streams")
	}
	if deps.Services == nil || deps.RunTUI == nil || deps.RunShim == nil || deps.Exit == nil {
		t.Errorf("default deps has unset fields: %+v", deps)
	}
}

func TestSetVersionInfo(t *testing.T) {
	SetVersionInfo("1.2.3", "abc123", "2026-01-01")
	defer SetVersionInfo("", "", "")

	if rootCmd.Version != "1.2.3" {
		t.Errorf("Version = %q, expected 1.2.3", rootCmd.Version)
	}
}

func TestRoot_NoArgsRunsTUI(t *testing.T) {
	env := setupTestEnv(t, false)
	var got *service.Services
	deps.RunTUI = func(s *service.Services) error {
		got = s
		return nil
	}

	rootCmd.SetArgs([]string{})
	defer rootCmd.SetArgs(nil)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute() returned error: %v", err)
	}
	if got == nil || got != env.services {
		t.Error("expected the TUI to run with the loaded services")
	}
}

func TestRunTUI_Error(t *testing.T) {
	env := setupTestEnv(t, false)
	deps.RunTUI = func(*service.Services) error { return errors.New("no tty") }

	runTUI()

	if env.exitCode != 1 {
		t.Errorf("exit code = %d, expected 1", env.exitCode)
	}
	if !strings.Contains(env.stderr.String(), "Error: Failed to run the theme selector") ||
		!strings.Contains(env.stderr.String(), "Details: no tty") {
		t.Errorf("unexpected stderr: %s", env.stderr.String())
	}
}

func TestLoadServices_Error(t *testing.T) {
	env := setupTestEnv(t, false)
	deps.Services = func() (*service.Services, error) {
		return nil, errors.New("invalid default_theme")
	}

	showCurrent(false)

	if !env.exited || env.exitCode != 1 {
		t.Error("expected exit 1")
	}
	stderr := env.stderr.String()
	for _, want := range []string{"Error: Failed to initialize", "Details: invalid default_theme", "Hint:", "selector.toml"} {
		if !strings.Contains(stderr, want) {
			t.Errorf("stderr missing %q: %s", want, stderr)
		}
	}
	if env.stdout.Len() != 0 {
		t.Error("nothing should be written to stdout")
	}
}

func TestDefaultServices_WritesLogFile(t *testing.T) {
	home := t.TempDir()
	osutil.SetProvider(&testPathProvider{home: home})
	defer osutil.ResetProvider()
	defer func() { closeLog = func() error { return nil } }()

	services, err := defaultServices()
	if err != nil {
		t.Fatalf("defaultServices() returned error: %v", err)
	}
	services.Logger.Info("hello from test")
	if err := closeLog(); err != nil {
		t.Fatalf("closeLog() returned error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(home, ".config", "rory-terminal", config.LogFile))
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	if !strings.Contains(string(data), "hello from test") {
		t.Errorf("log file = %q", data)
	}
}
