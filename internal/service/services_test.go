package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rlr-github/rory-themes/internal/config"
	"github.com/rlr-github/rory-themes/internal/osutil"
)

func testPaths(t *testing.T) Paths {
	tmpDir := t.TempDir()
	return Paths{
		Config:       filepath.Join(tmpDir, "selector.toml"),
		CurrentTheme: filepath.Join(tmpDir, "current-theme"),
		Settings:     filepath.Join(tmpDir, "config.json"),
	}
}

func TestNewServicesWithPaths(t *testing.T) {
	services := NewServicesWithPaths(testPaths(t), config.DefaultConfig(), &fakeRunner{}, nil)

	if services == nil {
		t.Fatal("expected non-nil services")
	}
	if services.Catalog == nil {
		t.Error("expected non-nil Catalog")
	}
	if services.Applier == nil {
		t.Error("expected non-nil Applier")
	}
	if services.Config == nil {
		t.Error("expected non-nil Config service")
	}
	if services.Settings == nil {
		t.Error("expected non-nil Settings opener")
	}
	if services.Logger == nil {
		t.Error("expected a discard logger when nil is passed")
	}
}

func TestNewServicesWithPaths_UsesConfig(t *testing.T) {
	installDir := setupInstall(t, "exit 0", "christmas")
	cfg := config.DefaultConfig()
	cfg.DefaultTheme = "halloween"
	cfg.InstallDirs = []string{installDir}
	cfg.Launcher = "/usr/bin/true"

	r := &fakeRunner{}
	paths := testPaths(t)
	services := NewServicesWithPaths(paths, cfg, r, nil)

	if got := services.Applier.CurrentTheme(); got != "halloween" {
		t.Errorf("CurrentTheme() = %q, expected configured default", got)
	}
	if dir, err := services.Applier.InstallDir(); err != nil || dir != installDir {
		t.Errorf("InstallDir() = %q, %v; expected %q", dir, err, installDir)
	}
	if _, err := services.Applier.StartPreview("christmas"); err != nil {
		t.Fatalf("StartPreview() returned error: %v", err)
	}
	if r.starts[0].name != "/usr/bin/true" {
		t.Errorf("launcher = %q, expected configured override", r.starts[0].name)
	}
	services.Applier.Shutdown()

	if services.Settings.Path() != paths.Settings {
		t.Errorf("Settings.Path() = %q", services.Settings.Path())
	}
	if services.Config.GetPath() != paths.Config {
		t.Errorf("Config.GetPath() = %q", services.Config.GetPath())
	}
}

func TestNewServices(t *testing.T) {
	home := t.TempDir()
	osutil.SetProvider(&testPathProvider{home: home})
	defer osutil.ResetProvider()

	services, err := NewServices(nil)
	if err != nil {
		t.Fatalf("NewServices() returned error: %v", err)
	}
	want := filepath.Join(home, ".config", "rory-terminal", "selector.toml")
	if services.Config.GetPath() != want {
		t.Errorf("config path = %q, expected %q", services.Config.GetPath(), want)
	}
}

func TestServicesIntegration(t *testing.T) {
	installDir := setupInstall(t, "exit 0")
	cfg := config.DefaultConfig()
	cfg.InstallDirs = []string{installDir}

	services := NewServicesWithPaths(testPaths(t), cfg, &fakeRunner{}, nil)

	if _, err := services.Applier.Apply(context.Background(), "matrix"); err != nil {
		t.Fatalf("Apply() returned error: %v", err)
	}
	if services.Applier.CurrentTheme() != "matrix" {
		t.Errorf("CurrentTheme() = %q, expected matrix", services.Applier.CurrentTheme())
	}

	if err := services.Config.Init(); err != nil {
		t.Fatalf("Config.Init() returned error: %v", err)
	}
	if !services.Config.Exists() {
		t.Error("config file should exist after Init")
	}
}

// testPathProvider roots every lookup in a temporary home directory.
type testPathProvider struct {
	home string
}

func (p *testPathProvider) UserHomeDir() (string, error) { return p.home, nil }
func (p *testPathProvider) Getenv(string) string         { return "" }
func (p *testPathProvider) Executable() (string, error) {
	return filepath.Join(p.home, "bin", "rory-themes"), nil
}
func (p *testPathProvider) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}
