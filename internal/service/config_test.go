package service

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/rlr-github/rory-themes/internal/config"
)

func TestNewConfigService(t *testing.T) {
	svc := NewConfigService("/tmp/selector.toml", config.DefaultConfig())
	if svc == nil {
		t.Fatal("expected non-nil service")
	}
}

func TestConfigService_Get(t *testing.T) {
	cfg := config.DefaultConfig()
	svc := NewConfigService("/tmp/selector.toml", cfg)

	result := svc.Get()
	if result.DefaultTheme != cfg.DefaultTheme {
		t.Errorf("expected DefaultTheme %q, got %q", cfg.DefaultTheme, result.DefaultTheme)
	}
	if result.UITint != cfg.UITint {
		t.Errorf("expected UITint %q, got %q", cfg.UITint, result.UITint)
	}
}

func TestConfigService_GetPath(t *testing.T) {
	svc := NewConfigService("/tmp/test/selector.toml", config.DefaultConfig())

	if path := svc.GetPath(); path != "/tmp/test/selector.toml" {
		t.Errorf("expected path '/tmp/test/selector.toml', got %q", path)
	}
}

func TestConfigService_Exists(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "selector.toml")
	svc := NewConfigService(configPath, config.DefaultConfig())

	if svc.Exists() {
		t.Error("expected Exists() to return false")
	}

	if err := os.WriteFile(configPath, []byte("test"), 0644); err != nil {
		t.Fatal(err)
	}

	if !svc.Exists() {
		t.Error("expected Exists() to return true")
	}
}

func TestConfigService_Update(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "selector.toml")
	svc := NewConfigService(configPath, config.DefaultConfig())

	newCfg := config.DefaultConfig()
	newCfg.DefaultTheme = "Matrix"
	newCfg.StopGrace = "500ms"

	if err := svc.Update(newCfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	result := svc.Get()
	if result.DefaultTheme != "matrix" {
		t.Errorf("expected normalized DefaultTheme 'matrix', got %q", result.DefaultTheme)
	}

	content, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(content), `stop_grace = "500ms"`) {
		t.Errorf("written config missing stop_grace:\n%s", content)
	}
}

func TestConfigService_Modify_Concurrent(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "selector.toml")
	svc := NewConfigService(configPath, config.DefaultConfig())

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			if err := svc.Modify(func(cfg *config.Config) { cfg.UITint = "nord" }); err != nil {
				t.Errorf("Modify(ui_tint) returned error: %v", err)
			}
		}()
		go func() {
			defer wg.Done()
			if err := svc.Modify(func(cfg *config.Config) { cfg.LogLevel = "debug" }); err != nil {
				t.Errorf("Modify(log_level) returned error: %v", err)
			}
			_ = svc.Get()
		}()
	}
	wg.Wait()

	got := svc.Get()
	if got.UITint != "nord" || got.LogLevel != "debug" {
		t.Errorf("concurrent Modify lost a change: ui_tint=%q log_level=%q", got.UITint, got.LogLevel)
	}

	if err := svc.Reload(); err != nil {
		t.Fatalf("Reload() returned error: %v", err)
	}
	if onDisk := svc.Get(); onDisk.UITint != "nord" || onDisk.LogLevel != "debug" {
		t.Errorf("file lost a change: ui_tint=%q log_level=%q", onDisk.UITint, onDisk.LogLevel)
	}
}

func TestConfigService_Modify_InvalidLeavesConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "selector.toml")
	svc := NewConfigService(configPath, config.DefaultConfig())

	if err := svc.Modify(func(cfg *config.Config) { cfg.DefaultTheme = "summer" }); err == nil {
		t.Error("expected error for invalid config")
	}
	if svc.Get().DefaultTheme != config.DefaultConfig().DefaultTheme {
		t.Error("in-memory config should be unchanged")
	}
}

func TestConfigService_Update_InvalidConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "selector.toml")
	svc := NewConfigService(configPath, config.DefaultConfig())

	invalid := config.DefaultConfig()
	invalid.DefaultTheme = "summer"

	if err := svc.Update(invalid); err == nil {
		t.Error("expected error for invalid config")
	}
	if svc.Exists() {
		t.Error("invalid config should not be written")
	}
	if svc.Get().DefaultTheme != config.DefaultConfig().DefaultTheme {
		t.Error("in-memory config should be unchanged")
	}
}

func TestConfigService_Init(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "selector.toml")
	svc := NewConfigService(configPath, config.DefaultConfig())

	if err := svc.Init(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !svc.Exists() {
		t.Error("expected config file to exist after Init")
	}

	// The sample must load back cleanly.
	if err := svc.Reload(); err != nil {
		t.Errorf("sample config failed to reload: %v", err)
	}
}

func TestConfigService_Init_AlreadyExists(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "selector.toml")
	if err := os.WriteFile(configPath, []byte("existing"), 0644); err != nil {
		t.Fatal(err)
	}

	svc := NewConfigService(configPath, config.DefaultConfig())
	if err := svc.Init(); err == nil {
		t.Error("expected error when config file already exists")
	}
}

func TestConfigService_Reload(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "selector.toml")
	content := `
default_theme = "easter"
log_level = "debug"
`
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	svc := NewConfigService(configPath, config.DefaultConfig())
	if err := svc.Reload(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	result := svc.Get()
	if result.DefaultTheme != "easter" {
		t.Errorf("expected DefaultTheme 'easter', got %q", result.DefaultTheme)
	}
	if result.LogLevel != "debug" {
		t.Errorf("expected LogLevel 'debug', got %q", result.LogLevel)
	}
}

func TestConfigService_Reload_InvalidFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "selector.toml")
	if err := os.WriteFile(configPath, []byte("invalid toml {{{"), 0644); err != nil {
		t.Fatal(err)
	}

	svc := NewConfigService(configPath, config.DefaultConfig())
	if err := svc.Reload(); err == nil {
		t.Error("expected error for invalid config file")
	}
}
