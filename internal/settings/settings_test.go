package settings

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestOpen_MissingFile(t *testing.T) {
	called := false
	o := NewWithFunc(filepath.Join(t.TempDir(), "config.json"), func(string) error {
		called = true
		return nil
	})

	if err := o.Open(); !errors.Is(err, ErrNoSettingsFile) {
		t.Errorf("expected ErrNoSettingsFile, got %v", err)
	}
	if called {
		t.Error("opener should not run when the file is missing")
	}
}

func TestOpen_CallsOpener(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}

	var opened string
	o := NewWithFunc(path, func(p string) error {
		opened = p
		return nil
	})

	if err := o.Open(); err != nil {
		t.Fatalf("Open() returned error: %v", err)
	}
	if opened != path {
		t.Errorf("opened %q, expected %q", opened, path)
	}
}

func TestOpen_OpenerFailureIncludesPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{}"), 0644); err != nil {
		t.Fatal(err)
	}

	o := NewWithFunc(path, func(string) error { return errors.New("xdg-open: not found") })

	err := o.Open()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("error %q should mention %q", err, path)
	}
}

func TestNew_Path(t *testing.T) {
	o := New("/tmp/config.json")
	if o.Path() != "/tmp/config.json" {
		t.Errorf("Path() = %q", o.Path())
	}
}
