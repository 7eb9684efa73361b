// Package osutil provides abstractions for OS-level operations to enable testing.
package osutil

import (
	"os"
	"path/filepath"
)

// PathProvider abstracts the OS lookups used to resolve per-user and
// installation paths.
type PathProvider interface {
	UserHomeDir() (string, error)
	Getenv(key string) string
	Executable() (string, error)
	MkdirAll(path string, perm os.FileMode) error
}

// DefaultPathProvider uses real OS functions.
type DefaultPathProvider struct{}

// UserHomeDir returns the current user's home directory.
func (DefaultPathProvider) UserHomeDir() (string, error) {
	return os.UserHomeDir()
}

// Getenv returns the value of the environment variable named by key.
func (DefaultPathProvider) Getenv(key string) string {
	return os.Getenv(key)
}

// Executable returns the path of the running binary.
func (DefaultPathProvider) Executable() (string, error) {
	return os.Executable()
}

// MkdirAll creates a directory named path, along with any necessary parents.
func (DefaultPathProvider) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// Provider is the package-level path provider instance.
// In production, this is DefaultPathProvider. Tests can replace it.
var Provider PathProvider = DefaultPathProvider{}

// SetProvider sets a custom provider (for testing).
func SetProvider(p PathProvider) {
	Provider = p
}

// ResetProvider resets to the default provider.
func ResetProvider() {
	Provider = DefaultPathProvider{}
}

// XDGDir resolves an XDG base directory: the value of envKey when it is set
// to an absolute path, otherwise fallback joined onto the home directory.
func XDGDir(envKey string, fallback ...string) (string, error) {
	if dir := Provider.Getenv(envKey); dir != "" && filepath.IsAbs(dir) {
		return dir, nil
	}
	home, err := Provider.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(append([]string{home}, fallback...)...), nil
}

// Exists reports whether path exists.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsDir reports whether path exists and is a directory.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
