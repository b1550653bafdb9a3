// Package autostart persists the "run at login" flag with whatever the
// host OS uses for that: an XDG desktop entry, a registry Run value or a
// LaunchAgent.
package autostart

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// ErrUnsupported is returned by Enable on platforms without a known
// login-item mechanism.
var ErrUnsupported = errors.New("autostart is not supported on this platform")

// Manager reads and writes the login-item flag. It performs local I/O only
// and is fast enough to call from the tray event loop.
type Manager interface {
	IsEnabled() bool
	Enable() error
	Disable() error
}

// New returns the Manager for the current platform. exePath is what the
// login item starts; it is made absolute.
func New(appName, exePath string) Manager {
	if abs, err := filepath.Abs(exePath); err == nil {
		exePath = abs
	}
	return newManager(appName, exePath)
}

// writeFileAtomic replaces path so that a concurrent reader never sees a
// half-written file.
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(perm); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

func removeIfExists(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func slug(appName string) string {
	return strings.ToLower(strings.ReplaceAll(appName, " ", "-"))
}

type unsupported struct{}

func (unsupported) IsEnabled() bool { return false }
func (unsupported) Enable() error   { return ErrUnsupported }
func (unsupported) Disable() error  { return nil }
