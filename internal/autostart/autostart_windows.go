//go:build windows

package autostart

import (
	"errors"
	"fmt"

	"golang.org/x/sys/windows/registry"
)

const runKey = `Software\Microsoft\Windows\CurrentVersion\Run`

// runValue is a value under HKCU\...\Run; its presence is the flag.
type runValue struct {
	key     string
	name    string
	exePath string
}

func newManager(appName, exePath string) Manager {
	return &runValue{key: runKey, name: appName, exePath: exePath}
}

func (r *runValue) IsEnabled() bool {
	k, err := registry.OpenKey(registry.CURRENT_USER, r.key, registry.QUERY_VALUE)
	if err != nil {
		return false
	}
	defer k.Close()

	// Presence is enough, whatever the value type.
	_, _, err = k.GetValue(r.name, nil)
	return err == nil
}

func (r *runValue) Enable() error {
	k, _, err := registry.CreateKey(registry.CURRENT_USER, r.key, registry.SET_VALUE)
	if err != nil {
		return fmt.Errorf("open run key: %w", err)
	}
	defer k.Close()

	if err := k.SetStringValue(r.name, `"`+r.exePath+`"`); err != nil {
		return fmt.Errorf("set run value: %w", err)
	}
	return nil
}

func (r *runValue) Disable() error {
	k, err := registry.OpenKey(registry.CURRENT_USER, r.key, registry.SET_VALUE)
	if errors.Is(err, registry.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("open run key: %w", err)
	}
	defer k.Close()

	if err := k.DeleteValue(r.name); err != nil && !errors.Is(err, registry.ErrNotExist) {
		return fmt.Errorf("delete run value: %w", err)
	}
	return nil
}
