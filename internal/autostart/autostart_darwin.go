//go:build darwin

package autostart

import (
	"log/slog"
	"os"
	"path/filepath"
)

func newManager(appName, exePath string) Manager {
	home, err := os.UserHomeDir()
	if err != nil {
		slog.Debug("no home dir for launch agent", "err", err)
		return unsupported{}
	}
	return &launchAgent{
		dir:     filepath.Join(home, "Library", "LaunchAgents"),
		label:   "dev.klb." + slug(appName),
		exePath: exePath,
	}
}
