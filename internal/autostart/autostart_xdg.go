//go:build unix && !darwin

package autostart

import (
	"log/slog"
	"os"
	"path/filepath"
)

func newManager(appName, exePath string) Manager {
	dir, err := os.UserConfigDir()
	if err != nil {
		slog.Debug("no config dir for autostart entry", "err", err)
		return unsupported{}
	}
	return &desktopEntry{
		dir:     filepath.Join(dir, "autostart"),
		appName: appName,
		exePath: exePath,
	}
}
