//go:build (linux || freebsd || openbsd || netbsd) && !android

package tray

import (
	"errors"
	"fmt"

	"github.com/godbus/dbus/v5"
)

const watcherName = "org.kde.StatusNotifierWatcher"

const installHint = `Tip: the tray icon needs a StatusNotifierItem host on the session bus.
  GNOME: sudo apt install gnome-shell-extension-appindicator
  KDE Plasma, XFCE, Cinnamon and waybar provide one out of the box.`

// available checks that some tray host owns the StatusNotifierWatcher name;
// without one, systray would run but nothing would ever be shown.
func available() error {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return fmt.Errorf("session bus: %w", err)
	}
	defer conn.Close()

	var owned bool
	if err := conn.BusObject().Call("org.freedesktop.DBus.NameHasOwner", 0, watcherName).Store(&owned); err != nil {
		return fmt.Errorf("query %s: %w", watcherName, err)
	}
	if !owned {
		return errors.New("no " + watcherName + " on the session bus")
	}
	return nil
}
