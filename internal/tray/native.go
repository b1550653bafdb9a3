//go:build windows || darwin || ((linux || freebsd || openbsd || netbsd) && !android)

package tray

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"fyne.io/systray"
)

// native drives fyne.io/systray. systray.Run owns the platform event loop
// on the calling thread; menu clicks arrive on channels that are drained by
// the onReady goroutine, and that goroutine is also the one that asks the
// loop to quit.
type native struct {
	opts Options

	mu        sync.Mutex
	autoStart bool
	ready     atomic.Bool
}

func newNative(opts Options) Controller {
	return &native{opts: opts}
}

func (*native) Name() string { return "systray" }

func (n *native) SetAutoStartChecked(checked bool) {
	n.mu.Lock()
	n.autoStart = checked
	n.mu.Unlock()
}

func (n *native) SetTooltip(text string) {
	if n.ready.Load() {
		systray.SetTooltip(text)
	}
}

func (n *native) Run(ctx context.Context) error {
	// systray.Quit only works once per process and only after the loop
	// exists, so never enter it for an already cancelled ctx.
	if ctx.Err() != nil {
		return nil
	}
	systray.Run(func() { n.serve(ctx) }, func() { slog.Debug("tray loop exited") })
	return nil
}

func (n *native) serve(ctx context.Context) {
	n.mu.Lock()
	checked := n.autoStart
	n.mu.Unlock()

	systray.SetIcon(iconBytes())
	systray.SetTooltip(n.opts.Tooltip)

	running := systray.AddMenuItem(fmt.Sprintf("%s is running", n.opts.Title), "")
	running.Disable()
	systray.AddSeparator()
	autoStart := systray.AddMenuItemCheckbox("Start with system", "Launch at login", checked)
	systray.AddSeparator()
	exit := systray.AddMenuItem("Exit", "Quit "+n.opts.Title)
	n.ready.Store(true)

	slog.Debug("tray icon ready", "autostart", checked)

	for {
		select {
		case <-ctx.Done():
			systray.Quit()
			return
		case <-autoStart.ClickedCh:
			enabled := !autoStart.Checked()
			if enabled {
				autoStart.Check()
			} else {
				autoStart.Uncheck()
			}
			n.opts.OnAutoStartToggled(enabled)
		case <-exit.ClickedCh:
			n.opts.OnExit()
			systray.Quit()
			return
		}
	}
}
