// Package tray shows the status-area icon and its menu. A native controller
// is used where the platform has a tray host; otherwise a headless
// controller prints guidance and simply waits for cancellation.
package tray

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Controller is a status-area icon with a blocking event loop.
type Controller interface {
	// Name identifies the implementation in logs.
	Name() string

	// SetAutoStartChecked sets the initial state of the "Start with system"
	// item. Call before Run.
	SetAutoStartChecked(checked bool)

	// SetTooltip updates the icon tooltip. Safe from any goroutine.
	SetTooltip(text string)

	// Run blocks on the tray event loop until the user picks Exit or ctx is
	// cancelled. It must be called from the main goroutine.
	Run(ctx context.Context) error
}

// Options configures a Controller. The callbacks run on the tray's event
// goroutine and must return quickly.
type Options struct {
	Title   string
	Tooltip string

	// Headless skips the native icon even when one is available.
	Headless bool

	// OnExit is called when the user picks Exit.
	OnExit func()

	// OnAutoStartToggled is called with the new state of the
	// "Start with system" item. The controller does not persist it.
	OnAutoStartToggled func(enabled bool)

	// Out receives the headless guidance text. Defaults to os.Stdout.
	Out io.Writer
}

// probe reports why no native tray host can be used, or nil.
var probe = available

// New returns a native controller when the platform has a tray host and a
// headless one otherwise.
func New(opts Options) Controller {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.OnExit == nil {
		opts.OnExit = func() {}
	}
	if opts.OnAutoStartToggled == nil {
		opts.OnAutoStartToggled = func(bool) {}
	}

	if opts.Headless {
		slog.Info("tray icon disabled, running headless")
		return &headless{opts: opts}
	}
	if err := probe(); err != nil {
		slog.Info("tray icon unavailable, running headless", "reason", err)
		return &headless{opts: opts}
	}
	return newNative(opts)
}

// headless stands in for the icon when there is none. It never calls
// OnExit; only cancellation stops it.
type headless struct {
	opts Options
}

func (*headless) Name() string            { return "headless" }
func (*headless) SetAutoStartChecked(bool) {}
func (*headless) SetTooltip(string)        {}

func (h *headless) Run(ctx context.Context) error {
	w := h.opts.Out
	fmt.Fprintf(w, "%s is running in background mode (no tray icon).\n", h.opts.Title)
	fmt.Fprintln(w, "Press Ctrl+C to stop.")
	if installHint != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, installHint)
	}

	<-ctx.Done()
	return nil
}
