package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"go.klb.dev/dblt/internal/autostart"
	"go.klb.dev/dblt/internal/instance"
	"go.klb.dev/dblt/internal/tray"
	"go.klb.dev/dblt/internal/watcher"
)

// runWatch is the tool itself: the watcher polls on its own goroutine while
// the tray loop holds the main thread. Either side stopping stops both.
func runWatch(cmd *cobra.Command, v *viper.Viper) error {
	setupLogging(v)

	provider, err := newProvider()
	if err != nil {
		return fmt.Errorf("clipboard: %w", err)
	}

	lock, err := instance.Acquire()
	if errors.Is(err, instance.ErrAlreadyRunning) {
		return fmt.Errorf("%w (endpoint %s)", err, instance.Path())
	}
	if err != nil {
		return fmt.Errorf("instance lock: %w", err)
	}
	defer lock.Close()

	startup, err := newAutostart()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s %s: clipboard text normalizer\n", appName, Version)
	fmt.Fprintf(out, "Clipboard: %s\n", provider.Name())

	ui := tray.New(tray.Options{
		Title:              appName,
		Tooltip:            appName + ": clipboard text normalizer",
		Headless:           v.GetBool("headless"),
		OnExit:             cancel,
		OnAutoStartToggled: func(enabled bool) { applyAutostart(startup, enabled) },
		Out:                out,
	})
	ui.SetAutoStartChecked(startup.IsEnabled())

	var normalized atomic.Int64
	w := watcher.New(provider, watcher.WithOnNormalized(func(_, _ string) {
		ui.SetTooltip(fmt.Sprintf("%s: %d normalized", appName, normalized.Add(1)))
	}))

	slog.Info("dblt starting", "version", Version, "clipboard", provider.Name(), "tray", ui.Name())

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return w.Run(gctx) })

	runErr := ui.Run(gctx)
	cancel()
	if err := g.Wait(); err != nil {
		return err
	}
	slog.Info("dblt stopped", "normalized", normalized.Load())
	return runErr
}

// applyAutostart persists a tray toggle. Failures are logged, not surfaced.
func applyAutostart(m autostart.Manager, enabled bool) {
	var err error
	if enabled {
		err = m.Enable()
	} else {
		err = m.Disable()
	}
	if err != nil {
		slog.Warn("autostart update failed", "enabled", enabled, "err", err)
		return
	}
	slog.Info("autostart updated", "enabled", enabled)
}
