package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"go.klb.dev/dblt/internal/autostart"
)

// newAutostart is swapped in tests.
var newAutostart = func() (autostart.Manager, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("locate executable: %w", err)
	}
	return autostart.New(appName, exe), nil
}

func newAutostartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "autostart [enable|disable]",
		Short: "Show or change whether dblt starts at login",
		Long: `Without an argument, prints whether dblt starts at login. "enable" and
"disable" change it; this is the same setting as the tray's
"Start with system" item.`,
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"enable", "disable"},
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := newAutostart()
			if err != nil {
				return err
			}
			if len(args) == 1 {
				if args[0] == "enable" {
					err = m.Enable()
				} else {
					err = m.Disable()
				}
				if err != nil {
					return fmt.Errorf("autostart %s: %w", args[0], err)
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Start with system: %s\n", onOff(m.IsEnabled()))
			return nil
		},
	}
}

func onOff(b bool) string {
	if b {
		return "enabled"
	}
	return "disabled"
}
