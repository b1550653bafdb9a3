// dblt: rewrites smart punctuation on the clipboard to plain ASCII.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/dblt/internal/logging"
)

// Version is set at build time via -ldflags "-X main.Version=x.y.z".
var Version = "dev"

const appName = "DBLT"

func init() {
	// The tray's event loop must run on the main OS thread, and main() is
	// the goroutine that ends up calling it.
	runtime.LockOSThread()
}

func main() {
	loadDotEnv()
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:   "dblt",
		Short: "Clipboard smart punctuation normalizer",
		Long: `dblt watches the system clipboard and rewrites typographic punctuation
in copied text to plain ASCII: em and en dashes and the ellipsis become "...",
curly quotes become straight quotes. Everything else is left untouched.

Run without arguments to start watching. A tray icon offers "Start with
system" and "Exit"; without a tray host dblt runs headless until Ctrl+C.

Config file search order (first found wins):
  /etc/dblt/dblt.toml
  $HOME/.config/dblt/dblt.toml
  path supplied via --config

All flags can be set via DBLT_<FLAG> env vars or config-file keys. A .env file
next to the executable is loaded into the environment first.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PreRunE:      func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE:         func(cmd *cobra.Command, _ []string) error { return runWatch(cmd, v) },
	}

	f := root.Flags()
	f.Bool("headless", false, "never show a tray icon")
	addLoggingFlags(root)
	addConfigFlag(root)

	root.AddCommand(
		newNormalizeCmd(),
		newAutostartCmd(),
		newStatusCmd(),
		newVersionCmd(),
	)
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "dblt %s\n", Version)
		},
	}
}

// resolveLogging maps the logging flags to a format and level. Interactive
// runs get tinter output and debug level unless told otherwise.
func resolveLogging(interactive bool, formatStr, levelStr string) (logging.Format, slog.Level) {
	format := logging.ParseFormat(formatStr)
	if interactive && format == logging.FormatAuto {
		format = logging.FormatText
	}
	level := logging.ParseLevel(levelStr)
	if levelStr == "" {
		if interactive {
			level = logging.ParseLevel("debug")
		} else {
			level = logging.ParseLevel("info")
		}
	}
	return format, level
}
