package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/dblt/internal/clip"
	"go.klb.dev/dblt/internal/normalize"
)

// newProvider is swapped in tests.
var newProvider = clip.New

func newNormalizeCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "normalize",
		Short: "Normalize stdin to stdout, or the clipboard once",
		Long: `Applies the same replacements as the watcher, once.

Without flags, reads stdin and writes the normalized text to stdout:

  dblt normalize < draft.md > draft.ascii.md

With --clipboard, normalizes the current clipboard text in place. When no
clipboard tool (wl-clipboard, xclip, xsel) is installed on Linux, dblt owns the
X11 selection itself and the text would vanish when it exits, so it stays
running until another application takes the clipboard over or --hold expires.`,
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE:    func(cmd *cobra.Command, _ []string) error { return runNormalize(cmd, v) },
	}

	f := cmd.Flags()
	f.Bool("clipboard", false, "normalize the system clipboard in place")
	f.Bool("list", false, "print the replacement table and exit")
	f.Duration("hold", 30*time.Second, "with --clipboard, how long to keep owning the X11 selection when no clipboard tool is installed")
	addLoggingFlags(cmd)
	addConfigFlag(cmd)

	return cmd
}

func runNormalize(cmd *cobra.Command, v *viper.Viper) error {
	setupLogging(v)
	out := cmd.OutOrStdout()

	switch {
	case v.GetBool("list"):
		printGlyphs(out)
		return nil
	case v.GetBool("clipboard"):
		return normalizeClipboard(cmd, v.GetDuration("hold"))
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}
	_, err = io.WriteString(out, normalize.Normalize(string(data)))
	return err
}

func normalizeClipboard(cmd *cobra.Command, hold time.Duration) error {
	p, err := newProvider()
	if err != nil {
		return fmt.Errorf("clipboard: %w", err)
	}

	text, err := p.GetText(cmd.Context())
	if err != nil {
		return fmt.Errorf("read clipboard: %w", err)
	}
	if text == "" {
		fmt.Fprintln(cmd.ErrOrStderr(), "Clipboard holds no text.")
		return nil
	}
	if !normalize.NeedsNormalization(text) {
		fmt.Fprintln(cmd.ErrOrStderr(), "Clipboard text is already clean.")
		return nil
	}

	cleaned := normalize.Normalize(text)
	if err := p.SetText(cmd.Context(), cleaned); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Normalized clipboard text (%d chars).\n", len([]rune(cleaned)))

	if o, ok := p.(clip.Owner); ok {
		holdClipboard(cmd, o, hold)
	}
	return nil
}

// holdClipboard keeps the process alive while it still owns the clipboard,
// until another client takes it over, limit passes or the command's context
// ends.
func holdClipboard(cmd *cobra.Command, o clip.Owner, limit time.Duration) {
	released := o.Released()
	if released == nil || limit <= 0 {
		return
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Holding the clipboard for up to %s until another application takes it (Ctrl+C to stop).\n", limit)

	t := time.NewTimer(limit)
	defer t.Stop()
	select {
	case <-released:
	case <-cmd.Context().Done():
	case <-t.C:
		fmt.Fprintln(cmd.ErrOrStderr(), "Hold expired; the clipboard empties when dblt exits. Install xclip, xsel or wl-clipboard to keep it.")
	}
}

func printGlyphs(w io.Writer) {
	tw := tabwriter.NewWriter(w, 1, 0, 2, ' ', 0)
	_, _ = fmt.Fprintf(tw, "CODE\tGLYPH\tREPLACEMENT\tNAME\n")
	for _, g := range normalize.Glyphs() {
		_, _ = fmt.Fprintf(tw, "U+%04X\t%c\t%s\t%s\n", g.From, g.From, g.To, g.Name)
	}
	_ = tw.Flush()
}
