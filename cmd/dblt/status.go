package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.klb.dev/dblt/internal/instance"
)

type statusReport struct {
	Running   bool   `json:"running"`
	Endpoint  string `json:"endpoint"`
	AutoStart bool   `json:"autostart"`
	Clipboard string `json:"clipboard"`
	Version   string `json:"version"`
}

// isRunning is swapped in tests.
var isRunning = instance.IsRunning

func newStatusCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show whether dblt is running and how it is set up",
		Long: `Reports whether a dblt instance holds the local endpoint, whether it
starts at login, and which clipboard transport this host would use.`,
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE:    func(cmd *cobra.Command, _ []string) error { return runStatus(cmd, v) },
	}

	cmd.Flags().Bool("json", false, "output JSON")
	addLoggingFlags(cmd)
	addConfigFlag(cmd)

	return cmd
}

func runStatus(cmd *cobra.Command, v *viper.Viper) error {
	setupLogging(v)

	r := statusReport{
		Running:  isRunning(),
		Endpoint: instance.Path(),
		Version:  Version,
	}
	if m, err := newAutostart(); err == nil {
		r.AutoStart = m.IsEnabled()
	}
	if p, err := newProvider(); err != nil {
		r.Clipboard = "unavailable: " + err.Error()
	} else {
		r.Clipboard = p.Name()
	}

	out := cmd.OutOrStdout()
	if v.GetBool("json") {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}

	w := tabwriter.NewWriter(out, 1, 0, 2, ' ', 0)
	running := "no"
	if r.Running {
		running = "yes"
	}
	fmt.Fprintf(w, "Running:\t%s\n", running)
	fmt.Fprintf(w, "Endpoint:\t%s\n", r.Endpoint)
	fmt.Fprintf(w, "Start with system:\t%s\n", onOff(r.AutoStart))
	fmt.Fprintf(w, "Clipboard:\t%s\n", r.Clipboard)
	fmt.Fprintf(w, "Version:\t%s\n", r.Version)
	return w.Flush()
}
