//go:build linux

package clip

import (
	"log/slog"
)

const systemName = "X11 selection (in-process)"

// X11 drops the selection when its owner exits.
const holdsSelection = true

// New returns the Linux clipboard provider. Helper tools are preferred since
// they work under both X11 and Wayland; the in-process X11 transport is used
// only when none is installed.
func New() (Provider, error) {
	tool, err := resolveHelper(osEnvironment())
	if err == nil {
		p := newHelperProvider(tool)
		slog.Info("using clipboard tool", "tool", p.Name(), "timeout", p.timeout)
		return p, nil
	}

	sys, serr := newSystemProvider()
	if serr != nil {
		slog.Debug("in-process clipboard unavailable", "err", serr)
		return nil, err
	}
	slog.Info("no clipboard tool found, using in-process transport", "transport", sys.Name())
	return sys, nil
}
