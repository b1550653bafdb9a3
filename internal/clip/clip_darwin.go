//go:build darwin

package clip

import (
	"log/slog"
)

const systemName = "macOS NSPasteboard"

// NSPasteboard keeps written data after we exit.
const holdsSelection = false

// New returns the macOS clipboard provider, falling back to pbpaste/pbcopy
// when the in-process pasteboard cannot be initialised.
func New() (Provider, error) {
	sys, err := newSystemProvider()
	if err == nil {
		return sys, nil
	}
	slog.Warn("pasteboard init failed", "err", err)

	if !osEnvironment().has(pasteboard.readCmd, pasteboard.writeCmd) {
		return nil, err
	}
	p := newHelperProvider(pasteboard)
	slog.Info("using clipboard tool", "tool", p.Name(), "timeout", p.timeout)
	return p, nil
}
