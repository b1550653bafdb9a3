//go:build unix && !linux && !darwin

package clip

import "log/slog"

// New returns a helper-based clipboard provider for the remaining Unix
// systems (FreeBSD, OpenBSD, ...), where only xclip/xsel/wl-clipboard exist.
func New() (Provider, error) {
	tool, err := resolveHelper(osEnvironment())
	if err != nil {
		return nil, err
	}
	p := newHelperProvider(tool)
	slog.Info("using clipboard tool", "tool", p.Name(), "timeout", p.timeout)
	return p, nil
}
