//go:build linux || darwin

package clip

import (
	"context"
	"fmt"
	"sync"

	"golang.design/x/clipboard"
)

// systemProvider uses golang.design/x/clipboard, which talks to the
// pasteboard (macOS) or the X11 selection (Linux) in-process.
type systemProvider struct {
	mu       sync.Mutex
	released <-chan struct{}
}

// newSystemProvider calls clipboard.Init here rather than in init() so that
// sub-commands that never touch the clipboard don't fail on headless hosts.
func newSystemProvider() (*systemProvider, error) {
	if err := clipboard.Init(); err != nil {
		return nil, fmt.Errorf("clipboard init: %w", err)
	}
	return &systemProvider{}, nil
}

func (*systemProvider) Name() string { return systemName }

func (*systemProvider) GetText(context.Context) (string, error) {
	return string(clipboard.Read(clipboard.FmtText)), nil
}

func (p *systemProvider) SetText(_ context.Context, text string) error {
	// The returned channel is closed when someone else overwrites the
	// clipboard; the watcher notices that by polling anyway.
	released := clipboard.Write(clipboard.FmtText, []byte(text))
	if holdsSelection {
		p.mu.Lock()
		p.released = released
		p.mu.Unlock()
	}
	return nil
}

// Released implements Owner. It is nil on platforms where the pasteboard
// keeps the data after we exit.
func (p *systemProvider) Released() <-chan struct{} {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.released
}
