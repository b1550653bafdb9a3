// Package clip reads and writes plain text on the system clipboard.
// Build constraints select the implementation:
//
//	clip_windows.go : Win32 clipboard through golang.org/x/sys/windows
//	clip_linux.go   : wl-clipboard / xclip / xsel helpers, golang.design/x/clipboard fallback
//	clip_darwin.go  : golang.design/x/clipboard, pbpaste/pbcopy fallback
//	clip_bsd.go     : helpers only
//	clip_other.go   : unsupported
package clip

import (
	"context"
	"errors"
)

var (
	// ErrUnsupportedPlatform is returned by New on platforms without any
	// clipboard transport.
	ErrUnsupportedPlatform = errors.New("clipboard: unsupported platform")

	// ErrNoHelper is returned by New when no clipboard helper tool is
	// installed and no native transport is usable.
	ErrNoHelper = errors.New("no supported clipboard tool found")

	// ErrHelperTimeout is returned when a helper process did not finish in
	// time and was killed.
	ErrHelperTimeout = errors.New("clipboard tool timed out")
)

// Provider is the interface that all platform clipboard implementations
// satisfy. Errors are transient: callers treat a failed read as "no text"
// and a failed write as "no effect", and try again on their own schedule.
type Provider interface {
	// Name returns a human-readable name for the transport.
	Name() string

	// GetText returns the current clipboard text. An empty string with a
	// nil error means the clipboard holds no text.
	GetText(ctx context.Context) (string, error)

	// SetText replaces the clipboard contents with text.
	SetText(ctx context.Context, text string) error
}

// Owner is implemented by providers whose writes last only while this
// process is alive, such as the in-process X11 selection. Released returns
// a channel closed once another client takes the clipboard, or nil when
// nothing is held.
type Owner interface {
	Released() <-chan struct{}
}
