// Package watcher implements the loop that owns the system clipboard: it
// polls a clip.Provider, normalizes newly copied text and writes the result
// back, while ignoring the echo of its own writes.
package watcher

import (
	"context"
	"log/slog"
	"time"
	"unsafe"

	"go.klb.dev/dblt/internal/clip"
	"go.klb.dev/dblt/internal/normalize"
)

const (
	// PollInterval is the delay between two clipboard reads.
	PollInterval = 150 * time.Millisecond

	// SuppressionWindow is how long after a write an identical read is
	// treated as the echo of that write.
	SuppressionWindow = 2 * time.Second

	previewLen = 120
)

// Outcome is the result of a single poll cycle.
type Outcome int

const (
	// Absent: the clipboard held no text.
	Absent Outcome = iota
	// Fault: the provider failed; retried on the next cycle.
	Fault
	// Unchanged: same text as the previous poll.
	Unchanged
	// SelfEcho: our own recent write reappeared.
	SelfEcho
	// Clean: new text that needed no normalization.
	Clean
	// Normalized: new text was normalized and written back.
	Normalized
)

func (o Outcome) String() string {
	switch o {
	case Absent:
		return "absent"
	case Fault:
		return "fault"
	case Unchanged:
		return "unchanged"
	case SelfEcho:
		return "self-echo"
	case Clean:
		return "clean"
	case Normalized:
		return "normalized"
	default:
		return "unknown"
	}
}

// Watcher is the clipboard watch loop. Its state is confined to the
// goroutine calling Run (or Poll); it is not safe for concurrent use.
type Watcher struct {
	provider     clip.Provider
	normalize    func(string) string
	now          func() time.Time
	interval     time.Duration
	onNormalized func(before, after string)

	lastSeen      string
	lastWritten   string
	lastWrittenAt time.Time
	wrote         bool
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(w *Watcher) { w.now = now }
}

// WithInterval overrides PollInterval.
func WithInterval(d time.Duration) Option {
	return func(w *Watcher) { w.interval = d }
}

// WithNormalizer replaces normalize.Normalize.
func WithNormalizer(fn func(string) string) Option {
	return func(w *Watcher) { w.normalize = fn }
}

// WithOnNormalized registers fn to be called after every successful
// write-back. fn runs on the watcher goroutine and must not block.
func WithOnNormalized(fn func(before, after string)) Option {
	return func(w *Watcher) { w.onNormalized = fn }
}

// New creates a watcher but does not start it.
func New(p clip.Provider, opts ...Option) *Watcher {
	w := &Watcher{
		provider:  p,
		normalize: normalize.Normalize,
		now:       time.Now,
		interval:  PollInterval,
	}
	for _, o := range opts {
		o(w)
	}
	return w
}

// Run polls until ctx is cancelled. A cycle already in progress is finished
// first; cancellation during the sleep between cycles returns immediately.
func (w *Watcher) Run(ctx context.Context) error {
	slog.Info("clipboard watcher started", "provider", w.provider.Name(), "interval", w.interval)
	defer slog.Info("clipboard watcher stopped")

	t := time.NewTimer(w.interval)
	defer t.Stop()
	for {
		if ctx.Err() != nil {
			return nil
		}
		w.Poll(ctx)

		t.Reset(w.interval)
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
		}
	}
}

// Poll runs one read/compare/normalize/write cycle.
func (w *Watcher) Poll(ctx context.Context) Outcome {
	current, err := w.provider.GetText(ctx)
	if err != nil {
		slog.Debug("clipboard read failed", "err", err)
		return Fault
	}
	if current == "" {
		return Absent
	}
	if current == w.lastSeen {
		return Unchanged
	}
	w.lastSeen = current

	if w.wrote && current == w.lastWritten && w.now().Sub(w.lastWrittenAt) < SuppressionWindow {
		return SelfEcho
	}

	cleaned := w.normalize(current)
	if sameString(cleaned, current) {
		return Clean
	}

	if err := w.provider.SetText(ctx, cleaned); err != nil {
		slog.Debug("clipboard write failed", "err", err)
		return Fault
	}
	w.lastWritten = cleaned
	w.lastWrittenAt = w.now()
	w.wrote = true

	slog.Info("normalized clipboard text", "before_chars", len([]rune(current)), "after_chars", len([]rune(cleaned)))
	if slog.Default().Enabled(ctx, slog.LevelDebug) {
		slog.Debug("clipboard text", "before", preview(current), "after", preview(cleaned))
	}
	if w.onNormalized != nil {
		w.onNormalized(current, cleaned)
	}
	return Normalized
}

// sameString compares by identity first, since a normalizer returns its
// argument untouched when nothing matched, then by value.
func sameString(a, b string) bool {
	if len(a) == len(b) && unsafe.StringData(a) == unsafe.StringData(b) {
		return true
	}
	return a == b
}

func preview(s string) string {
	r := []rune(s)
	if len(r) > previewLen {
		return string(r[:previewLen]) + "…"
	}
	return s
}
