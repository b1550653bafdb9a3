//go:build unix

package clip

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeEnv(vars map[string]string, installed ...string) environment {
	have := make(map[string]bool, len(installed))
	for _, c := range installed {
		have[c] = true
	}
	return environment{
		getenv: func(k string) string { return vars[k] },
		lookPath: func(c string) (string, error) {
			if have[c] {
				return "/usr/bin/" + c, nil
			}
			return "", errors.New("not found")
		},
	}
}

func TestResolveHelper(t *testing.T) {
	tests := []struct {
		name      string
		vars      map[string]string
		installed []string
		want      string
	}{
		{
			name:      "wayland session prefers wl-clipboard",
			vars:      map[string]string{"XDG_SESSION_TYPE": "wayland"},
			installed: []string{"wl-paste", "wl-copy", "xclip"},
			want:      "wl-clipboard",
		},
		{
			name:      "wayland display without session type",
			vars:      map[string]string{"WAYLAND_DISPLAY": "wayland-0"},
			installed: []string{"wl-paste", "wl-copy"},
			want:      "wl-clipboard",
		},
		{
			name:      "x11 ignores wl-clipboard",
			vars:      map[string]string{"XDG_SESSION_TYPE": "x11"},
			installed: []string{"wl-paste", "wl-copy", "xsel"},
			want:      "xsel",
		},
		{
			name:      "wayland with half of wl-clipboard falls back to xclip",
			vars:      map[string]string{"XDG_SESSION_TYPE": "Wayland"},
			installed: []string{"wl-paste", "xclip", "xsel"},
			want:      "xclip",
		},
		{
			name:      "xclip before xsel",
			installed: []string{"xsel", "xclip"},
			want:      "xclip",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tool, err := resolveHelper(fakeEnv(tt.vars, tt.installed...))
			require.NoError(t, err)
			assert.Equal(t, tt.want, tool.name)
		})
	}
}

func TestResolveHelperNoneInstalled(t *testing.T) {
	_, err := resolveHelper(fakeEnv(nil))
	require.ErrorIs(t, err, ErrNoHelper)
	assert.Contains(t, err.Error(), "xclip")

	_, err = resolveHelper(fakeEnv(map[string]string{"WAYLAND_DISPLAY": "wayland-0"}))
	require.ErrorIs(t, err, ErrNoHelper)
	assert.Contains(t, err.Error(), "wl-clipboard")
}

func shellProvider(readScript string, writeArgs ...string) *helperProvider {
	p := newHelperProvider(helperTool{
		name:      "sh",
		readCmd:   "sh",
		readArgs:  []string{"-c", readScript},
		writeCmd:  "sh",
		writeArgs: writeArgs,
	})
	return p
}

func TestHelperGetText(t *testing.T) {
	p := shellProvider(`printf 'He said “hi”'`)
	got, err := p.GetText(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "He said “hi”", got)
}

func TestHelperGetTextNonZeroExitIsAbsent(t *testing.T) {
	p := shellProvider(`printf 'partial'; exit 1`)
	got, err := p.GetText(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestHelperGetTextMissingBinary(t *testing.T) {
	p := newHelperProvider(helperTool{name: "missing", readCmd: "dblt-no-such-helper"})
	_, err := p.GetText(context.Background())
	require.Error(t, err)
}

func TestHelperTimeoutKillsProcessGroup(t *testing.T) {
	// The background sleep inherits stdout; without a group kill Run would
	// wait for it.
	p := shellProvider(`sleep 5 & sleep 5`)
	p.timeout = 100 * time.Millisecond

	start := time.Now()
	got, err := p.GetText(context.Background())
	require.ErrorIs(t, err, ErrHelperTimeout)
	assert.Empty(t, got)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestHelperIgnoresCallerCancellation(t *testing.T) {
	p := shellProvider(`printf done`)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got, err := p.GetText(ctx)
	require.NoError(t, err)
	assert.Equal(t, "done", got)
}

func TestHelperSetText(t *testing.T) {
	out := filepath.Join(t.TempDir(), "clipboard")
	p := shellProvider(`true`, "-c", `cat > "$0"`, out)

	require.NoError(t, p.SetText(context.Background(), `He said "hi"...`))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, `He said "hi"...`, string(data))
}

func TestHelperSetTextTimeout(t *testing.T) {
	p := shellProvider(`true`, "-c", `sleep 5`)
	p.timeout = 100 * time.Millisecond

	err := p.SetText(context.Background(), "x")
	require.ErrorIs(t, err, ErrHelperTimeout)
}
