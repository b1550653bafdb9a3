//go:build unix

package clip

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"syscall"
	"time"
)

const (
	// HelperTimeout bounds every helper invocation.
	HelperTimeout = 2 * time.Second

	helperWaitDelay = 250 * time.Millisecond
)

// helperTool describes an external clipboard program pair.
type helperTool struct {
	name      string
	readCmd   string
	readArgs  []string
	writeCmd  string
	writeArgs []string
}

var (
	wlClipboard = helperTool{
		name:     "wl-clipboard",
		readCmd:  "wl-paste",
		readArgs: []string{"--no-newline", "-t", "text/plain"},
		writeCmd: "wl-copy",
	}
	xclip = helperTool{
		name:      "xclip",
		readCmd:   "xclip",
		readArgs:  []string{"-selection", "clipboard", "-o"},
		writeCmd:  "xclip",
		writeArgs: []string{"-selection", "clipboard", "-i"},
	}
	xsel = helperTool{
		name:      "xsel",
		readCmd:   "xsel",
		readArgs:  []string{"--clipboard", "--output"},
		writeCmd:  "xsel",
		writeArgs: []string{"--clipboard", "--input"},
	}
	pasteboard = helperTool{
		name:     "pbcopy/pbpaste",
		readCmd:  "pbpaste",
		writeCmd: "pbcopy",
	}
)

// environment is the slice of the process environment that helper
// resolution depends on.
type environment struct {
	getenv   func(string) string
	lookPath func(string) (string, error)
}

func osEnvironment() environment {
	return environment{getenv: os.Getenv, lookPath: exec.LookPath}
}

func (e environment) has(cmds ...string) bool {
	for _, c := range cmds {
		if _, err := e.lookPath(c); err != nil {
			return false
		}
	}
	return true
}

// isWayland reports whether the session is a Wayland session.
func (e environment) isWayland() bool {
	if strings.EqualFold(e.getenv("XDG_SESSION_TYPE"), "wayland") {
		return true
	}
	return e.getenv("WAYLAND_DISPLAY") != ""
}

// resolveHelper picks the clipboard helper to use for the session:
// wl-clipboard on Wayland, then xclip, then xsel.
func resolveHelper(env environment) (helperTool, error) {
	wayland := env.isWayland()
	if wayland && env.has(wlClipboard.readCmd, wlClipboard.writeCmd) {
		return wlClipboard, nil
	}
	for _, t := range []helperTool{xclip, xsel} {
		if env.has(t.readCmd) {
			return t, nil
		}
	}

	hint := "install xclip or xsel (e.g. sudo apt install xclip)"
	if wayland {
		hint = "install wl-clipboard (e.g. sudo apt install wl-clipboard) for native Wayland support, or xclip/xsel for XWayland"
	}
	return helperTool{}, fmt.Errorf("%w: %s", ErrNoHelper, hint)
}

// helperProvider talks to the clipboard by spawning a helper per call.
type helperProvider struct {
	tool    helperTool
	timeout time.Duration
}

func newHelperProvider(tool helperTool) *helperProvider {
	return &helperProvider{tool: tool, timeout: HelperTimeout}
}

func (p *helperProvider) Name() string { return p.tool.name }

// GetText runs the read helper. A non-zero exit is how several helpers
// report an empty clipboard, so it yields no text rather than an error.
func (p *helperProvider) GetText(ctx context.Context) (string, error) {
	var out bytes.Buffer
	err := p.run(ctx, p.tool.readCmd, p.tool.readArgs, nil, &out)
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return out.String(), nil
}

func (p *helperProvider) SetText(ctx context.Context, text string) error {
	return p.run(ctx, p.tool.writeCmd, p.tool.writeArgs, strings.NewReader(text), nil)
}

// run executes one helper in its own process group. The call is bounded by
// p.timeout only; cancellation of ctx does not cut a cycle short. On timeout
// the whole group is killed, since wl-copy and xclip fork children.
func (p *helperProvider) run(ctx context.Context, name string, args []string, stdin io.Reader, stdout io.Writer) error {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), p.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		return syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
	}
	cmd.WaitDelay = helperWaitDelay

	err := cmd.Run()
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", name, ErrHelperTimeout)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}
