// Package instance keeps a second dblt from starting while one is already
// watching the clipboard. The running process holds a listener on a local
// endpoint (a Unix socket, or a named pipe on Windows); a newcomer that can
// dial it backs off.
package instance

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"time"
)

// ErrAlreadyRunning is returned by Acquire when another process holds the
// endpoint.
var ErrAlreadyRunning = errors.New("dblt is already running")

const dialTimeout = 500 * time.Millisecond

// Path returns the endpoint path, overridable with $DBLT_SOCKET.
//
//   - Linux / BSD: $XDG_RUNTIME_DIR/dblt.sock, else $TMPDIR/dblt-<uid>.sock
//   - macOS:       $TMPDIR/dblt-<uid>.sock
//   - Windows:     \\.\pipe\dblt-<user>
func Path() string {
	if s := os.Getenv("DBLT_SOCKET"); s != "" {
		return s
	}
	return defaultPath()
}

// IsRunning reports whether some process is listening on the endpoint. It
// does a dial-and-close; no data is exchanged.
func IsRunning() bool {
	return isRunning(Path())
}

// Acquire claims the endpoint for this process. Close the returned Closer to
// release it.
func Acquire() (io.Closer, error) {
	return acquire(Path())
}

func isRunning(path string) bool {
	c, err := dial(path, dialTimeout)
	if err != nil {
		return false
	}
	_ = c.Close()
	return true
}

func acquire(path string) (io.Closer, error) {
	if isRunning(path) {
		return nil, ErrAlreadyRunning
	}
	// A socket nobody answers on is left over from a crashed run.
	removeStale(path)

	ln, err := listen(path)
	if err != nil {
		return nil, fmt.Errorf("listen %s: %w", path, err)
	}
	slog.Debug("instance lock acquired", "path", path)

	go serve(ln)
	return ln, nil
}

// serve accepts and drops connections so probes succeed, until ln is closed.
func serve(ln net.Listener) {
	for {
		c, err := ln.Accept()
		if err != nil {
			return
		}
		_ = c.Close()
	}
}
