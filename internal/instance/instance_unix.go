//go:build !windows

package instance

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"time"
)

func defaultPath() string {
	if dir := os.Getenv("XDG_RUNTIME_DIR"); dir != "" {
		return filepath.Join(dir, "dblt.sock")
	}
	// The shared temp dir needs a per-user name.
	return filepath.Join(os.TempDir(), fmt.Sprintf("dblt-%d.sock", os.Getuid()))
}

func removeStale(path string) {
	if fi, err := os.Lstat(path); err == nil && fi.Mode()&os.ModeSocket != 0 {
		_ = os.Remove(path)
	}
}

func listen(path string) (net.Listener, error) {
	return net.Listen("unix", path)
}

func dial(path string, timeout time.Duration) (net.Conn, error) {
	return net.DialTimeout("unix", path, timeout)
}
