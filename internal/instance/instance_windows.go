//go:build windows

package instance

import (
	"net"
	"os"
	"time"

	"github.com/Microsoft/go-winio"
)

func defaultPath() string {
	return `\\.\pipe\dblt-` + os.Getenv("USERNAME")
}

// Named pipes vanish with their last handle.
func removeStale(string) {}

func listen(path string) (net.Listener, error) {
	return winio.ListenPipe(path, nil)
}

func dial(path string, timeout time.Duration) (net.Conn, error) {
	return winio.DialPipe(path, &timeout)
}
