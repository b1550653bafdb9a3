//go:build !unix && !windows

package clip

// New reports that no clipboard transport exists for this platform.
func New() (Provider, error) {
	return nil, ErrUnsupportedPlatform
}
