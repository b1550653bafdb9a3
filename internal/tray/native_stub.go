//go:build !windows && !darwin && !((linux || freebsd || openbsd || netbsd) && !android)

package tray

import "errors"

const installHint = ""

func available() error {
	return errors.New("no tray support on this platform")
}

func newNative(opts Options) Controller {
	return &headless{opts: opts}
}
