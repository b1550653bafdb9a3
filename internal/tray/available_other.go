//go:build windows || darwin

package tray

const installHint = ""

func available() error { return nil }
