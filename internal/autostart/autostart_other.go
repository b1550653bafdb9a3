//go:build !unix && !windows

package autostart

func newManager(string, string) Manager { return unsupported{} }
