package autostart

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"path/filepath"
)

// launchAgent is a per-user launchd job with RunAtLoad; the plist's
// presence is the flag.
type launchAgent struct {
	dir     string
	label   string
	exePath string
}

func (l *launchAgent) path() string {
	return filepath.Join(l.dir, l.label+".plist")
}

func (l *launchAgent) IsEnabled() bool { return fileExists(l.path()) }

func (l *launchAgent) Enable() error {
	data, err := l.render()
	if err != nil {
		return err
	}
	if err := writeFileAtomic(l.path(), data, 0o644); err != nil {
		return fmt.Errorf("write launch agent: %w", err)
	}
	return nil
}

func (l *launchAgent) Disable() error {
	if err := removeIfExists(l.path()); err != nil {
		return fmt.Errorf("remove launch agent: %w", err)
	}
	return nil
}

func (l *launchAgent) render() ([]byte, error) {
	var label, exe bytes.Buffer
	if err := xml.EscapeText(&label, []byte(l.label)); err != nil {
		return nil, err
	}
	if err := xml.EscapeText(&exe, []byte(l.exePath)); err != nil {
		return nil, err
	}
	return fmt.Appendf(nil, `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>Label</key>
	<string>%s</string>
	<key>ProgramArguments</key>
	<array>
		<string>%s</string>
	</array>
	<key>RunAtLoad</key>
	<true/>
	<key>ProcessType</key>
	<string>Interactive</string>
</dict>
</plist>
`, label.String(), exe.String()), nil
}
