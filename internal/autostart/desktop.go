package autostart

import (
	"fmt"
	"path/filepath"
	"strings"
)

// desktopEntry is an XDG autostart entry; the file's presence is the flag.
type desktopEntry struct {
	dir     string
	appName string
	exePath string
}

func (d *desktopEntry) path() string {
	return filepath.Join(d.dir, slug(d.appName)+".desktop")
}

func (d *desktopEntry) IsEnabled() bool { return fileExists(d.path()) }

func (d *desktopEntry) Enable() error {
	if err := writeFileAtomic(d.path(), []byte(d.render()), 0o644); err != nil {
		return fmt.Errorf("write desktop entry: %w", err)
	}
	return nil
}

func (d *desktopEntry) Disable() error {
	if err := removeIfExists(d.path()); err != nil {
		return fmt.Errorf("remove desktop entry: %w", err)
	}
	return nil
}

func (d *desktopEntry) render() string {
	var b strings.Builder
	fmt.Fprintln(&b, "[Desktop Entry]")
	fmt.Fprintln(&b, "Type=Application")
	fmt.Fprintf(&b, "Name=%s\n", d.appName)
	fmt.Fprintln(&b, "Comment=Clipboard text normalizer")
	fmt.Fprintf(&b, "Exec=%s\n", quoteExec(d.exePath))
	fmt.Fprintln(&b, "Terminal=false")
	fmt.Fprintln(&b, "Categories=Utility;")
	fmt.Fprintln(&b, "X-GNOME-Autostart-enabled=true")
	fmt.Fprintln(&b, "StartupNotify=false")
	return b.String()
}

// quoteExec quotes an Exec argument following the freedesktop Desktop Entry
// rules. Inside quotes, backslash, double quote, backtick and dollar are
// escaped; the backslash is then doubled again by the string-value escaping.
func quoteExec(arg string) string {
	if !strings.ContainsAny(arg, " \t\n\"'\\><~|&;$*?#()`%=") {
		return arg
	}
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range arg {
		switch r {
		case '"', '`', '$':
			b.WriteString(`\\`)
			b.WriteRune(r)
		case '\\':
			b.WriteString(`\\\\`)
		case '%':
			b.WriteString("%%")
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
