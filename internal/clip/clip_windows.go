//go:build windows

package clip

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"unsafe"

	"golang.org/x/sys/windows"
)

const (
	cfUnicodeText = 13
	gmemMoveable  = 0x0002
)

var (
	user32   = windows.NewLazySystemDLL("user32.dll")
	kernel32 = windows.NewLazySystemDLL("kernel32.dll")

	procOpenClipboard    = user32.NewProc("OpenClipboard")
	procCloseClipboard   = user32.NewProc("CloseClipboard")
	procEmptyClipboard   = user32.NewProc("EmptyClipboard")
	procGetClipboardData = user32.NewProc("GetClipboardData")
	procSetClipboardData = user32.NewProc("SetClipboardData")

	procGlobalAlloc  = kernel32.NewProc("GlobalAlloc")
	procGlobalFree   = kernel32.NewProc("GlobalFree")
	procGlobalLock   = kernel32.NewProc("GlobalLock")
	procGlobalUnlock = kernel32.NewProc("GlobalUnlock")
)

// windowsProvider reads and writes CF_UNICODETEXT directly. Every call holds
// the OS clipboard lock only between a paired OpenClipboard/CloseClipboard.
type windowsProvider struct{}

// New returns the Windows clipboard provider.
func New() (Provider, error) {
	if err := procOpenClipboard.Find(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedPlatform, err)
	}
	p := &windowsProvider{}
	slog.Info("using clipboard transport", "transport", p.Name())
	return p, nil
}

func (*windowsProvider) Name() string { return "Win32 clipboard" }

func (*windowsProvider) GetText(context.Context) (string, error) {
	closeClipboard, err := openClipboard()
	if err != nil {
		return "", err
	}
	defer closeClipboard()

	h, _, _ := procGetClipboardData.Call(cfUnicodeText)
	if h == 0 {
		return "", nil
	}
	p, _, err := procGlobalLock.Call(h)
	if p == 0 {
		return "", fmt.Errorf("GlobalLock: %w", err)
	}
	defer procGlobalUnlock.Call(h)

	return windows.UTF16PtrToString((*uint16)(unsafe.Pointer(p))), nil
}

func (*windowsProvider) SetText(_ context.Context, text string) error {
	u, err := windows.UTF16FromString(text)
	if err != nil {
		return fmt.Errorf("encode text: %w", err)
	}

	closeClipboard, err := openClipboard()
	if err != nil {
		return err
	}
	defer closeClipboard()

	if r, _, err := procEmptyClipboard.Call(); r == 0 {
		return fmt.Errorf("EmptyClipboard: %w", err)
	}

	size := uintptr(len(u)) * unsafe.Sizeof(u[0])
	h, _, err := procGlobalAlloc.Call(gmemMoveable, size)
	if h == 0 {
		return fmt.Errorf("GlobalAlloc: %w", err)
	}
	p, _, err := procGlobalLock.Call(h)
	if p == 0 {
		procGlobalFree.Call(h)
		return fmt.Errorf("GlobalLock: %w", err)
	}
	copy(unsafe.Slice((*uint16)(unsafe.Pointer(p)), len(u)), u)
	procGlobalUnlock.Call(h)

	// On success the system owns h.
	if r, _, err := procSetClipboardData.Call(cfUnicodeText, h); r == 0 {
		procGlobalFree.Call(h)
		return fmt.Errorf("SetClipboardData: %w", err)
	}
	return nil
}

// openClipboard takes the OS clipboard lock. The calling goroutine stays on
// its OS thread until the returned func releases the lock, because
// CloseClipboard must run on the thread that opened it.
func openClipboard() (func(), error) {
	runtime.LockOSThread()
	if r, _, err := procOpenClipboard.Call(0); r == 0 {
		runtime.UnlockOSThread()
		return nil, fmt.Errorf("OpenClipboard: %w", err)
	}
	return func() {
		procCloseClipboard.Call()
		runtime.UnlockOSThread()
	}, nil
}
