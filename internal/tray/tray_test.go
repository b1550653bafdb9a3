package tray

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"image/png"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withProbe(t *testing.T, fn func() error) {
	t.Helper()
	old := probe
	probe = fn
	t.Cleanup(func() { probe = old })
}

func TestNewHeadlessRequested(t *testing.T) {
	withProbe(t, func() error {
		t.Fatal("probe must not run when headless is requested")
		return nil
	})

	c := New(Options{Title: "DBLT", Headless: true})
	assert.Equal(t, "headless", c.Name())
}

func TestNewFallsBackWhenUnavailable(t *testing.T) {
	withProbe(t, func() error { return errors.New("no tray host") })

	c := New(Options{Title: "DBLT"})
	assert.Equal(t, "headless", c.Name())
}

func TestHeadlessRunBlocksUntilCancelled(t *testing.T) {
	var out bytes.Buffer
	exited := false
	c := New(Options{
		Title:    "DBLT",
		Headless: true,
		Out:      &out,
		OnExit:   func() { exited = true },
	})
	c.SetAutoStartChecked(true)
	c.SetTooltip("ignored")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- c.Run(ctx) }()

	select {
	case <-done:
		t.Fatal("headless Run returned before cancellation")
	case <-time.After(50 * time.Millisecond):
	}

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("headless Run did not return after cancellation")
	}

	assert.False(t, exited)
	assert.Contains(t, out.String(), "DBLT is running in background mode (no tray icon).")
	assert.Contains(t, out.String(), "Press Ctrl+C to stop.")
}

func TestRenderIcon(t *testing.T) {
	img := renderIcon(iconSize)
	assert.Equal(t, iconSize, img.Bounds().Dx())

	// Corners stay transparent, the center of the disc is filled.
	assert.Zero(t, img.RGBAAt(0, 0).A)
	assert.Equal(t, iconBackground, img.RGBAAt(iconSize/2, iconSize-4))
	assert.Equal(t, iconForeground, img.RGBAAt(iconSize*5/16, iconSize/4))
}

func TestEncodePNGRoundTrip(t *testing.T) {
	data := encodePNG(renderIcon(iconSize))
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, iconSize, img.Bounds().Dy())
}

func TestWrapICO(t *testing.T) {
	data := encodePNG(renderIcon(iconSize))
	ico := wrapICO(data, iconSize)

	require.Len(t, ico, 22+len(data))
	assert.Equal(t, uint16(0), binary.LittleEndian.Uint16(ico[0:]))
	assert.Equal(t, uint16(1), binary.LittleEndian.Uint16(ico[2:]), "type icon")
	assert.Equal(t, uint16(1), binary.LittleEndian.Uint16(ico[4:]), "one image")
	assert.Equal(t, byte(iconSize), ico[6])
	assert.Equal(t, byte(iconSize), ico[7])
	assert.Equal(t, uint32(len(data)), binary.LittleEndian.Uint32(ico[14:]))
	assert.Equal(t, uint32(22), binary.LittleEndian.Uint32(ico[18:]))
	assert.Equal(t, data, ico[22:])

	assert.Zero(t, wrapICO(data, 256)[6], "256px is encoded as zero")
}
