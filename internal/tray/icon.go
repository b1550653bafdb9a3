package tray

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/color"
	"image/png"
	"runtime"
	"sync"
)

const iconSize = 32

var (
	iconBackground = color.RGBA{R: 0x1f, G: 0x6f, B: 0xd1, A: 0xff}
	iconForeground = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// iconBytes is the tray icon in the encoding systray.SetIcon expects: ICO on
// Windows, PNG everywhere else.
var iconBytes = sync.OnceValue(func() []byte {
	data := encodePNG(renderIcon(iconSize))
	if runtime.GOOS == "windows" {
		return wrapICO(data, iconSize)
	}
	return data
})

// renderIcon draws a filled disc with a straight double quote on it.
func renderIcon(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	c := float64(size) / 2
	r2 := (c - 1) * (c - 1)
	for y := range size {
		for x := range size {
			dx, dy := float64(x)+0.5-c, float64(y)+0.5-c
			if dx*dx+dy*dy <= r2 {
				img.SetRGBA(x, y, iconBackground)
			}
		}
	}

	w, h, top := size/8, size*3/8, size/4
	for _, left := range []int{size*5/16, size*9/16} {
		for y := top; y < top+h; y++ {
			for x := left; x < left+w; x++ {
				img.SetRGBA(x, y, iconForeground)
			}
		}
	}
	return img
}

func encodePNG(img image.Image) []byte {
	var buf bytes.Buffer
	// Encoding an in-memory RGBA into a bytes.Buffer cannot fail.
	_ = png.Encode(&buf, img)
	return buf.Bytes()
}

// wrapICO puts a single PNG image into an ICO container, which Windows
// accepts since Vista.
func wrapICO(pngData []byte, size int) []byte {
	type header struct {
		Reserved, Type, Count uint16
	}
	type entry struct {
		Width, Height, Colors, Reserved uint8
		Planes, BitCount                uint16
		Size, Offset                    uint32
	}

	dim := uint8(size)
	if size >= 256 {
		dim = 0
	}

	var buf bytes.Buffer
	_ = binary.Write(&buf, binary.LittleEndian, header{Type: 1, Count: 1})
	_ = binary.Write(&buf, binary.LittleEndian, entry{
		Width:    dim,
		Height:   dim,
		Planes:   1,
		BitCount: 32,
		Size:     uint32(len(pngData)),
		Offset:   uint32(binary.Size(header{}) + binary.Size(entry{})),
	})
	buf.Write(pngData)
	return buf.Bytes()
}
