package glyph

import (
	"image"
	"image/color"
)

// Dot matrix dimensions of a 5x8 font glyph.
const (
	Width  = 5
	Height = 8
)

// Bit represents one monochrome pixel.
type Bit bool

const (
	// Off is a blank pixel.
	Off Bit = false
	// On is a lit pixel.
	On Bit = true
)

// RGBA converts the Bit to standard RGBA. On maps to opaque white, Off
// to opaque black.
func (b Bit) RGBA() (r, g, bl, a uint32) {
	if b {
		return 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF
	}
	return 0, 0, 0, 0xFFFF
}

// toBit converts any color.Color to Bit.
func toBit(c color.Color) color.Color {
	if b, ok := c.(Bit); ok {
		return b
	}
	r, g, b, _ := c.RGBA()
	// Standard grayscale conversion: 0.299R + 0.587G + 0.114B,
	// thresholded at half intensity
	y := (299*r + 587*g + 114*b + 500) / 1000
	return Bit(y >= 0x8000)
}

// BitModel converts colors to Bit.
var BitModel = color.ModelFunc(toBit)

// Bitmap is a 5x8 monochrome raster of one user-defined character. Rows
// holds one byte per pixel row in the CGRAM layout, so a Bitmap can be
// uploaded to the controller without conversion.
//
// The zero value is a blank glyph ready for use.
type Bitmap struct {
	Rows [Height]byte
}

// ColorModel returns the color model of the glyph.
func (b *Bitmap) ColorModel() color.Model {
	return BitModel
}

// Bounds returns the glyph bounds, always 5x8.
func (b *Bitmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, Width, Height)
}

// At returns the color of the pixel at (x, y).
// It implements the image.Image interface.
func (b *Bitmap) At(x, y int) color.Color {
	return b.BitAt(x, y)
}

// BitAt returns the Bit of the pixel at (x, y). Pixels outside the
// glyph read as Off.
func (b *Bitmap) BitAt(x, y int) Bit {
	if !(image.Point{X: x, Y: y}.In(b.Bounds())) {
		return Off
	}
	return Bit(b.Rows[y]>>colShift(x)&0x01 == 0x01)
}

// Set sets the color of the pixel at (x, y).
// It implements the draw.Image interface.
func (b *Bitmap) Set(x, y int, c color.Color) {
	b.SetBit(x, y, BitModel.Convert(c).(Bit))
}

// SetBit sets the Bit of the pixel at (x, y). This is faster than
// Set() as it doesn't require color conversion. Pixels outside the
// glyph are ignored.
func (b *Bitmap) SetBit(x, y int, v Bit) {
	if !(image.Point{X: x, Y: y}.In(b.Bounds())) {
		return
	}
	mask := byte(1) << colShift(x)
	if v {
		b.Rows[y] |= mask
	} else {
		b.Rows[y] &^= mask
	}
}

// colShift returns the bit position of column x. Column 0 is the
// leftmost pixel and sits in bit 4.
func colShift(x int) uint {
	return uint(Width - 1 - x)
}
