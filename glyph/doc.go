// Package glyph provides a monochrome raster format for the HD44780's
// user-defined characters.
//
// The controller's character generator RAM holds up to eight user
// glyphs for the 5x8 font, stored as eight bytes per glyph, one byte
// per pixel row. Within a row byte only the five low bits are visible;
// bit 4 is the leftmost column and bit 0 the rightmost.
//
// Row layout example:
//
//	Pixels:  . # # # .
//	Bits:    4 3 2 1 0
//	Byte:    0b0_1110
//
// This package provides:
//
// - Bit: a color type representing one monochrome pixel
// - BitModel: a color model converting standard Go colors to Bit
// - Bitmap: a 5x8 image.Image whose backing bytes are CGRAM rows
//
// Example usage:
//
//	// Draw a cross
//	var b glyph.Bitmap
//	for i := 0; i < 5; i++ {
//		b.SetBit(i, 3, glyph.On)
//		b.SetBit(2, i, glyph.On)
//	}
//
//	// Upload it as character code 0
//	glyphs, err := lcd.SetCGRAMAddress(0)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := glyphs.WriteBitmap(&b); err != nil {
//		log.Fatal(err)
//	}
//
//	// Use with standard Go image operations
//	draw.Draw(&b, b.Bounds(), image.NewUniform(glyph.On), image.Point{}, draw.Src)
package glyph
