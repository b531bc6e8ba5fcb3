// Package clerk controls HD44780 compatible character LCD controllers
// over their parallel bus.
//
// The HD44780 is the de facto standard controller for small character
// displays (16x2, 20x4 and friends). This driver speaks its native
// 4-bit bus protocol on raw GPIO lines and works with any pin and
// timing back-end through the Pin and Delay interfaces; the periphhal
// subpackage provides a back-end based on periph.io.
//
// # Controller Characteristics
//
// - 4-bit (primary) and 8-bit parallel bus modes
// - 128 bytes of display data RAM (DDRAM) holding the shown characters
// - 64 bytes of character generator RAM (CGRAM) for eight custom glyphs
// - cursor and display shifting, read-back of RAM and busy flag
//
// # Hardware Connection
//
// Connect the display to free GPIO lines; the 4-bit mode leaves the
// lower four data pins of the display unconnected:
//
//	Display Pin → System Pin
//	VSS         → GND
//	VDD         → 5V
//	V0          → contrast trimmer wiper
//	RS          → GPIO (register select)
//	RW          → GPIO (read/write)
//	E           → GPIO (enable)
//	D4..D7      → GPIO (data lines)
//	A/K         → backlight supply
//
// # Basic Usage
//
// Build a Pins4Bit bundle from your GPIO back-end, create the display
// and initialize it once:
//
//	package main
//
//	import (
//		"log"
//
//		"github.com/kunerd/clerk"
//		"github.com/kunerd/clerk/periphhal"
//		"periph.io/x/conn/v3/gpio/gpioreg"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		if _, err := host.Init(); err != nil {
//			log.Fatalf("host init: %v", err)
//		}
//
//		pins := &clerk.Pins4Bit{
//			RegisterSelect: periphhal.NewPin(gpioreg.ByName("GPIO2")),
//			Read:           periphhal.NewPin(gpioreg.ByName("GPIO3")),
//			Enable:         periphhal.NewPin(gpioreg.ByName("GPIO4")),
//			Data4:          periphhal.NewPin(gpioreg.ByName("GPIO16")),
//			Data5:          periphhal.NewPin(gpioreg.ByName("GPIO19")),
//			Data6:          periphhal.NewPin(gpioreg.ByName("GPIO26")),
//			Data7:          periphhal.NewPin(gpioreg.ByName("GPIO20")),
//			Delay:          periphhal.Delay{},
//		}
//
//		lcd := clerk.New(pins)
//		if err := lcd.Init(new(clerk.FunctionSetBuilder).SetLineNumber(clerk.TwoLines)); err != nil {
//			log.Fatalf("init: %v", err)
//		}
//		defer lcd.Halt()
//
//		lcd.WriteMessage("Hello")
//		lcd.Seek(clerk.LineOffset{Line: clerk.LineTwo, Offset: 5})
//		lcd.WriteMessage("world!")
//	}
//
// # Cursor Addressing
//
// The driver mirrors the controller's address counter, so positions
// can be given relative to the start of RAM (Home), the current cursor
// (Current) or a display line (LineOffset):
//
//	lcd.Seek(clerk.Home(3))
//	lcd.Seek(clerk.Current(1))
//	lcd.Seek(clerk.LineOffset{Line: clerk.LineTwo, Offset: 3})
//
// Every write and read advances the tracked address the same way the
// controller advances its own counter.
//
// # Custom Characters
//
// Glyph data lives in the CGRAM bank. SetCGRAMAddress switches a
// session over and consumes the old handle; SetDDRAMAddress switches
// back. The glyph subpackage provides a 5x8 raster type whose bytes
// match the CGRAM row layout:
//
//	var smiley glyph.Bitmap
//	// ... draw into smiley, or fill Rows directly
//
//	glyphs, err := lcd.SetCGRAMAddress(0)
//	if err != nil { ... }
//	if err := glyphs.WriteBitmap(&smiley); err != nil { ... }
//	lcd, err = glyphs.SetDDRAMAddress(clerk.Home(0))
//	if err != nil { ... }
//	lcd.Write(0) // shows the glyph
//
// Using a handle after it has been consumed is a programming error and
// panics.
//
// # Timing
//
// The controller samples the data lines on the falling enable edge and
// needs fixed setup, pulse and hold times around it, plus an execution
// time after every instruction. The driver inserts all of them through
// the Delay interface, so no busy flag polling is needed; the constants
// are exported as AddressSetupTime, EnablePulseWidth, DataHoldTime and
// CommandExecutionTime.
//
// # Concurrency
//
// A session is not safe for concurrent use. All operations must be
// issued from a single goroutine, and the pins belong to the session
// until Halt releases them.
//
// # Datasheet
//
// For instruction layout and bus timing details, see:
// https://www.sparkfun.com/datasheets/LCD/HD44780.pdf
package clerk
