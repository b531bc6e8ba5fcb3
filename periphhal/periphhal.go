// Package periphhal adapts periph.io GPIO pins and host timing to the
// hardware interfaces of package clerk.
//
// Resolve pins with gpioreg.ByName after host.Init and wrap them with
// NewPin; Delay satisfies the timing interface with time.Sleep.
package periphhal

import (
	"time"

	"github.com/kunerd/clerk"
	"github.com/pkg/errors"
	"periph.io/x/conn/v3/gpio"
)

var (
	_ clerk.Pin   = (*Pin)(nil)
	_ clerk.Delay = Delay{}
)

// Pin adapts a periph.io gpio.PinIO to the clerk.Pin interface.
//
// The adapter remembers the last driven level, so switching a line
// back to output re-drives what it held before.
type Pin struct {
	p    gpio.PinIO
	last gpio.Level
}

// NewPin wraps the given periph.io pin. p may come from
// gpioreg.ByName, which returns nil for unknown names; that case is
// reported by Init.
func NewPin(p gpio.PinIO) *Pin {
	return &Pin{p: p}
}

// Init validates the pin. periph.io pins need no explicit export, so
// nothing is touched on the hardware side.
func (p *Pin) Init() error {
	if p.p == nil {
		return errors.New("periphhal: no gpio pin")
	}
	return nil
}

// Cleanup releases the pin.
func (p *Pin) Cleanup() error {
	return p.p.Halt()
}

// SetDirection configures the line as input or output. Switching to
// output drives the last level set through SetLevel, low initially.
func (p *Pin) SetDirection(dir clerk.Direction) error {
	if dir == clerk.In {
		return p.p.In(gpio.PullNoChange, gpio.NoEdge)
	}
	return p.p.Out(p.last)
}

// SetLevel drives the line.
func (p *Pin) SetLevel(level clerk.Level) error {
	p.last = gpio.Level(level)
	return p.p.Out(p.last)
}

// Value reads the line.
func (p *Pin) Value() (clerk.Level, error) {
	return clerk.Level(p.p.Read()), nil
}

// String returns the name of the underlying pin.
func (p *Pin) String() string {
	if p.p == nil {
		return "periphhal.Pin(nil)"
	}
	return p.p.String()
}

// Delay implements clerk.Delay with time.Sleep. The scheduler rounds
// the nanosecond waits up considerably, which the bus timing
// tolerates; it only requires minimums.
type Delay struct{}

// DelayNs sleeps for at least ns nanoseconds.
func (Delay) DelayNs(ns uint16) {
	time.Sleep(time.Duration(ns) * time.Nanosecond)
}

// DelayUs sleeps for at least us microseconds.
func (Delay) DelayUs(us uint16) {
	time.Sleep(time.Duration(us) * time.Microsecond)
}

// DelayMs sleeps for at least ms milliseconds.
func (Delay) DelayMs(ms uint16) {
	time.Sleep(time.Duration(ms) * time.Millisecond)
}
