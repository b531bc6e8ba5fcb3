package periphhal

import (
	"testing"
	"time"

	"github.com/kunerd/clerk"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
)

func TestPinInit(t *testing.T) {
	p := NewPin(&gpiotest.Pin{N: "GPIO2", Num: 2})
	if err := p.Init(); err != nil {
		t.Errorf("Init() error = %v", err)
	}
}

func TestPinInitWithoutPin(t *testing.T) {
	// gpioreg.ByName returns nil for unknown names.
	p := NewPin(nil)

	err := p.Init()
	if err == nil {
		t.Fatal("expected error but didn't get one")
	}
	if err.Error() != "periphhal: no gpio pin" {
		t.Errorf("Init() error = %v, want %q", err, "periphhal: no gpio pin")
	}
}

func TestPinSetLevel(t *testing.T) {
	pin := &gpiotest.Pin{N: "GPIO2", Num: 2}
	p := NewPin(pin)

	if err := p.SetLevel(clerk.High); err != nil {
		t.Fatalf("SetLevel(High) error = %v", err)
	}
	if pin.L != gpio.High {
		t.Error("SetLevel(High) did not drive the line high")
	}

	if err := p.SetLevel(clerk.Low); err != nil {
		t.Fatalf("SetLevel(Low) error = %v", err)
	}
	if pin.L != gpio.Low {
		t.Error("SetLevel(Low) did not drive the line low")
	}
}

func TestPinValue(t *testing.T) {
	pin := &gpiotest.Pin{N: "GPIO2", Num: 2, L: gpio.High}
	p := NewPin(pin)

	got, err := p.Value()
	if err != nil {
		t.Fatalf("Value() error = %v", err)
	}
	if got != clerk.High {
		t.Errorf("Value() = %v, want %v", got, clerk.High)
	}

	pin.L = gpio.Low
	got, err = p.Value()
	if err != nil {
		t.Fatalf("Value() error = %v", err)
	}
	if got != clerk.Low {
		t.Errorf("Value() = %v, want %v", got, clerk.Low)
	}
}

func TestPinSetDirectionRestoresLevel(t *testing.T) {
	pin := &gpiotest.Pin{N: "GPIO2", Num: 2}
	p := NewPin(pin)

	if err := p.SetLevel(clerk.High); err != nil {
		t.Fatalf("SetLevel(High) error = %v", err)
	}
	if err := p.SetDirection(clerk.In); err != nil {
		t.Fatalf("SetDirection(In) error = %v", err)
	}

	// The line floats while configured as input.
	pin.L = gpio.Low

	if err := p.SetDirection(clerk.Out); err != nil {
		t.Fatalf("SetDirection(Out) error = %v", err)
	}
	if pin.L != gpio.High {
		t.Error("switching back to output did not restore the last driven level")
	}
}

func TestPinCleanup(t *testing.T) {
	p := NewPin(&gpiotest.Pin{N: "GPIO2", Num: 2})
	if err := p.Cleanup(); err != nil {
		t.Errorf("Cleanup() error = %v", err)
	}
}

func TestPinString(t *testing.T) {
	p := NewPin(&gpiotest.Pin{N: "GPIO2", Num: 2})
	if got, want := p.String(), "GPIO2(2)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	if got, want := NewPin(nil).String(), "periphhal.Pin(nil)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestDelayWaitsAtLeast(t *testing.T) {
	tests := []struct {
		name string
		wait func()
		min  time.Duration
	}{
		{"ns", func() { Delay{}.DelayNs(500) }, 500 * time.Nanosecond},
		{"us", func() { Delay{}.DelayUs(100) }, 100 * time.Microsecond},
		{"ms", func() { Delay{}.DelayMs(2) }, 2 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start := time.Now()
			tt.wait()
			if elapsed := time.Since(start); elapsed < tt.min {
				t.Errorf("returned after %v, want at least %v", elapsed, tt.min)
			}
		})
	}
}
