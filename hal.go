package clerk

// Level is the electrical state of a pin.
type Level bool

const (
	// Low represents 0v.
	Low Level = false
	// High represents Vcc.
	High Level = true
)

// String returns "Low" or "High".
func (l Level) String() string {
	if l == High {
		return "High"
	}
	return "Low"
}

// Direction is the configured signal direction of a pin.
type Direction int

const (
	// In configures a pin as an input.
	In Direction = iota
	// Out configures a pin as an output.
	Out
)

// String returns "In" or "Out".
func (d Direction) String() string {
	if d == Out {
		return "Out"
	}
	return "In"
}

// Pin is a single GPIO line as required by the bus layer. Concrete
// implementations (sysfs, memory-mapped registers, a vendor HAL) live
// outside this package; see the periphhal subpackage for one backed by
// periph.io.
type Pin interface {
	// Init prepares the line for use, for example by exporting or
	// requesting it from the platform.
	Init() error
	// Cleanup releases the line.
	Cleanup() error
	// SetDirection switches the line between input and output.
	SetDirection(dir Direction) error
	// SetLevel drives an output line to the given level.
	SetLevel(level Level) error
	// Value reads the level of an input line.
	Value() (Level, error)
}

// Minimum delays dictated by the HD44780 bus timing characteristics.
// The enable line may only be raised after the address lines (register
// select and read/write) have been stable for the address setup time,
// it must stay high for at least the enable pulse width, and the data
// lines have to be held after its falling edge for the data hold time.
// After a complete byte the controller needs the command execution time
// before it accepts the next instruction.
const (
	// AddressSetupTime is the RS/RW setup time in nanoseconds.
	AddressSetupTime uint16 = 60
	// EnablePulseWidth is the minimum high time of the enable line in
	// nanoseconds.
	EnablePulseWidth uint16 = 450
	// DataHoldTime is the data line hold time after the enable falling
	// edge, in nanoseconds.
	DataHoldTime uint16 = 20
	// CommandExecutionTime is the time in microseconds the controller
	// needs to execute a regular instruction. Waiting it out after
	// every transfer removes the need to poll the busy flag.
	CommandExecutionTime uint16 = 37
)

// Delay provides the blocking waits used to satisfy the controller's
// timing requirements. Implementations may wait longer than requested,
// but must never return early.
type Delay interface {
	// DelayNs blocks for at least ns nanoseconds.
	DelayNs(ns uint16)
	// DelayUs blocks for at least us microseconds.
	DelayUs(us uint16)
	// DelayMs blocks for at least ms milliseconds.
	DelayMs(ms uint16)
}
