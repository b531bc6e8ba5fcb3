package clerk

import "github.com/pkg/errors"

// WriteMode selects the controller register targeted by an outgoing
// byte.
type WriteMode int

const (
	// Command writes to the instruction register (register select
	// low).
	Command WriteMode = iota
	// Data writes to the RAM data register (register select high).
	Data
)

// registerSelectLevel returns the register select line level for the
// mode.
func (m WriteMode) registerSelectLevel() Level {
	if m == Data {
		return High
	}
	return Low
}

// ReadMode selects what an incoming byte contains.
type ReadMode int

const (
	// ReadData reads from the RAM data register (register select
	// high).
	ReadData ReadMode = iota
	// ReadBusyFlag reads the busy flag and address counter (register
	// select low).
	ReadBusyFlag
)

// registerSelectLevel returns the register select line level for the
// mode.
func (m ReadMode) registerSelectLevel() Level {
	if m == ReadData {
		return High
	}
	return Low
}

// Connection transfers bytes between the driver and the controller.
// Pins4Bit and Pins8Bit implement it on top of raw GPIO lines; tests
// may substitute a recording fake.
type Connection interface {
	// Init prepares the underlying lines for use.
	Init() error
	// Cleanup releases the underlying lines.
	Cleanup() error
	// Send transfers one byte to the register selected by mode.
	Send(mode WriteMode, value byte) error
	// Receive transfers one byte from the register selected by mode.
	Receive(mode ReadMode) (byte, error)
}

var (
	_ Connection = (*Pins4Bit)(nil)
	_ Connection = (*Pins8Bit)(nil)
)

// Pins4Bit drives the controller bus in 4-bit mode, the wiring used by
// almost every board. Each byte is transferred as two nibbles, upper
// first, over the data4..data7 lines.
//
// All pins and the delay provider must be set. The zero value is not
// usable.
type Pins4Bit struct {
	// Control lines
	RegisterSelect Pin // RS: low selects the instruction register, high the data register
	Read           Pin // R/W: low writes, high reads
	Enable         Pin // E: the falling edge latches the data lines

	// Data lines, upper half of the controller bus
	Data4 Pin
	Data5 Pin
	Data6 Pin
	Data7 Pin

	// Delay generates the bus timing waits.
	Delay Delay
}

// dataPins returns the data lines in bus order, data4 first.
func (p *Pins4Bit) dataPins() [4]Pin {
	return [4]Pin{p.Data4, p.Data5, p.Data6, p.Data7}
}

// Init validates the wiring, prepares every line and configures the
// control lines as outputs. The data line direction is set per
// transfer.
func (p *Pins4Bit) Init() error {
	named := []struct {
		name string
		pin  Pin
	}{
		{"register select", p.RegisterSelect},
		{"read/write", p.Read},
		{"enable", p.Enable},
		{"data4", p.Data4},
		{"data5", p.Data5},
		{"data6", p.Data6},
		{"data7", p.Data7},
	}

	for _, n := range named {
		if n.pin == nil {
			return errors.Errorf("clerk: %s pin is required", n.name)
		}
	}
	if p.Delay == nil {
		return errors.New("clerk: delay provider is required")
	}

	for _, n := range named {
		if err := n.pin.Init(); err != nil {
			return errors.Wrapf(err, "clerk: %s", n.name)
		}
	}

	for _, n := range named[:3] {
		if err := n.pin.SetDirection(Out); err != nil {
			return errors.Wrapf(err, "clerk: %s", n.name)
		}
	}
	return nil
}

// Cleanup releases every line. All lines are released even if one of
// them fails; the first failure is reported.
func (p *Pins4Bit) Cleanup() error {
	var first error
	for _, pin := range []Pin{p.RegisterSelect, p.Read, p.Enable, p.Data4, p.Data5, p.Data6, p.Data7} {
		if err := pin.Cleanup(); err != nil && first == nil {
			first = errors.Wrap(err, "clerk: cleanup")
		}
	}
	return first
}

// Send transfers value to the register selected by mode as two
// nibbles and waits out the command execution time, so the controller
// is ready again when Send returns.
func (p *Pins4Bit) Send(mode WriteMode, value byte) error {
	if err := p.Read.SetLevel(Low); err != nil {
		return errors.Wrap(err, "clerk: read/write")
	}
	if err := p.RegisterSelect.SetLevel(mode.registerSelectLevel()); err != nil {
		return errors.Wrap(err, "clerk: register select")
	}
	for i, pin := range p.dataPins() {
		if err := pin.SetDirection(Out); err != nil {
			return errors.Wrapf(err, "clerk: data%d", i+4)
		}
	}

	if err := p.writeNibble(value >> 4); err != nil {
		return err
	}
	if err := p.writeNibble(value & 0x0F); err != nil {
		return err
	}

	p.Delay.DelayUs(CommandExecutionTime)
	return nil
}

// Receive transfers one byte from the register selected by mode,
// assembled from two nibbles.
func (p *Pins4Bit) Receive(mode ReadMode) (byte, error) {
	for i, pin := range p.dataPins() {
		if err := pin.SetDirection(In); err != nil {
			return 0, errors.Wrapf(err, "clerk: data%d", i+4)
		}
	}
	if err := p.Read.SetLevel(High); err != nil {
		return 0, errors.Wrap(err, "clerk: read/write")
	}
	if err := p.RegisterSelect.SetLevel(mode.registerSelectLevel()); err != nil {
		return 0, errors.Wrap(err, "clerk: register select")
	}

	upper, err := p.readNibble()
	if err != nil {
		return 0, err
	}
	lower, err := p.readNibble()
	if err != nil {
		return 0, err
	}
	return upper<<4 | lower&0x0F, nil
}

// writeNibble performs one enable pulse carrying the lower four bits
// of value, bit 0 on data4 up to bit 3 on data7. The controller
// latches the data lines on the falling enable edge.
func (p *Pins4Bit) writeNibble(value byte) error {
	p.Delay.DelayNs(AddressSetupTime)
	if err := p.Enable.SetLevel(High); err != nil {
		return errors.Wrap(err, "clerk: enable")
	}

	for i, pin := range p.dataPins() {
		if err := pin.SetLevel(Level(value>>uint(i)&0x01 == 0x01)); err != nil {
			return errors.Wrapf(err, "clerk: data%d", i+4)
		}
	}

	p.Delay.DelayNs(EnablePulseWidth)
	if err := p.Enable.SetLevel(Low); err != nil {
		return errors.Wrap(err, "clerk: enable")
	}
	p.Delay.DelayNs(DataHoldTime)
	return nil
}

// readNibble performs one enable pulse and samples the four data
// lines while enable is high.
func (p *Pins4Bit) readNibble() (byte, error) {
	p.Delay.DelayNs(AddressSetupTime)
	if err := p.Enable.SetLevel(High); err != nil {
		return 0, errors.Wrap(err, "clerk: enable")
	}

	var value byte
	pins := p.dataPins()
	for i := len(pins) - 1; i >= 0; i-- {
		level, err := pins[i].Value()
		if err != nil {
			return 0, errors.Wrapf(err, "clerk: data%d", i+4)
		}
		if level == High {
			value |= 1 << uint(i)
		}
	}

	p.Delay.DelayNs(EnablePulseWidth)
	if err := p.Enable.SetLevel(Low); err != nil {
		return 0, errors.Wrap(err, "clerk: enable")
	}
	p.Delay.DelayNs(DataHoldTime)
	return value, nil
}

// Pins8Bit drives the controller bus in 8-bit mode, transferring each
// byte in a single enable pulse over the data0..data7 lines.
//
// The 8-bit path shares the timing of the 4-bit one but has not been
// validated on real hardware; most boards only wire the upper four
// data lines.
type Pins8Bit struct {
	// Control lines
	RegisterSelect Pin // RS: low selects the instruction register, high the data register
	Read           Pin // R/W: low writes, high reads
	Enable         Pin // E: the falling edge latches the data lines

	// Data lines
	Data0 Pin
	Data1 Pin
	Data2 Pin
	Data3 Pin
	Data4 Pin
	Data5 Pin
	Data6 Pin
	Data7 Pin

	// Delay generates the bus timing waits.
	Delay Delay
}

// dataPins returns the data lines in bus order, data0 first.
func (p *Pins8Bit) dataPins() [8]Pin {
	return [8]Pin{p.Data0, p.Data1, p.Data2, p.Data3, p.Data4, p.Data5, p.Data6, p.Data7}
}

// Init validates the wiring, prepares every line and configures the
// control lines as outputs.
func (p *Pins8Bit) Init() error {
	named := []struct {
		name string
		pin  Pin
	}{
		{"register select", p.RegisterSelect},
		{"read/write", p.Read},
		{"enable", p.Enable},
		{"data0", p.Data0},
		{"data1", p.Data1},
		{"data2", p.Data2},
		{"data3", p.Data3},
		{"data4", p.Data4},
		{"data5", p.Data5},
		{"data6", p.Data6},
		{"data7", p.Data7},
	}

	for _, n := range named {
		if n.pin == nil {
			return errors.Errorf("clerk: %s pin is required", n.name)
		}
	}
	if p.Delay == nil {
		return errors.New("clerk: delay provider is required")
	}

	for _, n := range named {
		if err := n.pin.Init(); err != nil {
			return errors.Wrapf(err, "clerk: %s", n.name)
		}
	}

	for _, n := range named[:3] {
		if err := n.pin.SetDirection(Out); err != nil {
			return errors.Wrapf(err, "clerk: %s", n.name)
		}
	}
	return nil
}

// Cleanup releases every line. All lines are released even if one of
// them fails; the first failure is reported.
func (p *Pins8Bit) Cleanup() error {
	var first error
	pins := p.dataPins()
	for _, pin := range append([]Pin{p.RegisterSelect, p.Read, p.Enable}, pins[:]...) {
		if err := pin.Cleanup(); err != nil && first == nil {
			first = errors.Wrap(err, "clerk: cleanup")
		}
	}
	return first
}

// Send transfers value to the register selected by mode in one enable
// pulse and waits out the command execution time.
func (p *Pins8Bit) Send(mode WriteMode, value byte) error {
	if err := p.Read.SetLevel(Low); err != nil {
		return errors.Wrap(err, "clerk: read/write")
	}
	if err := p.RegisterSelect.SetLevel(mode.registerSelectLevel()); err != nil {
		return errors.Wrap(err, "clerk: register select")
	}
	for i, pin := range p.dataPins() {
		if err := pin.SetDirection(Out); err != nil {
			return errors.Wrapf(err, "clerk: data%d", i)
		}
	}

	p.Delay.DelayNs(AddressSetupTime)
	if err := p.Enable.SetLevel(High); err != nil {
		return errors.Wrap(err, "clerk: enable")
	}
	for i, pin := range p.dataPins() {
		if err := pin.SetLevel(Level(value>>uint(i)&0x01 == 0x01)); err != nil {
			return errors.Wrapf(err, "clerk: data%d", i)
		}
	}
	p.Delay.DelayNs(EnablePulseWidth)
	if err := p.Enable.SetLevel(Low); err != nil {
		return errors.Wrap(err, "clerk: enable")
	}
	p.Delay.DelayNs(DataHoldTime)

	p.Delay.DelayUs(CommandExecutionTime)
	return nil
}

// Receive transfers one byte from the register selected by mode in one
// enable pulse.
func (p *Pins8Bit) Receive(mode ReadMode) (byte, error) {
	for i, pin := range p.dataPins() {
		if err := pin.SetDirection(In); err != nil {
			return 0, errors.Wrapf(err, "clerk: data%d", i)
		}
	}
	if err := p.Read.SetLevel(High); err != nil {
		return 0, errors.Wrap(err, "clerk: read/write")
	}
	if err := p.RegisterSelect.SetLevel(mode.registerSelectLevel()); err != nil {
		return 0, errors.Wrap(err, "clerk: register select")
	}

	p.Delay.DelayNs(AddressSetupTime)
	if err := p.Enable.SetLevel(High); err != nil {
		return 0, errors.Wrap(err, "clerk: enable")
	}

	var value byte
	pins := p.dataPins()
	for i := len(pins) - 1; i >= 0; i-- {
		level, err := pins[i].Value()
		if err != nil {
			return 0, errors.Wrapf(err, "clerk: data%d", i)
		}
		if level == High {
			value |= 1 << uint(i)
		}
	}

	p.Delay.DelayNs(EnablePulseWidth)
	if err := p.Enable.SetLevel(Low); err != nil {
		return 0, errors.Wrap(err, "clerk: enable")
	}
	p.Delay.DelayNs(DataHoldTime)
	return value, nil
}
