package clerk

// Entry mode set instruction layout.
const (
	entryModeOpcode byte = 0b0000_0100 // DB2: entry mode set
	incrementFlag   byte = 0b0000_0010 // DB1 (I/D): increment address counter
	displayShiftOn  byte = 0b0000_0001 // DB0 (S): shift display on write
)

// MoveDirection is the direction the address counter moves after a RAM
// access.
type MoveDirection int

const (
	// Increment moves the cursor right after each access.
	Increment MoveDirection = iota
	// Decrement moves the cursor left after each access.
	Decrement
)

// flag returns the DB1 pattern for the direction.
func (d MoveDirection) flag() byte {
	if d == Decrement {
		return 0
	}
	return incrementFlag
}

// DisplayShift selects whether the whole display shifts on write, so
// the cursor appears to stand still while the content moves.
type DisplayShift int

const (
	// ShiftOff leaves the display window in place.
	ShiftOff DisplayShift = iota
	// ShiftOn shifts the display on every character write. The display
	// does not shift on reads.
	ShiftOn
)

// flag returns the DB0 pattern for the shift setting.
func (s DisplayShift) flag() byte {
	if s == ShiftOn {
		return displayShiftOn
	}
	return 0
}

// EntryModeBuilder collects the options of the entry mode set
// instruction, which controls how the address counter reacts to RAM
// accesses.
//
// The zero value holds the defaults: increment, display shift off.
type EntryModeBuilder struct {
	moveDirection MoveDirection
	displayShift  DisplayShift
}

// SetMoveDirection sets the direction the cursor moves when a
// character is written to or read from the display.
func (b *EntryModeBuilder) SetMoveDirection(direction MoveDirection) *EntryModeBuilder {
	b.moveDirection = direction
	return b
}

// SetDisplayShift sets whether the display shifts instead of the
// cursor on character writes.
func (b *EntryModeBuilder) SetDisplayShift(shift DisplayShift) *EntryModeBuilder {
	b.displayShift = shift
	return b
}

// BuildCommand returns the entry mode set instruction byte for the
// collected options.
func (b *EntryModeBuilder) BuildCommand() byte {
	return entryModeOpcode | b.moveDirection.flag() | b.displayShift.flag()
}
