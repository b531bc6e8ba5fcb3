package clerk

import (
	"fmt"

	"github.com/kunerd/clerk/glyph"
	"github.com/pkg/errors"
	"periph.io/x/conn/v3"
)

// Instructions issued directly by the session engine.
const (
	clearDisplayCmd byte = 0b0000_0001 // DB0: clear display

	// Function set bytes sent at 8-bit cadence during init. They bring
	// the controller into 4-bit mode from any power-on state.
	firstResyncCmd  byte = 0x33
	secondResyncCmd byte = 0x32

	shiftOpcode      byte = 0b0001_0000 // DB4: cursor or display shift
	shiftDisplayFlag byte = 0b0000_1000 // DB3 (S/C): shift the display instead of the cursor
	shiftRightFlag   byte = 0b0000_0100 // DB2 (R/L): shift right
)

// displayWidth is the number of visible characters per line. Writes
// beyond it are silently dropped.
const displayWidth = 16

// ShiftDirection is the direction of a cursor or display shift.
type ShiftDirection int

const (
	// ShiftLeft shifts toward lower addresses.
	ShiftLeft ShiftDirection = iota
	// ShiftRight shifts toward higher addresses.
	ShiftRight
)

// flag returns the DB2 pattern for the direction.
func (d ShiftDirection) flag() byte {
	if d == ShiftRight {
		return shiftRightFlag
	}
	return 0
}

// SeekFrom designates a target cursor position in display data RAM.
// Home, Current and LineOffset implement it.
type SeekFrom interface {
	seekFrom()
}

// CGRAMSeekFrom designates a target cursor position in character
// generator RAM. Home and Current implement it; lines do not exist in
// CGRAM.
type CGRAMSeekFrom interface {
	cgramSeekFrom()
}

// Home is an offset from the start of the active RAM bank.
type Home uint8

func (Home) seekFrom()      {}
func (Home) cgramSeekFrom() {}

// Current is an offset from the tracked cursor address.
type Current uint8

func (Current) seekFrom()      {}
func (Current) cgramSeekFrom() {}

// LineOffset is an offset from the base address of a display line.
type LineOffset struct {
	Line   Line
	Offset uint8
}

func (LineOffset) seekFrom() {}

// session is the cursor and bus state shared by the two bank-typed
// handles. Exactly one handle is valid for it at any time.
type session struct {
	conn   Connection
	cursor Address
	bank   RAMType
	halted bool
}

// requireBank panics when the session has been switched to another
// bank. A tripped guard means a consumed handle was used again, which
// is a bug in the calling code.
func (s *session) requireBank(t RAMType) {
	if s.bank != t {
		panic("clerk: use of " + t.String() + " session after bank switch")
	}
}

func (s *session) send(mode WriteMode, value byte) error {
	if s.halted {
		return errors.New("clerk: display halted")
	}
	return s.conn.Send(mode, value)
}

func (s *session) receive(mode ReadMode) (byte, error) {
	if s.halted {
		return 0, errors.New("clerk: display halted")
	}
	return s.conn.Receive(mode)
}

// write advances the cursor and sends one data byte. The cursor is
// advanced first; on a bus failure the logical state reads as if the
// transfer had completed, because the hardware may well have executed
// it.
func (s *session) write(value byte) error {
	s.cursor = s.cursor.Add(NewAddress(1, s.bank))
	return s.send(Data, value)
}

func (s *session) readByte() (byte, error) {
	s.cursor = s.cursor.Add(NewAddress(1, s.bank))
	return s.receive(ReadData)
}

func (s *session) writeMessage(text string) error {
	msg := []byte(text)
	if len(msg) > displayWidth {
		msg = msg[:displayWidth]
	}
	for _, c := range msg {
		if err := s.write(c); err != nil {
			return err
		}
	}
	return nil
}

// seekTo records target as the new cursor position and issues the set
// address instruction for the active bank.
func (s *session) seekTo(target Address) error {
	s.cursor = target
	return s.send(Command, s.bank.setAddressOpcode()|target.Raw())
}

func (s *session) resolveDDRAM(pos SeekFrom) Address {
	switch p := pos.(type) {
	case Home:
		return NewAddress(uint8(p), DDRAM)
	case Current:
		return s.cursor.Add(NewAddress(uint8(p), DDRAM))
	case LineOffset:
		return NewAddress(uint8(p.Line), DDRAM).Add(NewAddress(p.Offset, DDRAM))
	default:
		panic(fmt.Sprintf("clerk: unsupported seek position %T", pos))
	}
}

// halt blanks the display on a best effort basis, marks the session
// halted and releases the pins.
func (s *session) halt() error {
	_ = s.send(Command, (&DisplayControlBuilder{}).SetDisplay(DisplayOff).BuildCommand())
	s.halted = true
	return s.conn.Cleanup()
}

var (
	_ conn.Resource = (*Display)(nil)
	_ conn.Resource = (*CGRAMDisplay)(nil)
)

// Display is a session handle operating on the display data RAM. It
// tracks the controller's address counter, so relative seeks and
// cursor shifts work without reading the controller state back.
//
// A Display is not safe for concurrent use. SetCGRAMAddress consumes
// it; using a consumed handle panics.
type Display struct {
	s *session
}

// New returns an uninitialized display session driving the given
// connection. Init must be called before any other operation.
func New(c Connection) *Display {
	return &Display{s: &session{
		conn:   c,
		cursor: NewAddress(0, DDRAM),
		bank:   DDRAM,
	}}
}

// Init prepares the connection and runs the controller's power-on
// instruction sequence: two resync bytes forcing 4-bit mode, the
// function set built from fs, and a clear display. The function set
// cannot be changed afterwards.
//
// fs may be nil to use the defaults (4-bit bus, one line, 5x8 font).
func (d *Display) Init(fs *FunctionSetBuilder) error {
	d.s.requireBank(DDRAM)
	if fs == nil {
		fs = &FunctionSetBuilder{}
	}

	if err := d.s.conn.Init(); err != nil {
		return err
	}

	for _, cmd := range []byte{
		firstResyncCmd,
		secondResyncCmd,
		fs.BuildCommand(),
		clearDisplayCmd,
	} {
		if err := d.s.send(Command, cmd); err != nil {
			return err
		}
	}
	return nil
}

// SetEntryMode sends the entry mode built from b. b may be nil to use
// the defaults (increment, display shift off).
func (d *Display) SetEntryMode(b *EntryModeBuilder) error {
	d.s.requireBank(DDRAM)
	if b == nil {
		b = &EntryModeBuilder{}
	}
	return d.s.send(Command, b.BuildCommand())
}

// SetDisplayControl sends the display control built from b. b may be
// nil to use the defaults (display on, cursor off, blinking off).
func (d *Display) SetDisplayControl(b *DisplayControlBuilder) error {
	d.s.requireBank(DDRAM)
	if b == nil {
		b = &DisplayControlBuilder{}
	}
	return d.s.send(Command, b.BuildCommand())
}

// Seek moves the cursor to the given position.
func (d *Display) Seek(pos SeekFrom) error {
	d.s.requireBank(DDRAM)
	return d.s.seekTo(d.s.resolveDDRAM(pos))
}

// ShiftCursor moves the cursor by offset positions without touching
// the RAM content. An offset of zero is a no-op that sends nothing.
func (d *Display) ShiftCursor(direction ShiftDirection, offset uint8) error {
	d.s.requireBank(DDRAM)

	step := NewAddress(offset, DDRAM)
	if direction == ShiftRight {
		d.s.cursor = d.s.cursor.Add(step)
	} else {
		d.s.cursor = d.s.cursor.Sub(step)
	}
	return d.rawShift(0, direction, offset)
}

// Shift moves the visible display window by offset positions. The
// cursor keeps its logical position, so the tracked address does not
// change. An offset of zero is a no-op that sends nothing.
func (d *Display) Shift(direction ShiftDirection, offset uint8) error {
	d.s.requireBank(DDRAM)
	return d.rawShift(shiftDisplayFlag, direction, offset)
}

// rawShift emits one shift instruction per unit of offset.
func (d *Display) rawShift(targetFlag byte, direction ShiftDirection, offset uint8) error {
	cmd := shiftOpcode | targetFlag | direction.flag()
	for i := uint8(0); i < offset; i++ {
		if err := d.s.send(Command, cmd); err != nil {
			return err
		}
	}
	return nil
}

// Clear clears the entire display and moves the controller's cursor to
// the home position, undoing all display shifts. It also resets the
// controller's move direction to increment; the driver does not track
// or reassert that setting.
func (d *Display) Clear() error {
	d.s.requireBank(DDRAM)
	return d.s.send(Command, clearDisplayCmd)
}

// Write sends one byte to the current cursor position and advances the
// tracked address by one.
func (d *Display) Write(value byte) error {
	d.s.requireBank(DDRAM)
	return d.s.write(value)
}

// WriteMessage writes text starting at the current cursor position.
// Only the first 16 bytes fit on a line; the rest is silently dropped.
func (d *Display) WriteMessage(text string) error {
	d.s.requireBank(DDRAM)
	return d.s.writeMessage(text)
}

// ReadByte reads the byte at the current cursor position and advances
// the tracked address by one.
func (d *Display) ReadByte() (byte, error) {
	d.s.requireBank(DDRAM)
	return d.s.readByte()
}

// ReadBusyFlag reads the busy flag and the controller's address
// counter. The result is informational: the driver times instructions
// with fixed delays and never polls the flag itself.
func (d *Display) ReadBusyFlag() (busy bool, address uint8, err error) {
	d.s.requireBank(DDRAM)

	value, err := d.s.receive(ReadBusyFlag)
	if err != nil {
		return false, 0, err
	}
	return value&0b1000_0000 != 0, value & 0b0111_1111, nil
}

// SetCGRAMAddress switches the session to the character generator RAM,
// seeked to offset, and consumes the receiver. Use the returned handle
// to upload glyph data; using the receiver afterwards panics.
func (d *Display) SetCGRAMAddress(offset uint8) (*CGRAMDisplay, error) {
	d.s.requireBank(DDRAM)

	d.s.bank = CGRAM
	c := &CGRAMDisplay{s: d.s}
	return c, c.s.seekTo(NewAddress(offset, CGRAM))
}

// Halt blanks the display on a best effort basis and releases the
// pins. The session cannot be used afterwards; bus operations return
// an error.
func (d *Display) Halt() error {
	d.s.requireBank(DDRAM)
	return d.s.halt()
}

// String returns a short description of the session state.
func (d *Display) String() string {
	return fmt.Sprintf("clerk.Display{%s @ %#04x}", d.s.bank, d.s.cursor.Raw())
}

// CGRAMDisplay is a session handle operating on the character
// generator RAM, created by Display.SetCGRAMAddress. Bytes written
// through it define the pixel rows of the user glyphs for character
// codes 0 through 7.
//
// A CGRAMDisplay is not safe for concurrent use. SetDDRAMAddress
// consumes it; using a consumed handle panics.
type CGRAMDisplay struct {
	s *session
}

// Seek moves the cursor to the given position in glyph memory.
func (c *CGRAMDisplay) Seek(pos CGRAMSeekFrom) error {
	c.s.requireBank(CGRAM)

	switch p := pos.(type) {
	case Home:
		return c.s.seekTo(NewAddress(uint8(p), CGRAM))
	case Current:
		return c.s.seekTo(c.s.cursor.Add(NewAddress(uint8(p), CGRAM)))
	default:
		panic(fmt.Sprintf("clerk: unsupported seek position %T", pos))
	}
}

// Write sends one glyph byte to the current cursor position and
// advances the tracked address by one.
func (c *CGRAMDisplay) Write(value byte) error {
	c.s.requireBank(CGRAM)
	return c.s.write(value)
}

// WriteMessage writes the bytes of text starting at the current cursor
// position, truncated like Display.WriteMessage.
func (c *CGRAMDisplay) WriteMessage(text string) error {
	c.s.requireBank(CGRAM)
	return c.s.writeMessage(text)
}

// WriteBitmap writes the pixel rows of one glyph bitmap starting at
// the current cursor position. A bitmap uploaded at address 8*n
// defines the glyph for character code n.
func (c *CGRAMDisplay) WriteBitmap(b *glyph.Bitmap) error {
	c.s.requireBank(CGRAM)

	for _, row := range b.Rows {
		if err := c.s.write(row); err != nil {
			return err
		}
	}
	return nil
}

// ReadByte reads the glyph byte at the current cursor position and
// advances the tracked address by one.
func (c *CGRAMDisplay) ReadByte() (byte, error) {
	c.s.requireBank(CGRAM)
	return c.s.readByte()
}

// SetDDRAMAddress switches the session back to the display data RAM,
// seeked to pos, and consumes the receiver. The cursor starts from a
// fresh zero address, so Current positions resolve like Home ones.
func (c *CGRAMDisplay) SetDDRAMAddress(pos SeekFrom) (*Display, error) {
	c.s.requireBank(CGRAM)

	c.s.bank = DDRAM
	c.s.cursor = NewAddress(0, DDRAM)
	d := &Display{s: c.s}
	return d, d.s.seekTo(d.s.resolveDDRAM(pos))
}

// Halt blanks the display on a best effort basis and releases the
// pins. The session cannot be used afterwards; bus operations return
// an error.
func (c *CGRAMDisplay) Halt() error {
	c.s.requireBank(CGRAM)
	return c.s.halt()
}

// String returns a short description of the session state.
func (c *CGRAMDisplay) String() string {
	return fmt.Sprintf("clerk.CGRAMDisplay{%s @ %#04x}", c.s.bank, c.s.cursor.Raw())
}
