package clerk

// Display on/off control instruction layout.
const (
	displayControlOpcode byte = 0b0000_1000 // DB3: display on/off control
	displayOnFlag        byte = 0b0000_0100 // DB2 (D): display on
	cursorOnFlag         byte = 0b0000_0010 // DB1 (C): cursor on
	blinkingOnFlag       byte = 0b0000_0001 // DB0 (B): cursor blinking on
)

// DisplayState switches the whole display on or off. Switching it off
// blanks the panel but leaves the RAM content untouched.
type DisplayState int

const (
	// DisplayOn shows the display content.
	DisplayOn DisplayState = iota
	// DisplayOff blanks the display without clearing it.
	DisplayOff
)

// flag returns the DB2 pattern for the state.
func (s DisplayState) flag() byte {
	if s == DisplayOff {
		return 0
	}
	return displayOnFlag
}

// CursorState switches the cursor underline on or off.
type CursorState int

const (
	// CursorOff hides the cursor.
	CursorOff CursorState = iota
	// CursorOn shows an underline at the cursor position.
	CursorOn
)

// flag returns the DB1 pattern for the state.
func (s CursorState) flag() byte {
	if s == CursorOn {
		return cursorOnFlag
	}
	return 0
}

// CursorBlinking switches blinking of the character cell at the cursor
// position on or off.
type CursorBlinking int

const (
	// BlinkingOff shows the cursor cell steadily.
	BlinkingOff CursorBlinking = iota
	// BlinkingOn blinks the whole cursor cell.
	BlinkingOn
)

// flag returns the DB0 pattern for the state.
func (s CursorBlinking) flag() byte {
	if s == BlinkingOn {
		return blinkingOnFlag
	}
	return 0
}

// DisplayControlBuilder collects the options of the display on/off
// control instruction.
//
// The zero value holds the defaults: display on, cursor off, blinking
// off.
type DisplayControlBuilder struct {
	display  DisplayState
	cursor   CursorState
	blinking CursorBlinking
}

// SetDisplay sets the state of the whole display.
func (b *DisplayControlBuilder) SetDisplay(state DisplayState) *DisplayControlBuilder {
	b.display = state
	return b
}

// SetCursor sets the state of the cursor underline.
func (b *DisplayControlBuilder) SetCursor(state CursorState) *DisplayControlBuilder {
	b.cursor = state
	return b
}

// SetCursorBlinking sets the blinking of the cursor cell.
func (b *DisplayControlBuilder) SetCursorBlinking(blinking CursorBlinking) *DisplayControlBuilder {
	b.blinking = blinking
	return b
}

// BuildCommand returns the display control instruction byte for the
// collected options.
func (b *DisplayControlBuilder) BuildCommand() byte {
	return displayControlOpcode | b.display.flag() | b.cursor.flag() | b.blinking.flag()
}
