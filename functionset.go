package clerk

// Function set instruction layout. DB5 marks the instruction family,
// the option flags sit below it.
const (
	functionSetOpcode byte = 0b0010_0000 // DB5: function set
	eightBitFlag      byte = 0b0001_0000 // DB4 (DL): 8-bit interface
	twoLinesFlag      byte = 0b0000_1000 // DB3 (N): two display lines
	dots5x10Flag      byte = 0b0000_0100 // DB2 (F): 5x10 dot font
)

// DataLength is the width of the controller bus interface.
type DataLength int

const (
	// FourBit transfers each byte as two nibbles over data4..data7.
	FourBit DataLength = iota
	// EightBit transfers each byte at once over data0..data7.
	EightBit
)

// flag returns the DB4 pattern for the data length.
func (l DataLength) flag() byte {
	if l == EightBit {
		return eightBitFlag
	}
	return 0
}

// LineNumber is the number of display lines the controller drives.
type LineNumber int

const (
	// OneLine drives a single display line.
	OneLine LineNumber = iota
	// TwoLines drives two display lines.
	TwoLines
)

// flag returns the DB3 pattern for the line number.
func (n LineNumber) flag() byte {
	if n == TwoLines {
		return twoLinesFlag
	}
	return 0
}

// CharacterFont is the dot matrix size of the character font.
type CharacterFont int

const (
	// Dots5x8 selects the 5x8 dot font.
	Dots5x8 CharacterFont = iota
	// Dots5x10 selects the 5x10 dot font, available on one-line
	// displays only.
	Dots5x10
)

// flag returns the DB2 pattern for the font.
func (f CharacterFont) flag() byte {
	if f == Dots5x10 {
		return dots5x10Flag
	}
	return 0
}

// FunctionSetBuilder collects the options of the function set
// instruction, which fixes bus width, line count and font at
// initialization time.
//
// The zero value holds the defaults: 4-bit bus, one line, 5x8 font.
type FunctionSetBuilder struct {
	dataLength    DataLength
	lineNumber    LineNumber
	characterFont CharacterFont
}

// SetDataLength sets the width of the bus interface. It must match the
// connection the display was constructed with.
func (b *FunctionSetBuilder) SetDataLength(length DataLength) *FunctionSetBuilder {
	b.dataLength = length
	return b
}

// SetLineNumber sets the number of display lines.
func (b *FunctionSetBuilder) SetLineNumber(number LineNumber) *FunctionSetBuilder {
	b.lineNumber = number
	return b
}

// SetCharacterFont sets the character font.
func (b *FunctionSetBuilder) SetCharacterFont(font CharacterFont) *FunctionSetBuilder {
	b.characterFont = font
	return b
}

// BuildCommand returns the function set instruction byte for the
// collected options.
func (b *FunctionSetBuilder) BuildCommand() byte {
	return functionSetOpcode | b.dataLength.flag() | b.lineNumber.flag() | b.characterFont.flag()
}
