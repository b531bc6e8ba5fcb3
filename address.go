package clerk

// RAMType identifies one of the controller's two internal RAM banks.
//
// The bank determines the size of the address space and the opcode
// prefix of the "set address" instruction that moves the address
// counter into it.
type RAMType int

const (
	// DDRAM is the display data RAM. It holds the character codes
	// currently shown and spans 128 addresses.
	DDRAM RAMType = iota
	// CGRAM is the character generator RAM. It holds up to eight
	// user-defined 5x8 glyphs and spans 64 addresses.
	CGRAM
)

// String returns the conventional datasheet name of the bank.
func (t RAMType) String() string {
	if t == CGRAM {
		return "CGRAM"
	}
	return "DDRAM"
}

// upperBound returns the size of the bank's address space.
func (t RAMType) upperBound() uint8 {
	if t == CGRAM {
		return 64
	}
	return 128
}

// setAddressOpcode returns the instruction prefix that is OR'd with an
// address to move the address counter into the bank.
func (t RAMType) setAddressOpcode() byte {
	if t == CGRAM {
		return 0b0100_0000 // Set CGRAM address (DB6)
	}
	return 0b1000_0000 // Set DDRAM address (DB7)
}

// Address is a position of the controller's address counter within one
// RAM bank. Values are always normalized into [0, bank size), so
// arithmetic wraps around the end of the bank instead of overflowing.
//
// Addresses are plain values; copying one is cheap and safe.
type Address struct {
	value uint8
	ram   RAMType
}

// NewAddress returns an Address for the given bank, reducing value
// modulo the bank's address space.
func NewAddress(value uint8, ram RAMType) Address {
	return Address{value: value % ram.upperBound(), ram: ram}
}

// Add returns a+b, wrapped around the end of a's bank. b is interpreted
// in a's bank regardless of how it was constructed.
func (a Address) Add(b Address) Address {
	return NewAddress(a.value+b.value, a.ram)
}

// Sub returns a-b, wrapping backward through the top of a's bank when b
// is larger than a.
func (a Address) Sub(b Address) Address {
	if a.value >= b.value {
		return NewAddress(a.value-b.value, a.ram)
	}
	return NewAddress(a.ram.upperBound()-(b.value-a.value), a.ram)
}

// Raw returns the normalized value for embedding into an instruction
// byte.
func (a Address) Raw() uint8 {
	return a.value
}
