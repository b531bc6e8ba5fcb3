package clerk

// Line identifies a display row by its DDRAM base address. The
// constants cover the common 16x2 layout; displays with other layouts
// can seek with their own Line values.
type Line uint8

const (
	// LineOne is the first display line.
	LineOne Line = 0x00
	// LineTwo is the second display line.
	LineTwo Line = 0x40
)
