package clerk

import "testing"

func TestRAMTypeString(t *testing.T) {
	if got := DDRAM.String(); got != "DDRAM" {
		t.Errorf("DDRAM.String() = %q, want %q", got, "DDRAM")
	}
	if got := CGRAM.String(); got != "CGRAM" {
		t.Errorf("CGRAM.String() = %q, want %q", got, "CGRAM")
	}
}

func TestNewAddressNormalization(t *testing.T) {
	tests := []struct {
		name  string
		value uint8
		ram   RAMType
		want  uint8
	}{
		{"ddram zero", 0, DDRAM, 0},
		{"ddram in range", 39, DDRAM, 39},
		{"ddram last", 127, DDRAM, 127},
		{"ddram bound wraps to zero", 128, DDRAM, 0},
		{"ddram above bound", 130, DDRAM, 2},
		{"ddram max uint8", 255, DDRAM, 127},
		{"cgram zero", 0, CGRAM, 0},
		{"cgram last", 63, CGRAM, 63},
		{"cgram bound wraps to zero", 64, CGRAM, 0},
		{"cgram above bound", 70, CGRAM, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewAddress(tt.value, tt.ram).Raw(); got != tt.want {
				t.Errorf("NewAddress(%d, %s).Raw() = %d, want %d", tt.value, tt.ram, got, tt.want)
			}
		})
	}
}

func TestAddressAdd(t *testing.T) {
	tests := []struct {
		name string
		a, b uint8
		ram  RAMType
		want uint8
	}{
		{"no wrap", 10, 20, DDRAM, 30},
		{"zero step", 42, 0, DDRAM, 42},
		{"wrap over ddram end", 120, 10, DDRAM, 2}, // (120 + 10) % 128 = 2
		{"wrap to zero", 127, 1, DDRAM, 0},
		{"cgram wrap", 60, 10, CGRAM, 6}, // (60 + 10) % 64 = 6
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewAddress(tt.a, tt.ram).Add(NewAddress(tt.b, tt.ram)).Raw()
			if got != tt.want {
				t.Errorf("Address(%d) + Address(%d) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestAddressSub(t *testing.T) {
	tests := []struct {
		name string
		a, b uint8
		ram  RAMType
		want uint8
	}{
		{"no wrap", 30, 20, DDRAM, 10},
		{"identical", 42, 42, DDRAM, 0},
		{"wrap below ddram start", 10, 20, DDRAM, 118}, // 128 - (20 - 10) = 118
		{"wrap to last", 0, 1, DDRAM, 127},
		{"cgram wrap", 2, 5, CGRAM, 61}, // 64 - (5 - 2) = 61
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewAddress(tt.a, tt.ram).Sub(NewAddress(tt.b, tt.ram)).Raw()
			if got != tt.want {
				t.Errorf("Address(%d) - Address(%d) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}
