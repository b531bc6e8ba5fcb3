package clerk

import "testing"

func TestEntryModeBuildCommand(t *testing.T) {
	tests := []struct {
		name    string
		builder *EntryModeBuilder
		want    byte
	}{
		{"defaults", &EntryModeBuilder{}, 0b0000_0110},
		{"decrement", (&EntryModeBuilder{}).SetMoveDirection(Decrement), 0b0000_0100},
		{"display shift on", (&EntryModeBuilder{}).SetDisplayShift(ShiftOn), 0b0000_0111},
		{"decrement with display shift", (&EntryModeBuilder{}).SetMoveDirection(Decrement).SetDisplayShift(ShiftOn), 0b0000_0101},
		{"explicit defaults", (&EntryModeBuilder{}).SetMoveDirection(Increment).SetDisplayShift(ShiftOff), 0b0000_0110},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.builder.BuildCommand(); got != tt.want {
				t.Errorf("BuildCommand() = %#08b, want %#08b", got, tt.want)
			}
		})
	}
}
