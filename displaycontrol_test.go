package clerk

import "testing"

func TestDisplayControlBuildCommand(t *testing.T) {
	tests := []struct {
		name    string
		builder *DisplayControlBuilder
		want    byte
	}{
		{"defaults", &DisplayControlBuilder{}, 0b0000_1100},
		{"display off", (&DisplayControlBuilder{}).SetDisplay(DisplayOff), 0b0000_1000},
		{"cursor on", (&DisplayControlBuilder{}).SetCursor(CursorOn), 0b0000_1110},
		{"blinking on", (&DisplayControlBuilder{}).SetCursorBlinking(BlinkingOn), 0b0000_1101},
		{"cursor on blinking on", (&DisplayControlBuilder{}).SetCursor(CursorOn).SetCursorBlinking(BlinkingOn), 0b0000_1111},
		{"everything off", (&DisplayControlBuilder{}).SetDisplay(DisplayOff).SetCursor(CursorOff).SetCursorBlinking(BlinkingOff), 0b0000_1000},
		{"explicit defaults", (&DisplayControlBuilder{}).SetDisplay(DisplayOn).SetCursor(CursorOff).SetCursorBlinking(BlinkingOff), 0b0000_1100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.builder.BuildCommand(); got != tt.want {
				t.Errorf("BuildCommand() = %#08b, want %#08b", got, tt.want)
			}
		})
	}
}
