package window

import (
	"testing"

	"github.com/1broseidon/foxbash/internal/grid"
)

func TestParseButton(t *testing.T) {
	tests := []struct {
		in      string
		want    Button
		wantErr bool
	}{
		{"primary", ButtonPrimary, false},
		{"Left", ButtonPrimary, false},
		{"", ButtonPrimary, false},
		{"right", ButtonSecondary, false},
		{"middle", ButtonMiddle, false},
		{"back", ButtonBack, false},
		{"forward", ButtonForward, false},
		{"wheel", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseButton(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Fatalf("ParseButton(%q) = %v, %v", tt.in, got, err)
		}
		if err == nil && tt.in != "" && tt.in != "Left" && tt.in != "right" && got.String() != tt.in {
			t.Fatalf("String() = %q, want %q", got.String(), tt.in)
		}
	}
}

func TestStateReset_KeepsGeometry(t *testing.T) {
	s := NewState(grid.Position{X: 3, Y: 4}, grid.Size{Width: 20, Height: 6})
	s.Phase = PhaseResizing
	s.Size.Width = 30
	s.Reset()
	if s.Active() {
		t.Fatalf("state still active after reset")
	}
	if s.Position.X != 3 || s.Size.Width != 30 {
		t.Fatalf("reset changed geometry: %+v", s)
	}
}
