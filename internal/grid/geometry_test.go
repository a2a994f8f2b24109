package grid

import "testing"

func TestClamp_LowerBoundWinsWhenRangeInverted(t *testing.T) {
	if got := Clamp(10, 5, 3); got != 5 {
		t.Fatalf("Clamp(10, 5, 3) = %d, want 5", got)
	}
}

func TestClampPosition_StaysOnScreen(t *testing.T) {
	b := DefaultBounds()
	size := Size{Width: 40, Height: 15}

	tests := []struct {
		name string
		in   Position
		want Position
	}{
		{"inside", Position{10, 5}, Position{10, 5}},
		{"negative", Position{-3, -9}, Position{0, 0}},
		{"past right and bottom", Position{70, 20}, Position{40, 10}},
		{"exact max", Position{40, 10}, Position{40, 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.ClampPosition(tt.in, size); got != tt.want {
				t.Errorf("ClampPosition(%+v) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestClampSize_FixedBounds(t *testing.T) {
	b := DefaultBounds()

	tests := []struct {
		name string
		in   Size
		want Size
	}{
		{"inside", Size{40, 15}, Size{40, 15}},
		{"below minimum", Size{-60, -85}, Size{15, 5}},
		{"above maximum", Size{500, 500}, Size{80, 25}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.ClampSize(tt.in); got != tt.want {
				t.Errorf("ClampSize(%+v) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestClampSizeAt_CapsAtRemainingRoom(t *testing.T) {
	b := DefaultBounds()

	if got := b.ClampSizeAt(Size{80, 25}, Position{30, 12}); got != (Size{50, 13}) {
		t.Fatalf("got %+v, want {50 13}", got)
	}
	// Minimum wins over remaining room.
	if got := b.ClampSizeAt(Size{80, 25}, Position{75, 23}); got != (Size{15, 5}) {
		t.Fatalf("got %+v, want {15 5}", got)
	}
}

func TestRectContains(t *testing.T) {
	r := RectOf(Position{2, 1}, Size{40, 15})
	if !r.Contains(2, 1) || !r.Contains(41, 15) {
		t.Fatalf("expected corners inside %+v", r)
	}
	if r.Contains(42, 1) || r.Contains(2, 16) || r.Contains(1, 1) {
		t.Fatalf("expected outside cells to be excluded from %+v", r)
	}
	if r.Right() != 42 || r.Bottom() != 16 {
		t.Fatalf("Right/Bottom = %d/%d", r.Right(), r.Bottom())
	}
}
