package physics

import "testing"

func TestRectsOverlap(t *testing.T) {
	base := Rect{X: 10, Y: 10, Width: 20, Height: 20}
	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"identical", base, true},
		{"contained", Rect{X: 15, Y: 15, Width: 2, Height: 2}, true},
		{"partial", Rect{X: 25, Y: 25, Width: 20, Height: 20}, true},
		{"touching right edge", Rect{X: 30, Y: 10, Width: 5, Height: 5}, false},
		{"touching bottom edge", Rect{X: 10, Y: 30, Width: 5, Height: 5}, false},
		{"touching left edge", Rect{X: 5, Y: 10, Width: 5, Height: 5}, false},
		{"above", Rect{X: 10, Y: -10, Width: 20, Height: 5}, false},
		{"far right", Rect{X: 100, Y: 10, Width: 20, Height: 20}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Overlaps(tt.other); got != tt.want {
				t.Errorf("Overlaps() = %v, want %v", got, tt.want)
			}
			if got := tt.other.Overlaps(base); got != tt.want {
				t.Errorf("Overlaps() reversed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float64
	}{
		{5, 0, 10, 5},
		{-3, 0, 10, 0},
		{12, 0, 10, 10},
		{5, 3, 1, 3},
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestRectEdges(t *testing.T) {
	r := Rect{X: 2, Y: 4, Width: 6, Height: 8}
	if r.Right() != 8 || r.Bottom() != 12 || r.CenterX() != 5 {
		t.Errorf("edges = (%v, %v, %v), want (8, 12, 5)", r.Right(), r.Bottom(), r.CenterX())
	}
}
