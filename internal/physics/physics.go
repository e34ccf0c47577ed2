// Package physics provides overlap tests and clamping for axis-aligned rectangles.
package physics

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// CenterX returns the horizontal center.
func (r Rect) CenterX() float64 { return r.X + r.Width/2 }

// Overlaps reports whether r and o intersect. Touching edges do not count.
func (r Rect) Overlaps(o Rect) bool {
	return RectsOverlap(r.X, r.Y, r.Width, r.Height, o.X, o.Y, o.Width, o.Height)
}

// RectsOverlap checks two rectangles for intersection using strict
// comparisons on all four half-planes.
func RectsOverlap(ax, ay, aw, ah, bx, by, bw, bh float64) bool {
	return ax < bx+bw && ax+aw > bx && ay < by+bh && ay+ah > by
}

// Clamp limits v to [lo, hi]. When hi < lo, lo wins.
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
