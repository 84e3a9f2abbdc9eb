package internal

// An axis-aligned rectangle. Top is the smaller y, matching the window
// coordinates the points originally come from.
type Rect struct {
	Left, Right float64
	Top, Bottom float64
}

// NewRect builds the rectangle delimited by two corners.
func NewRect(a, b Vec2) Rect {
	r := Rect{Left: a.X, Right: b.X, Top: a.Y, Bottom: b.Y}
	if b.X < a.X {
		r.Left, r.Right = b.X, a.X
	}
	if b.Y < a.Y {
		r.Top, r.Bottom = b.Y, a.Y
	}
	return r
}

func (r Rect) ContainsPoint(p Vec2) bool {
	return p.X >= r.Left && p.X <= r.Right && p.Y >= r.Top && p.Y <= r.Bottom
}
