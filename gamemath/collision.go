package gamemath

// Boxed is anything with an axis-aligned hitbox.
type Boxed interface {
	Position() Vec2
	Width() float64
	Height() float64
}

// Rect holds the four sides of a hitbox.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// Sides returns the hitbox edges of b.
func Sides(b Boxed) Rect {
	p := b.Position()
	return Rect{
		Left:   p.X,
		Top:    p.Y,
		Right:  p.X + b.Width(),
		Bottom: p.Y + b.Height(),
	}
}

// Overlaps reports strict overlap on both axes. Shared edges do not count.
func (r Rect) Overlaps(o Rect) bool {
	return r.Left < o.Right &&
		r.Right > o.Left &&
		r.Top < o.Bottom &&
		r.Bottom > o.Top
}

// IsColliding reports whether the hitboxes of a and b overlap.
func IsColliding(a, b Boxed) bool {
	if a == nil || b == nil {
		return false
	}
	return Sides(a).Overlaps(Sides(b))
}
