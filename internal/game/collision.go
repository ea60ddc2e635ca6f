package game

// Rect is an axis-aligned bounding box in screen cells
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Intersects reports whether two boxes overlap. Touching edges count as an
// overlap.
func (r Rect) Intersects(o Rect) bool {
	return r.MinX <= o.MaxX && o.MinX <= r.MaxX &&
		r.MinY <= o.MaxY && o.MinY <= r.MaxY
}

// Collides reports whether two sprite bounds overlap. Symmetric in its
// arguments.
func Collides(a, b Rect) bool {
	return a.Intersects(b)
}
