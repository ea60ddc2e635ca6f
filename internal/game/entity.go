package game

// body is the positional state shared by every entity. Position is always a
// pure function of (distance-from-centre, angle, resolution); the pending
// movement intent recorded by SetMove is only applied when Move runs, once
// per frame.
type body struct {
	res      Resolution
	kind     EntityType
	distance float64
	angle    float64 // degrees, [0, 360)
	scale    float64
	lives    int
	width    float64 // unscaled sprite width in cells
	height   float64

	futureAngle    float64
	futureDistance float64
}

// SetMove records an angle-only movement intent for the next Move
func (b *body) SetMove(angleDelta float64) {
	b.futureAngle = angleDelta
	b.futureDistance = 0
}

// SetMoveWithDistance records an angle and distance intent for the next Move
func (b *body) SetMoveWithDistance(angleDelta, distanceDelta float64) {
	b.futureAngle = angleDelta
	b.futureDistance = distanceDelta
}

// Move applies the recorded intent and clears it
func (b *body) Move() {
	b.angle = AngleFilter(b.angle + b.futureAngle)
	b.distance += b.futureDistance
	b.futureAngle = 0
	b.futureDistance = 0
}

// Position returns the screen position derived from the polar coordinates
func (b *body) Position() Vec2 {
	return PolarToScreen(b.distance, b.angle, b.res)
}

// Bounds returns the sprite's axis-aligned bounding box at the current
// position. Bounds never collapse below one cell.
func (b *body) Bounds() Rect {
	w := b.width * b.scale
	h := b.height * b.scale
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	p := b.Position()
	return Rect{
		MinX: p.X - w/2,
		MinY: p.Y - h/2,
		MaxX: p.X + w/2,
		MaxY: p.Y + h/2,
	}
}

// Die removes one life, clamped at zero
func (b *body) Die() {
	if b.lives > 0 {
		b.lives--
	}
}

// kill zeroes the lives and cancels any residual movement intent so a
// removed entity can never act again this frame
func (b *body) kill() {
	b.lives = 0
	b.futureAngle = 0
	b.futureDistance = 0
}

func (b *body) Alive() bool { return b.lives > 0 }

func (b *body) Lives() int { return b.lives }

func (b *body) Type() EntityType { return b.kind }

func (b *body) Angle() float64 { return b.angle }

func (b *body) DistanceFromCentre() float64 { return b.distance }

func (b *body) Scale() float64 { return b.scale }
