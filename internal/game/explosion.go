package game

import "github.com/fiskanibanda/GyrussProject/internal/assets"

// Explosion marks a destroyed entity's position. It never moves; each
// update advances the animation one frame and the explosion dies exactly
// when the terminal frame is reached.
type Explosion struct {
	body
	frame  int
	frames int
}

// NewExplosion creates an explosion at the given polar position
func NewExplosion(res Resolution, distance, angle, scale float64, lib *assets.Library) *Explosion {
	sprite := lib.Get(assets.TexExplosion)
	return &Explosion{
		body: body{
			res:      res,
			kind:     EntityExplosion,
			distance: distance,
			angle:    AngleFilter(angle),
			scale:    scale,
			lives:    1,
			width:    float64(sprite.Width()),
			height:   float64(sprite.Height()),
		},
		frames: sprite.FrameCount(),
	}
}

// SetMove is a no-op: explosions do not move
func (x *Explosion) SetMove(angleDelta float64) {}

// SetMoveWithDistance is a no-op: explosions do not move
func (x *Explosion) SetMoveWithDistance(angleDelta, distanceDelta float64) {}

// Move is a no-op: explosions do not move
func (x *Explosion) Move() {}

// Update advances the animation and kills the explosion on the terminal
// frame
func (x *Explosion) Update() {
	if !x.Alive() {
		return
	}
	x.frame++
	if x.frame >= x.frames {
		x.kill()
	}
}

// Frame returns the animation frame to draw
func (x *Explosion) Frame() int {
	if x.frame >= x.frames {
		return x.frames - 1
	}
	return x.frame
}
