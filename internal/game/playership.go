package game

import (
	"time"

	"github.com/fiskanibanda/GyrussProject/internal/assets"
)

// PlayerShip orbits the centre at a fixed radius, rotating by the intent
// recorded each frame. After a respawn it is invulnerable for a time-boxed
// window during which collisions are ignored. It is constructed by the frame
// driver and referenced, not owned, by the entity controller.
type PlayerShip struct {
	body
	clk Clock

	isMoving     bool
	isShooting   bool
	invulnerable bool
	invulnSince  time.Time
	invulnWindow time.Duration
	upgraded     bool

	frame  int
	frames int
}

// NewPlayerShip creates the player at the bottom of its movement circle
func NewPlayerShip(res Resolution, orbit, scale float64, lives int,
	invulnWindow time.Duration, lib *assets.Library, clk Clock) *PlayerShip {

	sprite := lib.Get(assets.TexPlayerShip)
	p := &PlayerShip{
		body: body{
			res:      res,
			kind:     EntityPlayerShip,
			distance: orbit,
			scale:    scale,
			lives:    lives,
			width:    float64(sprite.Width()),
			height:   float64(sprite.Height()),
		},
		clk:          clk,
		invulnWindow: invulnWindow,
		frames:       sprite.FrameCount(),
	}
	p.Reset()
	return p
}

// SetMove records the rotation intent for the next update
func (p *PlayerShip) SetMove(angleDelta float64) {
	p.isMoving = true
	p.futureAngle = angleDelta
}

// SetShoot marks the ship as firing this frame
func (p *PlayerShip) SetShoot() { p.isShooting = true }

func (p *PlayerShip) IsMoving() bool { return p.isMoving }

func (p *PlayerShip) IsShooting() bool { return p.isShooting }

func (p *PlayerShip) IsInvulnerable() bool { return p.invulnerable }

func (p *PlayerShip) IsUpgraded() bool { return p.upgraded }

// Upgrade grants the double-gun shot
func (p *PlayerShip) Upgrade() { p.upgraded = true }

// Reset respawns the ship at the bottom of the circle with a fresh
// invulnerability window. Upgrades are lost.
func (p *PlayerShip) Reset() {
	p.angle = 0
	p.futureAngle = 0
	p.futureDistance = 0
	p.isMoving = false
	p.isShooting = false
	p.upgraded = false
	p.invulnerable = true
	p.invulnSince = p.clk.Now()
}

// Die removes one life and respawns the ship
func (p *PlayerShip) Die() {
	if p.lives > 0 {
		p.lives--
	}
	p.Reset()
}

// Frame returns the animation frame to draw
func (p *PlayerShip) Frame() int { return p.frame }

// Update applies any pending rotation, advances the thruster animation,
// expires the invulnerability window and clears the per-frame flags
func (p *PlayerShip) Update() {
	if p.isMoving {
		p.frame = (p.frame + 1) % p.frames
		p.Move()
	}
	if p.invulnerable && p.clk.Now().Sub(p.invulnSince) > p.invulnWindow {
		p.invulnerable = false
	}
	p.isMoving = false
	p.futureAngle = 0
	p.isShooting = false
}
