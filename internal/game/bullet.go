package game

import "github.com/fiskanibanda/GyrussProject/internal/assets"

// Bullet is a projectile on a fixed radial trajectory: outward for player
// bullets, inward for enemy bullets. Bullets have no movement state machine.
type Bullet struct {
	body
}

// NewBullet creates a bullet at the given polar position. typ must be
// EntityPlayerBullet or EntityEnemyBullet.
func NewBullet(res Resolution, distance, angle, scale float64, typ EntityType, lib *assets.Library) *Bullet {
	tex := assets.TexBulletPlayer
	if typ == EntityEnemyBullet {
		tex = assets.TexBulletEnemy
	}
	sprite := lib.Get(tex)
	return &Bullet{
		body: body{
			res:      res,
			kind:     typ,
			distance: distance,
			angle:    AngleFilter(angle),
			scale:    scale,
			lives:    1,
			width:    float64(sprite.Width()),
			height:   float64(sprite.Height()),
		},
	}
}

// Update applies the recorded movement intent
func (b *Bullet) Update() {
	if !b.Alive() {
		return
	}
	b.Move()
}
