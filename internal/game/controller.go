package game

import (
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/fiskanibanda/GyrussProject/internal/assets"
)

// Controller spawns, moves and destroys all non-player entities and resolves
// every collision against the player ship. It owns the five entity
// collections exclusively and holds non-owning references to the externally
// constructed player ship and score.
//
// The frame driver calls, strictly in order, once per frame:
// SetMove, Update, SpawnEntities, CheckCollisions, CheckClipping.
type Controller struct {
	cfg   Tuning
	res   Resolution
	ship  *PlayerShip
	score *Score
	lib   *assets.Library
	rng   *rand.Rand
	clk   Clock
	log   *zap.Logger

	speed *SpeedGovernor

	enemies       []*Enemy
	bulletsPlayer []*Bullet
	bulletsEnemy  []*Bullet
	meteoroids    []*Meteoroid
	explosions    []*Explosion

	timerPerimeter time.Time
	timerCentre    time.Time
	timerWanderer  time.Time
	timerSatellite time.Time
	timerMeteoroid time.Time
	lastPlayerShot time.Time

	satellitesAlive int

	noiseX *PerlinNoise
	noiseY *PerlinNoise

	events FrameEvents
}

// centreSpawnDistance is where centre-spawned enemies and meteoroids start
const centreSpawnDistance = 2.0

// NewController wires the entity controller. The random source and clock
// are explicit dependencies so gameplay is reproducible under test.
func NewController(cfg Tuning, res Resolution, ship *PlayerShip, score *Score,
	lib *assets.Library, rng *rand.Rand, clk Clock, log *zap.Logger) *Controller {

	now := clk.Now()
	return &Controller{
		cfg:            cfg,
		res:            res,
		ship:           ship,
		score:          score,
		lib:            lib,
		rng:            rng,
		clk:            clk,
		log:            log,
		speed:          NewSpeedGovernor(cfg.SpeedDefault, cfg.SpeedMin, cfg.SpeedMax),
		noiseX:         NewPerlinNoise(rng.Int63()),
		noiseY:         NewPerlinNoise(rng.Int63()),
		timerPerimeter: now,
		timerCentre:    now,
		timerWanderer:  now,
		timerSatellite: now,
		timerMeteoroid: now,
	}
}

// PlayRadius returns the playable radius; entities beyond it are clipped
func (c *Controller) PlayRadius() float64 {
	half := c.res.W / 2
	if c.res.H/2 < half {
		half = c.res.H / 2
	}
	return half * c.cfg.PlayRadiusFactor
}

func (c *Controller) growRadius() float64 {
	return c.PlayRadius() * c.cfg.GrowthZoneFactor
}

// SetMove computes the next-frame movement intent for every live entity.
// Nothing moves until Update applies the intents.
func (c *Controller) SetMove() {
	for _, e := range c.enemies {
		if !e.Alive() {
			continue
		}
		c.setEnemyMoveState(e)
		c.setEnemyMove(e)
	}
	c.setBulletMove()
	c.setMeteoroidMove()
}

// setEnemyMoveState rolls the per-frame state transition. Inside the growth
// zone near the centre the state is frozen.
func (c *Controller) setEnemyMoveState(e *Enemy) {
	if e.InGrowthZone() {
		return
	}
	r := c.rng.Float64()
	switch {
	case r < c.cfg.StateFlipChance:
		switch e.State() {
		case SpiralOutward:
			e.SetState(SpiralInward)
		case SpiralInward:
			e.SetState(SpiralOutward)
		case Wandering:
			if c.rng.Float64() < 0.5 {
				e.SetState(SpiralInward)
			} else {
				e.SetState(SpiralOutward)
			}
		}
	case r < c.cfg.StateFlipChance+c.cfg.WanderChance:
		e.SetState(Wandering)
	}
}

// setEnemyMove records the movement intent for one enemy from its state
func (c *Controller) setEnemyMove(e *Enemy) {
	speed := c.speed.Speed()
	if e.State() == Wandering {
		pos := e.advanceNoise(c.cfg.WanderStep * speed)
		dAngle := c.noiseX.At(e.noiseOffsetX+pos) * c.cfg.WanderAngleScale * speed
		dDist := c.noiseY.At(e.noiseOffsetY+pos) * c.cfg.WanderDistanceScale * speed
		e.SetMoveWithDistance(dAngle, dDist)
		return
	}
	def := e.Def()
	radial := def.RadialSpeed * speed
	if e.State() == SpiralInward {
		radial = -radial
	}
	e.SetMoveWithDistance(def.AngularSpeed*float64(e.Direction())*speed, radial)
}

// setBulletMove records the fixed radial trajectories: player bullets fly
// outward, enemy bullets fly inward
func (c *Controller) setBulletMove() {
	speed := c.speed.Speed()
	for _, b := range c.bulletsPlayer {
		if b.Alive() {
			b.SetMoveWithDistance(0, c.cfg.BulletPlayerSpeed*speed)
		}
	}
	for _, b := range c.bulletsEnemy {
		if b.Alive() {
			b.SetMoveWithDistance(0, -c.cfg.BulletEnemySpeed*speed)
		}
	}
}

func (c *Controller) setMeteoroidMove() {
	speed := c.speed.Speed()
	for _, m := range c.meteoroids {
		if m.Alive() {
			m.SetMoveWithDistance(0, m.Speed()*speed)
		}
	}
}

// Update resets the frame event flags, applies the recorded movement
// intents, advances animation frames and rolls enemy shooting.
func (c *Controller) Update() {
	c.events = FrameEvents{}

	for _, e := range c.enemies {
		e.Update()
	}
	for _, b := range c.bulletsPlayer {
		b.Update()
	}
	for _, b := range c.bulletsEnemy {
		b.Update()
	}
	for _, m := range c.meteoroids {
		m.Update()
	}
	for _, x := range c.explosions {
		x.Update()
	}
	c.explosions = compact(c.explosions)

	c.enemyShoot()
}

// enemyShoot rolls each live enemy's per-frame chance to fire an inward
// bullet from its current position
func (c *Controller) enemyShoot() {
	for _, e := range c.enemies {
		if !e.Alive() {
			continue
		}
		if c.rng.Float64() >= e.Def().ShootChance {
			continue
		}
		b := NewBullet(c.res, e.DistanceFromCentre(), e.Angle(), 1, EntityEnemyBullet, c.lib)
		c.bulletsEnemy = append(c.bulletsEnemy, b)
		c.events.ShootingOccurred = true
	}
}

// Shoot fires the player's gun from the ship's current position, rate
// limited by the fire delay (which shrinks as the game speeds up). An
// upgraded ship fires a two-bullet spread.
func (c *Controller) Shoot() {
	now := c.clk.Now()
	if now.Sub(c.lastPlayerShot).Seconds() < c.cfg.PlayerFireDelay/c.speed.Speed() {
		return
	}
	c.lastPlayerShot = now

	dist := c.ship.DistanceFromCentre()
	angle := c.ship.Angle()
	if c.ship.IsUpgraded() {
		left := NewBullet(c.res, dist, angle-3, 1, EntityPlayerBullet, c.lib)
		right := NewBullet(c.res, dist, angle+3, 1, EntityPlayerBullet, c.lib)
		c.bulletsPlayer = append(c.bulletsPlayer, left, right)
	} else {
		c.bulletsPlayer = append(c.bulletsPlayer, NewBullet(c.res, dist, angle, 1, EntityPlayerBullet, c.lib))
	}
	c.events.ShootingOccurred = true
}

// CheckCollisions resolves the five category pairs and returns the frame's
// events. The player loses at most one life per frame; every entity that
// overlaps a vulnerable player is still cleaned up.
func (c *Controller) CheckCollisions() FrameEvents {
	vulnerable := !c.ship.IsInvulnerable()
	shipBounds := c.ship.Bounds()

	c.checkEnemiesToPlayer(vulnerable, shipBounds)
	c.checkEnemyBulletsToPlayer(vulnerable, shipBounds)
	c.checkPlayerBulletsToEnemies()
	c.checkMeteoroidsToPlayer(vulnerable, shipBounds)
	c.checkPlayerBulletsToMeteoroids()
	c.sweepDead()

	return c.events
}

func (c *Controller) checkEnemiesToPlayer(vulnerable bool, shipBounds Rect) {
	if !vulnerable {
		return
	}
	for _, e := range c.enemies {
		if !e.Alive() || !Collides(e.Bounds(), shipBounds) {
			continue
		}
		c.spawnExplosionAt(e.DistanceFromCentre(), e.Angle(), e.Scale())
		if e.Type() == EntitySatellite {
			c.satellitesAlive--
		}
		e.kill()
		c.hitPlayer()
	}
}

func (c *Controller) checkEnemyBulletsToPlayer(vulnerable bool, shipBounds Rect) {
	if !vulnerable {
		return
	}
	for _, b := range c.bulletsEnemy {
		if !b.Alive() || !Collides(b.Bounds(), shipBounds) {
			continue
		}
		c.spawnExplosionAt(b.DistanceFromCentre(), b.Angle(), 1)
		b.kill()
		c.hitPlayer()
	}
}

func (c *Controller) checkPlayerBulletsToEnemies() {
	for _, b := range c.bulletsPlayer {
		if !b.Alive() {
			continue
		}
		for _, e := range c.enemies {
			if !e.Alive() || !Collides(b.Bounds(), e.Bounds()) {
				continue
			}
			b.kill()
			c.spawnExplosionAt(e.DistanceFromCentre(), e.Angle(), e.Scale())
			c.score.RecordKill(e.Def().Points)
			c.enemyKilled(e.Type())
			e.kill()
			c.log.Debug("enemy destroyed",
				zap.Int("kind", int(e.Kind())),
				zap.Int("points", e.Def().Points))
			break
		}
	}
}

func (c *Controller) checkMeteoroidsToPlayer(vulnerable bool, shipBounds Rect) {
	if !vulnerable {
		return
	}
	for _, m := range c.meteoroids {
		if !m.Alive() || !Collides(m.Bounds(), shipBounds) {
			continue
		}
		c.spawnExplosionAt(m.DistanceFromCentre(), m.Angle(), m.Scale())
		m.kill()
		c.hitPlayer()
	}
}

// checkPlayerBulletsToMeteoroids removes bullets that strike a meteoroid.
// Meteoroids are invulnerable to bullets and survive.
func (c *Controller) checkPlayerBulletsToMeteoroids() {
	for _, b := range c.bulletsPlayer {
		if !b.Alive() {
			continue
		}
		for _, m := range c.meteoroids {
			if !m.Alive() || !Collides(b.Bounds(), m.Bounds()) {
				continue
			}
			b.kill()
			break
		}
	}
}

// hitPlayer applies the player-hit side effects at most once per frame
func (c *Controller) hitPlayer() {
	if c.events.PlayerHit {
		return
	}
	c.events.PlayerHit = true
	c.ship.Die()
	c.speed.Reset()
	c.score.RecordDeath()
	c.log.Debug("player hit", zap.Int("lives", c.ship.Lives()))
}

// enemyKilled runs the category-specific kill logic. Destroying the last
// live satellite upgrades the player's gun.
func (c *Controller) enemyKilled(t EntityType) {
	if t != EntitySatellite {
		return
	}
	c.satellitesAlive--
	if c.satellitesAlive == 0 {
		c.ship.Upgrade()
		c.log.Debug("all satellites destroyed, ship upgraded")
	}
}

func (c *Controller) spawnExplosionAt(distance, angle, scale float64) {
	c.explosions = append(c.explosions, NewExplosion(c.res, distance, angle, scale, c.lib))
	c.events.ExplosionOccurred = true
}

// CheckClipping removes entities that drifted outside the playable radius,
// or through the centre, without explosions or score.
func (c *Controller) CheckClipping() {
	bound := c.PlayRadius()
	for _, e := range c.enemies {
		if e.Alive() && clipped(e.DistanceFromCentre(), bound) {
			if e.Type() == EntitySatellite {
				c.satellitesAlive--
			}
			e.kill()
		}
	}
	for _, b := range c.bulletsPlayer {
		if b.Alive() && clipped(b.DistanceFromCentre(), bound) {
			b.kill()
		}
	}
	for _, b := range c.bulletsEnemy {
		if b.Alive() && clipped(b.DistanceFromCentre(), bound) {
			b.kill()
		}
	}
	for _, m := range c.meteoroids {
		if m.Alive() && clipped(m.DistanceFromCentre(), bound) {
			m.kill()
		}
	}
	c.sweepDead()
}

func clipped(distance, bound float64) bool {
	return distance > bound || distance < 0
}

// KillAllEnemiesOfType bulk-removes every live enemy of the given type, out
// of band: no explosions, no score. Used to clear satellites when the
// player dies.
func (c *Controller) KillAllEnemiesOfType(t EntityType) {
	for _, e := range c.enemies {
		if e.Alive() && e.Type() == t {
			e.kill()
		}
	}
	if t == EntitySatellite {
		c.satellitesAlive = 0
	}
	c.enemies = compact(c.enemies)
}

func (c *Controller) sweepDead() {
	c.enemies = compact(c.enemies)
	c.bulletsPlayer = compact(c.bulletsPlayer)
	c.bulletsEnemy = compact(c.bulletsEnemy)
	c.meteoroids = compact(c.meteoroids)
}

// compact drops dead entities from a list, keeping order and capacity
func compact[E interface{ Alive() bool }](list []E) []E {
	kept := list[:0]
	for _, e := range list {
		if e.Alive() {
			kept = append(kept, e)
		}
	}
	clear(list[len(kept):])
	return kept
}

// Read-only collection views for the renderer

func (c *Controller) Enemies() []*Enemy { return c.enemies }

func (c *Controller) PlayerBullets() []*Bullet { return c.bulletsPlayer }

func (c *Controller) EnemyBullets() []*Bullet { return c.bulletsEnemy }

func (c *Controller) Meteoroids() []*Meteoroid { return c.meteoroids }

func (c *Controller) Explosions() []*Explosion { return c.explosions }

// SatellitesAlive returns the live satellite count
func (c *Controller) SatellitesAlive() int { return c.satellitesAlive }

// ExplosionOccurred reports whether an explosion was spawned this frame
func (c *Controller) ExplosionOccurred() bool { return c.events.ExplosionOccurred }

// ShootingOccurred reports whether any bullet was fired this frame
func (c *Controller) ShootingOccurred() bool { return c.events.ShootingOccurred }

// ChangeGlobalSpeed adjusts the pacing modifier, clamped to its bounds
func (c *Controller) ChangeGlobalSpeed(amount float64) { c.speed.Change(amount) }

// ResetGlobalSpeed restores the default pacing
func (c *Controller) ResetGlobalSpeed() { c.speed.Reset() }

// Speed returns the current pacing modifier
func (c *Controller) Speed() float64 { return c.speed.Speed() }
