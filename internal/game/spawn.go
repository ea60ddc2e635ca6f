package game

import (
	"time"

	"go.uber.org/zap"
)

// SpawnEntities runs the five independent spawn categories. Each category
// fires when its cooldown has elapsed (shortened as the game speeds up), its
// probability gate passes and its population cap has room; the cooldown
// timer restarts only on an actual spawn.
func (c *Controller) SpawnEntities() {
	now := c.clk.Now()
	basicEnemies := len(c.enemies) - c.satellitesAlive

	if c.shouldSpawn(now, c.timerPerimeter, c.cfg.SpawnDelayPerimeter,
		c.cfg.SpawnChancePerimeter, basicEnemies < c.cfg.MaxEnemies) {
		c.spawnBasicEnemy(c.PlayRadius(), SpiralInward)
		c.timerPerimeter = now
		basicEnemies++
	}

	if c.shouldSpawn(now, c.timerCentre, c.cfg.SpawnDelayCentre,
		c.cfg.SpawnChanceCentre, basicEnemies < c.cfg.MaxEnemies) {
		c.spawnBasicEnemy(centreSpawnDistance, SpiralOutward)
		c.timerCentre = now
		basicEnemies++
	}

	if c.shouldSpawn(now, c.timerWanderer, c.cfg.SpawnDelayWanderer,
		c.cfg.SpawnChanceWanderer, basicEnemies < c.cfg.MaxEnemies) {
		c.spawnBasicEnemy(c.PlayRadius()/2, Wandering)
		c.timerWanderer = now
	}

	if c.shouldSpawn(now, c.timerSatellite, c.cfg.SpawnDelaySatellite,
		c.cfg.SpawnChanceSatellite, c.satellitesAlive < c.cfg.MaxSatellites) {
		c.spawnSatellite()
		c.timerSatellite = now
	}

	if c.shouldSpawn(now, c.timerMeteoroid, c.cfg.SpawnDelayMeteoroid,
		c.cfg.SpawnChanceMeteoroid, true) {
		c.spawnMeteoroid()
		c.timerMeteoroid = now
	}
}

// shouldSpawn gates one category: cap first so a full population consumes
// neither the cooldown nor a random draw
func (c *Controller) shouldSpawn(now, last time.Time, delay, chance float64, capOK bool) bool {
	if !capOK {
		return false
	}
	if now.Sub(last).Seconds() < delay/c.speed.Speed() {
		return false
	}
	return c.rng.Float64() < chance
}

// spawnBasicEnemy adds a grey or purple fighter at a random angle
func (c *Controller) spawnBasicEnemy(distance float64, state MovementState) {
	kind := KindFighterGrey
	if c.rng.Float64() < 0.5 {
		kind = KindFighterPurple
	}
	direction := Clockwise
	if c.rng.Float64() < 0.5 {
		direction = CounterClockwise
	}
	e := NewEnemy(c.res, distance, c.rng.Float64()*360, kind, state,
		direction, c.growRadius(), c.lib, c.rng)
	c.enemies = append(c.enemies, e)
	c.log.Debug("spawned enemy",
		zap.Int("kind", int(kind)),
		zap.Int("state", int(state)),
		zap.Float64("distance", distance))
}

// spawnSatellite adds a satellite on the outer orbit and bumps the live
// satellite count that the upgrade logic tracks
func (c *Controller) spawnSatellite() {
	direction := Clockwise
	if c.rng.Float64() < 0.5 {
		direction = CounterClockwise
	}
	e := NewEnemy(c.res, c.PlayRadius()*c.cfg.SatelliteOrbitFactor, c.rng.Float64()*360,
		KindSatellite, SpiralOutward, direction, c.growRadius(), c.lib, c.rng)
	c.enemies = append(c.enemies, e)
	c.satellitesAlive++
	c.log.Debug("spawned satellite", zap.Int("alive", c.satellitesAlive))
}

// spawnMeteoroid adds an indestructible meteoroid flying straight out from
// the centre at a random speed
func (c *Controller) spawnMeteoroid() {
	speed := c.cfg.MeteoroidMinSpeed +
		c.rng.Float64()*(c.cfg.MeteoroidMaxSpeed-c.cfg.MeteoroidMinSpeed)
	m := NewMeteoroid(c.res, centreSpawnDistance, c.rng.Float64()*360, speed, c.lib)
	c.meteoroids = append(c.meteoroids, m)
	c.log.Debug("spawned meteoroid", zap.Float64("speed", speed))
}
