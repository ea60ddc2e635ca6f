package game

import (
	"math/rand"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/fiskanibanda/GyrussProject/internal/assets"
)

func newTestController(tune func(*Tuning)) (*Controller, *PlayerShip, *Score, *fakeClock) {
	cfg := DefaultTuning()
	if tune != nil {
		tune(&cfg)
	}
	clk := newFakeClock()
	lib := assets.NewLibrary()
	rng := rand.New(rand.NewSource(1))
	res := Resolution{W: 80, H: 40}

	invuln := time.Duration(cfg.InvulnerabilitySeconds * float64(time.Second))
	ship := NewPlayerShip(res, 13, 1, cfg.PlayerLives, invuln, lib, clk)
	score := NewScore(clk)
	c := NewController(cfg, res, ship, score, lib, rng, clk, zap.NewNop())
	return c, ship, score, clk
}

// makeVulnerable runs the invulnerability window out
func makeVulnerable(ship *PlayerShip, clk *fakeClock) {
	clk.Advance(5 * time.Second)
	ship.Update()
}

func (c *Controller) addEnemy(distance, angle float64, kind EnemyKind) *Enemy {
	e := NewEnemy(c.res, distance, angle, kind, SpiralOutward, Clockwise, c.growRadius(), c.lib, c.rng)
	c.enemies = append(c.enemies, e)
	if kind == KindSatellite {
		c.satellitesAlive++
	}
	return e
}

func (c *Controller) addPlayerBullet(distance, angle float64) *Bullet {
	b := NewBullet(c.res, distance, angle, 1, EntityPlayerBullet, c.lib)
	c.bulletsPlayer = append(c.bulletsPlayer, b)
	return b
}

func TestSpawnCapsNeverExceeded(t *testing.T) {
	c, _, _, clk := newTestController(func(cfg *Tuning) {
		cfg.SpawnDelayPerimeter = 0
		cfg.SpawnDelayCentre = 0
		cfg.SpawnDelayWanderer = 0
		cfg.SpawnDelaySatellite = 0
		cfg.SpawnDelayMeteoroid = 0
		cfg.SpawnChancePerimeter = 1
		cfg.SpawnChanceCentre = 1
		cfg.SpawnChanceWanderer = 1
		cfg.SpawnChanceSatellite = 1
		cfg.SpawnChanceMeteoroid = 1
	})

	for i := 0; i < 200; i++ {
		clk.Advance(time.Second)
		c.SpawnEntities()

		basic := len(c.Enemies()) - c.SatellitesAlive()
		if basic > c.cfg.MaxEnemies {
			t.Fatalf("frame %d: %d basic enemies, cap %d", i, basic, c.cfg.MaxEnemies)
		}
		if c.SatellitesAlive() > c.cfg.MaxSatellites {
			t.Fatalf("frame %d: %d satellites, cap %d", i, c.SatellitesAlive(), c.cfg.MaxSatellites)
		}
	}

	if basic := len(c.Enemies()) - c.SatellitesAlive(); basic != c.cfg.MaxEnemies {
		t.Errorf("basic enemies = %d, want the cap %d reached", basic, c.cfg.MaxEnemies)
	}
	if c.SatellitesAlive() != c.cfg.MaxSatellites {
		t.Errorf("satellites = %d, want the cap %d reached", c.SatellitesAlive(), c.cfg.MaxSatellites)
	}
	if len(c.Meteoroids()) == 0 {
		t.Error("meteoroids have no cap and should have spawned")
	}
}

func TestSpawnCooldownGates(t *testing.T) {
	c, _, _, clk := newTestController(func(cfg *Tuning) {
		cfg.SpawnDelayPerimeter = 1.0
		cfg.SpawnChancePerimeter = 1
		cfg.SpawnChanceCentre = 0
		cfg.SpawnChanceWanderer = 0
		cfg.SpawnChanceSatellite = 0
		cfg.SpawnChanceMeteoroid = 0
	})

	c.SpawnEntities()
	if len(c.Enemies()) != 0 {
		t.Fatal("cooldown not elapsed, nothing should spawn")
	}

	clk.Advance(500 * time.Millisecond)
	c.SpawnEntities()
	if len(c.Enemies()) != 0 {
		t.Fatal("half the cooldown elapsed, nothing should spawn")
	}

	clk.Advance(600 * time.Millisecond)
	c.SpawnEntities()
	if len(c.Enemies()) != 1 {
		t.Fatalf("cooldown elapsed, want 1 spawn, got %d", len(c.Enemies()))
	}

	// the timer restarted on the spawn
	c.SpawnEntities()
	if len(c.Enemies()) != 1 {
		t.Fatalf("timer should have restarted, got %d enemies", len(c.Enemies()))
	}
}

func TestSpawnCooldownShrinksWithSpeed(t *testing.T) {
	c, _, _, clk := newTestController(func(cfg *Tuning) {
		cfg.SpawnDelayPerimeter = 2.0
		cfg.SpawnChancePerimeter = 1
		cfg.SpawnChanceCentre = 0
		cfg.SpawnChanceWanderer = 0
		cfg.SpawnChanceSatellite = 0
		cfg.SpawnChanceMeteoroid = 0
		cfg.SpeedMax = 2.0
	})
	c.ChangeGlobalSpeed(1.0) // speed 2, effective delay 1s

	clk.Advance(1100 * time.Millisecond)
	c.SpawnEntities()
	if len(c.Enemies()) != 1 {
		t.Fatalf("at speed 2 the 2s delay is 1s, want 1 spawn, got %d", len(c.Enemies()))
	}
}

func TestSpawnChanceZeroNeverSpawns(t *testing.T) {
	c, _, _, clk := newTestController(func(cfg *Tuning) {
		cfg.SpawnDelayPerimeter = 0
		cfg.SpawnDelayCentre = 0
		cfg.SpawnDelayWanderer = 0
		cfg.SpawnDelaySatellite = 0
		cfg.SpawnDelayMeteoroid = 0
		cfg.SpawnChancePerimeter = 0
		cfg.SpawnChanceCentre = 0
		cfg.SpawnChanceWanderer = 0
		cfg.SpawnChanceSatellite = 0
		cfg.SpawnChanceMeteoroid = 0
	})
	for i := 0; i < 100; i++ {
		clk.Advance(time.Second)
		c.SpawnEntities()
	}
	if len(c.Enemies()) != 0 || len(c.Meteoroids()) != 0 {
		t.Error("zero probability gates must never spawn")
	}
}

func TestShootFiresWithCooldown(t *testing.T) {
	c, _, _, clk := newTestController(nil)

	c.Shoot()
	if len(c.PlayerBullets()) != 1 {
		t.Fatalf("bullets = %d, want 1", len(c.PlayerBullets()))
	}
	if !c.ShootingOccurred() {
		t.Error("Shoot must raise the shooting event")
	}

	c.Shoot()
	if len(c.PlayerBullets()) != 1 {
		t.Error("fire delay must suppress the second shot")
	}

	clk.Advance(time.Second)
	c.Shoot()
	if len(c.PlayerBullets()) != 2 {
		t.Errorf("after the delay: bullets = %d, want 2", len(c.PlayerBullets()))
	}
}

func TestUpgradedShipFiresSpread(t *testing.T) {
	c, ship, _, _ := newTestController(nil)
	ship.Upgrade()

	c.Shoot()
	bullets := c.PlayerBullets()
	if len(bullets) != 2 {
		t.Fatalf("upgraded shot: bullets = %d, want 2", len(bullets))
	}
	if bullets[0].Angle() == bullets[1].Angle() {
		t.Error("spread bullets must diverge")
	}
}

func TestEnemyCollisionCostsOneLife(t *testing.T) {
	c, ship, score, clk := newTestController(nil)
	makeVulnerable(ship, clk)

	// two enemies on the ship, only one life may be lost
	c.addEnemy(13, 0, KindFighterGrey)
	c.addEnemy(13, 0, KindFighterPurple)

	ev := c.CheckCollisions()
	if !ev.PlayerHit {
		t.Fatal("want a player hit")
	}
	if ship.Lives() != c.cfg.PlayerLives-1 {
		t.Errorf("lives = %d, want exactly one lost", ship.Lives())
	}
	if len(c.Enemies()) != 0 {
		t.Errorf("both colliding enemies must be cleaned up, %d left", len(c.Enemies()))
	}
	if !ev.ExplosionOccurred {
		t.Error("want explosions for the destroyed enemies")
	}
	if score.PlayerDeaths() != 1 {
		t.Errorf("deaths = %d, want 1", score.PlayerDeaths())
	}
	if c.Speed() != c.cfg.SpeedDefault {
		t.Errorf("speed = %g, want reset to default on death", c.Speed())
	}
}

func TestInvulnerablePlayerIgnoresCollisions(t *testing.T) {
	c, ship, _, _ := newTestController(nil)
	if ship.IsInvulnerable() != true {
		t.Fatal("fresh ship should be invulnerable")
	}
	c.addEnemy(13, 0, KindFighterGrey)

	ev := c.CheckCollisions()
	if ev.PlayerHit {
		t.Error("invulnerable ship must not be hit")
	}
	if len(c.Enemies()) != 1 {
		t.Error("enemy must survive a collision with an invulnerable ship")
	}
}

func TestPlayerBulletKillsEnemy(t *testing.T) {
	c, _, score, _ := newTestController(nil)
	c.addEnemy(17, 90, KindFighterGrey)
	c.addPlayerBullet(17, 90)

	ev := c.CheckCollisions()
	if len(c.Enemies()) != 0 {
		t.Error("enemy must be destroyed")
	}
	if len(c.PlayerBullets()) != 0 {
		t.Error("bullet must be consumed")
	}
	if !ev.ExplosionOccurred {
		t.Error("want an explosion")
	}
	if score.Points() != KindDef(KindFighterGrey).Points {
		t.Errorf("points = %d, want %d", score.Points(), KindDef(KindFighterGrey).Points)
	}
	if score.EnemiesKilled() != 1 {
		t.Errorf("kills = %d, want 1", score.EnemiesKilled())
	}
}

func TestLastSatelliteKillUpgradesShip(t *testing.T) {
	c, ship, _, _ := newTestController(nil)
	c.addEnemy(17, 90, KindSatellite)
	c.addPlayerBullet(17, 90)

	c.CheckCollisions()
	if c.SatellitesAlive() != 0 {
		t.Errorf("satellites alive = %d, want 0", c.SatellitesAlive())
	}
	if !ship.IsUpgraded() {
		t.Error("destroying the last satellite must upgrade the ship in the same frame")
	}
}

func TestNonLastSatelliteKillDoesNotUpgrade(t *testing.T) {
	c, ship, _, _ := newTestController(nil)
	c.addEnemy(17, 90, KindSatellite)
	c.addEnemy(17, 270, KindSatellite)
	c.addPlayerBullet(17, 90)

	c.CheckCollisions()
	if c.SatellitesAlive() != 1 {
		t.Errorf("satellites alive = %d, want 1", c.SatellitesAlive())
	}
	if ship.IsUpgraded() {
		t.Error("a satellite is still alive, no upgrade yet")
	}
}

func TestKillAllSatellitesDoesNotUpgrade(t *testing.T) {
	c, ship, score, _ := newTestController(nil)
	c.addEnemy(17, 90, KindSatellite)
	c.addEnemy(17, 270, KindSatellite)

	c.KillAllEnemiesOfType(EntitySatellite)
	if len(c.Enemies()) != 0 {
		t.Errorf("enemies = %d, want 0", len(c.Enemies()))
	}
	if c.SatellitesAlive() != 0 {
		t.Errorf("satellites alive = %d, want 0", c.SatellitesAlive())
	}
	if ship.IsUpgraded() {
		t.Error("bulk removal must not trigger the upgrade")
	}
	if score.Points() != 0 {
		t.Errorf("bulk removal must not score, got %d", score.Points())
	}
	if c.ExplosionOccurred() {
		t.Error("bulk removal must not spawn explosions")
	}
}

func TestBulletBouncesOffMeteoroid(t *testing.T) {
	c, _, score, _ := newTestController(nil)
	c.meteoroids = append(c.meteoroids, NewMeteoroid(c.res, 17, 90, 0.2, c.lib))
	c.addPlayerBullet(17, 90)

	ev := c.CheckCollisions()
	if len(c.PlayerBullets()) != 0 {
		t.Error("bullet must be removed")
	}
	if len(c.Meteoroids()) != 1 {
		t.Error("meteoroid must survive bullets")
	}
	if ev.ExplosionOccurred {
		t.Error("no explosion for a bullet absorbed by a meteoroid")
	}
	if score.Points() != 0 {
		t.Errorf("no score for meteoroids, got %d", score.Points())
	}
}

func TestMeteoroidHitsPlayer(t *testing.T) {
	c, ship, _, clk := newTestController(nil)
	makeVulnerable(ship, clk)
	c.meteoroids = append(c.meteoroids, NewMeteoroid(c.res, 13, 0, 0.2, c.lib))

	ev := c.CheckCollisions()
	if !ev.PlayerHit {
		t.Fatal("meteoroid on the ship must hit")
	}
	if len(c.Meteoroids()) != 0 {
		t.Error("the colliding meteoroid must be removed")
	}
}

func TestCheckClippingRemovesOutOfField(t *testing.T) {
	c, _, score, _ := newTestController(nil)
	bound := c.PlayRadius()

	c.addEnemy(bound+5, 0, KindFighterGrey)
	c.addEnemy(bound+5, 90, KindSatellite)
	c.addPlayerBullet(bound+1, 0)
	c.bulletsEnemy = append(c.bulletsEnemy, NewBullet(c.res, -0.5, 0, 1, EntityEnemyBullet, c.lib))
	c.meteoroids = append(c.meteoroids, NewMeteoroid(c.res, bound+2, 0, 0.2, c.lib))

	// one of each well inside the field survives
	kept := c.addEnemy(10, 45, KindFighterGrey)

	c.CheckClipping()
	if len(c.Enemies()) != 1 || c.Enemies()[0] != kept {
		t.Errorf("want only the in-field enemy kept, have %d", len(c.Enemies()))
	}
	if c.SatellitesAlive() != 0 {
		t.Errorf("clipped satellite must leave the live count, got %d", c.SatellitesAlive())
	}
	if len(c.PlayerBullets()) != 0 || len(c.EnemyBullets()) != 0 || len(c.Meteoroids()) != 0 {
		t.Error("out-of-field projectiles must be removed")
	}
	if c.ExplosionOccurred() {
		t.Error("clipping must not spawn explosions")
	}
	if score.Points() != 0 {
		t.Errorf("clipping must not score, got %d", score.Points())
	}
}

func TestUpdateResetsFrameEvents(t *testing.T) {
	c, _, _, _ := newTestController(nil)
	c.Shoot()
	if !c.ShootingOccurred() {
		t.Fatal("Shoot must raise the event")
	}
	c.Update()
	if c.ShootingOccurred() || c.ExplosionOccurred() {
		t.Error("Update must reset the frame events")
	}
}

func TestGrowthZoneFreezesState(t *testing.T) {
	c, _, _, _ := newTestController(func(cfg *Tuning) {
		cfg.StateFlipChance = 1 // would flip every frame outside the zone
	})
	e := c.addEnemy(c.growRadius()/2, 0, KindFighterGrey)
	e.SetState(SpiralOutward)

	for i := 0; i < 50; i++ {
		c.SetMove()
	}
	if e.State() != SpiralOutward {
		t.Errorf("state changed to %v inside the growth zone", e.State())
	}
}

func TestSpiralMoveFollowsKindStats(t *testing.T) {
	c, _, _, _ := newTestController(func(cfg *Tuning) {
		cfg.StateFlipChance = 0
		cfg.WanderChance = 0
	})
	e := c.addEnemy(15, 0, KindFighterGrey)
	e.SetState(SpiralInward)
	def := e.Def()

	c.SetMove()
	e.Update()

	wantAngle := AngleFilter(def.AngularSpeed * c.Speed())
	if got := e.Angle(); got != wantAngle {
		t.Errorf("angle = %g, want %g", got, wantAngle)
	}
	wantDist := 15 - def.RadialSpeed*c.Speed()
	if got := e.DistanceFromCentre(); got < wantDist-1e-9 || got > wantDist+1e-9 {
		t.Errorf("distance = %g, want %g", got, wantDist)
	}
}

func TestWanderingMoveIsBounded(t *testing.T) {
	c, _, _, _ := newTestController(func(cfg *Tuning) {
		cfg.StateFlipChance = 0
		cfg.WanderChance = 0
	})
	e := c.addEnemy(15, 0, KindFighterGrey)
	e.SetState(Wandering)

	maxAngle := c.cfg.WanderAngleScale * c.cfg.SpeedMax
	maxDist := c.cfg.WanderDistanceScale * c.cfg.SpeedMax
	for i := 0; i < 200; i++ {
		before := e.DistanceFromCentre()
		beforeAngle := e.Angle()
		c.SetMove()
		e.Update()

		dDist := e.DistanceFromCentre() - before
		if dDist < -maxDist || dDist > maxDist {
			t.Fatalf("frame %d: wander distance delta %g out of bounds", i, dDist)
		}
		dAngle := angularDelta(beforeAngle, e.Angle())
		if dAngle < -maxAngle || dAngle > maxAngle {
			t.Fatalf("frame %d: wander angle delta %g out of bounds", i, dAngle)
		}
	}
}

// angularDelta is the signed smallest rotation from a to b
func angularDelta(a, b float64) float64 {
	d := AngleFilter(b - a)
	if d > 180 {
		d -= 360
	}
	return d
}

func TestEnemiesEventuallyShoot(t *testing.T) {
	c, _, _, _ := newTestController(func(cfg *Tuning) {
		cfg.StateFlipChance = 0
		cfg.WanderChance = 0
	})
	c.addEnemy(15, 0, KindFighterGrey)
	c.addEnemy(15, 120, KindFighterPurple)

	for i := 0; i < 2000 && len(c.EnemyBullets()) == 0; i++ {
		c.Update()
	}
	if len(c.EnemyBullets()) == 0 {
		t.Fatal("no enemy fired in 2000 frames")
	}
}
