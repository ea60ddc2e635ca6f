package game

import "github.com/fiskanibanda/GyrussProject/internal/assets"

// EnemyKind selects the stat row for an enemy ship
type EnemyKind int

const (
	KindFighterGrey EnemyKind = iota
	KindFighterPurple
	KindSatellite
)

// EnemyKindDef holds the per-kind stats
type EnemyKindDef struct {
	Type         EntityType
	Texture      assets.ID
	Points       int     // score awarded on kill
	ShootChance  float64 // per-frame chance to fire while alive
	AngularSpeed float64 // degrees per frame at speed modifier 1
	RadialSpeed  float64 // cells per frame at speed modifier 1
	Scale        float64
}

var enemyKinds = [3]EnemyKindDef{
	// Grey fighter: standard spiral ship
	{
		Type: EntityEnemy, Texture: assets.TexEnemyGrey,
		Points: 100, ShootChance: 0.010,
		AngularSpeed: 2.0, RadialSpeed: 0.10, Scale: 1.0,
	},
	// Purple fighter: faster orbit, shoots more
	{
		Type: EntityEnemy, Texture: assets.TexEnemyPurple,
		Points: 150, ShootChance: 0.016,
		AngularSpeed: 2.6, RadialSpeed: 0.12, Scale: 1.0,
	},
	// Satellite: slow drifter, tracked separately for the gun upgrade
	{
		Type: EntitySatellite, Texture: assets.TexSatellite,
		Points: 250, ShootChance: 0.006,
		AngularSpeed: 1.2, RadialSpeed: 0.04, Scale: 1.0,
	},
}

// KindDef returns the definition for an enemy kind
func KindDef(kind EnemyKind) EnemyKindDef {
	if kind < 0 || int(kind) >= len(enemyKinds) {
		return enemyKinds[KindFighterGrey]
	}
	return enemyKinds[kind]
}
