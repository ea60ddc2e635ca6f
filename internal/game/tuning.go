package game

// Tuning holds the gameplay constants. Defaults match a 60 tick/s frame
// loop; the values are overridable from the [game] table of the config file.
type Tuning struct {
	PlayerLives            int     `toml:"player_lives"`
	PlayerOrbitFactor      float64 `toml:"player_orbit_factor"` // fraction of the play radius
	PlayerTurnSpeed        float64 `toml:"player_turn_speed"`   // degrees per frame at speed 1
	PlayerFireDelay        float64 `toml:"player_fire_delay"`   // seconds between shots at speed 1
	InvulnerabilitySeconds float64 `toml:"invulnerability_seconds"`

	SpeedDefault       float64 `toml:"speed_default"`
	SpeedMin           float64 `toml:"speed_min"`
	SpeedMax           float64 `toml:"speed_max"`
	SpeedRampPerSecond float64 `toml:"speed_ramp_per_second"` // steady difficulty increase

	BulletPlayerSpeed float64 `toml:"bullet_player_speed"` // outward cells per frame at speed 1
	BulletEnemySpeed  float64 `toml:"bullet_enemy_speed"`  // inward cells per frame at speed 1
	MeteoroidMinSpeed float64 `toml:"meteoroid_min_speed"`
	MeteoroidMaxSpeed float64 `toml:"meteoroid_max_speed"`

	// Enemy movement-state policy
	GrowthZoneFactor    float64 `toml:"growth_zone_factor"` // fraction of play radius, state frozen inside
	StateFlipChance     float64 `toml:"state_flip_chance"`  // per-frame chance to flip inward/outward
	WanderChance        float64 `toml:"wander_chance"`      // per-frame chance to divert into wandering
	WanderStep          float64 `toml:"wander_step"`        // noise parameter advance per frame
	WanderAngleScale    float64 `toml:"wander_angle_scale"`
	WanderDistanceScale float64 `toml:"wander_distance_scale"`

	// Spawn scheduling: per-category cooldowns (seconds, divided by the
	// speed modifier) and probability gates
	SpawnDelayPerimeter  float64 `toml:"spawn_delay_perimeter"`
	SpawnDelayCentre     float64 `toml:"spawn_delay_centre"`
	SpawnDelayWanderer   float64 `toml:"spawn_delay_wanderer"`
	SpawnDelaySatellite  float64 `toml:"spawn_delay_satellite"`
	SpawnDelayMeteoroid  float64 `toml:"spawn_delay_meteoroid"`
	SpawnChancePerimeter float64 `toml:"spawn_chance_perimeter"`
	SpawnChanceCentre    float64 `toml:"spawn_chance_centre"`
	SpawnChanceWanderer  float64 `toml:"spawn_chance_wanderer"`
	SpawnChanceSatellite float64 `toml:"spawn_chance_satellite"`
	SpawnChanceMeteoroid float64 `toml:"spawn_chance_meteoroid"`

	MaxEnemies    int `toml:"max_enemies"`
	MaxSatellites int `toml:"max_satellites"`

	SatelliteOrbitFactor float64 `toml:"satellite_orbit_factor"` // initial distance fraction
	PlayRadiusFactor     float64 `toml:"play_radius_factor"`     // clip bound fraction of the half-extent
}

// DefaultTuning returns the stock gameplay constants
func DefaultTuning() Tuning {
	return Tuning{
		PlayerLives:            3,
		PlayerOrbitFactor:      0.35,
		PlayerTurnSpeed:        4.0,
		PlayerFireDelay:        0.18,
		InvulnerabilitySeconds: 1.2,

		SpeedDefault:       1.0,
		SpeedMin:           0.5,
		SpeedMax:           2.5,
		SpeedRampPerSecond: 0.01,

		BulletPlayerSpeed: 0.8,
		BulletEnemySpeed:  0.35,
		MeteoroidMinSpeed: 0.10,
		MeteoroidMaxSpeed: 0.25,

		GrowthZoneFactor:    0.18,
		StateFlipChance:     0.008,
		WanderChance:        0.004,
		WanderStep:          0.02,
		WanderAngleScale:    3.0,
		WanderDistanceScale: 0.25,

		SpawnDelayPerimeter:  4.0,
		SpawnDelayCentre:     2.5,
		SpawnDelayWanderer:   7.0,
		SpawnDelaySatellite:  10.0,
		SpawnDelayMeteoroid:  8.0,
		SpawnChancePerimeter: 0.5,
		SpawnChanceCentre:    0.6,
		SpawnChanceWanderer:  0.4,
		SpawnChanceSatellite: 0.5,
		SpawnChanceMeteoroid: 0.35,

		MaxEnemies:    7,
		MaxSatellites: 3,

		SatelliteOrbitFactor: 0.6,
		PlayRadiusFactor:     0.95,
	}
}
