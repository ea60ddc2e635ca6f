package game

// EntityType identifies the category of a game object
type EntityType int

const (
	EntityPlayerShip EntityType = iota
	EntityEnemy
	EntitySatellite
	EntityPlayerBullet
	EntityEnemyBullet
	EntityMeteoroid
	EntityExplosion
)

// MovementState is an enemy's current flight pattern
type MovementState int

const (
	SpiralOutward MovementState = iota
	SpiralInward
	Wandering
)

// MovementDirection is the orbital winding of an enemy around the centre
type MovementDirection int

const (
	Clockwise        MovementDirection = 1
	CounterClockwise MovementDirection = -1
)

// Resolution is the size of the play area in screen cells
type Resolution struct {
	W, H float64
}

// Vec2 is a screen-space position
type Vec2 struct {
	X, Y float64
}

// FrameEvents reports what happened during the current frame.
// Update resets all fields; the sub-operations of the frame set them.
type FrameEvents struct {
	PlayerHit         bool
	ExplosionOccurred bool
	ShootingOccurred  bool
}
