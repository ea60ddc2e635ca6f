package game

import (
	"math/rand"

	"github.com/fiskanibanda/GyrussProject/internal/assets"
)

// Enemy is a hostile ship flying one of three patterns: spiralling outward,
// spiralling inward, or wandering on smoothed noise. The controller decides
// each frame's movement intent; the enemy only carries its state.
type Enemy struct {
	body
	kind      EnemyKind
	def       EnemyKindDef
	state     MovementState
	direction MovementDirection

	frame  int
	frames int

	// wander sampling: a slowly advancing parameter plus per-enemy offsets
	// so two wanderers never trace the same path
	noisePos     float64
	noiseOffsetX float64
	noiseOffsetY float64

	growRadius float64 // distance inside which the ship grows and is state-frozen
}

// NewEnemy creates an enemy at the given polar position
func NewEnemy(res Resolution, distance, angle float64, kind EnemyKind, state MovementState,
	direction MovementDirection, growRadius float64, lib *assets.Library, rng *rand.Rand) *Enemy {

	def := KindDef(kind)
	sprite := lib.Get(def.Texture)
	return &Enemy{
		body: body{
			res:      res,
			kind:     def.Type,
			distance: distance,
			angle:    AngleFilter(angle),
			scale:    def.Scale,
			lives:    1,
			width:    float64(sprite.Width()),
			height:   float64(sprite.Height()),
		},
		kind:         kind,
		def:          def,
		state:        state,
		direction:    direction,
		frames:       sprite.FrameCount(),
		noiseOffsetX: rng.Float64() * 256,
		noiseOffsetY: rng.Float64() * 256,
		growRadius:   growRadius,
	}
}

// Kind returns the enemy's stat-table kind
func (e *Enemy) Kind() EnemyKind { return e.kind }

// Def returns the enemy's stat row
func (e *Enemy) Def() EnemyKindDef { return e.def }

// State returns the current movement state
func (e *Enemy) State() MovementState { return e.state }

// SetState changes the movement state
func (e *Enemy) SetState(s MovementState) { e.state = s }

// Direction returns the orbital winding
func (e *Enemy) Direction() MovementDirection { return e.direction }

// InGrowthZone reports whether the ship is still inside the zone near the
// centre where its state is frozen
func (e *Enemy) InGrowthZone() bool {
	return e.distance < e.growRadius
}

// advanceNoise moves the wander parameter forward and returns its new value
func (e *Enemy) advanceNoise(step float64) float64 {
	e.noisePos += step
	return e.noisePos
}

// Frame returns the animation frame to draw
func (e *Enemy) Frame() int { return e.frame }

// Update applies the recorded movement intent, advances the animation and
// grows the ship toward full size as it leaves the centre
func (e *Enemy) Update() {
	if !e.Alive() {
		return
	}
	e.Move()
	e.frame = (e.frame + 1) % e.frames
	if e.growRadius > 0 {
		e.scale = e.def.Scale * Clamp(e.distance/e.growRadius, 0.3, 1.0)
	}
}
