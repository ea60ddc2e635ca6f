package game

// SpeedGovernor owns the global pacing modifier. Every movement delta and
// spawn-interval comparison is scaled by its current value; no other
// component keeps independent speed state.
type SpeedGovernor struct {
	speed float64
	def   float64
	min   float64
	max   float64
}

// NewSpeedGovernor creates a governor starting at the default speed
func NewSpeedGovernor(def, min, max float64) *SpeedGovernor {
	return &SpeedGovernor{
		speed: Clamp(def, min, max),
		def:   def,
		min:   min,
		max:   max,
	}
}

// Change adds amount to the modifier, clamped to [min, max]. A negative
// amount at the minimum simply stays clamped.
func (g *SpeedGovernor) Change(amount float64) {
	g.speed = Clamp(g.speed+amount, g.min, g.max)
}

// Reset restores the session default. Called when the player dies.
func (g *SpeedGovernor) Reset() {
	g.speed = g.def
}

// Speed returns the current modifier
func (g *SpeedGovernor) Speed() float64 {
	return g.speed
}
