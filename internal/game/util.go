package game

import "math"

// Clamp restricts v to [min, max]
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// AngleFilter wraps an angle in degrees to [0, 360)
func AngleFilter(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}

// DegToRad converts degrees to radians
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// PolarToScreen maps a (distance-from-centre, angle) pair to a screen
// position around the centre of the play area. Positions are always derived
// through this transform; entities never hold raw coordinates.
func PolarToScreen(distance, angleDeg float64, res Resolution) Vec2 {
	r := DegToRad(angleDeg)
	return Vec2{
		X: distance*math.Sin(r) + res.W/2,
		Y: distance*math.Cos(r) + res.H/2,
	}
}
