package game

import (
	"math"
	"math/rand"
)

// PerlinNoise is a seeded one-dimensional gradient noise source. Wandering
// enemies sample two of these (one per axis) with a slowly advancing
// parameter to get continuous-but-irregular deltas instead of jittery
// per-frame random jumps.
type PerlinNoise struct {
	perm [512]int
}

// NewPerlinNoise builds a noise source from a seed. Equal seeds produce
// identical sequences.
func NewPerlinNoise(seed int64) *PerlinNoise {
	rng := rand.New(rand.NewSource(seed))
	n := &PerlinNoise{}
	p := rng.Perm(256)
	for i := 0; i < 256; i++ {
		n.perm[i] = p[i]
		n.perm[i+256] = p[i]
	}
	return n
}

// At samples the noise at parameter x. The result lies in [-1, 1] and is a
// continuous function of x.
func (n *PerlinNoise) At(x float64) float64 {
	xf := math.Floor(x)
	xi := int(xf) & 255
	fx := x - xf
	u := fade(fx)
	a := grad(n.perm[xi], fx)
	b := grad(n.perm[xi+1], fx-1)
	return lerp(a, b, u)
}

func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func grad(hash int, x float64) float64 {
	if hash&1 == 0 {
		return x
	}
	return -x
}
