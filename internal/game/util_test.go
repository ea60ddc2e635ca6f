package game

import (
	"math"
	"testing"
)

func TestAngleFilterWrapsIntoRange(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{359.5, 359.5},
		{360, 0},
		{725, 5},
		{-1, 359},
		{-360, 0},
		{-725, 355},
	}
	for _, c := range cases {
		got := AngleFilter(c.in)
		if math.Abs(got-c.want) > 1e-9 {
			t.Errorf("AngleFilter(%g) = %g, want %g", c.in, got, c.want)
		}
		if got < 0 || got >= 360 {
			t.Errorf("AngleFilter(%g) = %g, out of [0, 360)", c.in, got)
		}
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 10); got != 5 {
		t.Errorf("Clamp(5, 0, 10) = %g, want 5", got)
	}
	if got := Clamp(-1, 0, 10); got != 0 {
		t.Errorf("Clamp(-1, 0, 10) = %g, want 0", got)
	}
	if got := Clamp(11, 0, 10); got != 10 {
		t.Errorf("Clamp(11, 0, 10) = %g, want 10", got)
	}
}

func TestPolarToScreenCentre(t *testing.T) {
	res := Resolution{W: 80, H: 40}
	p := PolarToScreen(0, 123, res)
	if p.X != 40 || p.Y != 20 {
		t.Errorf("zero distance should land on the centre, got (%g, %g)", p.X, p.Y)
	}
}

func TestPolarToScreenAxes(t *testing.T) {
	res := Resolution{W: 80, H: 40}

	// angle 0 points straight down the Y axis
	p := PolarToScreen(10, 0, res)
	if math.Abs(p.X-40) > 1e-9 || math.Abs(p.Y-30) > 1e-9 {
		t.Errorf("angle 0: got (%g, %g), want (40, 30)", p.X, p.Y)
	}

	// angle 90 points along the X axis
	p = PolarToScreen(10, 90, res)
	if math.Abs(p.X-50) > 1e-9 || math.Abs(p.Y-20) > 1e-9 {
		t.Errorf("angle 90: got (%g, %g), want (50, 20)", p.X, p.Y)
	}
}

func TestPolarToScreenDeterministic(t *testing.T) {
	res := Resolution{W: 120, H: 50}
	a := PolarToScreen(17.5, 213.4, res)
	b := PolarToScreen(17.5, 213.4, res)
	if a != b {
		t.Errorf("same polar inputs gave different positions: %v vs %v", a, b)
	}
}
