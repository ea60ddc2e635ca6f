package game

import "github.com/fiskanibanda/GyrussProject/internal/assets"

// Meteoroid drifts radially outward from the centre. It cannot be destroyed
// by bullets; it leaves play only by clipping or by hitting the player.
type Meteoroid struct {
	body
	speed float64 // outward cells per frame at speed modifier 1
}

// NewMeteoroid creates a meteoroid near the centre heading outward
func NewMeteoroid(res Resolution, distance, angle, speed float64, lib *assets.Library) *Meteoroid {
	sprite := lib.Get(assets.TexMeteoroid)
	return &Meteoroid{
		body: body{
			res:      res,
			kind:     EntityMeteoroid,
			distance: distance,
			angle:    AngleFilter(angle),
			scale:    1,
			lives:    1,
			width:    float64(sprite.Width()),
			height:   float64(sprite.Height()),
		},
		speed: speed,
	}
}

// Speed returns the meteoroid's base radial speed
func (m *Meteoroid) Speed() float64 { return m.speed }

// Update applies the recorded movement intent
func (m *Meteoroid) Update() {
	if !m.Alive() {
		return
	}
	m.Move()
}
