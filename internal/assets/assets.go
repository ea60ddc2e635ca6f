// Package assets holds the sprite catalog: glyph art keyed by logical
// texture identifier. Entities look their texture up once at construction
// time; the renderer looks it up again per frame to draw.
package assets

import "fmt"

// ID is a logical texture identifier
type ID int

const (
	TexPlayerShip ID = iota
	TexEnemyGrey
	TexEnemyPurple
	TexSatellite
	TexBulletPlayer
	TexBulletEnemy
	TexMeteoroid
	TexExplosion
)

// Sprite is a set of equally sized glyph frames plus a foreground colour
// name understood by the terminal backend.
type Sprite struct {
	Frames [][]string
	FG     string
}

// Width returns the sprite width in cells
func (s *Sprite) Width() int {
	if len(s.Frames) == 0 || len(s.Frames[0]) == 0 {
		return 0
	}
	return len([]rune(s.Frames[0][0]))
}

// Height returns the sprite height in cells
func (s *Sprite) Height() int {
	if len(s.Frames) == 0 {
		return 0
	}
	return len(s.Frames[0])
}

// FrameCount returns the number of animation frames
func (s *Sprite) FrameCount() int {
	return len(s.Frames)
}

var catalog = map[ID]*Sprite{
	TexPlayerShip: {
		Frames: [][]string{
			{" ^ ", "/W\\"},
			{" ^ ", "\\W/"},
		},
		FG: "aqua",
	},
	TexEnemyGrey: {
		Frames: [][]string{
			{"<o>"},
			{"<O>"},
		},
		FG: "silver",
	},
	TexEnemyPurple: {
		Frames: [][]string{
			{"{o}"},
			{"{0}"},
		},
		FG: "fuchsia",
	},
	TexSatellite: {
		Frames: [][]string{
			{"(-)"},
			{"(=)"},
		},
		FG: "yellow",
	},
	TexBulletPlayer: {
		Frames: [][]string{{"|"}},
		FG:     "lime",
	},
	TexBulletEnemy: {
		Frames: [][]string{{"!"}},
		FG:     "red",
	},
	TexMeteoroid: {
		Frames: [][]string{
			{"@@", "@@"},
		},
		FG: "maroon",
	},
	TexExplosion: {
		Frames: [][]string{
			{"   ", " * ", "   "},
			{" . ", ".*.", " . "},
			{" * ", "*#*", " * "},
			{"* *", " # ", "* *"},
			{"*.*", ". .", "*.*"},
			{" . ", ". .", " . "},
		},
		FG: "orange",
	},
}

// Library resolves texture IDs to sprites
type Library struct {
	sprites map[ID]*Sprite
}

// NewLibrary builds the library over the built-in catalog
func NewLibrary() *Library {
	return &Library{sprites: catalog}
}

// Get returns the sprite for id. An unknown id is a construction-time
// precondition violation and panics.
func (l *Library) Get(id ID) *Sprite {
	s, ok := l.sprites[id]
	if !ok {
		panic(fmt.Sprintf("assets: unknown texture id %d", id))
	}
	return s
}
