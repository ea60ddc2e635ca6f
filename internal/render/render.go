package render

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/fiskanibanda/GyrussProject/internal/assets"
	"github.com/fiskanibanda/GyrussProject/internal/game"
)

// Renderer draws the simulation onto a tcell screen. It owns no game state;
// every frame it reads the controller's collections and the ship and paints
// them over a fresh clear.
type Renderer struct {
	screen tcell.Screen
	lib    *assets.Library

	base tcell.Style
	hud  tcell.Style
}

// New creates a renderer over an initialised screen
func New(screen tcell.Screen, lib *assets.Library) *Renderer {
	base := tcell.StyleDefault.
		Background(tcell.ColorBlack).
		Foreground(tcell.ColorWhite)
	return &Renderer{
		screen: screen,
		lib:    lib,
		base:   base,
		hud:    base.Foreground(tcell.ColorYellow),
	}
}

// styleFor maps a sprite's colour name onto the base style
func (r *Renderer) styleFor(sprite *assets.Sprite) tcell.Style {
	if c, ok := tcell.ColorNames[sprite.FG]; ok {
		return r.base.Foreground(c)
	}
	return r.base
}

// drawSprite paints one animation frame centred on the given screen cell,
// skipping blank cells so sprites do not punch holes in each other
func (r *Renderer) drawSprite(pos game.Vec2, sprite *assets.Sprite, frame int, style tcell.Style) {
	rows := sprite.Frames[frame%len(sprite.Frames)]
	top := int(pos.Y) - len(rows)/2
	for dy, row := range rows {
		left := int(pos.X) - len(row)/2
		for dx, ch := range row {
			if ch == ' ' {
				continue
			}
			r.screen.SetContent(left+dx, top+dy, ch, nil, style)
		}
	}
}

// DrawPlaying renders one frame of active gameplay
func (r *Renderer) DrawPlaying(ctrl *game.Controller, ship *game.PlayerShip, score *game.Score, blink bool) {
	r.screen.Clear()

	for _, m := range ctrl.Meteoroids() {
		sprite := r.lib.Get(assets.TexMeteoroid)
		r.drawSprite(m.Position(), sprite, 0, r.styleFor(sprite))
	}
	for _, e := range ctrl.Enemies() {
		sprite := r.lib.Get(e.Def().Texture)
		r.drawSprite(e.Position(), sprite, e.Frame(), r.styleFor(sprite))
	}
	for _, b := range ctrl.PlayerBullets() {
		sprite := r.lib.Get(assets.TexBulletPlayer)
		r.drawSprite(b.Position(), sprite, 0, r.styleFor(sprite))
	}
	for _, b := range ctrl.EnemyBullets() {
		sprite := r.lib.Get(assets.TexBulletEnemy)
		r.drawSprite(b.Position(), sprite, 0, r.styleFor(sprite))
	}
	for _, x := range ctrl.Explosions() {
		sprite := r.lib.Get(assets.TexExplosion)
		r.drawSprite(x.Position(), sprite, x.Frame(), r.styleFor(sprite))
	}

	// invulnerable ships blink at the caller's cadence
	if !ship.IsInvulnerable() || blink {
		sprite := r.lib.Get(assets.TexPlayerShip)
		r.drawSprite(ship.Position(), sprite, ship.Frame(), r.styleFor(sprite))
	}

	r.drawHUD(ctrl, ship, score)
	r.screen.Show()
}

func (r *Renderer) drawHUD(ctrl *game.Controller, ship *game.PlayerShip, score *game.Score) {
	r.drawText(1, 0, fmt.Sprintf("SCORE %06d", score.Points()), r.hud)
	r.drawText(1, 1, fmt.Sprintf("LIVES %d", ship.Lives()), r.hud)
	w, _ := r.screen.Size()
	speedLine := fmt.Sprintf("SPEED x%.2f", ctrl.Speed())
	r.drawText(w-len(speedLine)-1, 0, speedLine, r.hud)
	if ship.IsUpgraded() {
		r.drawText(1, 2, "DOUBLE GUN", r.hud.Foreground(tcell.ColorGreen))
	}
}

// DrawTitle renders the start screen
func (r *Renderer) DrawTitle() {
	r.screen.Clear()
	w, h := r.screen.Size()
	lines := []string{
		"G Y R U S S",
		"",
		"arrows rotate, space fires",
		"",
		"press ENTER to launch, Q to quit",
	}
	for i, line := range lines {
		r.drawText((w-len(line))/2, h/2-len(lines)/2+i, line, r.hud)
	}
	r.screen.Show()
}

// DrawGameOver renders the end screen with the final tallies
func (r *Renderer) DrawGameOver(score *game.Score) {
	r.screen.Clear()
	w, h := r.screen.Size()
	lines := []string{
		"GAME OVER",
		"",
		fmt.Sprintf("score   %d", score.Points()),
		fmt.Sprintf("kills   %d", score.EnemiesKilled()),
		fmt.Sprintf("longest %s alive", score.LongestLife().Round(time.Second)),
		"",
		"press ENTER to retry, Q to quit",
	}
	for i, line := range lines {
		r.drawText((w-len(line))/2, h/2-len(lines)/2+i, line, r.hud)
	}
	r.screen.Show()
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	for i, ch := range text {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}
