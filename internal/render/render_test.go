package render

import (
	"math/rand"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/fiskanibanda/GyrussProject/internal/assets"
	"github.com/fiskanibanda/GyrussProject/internal/game"
)

func newTestScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	screen.SetSize(80, 40)
	t.Cleanup(screen.Fini)
	return screen
}

func newTestWorld(t *testing.T) (*game.Controller, *game.PlayerShip, *game.Score) {
	t.Helper()
	lib := assets.NewLibrary()
	clk := game.SystemClock()
	res := game.Resolution{W: 80, H: 40}
	ship := game.NewPlayerShip(res, 13, 1, 3, time.Second, lib, clk)
	score := game.NewScore(clk)
	ctrl := game.NewController(game.DefaultTuning(), res, ship, score, lib,
		rand.New(rand.NewSource(1)), clk, zap.NewNop())
	return ctrl, ship, score
}

// paintedCells counts non-blank cells on the simulation screen
func paintedCells(screen tcell.SimulationScreen) int {
	cells, w, h := screen.GetContents()
	count := 0
	for i := 0; i < w*h; i++ {
		if len(cells[i].Runes) > 0 && cells[i].Runes[0] != ' ' {
			count++
		}
	}
	return count
}

func TestDrawTitlePaintsSomething(t *testing.T) {
	screen := newTestScreen(t)
	r := New(screen, assets.NewLibrary())
	r.DrawTitle()
	if paintedCells(screen) == 0 {
		t.Error("title screen painted nothing")
	}
}

func TestDrawGameOverShowsScore(t *testing.T) {
	screen := newTestScreen(t)
	r := New(screen, assets.NewLibrary())
	_, _, score := newTestWorld(t)
	score.RecordKill(100)
	r.DrawGameOver(score)
	if paintedCells(screen) == 0 {
		t.Error("game over screen painted nothing")
	}
}

func TestDrawPlayingPaintsShipAndHUD(t *testing.T) {
	screen := newTestScreen(t)
	r := New(screen, assets.NewLibrary())
	ctrl, ship, score := newTestWorld(t)

	ctrl.Shoot()
	r.DrawPlaying(ctrl, ship, score, true)
	withShip := paintedCells(screen)
	if withShip == 0 {
		t.Fatal("playing screen painted nothing")
	}

	// the blink parameter hides the invulnerable ship
	r.DrawPlaying(ctrl, ship, score, false)
	withoutShip := paintedCells(screen)
	if ship.IsInvulnerable() && withoutShip >= withShip {
		t.Errorf("hidden ship should paint fewer cells: %d vs %d", withoutShip, withShip)
	}
}
