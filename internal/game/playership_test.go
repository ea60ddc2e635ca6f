package game

import (
	"testing"
	"time"

	"github.com/fiskanibanda/GyrussProject/internal/assets"
)

func newTestShip(clk Clock) *PlayerShip {
	lib := assets.NewLibrary()
	return NewPlayerShip(Resolution{W: 80, H: 40}, 13, 1, 3, 1200*time.Millisecond, lib, clk)
}

func TestShipSpawnsInvulnerableAtBottom(t *testing.T) {
	ship := newTestShip(newFakeClock())
	if ship.Angle() != 0 {
		t.Errorf("spawn angle = %g, want 0", ship.Angle())
	}
	if !ship.IsInvulnerable() {
		t.Error("fresh ship must be invulnerable")
	}
	if ship.Lives() != 3 {
		t.Errorf("lives = %d, want 3", ship.Lives())
	}
}

func TestShipInvulnerabilityExpires(t *testing.T) {
	clk := newFakeClock()
	ship := newTestShip(clk)

	clk.Advance(time.Second)
	ship.Update()
	if !ship.IsInvulnerable() {
		t.Error("window not elapsed yet, ship should still be invulnerable")
	}

	clk.Advance(time.Second)
	ship.Update()
	if ship.IsInvulnerable() {
		t.Error("window elapsed, ship should be vulnerable")
	}
}

func TestShipMoveIntentAppliedOnce(t *testing.T) {
	clk := newFakeClock()
	ship := newTestShip(clk)

	ship.SetMove(4)
	if !ship.IsMoving() {
		t.Fatal("SetMove must mark the ship as moving")
	}
	ship.Update()
	if ship.Angle() != 4 {
		t.Errorf("angle = %g, want 4", ship.Angle())
	}
	if ship.IsMoving() {
		t.Error("Update must clear the moving flag")
	}

	// no new intent, the next update must not move the ship
	ship.Update()
	if ship.Angle() != 4 {
		t.Errorf("angle drifted to %g without an intent", ship.Angle())
	}
}

func TestShipShootFlagClearedByUpdate(t *testing.T) {
	ship := newTestShip(newFakeClock())
	ship.SetShoot()
	if !ship.IsShooting() {
		t.Fatal("SetShoot must mark the ship as shooting")
	}
	ship.Update()
	if ship.IsShooting() {
		t.Error("Update must clear the shooting flag")
	}
}

func TestShipDieRespawnsAndLosesUpgrade(t *testing.T) {
	clk := newFakeClock()
	ship := newTestShip(clk)
	ship.Upgrade()
	ship.SetMove(90)
	ship.Update()

	clk.Advance(5 * time.Second)
	ship.Update()
	ship.Die()

	if ship.Lives() != 2 {
		t.Errorf("lives = %d, want 2", ship.Lives())
	}
	if ship.Angle() != 0 {
		t.Errorf("respawn angle = %g, want 0", ship.Angle())
	}
	if ship.IsUpgraded() {
		t.Error("upgrade must be lost on respawn")
	}
	if !ship.IsInvulnerable() {
		t.Error("respawned ship must get a fresh invulnerability window")
	}
}

func TestShipLivesClampAtZero(t *testing.T) {
	ship := newTestShip(newFakeClock())
	for i := 0; i < 5; i++ {
		ship.Die()
	}
	if ship.Lives() != 0 {
		t.Errorf("lives = %d, want 0", ship.Lives())
	}
}
