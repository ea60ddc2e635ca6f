package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/fiskanibanda/GyrussProject/internal/assets"
	"github.com/fiskanibanda/GyrussProject/internal/audio"
	"github.com/fiskanibanda/GyrussProject/internal/config"
	"github.com/fiskanibanda/GyrussProject/internal/game"
	"github.com/fiskanibanda/GyrussProject/internal/render"
)

// Phase is the top-level screen the player is on
type Phase int

const (
	PhaseTitle Phase = iota
	PhasePlaying
	PhaseGameOver
)

func main() {
	configPath := flag.String("config", "config.toml", "path to the configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintln(os.Stderr, "screen:", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintln(os.Stderr, "screen:", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.HideCursor()

	sound := audio.NewManager(cfg.Audio.SampleRate, cfg.Audio.MasterVolume)
	if cfg.Audio.Enabled {
		if err := sound.Initialize(); err != nil {
			// no audio device is not fatal, play silent
			logger.Warn("audio unavailable", zap.Error(err))
		} else {
			defer sound.Cleanup()
		}
	}

	g := newGame(cfg, screen, sound, logger)
	g.run()
}

// newLogger builds the zap logger writing to the configured file sink so
// log lines never corrupt the terminal UI
func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	if cfg.File == "" {
		return zap.NewNop(), nil
	}
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("bad level %q: %w", cfg.Level, err)
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.Encoding = "console"
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zcfg.OutputPaths = []string{cfg.File}
	zcfg.ErrorOutputPaths = []string{cfg.File}
	return zcfg.Build()
}

// Game holds everything the frame loop touches
type Game struct {
	cfg    *config.Config
	screen tcell.Screen
	sound  *audio.Manager
	log    *zap.Logger

	lib      *assets.Library
	renderer *render.Renderer
	clk      game.Clock
	rng      *rand.Rand

	phase Phase
	ship  *game.PlayerShip
	score *game.Score
	ctrl  *game.Controller

	// per-tick input intents, consumed and cleared every frame
	turn  float64
	shoot bool

	tick uint64
	quit bool
}

func newGame(cfg *config.Config, screen tcell.Screen, sound *audio.Manager, log *zap.Logger) *Game {
	lib := assets.NewLibrary()
	return &Game{
		cfg:      cfg,
		screen:   screen,
		sound:    sound,
		log:      log,
		lib:      lib,
		renderer: render.New(screen, lib),
		clk:      game.SystemClock(),
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		phase:    PhaseTitle,
	}
}

// resolution reads the terminal size as the playing field
func (g *Game) resolution() game.Resolution {
	w, h := g.screen.Size()
	return game.Resolution{W: float64(w), H: float64(h)}
}

// startRound builds a fresh ship, score and controller for one playthrough
func (g *Game) startRound() {
	res := g.resolution()
	tuning := g.cfg.Game

	half := res.W / 2
	if res.H/2 < half {
		half = res.H / 2
	}
	playRadius := half * tuning.PlayRadiusFactor
	orbit := playRadius * tuning.PlayerOrbitFactor

	invuln := time.Duration(tuning.InvulnerabilitySeconds * float64(time.Second))
	g.ship = game.NewPlayerShip(res, orbit, 1, tuning.PlayerLives, invuln, g.lib, g.clk)
	g.score = game.NewScore(g.clk)
	g.ctrl = game.NewController(tuning, res, g.ship, g.score, g.lib, g.rng, g.clk, g.log)
	g.phase = PhasePlaying
	g.log.Info("round started",
		zap.Float64("play_radius", playRadius),
		zap.Int("lives", tuning.PlayerLives))
}

// run is the frame loop: drain input, step the simulation, draw
func (g *Game) run() {
	events := make(chan tcell.Event, 16)
	quitPoll := make(chan struct{})
	go g.screen.ChannelEvents(events, quitPoll)

	ticker := time.NewTicker(time.Second / time.Duration(g.cfg.Display.TickRate))
	defer ticker.Stop()

	for !g.quit {
		select {
		case ev := <-events:
			g.handleEvent(ev)
		case <-ticker.C:
			g.step()
		}
	}
	close(quitPoll)
}

func (g *Game) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		g.screen.Sync()
		if g.phase == PhasePlaying {
			// the field geometry changed under the entities, restart clean
			g.startRound()
		}
	case *tcell.EventKey:
		g.handleKey(ev)
	}
}

func (g *Game) handleKey(ev *tcell.EventKey) {
	if ev.Key() == tcell.KeyCtrlC || ev.Key() == tcell.KeyEscape {
		g.quit = true
		return
	}

	switch g.phase {
	case PhaseTitle, PhaseGameOver:
		switch {
		case ev.Key() == tcell.KeyEnter:
			g.startRound()
		case ev.Rune() == 'q' || ev.Rune() == 'Q':
			g.quit = true
		}
	case PhasePlaying:
		switch {
		case ev.Key() == tcell.KeyLeft, ev.Rune() == 'a':
			g.turn = -1
		case ev.Key() == tcell.KeyRight, ev.Rune() == 'd':
			g.turn = 1
		case ev.Rune() == ' ':
			g.shoot = true
		case ev.Rune() == 'q' || ev.Rune() == 'Q':
			g.phase = PhaseGameOver
		}
	}
}

func (g *Game) step() {
	g.tick++
	switch g.phase {
	case PhaseTitle:
		g.renderer.DrawTitle()
	case PhasePlaying:
		g.stepPlaying()
	case PhaseGameOver:
		g.renderer.DrawGameOver(g.score)
	}
}

// stepPlaying advances the simulation one frame in the fixed order:
// record intents, apply and animate, spawn, collide, clip
func (g *Game) stepPlaying() {
	wasUpgraded := g.ship.IsUpgraded()

	if g.turn != 0 {
		g.ship.SetMove(g.turn * g.cfg.Game.PlayerTurnSpeed * g.ctrl.Speed())
	}
	if g.shoot {
		g.ship.SetShoot()
	}
	g.turn = 0
	g.shoot = false

	g.ctrl.SetMove()
	g.ctrl.Update()
	if g.ship.IsShooting() {
		g.ctrl.Shoot()
	}
	g.ship.Update()
	g.ctrl.SpawnEntities()
	ev := g.ctrl.CheckCollisions()
	g.ctrl.CheckClipping()

	g.ctrl.ChangeGlobalSpeed(g.cfg.Game.SpeedRampPerSecond / float64(g.cfg.Display.TickRate))

	if ev.ShootingOccurred {
		g.sound.PlayShoot()
	}
	if ev.ExplosionOccurred {
		g.sound.PlayExplosion()
	}
	if !wasUpgraded && g.ship.IsUpgraded() {
		g.sound.PlayUpgrade()
	}
	if ev.PlayerHit {
		g.sound.PlayPlayerHit()
		g.ctrl.KillAllEnemiesOfType(game.EntitySatellite)
		if g.ship.Lives() == 0 {
			g.log.Info("game over",
				zap.Int("score", g.score.Points()),
				zap.Int("kills", g.score.EnemiesKilled()))
			g.phase = PhaseGameOver
			return
		}
	}

	blink := (g.tick/6)%2 == 0
	g.renderer.DrawPlaying(g.ctrl, g.ship, g.score, blink)
}
