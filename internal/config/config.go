package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/fiskanibanda/GyrussProject/internal/game"
)

// Config is the full runtime configuration, loaded from a TOML file over
// the built-in defaults.
type Config struct {
	Display DisplayConfig `toml:"display"`
	Audio   AudioConfig   `toml:"audio"`
	Logging LoggingConfig `toml:"logging"`
	Game    game.Tuning   `toml:"game"`
}

type DisplayConfig struct {
	TickRate int `toml:"tick_rate"` // simulation frames per second
}

type AudioConfig struct {
	Enabled      bool    `toml:"enabled"`
	MasterVolume float64 `toml:"master_volume"` // 0..1
	SampleRate   int     `toml:"sample_rate"`
}

type LoggingConfig struct {
	Level string `toml:"level"` // debug, info, warn, error
	File  string `toml:"file"`  // log sink path, empty disables logging
}

// Default returns the stock configuration
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			TickRate: 60,
		},
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: 0.7,
			SampleRate:   44100,
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  "gyruss.log",
		},
		Game: game.DefaultTuning(),
	}
}

// Load reads a TOML file over the defaults. A missing file is not an
// error; the defaults are returned as-is.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Display.TickRate <= 0 {
		return fmt.Errorf("display.tick_rate must be positive, got %d", c.Display.TickRate)
	}
	if c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1 {
		return fmt.Errorf("audio.master_volume must be in [0,1], got %g", c.Audio.MasterVolume)
	}
	if c.Game.SpeedMin > c.Game.SpeedMax {
		return fmt.Errorf("game.speed_min %g exceeds game.speed_max %g", c.Game.SpeedMin, c.Game.SpeedMax)
	}
	if c.Game.PlayerLives <= 0 {
		return fmt.Errorf("game.player_lives must be positive, got %d", c.Game.PlayerLives)
	}
	return nil
}
