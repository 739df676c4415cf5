// Package config loads, overrides and validates the game configuration.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfiguration is wrapped by every validation failure.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// Backend names for the terminal front end.
const (
	BackendTcell = "tcell"
	BackendANSI  = "ansi"
)

// Config holds every tunable game parameter.
type Config struct {
	Screen Screen `yaml:"screen"`
	Game   Game   `yaml:"game"`
	Audio  Audio  `yaml:"audio"`
	Log    Log    `yaml:"log"`

	// Backend selects the terminal front end: "tcell" or "ansi".
	Backend string `yaml:"backend"`
}

// Screen is the logical play field. Rendering scales it to the terminal.
type Screen struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Game holds simulation timing and tuning.
type Game struct {
	TickRate      int           `yaml:"tick_rate"`      // Frames per second the clock paces to
	MaxDelta      time.Duration `yaml:"max_delta"`      // Upper bound on a single frame step
	SpawnInterval time.Duration `yaml:"spawn_interval"` // Time between meteor spawns
	ShootCooldown time.Duration `yaml:"shoot_cooldown"` // Minimum time between two shots
	PlayerSpeed   float64       `yaml:"player_speed"`   // Pixels per second
	StarCount     int           `yaml:"star_count"`
	Seed          int64         `yaml:"seed"`           // 0 = seed from the clock
	GameOverHold  time.Duration `yaml:"game_over_hold"` // How long the final frame stays up
}

// Audio configures sound output.
type Audio struct {
	Enabled     bool    `yaml:"enabled"`
	Volume      float64 `yaml:"volume"`
	MusicVolume float64 `yaml:"music_volume"`
}

// Log configures the file logger. The terminal belongs to the game, so an
// empty path discards logs.
type Log struct {
	Level string `yaml:"level"`
	Path  string `yaml:"path"`
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		Screen: Screen{Width: 1280, Height: 720},
		Game: Game{
			TickRate:      60,
			MaxDelta:      50 * time.Millisecond,
			SpawnInterval: 500 * time.Millisecond,
			ShootCooldown: 400 * time.Millisecond,
			PlayerSpeed:   300,
			StarCount:     20,
			GameOverHold:  2 * time.Second,
		},
		Audio: Audio{
			Enabled:     true,
			Volume:      0.5,
			MusicVolume: 0.4,
		},
		Log:     Log{Level: "info"},
		Backend: BackendTcell,
	}
}

// Load decodes YAML from r on top of the defaults. Keys absent from the
// document keep their default values.
func Load(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// LoadFile reads a YAML config file. An empty path yields the defaults.
func LoadFile(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// ApplyEnv overrides fields from METEORS_* environment variables.
func (c *Config) ApplyEnv() error {
	c.Backend = GetEnv(EnvPrefix+"BACKEND", c.Backend)
	c.Log.Path = GetEnv(EnvPrefix+"LOG", c.Log.Path)
	c.Log.Level = GetEnv(EnvPrefix+"LOG_LEVEL", c.Log.Level)

	if err := envInt64("SEED", &c.Game.Seed); err != nil {
		return err
	}
	mute := !c.Audio.Enabled
	if err := envBool("MUTE", &mute); err != nil {
		return err
	}
	c.Audio.Enabled = !mute
	return nil
}

// Validate rejects configurations the game cannot run with.
func (c Config) Validate() error {
	switch {
	case c.Screen.Width <= 0:
		return invalid("screen.width must be positive, got %d", c.Screen.Width)
	case c.Screen.Height <= 0:
		return invalid("screen.height must be positive, got %d", c.Screen.Height)
	case c.Game.TickRate <= 0:
		return invalid("game.tick_rate must be positive, got %d", c.Game.TickRate)
	case c.Game.MaxDelta <= 0:
		return invalid("game.max_delta must be positive, got %s", c.Game.MaxDelta)
	case c.Game.SpawnInterval <= 0:
		return invalid("game.spawn_interval must be positive, got %s", c.Game.SpawnInterval)
	case c.Game.ShootCooldown < 0:
		return invalid("game.shoot_cooldown must not be negative, got %s", c.Game.ShootCooldown)
	case c.Game.PlayerSpeed < 0:
		return invalid("game.player_speed must not be negative, got %g", c.Game.PlayerSpeed)
	case c.Game.StarCount < 0:
		return invalid("game.star_count must not be negative, got %d", c.Game.StarCount)
	case c.Audio.Volume < 0 || c.Audio.MusicVolume < 0:
		return invalid("audio volumes must not be negative")
	case c.Backend != BackendTcell && c.Backend != BackendANSI:
		return invalid("backend must be %q or %q, got %q", BackendTcell, BackendANSI, c.Backend)
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfiguration}, args...)...)
}
