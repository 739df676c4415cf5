package config

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	require.Equal(t, 1280, cfg.Screen.Width)
	require.Equal(t, 720, cfg.Screen.Height)
	require.Equal(t, 500*time.Millisecond, cfg.Game.SpawnInterval)
	require.Equal(t, 400*time.Millisecond, cfg.Game.ShootCooldown)
}

func TestLoadOverridesOnlyGivenKeys(t *testing.T) {
	doc := `
screen:
  width: 800
game:
  spawn_interval: 250ms
  seed: 42
audio:
  enabled: false
backend: ansi
`
	cfg, err := Load(strings.NewReader(doc))
	require.NoError(t, err)
	require.Equal(t, 800, cfg.Screen.Width)
	require.Equal(t, 720, cfg.Screen.Height)
	require.Equal(t, 250*time.Millisecond, cfg.Game.SpawnInterval)
	require.Equal(t, int64(42), cfg.Game.Seed)
	require.False(t, cfg.Audio.Enabled)
	require.Equal(t, 0.5, cfg.Audio.Volume)
	require.Equal(t, BackendANSI, cfg.Backend)
}

func TestLoadEmptyDocument(t *testing.T) {
	cfg, err := Load(strings.NewReader(""))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	_, err := Load(strings.NewReader("screen: [unclosed"))
	require.Error(t, err)
}

func TestLoadFileEmptyPath(t *testing.T) {
	cfg, err := LoadFile("")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)

	_, err = LoadFile("/nonexistent/meteors.yaml")
	require.Error(t, err)
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := map[string]func(*Config){
		"zero width":        func(c *Config) { c.Screen.Width = 0 },
		"negative height":   func(c *Config) { c.Screen.Height = -1 },
		"zero tick rate":    func(c *Config) { c.Game.TickRate = 0 },
		"zero max delta":    func(c *Config) { c.Game.MaxDelta = 0 },
		"zero interval":     func(c *Config) { c.Game.SpawnInterval = 0 },
		"negative interval": func(c *Config) { c.Game.SpawnInterval = -time.Second },
		"negative cooldown": func(c *Config) { c.Game.ShootCooldown = -1 },
		"negative stars":    func(c *Config) { c.Game.StarCount = -3 },
		"negative volume":   func(c *Config) { c.Audio.Volume = -0.1 },
		"unknown backend":   func(c *Config) { c.Backend = "sdl" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			require.True(t, errors.Is(err, ErrInvalidConfiguration))
		})
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("METEORS_BACKEND", "ansi")
	t.Setenv("METEORS_SEED", "7")
	t.Setenv("METEORS_MUTE", "true")
	t.Setenv("METEORS_LOG", "/tmp/meteors.log")

	cfg := Default()
	require.NoError(t, cfg.ApplyEnv())
	require.Equal(t, BackendANSI, cfg.Backend)
	require.Equal(t, int64(7), cfg.Game.Seed)
	require.False(t, cfg.Audio.Enabled)
	require.Equal(t, "/tmp/meteors.log", cfg.Log.Path)
	require.Equal(t, "info", cfg.Log.Level)
}

func TestApplyEnvRejectsGarbage(t *testing.T) {
	t.Setenv("METEORS_SEED", "not-a-number")
	cfg := Default()
	err := cfg.ApplyEnv()
	require.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestGetEnvFallback(t *testing.T) {
	t.Setenv("METEORS_TEST_SET", "value")
	require.Equal(t, "value", GetEnv("METEORS_TEST_SET", "fallback"))
	require.Equal(t, "fallback", GetEnv("METEORS_TEST_UNSET_KEY", "fallback"))
}

func TestApplyEnvRejectsBadMute(t *testing.T) {
	t.Setenv("METEORS_MUTE", "maybe")
	cfg := Default()
	err := cfg.ApplyEnv()
	require.ErrorIs(t, err, ErrInvalidConfiguration)
	require.ErrorContains(t, err, "METEORS_MUTE")
	require.True(t, cfg.Audio.Enabled)
}
