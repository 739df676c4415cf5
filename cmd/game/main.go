package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/tomz197/meteors/internal/audio"
	"github.com/tomz197/meteors/internal/config"
	"github.com/tomz197/meteors/internal/logging"
	"github.com/tomz197/meteors/internal/loop"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log, err := logging.New(cfg.Log.Level, cfg.Log.Path)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() {
		_ = log.Sync()
	}()

	seed := cfg.Game.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Info("starting", zap.String("backend", cfg.Backend), zap.Int64("seed", seed))

	sig, closeAudio := startAudio(cfg.Audio, log)
	defer closeAudio()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	b, err := openBackend(cfg)
	if err != nil {
		return err
	}
	defer b.close()

	game := loop.New(cfg, loop.Deps{
		Renderer: b.renderer,
		Input:    b.input,
		Audio:    sig,
		Logger:   log,
		Rand:     rand.New(rand.NewSource(seed)),
	})
	if err := game.Run(ctx); err != nil {
		return err
	}

	if game.State().Phase == loop.PhaseGameOver {
		select {
		case <-ctx.Done():
		case <-time.After(cfg.Game.GameOverHold):
		}
	}
	return nil
}

// loadConfig reads the optional config file named by METEORS_CONFIG, then
// applies environment overrides.
func loadConfig() (config.Config, error) {
	cfg := config.Default()
	if path := config.GetEnv("METEORS_CONFIG", ""); path != "" {
		loaded, err := config.LoadFile(path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	if err := cfg.ApplyEnv(); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// startAudio opens the sound device. Failure is not fatal: the game runs
// silently.
func startAudio(cfg config.Audio, log *zap.Logger) (audio.Signal, func()) {
	if !cfg.Enabled {
		return audio.Nop{}, func() {}
	}

	sp := audio.NewSpeaker(audio.Options{
		Volume:      cfg.Volume,
		MusicVolume: cfg.MusicVolume,
	})
	if err := sp.Init(); err != nil {
		log.Warn("audio disabled", zap.Error(err))
		return audio.Nop{}, func() {}
	}
	sp.StartMusic()
	return sp, sp.Close
}
