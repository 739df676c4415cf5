// Package loop provides the main game loop and state management.
package loop

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tomz197/meteors/internal/audio"
	"github.com/tomz197/meteors/internal/config"
	"github.com/tomz197/meteors/internal/draw"
	"github.com/tomz197/meteors/internal/input"
	"github.com/tomz197/meteors/internal/object"
	"github.com/tomz197/meteors/internal/physics"
)

// Renderer draws one frame at a time.
type Renderer interface {
	Clear(bg draw.Color)
	DrawShape(shape *physics.Shape, pos physics.Vector2, rotation float64)
	DrawText(text string, pos physics.Vector2)
	Present() error
}

// InputSource provides the input state for the current frame.
type InputSource interface {
	Poll() input.Input
}

// Deps are the collaborators a Game runs against. Renderer and Input are
// required; the rest fall back to defaults.
type Deps struct {
	Renderer Renderer
	Input    InputSource
	Clock    Clock
	Audio    audio.Signal
	Logger   *zap.Logger
	Rand     *rand.Rand
}

// Game owns the entities and runs the Input → Update → Draw cycle.
type Game struct {
	screen     object.Screen
	registry   *object.Registry
	scheduler  *object.Scheduler
	collisions *CollisionSystem
	sprites    *object.Sprites
	player     *object.Entity
	state      *GameState

	renderer Renderer
	input    InputSource
	clock    Clock
	audio    audio.Signal
	log      *zap.Logger
	rng      *rand.Rand
	runID    string
}

// New creates a game with its player and background stars in place.
func New(cfg config.Config, deps Deps) *Game {
	if deps.Audio == nil {
		deps.Audio = audio.Nop{}
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Rand == nil {
		deps.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if deps.Clock == nil {
		deps.Clock = NewFrameClock(cfg.Game.TickRate, cfg.Game.MaxDelta)
	}

	runID := uuid.NewString()
	screen := object.NewScreen(cfg.Screen.Width, cfg.Screen.Height)
	sprites := object.NewSprites(deps.Rand)

	g := &Game{
		screen:     screen,
		registry:   object.NewRegistry(),
		scheduler:  object.NewScheduler(cfg.Game.SpawnInterval),
		collisions: NewCollisionSystem(screen, sprites, deps.Audio),
		sprites:    sprites,
		state:      NewGameState(),
		renderer:   deps.Renderer,
		input:      deps.Input,
		clock:      deps.Clock,
		audio:      deps.Audio,
		log:        deps.Logger.With(zap.String("run_id", runID)),
		rng:        deps.Rand,
		runID:      runID,
	}

	for i := 0; i < cfg.Game.StarCount; i++ {
		pos := physics.Vec(float64(g.rng.Intn(screen.Width+1)), float64(g.rng.Intn(screen.Height+1)))
		g.registry.Add(object.NewStar(pos, sprites.Star), 0)
	}
	g.player = g.registry.Add(object.NewPlayer(screen.Center(), sprites.Player, cfg.Game.PlayerSpeed, cfg.Game.ShootCooldown), 0)
	g.registry.Commit()

	return g
}

// RunID identifies this game in the logs.
func (g *Game) RunID() string {
	return g.runID
}

// State returns a copy of the current game state.
func (g *Game) State() GameState {
	return *g.state
}

// Registry exposes the entity registry.
func (g *Game) Registry() *object.Registry {
	return g.registry
}

// Player returns the player entity.
func (g *Game) Player() *object.Entity {
	return g.player
}

// Run drives the game until the player quits, gets hit, the renderer fails or
// ctx is cancelled. A player hit leaves the final frame with the game over
// banner on screen.
func (g *Game) Run(ctx context.Context) error {
	g.log.Info("game started",
		zap.Int("width", g.screen.Width),
		zap.Int("height", g.screen.Height),
	)

	for g.state.Running {
		select {
		case <-ctx.Done():
			g.state.End(PhaseQuit)
			g.log.Info("game cancelled", zap.Error(ctx.Err()))
			continue
		default:
		}

		dt := g.clock.Tick()
		g.Step(dt, g.input.Poll())
		if g.state.Phase == PhaseQuit {
			break
		}

		if err := g.Draw(); err != nil {
			g.log.Error("present frame", zap.Error(err))
			return fmt.Errorf("present frame: %w", err)
		}
	}

	g.log.Info("game stopped",
		zap.Stringer("phase", g.state.Phase),
		zap.Int("score", g.state.Score),
	)
	return nil
}

// Step advances the game by dt. Returns false once the game has ended.
func (g *Game) Step(dt time.Duration, in input.Input) bool {
	if !g.state.Running {
		return false
	}

	// ===== INPUT PHASE =====
	if in.Quit || in.Escape {
		g.state.End(PhaseQuit)
		return false
	}

	// ===== UPDATE PHASE =====
	g.scheduler.Tick(dt, g.spawnMeteor)

	couldShoot := g.player.Player.CanShoot
	g.registry.UpdateAll(object.UpdateContext{
		Delta:   dt,
		Input:   in,
		Screen:  g.screen,
		Sprites: g.sprites,
		Audio:   g.audio,
	})
	if couldShoot && !g.player.Player.CanShoot {
		g.log.Debug("laser fired", zap.Float64("x", g.player.Position.X), zap.Float64("y", g.player.Position.Y))
	}

	// ===== COLLISION PHASE =====
	res := g.collisions.Resolve(g.registry, g.player, g.state)
	if res.MeteorsDestroyed > 0 {
		g.log.Debug("meteors destroyed", zap.Int("count", res.MeteorsDestroyed), zap.Int("score", g.state.Score))
	}
	if res.PlayerHit {
		g.log.Info("player hit", zap.String("phase", g.state.Phase.String()))
	}

	g.registry.RemoveDead()
	g.registry.Commit()

	return g.state.Running
}

// spawnMeteor adds one meteor above the visible area.
func (g *Game) spawnMeteor() {
	m := g.registry.Add(object.NewRandomMeteor(g.rng, g.screen, g.sprites), object.CategoryMeteors)
	g.log.Debug("meteor spawned",
		zap.Uint64("id", m.ID),
		zap.Float64("x", m.Position.X),
		zap.Float64("speed", m.Speed),
	)
}

// Draw renders the current frame.
func (g *Game) Draw() error {
	// ===== DRAW PHASE =====
	g.renderer.Clear(draw.Background)
	g.renderer.DrawText(fmt.Sprintf(scoreFormat, g.state.Score),
		physics.Vec(float64(g.screen.Width)/2, float64(g.screen.Height-scoreOffsetY)))
	g.registry.DrawAll(g.renderer)
	if g.state.Phase == PhaseGameOver {
		g.renderer.DrawText(gameOverMessage, g.screen.Center())
	}
	return g.renderer.Present()
}
