package loop

// Phase is the lifecycle stage of a game.
type Phase int

const (
	PhaseRunning  Phase = iota // Active gameplay
	PhaseGameOver              // Player was hit; terminal
	PhaseQuit                  // Player quit or the game was cancelled
)

// String returns the phase name used in logs.
func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game_over"
	case PhaseQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// GameState is the state owned by the game loop and read by the renderer.
type GameState struct {
	Running bool
	Score   int
	Phase   Phase
}

// NewGameState creates the state of a fresh, running game.
func NewGameState() *GameState {
	return &GameState{
		Running: true,
		Phase:   PhaseRunning,
	}
}

// End stops the game in the given phase. Only the first call has effect.
func (s *GameState) End(p Phase) {
	if !s.Running {
		return
	}
	s.Running = false
	s.Phase = p
}
