package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// StepMs returns the simulated duration of one tick in milliseconds.
func (c RuntimeConfig) StepMs() int {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	return 1000 / rate
}

// GameState represents the current state of a game as seen by the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// GameEvent is a named, discrete event emitted by a game during one tick.
// Each event maps 1:1 to a presentation cue (sound, flash, status line);
// the platform may consume or ignore them. Games never perform I/O themselves.
type GameEvent string

// Event names shared between games and the platform.
const (
	EventMove      GameEvent = "move"
	EventRotate    GameEvent = "rotate"
	EventSoftDrop  GameEvent = "soft_drop"
	EventHardDrop  GameEvent = "hard_drop"
	EventLock      GameEvent = "lock"
	EventLineClear GameEvent = "line_clear"
	EventLevelUp   GameEvent = "level_up"
	EventHold      GameEvent = "hold"
	EventSpawn     GameEvent = "spawn"
	EventPause     GameEvent = "pause"
	EventResume    GameEvent = "resume"
	EventGameOver  GameEvent = "game_over"
)

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Events []GameEvent // Drained once per tick; nil when nothing happened
}
