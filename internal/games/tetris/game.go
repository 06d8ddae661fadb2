// Package tetris adapts the tetris engine to the platform game interface:
// it maps input actions to engine commands, advances virtual time by the
// tick step, and renders the session to the screen buffer.
package tetris

import (
	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	// ModeMarathon is the classic game: gravity speeds up with the level.
	ModeMarathon Mode = "marathon"
	// ModeZen keeps gravity at the base interval forever.
	ModeZen Mode = "zen"
)

// Game implements the tetris game on top of the engine session.
type Game struct {
	mode    Mode
	session *engine.Session
	stepMs  int

	showGhost bool
	preview   int

	screenW  int
	screenH  int
	tooSmall bool
}

// Package-level variables set by the CLI before Reset.
var (
	configPath         string
	difficultyPreset   string
	selectedStartLevel int
)

// SetConfigPath sets an explicit config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset name.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// SetStartLevel sets the starting level for the next run. 0 keeps the
// configured default.
func SetStartLevel(level int) {
	selectedStartLevel = level
}

// GetStartLevel returns the currently selected start level.
func GetStartLevel() int {
	return selectedStartLevel
}

// New creates a marathon mode game.
func New() *Game {
	return &Game{mode: ModeMarathon}
}

// NewZen creates a zen mode game.
func NewZen() *Game {
	return &Game{mode: ModeZen}
}

func init() {
	registry.Register("tetris", func() registry.Game {
		return New()
	})
	registry.Register("tetris_zen", func() registry.Game {
		return NewZen()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeZen {
		return "tetris_zen"
	}
	return "tetris"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeZen {
		return "Tetris (Zen)"
	}
	return "Tetris"
}

// Reset loads the configuration and starts a fresh session.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	c, err := config.LoadTetris(configPath)
	if err != nil {
		c = config.DefaultTetrisConfig()
	}
	if difficultyPreset != "" {
		config.ApplyTetrisPreset(&c, config.DifficultyPreset(difficultyPreset))
	}

	startLevel := c.Gameplay.StartLevel
	if selectedStartLevel > 0 {
		startLevel = selectedStartLevel
		selectedStartLevel = 0 // one-shot
	}

	params := engine.Params{
		Width:        c.Board.Width,
		Height:       c.Board.Height,
		BaseFallMs:   c.Gravity.BaseMs,
		MinFallMs:    c.Gravity.MinMs,
		SpeedFactor:  c.Gravity.SpeedFactor,
		Preview:      c.Gameplay.PreviewLength,
		FixedGravity: c.Gravity.Fixed || g.mode == ModeZen,
		StartLevel:   startLevel,
	}

	g.stepMs = cfg.StepMs()
	g.showGhost = c.UI.Ghost
	g.preview = params.Preview
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.session = engine.NewSession(params, cfg.Seed)
	g.checkScreenSize()
}

// checkScreenSize flags sessions whose board plus side panel cannot fit.
func (g *Game) checkScreenSize() {
	requiredW := g.session.Grid().Width() + 2 + sidePanelWidth
	requiredH := g.session.Grid().Height() + 2 + hudHeight
	g.tooSmall = g.screenW < requiredW || g.screenH < requiredH
}

// Step advances the session by one fixed tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	// Commands apply in a fixed order so a tick is reproducible regardless
	// of how the actions were delivered.
	if in.Has(core.ActionRestart) {
		g.session.Handle(engine.CmdRestart)
	}
	if in.Has(core.ActionPause) {
		g.session.Handle(engine.CmdPause)
	}
	if in.Has(core.ActionLeft) {
		g.session.Handle(engine.CmdMoveLeft)
	}
	if in.Has(core.ActionRight) {
		g.session.Handle(engine.CmdMoveRight)
	}
	if in.Has(core.ActionUp) {
		g.session.Handle(engine.CmdRotate)
	}
	if in.Has(core.ActionDown) {
		g.session.Handle(engine.CmdSoftDrop)
	}
	if in.Has(core.ActionDrop) {
		g.session.Handle(engine.CmdHardDrop)
	}
	if in.Has(core.ActionHold) {
		g.session.Handle(engine.CmdHold)
	}

	g.session.Tick(g.stepMs)

	return core.StepResult{
		State:  g.State(),
		Events: mapEvents(g.session.DrainEvents()),
	}
}

// mapEvents converts engine events to the platform event vocabulary.
func mapEvents(events []engine.Event) []core.GameEvent {
	if len(events) == 0 {
		return nil
	}
	out := make([]core.GameEvent, 0, len(events))
	for _, e := range events {
		switch e.Type {
		case engine.EventPieceSpawned:
			out = append(out, core.EventSpawn)
		case engine.EventPieceMoved:
			out = append(out, core.EventMove)
		case engine.EventPieceRotated:
			out = append(out, core.EventRotate)
		case engine.EventSoftDropped:
			out = append(out, core.EventSoftDrop)
		case engine.EventHardDropped:
			out = append(out, core.EventHardDrop)
		case engine.EventPieceLocked:
			out = append(out, core.EventLock)
		case engine.EventLinesCleared:
			out = append(out, core.EventLineClear)
		case engine.EventLevelUp:
			out = append(out, core.EventLevelUp)
		case engine.EventHoldUsed:
			out = append(out, core.EventHold)
		case engine.EventPaused:
			out = append(out, core.EventPause)
		case engine.EventResumed:
			out = append(out, core.EventResume)
		case engine.EventGameOver:
			out = append(out, core.EventGameOver)
		}
	}
	return out
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.session.Score(),
		GameOver: g.session.Over(),
		Paused:   g.session.Paused(),
	}
}

// Session exposes the underlying engine session for tests and debugging.
func (g *Game) Session() *engine.Session {
	return g.session
}
