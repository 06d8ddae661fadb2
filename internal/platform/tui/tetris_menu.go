package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// maxStartLevel bounds the start-level picker. Level 15 is already at the
// gravity floor.
const maxStartLevel = 15

// TetrisMode represents the selected game mode.
type TetrisMode int

const (
	TetrisModeMarathon TetrisMode = iota
	TetrisModeZen
)

// TetrisSelection holds the user's choices from the tetris menu.
type TetrisSelection struct {
	Mode       TetrisMode
	StartLevel int    // 0 = configured default, 1..15 = explicit
	Difficulty string // empty = configured default
}

// TetrisModeModel lets users choose mode, start level, and difficulty.
type TetrisModeModel struct {
	cursor        int
	levelCursor   int
	diffCursor    int
	inLevelSelect bool
	inDiffSelect  bool
	width         int
	height        int
	keyMapper     *KeyMapper
	selection     TetrisSelection
	choosing      bool
	quitting      bool
	back          bool
}

var difficultyNames = []string{"easy", "normal", "hard"}

// NewTetrisModeModel creates a tetris mode selection model.
func NewTetrisModeModel(width, height int) TetrisModeModel {
	return TetrisModeModel{
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m TetrisModeModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m TetrisModeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m TetrisModeModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	switch {
	case m.inLevelSelect:
		return m.handleLevelSelectKey(action)
	case m.inDiffSelect:
		return m.handleDiffSelectKey(action)
	default:
		return m.handleModeSelectKey(action)
	}
}

func (m TetrisModeModel) handleModeSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < 3 { // Marathon, Zen, Start Level..., Difficulty...
			m.cursor++
		}
	case MenuActionSelect:
		switch m.cursor {
		case 0:
			m.choosing = false
			m.selection.Mode = TetrisModeMarathon
			return m, tea.Quit
		case 1:
			m.choosing = false
			m.selection.Mode = TetrisModeZen
			return m, tea.Quit
		case 2:
			m.inLevelSelect = true
			m.levelCursor = 0
		case 3:
			m.inDiffSelect = true
			m.diffCursor = 0
		}
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

func (m TetrisModeModel) handleLevelSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.levelCursor > 0 {
			m.levelCursor--
		}
	case MenuActionDown:
		if m.levelCursor < maxStartLevel-1 {
			m.levelCursor++
		}
	case MenuActionSelect:
		m.choosing = false
		m.selection.Mode = TetrisModeMarathon
		m.selection.StartLevel = m.levelCursor + 1
		return m, tea.Quit
	case MenuActionBack:
		m.inLevelSelect = false
	}

	return m, nil
}

func (m TetrisModeModel) handleDiffSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.diffCursor > 0 {
			m.diffCursor--
		}
	case MenuActionDown:
		if m.diffCursor < len(difficultyNames)-1 {
			m.diffCursor++
		}
	case MenuActionSelect:
		// Sticky until a mode is picked.
		m.selection.Difficulty = difficultyNames[m.diffCursor]
		m.inDiffSelect = false
	case MenuActionBack:
		m.inDiffSelect = false
	}

	return m, nil
}

// View renders the current selection screen.
func (m TetrisModeModel) View() string {
	if m.quitting {
		return ""
	}

	switch {
	case m.inLevelSelect:
		return m.viewLevelSelect()
	case m.inDiffSelect:
		return m.viewDiffSelect()
	default:
		return m.viewModeSelect()
	}
}

func (m TetrisModeModel) viewModeSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("T E T R I S", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select game mode:", m.width))
	b.WriteString("\n\n")

	options := []string{
		"Marathon (speed rises with level)",
		"Zen (constant speed)",
		"Start Level...",
		"Difficulty...",
	}

	for i, option := range options {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%s", cursor, option), m.width))
		b.WriteString("\n")
	}

	if m.selection.Difficulty != "" {
		b.WriteString("\n")
		b.WriteString(centerText(fmt.Sprintf("Difficulty: %s", m.selection.Difficulty), m.width))
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

func (m TetrisModeModel) viewLevelSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("START LEVEL", m.width))
	b.WriteString("\n\n")

	for i := 0; i < maxStartLevel; i++ {
		cursor := "  "
		if i == m.levelCursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%sLevel %2d", cursor, i+1), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

func (m TetrisModeModel) viewDiffSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("DIFFICULTY", m.width))
	b.WriteString("\n\n")

	for i, name := range difficultyNames {
		cursor := "  "
		if i == m.diffCursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%s", cursor, name), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m TetrisModeModel) Selected() *TetrisSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if the user wants to quit.
func (m TetrisModeModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if the user pressed back.
func (m TetrisModeModel) WantsBack() bool {
	return m.back
}

// RunTetrisModeSelector runs the mode selection and returns the selection,
// or nil when the user backed out.
func RunTetrisModeSelector(cfg core.RuntimeConfig) (*TetrisSelection, core.RuntimeConfig, error) {
	p := tea.NewProgram(
		NewTetrisModeModel(cfg.ScreenW, cfg.ScreenH),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, cfg, err
	}

	m, ok := finalModel.(TetrisModeModel)
	if !ok {
		return nil, cfg, nil
	}

	if m.IsQuitting() || m.WantsBack() {
		return nil, cfg, nil
	}

	return m.Selected(), cfg, nil
}
