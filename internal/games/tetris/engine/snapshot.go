package engine

import "strings"

// Snapshot captures the complete observable session state for determinism
// testing and debugging. Two sessions fed the same seed, commands, and ticks
// must produce equal snapshots.
type Snapshot struct {
	Board     string // one row per line, '.' empty, piece letters for blocks
	ActiveT   PieceType
	ActiveRow int
	ActiveCol int
	ActiveRot int
	HoldT     PieceType // valid only when HasHold
	HasHold   bool
	HoldUsed  bool
	Next      string // upcoming piece letters, soonest first
	Score     int
	Lines     int
	Level     int
	FallMs    int
	AccMs     int
	Paused    bool
	Over      bool
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	var next strings.Builder
	for _, t := range s.next {
		next.WriteString(t.String())
	}

	return Snapshot{
		Board:     s.boardString(),
		ActiveT:   s.active.Type,
		ActiveRow: s.active.Row,
		ActiveCol: s.active.Col,
		ActiveRot: s.active.Rotation,
		HoldT:     s.hold,
		HasHold:   s.hasHold,
		HoldUsed:  s.holdUsed,
		Next:      next.String(),
		Score:     s.progress.Score,
		Lines:     s.progress.Lines,
		Level:     s.progress.Level,
		FallMs:    s.fallMs,
		AccMs:     s.accMs,
		Paused:    s.paused,
		Over:      s.over,
	}
}

// boardString renders the locked blocks as text, one row per line.
func (s *Session) boardString() string {
	var b strings.Builder
	for row := 0; row < s.grid.Height(); row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < s.grid.Width(); col++ {
			c := s.grid.Cell(row, col)
			if c == CellEmpty {
				b.WriteByte('.')
			} else {
				b.WriteString(PieceType(c - 1).String())
			}
		}
	}
	return b.String()
}
