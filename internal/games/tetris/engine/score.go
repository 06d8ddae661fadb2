package engine

import "math"

// Gravity and progression defaults, matching the classic rules.
const (
	BaseFallMs    = 800 // initial gravity interval
	MinFallMs     = 50  // safety floor so high levels never hit a zero interval
	SpeedFactor   = 0.8 // per-level geometric speed-up
	LinesPerLevel = 10
)

// clearPoints is the base reward indexed by lines cleared at once (0..4).
var clearPoints = [5]int{0, 100, 300, 500, 800}

// ClearPoints returns the score awarded for clearing n lines at the given
// level. n outside 1..4 is worth nothing.
func ClearPoints(n, level int) int {
	if n < 1 || n > 4 {
		return 0
	}
	return clearPoints[n] * level
}

// Progress tracks score, total lines, and level for one session.
// All three are monotonically non-decreasing until a restart.
type Progress struct {
	Score      int
	Lines      int
	Level      int
	startLevel int
}

// NewProgress creates a progress tracker starting at the given level (min 1).
func NewProgress(startLevel int) Progress {
	if startLevel < 1 {
		startLevel = 1
	}
	return Progress{Level: startLevel, startLevel: startLevel}
}

// Apply records a line clear of n rows. The level is recomputed from total
// lines rather than incremented, so it stays consistent with the line count.
// Returns true when the level increased.
func (p *Progress) Apply(n int) bool {
	p.Score += ClearPoints(n, p.Level)
	p.Lines += n

	level := p.Lines/LinesPerLevel + 1
	if level < p.startLevel {
		level = p.startLevel
	}
	if level > p.Level {
		p.Level = level
		return true
	}
	return false
}

// FallInterval computes the gravity interval in milliseconds for a level:
// base * factor^(level-1), clamped to minMs. The clamp is a safety bound
// added on top of the classic formula.
func FallInterval(level, baseMs, minMs int, factor float64) int {
	if level < 1 {
		level = 1
	}
	ms := int(float64(baseMs) * math.Pow(factor, float64(level-1)))
	if ms < minMs {
		ms = minMs
	}
	return ms
}
