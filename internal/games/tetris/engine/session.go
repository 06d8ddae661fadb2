package engine

// Command is a discrete input command applied to a session. Commands are
// processed synchronously between ticks; rejected commands are silent no-ops.
type Command int

const (
	CmdMoveLeft Command = iota
	CmdMoveRight
	CmdSoftDrop
	CmdRotate
	CmdHardDrop
	CmdHold
	CmdPause
	CmdRestart
)

// rotationKicks are the offset corrections tried, in order, when a rotation
// collides at the piece's current origin: in place, one column left, one
// column right. The first non-colliding placement wins; otherwise the
// rotation is rejected.
var rotationKicks = [3]Offset{{0, 0}, {0, -1}, {0, 1}}

// spawnRow is the origin row of a freshly spawned piece. Two rows above the
// grid so tall rotation states fit before entering the visible field.
const spawnRow = -2

// Params configures a session.
type Params struct {
	Width        int     // playfield columns
	Height       int     // playfield rows
	BaseFallMs   int     // gravity interval at level 1
	MinFallMs    int     // gravity interval floor
	SpeedFactor  float64 // per-level interval multiplier
	Preview      int     // next-queue length exposed to the renderer
	FixedGravity bool    // zen mode: interval never rescales with the level
	StartLevel   int     // initial level (min 1)
}

// DefaultParams returns the standard 10x20 marathon configuration.
func DefaultParams() Params {
	return Params{
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		BaseFallMs:  BaseFallMs,
		MinFallMs:   MinFallMs,
		SpeedFactor: SpeedFactor,
		Preview:     1,
		StartLevel:  1,
	}
}

// Session is one run of the game: the grid, the falling piece, the hold slot,
// the next queue, and progression. It advances only through Handle and Tick,
// never by wall-clock time, so a session is replayable from its seed and
// command stream.
type Session struct {
	params Params
	seed   int64

	grid   *Grid
	bag    *Bag
	active Piece
	next   []PieceType

	hold     PieceType
	hasHold  bool
	holdUsed bool // set on hold, cleared on lock

	progress Progress
	fallMs   int // current gravity interval
	accMs    int // accumulated virtual time toward the next gravity step

	paused bool
	over   bool

	events []Event
}

// NewSession creates and starts a session with the given parameters and seed.
func NewSession(params Params, seed int64) *Session {
	if params.Width <= 0 {
		params.Width = DefaultWidth
	}
	if params.Height <= 0 {
		params.Height = DefaultHeight
	}
	if params.BaseFallMs <= 0 {
		params.BaseFallMs = BaseFallMs
	}
	if params.MinFallMs <= 0 {
		params.MinFallMs = MinFallMs
	}
	if params.SpeedFactor <= 0 || params.SpeedFactor >= 1 {
		params.SpeedFactor = SpeedFactor
	}
	if params.Preview < 1 {
		params.Preview = 1
	}

	s := &Session{
		params: params,
		seed:   seed,
		grid:   NewGrid(params.Width, params.Height),
		bag:    NewBag(seed),
	}
	s.start()
	return s
}

// start (re)initializes every piece of session state from the stored seed.
func (s *Session) start() {
	s.grid.Reset()
	s.bag.Reseed(s.seed)
	s.next = s.next[:0]
	s.hasHold = false
	s.holdUsed = false
	s.paused = false
	s.over = false
	s.accMs = 0
	s.progress = NewProgress(s.params.StartLevel)
	s.updateFallInterval()
	s.fillQueue()
	s.spawn()
}

func (s *Session) fillQueue() {
	for len(s.next) < s.params.Preview {
		s.next = append(s.next, s.bag.Next())
	}
}

func (s *Session) updateFallInterval() {
	if s.params.FixedGravity {
		s.fallMs = s.params.BaseFallMs
		return
	}
	s.fallMs = FallInterval(s.progress.Level, s.params.BaseFallMs, s.params.MinFallMs, s.params.SpeedFactor)
}

// spawn pulls the next type from the queue and places it at the spawn origin.
// A blocked spawn tops the session out.
func (s *Session) spawn() {
	t := s.next[0]
	s.next = s.next[1:]
	s.fillQueue()
	s.spawnPiece(t)
}

func (s *Session) spawnPiece(t PieceType) {
	s.active = Piece{Type: t, Rotation: 0, Row: spawnRow, Col: s.params.Width/2 - 1}
	if s.collides(s.active) {
		s.over = true
		s.emit(Event{Type: EventGameOver})
		return
	}
	s.emit(Event{Type: EventPieceSpawned})
}

// collides reports whether any cell of the piece is blocked on the grid.
func (s *Session) collides(p Piece) bool {
	for _, c := range p.Cells() {
		if s.grid.Occupied(c.Row, c.Col) {
			return true
		}
	}
	return false
}

// tryShift commits a one-step move when the target placement is free.
func (s *Session) tryShift(dRow, dCol int) bool {
	cand := s.active.Shifted(dRow, dCol)
	if s.collides(cand) {
		return false
	}
	s.active = cand
	return true
}

// Handle applies one input command. While paused only Pause and Restart are
// accepted; after game over only Restart.
func (s *Session) Handle(cmd Command) {
	if s.over && cmd != CmdRestart {
		return
	}
	if s.paused && cmd != CmdPause && cmd != CmdRestart {
		return
	}

	switch cmd {
	case CmdMoveLeft:
		if s.tryShift(0, -1) {
			s.emit(Event{Type: EventPieceMoved})
		}
	case CmdMoveRight:
		if s.tryShift(0, 1) {
			s.emit(Event{Type: EventPieceMoved})
		}
	case CmdSoftDrop:
		if s.tryShift(1, 0) {
			s.emit(Event{Type: EventSoftDropped})
		}
	case CmdRotate:
		s.rotate()
	case CmdHardDrop:
		s.hardDrop()
	case CmdHold:
		s.holdSwap()
	case CmdPause:
		s.paused = !s.paused
		if s.paused {
			s.emit(Event{Type: EventPaused})
		} else {
			s.emit(Event{Type: EventResumed})
		}
	case CmdRestart:
		s.start()
	}
}

// rotate attempts a clockwise rotation, trying each kick offset in order.
func (s *Session) rotate() {
	rotated := s.active.Rotated()
	for _, k := range rotationKicks {
		cand := rotated.Shifted(k.Row, k.Col)
		if !s.collides(cand) {
			s.active = cand
			s.emit(Event{Type: EventPieceRotated})
			return
		}
	}
}

// hardDrop sends the piece straight down and locks it immediately.
// No bonus score is granted for the drop distance.
func (s *Session) hardDrop() {
	dist := 0
	for s.tryShift(1, 0) {
		dist++
	}
	s.emit(Event{Type: EventHardDropped, Distance: dist})
	s.lock()
}

// holdSwap stores the active piece and resumes with the held one (or the next
// from the queue). Allowed at most once per piece lifetime.
func (s *Session) holdSwap() {
	if s.holdUsed {
		return
	}
	s.holdUsed = true

	t := s.active.Type
	if s.hasHold {
		swapped := s.hold
		s.hold = t
		s.emit(Event{Type: EventHoldUsed})
		s.spawnPiece(swapped)
		return
	}
	s.hold = t
	s.hasHold = true
	s.emit(Event{Type: EventHoldUsed})
	s.spawn()
}

// Tick advances virtual time. Each elapsed gravity interval attempts one
// downward step; a blocked step locks the piece.
func (s *Session) Tick(deltaMs int) {
	if s.paused || s.over || deltaMs <= 0 {
		return
	}

	s.accMs += deltaMs
	for s.accMs >= s.fallMs {
		s.accMs -= s.fallMs
		if !s.tryShift(1, 0) {
			s.lock()
		}
		if s.over {
			return
		}
	}
}

// lock merges the active piece into the grid, resolves line clears, updates
// progression, and spawns the next piece. Locking with any cell still above
// the top edge tops the session out.
func (s *Session) lock() {
	cells := s.active.Cells()
	for _, c := range cells {
		if c.Row < 0 {
			s.over = true
			s.emit(Event{Type: EventGameOver})
			return
		}
	}

	s.grid.Place(cells, s.active.Type.Color())
	s.holdUsed = false
	s.accMs = 0
	s.emit(Event{Type: EventPieceLocked})

	if rows := s.grid.FullRows(); len(rows) > 0 {
		s.grid.ClearRows(rows)
		s.emit(Event{Type: EventLinesCleared, Lines: len(rows), Rows: rows})
		if s.progress.Apply(len(rows)) {
			s.updateFallInterval()
			s.emit(Event{Type: EventLevelUp, Level: s.progress.Level})
		}
	}

	s.spawn()
}

func (s *Session) emit(e Event) {
	s.events = append(s.events, e)
}

// DrainEvents returns all events emitted since the last drain and clears the
// internal list. The host calls this once per tick.
func (s *Session) DrainEvents() []Event {
	if len(s.events) == 0 {
		return nil
	}
	out := s.events
	s.events = nil
	return out
}

// --- Read-only snapshot accessors for the presentation layer ---

// Grid exposes the locked-block playfield.
func (s *Session) Grid() *Grid {
	return s.grid
}

// ActivePiece returns the currently falling piece.
func (s *Session) ActivePiece() Piece {
	return s.active
}

// ActiveCells returns the active piece's absolute cell positions.
func (s *Session) ActiveCells() [4]Offset {
	return s.active.Cells()
}

// GhostCells returns where the active piece would land if dropped now.
// The projection runs on a copy and never mutates session state.
func (s *Session) GhostCells() [4]Offset {
	ghost := s.active
	for {
		next := ghost.Shifted(1, 0)
		if s.collides(next) {
			break
		}
		ghost = next
	}
	return ghost.Cells()
}

// HoldPiece returns the held piece type, if any.
func (s *Session) HoldPiece() (PieceType, bool) {
	return s.hold, s.hasHold
}

// NextQueue returns a copy of the upcoming piece types, soonest first.
func (s *Session) NextQueue() []PieceType {
	out := make([]PieceType, len(s.next))
	copy(out, s.next)
	return out
}

// Score returns the current score.
func (s *Session) Score() int {
	return s.progress.Score
}

// Lines returns the total number of cleared lines.
func (s *Session) Lines() int {
	return s.progress.Lines
}

// Level returns the current level.
func (s *Session) Level() int {
	return s.progress.Level
}

// FallIntervalMs returns the current gravity interval.
func (s *Session) FallIntervalMs() int {
	return s.fallMs
}

// Paused reports whether the session is paused.
func (s *Session) Paused() bool {
	return s.paused
}

// Over reports whether the session has ended.
func (s *Session) Over() bool {
	return s.over
}
