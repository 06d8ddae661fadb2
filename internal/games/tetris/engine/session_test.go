package engine

import "testing"

func hasEvent(events []Event, et EventType) bool {
	for _, e := range events {
		if e.Type == et {
			return true
		}
	}
	return false
}

func findEvent(events []Event, et EventType) (Event, bool) {
	for _, e := range events {
		if e.Type == et {
			return e, true
		}
	}
	return Event{}, false
}

func countEvent(events []Event, et EventType) int {
	n := 0
	for _, e := range events {
		if e.Type == et {
			n++
		}
	}
	return n
}

// forcePiece replaces the active piece so a test controls exactly what falls.
func forcePiece(s *Session, t PieceType, rotation, row, col int) {
	s.active = Piece{Type: t, Rotation: rotation, Row: row, Col: col}
}

func TestNewSessionEmitsSpawn(t *testing.T) {
	s := NewSession(DefaultParams(), 1)
	events := s.DrainEvents()
	if !hasEvent(events, EventPieceSpawned) {
		t.Error("a fresh session should emit a spawn event")
	}
	if s.Over() || s.Paused() {
		t.Error("a fresh session should be running")
	}
	if s.Score() != 0 || s.Lines() != 0 || s.Level() != 1 {
		t.Errorf("fresh progress = %d/%d/%d, want 0/0/1", s.Score(), s.Lines(), s.Level())
	}
	if s.FallIntervalMs() != BaseFallMs {
		t.Errorf("fresh fall interval = %d, want %d", s.FallIntervalMs(), BaseFallMs)
	}
	if len(s.NextQueue()) != 1 {
		t.Errorf("next queue length = %d, want 1", len(s.NextQueue()))
	}
}

func TestSpawnPosition(t *testing.T) {
	s := NewSession(DefaultParams(), 1)
	p := s.ActivePiece()
	if p.Row != spawnRow || p.Col != 4 || p.Rotation != 0 {
		t.Errorf("spawn origin = (%d,%d) rot %d, want (%d,4) rot 0", p.Row, p.Col, p.Rotation, spawnRow)
	}
}

func TestHardDropAgainstWall(t *testing.T) {
	s := NewSession(DefaultParams(), 1)
	forcePiece(s, PieceI, 0, spawnRow, 4)
	s.DrainEvents()

	// The I piece spans columns 3..6; only three of four left moves fit.
	for i := 0; i < 4; i++ {
		s.Handle(CmdMoveLeft)
	}
	moved := countEvent(s.DrainEvents(), EventPieceMoved)
	if moved != 3 {
		t.Fatalf("accepted %d left moves, want 3", moved)
	}

	s.Handle(CmdHardDrop)
	events := s.DrainEvents()

	drop, ok := findEvent(events, EventHardDropped)
	if !ok {
		t.Fatal("hard drop did not emit its event")
	}
	if drop.Distance != 21 {
		t.Errorf("drop distance = %d, want 21", drop.Distance)
	}
	if !hasEvent(events, EventPieceLocked) {
		t.Error("hard drop must lock the piece")
	}
	if hasEvent(events, EventLinesCleared) {
		t.Error("no full row should have formed")
	}
	if !hasEvent(events, EventPieceSpawned) {
		t.Error("the next piece should spawn after the lock")
	}

	bottom := s.Grid().Height() - 1
	for col := 0; col < s.Grid().Width(); col++ {
		got := s.Grid().Cell(bottom, col)
		if col < 4 && got != PieceI.Color() {
			t.Errorf("bottom row col %d = %d, want the I color", col, got)
		}
		if col >= 4 && got != CellEmpty {
			t.Errorf("bottom row col %d = %d, want empty", col, got)
		}
	}
	if s.Score() != 0 {
		t.Errorf("score = %d, hard drops grant no bonus", s.Score())
	}
}

func TestSoftDropAtFloorIsSilent(t *testing.T) {
	s := NewSession(DefaultParams(), 1)
	forcePiece(s, PieceI, 0, 19, 4)
	s.DrainEvents()

	s.Handle(CmdSoftDrop)
	if events := s.DrainEvents(); len(events) != 0 {
		t.Errorf("blocked soft drop emitted %v, want nothing", events)
	}
	if s.ActivePiece().Row != 19 {
		t.Error("blocked soft drop moved the piece")
	}
	if hasEvent(s.DrainEvents(), EventPieceLocked) {
		t.Error("soft drop must never lock the piece")
	}
}

func TestRotationKickOffWall(t *testing.T) {
	s := NewSession(DefaultParams(), 1)
	// Vertical T hugging the left wall: rotating in place needs column -1,
	// so the one-column-right kick has to resolve it.
	forcePiece(s, PieceT, 1, 10, 0)
	s.DrainEvents()

	s.Handle(CmdRotate)
	if !hasEvent(s.DrainEvents(), EventPieceRotated) {
		t.Fatal("kicked rotation should succeed")
	}
	p := s.ActivePiece()
	if p.Rotation != 2 || p.Col != 1 {
		t.Errorf("after kick: rot %d col %d, want rot 2 col 1", p.Rotation, p.Col)
	}
}

func TestRotationRejectedKeepsState(t *testing.T) {
	s := NewSession(DefaultParams(), 1)
	// Vertical I at the left wall: its horizontal states span four columns,
	// beyond what the one-column kicks can recover.
	forcePiece(s, PieceI, 1, 10, 0)
	s.DrainEvents()

	before := s.ActivePiece()
	s.Handle(CmdRotate)
	if events := s.DrainEvents(); len(events) != 0 {
		t.Errorf("rejected rotation emitted %v, want nothing", events)
	}
	if s.ActivePiece() != before {
		t.Error("rejected rotation changed the piece")
	}
}

func TestHoldOncePerPiece(t *testing.T) {
	s := NewSession(DefaultParams(), 1)
	first := s.ActivePiece().Type
	s.DrainEvents()

	s.Handle(CmdHold)
	events := s.DrainEvents()
	if !hasEvent(events, EventHoldUsed) {
		t.Fatal("first hold should be accepted")
	}
	if !hasEvent(events, EventPieceSpawned) {
		t.Error("holding into an empty slot should spawn from the queue")
	}
	held, ok := s.HoldPiece()
	if !ok || held != first {
		t.Fatalf("hold slot = (%v, %v), want (%s, true)", held, ok, first)
	}

	// A second hold before the piece locks is a no-op.
	before := s.Snapshot()
	s.Handle(CmdHold)
	if events := s.DrainEvents(); len(events) != 0 {
		t.Errorf("second hold emitted %v, want nothing", events)
	}
	if s.Snapshot() != before {
		t.Error("second hold changed session state")
	}

	// Locking re-arms the hold, and the next hold swaps with the slot.
	s.Handle(CmdHardDrop)
	s.DrainEvents()
	current := s.ActivePiece().Type
	s.Handle(CmdHold)
	if !hasEvent(s.DrainEvents(), EventHoldUsed) {
		t.Fatal("hold after a lock should be accepted")
	}
	if s.ActivePiece().Type != first {
		t.Errorf("swap resumed %s, want the previously held %s", s.ActivePiece().Type, first)
	}
	if held, _ := s.HoldPiece(); held != current {
		t.Errorf("hold slot = %s, want %s", held, current)
	}
}

func TestGravityLocksBlockedPiece(t *testing.T) {
	s := NewSession(DefaultParams(), 1)
	forcePiece(s, PieceO, 0, 19, 4)
	s.DrainEvents()

	// One full gravity interval: the downward step is blocked by the floor,
	// so the piece locks in place.
	s.Tick(s.FallIntervalMs())
	events := s.DrainEvents()
	if !hasEvent(events, EventPieceLocked) {
		t.Fatal("blocked gravity step should lock the piece")
	}
	if s.Grid().Cell(19, 4) != PieceO.Color() {
		t.Error("locked cells missing from the grid")
	}
}

func TestGravityAccumulatesPartialTicks(t *testing.T) {
	s := NewSession(DefaultParams(), 1)
	forcePiece(s, PieceO, 0, 5, 4)
	s.DrainEvents()

	step := s.FallIntervalMs()
	s.Tick(step - 1)
	if s.ActivePiece().Row != 5 {
		t.Error("piece fell before a full interval elapsed")
	}
	s.Tick(1)
	if s.ActivePiece().Row != 6 {
		t.Errorf("row = %d after one full interval, want 6", s.ActivePiece().Row)
	}
	// A large delta advances multiple rows at once.
	s.Tick(3 * step)
	if s.ActivePiece().Row != 9 {
		t.Errorf("row = %d after three more intervals, want 9", s.ActivePiece().Row)
	}
}

func TestLineClearScoringAndEvents(t *testing.T) {
	s := NewSession(DefaultParams(), 1)
	bottom := s.Grid().Height() - 1
	for col := 0; col < s.Grid().Width(); col++ {
		if col < 3 || col > 6 {
			s.grid.cells[bottom][col] = 1
		}
	}
	forcePiece(s, PieceI, 0, spawnRow, 4)
	s.DrainEvents()

	s.Handle(CmdHardDrop)
	events := s.DrainEvents()

	clear, ok := findEvent(events, EventLinesCleared)
	if !ok {
		t.Fatal("completing the bottom row should emit a clear event")
	}
	if clear.Lines != 1 || len(clear.Rows) != 1 || clear.Rows[0] != bottom {
		t.Errorf("clear event = %+v, want 1 line at row %d", clear, bottom)
	}
	if s.Score() != 100 || s.Lines() != 1 || s.Level() != 1 {
		t.Errorf("progress = %d/%d/%d, want 100/1/1", s.Score(), s.Lines(), s.Level())
	}
	for col := 0; col < s.Grid().Width(); col++ {
		if s.Grid().Cell(bottom, col) != CellEmpty {
			t.Errorf("bottom row col %d not cleared", col)
		}
	}
}

func TestLevelUpSpeedsGravity(t *testing.T) {
	s := NewSession(DefaultParams(), 1)
	s.progress.Lines = 9
	bottom := s.Grid().Height() - 1
	for col := 0; col < s.Grid().Width(); col++ {
		if col < 3 || col > 6 {
			s.grid.cells[bottom][col] = 1
		}
	}
	forcePiece(s, PieceI, 0, spawnRow, 4)
	s.DrainEvents()

	s.Handle(CmdHardDrop)
	events := s.DrainEvents()

	up, ok := findEvent(events, EventLevelUp)
	if !ok {
		t.Fatal("the tenth line should emit a level-up event")
	}
	if up.Level != 2 {
		t.Errorf("level-up event level = %d, want 2", up.Level)
	}
	want := FallInterval(2, BaseFallMs, MinFallMs, SpeedFactor)
	if s.FallIntervalMs() != want {
		t.Errorf("fall interval = %d, want %d", s.FallIntervalMs(), want)
	}
}

func TestFixedGravityIgnoresLevel(t *testing.T) {
	params := DefaultParams()
	params.FixedGravity = true
	s := NewSession(params, 1)
	s.progress.Lines = 9
	bottom := s.Grid().Height() - 1
	for col := 0; col < s.Grid().Width(); col++ {
		if col < 3 || col > 6 {
			s.grid.cells[bottom][col] = 1
		}
	}
	forcePiece(s, PieceI, 0, spawnRow, 4)
	s.Handle(CmdHardDrop)

	if s.Level() != 2 {
		t.Fatalf("level = %d, want 2", s.Level())
	}
	if s.FallIntervalMs() != BaseFallMs {
		t.Errorf("fixed-gravity interval = %d, want %d", s.FallIntervalMs(), BaseFallMs)
	}
}

func TestPauseFreezesSession(t *testing.T) {
	s := NewSession(DefaultParams(), 1)
	s.DrainEvents()

	s.Handle(CmdPause)
	if !s.Paused() {
		t.Fatal("pause command should pause")
	}
	if !hasEvent(s.DrainEvents(), EventPaused) {
		t.Error("pausing should emit its event")
	}

	before := s.Snapshot()
	s.Tick(10 * BaseFallMs)
	s.Handle(CmdMoveLeft)
	s.Handle(CmdHardDrop)
	s.Handle(CmdHold)
	if got := s.Snapshot(); got != before {
		t.Error("paused session state changed")
	}

	s.Handle(CmdPause)
	if s.Paused() {
		t.Error("second pause command should resume")
	}
	if !hasEvent(s.DrainEvents(), EventResumed) {
		t.Error("resuming should emit its event")
	}
	s.Handle(CmdMoveLeft)
	if !hasEvent(s.DrainEvents(), EventPieceMoved) {
		t.Error("input should work again after resuming")
	}
}

func TestTopOutEndsSession(t *testing.T) {
	s := NewSession(DefaultParams(), 1)
	for col := 0; col < s.Grid().Width(); col++ {
		s.grid.cells[0][col] = 1
	}
	s.DrainEvents()

	// The drop stops above the filled top row, so the piece locks with
	// cells still off-screen.
	s.Handle(CmdHardDrop)
	if !s.Over() {
		t.Fatal("locking above the top edge should end the session")
	}
	if !hasEvent(s.DrainEvents(), EventGameOver) {
		t.Error("top-out should emit a game-over event")
	}

	before := s.Snapshot()
	s.Handle(CmdMoveLeft)
	s.Handle(CmdHardDrop)
	s.Tick(10 * BaseFallMs)
	if got := s.Snapshot(); got != before {
		t.Error("a finished session must ignore everything but restart")
	}

	s.Handle(CmdRestart)
	if s.Over() {
		t.Error("restart should start a new run")
	}
	if s.Score() != 0 || s.Lines() != 0 {
		t.Error("restart should reset progression")
	}
	if s.Grid().Cell(0, 0) != CellEmpty {
		t.Error("restart should clear the grid")
	}
}

func TestGhostProjectionDoesNotMutate(t *testing.T) {
	s := NewSession(DefaultParams(), 1)
	forcePiece(s, PieceT, 0, 3, 4)
	before := s.Snapshot()

	ghost := s.GhostCells()
	if s.Snapshot() != before {
		t.Fatal("ghost projection mutated session state")
	}
	for _, c := range ghost {
		if c.Row < 18 {
			t.Errorf("ghost cell %v above the floor on an empty grid", c)
		}
	}
}

func TestRestartMatchesFreshSession(t *testing.T) {
	const seed = 777
	s := NewSession(DefaultParams(), seed)
	s.Handle(CmdMoveLeft)
	s.Handle(CmdRotate)
	s.Handle(CmdHardDrop)
	s.Tick(BaseFallMs)
	s.Handle(CmdRestart)
	s.DrainEvents()

	fresh := NewSession(DefaultParams(), seed)
	fresh.DrainEvents()
	if s.Snapshot() != fresh.Snapshot() {
		t.Error("restart should reproduce a fresh session for the same seed")
	}
}

func TestDeterministicReplay(t *testing.T) {
	script := []struct {
		cmd    Command
		tickMs int
	}{
		{CmdMoveLeft, 200}, {CmdRotate, 200}, {CmdMoveRight, 400},
		{CmdSoftDrop, 800}, {CmdHold, 200}, {CmdHardDrop, 1000},
		{CmdMoveLeft, 300}, {CmdMoveLeft, 300}, {CmdHardDrop, 500},
		{CmdRotate, 250}, {CmdMoveRight, 250}, {CmdHardDrop, 2000},
	}

	run := func(seed int64) Snapshot {
		s := NewSession(DefaultParams(), seed)
		for _, step := range script {
			s.Handle(step.cmd)
			s.Tick(step.tickMs)
		}
		return s.Snapshot()
	}

	if a, b := run(5), run(5); a != b {
		t.Errorf("same seed diverged:\n%+v\n%+v", a, b)
	}
	if a, b := run(5), run(6); a == b {
		t.Error("different seeds produced identical runs")
	}
}

func TestDrainEventsClears(t *testing.T) {
	s := NewSession(DefaultParams(), 1)
	if events := s.DrainEvents(); len(events) == 0 {
		t.Fatal("expected the spawn event")
	}
	if events := s.DrainEvents(); events != nil {
		t.Errorf("second drain = %v, want nil", events)
	}
}
