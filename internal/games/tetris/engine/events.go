package engine

// EventType identifies a discrete engine event. Events are the entire
// contract between the engine and the presentation layer: the engine appends
// them during Handle/Tick and the host drains them once per tick.
type EventType int

const (
	EventPieceSpawned EventType = iota
	EventPieceMoved
	EventPieceRotated
	EventSoftDropped
	EventHardDropped
	EventPieceLocked
	EventLinesCleared
	EventLevelUp
	EventHoldUsed
	EventPaused
	EventResumed
	EventGameOver
)

// String returns the event name used for presentation cues.
func (t EventType) String() string {
	switch t {
	case EventPieceSpawned:
		return "piece_spawned"
	case EventPieceMoved:
		return "piece_moved"
	case EventPieceRotated:
		return "piece_rotated"
	case EventSoftDropped:
		return "soft_dropped"
	case EventHardDropped:
		return "hard_dropped"
	case EventPieceLocked:
		return "piece_locked"
	case EventLinesCleared:
		return "lines_cleared"
	case EventLevelUp:
		return "level_up"
	case EventHoldUsed:
		return "hold_used"
	case EventPaused:
		return "paused"
	case EventResumed:
		return "resumed"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is one emitted engine event with its payload.
type Event struct {
	Type     EventType
	Lines    int   // EventLinesCleared: number of rows cleared (1..4)
	Rows     []int // EventLinesCleared: cleared row indices, top to bottom
	Distance int   // EventHardDropped: rows traveled before locking
	Level    int   // EventLevelUp: the new level
}
