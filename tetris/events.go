package tetris

// EventKind classifies something that changed during a tick.
type EventKind uint8

const (
	EventSpawned EventKind = iota
	EventMoved
	EventRotated
	EventSoftDropped
	EventHardDropped
	EventGravityStep
	EventLocked
	EventLinesCleared
	EventGameOver
	EventQuit
)

var eventNames = [...]string{
	"Spawned", "Moved", "Rotated", "SoftDropped", "HardDropped",
	"GravityStep", "Locked", "LinesCleared", "GameOver", "Quit",
}

func (k EventKind) String() string {
	if int(k) >= len(eventNames) {
		return "Unknown"
	}
	return eventNames[k]
}

// Event records a state change. Piece is the piece involved, Value carries the
// drop distance for HardDropped and the row count for LinesCleared.
type Event struct {
	Kind  EventKind
	Piece PieceType
	Value int
}

// Events buffers the events emitted by systems during one tick.
type Events struct {
	items []Event
}

// Emit appends an event.
func (e *Events) Emit(kind EventKind, piece PieceType, value int) {
	e.items = append(e.items, Event{Kind: kind, Piece: piece, Value: value})
}

// Len returns the number of buffered events.
func (e *Events) Len() int {
	return len(e.items)
}

// Flush returns the buffered events and resets the buffer.
func (e *Events) Flush() []Event {
	if len(e.items) == 0 {
		return nil
	}
	out := make([]Event, len(e.items))
	copy(out, e.items)
	e.items = e.items[:0]
	return out
}
