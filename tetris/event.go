package tetris

// EventType tags what happened inside a game.
type EventType int

const (
	EventStart EventType = iota
	EventReset
	EventSpawn
	EventLock
	EventLineClear
	EventGameOver
)

var eventNames = [...]string{"start", "reset", "spawn", "lock", "line-clear", "game-over"}

func (t EventType) String() string {
	if t >= 0 && int(t) < len(eventNames) {
		return eventNames[t]
	}
	return "unknown"
}

// Event describes a state change. Kind is the figure involved, Lines is the
// number of rows removed by a lock, and Score is the score after the change.
type Event struct {
	Type  EventType
	Kind  Kind
	Lines int
	Score int
}

// Listener receives events synchronously, on the goroutine that drives the game.
type Listener func(Event)
