package well

//go:generate go tool stringer -type=EventKind -trimprefix=Event

// EventKind identifies what happened during a tick.
type EventKind int

const (
	EventSpawn EventKind = iota
	EventLock
	EventLineClear
	EventGameOver
)

// Event reports a state transition made by a system.
type Event struct {
	Kind  EventKind
	Piece Piece
	// Rows holds the cleared rows of an EventLineClear.
	Rows  []int
	Score uint32
}

// Commands buffers events and deferred functions raised while systems run.
// They are delivered after the last system of the tick, so listeners always
// observe a settled state.
type Commands struct {
	events []Event
	defers []func()
}

func newCommands() *Commands {
	return &Commands{}
}

// Emit queues an event.
func (c *Commands) Emit(e Event) {
	c.events = append(c.events, e)
}

// Defer queues a function execution operation.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Events returns the queued events without draining them.
func (c *Commands) Events() []Event {
	return c.events
}

// Flush delivers queued events to deliver in order, then runs deferred
// functions, resetting the buffer state.
func (c *Commands) Flush(deliver func(Event)) {
	if deliver != nil {
		for _, e := range c.events {
			deliver(e)
		}
	}

	for _, fn := range c.defers {
		fn()
	}

	c.events = c.events[:0]
	c.defers = c.defers[:0]
}
