package well

// System is one step of the tick. Systems run in registration order and may
// keep their own state between ticks.
type System interface {
	Execute(frame *Frame)
}
