package well

//go:generate go tool stringer -type=Key -trimprefix=Key

// Key is a logical input. Hosts map their physical keys onto these.
type Key uint8

const (
	KeyRotate Key = iota
	KeyLeft
	KeyRight
	KeyDown
	KeyConfirm
)

// Input is the set of keys pressed during one frame. Only press edges belong
// in it; a held key must not be reported again until released.
type Input uint8

// Press returns an Input with every given key set.
func Press(keys ...Key) Input {
	var in Input
	for _, k := range keys {
		in = in.With(k)
	}
	return in
}

// With returns in with k set.
func (in Input) With(k Key) Input {
	return in | 1<<k
}

// Pressed reports whether k was pressed this frame.
func (in Input) Pressed(k Key) bool {
	return in&(1<<k) != 0
}
