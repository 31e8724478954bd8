package well

// Piece is the falling group of four blocks. Blocks[0] is the rotation pivot.
// Pieces are values: every operation returns a new candidate and never
// touches the receiver.
type Piece struct {
	Blocks    [4]Block
	Rotatable bool
	Shape     ShapeKind
}

// Pivot returns the position rotations turn around.
func (p Piece) Pivot() Position {
	return p.Blocks[0].Position
}

// Positions returns the cell of every block in order.
func (p Piece) Positions() [4]Position {
	var out [4]Position
	for i, b := range p.Blocks {
		out[i] = b.Position
	}
	return out
}

// IsValid reports whether blocks fit in the well without touching the stack.
// Rows above the well (negative Y) are allowed.
func IsValid(blocks []Block, stack *Stack) bool {
	for _, b := range blocks {
		if b.X < 0 || b.X >= WellWidth || b.Y >= WellHeight {
			return false
		}
		if stack.Occupied(b.Position) {
			return false
		}
	}
	return true
}

// TryMove returns p translated by (dx, dy) cells if the result is valid.
func TryMove(p Piece, dx, dy int, stack *Stack) (Piece, bool) {
	candidate := p
	for i := range candidate.Blocks {
		candidate.Blocks[i].Position = candidate.Blocks[i].Add(dx, dy)
	}

	if !IsValid(candidate.Blocks[:], stack) {
		return p, false
	}
	return candidate, true
}

// TryRotate returns p turned 90° around its pivot if p is rotatable and the
// result is valid. The pivot block never moves.
func TryRotate(p Piece, stack *Stack) (Piece, bool) {
	if !p.Rotatable {
		return p, false
	}

	candidate := p
	c := p.Pivot()
	for i := 1; i < len(candidate.Blocks); i++ {
		b := candidate.Blocks[i]
		candidate.Blocks[i].Position = Position{
			X: c.X - (b.Y - c.Y),
			Y: c.Y + (b.X - c.X),
		}
	}

	if !IsValid(candidate.Blocks[:], stack) {
		return p, false
	}
	return candidate, true
}

// Blocked reports whether p cannot descend one more row, either because it
// rests on the floor or on the stack.
func Blocked(p Piece, stack *Stack) bool {
	_, ok := TryMove(p, 0, 1, stack)
	return !ok
}
