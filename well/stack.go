package well

import (
	"slices"

	"github.com/kamstrup/intmap"
)

// Stack holds the settled blocks. Cells are keyed by their packed well index
// and every row keeps a running count so full rows are found without a scan.
type Stack struct {
	cells *intmap.Map[int, Block]
	rows  [WellHeight]int
}

// NewStack creates an empty stack.
func NewStack() *Stack {
	return &Stack{
		cells: intmap.New[int, Block](WellWidth * WellHeight),
	}
}

func cellKey(p Position) int {
	return p.Y*WellWidth + p.X
}

// Occupied reports whether a settled block sits at p. Cells outside the well
// are never occupied.
func (s *Stack) Occupied(p Position) bool {
	if !InWell(p) {
		return false
	}
	_, ok := s.cells.Get(cellKey(p))
	return ok
}

// Add settles a single block. It refuses blocks outside the well or on an
// occupied cell.
func (s *Stack) Add(b Block) bool {
	if !InWell(b.Position) || s.Occupied(b.Position) {
		return false
	}
	s.cells.Put(cellKey(b.Position), b)
	s.rows[b.Y]++
	return true
}

// Merge settles every block of p unchanged. Blocks still above the well, or
// on a cell that is already taken, cannot be stored; Merge drops them and
// reports overflow.
func (s *Stack) Merge(p Piece) (overflow bool) {
	for _, b := range p.Blocks {
		if !s.Add(b) {
			overflow = true
		}
	}
	return overflow
}

// Len returns the number of settled blocks.
func (s *Stack) Len() int {
	return s.cells.Len()
}

// RowCount returns how many blocks sit on row y.
func (s *Stack) RowCount(y int) int {
	if y < 0 || y >= WellHeight {
		return 0
	}
	return s.rows[y]
}

// Top returns the highest occupied row, or WellHeight when empty.
func (s *Stack) Top() int {
	for y, n := range s.rows {
		if n > 0 {
			return y
		}
	}
	return WellHeight
}

// Blocks returns the settled blocks ordered by row, then column.
func (s *Stack) Blocks() []Block {
	blocks := make([]Block, 0, s.cells.Len())
	s.cells.ForEach(func(_ int, b Block) bool {
		blocks = append(blocks, b)
		return true
	})

	slices.SortFunc(blocks, func(a, b Block) int {
		return cellKey(a.Position) - cellKey(b.Position)
	})
	return blocks
}

// ClearFullRows scans rows top to bottom and removes every full one, shifting
// the blocks above it down by one row. It returns the cleared row indices in
// the order they were processed.
func (s *Stack) ClearFullRows() []int {
	var cleared []int
	for y := 0; y < WellHeight; y++ {
		if s.rows[y] >= WellWidth {
			s.clearRow(y)
			cleared = append(cleared, y)
		}
	}
	return cleared
}

func (s *Stack) clearRow(row int) {
	blocks := s.Blocks()

	s.cells.Clear()
	s.rows = [WellHeight]int{}

	for _, b := range blocks {
		switch {
		case b.Y == row:
			continue
		case b.Y < row:
			b = b.Fall()
		}
		s.cells.Put(cellKey(b.Position), b)
		s.rows[b.Y]++
	}
}

// Reset removes every block.
func (s *Stack) Reset() {
	s.cells.Clear()
	s.rows = [WellHeight]int{}
}
