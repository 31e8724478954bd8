package well_test

import (
	"testing"

	"github.com/plus3/welltris/well"
	"github.com/stretchr/testify/require"
)

// fillRow settles a block on every column of row y.
func fillRow(t *testing.T, stack *well.Stack, y int) {
	t.Helper()
	for x := 0; x < well.WellWidth; x++ {
		require.True(t, stack.Add(block(x, y)), "cell (%d,%d) already taken", x, y)
	}
}

func block(x, y int) well.Block {
	return well.Block{Position: well.Position{X: x, Y: y}}
}

func positions(blocks []well.Block) []well.Position {
	out := make([]well.Position, len(blocks))
	for i, b := range blocks {
		out[i] = b.Position
	}
	return out
}

func shifted(ps [4]well.Position, dx, dy int) [4]well.Position {
	for i := range ps {
		ps[i] = ps[i].Add(dx, dy)
	}
	return ps
}

// dropTo moves p straight down by rows, failing the test if it cannot.
func dropTo(t *testing.T, p well.Piece, rows int, stack *well.Stack) well.Piece {
	t.Helper()
	moved, ok := well.TryMove(p, 0, rows, stack)
	require.True(t, ok)
	return moved
}

// requireStackInvariants checks that every settled block is inside the well
// and that no two share a cell.
func requireStackInvariants(t *testing.T, stack *well.Stack) {
	t.Helper()
	seen := make(map[well.Position]bool)
	for _, b := range stack.Blocks() {
		require.True(t, well.InWell(b.Position), "block %v outside the well", b.Position)
		require.False(t, seen[b.Position], "two blocks at %v", b.Position)
		seen[b.Position] = true
	}
	require.Equal(t, stack.Len(), len(seen))
}
