package well_test

import (
	"testing"

	"github.com/plus3/welltris/well"
	"github.com/stretchr/testify/assert"
)

func TestTryMoveRejectsWalls(t *testing.T) {
	stack := well.NewStack()

	t.Run("left wall", func(t *testing.T) {
		piece := well.SpawnShape(well.ShapeT, 1)
		moved, ok := well.TryMove(piece, -1, 0, stack)
		assert.False(t, ok)
		assert.Equal(t, piece, moved)
	})

	t.Run("right wall", func(t *testing.T) {
		piece := well.SpawnShape(well.ShapeT, well.WellWidth-2)
		moved, ok := well.TryMove(piece, 1, 0, stack)
		assert.False(t, ok)
		assert.Equal(t, piece, moved)
	})

	t.Run("floor", func(t *testing.T) {
		piece := dropTo(t, well.SpawnShape(well.ShapeO, 4), well.WellHeight-2, stack)
		moved, ok := well.TryMove(piece, 0, 1, stack)
		assert.False(t, ok)
		assert.Equal(t, piece, moved)
	})

	t.Run("free cell", func(t *testing.T) {
		piece := well.SpawnShape(well.ShapeT, 4)
		moved, ok := well.TryMove(piece, 1, 0, stack)
		assert.True(t, ok)
		assert.Equal(t, shifted(piece.Positions(), 1, 0), moved.Positions())
	})
}

func TestTryMoveRejectsStack(t *testing.T) {
	stack := well.NewStack()
	stack.Add(block(3, 0))

	piece := well.SpawnShape(well.ShapeO, 4)
	moved, ok := well.TryMove(piece, -1, 0, stack)

	assert.False(t, ok)
	assert.Equal(t, piece, moved)
}

func TestIsValid(t *testing.T) {
	stack := well.NewStack()
	stack.Add(block(5, 10))

	tests := []struct {
		name  string
		block well.Block
		valid bool
	}{
		{"inside", block(0, 0), true},
		{"above the well", block(4, -3), true},
		{"negative column", block(-1, 5), false},
		{"past last column", block(well.WellWidth, 5), false},
		{"below the floor", block(4, well.WellHeight), false},
		{"on the stack", block(5, 10), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, well.IsValid([]well.Block{tt.block}, stack))
		})
	}
}

func TestTryRotate(t *testing.T) {
	stack := well.NewStack()

	t.Run("turns around the pivot", func(t *testing.T) {
		piece := dropTo(t, well.SpawnShape(well.ShapeT, 4), 5, stack)

		rotated, ok := well.TryRotate(piece, stack)
		assert.True(t, ok)
		assert.Equal(t, [4]well.Position{{4, 5}, {4, 4}, {4, 6}, {3, 5}}, rotated.Positions())
	})

	t.Run("pivot never moves", func(t *testing.T) {
		for kind := well.ShapeKind(0); int(kind) < well.ShapeCount; kind++ {
			piece := dropTo(t, well.SpawnShape(kind, 4), 8, stack)
			pivot := piece.Pivot()
			for range 4 {
				piece, _ = well.TryRotate(piece, stack)
				assert.Equal(t, pivot, piece.Pivot(), "shape %s", kind)
			}
		}
	})

	t.Run("four turns restore the layout", func(t *testing.T) {
		piece := dropTo(t, well.SpawnShape(well.ShapeL, 4), 8, stack)
		turned := piece
		for range 4 {
			var ok bool
			turned, ok = well.TryRotate(turned, stack)
			assert.True(t, ok)
		}
		assert.Equal(t, piece, turned)
	})

	t.Run("non-rotatable shape keeps its layout", func(t *testing.T) {
		piece := dropTo(t, well.SpawnShape(well.ShapeO, 4), 8, stack)
		turned := piece
		for range 10 {
			var ok bool
			turned, ok = well.TryRotate(turned, stack)
			assert.False(t, ok)
		}
		assert.Equal(t, piece, turned)
	})

	t.Run("rejected at the wall", func(t *testing.T) {
		piece := well.SpawnShape(well.ShapeI, 0)
		turned, ok := well.TryRotate(piece, stack)
		assert.False(t, ok)
		assert.Equal(t, piece, turned)
	})

	t.Run("rejected by the stack", func(t *testing.T) {
		blocked := well.NewStack()
		blocked.Add(block(4, 4))

		piece := dropTo(t, well.SpawnShape(well.ShapeT, 4), 5, blocked)
		turned, ok := well.TryRotate(piece, blocked)
		assert.False(t, ok)
		assert.Equal(t, piece, turned)
	})
}

func TestBlocked(t *testing.T) {
	stack := well.NewStack()

	piece := well.SpawnShape(well.ShapeO, 4)
	assert.False(t, well.Blocked(piece, stack))

	assert.True(t, well.Blocked(dropTo(t, piece, well.WellHeight-2, stack), stack))

	stack.Add(block(5, 2))
	assert.True(t, well.Blocked(piece, stack))
}
