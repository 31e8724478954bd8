package well_test

import (
	"testing"

	"github.com/plus3/welltris/well"
	"github.com/stretchr/testify/assert"
)

func TestSpawnShape(t *testing.T) {
	for kind := well.ShapeKind(0); int(kind) < well.ShapeCount; kind++ {
		t.Run(kind.String(), func(t *testing.T) {
			piece := well.SpawnShape(kind, 4)

			assert.Equal(t, kind, piece.Shape)
			assert.Equal(t, kind != well.ShapeO, piece.Rotatable)

			seen := make(map[well.Position]bool)
			for _, b := range piece.Blocks {
				assert.False(t, seen[b.Position], "duplicate cell %v", b.Position)
				seen[b.Position] = true
				assert.Equal(t, piece.Blocks[0].Style, b.Style)
			}
			assert.Equal(t, 4, piece.Pivot().X)
		})
	}
}

func TestSpawnShapeOutOfRange(t *testing.T) {
	assert.Panics(t, func() { well.SpawnShape(well.ShapeKind(well.ShapeCount), 4) })
	assert.Panics(t, func() { well.SpawnShape(well.ShapeKind(-1), 4) })
}

func TestGeneratorColumns(t *testing.T) {
	gen := well.NewGenerator(99)
	stack := well.NewStack()

	for range 500 {
		piece, column := gen.Generate()
		assert.GreaterOrEqual(t, column, 1)
		assert.LessOrEqual(t, column, well.WellWidth-2)
		assert.Equal(t, column, piece.Pivot().X)
		assert.True(t, well.IsValid(piece.Blocks[:], stack), "spawned %s at %d outside the well", piece.Shape, column)
	}
}

func TestGeneratorCoversCatalog(t *testing.T) {
	gen := well.NewGenerator(3)
	seen := make(map[well.ShapeKind]bool)
	columns := make(map[int]bool)

	for range 1000 {
		piece, column := gen.Generate()
		seen[piece.Shape] = true
		columns[column] = true
	}

	assert.Len(t, seen, well.ShapeCount)
	assert.Len(t, columns, well.WellWidth-2)
}

func TestGeneratorDeterministic(t *testing.T) {
	a := well.NewGenerator(1234)
	b := well.NewGenerator(1234)

	for i := range 100 {
		pa, ca := a.Generate()
		pb, cb := b.Generate()
		assert.Equal(t, pa, pb, "piece %d", i)
		assert.Equal(t, ca, cb, "column %d", i)
	}
}
