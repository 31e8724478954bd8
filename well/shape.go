package well

import (
	"fmt"
	"image/color"
	"math/rand/v2"
)

//go:generate go tool stringer -type=ShapeKind -trimprefix=Shape

// ShapeKind indexes the shape catalog.
type ShapeKind int

const (
	ShapeI ShapeKind = iota
	ShapeO
	ShapeT
	ShapeS
	ShapeZ
	ShapeJ
	ShapeL
)

// ShapeCount is the number of templates in the catalog.
const ShapeCount = 7

type shapeTemplate struct {
	// offsets[0] is the pivot.
	offsets   [4]Position
	rotatable bool
	style     color.RGBA
}

// Every dx stays within [-1, 1] so a spawn column in [1, WellWidth-2] keeps
// the whole piece inside the well horizontally.
var catalog = [ShapeCount]shapeTemplate{
	ShapeI: {
		offsets:   [4]Position{{0, 1}, {0, 0}, {0, 2}, {0, 3}},
		rotatable: true,
		style:     color.RGBA{102, 191, 255, 255},
	},
	ShapeO: {
		offsets: [4]Position{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		style:   color.RGBA{255, 203, 0, 255},
	},
	ShapeT: {
		offsets:   [4]Position{{0, 0}, {-1, 0}, {1, 0}, {0, 1}},
		rotatable: true,
		style:     color.RGBA{200, 122, 255, 255},
	},
	ShapeS: {
		offsets:   [4]Position{{0, 0}, {1, 0}, {-1, 1}, {0, 1}},
		rotatable: true,
		style:     color.RGBA{0, 228, 48, 255},
	},
	ShapeZ: {
		offsets:   [4]Position{{0, 0}, {-1, 0}, {0, 1}, {1, 1}},
		rotatable: true,
		style:     color.RGBA{255, 109, 194, 255},
	},
	ShapeJ: {
		offsets:   [4]Position{{0, 1}, {0, 0}, {0, 2}, {-1, 2}},
		rotatable: true,
		style:     color.RGBA{0, 121, 241, 255},
	},
	ShapeL: {
		offsets:   [4]Position{{0, 1}, {0, 0}, {0, 2}, {1, 2}},
		rotatable: true,
		style:     color.RGBA{255, 161, 0, 255},
	},
}

// SpawnShape builds the given template with its pivot column at column. No
// validity check is made against the stack.
func SpawnShape(kind ShapeKind, column int) Piece {
	if kind < 0 || int(kind) >= ShapeCount {
		panic(fmt.Sprintf("shape index %d out of catalog range", int(kind)))
	}

	tmpl := catalog[kind]
	piece := Piece{
		Shape:     kind,
		Rotatable: tmpl.rotatable,
	}
	for i, off := range tmpl.offsets {
		piece.Blocks[i] = Block{
			Position: Position{X: column + off.X, Y: off.Y},
			Style:    tmpl.style,
		}
	}
	return piece
}

// Generator picks shapes and spawn columns from its own random source, so a
// fixed seed replays the same sequence.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a generator seeded with seed.
func NewGenerator(seed uint64) *Generator {
	return NewGeneratorFromSource(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewGeneratorFromSource creates a generator drawing from src.
func NewGeneratorFromSource(src rand.Source) *Generator {
	return &Generator{rng: rand.New(src)}
}

// Generate returns a uniformly chosen shape placed at a uniformly chosen
// column in [1, WellWidth-2], together with that column.
func (g *Generator) Generate() (Piece, int) {
	kind := ShapeKind(g.rng.IntN(ShapeCount))
	column := 1 + g.rng.IntN(WellWidth-2)
	return SpawnShape(kind, column), column
}
