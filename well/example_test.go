package well_test

import (
	"fmt"

	"github.com/plus3/welltris/well"
)

func ExampleEngine() {
	engine := well.NewEngine(well.DefaultConfig(), well.WithSeed(42))
	engine.SpawnShape(well.ShapeO, 4)

	interval := engine.State().FallInterval()
	for range 5 {
		engine.Tick(0, interval)
	}

	fmt.Println(engine.State().Active.Positions())
	// Output: [{4 5} {5 5} {4 6} {5 6}]
}

func ExampleFormatPoints() {
	fmt.Println(well.FormatPoints(1234))
	// Output: Points: 1,234
}
