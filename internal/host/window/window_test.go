package window_test

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/welltris/internal/host/window"
	"github.com/plus3/welltris/well"
	"github.com/stretchr/testify/assert"
)

func TestSize(t *testing.T) {
	w, h := window.Size()
	assert.Equal(t, 375, w)
	assert.Equal(t, 750, h)
}

func TestReadInput(t *testing.T) {
	pressed := map[ebiten.Key]bool{
		ebiten.KeyArrowLeft: true,
		ebiten.KeyArrowUp:   true,
	}

	in := window.ReadInput(func(k ebiten.Key) bool { return pressed[k] })

	assert.Equal(t, well.Press(well.KeyLeft, well.KeyRotate), in)
	assert.False(t, in.Pressed(well.KeyDown))
}

func TestReadInputConfirmAliases(t *testing.T) {
	for _, key := range []ebiten.Key{ebiten.KeyEnter, ebiten.KeySpace} {
		in := window.ReadInput(func(k ebiten.Key) bool { return k == key })
		assert.True(t, in.Pressed(well.KeyConfirm), key.String())
	}
}
