package well_test

import (
	"testing"
	"time"

	"github.com/plus3/welltris/well"
	"github.com/stretchr/testify/assert"
)

func TestTimer(t *testing.T) {
	timer := well.NewTimer("fall", 100*time.Millisecond)

	assert.False(t, timer.Advance(40*time.Millisecond))
	assert.Equal(t, 60*time.Millisecond, timer.Remaining())
	assert.False(t, timer.Advance(40*time.Millisecond))
	assert.True(t, timer.Advance(40*time.Millisecond))
	assert.Zero(t, timer.Elapsed, "firing resets to zero")

	t.Run("fires once per advance", func(t *testing.T) {
		timer := well.NewTimer("clear", 20*time.Millisecond)
		assert.True(t, timer.Advance(time.Second))
		assert.False(t, timer.Advance(0))
	})

	t.Run("reset", func(t *testing.T) {
		timer := well.NewTimer("clear", 20*time.Millisecond)
		timer.Advance(15 * time.Millisecond)
		timer.Reset()
		assert.False(t, timer.Advance(15*time.Millisecond))
	})
}
