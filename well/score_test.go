package well_test

import (
	"testing"

	"github.com/plus3/welltris/well"
	"github.com/stretchr/testify/assert"
)

func TestFormatPoints(t *testing.T) {
	assert.Equal(t, "Points: 0", well.FormatPoints(0))
	assert.Equal(t, "Points: 40", well.FormatPoints(40))
	assert.Equal(t, "Points: 12,340", well.FormatPoints(12340))
}
