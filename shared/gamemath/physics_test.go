package gamemath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApproachIsFrameRateIndependent(t *testing.T) {
	one := Approach(0, 100, 0.1, 0.1)
	assert.InDelta(t, 50.0, one, 1e-9)

	v := 0.0
	for i := 0; i < 10; i++ {
		v = Approach(v, 100, 0.1, 0.01)
	}
	assert.InDelta(t, one, v, 1e-9)
}

func TestAxis(t *testing.T) {
	assert.Equal(t, 0.0, Axis(false, false))
	assert.Equal(t, 1.0, Axis(false, true))
	assert.Equal(t, -1.0, Axis(true, false))
	assert.Equal(t, 0.0, Axis(true, true))
}

func TestSign(t *testing.T) {
	assert.Equal(t, 1.0, Sign(3))
	assert.Equal(t, -1.0, Sign(-0.01))
	assert.Equal(t, 0.0, Sign(0))
}

func TestRectOverlapsExcludesTouchingEdges(t *testing.T) {
	a := Rect{0, 0, 16, 16}
	assert.True(t, a.Overlaps(Rect{15, 15, 16, 16}))
	assert.False(t, a.Overlaps(Rect{16, 0, 16, 16}))
	assert.False(t, a.Overlaps(Rect{0, 16, 16, 16}))
	assert.False(t, a.Overlaps(Rect{8, 8, 0, 0}))
}

func TestRectTileSpan(t *testing.T) {
	r := Rect{16.5, 32.5, 11, 15}.Scale(16)
	x0, y0, x1, y1 := r.TileSpan()
	assert.Equal(t, []int{1, 2, 1, 2}, []int{x0, y0, x1, y1})

	assert.Equal(t, Vec{4, 4}, Rect{0, 0, 8, 8}.Center())
	assert.InDelta(t, math.Sqrt2, Vec{1, 1}.Length(), 1e-12)
}
