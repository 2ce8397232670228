package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTileGridKindAt(t *testing.T) {
	g, err := NewTileGrid(3, 2, []int{
		0, 1, 2,
		3, 0, 1,
	})
	require.NoError(t, err)

	assert.Equal(t, TileEmpty, g.KindAt(0, 0))
	assert.Equal(t, TileGround, g.KindAt(1, 0))
	assert.Equal(t, TileSpike, g.KindAt(2, 0))
	assert.Equal(t, TileSpike, g.KindAt(0, 1))
	assert.Equal(t, TileGround, g.KindAt(2, 1))
}

func TestTileGridOutOfBoundsIsEmpty(t *testing.T) {
	g, err := NewTileGrid(2, 2, []int{1, 1, 1, 1})
	require.NoError(t, err)

	for _, c := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}, {-5, -5}, {100, 1}} {
		assert.Equal(t, TileEmpty, g.KindAt(c[0], c[1]), "at %v", c)
	}
}

func TestTileGridRejectsBadInput(t *testing.T) {
	_, err := NewTileGrid(2, 2, []int{0, 0, 0})
	assert.Error(t, err)

	assert.Panics(t, func() {
		_, _ = NewTileGrid(2, 1, []int{0, 4})
	})
}

func TestTileGridDecorations(t *testing.T) {
	g, err := NewTileGrid(3, 2, []int{
		0, 0, 0,
		1, 1, 0,
	})
	require.NoError(t, err)

	decos := g.Decorations()
	require.Len(t, decos, 2)
	// left tile: ground right, edge below and left
	assert.Equal(t, Decoration{X: 0, Y: 1, Mask: 0b1110}, decos[0])
	// right tile: edge below, ground left
	assert.Equal(t, Decoration{X: 1, Y: 1, Mask: 0b1100}, decos[1])
}
