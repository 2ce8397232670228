package core

import (
	"math/rand"
	"testing"

	"github.com/automoto/countdown/shared/gamemath"
	"github.com/automoto/countdown/shared/leveldata"
	"github.com/stretchr/testify/require"
)

const frameDT = 1.0 / 60

type staticSource []*leveldata.LevelData

func (s staticSource) Len() int { return len(s) }

func (s staticSource) Level(i int) (*leveldata.LevelData, error) { return s[i], nil }

// levelFromRows builds level data from an ASCII map: '#' ground, '^' spike,
// anything else empty.
func levelFromRows(rows []string, target int, entities ...leveldata.Entity) *leveldata.LevelData {
	data := &leveldata.LevelData{
		Name:         "test",
		Width:        len(rows[0]),
		Height:       len(rows),
		TileSize:     16,
		TargetNumber: target,
		Entities:     entities,
	}
	for _, row := range rows {
		for _, c := range row {
			switch c {
			case '#':
				data.Tiles = append(data.Tiles, 1)
			case '^':
				data.Tiles = append(data.Tiles, 2)
			default:
				data.Tiles = append(data.Tiles, 0)
			}
		}
	}
	return data
}

func playerAt(x, y float64) leveldata.Entity {
	return leveldata.Entity{Kind: leveldata.EntityPlayer, X: x, Y: y, W: 12, H: 12}
}

func numberAt(x, y float64, value uint8) leveldata.Entity {
	return leveldata.Entity{Kind: leveldata.EntityNumber, X: x, Y: y, W: 16, H: 16, Value: value}
}

func newRand() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

func mustLevel(t *testing.T, data *leveldata.LevelData) (*Level, *Player) {
	t.Helper()
	level, player, err := NewLevel(data, 0, newRand())
	require.NoError(t, err)
	return level, player
}

// openRoom is an 8x8 room with a floor on row 6 and an empty bottom row.
var openRoom = []string{
	"........",
	"........",
	"........",
	"........",
	"........",
	"........",
	"########",
	"........",
}

func vec(x, y float64) gamemath.Vec {
	return gamemath.Vec{X: x, Y: y}
}
