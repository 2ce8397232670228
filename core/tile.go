package core

import "fmt"

// TileKind is the gameplay meaning of one grid cell.
type TileKind int

const (
	TileEmpty TileKind = iota
	TileGround
	TileSpike
)

func (k TileKind) String() string {
	switch k {
	case TileGround:
		return "Ground"
	case TileSpike:
		return "Spike"
	}
	return "Empty"
}

// tileKindForCode maps a raw level code to its kind. Unknown codes are an
// authoring error in the level file and panic.
func tileKindForCode(code int) TileKind {
	switch code {
	case 0:
		return TileEmpty
	case 1:
		return TileGround
	case 2, 3:
		return TileSpike
	}
	panic(fmt.Sprintf("undefined tile code %d", code))
}

// TileGrid is an immutable row-major lattice of tile kinds.
type TileGrid struct {
	Width, Height int
	cells         []TileKind
}

// NewTileGrid builds a grid from raw level codes.
func NewTileGrid(width, height int, codes []int) (*TileGrid, error) {
	if len(codes) != width*height {
		return nil, fmt.Errorf("tile grid %dx%d needs %d codes, got %d", width, height, width*height, len(codes))
	}
	cells := make([]TileKind, len(codes))
	for i, code := range codes {
		cells[i] = tileKindForCode(code)
	}
	return &TileGrid{Width: width, Height: height, cells: cells}, nil
}

// KindAt returns the tile at (x, y) in tile units, or TileEmpty outside the grid.
func (g *TileGrid) KindAt(x, y int) TileKind {
	if x < 0 || y < 0 || x >= g.Width || y >= g.Height {
		return TileEmpty
	}
	return g.cells[x+y*g.Width]
}

// Decoration is a background tile drawn from the tileset, selected by which
// of its four neighbours are also ground.
type Decoration struct {
	X, Y int // tiles
	Mask int // bit 0 up, bit 1 right, bit 2 down, bit 3 left
}

// Decorations derives the background tile list from the ground cells.
func (g *TileGrid) Decorations() []Decoration {
	var out []Decoration
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.KindAt(x, y) != TileGround {
				continue
			}
			mask := 0
			for bit, d := range [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}} {
				if g.isGroundOrEdge(x+d[0], y+d[1]) {
					mask |= 1 << bit
				}
			}
			out = append(out, Decoration{X: x, Y: y, Mask: mask})
		}
	}
	return out
}

// isGroundOrEdge treats cells beyond the grid as ground so edge tiles draw
// as continuous walls.
func (g *TileGrid) isGroundOrEdge(x, y int) bool {
	if x < 0 || y < 0 || x >= g.Width || y >= g.Height {
		return true
	}
	return g.cells[x+y*g.Width] == TileGround
}
