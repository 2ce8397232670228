package core

import (
	"fmt"
	"image/color"
	"math/rand"
	"strconv"

	"github.com/automoto/countdown/config"
	"github.com/automoto/countdown/shared/gamemath"
	"github.com/automoto/countdown/shared/leveldata"
	log "github.com/sirupsen/logrus"
	"github.com/solarlune/resolv"
)

// Resolv tags for the pickup broadphase
const (
	resolvNumber = "number"
	resolvPlayer = "player"
)

// LevelSource yields level content by ordinal.
type LevelSource interface {
	Len() int
	Level(index int) (*leveldata.LevelData, error)
}

// Level is the live state of one level: its tiles, entities and effects.
type Level struct {
	Index       int
	Size        gamemath.Vec // pixels
	Grid        *TileGrid
	Decorations []Decoration
	Numbers     []*Number
	Door        *Door
	Webs        []gamemath.Vec
	Required    int // next digit to collect, the door opens at zero

	Particles []Particle
	Overlays  []Overlay

	space *resolv.Space
	probe *resolv.Object
	rng   *rand.Rand
}

// Load builds the level at index and its player. It returns nil values and a
// nil error when index is past the last level.
func Load(src LevelSource, index int, rng *rand.Rand) (*Level, *Player, error) {
	if index < 0 || index >= src.Len() {
		return nil, nil, nil
	}
	data, err := src.Level(index)
	if err != nil {
		return nil, nil, fmt.Errorf("load level %d: %w", index, err)
	}
	level, player, err := NewLevel(data, index, rng)
	if err != nil {
		return nil, nil, fmt.Errorf("load level %d (%s): %w", index, data.Name, err)
	}
	log.Infof("Loaded level %d (%s): %dx%d tiles, %d numbers, countdown from %d",
		index, data.Name, data.Width, data.Height, len(level.Numbers), level.Required)
	return level, player, nil
}

// NewLevel builds a level from parsed content.
func NewLevel(data *leveldata.LevelData, index int, rng *rand.Rand) (*Level, *Player, error) {
	if float64(data.TileSize) != config.Physics.TileSize {
		return nil, nil, fmt.Errorf("tile size %d, want %v", data.TileSize, config.Physics.TileSize)
	}
	grid, err := NewTileGrid(data.Width, data.Height, data.Tiles)
	if err != nil {
		return nil, nil, err
	}

	width, height := data.PixelWidth(), data.PixelHeight()
	cell := int(config.Physics.TileSize)
	l := &Level{
		Index:       index,
		Size:        gamemath.Vec{X: width, Y: height},
		Grid:        grid,
		Decorations: grid.Decorations(),
		Door:        NewDoor(gamemath.Rect{}),
		Required:    data.TargetNumber,
		space:       resolv.NewSpace(int(width), int(height), cell, cell),
		rng:         rng,
	}

	var player *Player
	for _, e := range data.Entities {
		pos := gamemath.Vec{X: e.X, Y: e.Y}
		switch e.Kind {
		case leveldata.EntityPlayer:
			player = NewPlayer(pos, gamemath.Vec{X: e.W, Y: e.H})
		case leveldata.EntityNumber:
			l.addNumber(NewNumber(pos, e.Value, nil, rng))
		case leveldata.EntitySpider:
			target := gamemath.Vec{X: e.TargetX, Y: e.TargetY}
			l.addNumber(NewNumber(pos, e.Value, &target, rng))
		case leveldata.EntityDoor:
			l.Door = NewDoor(gamemath.Rect{X: e.X, Y: e.Y, W: e.W, H: e.H})
		case leveldata.EntityWeb:
			l.Webs = append(l.Webs, pos)
		}
	}
	if player == nil {
		return nil, nil, leveldata.ErrNoPlayer
	}

	l.probe = resolv.NewObject(player.Position.X, player.Position.Y, player.Size.X, player.Size.Y, resolvPlayer)
	l.space.Add(l.probe)

	log.Debugf("Level %d space: %d numbers, %d webs, door at %.0f,%.0f",
		index, len(l.Numbers), len(l.Webs), l.Door.Rect.X, l.Door.Rect.Y)
	return l, player, nil
}

func (l *Level) addNumber(n *Number) {
	size := config.Level.NumberSize
	n.obj = resolv.NewObject(n.Position.X, n.Position.Y, size, size, resolvNumber)
	n.obj.Data = n
	l.space.Add(n.obj)
	l.Numbers = append(l.Numbers, n)
}

// Update advances the door, numbers, particles and overlays by dt seconds.
func (l *Level) Update(dt float64) {
	l.Door.Update(dt, l.Required == 0)

	for _, n := range l.Numbers {
		n.Update(dt)
		if n.Spider != nil {
			n.obj.X, n.obj.Y = n.Position.X, n.Position.Y
			n.obj.Update()
		}
	}

	alive := l.Particles[:0]
	for i := range l.Particles {
		l.Particles[i].Update(dt)
		if l.Particles[i].Alive() {
			alive = append(alive, l.Particles[i])
		}
	}
	l.Particles = alive

	overlays := l.Overlays[:0]
	for _, o := range l.Overlays {
		o.Time -= dt
		if o.Time >= 0 {
			overlays = append(overlays, o)
		}
	}
	l.Overlays = overlays
}

// TileAt returns the tile at (x, y) in tile units.
func (l *Level) TileAt(x, y int) TileKind {
	return l.Grid.KindAt(x, y)
}

// HeightInTiles returns the grid height.
func (l *Level) HeightInTiles() float64 {
	return l.Size.Y / config.Physics.TileSize
}

// NumberAt returns the collection index of the first number whose box
// overlaps r, or -1. Candidates come from the broadphase but the order is
// always the collection order. The probe is grown by one cell on each side
// since resolv rounds fractional extents down to whole cells.
func (l *Level) NumberAt(r gamemath.Rect) int {
	pad := config.Physics.TileSize
	l.probe.X, l.probe.Y = r.X-pad, r.Y-pad
	l.probe.W, l.probe.H = r.W+2*pad, r.H+2*pad
	l.probe.Update()

	check := l.probe.Check(0, 0, resolvNumber)
	if check == nil {
		return -1
	}
	candidates := map[*Number]bool{}
	for _, obj := range check.ObjectsByTags(resolvNumber) {
		if n, ok := obj.Data.(*Number); ok {
			candidates[n] = true
		}
	}

	for i, n := range l.Numbers {
		if candidates[n] && n.Rect().Overlaps(r) {
			return i
		}
	}
	return -1
}

// RemoveNumber deletes the number at index i, keeping the order of the rest.
func (l *Level) RemoveNumber(i int) *Number {
	n := l.Numbers[i]
	l.space.Remove(n.obj)
	l.Numbers = append(l.Numbers[:i], l.Numbers[i+1:]...)
	return n
}

// DecrementRequired counts down the next digit to collect.
func (l *Level) DecrementRequired() {
	if l.Required > 0 {
		l.Required--
	}
}

// AddOverlay shows a digit flash.
func (l *Level) AddOverlay(o Overlay) {
	l.Overlays = append(l.Overlays, o)
}

// AddParticles appends particles to the level.
func (l *Level) AddParticles(ps ...Particle) {
	l.Particles = append(l.Particles, ps...)
}

// Explode spawns a particle burst at center.
func (l *Level) Explode(center gamemath.Vec, count, power int, c color.RGBA) {
	l.AddParticles(Burst(l.rng, center, count, power, c)...)
}

// PickUp collects the number at index i: flashes its digit, counts down and
// bursts white particles from it.
func (l *Level) PickUp(i int) *Number {
	n := l.RemoveNumber(i)
	l.AddOverlay(NewOverlay(strconv.Itoa(int(n.Value))))
	l.DecrementRequired()
	l.Explode(n.Center(), config.Effects.PickupCount, config.Effects.PickupPower, config.Effects.PickupColor)
	return n
}
