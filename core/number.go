package core

import (
	"math"
	"math/rand"

	"github.com/automoto/countdown/config"
	"github.com/automoto/countdown/shared/gamemath"
	"github.com/solarlune/resolv"
)

// SpiderMotion moves a number back and forth between two points.
type SpiderMotion struct {
	Origin, Target gamemath.Vec
	Timer          float64
}

// Position returns the spider position at the current timer.
func (s *SpiderMotion) Position() gamemath.Vec {
	return SpiderPosition(s.Origin, s.Target, s.Timer)
}

// SpiderPosition evaluates the patrol cycle: travel out, hold at the target,
// travel back, then rest at the origin for the remainder of the period.
func SpiderPosition(origin, target gamemath.Vec, timer float64) gamemath.Vec {
	travel := config.Level.SpiderTravel
	t := math.Mod(timer, config.Level.SpiderPeriod)
	if t < 0 {
		t += config.Level.SpiderPeriod
	}

	switch {
	case t < travel:
		return origin.Lerp(target, t/travel)
	case t < 2*travel:
		return target
	case t < 3*travel:
		return target.Lerp(origin, (t-2*travel)/travel)
	}
	return origin
}

// Number is a collectible digit, optionally carried by a spider.
type Number struct {
	Position gamemath.Vec
	Value    uint8
	Timer    float64 // bob phase, unused for spiders
	Spider   *SpiderMotion

	obj *resolv.Object
}

// NewNumber creates a number at position. A non-nil target makes it patrol.
func NewNumber(position gamemath.Vec, value uint8, target *gamemath.Vec, rng *rand.Rand) *Number {
	n := &Number{
		Position: position,
		Value:    value,
		Timer:    float64(rng.Intn(121)) / 180 * math.Pi,
	}
	if target != nil {
		n.Spider = &SpiderMotion{Origin: position, Target: *target}
	}
	return n
}

// Update advances the bob phase or the spider patrol.
func (n *Number) Update(dt float64) {
	if n.Spider == nil {
		n.Timer += dt
		return
	}
	n.Spider.Timer = math.Mod(n.Spider.Timer+dt, config.Level.SpiderPeriod)
	n.Position = n.Spider.Position()
}

// Rect is the pickup box of the number.
func (n *Number) Rect() gamemath.Rect {
	size := config.Level.NumberSize
	return gamemath.Rect{X: n.Position.X, Y: n.Position.Y, W: size, H: size}
}

// Center returns the middle of the pickup box.
func (n *Number) Center() gamemath.Vec {
	return n.Rect().Center()
}

// DrawPosition is where the digit sprite is drawn: bobbing for idle numbers,
// inset into the spider body for patrolling ones.
func (n *Number) DrawPosition() gamemath.Vec {
	if n.Spider != nil {
		return n.Position.Add(gamemath.Vec{X: 4, Y: 4})
	}
	return n.Position.Add(gamemath.Vec{Y: math.Sin(n.Timer*config.Level.BobSpeed) * config.Level.BobAmplitude})
}
