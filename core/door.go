package core

import (
	"math"

	"github.com/automoto/countdown/config"
	"github.com/automoto/countdown/shared/gamemath"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Door blocks the level exit and slides up once the countdown is finished.
// It stays solid for the whole opening animation.
type Door struct {
	Rect    gamemath.Rect
	TargetY float64

	tween *gween.Tween
}

// NewDoor creates a closed door.
func NewDoor(rect gamemath.Rect) *Door {
	return &Door{Rect: rect, TargetY: rect.Y - config.Level.DoorOpenHeight}
}

// Opening reports whether the door has started moving.
func (d *Door) Opening() bool {
	return d.tween != nil
}

// Update moves the door toward its open position while open is true. The
// door never moves down.
func (d *Door) Update(dt float64, open bool) {
	if !open || d.Rect.Y <= d.TargetY {
		return
	}
	if d.tween == nil {
		duration := (d.Rect.Y - d.TargetY) / config.Level.DoorSpeed
		d.tween = gween.New(float32(d.Rect.Y), float32(d.TargetY), float32(duration), ease.Linear)
	}

	y, done := d.tween.Update(float32(dt))
	next := math.Max(float64(y), d.TargetY)
	if done {
		next = d.TargetY
	}
	d.Rect.Y = math.Min(d.Rect.Y, next)
}
