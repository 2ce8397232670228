package core

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpiderPositionCycle(t *testing.T) {
	origin, target := vec(0, 0), vec(0, 60)

	tests := []struct {
		timer float64
		want  float64
	}{
		{0, 0},
		{1.5, 30},
		{3, 60},
		{4.5, 60},
		{6, 60},
		{7.5, 30},
		{9, 0},
		{12, 0},
		{17.9, 0},
	}
	for _, tt := range tests {
		got := SpiderPosition(origin, target, tt.timer)
		assert.InDelta(t, tt.want, got.Y, 1e-9, "timer %v", tt.timer)
		assert.Equal(t, 0.0, got.X)
	}
}

func TestSpiderPositionRepeatsEveryPeriod(t *testing.T) {
	origin, target := vec(10, 20), vec(90, 20)
	for _, timer := range []float64{0, 0.7, 2.2, 4.5, 6.6, 8.9, 13} {
		a := SpiderPosition(origin, target, timer)
		b := SpiderPosition(origin, target, timer+18)
		c := SpiderPosition(origin, target, timer+36)
		assert.InDelta(t, a.X, b.X, 1e-9)
		assert.InDelta(t, a.X, c.X, 1e-9)
	}
}

func TestSpiderNumberFollowsPatrol(t *testing.T) {
	target := vec(32, 0)
	n := NewNumber(vec(0, 0), 3, &target, newRand())

	for i := 0; i < 90; i++ { // 1.5s
		n.Update(frameDT)
	}
	assert.InDelta(t, 16, n.Position.X, 1e-6)

	for i := 0; i < 18*60; i++ {
		n.Update(frameDT)
	}
	assert.InDelta(t, 16, n.Position.X, 1e-6)
	assert.Less(t, n.Spider.Timer, 18.0)
}

func TestIdleNumberBobs(t *testing.T) {
	n := NewNumber(vec(40, 40), 2, nil, newRand())
	assert.GreaterOrEqual(t, n.Timer, 0.0)
	assert.LessOrEqual(t, n.Timer, 2*math.Pi/3)

	start := n.Timer
	n.Update(0.25)
	assert.InDelta(t, start+0.25, n.Timer, 1e-12)
	assert.Equal(t, vec(40, 40), n.Position)

	drawY := n.DrawPosition().Y
	assert.InDelta(t, 40+math.Sin(n.Timer*3)*8, drawY, 1e-12)
}

func TestNumberRectAndCenter(t *testing.T) {
	n := NewNumber(vec(16, 32), 1, nil, newRand())
	assert.Equal(t, 16.0, n.Rect().W)
	assert.Equal(t, vec(24, 40), n.Center())
}
