package core

import (
	"github.com/automoto/countdown/config"
	"github.com/automoto/countdown/shared/gamemath"
)

// Input is the control snapshot for one frame. Held states and edges are
// resolved by the shell.
type Input struct {
	Left, Right, Grip bool

	JumpPressed  bool
	JumpReleased bool
	GripReleased bool
	PausePressed bool
}

// Direction is +1 for right, -1 for left and 0 for neither or both.
func (in Input) Direction() float64 {
	return gamemath.Axis(in.Left, in.Right)
}

// Frame carries timing and input into gameplay updates and collects the
// sounds they trigger.
type Frame struct {
	DT    float64
	Time  float64 // seconds since start, drives the walk cycle
	Input Input

	Sounds []config.SoundID
}

// Play queues a sound for the shell.
func (f *Frame) Play(id config.SoundID) {
	f.Sounds = append(f.Sounds, id)
}
