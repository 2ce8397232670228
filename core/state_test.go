package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTogglePause(t *testing.T) {
	s := Playing()
	s = s.TogglePause()
	assert.Equal(t, PhasePaused, s.Phase)
	s = s.TogglePause()
	assert.Equal(t, PhasePlaying, s.Phase)

	tr := BeginTransition(2)
	assert.Equal(t, tr, tr.TogglePause())
}

func TestTransitionFiresSoundAndLoadOnce(t *testing.T) {
	s := BeginTransition(1)
	var sounds, loads int
	var loadTimer float64

	for i := 0; i < 200 && s.Phase == PhaseTransition; i++ {
		var step TransitionStep
		s, step = s.Advance(0.1, 0)
		if step.PlaySound {
			sounds++
			assert.LessOrEqual(t, s.Transition.Timer, 0.5+1e-9)
			assert.Greater(t, s.Transition.Timer, 0.4-1e-9)
		}
		if step.Load {
			loads++
			loadTimer = s.Transition.Timer
			s = s.MarkLoaded()
		}
	}

	assert.Equal(t, 1, sounds)
	assert.Equal(t, 1, loads)
	assert.InDelta(t, 0.0, loadTimer, 0.11)
	assert.Equal(t, PhasePlaying, s.Phase)
}

func TestRestartTransitionIsSilent(t *testing.T) {
	s := BeginTransition(3)
	for s.Phase == PhaseTransition {
		var step TransitionStep
		s, step = s.Advance(0.05, 3)
		assert.False(t, step.PlaySound)
		if step.Load {
			s = s.MarkLoaded()
		}
	}
}

func TestTransitionWaitsForLoad(t *testing.T) {
	s := BeginTransition(1)
	s, _ = s.Advance(1.6, 0)
	assert.Equal(t, PhaseTransition, s.Phase)
	assert.True(t, s.Transition.SoundFired)

	s = s.MarkLoaded()
	assert.Equal(t, PhasePlaying, s.Phase)
}

func TestSoundAndLoadCanShareAFrame(t *testing.T) {
	s := BeginTransition(1)
	s, step := s.Advance(1.1, 0)
	assert.True(t, step.PlaySound)
	assert.True(t, step.Load)
}

func TestAdvanceOutsideTransition(t *testing.T) {
	s, step := Playing().Advance(1, 0)
	assert.Equal(t, Playing(), s)
	assert.Equal(t, TransitionStep{}, step)
}

func TestFadeAlpha(t *testing.T) {
	assert.Equal(t, 0.0, Playing().FadeAlpha())

	s := BeginTransition(1)
	assert.Equal(t, 0.0, s.FadeAlpha())

	s.Transition.Timer = 0.25
	assert.InDelta(t, 0.5, s.FadeAlpha(), 1e-9)
	s.Transition.Timer = 0
	assert.Equal(t, 1.0, s.FadeAlpha())
	s.Transition.Timer = -0.5
	assert.Equal(t, 0.0, s.FadeAlpha())
}
