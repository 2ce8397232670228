package core

import (
	"testing"

	"github.com/automoto/countdown/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// step runs frames until done reports true, failing after limit frames.
func step(t *testing.T, s *Session, in Input, limit int, done func() bool) []config.SoundID {
	t.Helper()
	var sounds []config.SoundID
	for i := 0; i < limit; i++ {
		require.NoError(t, s.Update(frameDT, float64(i)*frameDT, in))
		sounds = append(sounds, s.DrainSounds()...)
		if done() {
			return sounds
		}
	}
	t.Fatalf("condition not reached after %d frames", limit)
	return nil
}

func twoRooms() staticSource {
	return staticSource{
		levelFromRows(openRoom, 0, playerAt(100, 84)),
		levelFromRows(openRoom, 0, playerAt(16, 84)),
	}
}

func TestNewSessionMissingLevel(t *testing.T) {
	_, err := NewSession(twoRooms(), 5, newRand())
	assert.ErrorIs(t, err, ErrNoLevels)
}

func TestSessionRightEdgeLoadsNextLevel(t *testing.T) {
	s, err := NewSession(twoRooms(), 0, newRand())
	require.NoError(t, err)

	right := Input{Right: true}
	step(t, s, right, 120, func() bool { return s.State.Phase == PhaseTransition })
	assert.Equal(t, 1, s.State.Transition.Target)
	assert.False(t, s.PlayerVisible())

	sounds := step(t, s, Input{}, 120, func() bool { return s.State.Phase == PhasePlaying })
	assert.Equal(t, 1, s.Level.Index)
	assert.Equal(t, vec(16, 84), s.Player.Position)
	assert.True(t, s.PlayerVisible())
	assert.Equal(t, []config.SoundID{config.SoundNextLevel}, sounds)
}

func TestSessionEndsAfterLastLevel(t *testing.T) {
	src := staticSource{levelFromRows(openRoom, 0, playerAt(100, 84))}
	s, err := NewSession(src, 0, newRand())
	require.NoError(t, err)

	step(t, s, Input{Right: true}, 240, s.Ended)

	// An ended session ignores further frames.
	before := s.Time
	require.NoError(t, s.Update(frameDT, 0, Input{Right: true}))
	assert.Equal(t, before, s.Time)
}

func TestSessionGameOverRestartsLevel(t *testing.T) {
	rows := append([]string(nil), openRoom...)
	rows[5] = ".^......"
	src := staticSource{levelFromRows(rows, 0, playerAt(16, 84))}
	s, err := NewSession(src, 0, newRand())
	require.NoError(t, err)
	first := s.Level

	sounds := step(t, s, Input{}, 1, func() bool { return s.State.Phase == PhaseTransition })
	assert.Equal(t, 0, s.State.Transition.Target)
	assert.Contains(t, sounds, config.SoundGameOver)
	assert.NotEmpty(t, s.Level.Particles)

	sounds = step(t, s, Input{}, 120, func() bool { return s.State.Transition.Loaded })
	assert.NotContains(t, sounds, config.SoundNextLevel)
	assert.Equal(t, 0, s.Level.Index)
	assert.NotSame(t, first, s.Level)
	assert.False(t, s.Ended())
}

func TestSessionPauseFreezesTimeAndLevel(t *testing.T) {
	src := staticSource{levelFromRows(openRoom, 1, playerAt(16, 84), numberAt(64, 32, 1))}
	s, err := NewSession(src, 0, newRand())
	require.NoError(t, err)

	require.NoError(t, s.Update(frameDT, 0, Input{}))
	require.NoError(t, s.Update(frameDT, frameDT, Input{PausePressed: true}))
	assert.Equal(t, PhasePaused, s.State.Phase)
	assert.Equal(t, "00:00:00.02 (paused)", s.HUDText())

	time := s.Time
	timer := s.Level.Numbers[0].Timer
	position := s.Player.Position
	for i := 0; i < 30; i++ {
		require.NoError(t, s.Update(frameDT, 0, Input{Right: true}))
	}
	assert.Equal(t, time, s.Time)
	assert.Equal(t, timer, s.Level.Numbers[0].Timer)
	assert.Equal(t, position, s.Player.Position)

	require.NoError(t, s.Update(frameDT, 0, Input{PausePressed: true}))
	assert.Equal(t, PhasePlaying, s.State.Phase)
	assert.Greater(t, s.Time, time)
	assert.NotContains(t, s.HUDText(), config.UI.PausedSuffix)
}

func TestSessionCollectsNumberSound(t *testing.T) {
	src := staticSource{levelFromRows(openRoom, 1, playerAt(16, 84), numberAt(20, 80, 1))}
	s, err := NewSession(src, 0, newRand())
	require.NoError(t, err)

	require.NoError(t, s.Update(frameDT, 0, Input{}))
	assert.Equal(t, []config.SoundID{config.SoundNumber}, s.DrainSounds())
	assert.Empty(t, s.DrainSounds())
	assert.Equal(t, 0, s.Level.Required)
}

func TestFormatTime(t *testing.T) {
	assert.Equal(t, "00:00:00.00", FormatTime(0))
	assert.Equal(t, "01:02:05.50", FormatTime(3725.5))
	assert.Equal(t, "00:00:59.99", FormatTime(59.99))
}
