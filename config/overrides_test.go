package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreTuning(t *testing.T) {
	player, physics, level, transition, effects := Player, Physics, Level, Transition, Effects
	t.Cleanup(func() {
		Player, Physics, Level, Transition, Effects = player, physics, level, transition, effects
	})
}

func TestLoadOverridesReplacesOnlyGivenKeys(t *testing.T) {
	restoreTuning(t)

	src := `
player:
  jumpSpeed: 320
  maxJumps: 3
physics:
  gravity: 900
`
	require.NoError(t, LoadOverrides(strings.NewReader(src)))

	assert.Equal(t, 320.0, Player.JumpSpeed)
	assert.Equal(t, 3, Player.MaxJumps)
	assert.Equal(t, 900.0, Physics.Gravity)

	// untouched keys keep their defaults
	assert.Equal(t, 300.0, Player.WallJumpSpeed)
	assert.Equal(t, 16.0, Physics.TileSize)
	assert.Equal(t, 18.0, Level.SpiderPeriod)
}

func TestLoadOverridesEmptyInput(t *testing.T) {
	restoreTuning(t)

	require.NoError(t, LoadOverrides(strings.NewReader("")))
	assert.Equal(t, 1000.0, Physics.Gravity)
}

func TestLoadOverridesRejectsUnknownKeys(t *testing.T) {
	restoreTuning(t)

	err := LoadOverrides(strings.NewReader("player:\n  flySpeed: 12\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode tuning")
}

func TestLoadOverridesFileMissing(t *testing.T) {
	err := LoadOverridesFile("does-not-exist.yaml")
	require.Error(t, err)
}
