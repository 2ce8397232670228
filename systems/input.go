package systems

import (
	"github.com/automoto/countdown/components"
	cfg "github.com/automoto/countdown/config"
	"github.com/automoto/countdown/core"
	"github.com/hajimehoshi/ebiten/v2"
	log "github.com/sirupsen/logrus"
	"github.com/yohamta/donburi/ecs"
)

// KeyBindings maps each action to the keys that trigger it.
var KeyBindings = map[cfg.ActionID][]ebiten.Key{
	cfg.ActionMoveLeft:  {ebiten.KeyA, ebiten.KeyArrowLeft},
	cfg.ActionMoveRight: {ebiten.KeyD, ebiten.KeyArrowRight},
	cfg.ActionGrip:      {ebiten.KeyS, ebiten.KeyArrowDown},
	cfg.ActionJump:      {ebiten.KeySpace, ebiten.KeyW, ebiten.KeyArrowUp},
	cfg.ActionPause:     {ebiten.KeyP, ebiten.KeyEscape},
}

// UpdateInput polls the keyboard and updates the Input component.
// Must run BEFORE UpdateSession in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	for actionID, keys := range KeyBindings {
		for _, key := range keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
		if GetAction(input, actionID).JustPressed {
			log.Debugf("Action %s pressed", actionID)
		}
	}
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// GameInput converts the action buffers into the gameplay input snapshot.
func GameInput(input *components.InputData) core.Input {
	jump := GetAction(input, cfg.ActionJump)
	grip := GetAction(input, cfg.ActionGrip)
	return core.Input{
		Left:         GetAction(input, cfg.ActionMoveLeft).Pressed,
		Right:        GetAction(input, cfg.ActionMoveRight).Pressed,
		Grip:         grip.Pressed,
		JumpPressed:  jump.JustPressed,
		JumpReleased: jump.JustReleased,
		GripReleased: grip.JustReleased,
		PausePressed: GetAction(input, cfg.ActionPause).JustPressed,
	}
}
