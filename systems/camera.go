package systems

import (
	"github.com/automoto/countdown/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera snaps the camera to the fixed screen containing the player.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	session := GetSession(e)
	if session == nil {
		return
	}
	camera.Origin = session.Player.CameraOrigin(session.Level)
}
