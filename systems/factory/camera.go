package factory

import (
	"github.com/automoto/countdown/archetypes"
	"github.com/automoto/countdown/components"
	"github.com/automoto/countdown/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

func CreateCamera(ecs *ecs.ECS) {
	size := int(config.Camera.ScreenSize)
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{
		View: ebiten.NewImage(size, size),
	})
}
