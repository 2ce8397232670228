package archetypes

import (
	"github.com/automoto/countdown/components"
	cfg "github.com/automoto/countdown/config"
	"github.com/automoto/countdown/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Session = newArchetype(
		tags.Session,
		components.Session,
	)
	Camera = newArchetype(
		tags.Camera,
		components.Camera,
	)
	Ending = newArchetype(
		tags.Ending,
		components.Ending,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
