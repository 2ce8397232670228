package factory

import (
	"math/rand"

	"github.com/automoto/countdown/archetypes"
	"github.com/automoto/countdown/components"
	"github.com/automoto/countdown/core"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSession loads the start level and spawns the session entity.
func CreateSession(ecs *ecs.ECS, src core.LevelSource, start int, seed int64) (*donburi.Entry, error) {
	session, err := core.NewSession(src, start, rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, err
	}

	entry := archetypes.Session.Spawn(ecs)
	components.Session.SetValue(entry, components.SessionData{Session: session})
	return entry, nil
}
