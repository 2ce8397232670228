package systems

import (
	"github.com/automoto/countdown/components"
	"github.com/automoto/countdown/core"
	"github.com/hajimehoshi/ebiten/v2"
	log "github.com/sirupsen/logrus"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSession steps the game session with this frame's input and queues
// the sounds it triggered. Must run AFTER UpdateInput.
func UpdateSession(e *ecs.ECS) {
	data := getSession(e)
	if data == nil {
		return
	}

	dt := 1 / float64(ebiten.TPS())
	data.Clock += dt
	if err := data.Session.Update(dt, data.Clock, GameInput(getOrCreateInput(e))); err != nil {
		log.Fatalf("Could not load level: %v", err)
	}

	for _, sound := range data.Session.DrainSounds() {
		PlaySFX(e, sound)
	}
}

// GetSession returns the running session, or nil before one is created.
func GetSession(e *ecs.ECS) *core.Session {
	if data := getSession(e); data != nil {
		return data.Session
	}
	return nil
}

func getSession(e *ecs.ECS) *components.SessionData {
	entry, ok := components.Session.First(e.World)
	if !ok {
		return nil
	}
	return components.Session.Get(entry)
}

// SessionFinished reports whether the last level was completed, with the
// final time formatted for display.
func SessionFinished(e *ecs.ECS) (string, bool) {
	session := GetSession(e)
	if session == nil || !session.Ended() {
		return "", false
	}
	return core.FormatTime(session.Time), true
}
