package components

import (
	"github.com/automoto/countdown/core"
	"github.com/yohamta/donburi"
)

// SessionData holds the running game session (singleton component)
type SessionData struct {
	Session *core.Session
	Clock   float64 // seconds since the scene started, drives walk cycles
}

var Session = donburi.NewComponentType[SessionData]()
