package systems

import (
	cfg "github.com/automoto/countdown/config"
	"github.com/automoto/countdown/core"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawPause dims the world while the game is paused. The HUD timer carries
// the paused label.
func DrawPause(e *ecs.ECS, screen *ebiten.Image) {
	session := GetSession(e)
	if session == nil || session.State.Phase != core.PhasePaused {
		return
	}

	vector.FillRect(
		screen,
		0, 0,
		float32(screen.Bounds().Dx()), float32(screen.Bounds().Dy()),
		cfg.BlackOverlay,
		false,
	)
}
