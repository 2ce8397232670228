package systems

import (
	"image/color"

	cfg "github.com/automoto/countdown/config"
	"github.com/automoto/countdown/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawFade covers the screen during a level transition.
func DrawFade(e *ecs.ECS, screen *ebiten.Image) {
	session := GetSession(e)
	if session == nil {
		return
	}
	alpha := session.FadeAlpha()
	if alpha <= 0 {
		return
	}

	c := cfg.UI.FadeColor
	vector.FillRect(screen,
		0, 0,
		float32(screen.Bounds().Dx()), float32(screen.Bounds().Dy()),
		color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(alpha * 255)}, false)
}

// DrawHUD renders the run timer in the top-left corner.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	session := GetSession(e)
	if session == nil {
		return
	}

	face := fonts.Regular.Get()
	// text.Draw positions the baseline.
	ascent := face.Metrics().Ascent.Ceil()
	text.Draw(screen, session.HUDText(), face, cfg.UI.HUDX, cfg.UI.HUDY+ascent, cfg.UI.HUDColor)
}
