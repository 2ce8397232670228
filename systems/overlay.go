package systems

import (
	cfg "github.com/automoto/countdown/config"
	"github.com/automoto/countdown/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/yohamta/donburi/ecs"
)

// DrawOverlays renders the collected digits shrinking into the screen centre.
func DrawOverlays(e *ecs.ECS, screen *ebiten.Image) {
	session := GetSession(e)
	if session == nil {
		return
	}

	cx := float64(screen.Bounds().Dx()) / 2
	cy := float64(screen.Bounds().Dy()) / 2
	for _, o := range session.Level.Overlays {
		size := o.FontSize(cy)
		if size < 1 {
			continue
		}
		face := fonts.Scalable(size)
		w, h := text.Measure(o.Text, face, 0)

		op := &text.DrawOptions{}
		op.GeoM.Translate(cx-w/2, cy-h/2)
		op.ColorScale.ScaleWithColor(cfg.UI.OverlayColor)
		text.Draw(screen, o.Text, face, op)
	}
}
