package systems

import (
	"image/color"

	"github.com/automoto/countdown/assets"
	"github.com/automoto/countdown/components"
	cfg "github.com/automoto/countdown/config"
	"github.com/automoto/countdown/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

var endingDrawOp = &ebiten.DrawImageOptions{}

// UpdateEnding advances the credits fades.
func UpdateEnding(e *ecs.ECS) {
	ending := getEnding(e)
	if ending == nil {
		return
	}

	dt := float32(1 / float64(ebiten.TPS()))
	ending.Elapsed += dt
	ending.Brightness, _ = ending.Brighten.Update(dt)

	for i := range ending.Lines {
		line := &ending.Lines[i]
		if ending.Elapsed < line.Delay {
			continue
		}
		line.Alpha, _ = line.Fade.Update(dt)
	}
}

// DrawEnding renders the brightening title art and the credits lines.
func DrawEnding(e *ecs.ECS, screen *ebiten.Image) {
	ending := getEnding(e)
	if ending == nil {
		return
	}

	endingDrawOp.GeoM.Reset()
	endingDrawOp.ColorScale.Reset()
	endingDrawOp.GeoM.Scale(cfg.Camera.Zoom, cfg.Camera.Zoom)
	b := ending.Brightness
	endingDrawOp.ColorScale.Scale(b, b, b, 1)
	screen.DrawImage(assets.GetImage("title.png"), endingDrawOp)

	width := screen.Bounds().Dx()
	c := cfg.Ending.TextColor
	for _, line := range ending.Lines {
		if line.Alpha <= 0 {
			continue
		}
		face := fonts.Medium.Get()
		if line.Large {
			face = fonts.Large.Get()
		}
		bounds := text.BoundString(face, line.Text)
		x := (width - bounds.Dx()) / 2
		y := line.Y + face.Metrics().Ascent.Ceil()
		text.Draw(screen, line.Text, face, x, y, color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(line.Alpha * 255)})
	}
}

func getEnding(e *ecs.ECS) *components.EndingData {
	entry, ok := components.Ending.First(e.World)
	if !ok {
		return nil
	}
	return components.Ending.Get(entry)
}
