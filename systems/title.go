package systems

import (
	"github.com/automoto/countdown/assets"
	"github.com/automoto/countdown/components"
	cfg "github.com/automoto/countdown/config"
	"github.com/automoto/countdown/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

var titleDrawOp = &ebiten.DrawImageOptions{}

// NewUpdateTitle creates an UpdateTitle system that starts the game once
// play has been requested.
func NewUpdateTitle(sceneChanger SceneChanger, createWorldScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		title := GetOrCreateTitle(e)
		if title.Start {
			title.Start = false
			sceneChanger.ChangeScene(createWorldScene())
		}
	}
}

// RequestStart marks the title screen to switch to the game on the next update.
func RequestStart(e *ecs.ECS) {
	GetOrCreateTitle(e).Start = true
}

// DrawTitle renders the title art and game name. Buttons are drawn by the UI.
func DrawTitle(e *ecs.ECS, screen *ebiten.Image) {
	titleDrawOp.GeoM.Reset()
	titleDrawOp.ColorScale.Reset()
	titleDrawOp.GeoM.Scale(cfg.Camera.Zoom, cfg.Camera.Zoom)
	titleDrawOp.ColorScale.ScaleWithColor(cfg.Title.BackgroundTint)
	screen.DrawImage(assets.GetImage("title.png"), titleDrawOp)

	face := fonts.Large.Get()
	bounds := text.BoundString(face, cfg.Title.TitleText)
	x := (screen.Bounds().Dx() - bounds.Dx()) / 2
	text.Draw(screen, cfg.Title.TitleText, face, x, cfg.Title.TitleY, cfg.White)
}

// GetOrCreateTitle returns the singleton Title component, creating if needed
func GetOrCreateTitle(e *ecs.ECS) *components.TitleData {
	entry, ok := components.Title.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Title))
	}
	return components.Title.Get(entry)
}
