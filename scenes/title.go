package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/countdown/config"
	"github.com/automoto/countdown/systems"
	"github.com/automoto/countdown/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// TitleScene displays the title art with the play and music buttons
type TitleScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	titleUI      *ui.TitleUI
	once         sync.Once
}

// NewTitleScene creates a new title scene
func NewTitleScene(sc SceneChanger) *TitleScene {
	return &TitleScene{sceneChanger: sc}
}

func (ts *TitleScene) Update() {
	ts.once.Do(ts.configure)
	ts.titleUI.Update()
	ts.ecs.Update()
}

func (ts *TitleScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ts.ecs == nil {
		return
	}
	ts.ecs.Draw(screen)
	ts.titleUI.UI.Draw(screen)
}

func (ts *TitleScene) configure() {
	ts.ecs = ecs.NewECS(donburi.NewWorld())

	createWorldScene := func() interface{} {
		return NewPlatformerScene(ts.sceneChanger, 0)
	}

	// Audio system (runs first to initialize audio context)
	ts.ecs.AddSystem(systems.UpdateAudio)
	ts.ecs.AddSystem(systems.NewUpdateTitle(ts.sceneChanger, createWorldScene))

	ts.ecs.AddRenderer(cfg.Default, systems.DrawTitle)

	ts.titleUI = ui.NewTitleUI(
		systems.MusicEnabled(),
		func() { systems.RequestStart(ts.ecs) },
		func() bool { return systems.ToggleMusic(ts.ecs) },
		func() { systems.PlaySFX(ts.ecs, cfg.SoundButtonHover) },
		func() { systems.PlaySFX(ts.ecs, cfg.SoundButtonClick) },
	)
}
