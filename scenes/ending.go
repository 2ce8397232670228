package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/countdown/config"
	"github.com/automoto/countdown/systems"
	"github.com/automoto/countdown/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// EndingScene displays the credits with the final time
type EndingScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	finalTime    string
	once         sync.Once
}

// NewEndingScene creates a new ending scene
func NewEndingScene(sc SceneChanger, finalTime string) *EndingScene {
	return &EndingScene{sceneChanger: sc, finalTime: finalTime}
}

func (es *EndingScene) Update() {
	es.once.Do(es.configure)
	es.ecs.Update()
}

func (es *EndingScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if es.ecs == nil {
		return
	}
	es.ecs.Draw(screen)
}

func (es *EndingScene) configure() {
	es.ecs = ecs.NewECS(donburi.NewWorld())

	es.ecs.AddSystem(systems.UpdateAudio)
	es.ecs.AddSystem(systems.UpdateEnding)

	es.ecs.AddRenderer(cfg.Default, systems.DrawEnding)

	factory.CreateEnding(es.ecs, es.finalTime)
}
