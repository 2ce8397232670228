package scenes

import (
	"image/color"
	"sync"
	"time"

	"github.com/automoto/countdown/assets"
	cfg "github.com/automoto/countdown/config"
	"github.com/automoto/countdown/systems"
	"github.com/automoto/countdown/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	log "github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// platformerSystems run in order each tick. Audio comes last so sounds
// queued this frame play this frame.
var platformerSystems = []ecs.System{
	systems.UpdateInput,
	systems.UpdateSession,
	systems.UpdateCamera,
	systems.UpdateAudio,
}

// PlatformerScene runs the levels from a start index until the last one is
// cleared, then hands over to the ending.
type PlatformerScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	startLevel   int
	once         sync.Once
}

// NewPlatformerScene creates a new platformer scene starting at a level index
func NewPlatformerScene(sc SceneChanger, startLevel int) *PlatformerScene {
	return &PlatformerScene{sceneChanger: sc, startLevel: startLevel}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()

	if finalTime, done := systems.SessionFinished(ps.ecs); done {
		ps.sceneChanger.ChangeScene(NewEndingScene(ps.sceneChanger, finalTime))
	}
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlatformerScene) configure() {
	// Preload assets to avoid lag on first use
	systems.PreloadAllSFX()
	assets.PreloadImages()

	levels, err := assets.LoadLevels()
	if err != nil {
		log.Fatalf("Could not find levels: %v", err)
	}

	ecs := ecs.NewECS(donburi.NewWorld())

	for _, system := range platformerSystems {
		ecs.AddSystem(system)
	}

	ecs.AddRenderer(cfg.Default, systems.DrawWorld)
	ecs.AddRenderer(cfg.Default, systems.DrawPause)
	ecs.AddRenderer(cfg.Overlay, systems.DrawOverlays)
	ecs.AddRenderer(cfg.Overlay, systems.DrawFade)
	ecs.AddRenderer(cfg.Overlay, systems.DrawHUD)

	ps.ecs = ecs

	if _, err := factory.CreateSession(ps.ecs, levels, ps.startLevel, time.Now().UnixNano()); err != nil {
		log.Fatalf("Could not start session: %v", err)
	}
	factory.CreateCamera(ps.ecs)
	systems.UpdateCamera(ps.ecs)

	log.Infof("Session started at level %d of %d", ps.startLevel, levels.Len())
}
