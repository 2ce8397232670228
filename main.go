package main

import (
	"flag"
	"image"

	"github.com/automoto/countdown/config"
	"github.com/automoto/countdown/fonts"
	"github.com/automoto/countdown/scenes"
	"github.com/automoto/countdown/systems"
	"github.com/hajimehoshi/ebiten/v2"
	log "github.com/sirupsen/logrus"
	"golang.org/x/image/font/gofont/goregular"
)

const appName = "catch-the-countdown"

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	fonts.LoadFontWithSize(fonts.Regular, goregular.TTF, 20)
	fonts.LoadFontWithSize(fonts.Medium, goregular.TTF, 30)
	fonts.LoadFontWithSize(fonts.Large, goregular.TTF, 50)

	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewPlatformerScene(g, config.Debug.StartLevel)
	} else {
		g.scene = scenes.NewTitleScene(g)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	flag.BoolVar(&config.Debug.SkipMenu, "skip-menu", false, "Skip the title screen")
	flag.IntVar(&config.Debug.StartLevel, "level", 0, "Level index to start at (with -skip-menu)")
	flag.StringVar(&config.Debug.TuningFile, "tuning", "", "YAML file overriding gameplay tuning")
	verbose := flag.Bool("v", false, "Debug logging")
	flag.Parse()

	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	if config.Debug.TuningFile != "" {
		if err := config.LoadOverridesFile(config.Debug.TuningFile); err != nil {
			log.Fatalf("Could not apply tuning: %v", err)
		}
		log.Infof("Applied tuning from %s", config.Debug.TuningFile)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(appName); err != nil {
		log.Warnf("Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
