package components

import (
	"github.com/automoto/countdown/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// CameraData is the fixed-screen camera. The world is drawn into View at
// native resolution and scaled onto the window.
type CameraData struct {
	Origin gamemath.Vec // top-left world position of the current screen
	View   *ebiten.Image
}

var Camera = donburi.NewComponentType[CameraData]()
