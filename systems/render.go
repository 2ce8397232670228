package systems

import (
	"math"

	"github.com/automoto/countdown/assets"
	"github.com/automoto/countdown/components"
	cfg "github.com/automoto/countdown/config"
	"github.com/automoto/countdown/core"
	"github.com/automoto/countdown/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

const (
	particleSize = 1
	threadWidth  = 2
)

// DrawWorld renders the level, player and particles into the camera view
// and scales the view onto the screen.
func DrawWorld(e *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)

	session := GetSession(e)
	if session == nil {
		return
	}

	zoom := cfg.Camera.Zoom
	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Scale(zoom, zoom)
	screen.DrawImage(assets.GetImage("background.png"), drawOp)

	view := camera.View
	view.Clear()
	origin := camera.Origin

	drawTiles(view, session.Level, origin)
	drawLevelObjects(view, session.Level, origin)
	if session.PlayerVisible() {
		drawPlayer(view, session.Player, origin)
	}
	for _, p := range session.Level.Particles {
		pos := p.Position.Sub(origin)
		vector.FillRect(view, float32(pos.X), float32(pos.Y), particleSize, particleSize, p.Color, false)
	}

	drawOp.GeoM.Reset()
	drawOp.GeoM.Scale(zoom, zoom)
	screen.DrawImage(view, drawOp)
}

// drawAt draws img with its top-left corner at a world position.
func drawAt(view, img *ebiten.Image, world, origin gamemath.Vec) {
	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.GeoM.Translate(math.Floor(world.X-origin.X), math.Floor(world.Y-origin.Y))
	view.DrawImage(img, drawOp)
}

func drawTiles(view *ebiten.Image, level *core.Level, origin gamemath.Vec) {
	size := cfg.Physics.TileSize
	screen := cfg.Camera.ScreenSize

	// Only the tiles of the current screen, plus a border for partial tiles.
	x0, y0 := int(origin.X/size)-1, int(origin.Y/size)-1
	x1, y1 := int((origin.X+screen)/size)+1, int((origin.Y+screen)/size)+1
	visible := func(x, y int) bool {
		return x >= x0 && x <= x1 && y >= y0 && y <= y1
	}

	for _, d := range level.Decorations {
		if !visible(d.X, d.Y) {
			continue
		}
		drawAt(view, assets.GroundTile(d.Mask), gamemath.Vec{X: float64(d.X) * size, Y: float64(d.Y) * size}, origin)
	}

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if level.TileAt(x, y) == core.TileSpike {
				drawAt(view, assets.SpikeTile(), gamemath.Vec{X: float64(x) * size, Y: float64(y) * size}, origin)
			}
		}
	}
}

func drawLevelObjects(view *ebiten.Image, level *core.Level, origin gamemath.Vec) {
	for _, w := range level.Webs {
		drawAt(view, assets.GetImage("web.png"), w, origin)
	}

	if !level.Door.Rect.Empty() {
		drawAt(view, assets.GetImage("door.png"), gamemath.Vec{X: level.Door.Rect.X, Y: level.Door.Rect.Y}, origin)
	}

	for _, n := range level.Numbers {
		if n.Spider != nil {
			// Silk thread from the spider's anchor to its body centre.
			half := gamemath.Vec{X: assets.SpiderSize / 2, Y: assets.SpiderSize / 2}
			from := n.Spider.Origin.Sub(origin).Add(half)
			to := n.Position.Sub(origin).Add(half)
			vector.StrokeLine(view, float32(from.X), float32(from.Y), float32(to.X), float32(to.Y), threadWidth, cfg.White, false)
			drawAt(view, assets.GetImage("spider.png"), n.Position, origin)
		}
		drawAt(view, assets.Digit(n.Value), n.DrawPosition(), origin)
	}
}

func drawPlayer(view *ebiten.Image, player *core.Player, origin gamemath.Vec) {
	frame := player.Frame
	flip := frame < 0
	if flip {
		frame = -frame
	}
	img := assets.PlayerFrame(frame)

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	sx := player.Size.X / assets.PlayerSize
	sy := player.Size.Y / assets.PlayerSize
	if flip {
		drawOp.GeoM.Scale(-sx, sy)
		drawOp.GeoM.Translate(player.Size.X, 0)
	} else {
		drawOp.GeoM.Scale(sx, sy)
	}
	pos := player.Position.Sub(origin)
	drawOp.GeoM.Translate(math.Floor(pos.X), math.Floor(pos.Y))
	view.DrawImage(img, drawOp)
}
