package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"

	"github.com/automoto/countdown/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

var (
	//go:embed all:levels
	levelFS embed.FS

	//go:embed all:images
	imageFS embed.FS
)

// Sprite sheet cell sizes in pixels.
const (
	TileSize   = 16
	PlayerSize = 12
	SpiderSize = 24
)

// Tile sheet rows. Ground tiles are indexed by their neighbour mask.
const (
	groundRow = 0
	spikeRow  = 1
)

// LoadLevels returns the catalog of embedded levels in play order.
func LoadLevels() (*leveldata.Catalog, error) {
	return leveldata.NewCatalog(levelFS, "levels")
}

type ImageLoader struct {
	cache      map[string]*ebiten.Image
	frameCache map[string]*ebiten.Image
}

func NewImageLoader() *ImageLoader {
	return &ImageLoader{
		cache:      make(map[string]*ebiten.Image),
		frameCache: make(map[string]*ebiten.Image),
	}
}

func (l *ImageLoader) MustLoadImage(path string) *ebiten.Image {
	if img, ok := l.cache[path]; ok {
		return img
	}

	imgBytes, err := imageFS.ReadFile(path)
	if err != nil {
		panic(fmt.Sprintf("Failed to read image file %s: %v", path, err))
	}

	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(imgBytes))
	if err != nil {
		panic(fmt.Sprintf("Failed to create image from bytes for %s: %v", path, err))
	}

	l.cache[path] = img

	return img
}

// GetFrame returns a cached sub-image of a sheet. Cells are square.
func (l *ImageLoader) GetFrame(sheet string, col, row, size int) *ebiten.Image {
	key := fmt.Sprintf("%s/%d/%d", sheet, col, row)
	if img, ok := l.frameCache[key]; ok {
		return img
	}

	full := l.MustLoadImage("images/" + sheet)
	srcRect := image.Rect(col*size, row*size, (col+1)*size, (row+1)*size)
	frame := full.SubImage(srcRect).(*ebiten.Image)
	l.frameCache[key] = frame

	return frame
}

var (
	imageLoader = NewImageLoader()
)

func GetImage(name string) *ebiten.Image {
	return imageLoader.MustLoadImage("images/" + name)
}

// GroundTile is the ground sprite for a neighbour mask in [0,16).
func GroundTile(mask int) *ebiten.Image {
	return imageLoader.GetFrame("tiles.png", mask, groundRow, TileSize)
}

func SpikeTile() *ebiten.Image {
	return imageLoader.GetFrame("tiles.png", 0, spikeRow, TileSize)
}

// Digit is the sprite for a number value in [0,10).
func Digit(value uint8) *ebiten.Image {
	return imageLoader.GetFrame("numbers.png", int(value)%10, 0, TileSize)
}

// PlayerFrame is the player sprite for a frame index: 0 idle, 1 and 2 walk,
// 3 wall hold.
func PlayerFrame(frame int) *ebiten.Image {
	return imageLoader.GetFrame("player.png", frame, 0, PlayerSize)
}

// PreloadImages decodes every sheet up front to avoid a stall on the first
// frame that draws it.
func PreloadImages() {
	for mask := 0; mask < 16; mask++ {
		_ = GroundTile(mask)
	}
	_ = SpikeTile()
	for v := uint8(0); v < 10; v++ {
		_ = Digit(v)
	}
	for f := 0; f < 4; f++ {
		_ = PlayerFrame(f)
	}
	for _, name := range []string{"spider.png", "web.png", "door.png", "background.png", "title.png"} {
		_ = GetImage(name)
	}
}
