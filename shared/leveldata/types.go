// Package leveldata provides TMX level parsing for the gameplay core.
// It has no dependencies on ebitengine, donburi, or resolv; pure data only.
package leveldata

import "errors"

// Layer and field names a level file must provide.
const (
	TileLayer    = "Level"
	EntityLayer  = "Entities"
	TargetField  = "TargetNumber"
	NumberField  = "Number"
	TargetXField = "TargetX"
	TargetYField = "TargetY"
)

var (
	ErrMissingLayer  = errors.New("missing layer")
	ErrMissingField  = errors.New("missing field")
	ErrFieldType     = errors.New("field has unexpected type")
	ErrBadNumber     = errors.New("unparseable number value")
	ErrUnknownEntity = errors.New("unknown entity kind")
	ErrNoPlayer      = errors.New("no player spawn")
	ErrTileSize      = errors.New("tiles must be square")
	ErrTileCount     = errors.New("tile layer is smaller than the map")
)

// EntityKind is the closed set of entity kinds a level may place.
type EntityKind int

const (
	EntityPlayer EntityKind = iota
	EntityNumber
	EntitySpider
	EntityDoor
	EntityWeb
)

var entityKinds = map[string]EntityKind{
	"Player": EntityPlayer,
	"Number": EntityNumber,
	"Spider": EntitySpider,
	"Door":   EntityDoor,
	"Web":    EntityWeb,
}

func (k EntityKind) String() string {
	for name, kind := range entityKinds {
		if kind == k {
			return name
		}
	}
	return "Unknown"
}

// Entity is a placed object in pixel coordinates.
type Entity struct {
	Kind       EntityKind
	X, Y, W, H float64

	// Number and Spider only
	Value uint8

	// Spider only: the patrol end point, in pixels
	TargetX, TargetY float64
}

// LevelData is the parsed content of one level file.
type LevelData struct {
	Name         string
	Width        int // tiles
	Height       int // tiles
	TileSize     int // pixels
	Tiles        []int
	TargetNumber int
	Entities     []Entity
}

// PixelWidth returns the level width in pixels.
func (d *LevelData) PixelWidth() float64 {
	return float64(d.Width * d.TileSize)
}

// PixelHeight returns the level height in pixels.
func (d *LevelData) PixelHeight() float64 {
	return float64(d.Height * d.TileSize)
}
