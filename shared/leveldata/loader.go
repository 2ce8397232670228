package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Load parses a TMX file into level data. It takes an fs.FS so callers can
// pass embed.FS (game) or fstest.MapFS (tests).
func Load(fsys fs.FS, tmxPath string) (*LevelData, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.TileWidth != levelMap.TileHeight {
		return nil, fmt.Errorf("%s: %dx%d: %w", tmxPath, levelMap.TileWidth, levelMap.TileHeight, ErrTileSize)
	}

	data := &LevelData{
		Name:     strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:    levelMap.Width,
		Height:   levelMap.Height,
		TileSize: levelMap.TileWidth,
	}

	if data.Tiles, err = parseTiles(levelMap); err != nil {
		return nil, fmt.Errorf("%s: %w", tmxPath, err)
	}

	target, err := intProperty(propertyList(levelMap.Properties), TargetField)
	if err != nil {
		return nil, fmt.Errorf("%s: level: %w", tmxPath, err)
	}
	data.TargetNumber = target

	if data.Entities, err = parseEntities(levelMap); err != nil {
		return nil, fmt.Errorf("%s: %w", tmxPath, err)
	}

	return data, nil
}

// parseTiles flattens the tile layer into row-major codes. An empty cell is
// code 0 and the n-th tile of the tileset is code n+1.
func parseTiles(levelMap *tiled.Map) ([]int, error) {
	for _, layer := range levelMap.Layers {
		if layer.Name != TileLayer {
			continue
		}
		codes := make([]int, levelMap.Width*levelMap.Height)
		if len(layer.Tiles) < len(codes) {
			return nil, fmt.Errorf("%q has %d of %d tiles: %w", TileLayer, len(layer.Tiles), len(codes), ErrTileCount)
		}
		for i := range codes {
			tile := layer.Tiles[i]
			if tile.IsNil() {
				continue
			}
			codes[i] = int(tile.ID) + 1
		}
		return codes, nil
	}
	return nil, fmt.Errorf("%q: %w", TileLayer, ErrMissingLayer)
}

func parseEntities(levelMap *tiled.Map) ([]Entity, error) {
	for _, og := range levelMap.ObjectGroups {
		if og.Name != EntityLayer {
			continue
		}

		entities := make([]Entity, 0, len(og.Objects))
		hasPlayer := false
		for _, o := range og.Objects {
			name := o.Class
			if name == "" {
				name = o.Type //nolint:staticcheck // TMX uses type= attribute
			}
			kind, ok := entityKinds[name]
			if !ok {
				return nil, fmt.Errorf("object %d %q: %w", o.ID, name, ErrUnknownEntity)
			}

			e := Entity{Kind: kind, X: o.X, Y: o.Y, W: o.Width, H: o.Height}
			props := propertyList(o.Properties)

			switch kind {
			case EntityPlayer:
				hasPlayer = true
			case EntityNumber, EntitySpider:
				value, err := stringProperty(props, NumberField)
				if err != nil {
					return nil, fmt.Errorf("%s %d: %w", name, o.ID, err)
				}
				if e.Value, err = ParseNumber(value); err != nil {
					return nil, fmt.Errorf("%s %d: %w", name, o.ID, err)
				}
			}

			if kind == EntitySpider {
				tx, err := intProperty(props, TargetXField)
				if err != nil {
					return nil, fmt.Errorf("%s %d: %w", name, o.ID, err)
				}
				ty, err := intProperty(props, TargetYField)
				if err != nil {
					return nil, fmt.Errorf("%s %d: %w", name, o.ID, err)
				}
				e.TargetX = float64(tx * levelMap.TileWidth)
				e.TargetY = float64(ty * levelMap.TileHeight)
			}

			entities = append(entities, e)
		}

		if !hasPlayer {
			return nil, ErrNoPlayer
		}
		return entities, nil
	}
	return nil, fmt.Errorf("%q: %w", EntityLayer, ErrMissingLayer)
}

// ParseNumber extracts the digit from a number field such as "Number_3" or
// "Number3". Only the digits 1 to 9 are valid.
func ParseNumber(value string) (uint8, error) {
	digits, ok := strings.CutPrefix(value, "Number")
	if !ok {
		return 0, fmt.Errorf("%q: %w", value, ErrBadNumber)
	}
	digits = strings.TrimPrefix(digits, "_")
	n, err := strconv.ParseUint(digits, 10, 8)
	if err != nil || n < 1 || n > 9 {
		return 0, fmt.Errorf("%q: %w", value, ErrBadNumber)
	}
	return uint8(n), nil
}

// propertyList normalises go-tiled properties, which are exposed by value on
// some element types and by pointer on others.
func propertyList(p any) tiled.Properties {
	switch v := p.(type) {
	case tiled.Properties:
		return v
	case *tiled.Properties:
		if v != nil {
			return *v
		}
	}
	return nil
}

func findProperty(props tiled.Properties, name string) (typ, value string, err error) {
	for _, prop := range props {
		if prop.Name == name {
			return prop.Type, prop.Value, nil
		}
	}
	return "", "", fmt.Errorf("%q: %w", name, ErrMissingField)
}

func intProperty(props tiled.Properties, name string) (int, error) {
	typ, value, err := findProperty(props, name)
	if err != nil {
		return 0, err
	}
	if typ != "int" {
		return 0, fmt.Errorf("%q is %q, want int: %w", name, typ, ErrFieldType)
	}
	v, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", name, ErrFieldType)
	}
	return v, nil
}

func stringProperty(props tiled.Properties, name string) (string, error) {
	typ, value, err := findProperty(props, name)
	if err != nil {
		return "", err
	}
	if typ != "" && typ != "string" {
		return "", fmt.Errorf("%q is %q, want string: %w", name, typ, ErrFieldType)
	}
	return value, nil
}

// Catalog lists the level files of a directory in name order.
type Catalog struct {
	fsys  fs.FS
	paths []string
}

// NewCatalog discovers all .tmx files in levelsDir within fsys.
func NewCatalog(fsys fs.FS, levelsDir string) (*Catalog, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}
	sort.Strings(matches)
	return &Catalog{fsys: fsys, paths: matches}, nil
}

// Len returns the number of levels.
func (c *Catalog) Len() int {
	return len(c.paths)
}

// Level parses the level at index.
func (c *Catalog) Level(index int) (*LevelData, error) {
	if index < 0 || index >= len(c.paths) {
		return nil, fmt.Errorf("level index %d out of range [0,%d)", index, len(c.paths))
	}
	return Load(c.fsys, c.paths[index])
}
