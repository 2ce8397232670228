package leveldata

import (
	"fmt"
	"testing"
	"testing/fstest"

	"github.com/lafriks/go-tiled"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tmxHeader = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="4" height="3" tilewidth="16" tileheight="16" infinite="0" nextlayerid="3" nextobjectid="9">
`

const tmxTileset = ` <tileset firstgid="1" name="tiles" tilewidth="16" tileheight="16" tilecount="3" columns="3">
  <image source="tileset.png" width="48" height="16"/>
 </tileset>
`

const tmxTiles = ` <layer id="1" name="Level" width="4" height="3">
  <data encoding="csv">
0,0,0,0,
0,0,3,0,
1,1,2,1
</data>
 </layer>
`

const tmxEntities = ` <objectgroup id="2" name="Entities">
  <object id="1" type="Player" x="2" y="4" width="12" height="12"/>
  <object id="2" type="Number" x="16" y="0" width="16" height="16">
   <properties>
    <property name="Number" value="Number_2"/>
   </properties>
  </object>
  <object id="3" type="Spider" x="32" y="0" width="16" height="16">
   <properties>
    <property name="Number" value="Number1"/>
    <property name="TargetX" type="int" value="3"/>
    <property name="TargetY" type="int" value="1"/>
   </properties>
  </object>
  <object id="4" type="Door" x="48" y="0" width="16" height="32"/>
  <object id="5" type="Web" x="0" y="0" width="16" height="16"/>
 </objectgroup>
`

const tmxTarget = ` <properties>
  <property name="TargetNumber" type="int" value="2"/>
 </properties>
`

func tmx(parts ...string) string {
	s := tmxHeader
	for _, p := range parts {
		s += p
	}
	return s + "</map>\n"
}

func mapFS(files map[string]string) fstest.MapFS {
	fsys := fstest.MapFS{}
	for name, body := range files {
		fsys[name] = &fstest.MapFile{Data: []byte(body)}
	}
	return fsys
}

func TestLoadParsesTilesAndEntities(t *testing.T) {
	fsys := mapFS(map[string]string{
		"levels/level01.tmx": tmx(tmxTarget, tmxTileset, tmxTiles, tmxEntities),
	})

	data, err := Load(fsys, "levels/level01.tmx")
	require.NoError(t, err)

	assert.Equal(t, "level01", data.Name)
	assert.Equal(t, 4, data.Width)
	assert.Equal(t, 3, data.Height)
	assert.Equal(t, 16, data.TileSize)
	assert.Equal(t, 64.0, data.PixelWidth())
	assert.Equal(t, 48.0, data.PixelHeight())
	assert.Equal(t, []int{0, 0, 0, 0, 0, 0, 3, 0, 1, 1, 2, 1}, data.Tiles)
	assert.Equal(t, 2, data.TargetNumber)

	require.Len(t, data.Entities, 5)
	assert.Equal(t, Entity{Kind: EntityPlayer, X: 2, Y: 4, W: 12, H: 12}, data.Entities[0])
	assert.Equal(t, EntityNumber, data.Entities[1].Kind)
	assert.Equal(t, uint8(2), data.Entities[1].Value)

	spider := data.Entities[2]
	assert.Equal(t, EntitySpider, spider.Kind)
	assert.Equal(t, uint8(1), spider.Value)
	assert.Equal(t, 48.0, spider.TargetX)
	assert.Equal(t, 16.0, spider.TargetY)

	assert.Equal(t, EntityDoor, data.Entities[3].Kind)
	assert.Equal(t, 32.0, data.Entities[3].H)
	assert.Equal(t, EntityWeb, data.Entities[4].Kind)
}

func TestLoadContentErrors(t *testing.T) {
	badNumber := ` <objectgroup id="2" name="Entities">
  <object id="1" type="Player" x="0" y="0" width="12" height="12"/>
  <object id="2" type="Number" x="16" y="0" width="16" height="16">
   <properties>
    <property name="Number" value="Numberx"/>
   </properties>
  </object>
 </objectgroup>
`
	noField := ` <objectgroup id="2" name="Entities">
  <object id="1" type="Player" x="0" y="0" width="12" height="12"/>
  <object id="2" type="Number" x="16" y="0" width="16" height="16"/>
 </objectgroup>
`
	wrongType := ` <objectgroup id="2" name="Entities">
  <object id="1" type="Player" x="0" y="0" width="12" height="12"/>
  <object id="2" type="Number" x="16" y="0" width="16" height="16">
   <properties>
    <property name="Number" type="int" value="3"/>
   </properties>
  </object>
 </objectgroup>
`
	unknown := ` <objectgroup id="2" name="Entities">
  <object id="1" type="Player" x="0" y="0" width="12" height="12"/>
  <object id="2" type="Dragon" x="16" y="0" width="16" height="16"/>
 </objectgroup>
`
	noPlayer := ` <objectgroup id="2" name="Entities">
  <object id="4" type="Door" x="48" y="0" width="16" height="32"/>
 </objectgroup>
`
	floatTarget := ` <properties>
  <property name="TargetNumber" type="float" value="2"/>
 </properties>
`

	tests := []struct {
		name string
		tmx  string
		want error
	}{
		{"missing tile layer", tmx(tmxTarget, tmxTileset, tmxEntities), ErrMissingLayer},
		{"missing entity layer", tmx(tmxTarget, tmxTileset, tmxTiles), ErrMissingLayer},
		{"missing target", tmx(tmxTileset, tmxTiles, tmxEntities), ErrMissingField},
		{"mistyped target", tmx(floatTarget, tmxTileset, tmxTiles, tmxEntities), ErrFieldType},
		{"bad number suffix", tmx(tmxTarget, tmxTileset, tmxTiles, badNumber), ErrBadNumber},
		{"missing number field", tmx(tmxTarget, tmxTileset, tmxTiles, noField), ErrMissingField},
		{"mistyped number field", tmx(tmxTarget, tmxTileset, tmxTiles, wrongType), ErrFieldType},
		{"unknown entity", tmx(tmxTarget, tmxTileset, tmxTiles, unknown), ErrUnknownEntity},
		{"no player", tmx(tmxTarget, tmxTileset, tmxTiles, noPlayer), ErrNoPlayer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := mapFS(map[string]string{"level.tmx": tt.tmx})
			_, err := Load(fsys, "level.tmx")
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParseTilesRejectsShortLayer(t *testing.T) {
	levelMap := &tiled.Map{
		Width:  2,
		Height: 2,
		Layers: []*tiled.Layer{{
			Name:  TileLayer,
			Tiles: []*tiled.LayerTile{{ID: 0}, {Nil: true}, {ID: 1}},
		}},
	}

	_, err := parseTiles(levelMap)
	assert.ErrorIs(t, err, ErrTileCount)

	levelMap.Layers[0].Tiles = append(levelMap.Layers[0].Tiles, &tiled.LayerTile{Nil: true})
	codes, err := parseTiles(levelMap)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0, 2, 0}, codes)
}

func TestParseNumber(t *testing.T) {
	for in, want := range map[string]uint8{"Number_1": 1, "Number9": 9, "Number_05": 5} {
		got, err := ParseNumber(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, in := range []string{"", "Number", "Number_", "Num_3", "Number_-1", "Number_300", "Number_0", "Number_12"} {
		_, err := ParseNumber(in)
		assert.ErrorIs(t, err, ErrBadNumber, in)
	}
}

func TestCatalogOrdersLevelsByName(t *testing.T) {
	files := map[string]string{}
	for _, name := range []string{"level02", "level01", "level03"} {
		files[fmt.Sprintf("levels/%s.tmx", name)] = tmx(tmxTarget, tmxTileset, tmxTiles, tmxEntities)
	}
	files["levels/readme.txt"] = "not a level"

	catalog, err := NewCatalog(mapFS(files), "levels")
	require.NoError(t, err)
	assert.Equal(t, 3, catalog.Len())

	data, err := catalog.Level(1)
	require.NoError(t, err)
	assert.Equal(t, "level02", data.Name)

	_, err = catalog.Level(3)
	assert.Error(t, err)
}

func TestNewCatalogRequiresLevels(t *testing.T) {
	_, err := NewCatalog(mapFS(map[string]string{"levels/a.txt": ""}), "levels")
	assert.Error(t, err)
}
