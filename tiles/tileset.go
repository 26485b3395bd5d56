package tiles

import (
	"fmt"
	"image"

	"github.com/milk9111/scrollshooter/common"
)

type Tile struct {
	Solid bool
}

// TileID indexes a Tileset.
type TileID int

// Tileset is the set of tiles cut from one sheet image. Groups name lists of
// ids that streaming code picks from ("ground", "wall").
type Tileset struct {
	Sheet      string
	SheetWidth int
	Tiles      []Tile
	Groups     map[string][]TileID
}

func NewTileset(sheet string, sheetWidth int, tiles []Tile, groups map[string][]TileID) (*Tileset, error) {
	if sheetWidth < common.TileSize {
		return nil, fmt.Errorf("tileset %q: sheet width %d smaller than a tile", sheet, sheetWidth)
	}
	ts := &Tileset{Sheet: sheet, SheetWidth: sheetWidth, Tiles: tiles, Groups: groups}
	for name, ids := range groups {
		for _, id := range ids {
			if !ts.Contains(id) {
				return nil, fmt.Errorf("tileset %q: group %q refers to unknown tile %d", sheet, name, id)
			}
		}
	}
	return ts, nil
}

// Contains reports whether the tileset has a tile for id.
func (ts *Tileset) Contains(id TileID) bool {
	return ts != nil && id >= 0 && int(id) < len(ts.Tiles)
}

func (ts *Tileset) Tile(id TileID) Tile {
	if !ts.Contains(id) {
		return Tile{}
	}
	return ts.Tiles[id]
}

// Rect is the sheet frame for id. Tiles are laid out row-major.
func (ts *Tileset) Rect(id TileID) image.Rectangle {
	perRow := ts.SheetWidth / common.TileSize
	row := int(id) / perRow
	col := int(id) - row*perRow
	x := col * common.TileSize
	y := row * common.TileSize
	return image.Rect(x, y, x+common.TileSize, y+common.TileSize)
}

// Group returns the ids registered under name.
func (ts *Tileset) Group(name string) []TileID {
	if ts == nil {
		return nil
	}
	return ts.Groups[name]
}
