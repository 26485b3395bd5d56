package component

import "github.com/milk9111/scrollshooter/tiles"

type Tilemap struct {
	Map *tiles.Tilemap
}

var TilemapComponent = NewComponent[Tilemap]()
