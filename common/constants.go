package common

const (
	BaseWidth  = 480
	BaseHeight = 800

	// TileSize is the edge length of a tile in pixels.
	TileSize = 16

	// TPS is the fixed simulation rate.
	TPS = 60
)
