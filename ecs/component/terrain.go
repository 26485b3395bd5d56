package component

// Terrain is a static obstacle. Indestructible terrain ignores HP.
type Terrain struct {
	CreatedAt    int
	Destructible bool
	HP           int
}

var TerrainComponent = NewComponent[Terrain]()

// Wall marks solid tilemap runs. Mobiles are pushed out of walls.
type Wall struct {
	CreatedAt int
}

var WallComponent = NewComponent[Wall]()
