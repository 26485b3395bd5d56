package component

// Transform is an entity's top-left position in world pixels. The camera
// scrolls toward negative Y.
type Transform struct {
	X int
	Y int
}

var TransformComponent = NewComponent[Transform]()
