package component

import (
	"image"
	"image/color"
)

// Sprite draws Source from the named sheet. Entities without a sheet are
// drawn as a filled rect in Color.
type Sprite struct {
	Sheet  string
	Source image.Rectangle
	Color  color.NRGBA
	Hidden bool
}

var SpriteComponent = NewComponent[Sprite]()
