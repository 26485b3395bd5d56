package component

import "github.com/milk9111/scrollshooter/common"

// Camera is the scrolling view. Scroll is the world position of the view's
// top-left corner.
type Camera struct {
	Scroll common.Vec2i
	Speed  int
	Width  int
	Height int
}

// View is the world rect the camera shows.
func (c Camera) View() common.Rect {
	return common.Rect{X: c.Scroll.X, Y: c.Scroll.Y, W: c.Width, H: c.Height}
}

var CameraComponent = NewComponent[Camera]()
