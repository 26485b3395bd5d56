package component

import (
	"github.com/milk9111/scrollshooter/collision"
	"github.com/milk9111/scrollshooter/common"
)

// Collider gives an entity a box in one collision category. The box sits at
// the transform plus the offset.
type Collider struct {
	Kind    collision.Kind
	W       int
	H       int
	OffsetX int
	OffsetY int
}

func (c Collider) Rect(t Transform) common.Rect {
	return common.Rect{X: t.X + c.OffsetX, Y: t.Y + c.OffsetY, W: c.W, H: c.H}
}

var ColliderComponent = NewComponent[Collider]()
