package system

import (
	"github.com/milk9111/scrollshooter/common"
	"github.com/milk9111/scrollshooter/ecs"
	"github.com/milk9111/scrollshooter/ecs/component"
)

// MovementSystem integrates mobile and projectile velocities into whole
// pixel steps, carrying the fractional part. The player is then clamped to
// the view.
type MovementSystem struct{}

func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

func (m *MovementSystem) Update(w *ecs.World) {
	if !running(w) {
		return
	}

	ecs.ForEach2(w, component.MobileComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, mob *component.Mobile, t *component.Transform) {
		var dx, dy int
		dx, mob.RemX = step(mob.VX, mob.RemX)
		dy, mob.RemY = step(mob.VY, mob.RemY)
		t.X += dx
		t.Y += dy
	})

	ecs.ForEach2(w, component.ProjectileComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, p *component.Projectile, t *component.Transform) {
		var dx, dy int
		dx, p.RemX = step(p.VX, p.RemX)
		dy, p.RemY = step(p.VY, p.RemY)
		t.X += dx
		t.Y += dy
	})

	cam, ok := camera(w)
	if !ok {
		return
	}
	view := cam.View()
	ecs.ForEach3(w, component.PlayerTagComponent.Kind(), component.TransformComponent.Kind(), component.ColliderComponent.Kind(), func(e ecs.Entity, _ *component.PlayerTag, t *component.Transform, c *component.Collider) {
		t.X = common.ClampInt(t.X, view.X-c.OffsetX, view.Right()-c.W-c.OffsetX)
		t.Y = common.ClampInt(t.Y, view.Y-c.OffsetY, view.Bottom()-c.H-c.OffsetY)
	})
}

// step adds v to the carried remainder and splits off the whole pixels.
func step(v, rem float64) (int, float64) {
	total := v + rem
	whole := int(total)
	return whole, total - float64(whole)
}
