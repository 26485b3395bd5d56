package system

import (
	"github.com/milk9111/scrollshooter/ecs"
	"github.com/milk9111/scrollshooter/ecs/component"
)

// CleanupSystem drops colliders the camera has left behind: anything fully
// below the view, and projectiles fully above it. The player is clamped to
// the view and never dropped.
type CleanupSystem struct{}

func NewCleanupSystem() *CleanupSystem {
	return &CleanupSystem{}
}

func (c *CleanupSystem) Update(w *ecs.World) {
	cam, ok := camera(w)
	if !ok {
		return
	}
	view := cam.View()

	ecs.ForEach2(w, component.TransformComponent.Kind(), component.ColliderComponent.Kind(), func(e ecs.Entity, t *component.Transform, col *component.Collider) {
		if ecs.Has(w, e, component.PlayerTagComponent.Kind()) {
			return
		}
		r := col.Rect(*t)
		if r.Y >= view.Bottom() {
			ecs.DestroyEntity(w, e)
			return
		}
		if r.Bottom() <= view.Y && ecs.Has(w, e, component.ProjectileComponent.Kind()) {
			ecs.DestroyEntity(w, e)
		}
	})
}
