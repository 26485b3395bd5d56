package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/scrollshooter/collision"
	"github.com/milk9111/scrollshooter/ecs"
	"github.com/milk9111/scrollshooter/ecs/component"
)

// NewProjectile fires the named projectile prefab from shooter. Shots going
// up leave from (x + w/2, y + offset); shots going down leave from the
// shooter's bottom edge.
func NewProjectile(w *ecs.World, cat *Catalog, name string, shooter ecs.Entity, frame int) (ecs.Entity, error) {
	spec, ok := cat.Projectile(name)
	if !ok {
		return 0, fmt.Errorf("projectile: unknown prefab %q", name)
	}
	t, ok := ecs.Get(w, shooter, component.TransformComponent.Kind())
	if !ok {
		return 0, fmt.Errorf("projectile: shooter %s has no transform", shooter)
	}
	col, ok := ecs.Get(w, shooter, component.ColliderComponent.Kind())
	if !ok {
		return 0, fmt.Errorf("projectile: shooter %s has no collider", shooter)
	}
	_, fromPlayer := ecs.Get(w, shooter, component.PlayerTagComponent.Kind())

	r := col.Rect(*t)
	x := r.X + r.W/2
	y := r.Y + spec.OffsetY
	if spec.VY > 0 {
		y = r.Bottom() + spec.OffsetY
	}

	e := ecs.CreateEntity(w)
	if err := body(w, e, collision.KindProjectile, x, y, spec.Collider); err != nil {
		return fail(w, e, spec.Name, err)
	}
	if err := ecs.Add(w, e, component.ProjectileComponent.Kind(), &component.Projectile{
		VY:         spec.VY,
		HP:         spec.Damage,
		FromPlayer: fromPlayer,
	}); err != nil {
		return fail(w, e, spec.Name, err)
	}
	if spec.TTL > 0 {
		if err := ecs.Add(w, e, component.TTLComponent.Kind(), &component.TTL{Frames: spec.TTL}); err != nil {
			return fail(w, e, spec.Name, err)
		}
	}
	if err := look(w, e, spec.Sprite, spec.RenderLayer, nil, frame, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}); err != nil {
		return fail(w, e, spec.Name, err)
	}
	return e, nil
}
