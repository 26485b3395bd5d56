package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/scrollshooter/collision"
	"github.com/milk9111/scrollshooter/ecs"
	"github.com/milk9111/scrollshooter/ecs/component"
)

// NewEnemy builds the index-th enemy prefab of the catalog at (x, y).
func NewEnemy(w *ecs.World, cat *Catalog, index, x, y, frame int) (ecs.Entity, error) {
	if cat == nil || index < 0 || index >= len(cat.Enemies) {
		return 0, fmt.Errorf("enemy: no prefab %d", index)
	}
	spec := cat.Enemies[index]
	e := ecs.CreateEntity(w)

	if err := ecs.Add(w, e, component.EnemyTagComponent.Kind(), &component.EnemyTag{}); err != nil {
		return fail(w, e, spec.Name, err)
	}
	if err := body(w, e, collision.KindMobile, x, y, spec.Collider); err != nil {
		return fail(w, e, spec.Name, err)
	}
	if err := ecs.Add(w, e, component.MobileComponent.Kind(), &component.Mobile{HP: spec.Health}); err != nil {
		return fail(w, e, spec.Name, err)
	}
	if spec.Script != "" {
		if err := ecs.Add(w, e, component.AIComponent.Kind(), &component.AI{Script: spec.Script, MoveSpeed: spec.MoveSpeed}); err != nil {
			return fail(w, e, spec.Name, err)
		}
	}
	if spec.Projectile != "" && spec.FireCooldown > 0 {
		if err := ecs.Add(w, e, component.ShooterComponent.Kind(), &component.Shooter{
			Cooldown:   spec.FireCooldown,
			Timer:      spec.FireCooldown,
			Projectile: spec.Projectile,
		}); err != nil {
			return fail(w, e, spec.Name, err)
		}
	}
	if err := look(w, e, spec.Sprite, spec.RenderLayer, cat.Machine(spec.Name), frame, color.NRGBA{R: 0xff, A: 0xff}); err != nil {
		return fail(w, e, spec.Name, err)
	}
	return e, nil
}
