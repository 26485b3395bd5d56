package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/scrollshooter/animation"
	"github.com/milk9111/scrollshooter/collision"
	"github.com/milk9111/scrollshooter/ecs"
	"github.com/milk9111/scrollshooter/ecs/component"
	"github.com/milk9111/scrollshooter/prefabs"
)

// body adds the components every collidable entity shares. Transform,
// collider and sprite all derive from (x, y) so they start aligned.
func body(w *ecs.World, e ecs.Entity, kind collision.Kind, x, y int, col prefabs.ColliderSpec) error {
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y}); err != nil {
		return fmt.Errorf("add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.ColliderComponent.Kind(), &component.Collider{
		Kind:    kind,
		W:       col.Width,
		H:       col.Height,
		OffsetX: col.OffsetX,
		OffsetY: col.OffsetY,
	}); err != nil {
		return fmt.Errorf("add collider: %w", err)
	}
	return nil
}

func look(w *ecs.World, e ecs.Entity, spec prefabs.SpriteSpec, layer prefabs.RenderLayerSpec, machine *animation.StateMachine, frame int, fallback color.NRGBA) error {
	sprite := &component.Sprite{
		Sheet: spec.Sheet,
		Color: spec.Color.NRGBA(fallback),
	}
	if spec.Source != nil {
		sprite.Source = spec.Source.Rectangle()
	}
	if machine != nil {
		machine.Start = frame
		sprite.Source = machine.Frame(frame)
		if err := ecs.Add(w, e, component.AnimationComponent.Kind(), &component.Animation{Machine: machine}); err != nil {
			return fmt.Errorf("add animation: %w", err)
		}
	}
	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), sprite); err != nil {
		return fmt.Errorf("add sprite: %w", err)
	}
	if err := ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: layer.Index}); err != nil {
		return fmt.Errorf("add render layer: %w", err)
	}
	return nil
}

// fail destroys a half-built entity and wraps err with the prefab name.
func fail(w *ecs.World, e ecs.Entity, name string, err error) (ecs.Entity, error) {
	ecs.DestroyEntity(w, e)
	return 0, fmt.Errorf("%s: %w", name, err)
}
