package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/scrollshooter/collision"
	"github.com/milk9111/scrollshooter/ecs"
	"github.com/milk9111/scrollshooter/ecs/component"
)

// NewPlayer places the player ship at its prefab position relative to the
// camera's current scroll.
func NewPlayer(w *ecs.World, cat *Catalog, frame int) (ecs.Entity, error) {
	if cat == nil {
		return 0, fmt.Errorf("player: nil catalog")
	}
	spec := cat.Player
	x, y := spec.Transform.X, spec.Transform.Y
	if camEnt, ok := ecs.First(w, component.CameraComponent.Kind()); ok {
		if cam, ok := ecs.Get(w, camEnt, component.CameraComponent.Kind()); ok {
			x += cam.Scroll.X
			y += cam.Scroll.Y
		}
	}
	return NewPlayerAt(w, cat, x, y, frame)
}

func NewPlayerAt(w *ecs.World, cat *Catalog, x, y, frame int) (ecs.Entity, error) {
	spec := cat.Player
	e := ecs.CreateEntity(w)

	if err := ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return fail(w, e, "player", err)
	}
	if err := body(w, e, collision.KindMobile, x, y, spec.Collider); err != nil {
		return fail(w, e, "player", err)
	}
	if err := ecs.Add(w, e, component.MobileComponent.Kind(), &component.Mobile{HP: spec.Health, IsPlayer: true}); err != nil {
		return fail(w, e, "player", err)
	}
	if err := ecs.Add(w, e, component.PlayerComponent.Kind(), &component.Player{MoveSpeed: spec.MoveSpeed}); err != nil {
		return fail(w, e, "player", err)
	}
	if err := ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return fail(w, e, "player", err)
	}
	if err := ecs.Add(w, e, component.ShooterComponent.Kind(), &component.Shooter{Cooldown: spec.FireCooldown, Projectile: spec.Projectile}); err != nil {
		return fail(w, e, "player", err)
	}
	if err := look(w, e, spec.Sprite, spec.RenderLayer, cat.Machine(spec.Name), frame, color.NRGBA{R: 0x29, G: 0xad, B: 0xff, A: 0xff}); err != nil {
		return fail(w, e, "player", err)
	}
	return e, nil
}
