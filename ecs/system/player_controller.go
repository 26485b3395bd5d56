package system

import (
	"log"

	"github.com/milk9111/scrollshooter/ecs"
	"github.com/milk9111/scrollshooter/ecs/component"
	"github.com/milk9111/scrollshooter/ecs/entity"
)

// PlayerControllerSystem turns Input into velocity and shots. The player
// keeps pace with the camera, so the scroll speed is folded into VY.
type PlayerControllerSystem struct {
	catalog *entity.Catalog
}

func NewPlayerControllerSystem(cat *entity.Catalog) *PlayerControllerSystem {
	return &PlayerControllerSystem{catalog: cat}
}

func (p *PlayerControllerSystem) SetCatalog(cat *entity.Catalog) {
	p.catalog = cat
}

func (p *PlayerControllerSystem) Update(w *ecs.World) {
	if !running(w) {
		return
	}
	scroll := 0
	if cam, ok := camera(w); ok {
		scroll = cam.Speed
	}
	frame := currentFrame(w)

	entities := w.Query(
		component.PlayerTagComponent.Kind(),
		component.InputComponent.Kind(),
		component.MobileComponent.Kind(),
		component.PlayerComponent.Kind(),
	)
	for _, e := range entities {
		input, _ := ecs.Get(w, e, component.InputComponent.Kind())
		mob, _ := ecs.Get(w, e, component.MobileComponent.Kind())
		player, _ := ecs.Get(w, e, component.PlayerComponent.Kind())

		mob.VX = input.MoveX * player.MoveSpeed
		mob.VY = input.MoveY*player.MoveSpeed - float64(scroll)

		if anim, ok := ecs.Get(w, e, component.AnimationComponent.Kind()); ok && anim.Machine != nil {
			if input.MoveY < 0 {
				anim.Machine.Input("move_up", frame)
			} else {
				anim.Machine.Input("stop_moving", frame)
			}
		}

		shooter, ok := ecs.Get(w, e, component.ShooterComponent.Kind())
		if !ok {
			continue
		}
		if shooter.Timer > 0 {
			shooter.Timer--
		}
		if !input.Fire || !shooter.Ready() {
			continue
		}
		if _, err := entity.NewProjectile(w, p.catalog, shooter.Projectile, e, frame); err != nil {
			log.Printf("player: fire: %v", err)
			continue
		}
		shooter.Timer = shooter.Cooldown
		w.Events().PushSound("shoot")
	}
}
