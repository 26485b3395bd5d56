package main

import (
	"github.com/milk9111/scrollshooter/ecs"
	"github.com/milk9111/scrollshooter/ecs/component"
)

// keyInput turns recent key presses into Input. Each field counts down the
// ticks a direction stays held.
type keyInput struct {
	left, right, up, down, fire int
}

func (k *keyInput) Update(w *ecs.World) {
	moveX, moveY := 0.0, 0.0
	if k.left > 0 {
		moveX--
	}
	if k.right > 0 {
		moveX++
	}
	if k.up > 0 {
		moveY--
	}
	if k.down > 0 {
		moveY++
	}
	fire := k.fire > 0

	ecs.ForEach(w, component.InputComponent.Kind(), func(_ ecs.Entity, in *component.Input) {
		in.MoveX = moveX
		in.MoveY = moveY
		in.Fire = fire
	})

	for _, c := range []*int{&k.left, &k.right, &k.up, &k.down, &k.fire} {
		if *c > 0 {
			*c--
		}
	}
}
