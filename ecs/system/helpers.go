package system

import (
	"github.com/milk9111/scrollshooter/common"
	"github.com/milk9111/scrollshooter/ecs"
	"github.com/milk9111/scrollshooter/ecs/component"
)

func camera(w *ecs.World) (*component.Camera, bool) {
	e, ok := ecs.First(w, component.CameraComponent.Kind())
	if !ok {
		return nil, false
	}
	return ecs.Get(w, e, component.CameraComponent.Kind())
}

func gameState(w *ecs.World) (*component.GameState, bool) {
	e, ok := ecs.First(w, component.GameStateComponent.Kind())
	if !ok {
		return nil, false
	}
	return ecs.Get(w, e, component.GameStateComponent.Kind())
}

// currentFrame is the tick counter, or zero before the game state exists.
func currentFrame(w *ecs.World) int {
	if state, ok := gameState(w); ok {
		return state.Frame
	}
	return 0
}

func running(w *ecs.World) bool {
	state, ok := gameState(w)
	return ok && !state.GameOver
}

// worldRect is an entity's collider box in world space.
func worldRect(w *ecs.World, e ecs.Entity) (common.Rect, bool) {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return common.Rect{}, false
	}
	c, ok := ecs.Get(w, e, component.ColliderComponent.Kind())
	if !ok {
		return common.Rect{}, false
	}
	return c.Rect(*t), true
}
