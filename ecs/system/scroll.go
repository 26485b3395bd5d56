package system

import "github.com/milk9111/scrollshooter/ecs"

// ScrollSystem advances the tick counter and moves the camera up by its
// speed.
type ScrollSystem struct{}

func NewScrollSystem() *ScrollSystem {
	return &ScrollSystem{}
}

func (s *ScrollSystem) Update(w *ecs.World) {
	state, ok := gameState(w)
	if !ok || state.GameOver {
		return
	}
	state.Frame++
	if cam, ok := camera(w); ok {
		cam.Scroll.Y -= cam.Speed
	}
}
