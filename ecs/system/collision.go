package system

import (
	"log"

	"github.com/milk9111/scrollshooter/collision"
	"github.com/milk9111/scrollshooter/ecs"
	"github.com/milk9111/scrollshooter/ecs/component"
)

// CollisionSystem mirrors colliders into the broad phase, gathers contacts
// and resolves them, then records the outcome on the game state.
type CollisionSystem struct {
	broadphase *collision.Broadphase
	bodies     []collision.Body
	contacts   []collision.Contact
	killScore  int
}

func NewCollisionSystem(killScore int) *CollisionSystem {
	return &CollisionSystem{
		broadphase: collision.NewBroadphase(),
		killScore:  killScore,
	}
}

// Contacts is the last gathered contact list, kept for debug drawing.
func (s *CollisionSystem) Contacts() []collision.Contact {
	return s.contacts
}

func (s *CollisionSystem) Update(w *ecs.World) {
	state, ok := gameState(w)
	if !ok || state.GameOver {
		return
	}

	s.bodies = s.bodies[:0]
	ecs.ForEach2(w, component.TransformComponent.Kind(), component.ColliderComponent.Kind(), func(e ecs.Entity, t *component.Transform, c *component.Collider) {
		s.bodies = append(s.bodies, collision.Body{
			Ref:  collision.Ref{Kind: c.Kind, ID: uint64(e)},
			Rect: c.Rect(*t),
		})
	})
	s.broadphase.Sync(s.bodies)

	var err error
	s.contacts, err = s.broadphase.Gather(s.contacts[:0])
	if err != nil {
		log.Printf("collision: gather: %v", err)
	}

	alive, killed := Resolve(w, s.contacts)
	state.Kills += killed
	state.Score += killed * s.killScore
	if state.PlayerAlive && !alive {
		state.PlayerAlive = false
		state.GameOver = true
		w.Events().PushSound("player_dead")
		w.Events().Push(ecs.Event{Type: ecs.EventGameOver, Data: *state})
	}
}
