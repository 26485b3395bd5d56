package system

import (
	"log"
	"math/rand"

	"github.com/d5/tengo/v2"
	"github.com/milk9111/scrollshooter/common"
	"github.com/milk9111/scrollshooter/ecs"
	"github.com/milk9111/scrollshooter/ecs/component"
	"github.com/milk9111/scrollshooter/ecs/entity"
)

// AISystem runs each enemy's script once per tick. Scripts are compiled once
// per path and cloned per entity so every enemy has its own globals.
type AISystem struct {
	catalog   *entity.Catalog
	rng       *rand.Rand
	templates map[string]*tengo.Compiled
	runtimes  map[ecs.Entity]*aiScriptRuntime
}

func NewAISystem(cat *entity.Catalog, rng *rand.Rand) *AISystem {
	return &AISystem{
		catalog:   cat,
		rng:       rng,
		templates: map[string]*tengo.Compiled{},
		runtimes:  map[ecs.Entity]*aiScriptRuntime{},
	}
}

// Reset forgets compiled scripts so edited files are picked up.
func (s *AISystem) Reset(cat *entity.Catalog) {
	s.catalog = cat
	s.templates = map[string]*tengo.Compiled{}
	s.runtimes = map[ecs.Entity]*aiScriptRuntime{}
}

func (s *AISystem) Update(w *ecs.World) {
	if !running(w) {
		return
	}
	frame := currentFrame(w)

	playerPos, hasPlayer := s.playerCenter(w)

	entities := w.Query(
		component.AIComponent.Kind(),
		component.MobileComponent.Kind(),
		component.TransformComponent.Kind(),
		component.ColliderComponent.Kind(),
	)
	for _, e := range entities {
		ai, _ := ecs.Get(w, e, component.AIComponent.Kind())
		mob, _ := ecs.Get(w, e, component.MobileComponent.Kind())
		if ai.Frozen {
			continue
		}
		self, _ := worldRect(w, e)

		rt, err := s.runtime(e, ai.Script)
		if err != nil {
			log.Printf("ai: entity=%s load script error: %v", e, err)
			s.freeze(e, ai, mob)
			continue
		}

		ctx := &aiScriptContext{
			Entity: e,
			AI:     ai,
			Mobile: mob,
			Self:   self.Center(),
			Player: self.Center(),
			Frame:  frame,
			Rand:   s.rng,
		}
		if hasPlayer {
			ctx.Player = playerPos
		}
		if err := rt.run(buildAIScriptEngine(ctx)); err != nil {
			log.Printf("ai: entity=%s script update error: %v", e, err)
			s.freeze(e, ai, mob)
			continue
		}

		s.fire(w, e, ai, frame)
	}

	for e := range s.runtimes {
		if !ecs.IsAlive(w, e) {
			delete(s.runtimes, e)
		}
	}
}

func (s *AISystem) fire(w *ecs.World, e ecs.Entity, ai *component.AI, frame int) {
	wants := ai.WantsFire
	ai.WantsFire = false

	shooter, ok := ecs.Get(w, e, component.ShooterComponent.Kind())
	if !ok {
		return
	}
	if shooter.Timer > 0 {
		shooter.Timer--
	}
	if !wants || !shooter.Ready() {
		return
	}
	if _, err := entity.NewProjectile(w, s.catalog, shooter.Projectile, e, frame); err != nil {
		log.Printf("ai: entity=%s fire: %v", e, err)
		return
	}
	shooter.Timer = shooter.Cooldown
	w.Events().PushSound("shoot")
}

func (s *AISystem) freeze(e ecs.Entity, ai *component.AI, mob *component.Mobile) {
	ai.Frozen = true
	mob.VX, mob.VY = 0, 0
	delete(s.runtimes, e)
}

func (s *AISystem) runtime(e ecs.Entity, path string) (*aiScriptRuntime, error) {
	if rt, ok := s.runtimes[e]; ok && rt.scriptPath == path {
		return rt, nil
	}
	tmpl, ok := s.templates[path]
	if !ok {
		compiled, err := compileAIScript(path)
		if err != nil {
			return nil, err
		}
		tmpl = compiled
		s.templates[path] = tmpl
	}
	rt := &aiScriptRuntime{
		scriptPath: path,
		compiled:   tmpl.Clone(),
		stateData:  &tengo.Map{Value: map[string]tengo.Object{}},
	}
	s.runtimes[e] = rt
	return rt, nil
}

func (s *AISystem) playerCenter(w *ecs.World) (common.Vec2i, bool) {
	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return common.Vec2i{}, false
	}
	r, ok := worldRect(w, player)
	if !ok {
		return common.Vec2i{}, false
	}
	return r.Center(), true
}
