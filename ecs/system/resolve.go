package system

import (
	"sort"

	"github.com/milk9111/scrollshooter/collision"
	"github.com/milk9111/scrollshooter/common"
	"github.com/milk9111/scrollshooter/ecs"
	"github.com/milk9111/scrollshooter/ecs/component"
)

// ramDamage is what a surviving ship loses when it rams another.
const ramDamage = 30

// Resolve applies contacts to the world: walls push mobiles out, then hit
// points change per pair class, then the dead and spent are removed. It
// reports whether the player is still alive and how many mobiles died.
func Resolve(w *ecs.World, contacts []collision.Contact) (bool, int) {
	scroll := 0
	if cam, ok := camera(w); ok {
		scroll = cam.Speed
	}
	frame := currentFrame(w)

	restitute(w, contacts, scroll)

	removeTerrain := map[ecs.Entity]bool{}
	for _, c := range contacts {
		a, b := ecs.Entity(c.A.ID), ecs.Entity(c.B.ID)
		switch c.Class {
		case collision.PairMobileTerrain:
			if m, ok := ecs.Get(w, a, component.MobileComponent.Kind()); ok && m.IsPlayer {
				m.HP = 0
			}
		case collision.PairMobileMobile:
			ram(w, a, b)
		case collision.PairProjectileTerrain:
			p, ok := ecs.Get(w, a, component.ProjectileComponent.Kind())
			if !ok || p.Spent {
				continue
			}
			p.Spent = true
			t, ok := ecs.Get(w, b, component.TerrainComponent.Kind())
			if !ok || !t.Destructible {
				continue
			}
			t.HP = common.SatSub(t.HP, p.HP)
			if anim, ok := ecs.Get(w, b, component.AnimationComponent.Kind()); ok && anim.Machine != nil {
				anim.Machine.Input("hit", frame)
			}
			w.Events().PushSound("hit")
		case collision.PairProjectileMobile:
			p, ok := ecs.Get(w, a, component.ProjectileComponent.Kind())
			if !ok || p.Spent {
				continue
			}
			m, ok := ecs.Get(w, b, component.MobileComponent.Kind())
			if !ok || p.FromPlayer == m.IsPlayer {
				continue
			}
			m.HP = common.SatSub(m.HP, p.HP)
			p.Spent = true
			w.Events().PushSound("hit")
		case collision.PairProjectileWall:
			if p, ok := ecs.Get(w, a, component.ProjectileComponent.Kind()); ok {
				p.Spent = true
			}
		case collision.PairTerrainTerrain:
			removeTerrain[newerTerrain(w, a, b)] = true
		}
	}

	playerAlive := false
	if player, ok := ecs.First(w, component.PlayerTagComponent.Kind()); ok {
		if m, ok := ecs.Get(w, player, component.MobileComponent.Kind()); ok {
			playerAlive = m.HP > 0
		}
	}

	ecs.ForEach(w, component.TerrainComponent.Kind(), func(e ecs.Entity, t *component.Terrain) {
		if removeTerrain[e] || (t.Destructible && t.HP == 0) {
			if t.Destructible {
				w.Events().PushSound("explode")
			}
			ecs.DestroyEntity(w, e)
		}
	})

	killed := 0
	ecs.ForEach(w, component.MobileComponent.Kind(), func(e ecs.Entity, m *component.Mobile) {
		if m.HP > 0 || m.IsPlayer {
			return
		}
		ecs.DestroyEntity(w, e)
		killed++
		w.Events().PushSound("explode")
	})

	ecs.ForEach(w, component.ProjectileComponent.Kind(), func(e ecs.Entity, p *component.Projectile) {
		if p.Spent {
			ecs.DestroyEntity(w, e)
		}
	})

	return playerAlive, killed
}

// restitute pushes mobiles out of walls, largest overlap first. Each push is
// recomputed from the current rects since an earlier push may already have
// cleared a later contact.
func restitute(w *ecs.World, contacts []collision.Contact, scroll int) {
	walls := make([]collision.Contact, 0, len(contacts))
	for _, c := range contacts {
		if c.Class == collision.PairMobileWall {
			walls = append(walls, c)
		}
	}
	sort.SliceStable(walls, func(i, j int) bool {
		return walls[i].MTV.LenSq() > walls[j].MTV.LenSq()
	})

	for _, c := range walls {
		m, w2 := ecs.Entity(c.A.ID), ecs.Entity(c.B.ID)
		mr, ok := worldRect(w, m)
		if !ok {
			continue
		}
		wr, ok := worldRect(w, w2)
		if !ok {
			continue
		}
		mtv, ok := collision.Displacement(mr, wr)
		if !ok {
			continue
		}
		t, _ := ecs.Get(w, m, component.TransformComponent.Kind())
		mob, hasMob := ecs.Get(w, m, component.MobileComponent.Kind())

		mc, wc := mr.Center(), wr.Center()
		if mtv.X != 0 {
			if mc.X < wc.X {
				t.X -= mtv.X
			} else {
				t.X += mtv.X
			}
			if hasMob {
				mob.VX, mob.RemX = 0, 0
			}
		}
		if mtv.Y != 0 {
			if mc.Y < wc.Y {
				t.Y -= mtv.Y
			} else {
				t.Y += mtv.Y
			}
			if hasMob {
				mob.VY, mob.RemY = -float64(scroll), 0
			}
		}
	}
}

// ram settles a collision between two ships. Only rams involving the player
// count: the ship with strictly more hp survives and loses ramDamage, and on
// a tie the first ship dies.
func ram(w *ecs.World, a, b ecs.Entity) {
	ma, ok := ecs.Get(w, a, component.MobileComponent.Kind())
	if !ok {
		return
	}
	mb, ok := ecs.Get(w, b, component.MobileComponent.Kind())
	if !ok {
		return
	}
	if !ma.IsPlayer && !mb.IsPlayer {
		return
	}
	if ma.HP > mb.HP {
		mb.HP = 0
		ma.HP = common.SatSub(ma.HP, ramDamage)
		return
	}
	ma.HP = 0
	mb.HP = common.SatSub(mb.HP, ramDamage)
}

// newerTerrain picks which of two overlapping terrain pieces to drop: the
// later one, or the higher entity on a tie.
func newerTerrain(w *ecs.World, a, b ecs.Entity) ecs.Entity {
	ta, okA := ecs.Get(w, a, component.TerrainComponent.Kind())
	tb, okB := ecs.Get(w, b, component.TerrainComponent.Kind())
	if !okA || !okB || ta.CreatedAt == tb.CreatedAt {
		if a > b {
			return a
		}
		return b
	}
	if ta.CreatedAt > tb.CreatedAt {
		return a
	}
	return b
}
