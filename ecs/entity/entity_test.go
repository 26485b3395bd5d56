package entity

import (
	"math/rand"
	"testing"

	"github.com/milk9111/scrollshooter/collision"
	"github.com/milk9111/scrollshooter/common"
	"github.com/milk9111/scrollshooter/ecs"
	"github.com/milk9111/scrollshooter/ecs/component"
)

func loadCatalog(t *testing.T) *Catalog {
	t.Helper()
	cat, err := LoadCatalog()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	return cat
}

func TestNewWorld(t *testing.T) {
	cat := loadCatalog(t)
	w, err := NewWorld(cat, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatal(err)
	}

	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		t.Fatalf("expected a player")
	}
	tr, _ := ecs.Get(w, player, component.TransformComponent.Kind())
	col, _ := ecs.Get(w, player, component.ColliderComponent.Kind())
	mob, _ := ecs.Get(w, player, component.MobileComponent.Kind())
	if tr.X != 180 || tr.Y != 500 {
		t.Fatalf("unexpected player position %+v", tr)
	}
	if col.Kind != collision.KindMobile || col.W != 36 || col.H != 25 {
		t.Fatalf("unexpected player collider %+v", col)
	}
	if !mob.IsPlayer || mob.HP != 100 {
		t.Fatalf("unexpected player mobile %+v", mob)
	}

	if _, ok := ecs.First(w, component.CameraComponent.Kind()); !ok {
		t.Fatalf("expected a camera")
	}
	if _, ok := ecs.First(w, component.GameStateComponent.Kind()); !ok {
		t.Fatalf("expected game state")
	}
	if n := len(w.Query(component.WallComponent.Kind())); n == 0 {
		t.Fatalf("expected border walls")
	}
}

func TestTilemapChunkBorders(t *testing.T) {
	cat := loadCatalog(t)
	cat.TilesetSpec.OutcropChance = 0

	w := ecs.NewWorld()
	e, err := NewTilemapChunk(w, cat, common.Vec2i{X: 0, Y: -784}, rand.New(rand.NewSource(7)), 3)
	if err != nil {
		t.Fatal(err)
	}
	tm, ok := ecs.Get(w, e, component.TilemapComponent.Kind())
	if !ok || tm.Map.Bounds() != (common.Rect{X: 0, Y: -784, W: 480, H: 800}) {
		t.Fatalf("unexpected chunk bounds")
	}

	var rects []common.Rect
	ecs.ForEach2(w, component.TransformComponent.Kind(), component.ColliderComponent.Kind(), func(_ ecs.Entity, tr *component.Transform, c *component.Collider) {
		if c.Kind != collision.KindWall {
			t.Fatalf("unexpected collider kind %s", c.Kind)
		}
		rects = append(rects, c.Rect(*tr))
	})
	if len(rects) != 4 {
		t.Fatalf("expected 4 full-height border walls, got %v", rects)
	}
	for _, r := range rects {
		if r.H != 800 || r.W != 16 || r.Y != -784 {
			t.Fatalf("unexpected wall rect %v", r)
		}
		if r.X >= 32 && r.X < 448 {
			t.Fatalf("wall %v inside playfield", r)
		}
	}
}

func TestNewProjectileFromPlayer(t *testing.T) {
	cat := loadCatalog(t)
	w := ecs.NewWorld()
	player, err := NewPlayerAt(w, cat, 100, 300, 0)
	if err != nil {
		t.Fatal(err)
	}

	shot, err := NewProjectile(w, cat, cat.Player.Projectile, player, 5)
	if err != nil {
		t.Fatal(err)
	}
	tr, _ := ecs.Get(w, shot, component.TransformComponent.Kind())
	col, _ := ecs.Get(w, shot, component.ColliderComponent.Kind())
	p, _ := ecs.Get(w, shot, component.ProjectileComponent.Kind())
	if tr.X != 118 || tr.Y != 290 {
		t.Fatalf("expected shot at (118, 290), got %+v", tr)
	}
	if col.W != 5 || col.H != 5 || col.Kind != collision.KindProjectile {
		t.Fatalf("unexpected shot collider %+v", col)
	}
	if p.VY != -10 || p.HP != 4 || !p.FromPlayer {
		t.Fatalf("unexpected projectile %+v", p)
	}

	if _, err := NewProjectile(w, cat, "nope.yaml", player, 5); err == nil {
		t.Fatalf("expected error for unknown projectile")
	}
}

func TestNewRockAnimation(t *testing.T) {
	cat := loadCatalog(t)
	w := ecs.NewWorld()
	rock, err := NewRock(w, cat, 40, 50, 12)
	if err != nil {
		t.Fatal(err)
	}
	terr, _ := ecs.Get(w, rock, component.TerrainComponent.Kind())
	if !terr.Destructible || terr.HP != 40 || terr.CreatedAt != 12 {
		t.Fatalf("unexpected rock terrain %+v", terr)
	}
	anim, ok := ecs.Get(w, rock, component.AnimationComponent.Kind())
	if !ok || anim.Machine.Current != "whole" || anim.Machine.Start != 12 {
		t.Fatalf("unexpected rock animation")
	}

	other, err := NewRock(w, cat, 0, 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	otherAnim, _ := ecs.Get(w, other, component.AnimationComponent.Kind())
	otherAnim.Machine.Input("hit", 1)
	if anim.Machine.Current != "whole" {
		t.Fatalf("rocks should not share animation state")
	}
}

func TestNewEnemyBounds(t *testing.T) {
	cat := loadCatalog(t)
	w := ecs.NewWorld()
	if _, err := NewEnemy(w, cat, len(cat.Enemies), 0, 0, 0); err == nil {
		t.Fatalf("expected error for missing enemy prefab")
	}
	e, err := NewEnemy(w, cat, 0, 10, 20, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !ecs.Has(w, e, component.AIComponent.Kind()) || !ecs.Has(w, e, component.EnemyTagComponent.Kind()) {
		t.Fatalf("enemy missing ai or tag")
	}
	if w.Len() != 1 {
		t.Fatalf("expected only the enemy entity, got %d", w.Len())
	}
}
