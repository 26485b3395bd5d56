package system

import (
	"image"
	"math/rand"
	"testing"

	"github.com/milk9111/scrollshooter/animation"
	"github.com/milk9111/scrollshooter/collision"
	"github.com/milk9111/scrollshooter/common"
	"github.com/milk9111/scrollshooter/ecs"
	"github.com/milk9111/scrollshooter/ecs/component"
	"github.com/milk9111/scrollshooter/ecs/entity"
)

func newTestWorld(t *testing.T) *ecs.World {
	t.Helper()
	w := ecs.NewWorld()
	cam := ecs.CreateEntity(w)
	if err := ecs.Add(w, cam, component.CameraComponent.Kind(), &component.Camera{
		Speed:  1,
		Width:  common.BaseWidth,
		Height: common.BaseHeight,
	}); err != nil {
		t.Fatal(err)
	}
	state := ecs.CreateEntity(w)
	if err := ecs.Add(w, state, component.GameStateComponent.Kind(), &component.GameState{PlayerAlive: true}); err != nil {
		t.Fatal(err)
	}
	return w
}

func addBody(t *testing.T, w *ecs.World, kind collision.Kind, r common.Rect) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: r.X, Y: r.Y}); err != nil {
		t.Fatal(err)
	}
	if err := ecs.Add(w, e, component.ColliderComponent.Kind(), &component.Collider{Kind: kind, W: r.W, H: r.H}); err != nil {
		t.Fatal(err)
	}
	return e
}

func addMobile(t *testing.T, w *ecs.World, r common.Rect, hp int, player bool) ecs.Entity {
	t.Helper()
	e := addBody(t, w, collision.KindMobile, r)
	if err := ecs.Add(w, e, component.MobileComponent.Kind(), &component.Mobile{HP: hp, IsPlayer: player}); err != nil {
		t.Fatal(err)
	}
	if player {
		if err := ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
			t.Fatal(err)
		}
	}
	return e
}

func addProjectile(t *testing.T, w *ecs.World, r common.Rect, hp int, fromPlayer bool) ecs.Entity {
	t.Helper()
	e := addBody(t, w, collision.KindProjectile, r)
	if err := ecs.Add(w, e, component.ProjectileComponent.Kind(), &component.Projectile{HP: hp, FromPlayer: fromPlayer}); err != nil {
		t.Fatal(err)
	}
	return e
}

func addTerrain(t *testing.T, w *ecs.World, r common.Rect, hp int, destructible bool, createdAt int) ecs.Entity {
	t.Helper()
	e := addBody(t, w, collision.KindTerrain, r)
	if err := ecs.Add(w, e, component.TerrainComponent.Kind(), &component.Terrain{HP: hp, Destructible: destructible, CreatedAt: createdAt}); err != nil {
		t.Fatal(err)
	}
	return e
}

func gather(t *testing.T, w *ecs.World) []collision.Contact {
	t.Helper()
	var bodies []collision.Body
	ecs.ForEach2(w, component.TransformComponent.Kind(), component.ColliderComponent.Kind(), func(e ecs.Entity, tr *component.Transform, c *component.Collider) {
		bodies = append(bodies, collision.Body{Ref: collision.Ref{Kind: c.Kind, ID: uint64(e)}, Rect: c.Rect(*tr)})
	})
	contacts, err := collision.GatherContacts(bodies, nil)
	if err != nil {
		t.Fatal(err)
	}
	return contacts
}

func mobileHP(t *testing.T, w *ecs.World, e ecs.Entity) int {
	t.Helper()
	m, ok := ecs.Get(w, e, component.MobileComponent.Kind())
	if !ok {
		t.Fatalf("entity %s has no mobile", e)
	}
	return m.HP
}

func TestResolveRam(t *testing.T) {
	cases := []struct {
		name       string
		playerHP   int
		enemyHP    int
		wantAlive  bool
		wantKilled int
		wantHP     int
	}{
		{"player_stronger", 100, 30, true, 1, 70},
		{"enemy_stronger", 20, 50, false, 0, 0},
		{"tie_first_dies", 40, 40, false, 0, 0},
		{"ram_drains_player", 30, 10, false, 1, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := newTestWorld(t)
			player := addMobile(t, w, common.Rect{X: 100, Y: 100, W: 36, H: 25}, c.playerHP, true)
			enemy := addMobile(t, w, common.Rect{X: 110, Y: 110, W: 24, H: 20}, c.enemyHP, false)

			alive, killed := Resolve(w, gather(t, w))
			if alive != c.wantAlive || killed != c.wantKilled {
				t.Fatalf("expected alive=%v killed=%d, got alive=%v killed=%d", c.wantAlive, c.wantKilled, alive, killed)
			}
			if got := mobileHP(t, w, player); got != c.wantHP {
				t.Fatalf("expected player hp %d, got %d", c.wantHP, got)
			}
			if c.wantKilled == 1 && ecs.IsAlive(w, enemy) {
				t.Fatalf("enemy should have been removed")
			}
			if !ecs.IsAlive(w, player) {
				t.Fatalf("player is never removed")
			}
		})
	}
}

func TestResolveEnemiesDoNotRam(t *testing.T) {
	w := newTestWorld(t)
	a := addMobile(t, w, common.Rect{X: 0, Y: 0, W: 10, H: 10}, 30, false)
	b := addMobile(t, w, common.Rect{X: 5, Y: 5, W: 10, H: 10}, 30, false)
	_, killed := Resolve(w, gather(t, w))
	if killed != 0 || mobileHP(t, w, a) != 30 || mobileHP(t, w, b) != 30 {
		t.Fatalf("enemy pairs must not damage each other")
	}
}

func TestResolvePlayerHitsTerrain(t *testing.T) {
	w := newTestWorld(t)
	player := addMobile(t, w, common.Rect{X: 0, Y: 0, W: 36, H: 25}, 100, true)
	enemy := addMobile(t, w, common.Rect{X: 200, Y: 0, W: 24, H: 20}, 30, false)
	addTerrain(t, w, common.Rect{X: 10, Y: 10, W: 16, H: 16}, 40, true, 0)
	addTerrain(t, w, common.Rect{X: 210, Y: 10, W: 16, H: 16}, 40, true, 0)

	alive, killed := Resolve(w, gather(t, w))
	if alive || killed != 0 {
		t.Fatalf("expected dead player and no kills, got alive=%v killed=%d", alive, killed)
	}
	if mobileHP(t, w, player) != 0 {
		t.Fatalf("player hp should be zero")
	}
	if mobileHP(t, w, enemy) != 30 {
		t.Fatalf("enemies ignore terrain")
	}
}

func TestResolveProjectiles(t *testing.T) {
	w := newTestWorld(t)
	rock := addTerrain(t, w, common.Rect{X: 0, Y: 0, W: 16, H: 16}, 6, true, 0)
	machine := rockMachine(t)
	if err := ecs.Add(w, rock, component.AnimationComponent.Kind(), &component.Animation{Machine: machine}); err != nil {
		t.Fatal(err)
	}
	block := addTerrain(t, w, common.Rect{X: 100, Y: 0, W: 32, H: 32}, 1, false, 0)
	enemy := addMobile(t, w, common.Rect{X: 200, Y: 0, W: 24, H: 20}, 30, false)
	other := addMobile(t, w, common.Rect{X: 300, Y: 0, W: 24, H: 20}, 30, false)

	shotRock := addProjectile(t, w, common.Rect{X: 5, Y: 5, W: 5, H: 5}, 4, true)
	shotBlock := addProjectile(t, w, common.Rect{X: 105, Y: 5, W: 5, H: 5}, 4, true)
	shotEnemy := addProjectile(t, w, common.Rect{X: 205, Y: 5, W: 5, H: 5}, 4, true)
	friendly := addProjectile(t, w, common.Rect{X: 305, Y: 5, W: 5, H: 5}, 4, false)

	_, killed := Resolve(w, gather(t, w))
	if killed != 0 {
		t.Fatalf("unexpected kills %d", killed)
	}
	terr, _ := ecs.Get(w, rock, component.TerrainComponent.Kind())
	if terr.HP != 2 {
		t.Fatalf("expected rock hp 2, got %d", terr.HP)
	}
	if machine.Current != "chipped" || machine.Start != 0 {
		t.Fatalf("rock should receive the hit input, at %s", machine.Current)
	}
	blk, _ := ecs.Get(w, block, component.TerrainComponent.Kind())
	if blk.HP != 1 {
		t.Fatalf("indestructible terrain should keep its hp")
	}
	if mobileHP(t, w, enemy) != 26 {
		t.Fatalf("expected enemy hp 26, got %d", mobileHP(t, w, enemy))
	}
	if mobileHP(t, w, other) != 30 {
		t.Fatalf("enemy shots must not hurt enemies")
	}
	for _, e := range []ecs.Entity{shotRock, shotBlock, shotEnemy} {
		if ecs.IsAlive(w, e) {
			t.Fatalf("spent projectile %s not removed", e)
		}
	}
	if !ecs.IsAlive(w, friendly) {
		t.Fatalf("friendly projectile should fly on")
	}

	// second hit destroys the rock and saturates at zero
	addProjectile(t, w, common.Rect{X: 5, Y: 5, W: 5, H: 5}, 4, true)
	Resolve(w, gather(t, w))
	if ecs.IsAlive(w, rock) {
		t.Fatalf("rock at zero hp should be removed")
	}
}

func TestResolveProjectileSpentOnce(t *testing.T) {
	w := newTestWorld(t)
	a := addMobile(t, w, common.Rect{X: 0, Y: 0, W: 20, H: 20}, 30, false)
	b := addMobile(t, w, common.Rect{X: 5, Y: 0, W: 20, H: 20}, 30, false)
	addProjectile(t, w, common.Rect{X: 10, Y: 5, W: 5, H: 5}, 4, true)

	Resolve(w, gather(t, w))
	if mobileHP(t, w, a)+mobileHP(t, w, b) != 56 {
		t.Fatalf("one projectile should damage one mobile")
	}
}

func TestResolveTerrainOverlap(t *testing.T) {
	w := newTestWorld(t)
	older := addTerrain(t, w, common.Rect{X: 0, Y: 0, W: 32, H: 32}, 1, false, 5)
	newer := addTerrain(t, w, common.Rect{X: 10, Y: 10, W: 16, H: 16}, 40, true, 9)
	tieA := addTerrain(t, w, common.Rect{X: 100, Y: 0, W: 16, H: 16}, 40, true, 3)
	tieB := addTerrain(t, w, common.Rect{X: 105, Y: 0, W: 16, H: 16}, 40, true, 3)

	Resolve(w, gather(t, w))
	if !ecs.IsAlive(w, older) || ecs.IsAlive(w, newer) {
		t.Fatalf("the newer terrain should be dropped")
	}
	if !ecs.IsAlive(w, tieA) || ecs.IsAlive(w, tieB) {
		t.Fatalf("ties drop the higher entity")
	}
}

func TestRestitution(t *testing.T) {
	w := newTestWorld(t)
	wall := addBody(t, w, collision.KindWall, common.Rect{X: 0, Y: 0, W: 32, H: 800})
	if err := ecs.Add(w, wall, component.WallComponent.Kind(), &component.Wall{}); err != nil {
		t.Fatal(err)
	}
	enemy := addMobile(t, w, common.Rect{X: 28, Y: 100, W: 24, H: 20}, 30, false)
	mob, _ := ecs.Get(w, enemy, component.MobileComponent.Kind())
	mob.VX, mob.VY = -2, 1

	ceiling := addBody(t, w, collision.KindWall, common.Rect{X: 200, Y: 0, W: 100, H: 16})
	below := addMobile(t, w, common.Rect{X: 220, Y: 10, W: 24, H: 20}, 30, false)

	Resolve(w, gather(t, w))

	tr, _ := ecs.Get(w, enemy, component.TransformComponent.Kind())
	if tr.X != 32 || tr.Y != 100 {
		t.Fatalf("expected enemy pushed right to x=32, got %+v", tr)
	}
	if mob.VX != 0 || mob.VY != 1 {
		t.Fatalf("x push should only zero VX, got %v,%v", mob.VX, mob.VY)
	}

	tr2, _ := ecs.Get(w, below, component.TransformComponent.Kind())
	m2, _ := ecs.Get(w, below, component.MobileComponent.Kind())
	if tr2.Y != 16 {
		t.Fatalf("expected mobile pushed down to y=16, got %+v", tr2)
	}
	if m2.VY != -1 {
		t.Fatalf("y push should match scroll speed, got %v", m2.VY)
	}
	if !ecs.IsAlive(w, ceiling) {
		t.Fatalf("walls are never removed by resolution")
	}
}

func rockMachine(t *testing.T) *animation.StateMachine {
	t.Helper()
	clips := map[string]*animation.Clip{}
	for _, name := range []string{"whole", "chipped"} {
		c, err := animation.NewClip([]image.Rectangle{image.Rect(0, 0, 16, 16)}, []int{60}, true)
		if err != nil {
			t.Fatal(err)
		}
		clips[name] = c
	}
	m, err := animation.NewStateMachine(clips, []animation.Transition{{From: "whole", To: "chipped", Input: "hit"}}, "whole")
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func loadCatalog(t *testing.T) *entity.Catalog {
	t.Helper()
	cat, err := entity.LoadCatalog()
	if err != nil {
		t.Fatal(err)
	}
	return cat
}

func TestMovementCarriesRemainder(t *testing.T) {
	w := newTestWorld(t)
	e := addMobile(t, w, common.Rect{X: 100, Y: 100, W: 10, H: 10}, 30, false)
	mob, _ := ecs.Get(w, e, component.MobileComponent.Kind())
	mob.VX, mob.VY = 0.5, -1.25

	sys := NewMovementSystem()
	for i := 0; i < 4; i++ {
		sys.Update(w)
	}
	tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	if tr.X != 102 || tr.Y != 95 {
		t.Fatalf("expected (102, 95), got %+v", tr)
	}
}

func TestMovementClampsPlayer(t *testing.T) {
	w := newTestWorld(t)
	p := addMobile(t, w, common.Rect{X: 2, Y: 790, W: 36, H: 25}, 100, true)
	mob, _ := ecs.Get(w, p, component.MobileComponent.Kind())
	mob.VX, mob.VY = -5, 5

	NewMovementSystem().Update(w)
	tr, _ := ecs.Get(w, p, component.TransformComponent.Kind())
	if tr.X != 0 || tr.Y != common.BaseHeight-25 {
		t.Fatalf("player should be clamped to view, got %+v", tr)
	}
}

func TestScrollAndStream(t *testing.T) {
	cat := loadCatalog(t)
	w, err := entity.NewWorld(cat, rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatal(err)
	}
	scroll := NewScrollSystem()
	stream := NewTilemapStreamSystem(cat, rand.New(rand.NewSource(4)))

	scroll.Update(w)
	stream.Update(w)

	cam, _ := camera(w)
	if cam.Scroll.Y != -1 || currentFrame(w) != 1 {
		t.Fatalf("expected scroll -1 at frame 1, got %s frame %d", cam.Scroll, currentFrame(w))
	}
	maps := w.Query(component.TilemapComponent.Kind())
	if len(maps) != 2 {
		t.Fatalf("expected a second chunk above the view, got %d", len(maps))
	}
	var top int
	for _, e := range maps {
		tm, _ := ecs.Get(w, e, component.TilemapComponent.Kind())
		top = min(top, tm.Map.Position.Y)
	}
	if want := -1 - common.BaseHeight + common.TileSize; top != want {
		t.Fatalf("expected new chunk at y=%d, got %d", want, top)
	}

	// another tick must not stack a third chunk
	scroll.Update(w)
	stream.Update(w)
	if n := len(w.Query(component.TilemapComponent.Kind())); n != 2 {
		t.Fatalf("expected 2 chunks, got %d", n)
	}

	// scroll one full screen: the first chunk leaves the view
	cam.Scroll.Y -= common.BaseHeight + 2
	stream.Update(w)
	for _, e := range w.Query(component.TilemapComponent.Kind()) {
		tm, _ := ecs.Get(w, e, component.TilemapComponent.Kind())
		if tm.Map.Position.Y == 0 {
			t.Fatalf("chunk at origin should have been dropped")
		}
	}
}

func TestSpawnIsSeeded(t *testing.T) {
	cat := loadCatalog(t)
	positions := func() []common.Vec2i {
		w := newTestWorld(t)
		state, _ := gameState(w)
		spawn := NewSpawnSystem(cat, rand.New(rand.NewSource(42)))
		var out []common.Vec2i
		for f := 1; f <= 2*cat.Game.EnemyInterval; f++ {
			state.Frame = f
			spawn.Update(w)
		}
		ecs.ForEach(w, component.TransformComponent.Kind(), func(_ ecs.Entity, tr *component.Transform) {
			out = append(out, common.Vec2i{X: tr.X, Y: tr.Y})
		})
		return out
	}
	a, b := positions(), positions()
	if len(a) == 0 || len(a) != len(b) {
		t.Fatalf("expected matching spawns, got %d and %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("spawn %d differs: %s vs %s", i, a[i], b[i])
		}
		if a[i].Y >= 0 {
			t.Fatalf("spawns must start above the view, got %s", a[i])
		}
		if a[i].X < cat.Game.SpawnMargin {
			t.Fatalf("spawn %s inside the left margin", a[i])
		}
	}
}

func TestAIRunsScript(t *testing.T) {
	cat := loadCatalog(t)
	w := newTestWorld(t)
	if _, err := entity.NewPlayerAt(w, cat, 200, 600, 0); err != nil {
		t.Fatal(err)
	}
	var diver int
	for i, spec := range cat.Enemies {
		if spec.Name == "diver" {
			diver = i
		}
	}
	enemy, err := entity.NewEnemy(w, cat, diver, 200, 400, 0)
	if err != nil {
		t.Fatal(err)
	}
	ai := NewAISystem(cat, rand.New(rand.NewSource(1)))
	ai.Update(w)

	state, _ := ecs.Get(w, enemy, component.AIComponent.Kind())
	if state.Frozen {
		t.Fatalf("script should run cleanly")
	}
	mob, _ := ecs.Get(w, enemy, component.MobileComponent.Kind())
	if mob.VY <= 0 {
		t.Fatalf("diver should head for the player below, got vy=%v", mob.VY)
	}
}

func TestAIFreezesOnBadScript(t *testing.T) {
	cat := loadCatalog(t)
	w := newTestWorld(t)
	enemy, err := entity.NewEnemy(w, cat, 0, 200, 100, 0)
	if err != nil {
		t.Fatal(err)
	}
	ai, _ := ecs.Get(w, enemy, component.AIComponent.Kind())
	ai.Script = "scripts/missing.tengo"
	mob, _ := ecs.Get(w, enemy, component.MobileComponent.Kind())
	mob.VX = 3

	NewAISystem(cat, rand.New(rand.NewSource(1))).Update(w)
	if !ai.Frozen || mob.VX != 0 {
		t.Fatalf("entity should be frozen after a script error")
	}
}

func TestPlayerControllerFires(t *testing.T) {
	cat := loadCatalog(t)
	w := newTestWorld(t)
	player, err := entity.NewPlayerAt(w, cat, 200, 600, 0)
	if err != nil {
		t.Fatal(err)
	}
	input, _ := ecs.Get(w, player, component.InputComponent.Kind())
	input.Fire = true
	input.MoveY = -1

	ctrl := NewPlayerControllerSystem(cat)
	ctrl.Update(w)
	ctrl.Update(w)

	if n := len(w.Query(component.ProjectileComponent.Kind())); n != 1 {
		t.Fatalf("cooldown should allow one shot, got %d", n)
	}
	mob, _ := ecs.Get(w, player, component.MobileComponent.Kind())
	if mob.VY != -cat.Player.MoveSpeed-1 {
		t.Fatalf("vy should include scroll, got %v", mob.VY)
	}
	anim, _ := ecs.Get(w, player, component.AnimationComponent.Kind())
	if anim.Machine.Current != "move_up" {
		t.Fatalf("expected move_up clip, got %s", anim.Machine.Current)
	}
	if w.Events().Len() != 1 {
		t.Fatalf("expected one shoot sound, got %d events", w.Events().Len())
	}
}

func TestCleanup(t *testing.T) {
	w := newTestWorld(t)
	below := addTerrain(t, w, common.Rect{X: 0, Y: common.BaseHeight, W: 16, H: 16}, 40, true, 0)
	onScreen := addTerrain(t, w, common.Rect{X: 0, Y: common.BaseHeight - 1, W: 16, H: 16}, 40, true, 0)
	aboveRock := addTerrain(t, w, common.Rect{X: 0, Y: -40, W: 16, H: 16}, 40, true, 0)
	aboveShot := addProjectile(t, w, common.Rect{X: 0, Y: -5, W: 5, H: 5}, 4, true)

	NewCleanupSystem().Update(w)
	if ecs.IsAlive(w, below) || ecs.IsAlive(w, aboveShot) {
		t.Fatalf("off-screen entities should be dropped")
	}
	if !ecs.IsAlive(w, onScreen) || !ecs.IsAlive(w, aboveRock) {
		t.Fatalf("visible and incoming entities must stay")
	}
}

func TestTTL(t *testing.T) {
	w := newTestWorld(t)
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TTLComponent.Kind(), &component.TTL{Frames: 2}); err != nil {
		t.Fatal(err)
	}
	sys := NewTTLSystem()
	sys.Update(w)
	if !ecs.IsAlive(w, e) {
		t.Fatalf("entity expired early")
	}
	sys.Update(w)
	if ecs.IsAlive(w, e) {
		t.Fatalf("entity should expire")
	}
}

func TestCollisionSystemGameOver(t *testing.T) {
	w := newTestWorld(t)
	addMobile(t, w, common.Rect{X: 100, Y: 100, W: 36, H: 25}, 100, true)
	addTerrain(t, w, common.Rect{X: 110, Y: 110, W: 16, H: 16}, 40, true, 0)

	NewCollisionSystem(100).Update(w)
	state, _ := gameState(w)
	if state.PlayerAlive || !state.GameOver {
		t.Fatalf("expected game over, got %+v", state)
	}
	var over bool
	for _, ev := range w.Events().Drain() {
		if ev.Type == ecs.EventGameOver {
			over = true
		}
	}
	if !over {
		t.Fatalf("expected a game over event")
	}
}

// drainCues counts the queued sound cues by name plus game over events.
func drainCues(w *ecs.World) (map[string]int, int) {
	cues := map[string]int{}
	over := 0
	for _, ev := range w.Events().Drain() {
		switch ev.Type {
		case ecs.EventSound:
			if snd, ok := ev.Data.(ecs.SoundEvent); ok {
				cues[snd.Name]++
			}
		case ecs.EventGameOver:
			over++
		}
	}
	return cues, over
}

func TestResolveSoundCues(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T, w *ecs.World)
		want  map[string]int
	}{
		{
			name: "shot wounds enemy",
			setup: func(t *testing.T, w *ecs.World) {
				addMobile(t, w, common.Rect{X: 100, Y: 100, W: 24, H: 20}, 30, false)
				addProjectile(t, w, common.Rect{X: 105, Y: 105, W: 5, H: 5}, 4, true)
			},
			want: map[string]int{"hit": 1},
		},
		{
			name: "shot kills enemy",
			setup: func(t *testing.T, w *ecs.World) {
				addMobile(t, w, common.Rect{X: 100, Y: 100, W: 24, H: 20}, 4, false)
				addProjectile(t, w, common.Rect{X: 105, Y: 105, W: 5, H: 5}, 4, true)
			},
			want: map[string]int{"hit": 1, "explode": 1},
		},
		{
			name: "shot chips rock",
			setup: func(t *testing.T, w *ecs.World) {
				addTerrain(t, w, common.Rect{X: 100, Y: 100, W: 16, H: 16}, 40, true, 0)
				addProjectile(t, w, common.Rect{X: 105, Y: 105, W: 5, H: 5}, 4, true)
			},
			want: map[string]int{"hit": 1},
		},
		{
			name: "shot breaks rock",
			setup: func(t *testing.T, w *ecs.World) {
				addTerrain(t, w, common.Rect{X: 100, Y: 100, W: 16, H: 16}, 4, true, 0)
				addProjectile(t, w, common.Rect{X: 105, Y: 105, W: 5, H: 5}, 4, true)
			},
			want: map[string]int{"hit": 1, "explode": 1},
		},
		{
			name: "shot absorbed by block",
			setup: func(t *testing.T, w *ecs.World) {
				addTerrain(t, w, common.Rect{X: 100, Y: 100, W: 32, H: 32}, 0, false, 0)
				addProjectile(t, w, common.Rect{X: 105, Y: 105, W: 5, H: 5}, 4, true)
			},
			want: map[string]int{},
		},
		{
			name: "overlapping blocks drop silently",
			setup: func(t *testing.T, w *ecs.World) {
				addTerrain(t, w, common.Rect{X: 100, Y: 100, W: 32, H: 32}, 0, false, 1)
				addTerrain(t, w, common.Rect{X: 110, Y: 110, W: 32, H: 32}, 0, false, 2)
			},
			want: map[string]int{},
		},
		{
			name: "overlapping rocks explode",
			setup: func(t *testing.T, w *ecs.World) {
				addTerrain(t, w, common.Rect{X: 100, Y: 100, W: 16, H: 16}, 40, true, 1)
				addTerrain(t, w, common.Rect{X: 105, Y: 105, W: 16, H: 16}, 40, true, 2)
			},
			want: map[string]int{"explode": 1},
		},
		{
			name: "player rams enemy",
			setup: func(t *testing.T, w *ecs.World) {
				addMobile(t, w, common.Rect{X: 100, Y: 100, W: 36, H: 25}, 100, true)
				addMobile(t, w, common.Rect{X: 110, Y: 110, W: 24, H: 20}, 30, false)
			},
			want: map[string]int{"explode": 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t)
			tt.setup(t, w)
			Resolve(w, gather(t, w))
			got, _ := drainCues(w)
			if len(got) != len(tt.want) {
				t.Fatalf("expected cues %v, got %v", tt.want, got)
			}
			for name, n := range tt.want {
				if got[name] != n {
					t.Fatalf("expected cues %v, got %v", tt.want, got)
				}
			}
		})
	}
}

func TestShootCue(t *testing.T) {
	cat := loadCatalog(t)
	w := newTestWorld(t)
	player, err := entity.NewPlayerAt(w, cat, 200, 600, 0)
	if err != nil {
		t.Fatal(err)
	}
	input, _ := ecs.Get(w, player, component.InputComponent.Kind())
	input.Fire = true

	NewPlayerControllerSystem(cat).Update(w)
	cues, over := drainCues(w)
	if cues["shoot"] != 1 || len(cues) != 1 || over != 0 {
		t.Fatalf("expected one shoot cue, got %v (game over %d)", cues, over)
	}
}

func TestPlayerDeathCuesOnce(t *testing.T) {
	w := newTestWorld(t)
	addMobile(t, w, common.Rect{X: 100, Y: 100, W: 36, H: 25}, 100, true)
	addTerrain(t, w, common.Rect{X: 110, Y: 110, W: 16, H: 16}, 40, true, 0)

	sys := NewCollisionSystem(100)
	sys.Update(w)
	sys.Update(w)

	cues, over := drainCues(w)
	if over != 1 {
		t.Fatalf("expected one game over event, got %d", over)
	}
	if cues["player_dead"] != 1 || len(cues) != 1 {
		t.Fatalf("expected one player_dead cue, got %v", cues)
	}
}
