package main

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/scrollshooter/common"
	"github.com/milk9111/scrollshooter/ecs"
	"github.com/milk9111/scrollshooter/ecs/component"
	"github.com/milk9111/scrollshooter/ecs/entity"
	"github.com/milk9111/scrollshooter/ecs/render"
	"github.com/milk9111/scrollshooter/ecs/system"
	"github.com/milk9111/scrollshooter/prefabs"
	"golang.org/x/image/font/basicfont"
)

type Game struct {
	debug bool
	seed  int64
	runs  int64

	catalog   *entity.Catalog
	world     *ecs.World
	scheduler *ecs.Scheduler
	renderer  *render.RenderSystem

	ai         *system.AISystem
	spawn      *system.SpawnSystem
	stream     *system.TilemapStreamSystem
	controller *system.PlayerControllerSystem
	collision  *system.CollisionSystem

	paused    bool
	quit      bool
	pauseUI   *ebitenui.UI
	overUI    *ebitenui.UI
	overLabel *widget.Text
	face      ebtext.Face

	watcher *prefabs.Watcher
}

func NewGame(seed int64, debug bool) (*Game, error) {
	cat, err := entity.LoadCatalog()
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	g := &Game{
		debug:    debug,
		seed:     seed,
		catalog:  cat,
		renderer: render.NewRenderSystem(debug),
		face:     ebtext.NewGoXFace(basicfont.Face7x13),
	}
	g.pauseUI = NewPauseUI(g)
	g.overUI, g.overLabel = NewGameOverUI(g)

	if debug {
		w, err := prefabs.NewWatcher("prefabs", "prefabs/scripts")
		if err != nil {
			log.Printf("game: prefab watcher disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	if err := g.restart(); err != nil {
		return nil, err
	}
	return g, nil
}

// restart builds a new run. Each restart advances the seed so runs differ
// but a whole session replays from -seed.
func (g *Game) restart() error {
	rng := rand.New(rand.NewSource(g.seed + g.runs))
	g.runs++

	world, err := entity.NewWorld(g.catalog, rng)
	if err != nil {
		return fmt.Errorf("game: %w", err)
	}

	g.ai = system.NewAISystem(g.catalog, rng)
	g.spawn = system.NewSpawnSystem(g.catalog, rng)
	g.stream = system.NewTilemapStreamSystem(g.catalog, rng)
	g.controller = system.NewPlayerControllerSystem(g.catalog)
	g.collision = system.NewCollisionSystem(g.catalog.Game.KillScore)

	g.world = world
	g.scheduler = ecs.NewScheduler(
		render.NewInputSystem(),
		system.NewScrollSystem(),
		g.stream,
		g.spawn,
		g.controller,
		g.ai,
		system.NewMovementSystem(),
		g.collision,
		system.NewTTLSystem(),
		system.NewCleanupSystem(),
		system.NewAnimationSystem(),
		render.NewAudioSystem(),
	)
	g.paused = false
	return nil
}

func (g *Game) reloadPrefabs() {
	cat, err := entity.LoadCatalog()
	if err != nil {
		log.Printf("game: reload prefabs: %v", err)
		return
	}
	g.catalog = cat
	g.ai.Reset(cat)
	g.spawn.SetCatalog(cat)
	g.stream.SetCatalog(cat)
	g.controller.SetCatalog(cat)
	log.Printf("game: prefabs reloaded")
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	changed := false
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("game: %s changed", name)
			changed = true
		case err, ok := <-g.watcher.Errors:
			if ok {
				log.Printf("game: watcher: %v", err)
			}
		default:
			if changed {
				g.reloadPrefabs()
			}
			return
		}
	}
}

func (g *Game) state() *component.GameState {
	e, ok := ecs.First(g.world, component.GameStateComponent.Kind())
	if !ok {
		return nil
	}
	s, _ := ecs.Get(g.world, e, component.GameStateComponent.Kind())
	return s
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.pollWatcher()

	if state := g.state(); state != nil && state.GameOver {
		g.overLabel.Label = fmt.Sprintf("Score %d  Kills %d", state.Score, state.Kills)
		g.overUI.Update()
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	if g.debug && inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		g.reloadPrefabs()
	}

	g.scheduler.Update(g.world)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(g.world, screen)
	g.drawHUD(screen)

	if state := g.state(); state != nil && state.GameOver {
		g.overUI.Draw(screen)
		return
	}
	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	hp := 0
	if p, ok := ecs.First(g.world, component.PlayerTagComponent.Kind()); ok {
		if m, ok := ecs.Get(g.world, p, component.MobileComponent.Kind()); ok {
			hp = m.HP
		}
	}
	score := 0
	if state := g.state(); state != nil {
		score = state.Score
	}
	line := fmt.Sprintf("SCORE %06d   HP %3d", score, hp)
	if g.debug {
		line += fmt.Sprintf("   FPS %.0f   ENT %d   CONTACTS %d", ebiten.ActualFPS(), g.world.Len(), len(g.collision.Contacts()))
	}
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(8, 8)
	ebtext.Draw(screen, line, g.face, op)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}
