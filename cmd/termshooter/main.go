package main

import (
	"flag"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/scrollshooter/common"
	"github.com/milk9111/scrollshooter/ecs"
	"github.com/milk9111/scrollshooter/ecs/entity"
	"github.com/milk9111/scrollshooter/ecs/system"
)

// heldTicks is how long a key press counts as held. Terminals report
// presses and repeats but never releases.
const heldTicks = 8

type game struct {
	screen tcell.Screen
	cat    *entity.Catalog
	seed   int64
	runs   int64

	world     *ecs.World
	scheduler *ecs.Scheduler
	input     *keyInput
	sound     *soundSystem
	paused    bool
}

func main() {
	seed := flag.Int64("seed", 0, "random seed (0 picks one from the clock)")
	mute := flag.Bool("mute", false, "disable sound")
	logPath := flag.String("log", "termshooter.log", "log file; the terminal is busy drawing")
	flag.Parse()

	if f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
		log.SetOutput(f)
		defer f.Close()
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	cat, err := entity.LoadCatalog()
	if err != nil {
		log.Fatal(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	defer screen.Fini()
	screen.HideCursor()

	g := &game{
		screen: screen,
		cat:    cat,
		seed:   *seed,
		input:  &keyInput{},
		sound:  newSoundSystem(!*mute),
	}
	if err := g.restart(); err != nil {
		screen.Fini()
		log.Fatal(err)
	}
	g.run()
}

func (g *game) restart() error {
	rng := rand.New(rand.NewSource(g.seed + g.runs))
	g.runs++
	world, err := entity.NewWorld(g.cat, rng)
	if err != nil {
		return err
	}
	g.world = world
	g.scheduler = ecs.NewScheduler(
		g.input,
		system.NewScrollSystem(),
		system.NewTilemapStreamSystem(g.cat, rng),
		system.NewSpawnSystem(g.cat, rng),
		system.NewPlayerControllerSystem(g.cat),
		system.NewAISystem(g.cat, rng),
		system.NewMovementSystem(),
		system.NewCollisionSystem(g.cat.Game.KillScore),
		system.NewTTLSystem(),
		system.NewCleanupSystem(),
		system.NewAnimationSystem(),
		g.sound,
	)
	g.paused = false
	return nil
}

func (g *game) run() {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()
	defer close(quit)

	ticker := time.NewTicker(time.Second / common.TPS)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			if !g.handle(ev) {
				return
			}
		case <-ticker.C:
			g.tick()
		}
	}
}

// handle applies one terminal event and reports whether to keep running.
func (g *game) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		g.screen.Sync()
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyLeft:
			g.input.left = heldTicks
		case tcell.KeyRight:
			g.input.right = heldTicks
		case tcell.KeyUp:
			g.input.up = heldTicks
		case tcell.KeyDown:
			g.input.down = heldTicks
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 'a':
				g.input.left = heldTicks
			case 'd':
				g.input.right = heldTicks
			case 'w':
				g.input.up = heldTicks
			case 's':
				g.input.down = heldTicks
			case ' ', 'z':
				g.input.fire = heldTicks
			case 'p':
				g.paused = !g.paused
			case 'r':
				if err := g.restart(); err != nil {
					log.Printf("termshooter: restart: %v", err)
					return false
				}
			}
		}
	}
	return true
}

func (g *game) tick() {
	over := false
	if state, ok := gameState(g.world); ok {
		over = state.GameOver
	}
	if !g.paused && !over {
		g.scheduler.Update(g.world)
	}
	draw(g.screen, g.world, g.paused)
}
