package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/scrollshooter/common"
	"github.com/pkg/profile"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode (collider outlines, prefab hot reload)")
	seed := flag.Int64("seed", 0, "random seed for spawns and tilemaps (0 picks one from the clock)")
	profileMode := flag.String("profile", "", "write a profile to the working directory: cpu or mem")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	scale := flag.Int("scale", 1, "window scale factor")
	flag.Parse()

	switch *profileMode {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	default:
		log.Fatalf("unknown -profile mode %q", *profileMode)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	log.Printf("game: seed %d", *seed)

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}
	if *scale < 1 {
		*scale = 1
	}
	ebiten.SetWindowSize(common.BaseWidth**scale, common.BaseHeight**scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("scrollshooter")
	ebiten.SetTPS(common.TPS)

	game, err := NewGame(*seed, *debug)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil && err != ebiten.Termination {
		log.Fatal(err)
	}
}
