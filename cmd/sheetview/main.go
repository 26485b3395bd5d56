package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/scrollshooter/animation"
	"github.com/milk9111/scrollshooter/assets"
	"github.com/milk9111/scrollshooter/ecs/entity"
	"github.com/milk9111/scrollshooter/ecs/render"
)

const (
	screenW = 512
	screenH = 512
	zoom    = 4
)

type viewer struct {
	sheet   *ebiten.Image
	machine *animation.StateMachine
	clips   []string
	clip    int
	tick    int
	prefab  string
}

func (v *viewer) Update() error {
	v.tick++
	if v.machine == nil || len(v.clips) == 0 {
		return nil
	}
	step := 0
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) || inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		step = 1
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		step = len(v.clips) - 1
	}
	if step != 0 {
		v.clip = (v.clip + step) % len(v.clips)
		v.machine.Current = v.clips[v.clip]
		v.machine.Start = v.tick
	}
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x10, 0x10, 0x18, 0xff})

	// whole sheet at 2x along the top
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(2, 2)
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(v.sheet, op)

	if v.machine == nil {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s has no animation", v.prefab), 8, screenH-24)
		return
	}

	src := v.machine.Frame(v.tick)
	if !src.Empty() {
		frame := v.sheet.SubImage(src).(*ebiten.Image)
		fw, fh := src.Dx()*zoom, src.Dy()*zoom
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(zoom, zoom)
		op.GeoM.Translate(float64((screenW-fw)/2), float64(assetsHeight()+(screenH-assetsHeight()-fh)/2))
		op.Filter = ebiten.FilterNearest
		screen.DrawImage(frame, op)
	}

	clip := v.machine.Clip()
	info := fmt.Sprintf("%s / %s  frames %v  loop %v  (tab: next clip)", v.prefab, v.machine.Current, clip.FrameTimes, clip.Loop)
	ebitenutil.DebugPrintAt(screen, info, 8, screenH-24)
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenW, screenH
}

func assetsHeight() int {
	return assets.SheetHeight * 2
}

func main() {
	prefab := flag.String("prefab", "player", "prefab name whose animation to preview")
	flag.Parse()

	cat, err := entity.LoadCatalog()
	if err != nil {
		log.Fatal(err)
	}
	sheet, err := render.LoadImage(render.SheetKey)
	if err != nil {
		log.Fatal(err)
	}

	v := &viewer{sheet: sheet, prefab: *prefab, machine: cat.Machine(*prefab)}
	if v.machine != nil {
		for name := range v.machine.Clips {
			v.clips = append(v.clips, name)
		}
		sort.Strings(v.clips)
		for i, name := range v.clips {
			if name == v.machine.Current {
				v.clip = i
			}
		}
	} else {
		log.Printf("sheetview: no animation for prefab %q", *prefab)
	}

	ebiten.SetWindowSize(screenW, screenH)
	ebiten.SetWindowTitle("sheetview")
	if err := ebiten.RunGame(v); err != nil {
		log.Fatal(err)
	}
}
