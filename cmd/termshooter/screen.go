package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/scrollshooter/collision"
	"github.com/milk9111/scrollshooter/common"
	"github.com/milk9111/scrollshooter/ecs"
	"github.com/milk9111/scrollshooter/ecs/component"
	"github.com/milk9111/scrollshooter/tiles"
)

// One terminal cell covers cellW x cellH world pixels.
const (
	cellW = 8
	cellH = 16
)

type glyph struct {
	r     rune
	style tcell.Style
	rank  int
}

var (
	groundGlyph = glyph{'.', tcell.StyleDefault.Foreground(tcell.ColorDarkOliveGreen), 0}
	solidGlyph  = glyph{'▓', tcell.StyleDefault.Foreground(tcell.ColorGray), 1}
	wallGlyph   = glyph{'█', tcell.StyleDefault.Foreground(tcell.ColorSlateGray), 2}
	rockGlyph   = glyph{'@', tcell.StyleDefault.Foreground(tcell.ColorSandyBrown), 3}
	blockGlyph  = glyph{'#', tcell.StyleDefault.Foreground(tcell.ColorSilver), 3}
	enemyGlyph  = glyph{'V', tcell.StyleDefault.Foreground(tcell.ColorRed), 4}
	playerGlyph = glyph{'A', tcell.StyleDefault.Foreground(tcell.ColorLime).Bold(true), 5}
	shotGlyph   = glyph{'|', tcell.StyleDefault.Foreground(tcell.ColorYellow), 6}
)

func gameState(w *ecs.World) (*component.GameState, bool) {
	e, ok := ecs.First(w, component.GameStateComponent.Kind())
	if !ok {
		return nil, false
	}
	return ecs.Get(w, e, component.GameStateComponent.Kind())
}

// draw renders the camera view, one glyph per cell. Where several entities
// share a cell the highest ranked one wins.
func draw(screen tcell.Screen, w *ecs.World, paused bool) {
	screen.Clear()

	camE, ok := ecs.First(w, component.CameraComponent.Kind())
	if !ok {
		screen.Show()
		return
	}
	cam, _ := ecs.Get(w, camE, component.CameraComponent.Kind())
	view := cam.View()

	cols, rows := view.W/cellW, view.H/cellH
	grid := make([]glyph, cols*rows)
	for i := range grid {
		grid[i].rank = -1
	}
	paint := func(r common.Rect, g glyph) {
		x0, x1 := (r.X-view.X)/cellW, (r.Right()-view.X-1)/cellW
		y0, y1 := (r.Y-view.Y)/cellH, (r.Bottom()-view.Y-1)/cellH
		for y := max(y0, 0); y <= min(y1, rows-1); y++ {
			for x := max(x0, 0); x <= min(x1, cols-1); x++ {
				if cell := &grid[y*cols+x]; g.rank > cell.rank {
					*cell = g
				}
			}
		}
	}

	ecs.ForEach(w, component.TilemapComponent.Kind(), func(_ ecs.Entity, tm *component.Tilemap) {
		m := tm.Map
		if m == nil {
			return
		}
		ts := m.Tileset()
		m.Each(m.VisibleRange(view), func(pos common.Vec2i, id tiles.TileID) {
			g := groundGlyph
			if ts.Tile(id).Solid {
				g = solidGlyph
			}
			paint(common.Rect{X: pos.X, Y: pos.Y, W: common.TileSize, H: common.TileSize}, g)
		})
	})

	ecs.ForEach2(w, component.TransformComponent.Kind(), component.ColliderComponent.Kind(), func(e ecs.Entity, t *component.Transform, c *component.Collider) {
		var g glyph
		switch c.Kind {
		case collision.KindWall:
			g = wallGlyph
		case collision.KindTerrain:
			g = blockGlyph
			if ecs.Has(w, e, component.RockTagComponent.Kind()) {
				g = rockGlyph
			}
		case collision.KindMobile:
			g = enemyGlyph
			if ecs.Has(w, e, component.PlayerTagComponent.Kind()) {
				g = playerGlyph
			}
		case collision.KindProjectile:
			g = shotGlyph
		default:
			return
		}
		paint(c.Rect(*t), g)
	})

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			if g := grid[y*cols+x]; g.rank >= 0 {
				screen.SetContent(x, y+1, g.r, nil, g.style)
			}
		}
	}

	hp := 0
	if p, ok := ecs.First(w, component.PlayerTagComponent.Kind()); ok {
		if m, ok := ecs.Get(w, p, component.MobileComponent.Kind()); ok {
			hp = m.HP
		}
	}
	status := fmt.Sprintf("HP %3d", hp)
	if state, ok := gameState(w); ok {
		status = fmt.Sprintf("SCORE %06d  KILLS %3d  HP %3d", state.Score, state.Kills, hp)
		if state.GameOver {
			status += "  GAME OVER  r: restart  q: quit"
		}
	}
	if paused {
		status += "  PAUSED"
	}
	printAt(screen, 0, 0, status, tcell.StyleDefault.Reverse(true))
	screen.Show()
}

func printAt(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for _, r := range s {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}
