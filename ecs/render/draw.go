package render

import (
	"image/color"
	"log"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/scrollshooter/collision"
	"github.com/milk9111/scrollshooter/common"
	"github.com/milk9111/scrollshooter/ecs"
	"github.com/milk9111/scrollshooter/ecs/component"
	"github.com/milk9111/scrollshooter/tiles"
)

var backgroundColor = color.NRGBA{R: 0x50, G: 0x50, B: 0x50, A: 0xff}

// RenderSystem draws the world scrolled by the camera: tilemaps first, then
// sprites by render layer.
type RenderSystem struct {
	Debug bool

	warned map[string]bool
}

func NewRenderSystem(debug bool) *RenderSystem {
	return &RenderSystem{Debug: debug, warned: map[string]bool{}}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}
	screen.Fill(backgroundColor)

	camEnt, ok := ecs.First(w, component.CameraComponent.Kind())
	if !ok {
		return
	}
	cam, _ := ecs.Get(w, camEnt, component.CameraComponent.Kind())
	view := cam.View()

	ecs.ForEach(w, component.TilemapComponent.Kind(), func(_ ecs.Entity, tm *component.Tilemap) {
		r.drawTilemap(screen, tm.Map, view)
	})

	entities := w.Query(component.TransformComponent.Kind(), component.SpriteComponent.Kind())
	sort.SliceStable(entities, func(i, j int) bool {
		li := 0
		if layer, ok := ecs.Get(w, entities[i], component.RenderLayerComponent.Kind()); ok {
			li = layer.Index
		}
		lj := 0
		if layer, ok := ecs.Get(w, entities[j], component.RenderLayerComponent.Kind()); ok {
			lj = layer.Index
		}
		if li != lj {
			return li < lj
		}
		return uint64(entities[i]) < uint64(entities[j])
	})

	for _, e := range entities {
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		s, _ := ecs.Get(w, e, component.SpriteComponent.Kind())
		if s.Hidden {
			continue
		}
		x := float64(t.X - view.X)
		y := float64(t.Y - view.Y)

		if s.Sheet == "" {
			// plain rect, sized by the collider
			c, ok := ecs.Get(w, e, component.ColliderComponent.Kind())
			if !ok {
				continue
			}
			vector.DrawFilledRect(screen, float32(x)+float32(c.OffsetX), float32(y)+float32(c.OffsetY), float32(c.W), float32(c.H), s.Color, false)
			continue
		}

		img, err := SubImage(s.Sheet, s.Source)
		if err != nil {
			r.warn(s.Sheet, err)
			continue
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(x, y)
		screen.DrawImage(img, op)
	}

	if r.Debug {
		r.drawColliders(w, screen, view)
	}
}

func (r *RenderSystem) drawTilemap(screen *ebiten.Image, m *tiles.Tilemap, view common.Rect) {
	if m == nil {
		return
	}
	ts := m.Tileset()
	sheet, err := LoadImage(ts.Sheet)
	if err != nil {
		r.warn(ts.Sheet, err)
		return
	}
	m.Each(m.VisibleRange(view), func(pos common.Vec2i, id tiles.TileID) {
		sub, ok := sheet.SubImage(ts.Rect(id)).(*ebiten.Image)
		if !ok {
			return
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(pos.X-view.X), float64(pos.Y-view.Y))
		screen.DrawImage(sub, op)
	})
}

var debugColors = map[collision.Kind]color.NRGBA{
	collision.KindTerrain:    {R: 0xff, G: 0xa3, A: 0xff},
	collision.KindMobile:     {G: 0xe4, B: 0x36, A: 0xff},
	collision.KindProjectile: {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	collision.KindWall:       {R: 0xff, B: 0x4d, A: 0xff},
}

func (r *RenderSystem) drawColliders(w *ecs.World, screen *ebiten.Image, view common.Rect) {
	ecs.ForEach2(w, component.TransformComponent.Kind(), component.ColliderComponent.Kind(), func(_ ecs.Entity, t *component.Transform, c *component.Collider) {
		rect := c.Rect(*t)
		vector.StrokeRect(screen,
			float32(rect.X-view.X), float32(rect.Y-view.Y),
			float32(rect.W), float32(rect.H),
			1, debugColors[c.Kind], false)
	})
}

func (r *RenderSystem) warn(key string, err error) {
	if r.warned[key] {
		return
	}
	r.warned[key] = true
	log.Printf("render: %v", err)
}
