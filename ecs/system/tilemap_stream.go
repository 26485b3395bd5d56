package system

import (
	"log"
	"math/rand"

	"github.com/milk9111/scrollshooter/common"
	"github.com/milk9111/scrollshooter/ecs"
	"github.com/milk9111/scrollshooter/ecs/component"
	"github.com/milk9111/scrollshooter/ecs/entity"
)

// TilemapStreamSystem drops chunks that left the view and loads a new one
// above the view once no chunk starts above it.
type TilemapStreamSystem struct {
	catalog *entity.Catalog
	rng     *rand.Rand
}

func NewTilemapStreamSystem(cat *entity.Catalog, rng *rand.Rand) *TilemapStreamSystem {
	return &TilemapStreamSystem{catalog: cat, rng: rng}
}

func (s *TilemapStreamSystem) Update(w *ecs.World) {
	if !running(w) {
		return
	}
	cam, ok := camera(w)
	if !ok {
		return
	}
	screen := common.Vec2i{X: cam.Width, Y: cam.Height}

	covered := false
	ecs.ForEach(w, component.TilemapComponent.Kind(), func(e ecs.Entity, tm *component.Tilemap) {
		if tm.Map == nil || !tm.Map.Visible(cam.Scroll, screen) {
			ecs.DestroyEntity(w, e)
			return
		}
		if tm.Map.Position.Y+common.TileSize < cam.Scroll.Y {
			covered = true
		}
	})
	if covered {
		return
	}

	pos := common.Vec2i{X: cam.Scroll.X, Y: cam.Scroll.Y - cam.Height + common.TileSize}
	if _, err := entity.NewTilemapChunk(w, s.catalog, pos, s.rng, currentFrame(w)); err != nil {
		log.Printf("tilemap: load chunk at %s: %v", pos, err)
	}
}

// SetCatalog swaps the prefabs used for new chunks.
func (s *TilemapStreamSystem) SetCatalog(cat *entity.Catalog) {
	s.catalog = cat
}
