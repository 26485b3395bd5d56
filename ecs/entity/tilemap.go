package entity

import (
	"fmt"
	"math/rand"

	"github.com/milk9111/scrollshooter/common"
	"github.com/milk9111/scrollshooter/ecs"
	"github.com/milk9111/scrollshooter/ecs/component"
	"github.com/milk9111/scrollshooter/tiles"
)

// NewTilemapChunk streams in one screen of tiles at pos: random ground with
// wall tiles down both borders, ragged by the tileset's outcrop chance. Each
// solid run becomes a Wall entity.
func NewTilemapChunk(w *ecs.World, cat *Catalog, pos common.Vec2i, rng *rand.Rand, frame int) (ecs.Entity, error) {
	if cat == nil || cat.Tileset == nil {
		return 0, fmt.Errorf("tilemap: nil tileset")
	}
	spec := cat.TilesetSpec
	cols, rows := spec.Columns, spec.Rows
	if cols <= 0 || rows <= 0 {
		return 0, fmt.Errorf("tilemap: bad chunk size %dx%d", cols, rows)
	}

	ground := cat.Tileset.Group("ground")
	walls := cat.Tileset.Group("wall")
	ids := make([]tiles.TileID, cols*rows)
	for y := 0; y < rows; y++ {
		left, right := spec.BorderColumns, spec.BorderColumns
		if len(walls) > 0 && rng.Float64() < spec.OutcropChance {
			left++
		}
		if len(walls) > 0 && rng.Float64() < spec.OutcropChance {
			right++
		}
		for x := 0; x < cols; x++ {
			if len(walls) > 0 && (x < left || x >= cols-right) {
				ids[y*cols+x] = walls[rng.Intn(len(walls))]
				continue
			}
			ids[y*cols+x] = ground[rng.Intn(len(ground))]
		}
	}

	m, err := tiles.NewTilemap(pos, tiles.Dims{W: cols, H: rows}, cat.Tileset, ids)
	if err != nil {
		return 0, fmt.Errorf("tilemap: %w", err)
	}

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TilemapComponent.Kind(), &component.Tilemap{Map: m}); err != nil {
		return fail(w, e, "tilemap", err)
	}
	for _, r := range m.SolidRuns() {
		if _, err := NewWall(w, r, frame); err != nil {
			return 0, fmt.Errorf("tilemap: %w", err)
		}
	}
	return e, nil
}
