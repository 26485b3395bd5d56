package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/scrollshooter/collision"
	"github.com/milk9111/scrollshooter/common"
	"github.com/milk9111/scrollshooter/ecs"
	"github.com/milk9111/scrollshooter/ecs/component"
	"github.com/milk9111/scrollshooter/prefabs"
)

func NewRock(w *ecs.World, cat *Catalog, x, y, frame int) (ecs.Entity, error) {
	if cat == nil {
		return 0, fmt.Errorf("rock: nil catalog")
	}
	e, err := newTerrain(w, cat, cat.Rock, x, y, frame)
	if err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.RockTagComponent.Kind(), &component.RockTag{}); err != nil {
		return fail(w, e, cat.Rock.Name, err)
	}
	return e, nil
}

// NewBlock builds an indestructible terrain block.
func NewBlock(w *ecs.World, cat *Catalog, x, y, frame int) (ecs.Entity, error) {
	if cat == nil {
		return 0, fmt.Errorf("block: nil catalog")
	}
	return newTerrain(w, cat, cat.Block, x, y, frame)
}

func newTerrain(w *ecs.World, cat *Catalog, spec prefabs.TerrainSpec, x, y, frame int) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := body(w, e, collision.KindTerrain, x, y, spec.Collider); err != nil {
		return fail(w, e, spec.Name, err)
	}
	if err := ecs.Add(w, e, component.TerrainComponent.Kind(), &component.Terrain{
		CreatedAt:    frame,
		Destructible: spec.Destructible,
		HP:           spec.Health,
	}); err != nil {
		return fail(w, e, spec.Name, err)
	}
	if err := look(w, e, spec.Sprite, spec.RenderLayer, cat.Machine(spec.Name), frame, color.NRGBA{R: 0xab, G: 0x52, B: 0x36, A: 0xff}); err != nil {
		return fail(w, e, spec.Name, err)
	}
	return e, nil
}

// NewWall covers a solid tile run. Walls have no sprite; the tilemap draws
// them.
func NewWall(w *ecs.World, r common.Rect, frame int) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := body(w, e, collision.KindWall, r.X, r.Y, prefabs.ColliderSpec{Width: r.W, Height: r.H}); err != nil {
		return fail(w, e, "wall", err)
	}
	if err := ecs.Add(w, e, component.WallComponent.Kind(), &component.Wall{CreatedAt: frame}); err != nil {
		return fail(w, e, "wall", err)
	}
	return e, nil
}
