package entity

import (
	"fmt"
	"math/rand"

	"github.com/milk9111/scrollshooter/common"
	"github.com/milk9111/scrollshooter/ecs"
)

// NewWorld builds a fresh run: camera, game state, the first tilemap chunk
// filling the screen, and the player.
func NewWorld(cat *Catalog, rng *rand.Rand) (*ecs.World, error) {
	if cat == nil {
		return nil, fmt.Errorf("world: nil catalog")
	}
	w := ecs.NewWorld()
	if _, err := NewCamera(w, cat); err != nil {
		return nil, err
	}
	if _, err := NewGameState(w); err != nil {
		return nil, err
	}
	if _, err := NewTilemapChunk(w, cat, common.Vec2i{}, rng, 0); err != nil {
		return nil, err
	}
	if _, err := NewPlayer(w, cat, 0); err != nil {
		return nil, err
	}
	return w, nil
}
