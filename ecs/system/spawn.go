package system

import (
	"log"
	"math/rand"

	"github.com/milk9111/scrollshooter/ecs"
	"github.com/milk9111/scrollshooter/ecs/entity"
	"github.com/milk9111/scrollshooter/prefabs"
)

// SpawnSystem places enemies, rocks and blocks just above the view on fixed
// intervals. X positions come from the seeded rng so runs replay.
type SpawnSystem struct {
	catalog *entity.Catalog
	rng     *rand.Rand
}

func NewSpawnSystem(cat *entity.Catalog, rng *rand.Rand) *SpawnSystem {
	return &SpawnSystem{catalog: cat, rng: rng}
}

func (s *SpawnSystem) SetCatalog(cat *entity.Catalog) {
	s.catalog = cat
}

func (s *SpawnSystem) Update(w *ecs.World) {
	if s.catalog == nil || !running(w) {
		return
	}
	cam, ok := camera(w)
	if !ok {
		return
	}
	frame := currentFrame(w)
	game := s.catalog.Game

	if due(frame, game.EnemyInterval) && len(s.catalog.Enemies) > 0 {
		idx := s.rng.Intn(len(s.catalog.Enemies))
		spec := s.catalog.Enemies[idx]
		x := s.pickX(cam.Scroll.X, cam.Width, spec.Collider)
		y := cam.Scroll.Y - spec.Collider.Height
		if _, err := entity.NewEnemy(w, s.catalog, idx, x, y, frame); err != nil {
			log.Printf("spawn: %v", err)
		}
	}
	if due(frame, game.RockInterval) {
		x := s.pickX(cam.Scroll.X, cam.Width, s.catalog.Rock.Collider)
		y := cam.Scroll.Y - s.catalog.Rock.Collider.Height
		if _, err := entity.NewRock(w, s.catalog, x, y, frame); err != nil {
			log.Printf("spawn: %v", err)
		}
	}
	if due(frame, game.BlockInterval) {
		x := s.pickX(cam.Scroll.X, cam.Width, s.catalog.Block.Collider)
		y := cam.Scroll.Y - s.catalog.Block.Collider.Height
		if _, err := entity.NewBlock(w, s.catalog, x, y, frame); err != nil {
			log.Printf("spawn: %v", err)
		}
	}
}

func (s *SpawnSystem) pickX(left, width int, col prefabs.ColliderSpec) int {
	margin := s.catalog.Game.SpawnMargin
	span := width - 2*margin - col.Width
	if span <= 0 {
		return left + (width-col.Width)/2
	}
	return left + margin + s.rng.Intn(span)
}

func due(frame, interval int) bool {
	return interval > 0 && frame > 0 && frame%interval == 0
}
