package entity

import (
	"fmt"
	"image"

	"github.com/milk9111/scrollshooter/animation"
	"github.com/milk9111/scrollshooter/prefabs"
	"github.com/milk9111/scrollshooter/tiles"
)

// Catalog holds every prefab a run needs, decoded once. Animation machines
// are parsed here and cloned per entity.
type Catalog struct {
	Game        *prefabs.GameSpec
	Player      prefabs.PlayerSpec
	Enemies     []prefabs.EnemySpec
	Rock        prefabs.TerrainSpec
	Block       prefabs.TerrainSpec
	Wall        prefabs.WallSpec
	Projectiles map[string]prefabs.ProjectileSpec
	TilesetSpec prefabs.TilesetSpec
	Tileset     *tiles.Tileset

	machines map[string]*animation.StateMachine
}

func LoadCatalog() (*Catalog, error) {
	game, err := prefabs.LoadGameSpec()
	if err != nil {
		return nil, err
	}

	c := &Catalog{
		Game:        game,
		Projectiles: map[string]prefabs.ProjectileSpec{},
		machines:    map[string]*animation.StateMachine{},
	}

	if c.Player, err = prefabs.LoadSpec[prefabs.PlayerSpec](game.Player); err != nil {
		return nil, err
	}
	if err := c.addMachine(c.Player.Name, c.Player.Animation); err != nil {
		return nil, err
	}
	if err := c.addProjectile(c.Player.Projectile); err != nil {
		return nil, err
	}

	for _, name := range game.Enemies {
		spec, err := prefabs.LoadSpec[prefabs.EnemySpec](name)
		if err != nil {
			return nil, err
		}
		if err := c.addMachine(spec.Name, spec.Animation); err != nil {
			return nil, err
		}
		if err := c.addProjectile(spec.Projectile); err != nil {
			return nil, err
		}
		c.Enemies = append(c.Enemies, spec)
	}

	if c.Rock, err = prefabs.LoadSpec[prefabs.TerrainSpec](game.Rock); err != nil {
		return nil, err
	}
	if err := c.addMachine(c.Rock.Name, c.Rock.Animation); err != nil {
		return nil, err
	}
	if c.Block, err = prefabs.LoadSpec[prefabs.TerrainSpec](game.Block); err != nil {
		return nil, err
	}
	if err := c.addMachine(c.Block.Name, c.Block.Animation); err != nil {
		return nil, err
	}
	if c.Wall, err = prefabs.LoadSpec[prefabs.WallSpec](game.Wall); err != nil {
		return nil, err
	}

	if c.TilesetSpec, err = prefabs.LoadSpec[prefabs.TilesetSpec](game.Tileset); err != nil {
		return nil, err
	}
	if c.Tileset, err = NewTileset(c.TilesetSpec); err != nil {
		return nil, err
	}

	return c, nil
}

// Machine returns a fresh copy of the named prefab's animation, or nil when
// the prefab has none.
func (c *Catalog) Machine(name string) *animation.StateMachine {
	if c == nil {
		return nil
	}
	return c.machines[name].Clone()
}

func (c *Catalog) Projectile(name string) (prefabs.ProjectileSpec, bool) {
	if c == nil {
		return prefabs.ProjectileSpec{}, false
	}
	spec, ok := c.Projectiles[name]
	return spec, ok
}

func (c *Catalog) addMachine(name string, spec prefabs.AnimationSpec) error {
	m, err := buildMachine(spec)
	if err != nil {
		return fmt.Errorf("prefabs: %s animation: %w", name, err)
	}
	if m != nil {
		c.machines[name] = m
	}
	return nil
}

func (c *Catalog) addProjectile(name string) error {
	if name == "" {
		return nil
	}
	if _, ok := c.Projectiles[name]; ok {
		return nil
	}
	spec, err := prefabs.LoadSpec[prefabs.ProjectileSpec](name)
	if err != nil {
		return err
	}
	c.Projectiles[name] = spec
	return nil
}

func buildMachine(spec prefabs.AnimationSpec) (*animation.StateMachine, error) {
	if len(spec.Clips) == 0 {
		return nil, nil
	}
	clips := make(map[string]*animation.Clip, len(spec.Clips))
	for name, cs := range spec.Clips {
		frames := make([]image.Rectangle, 0, len(cs.Frames))
		for _, f := range cs.Frames {
			frames = append(frames, f.Rectangle())
		}
		clip, err := animation.NewClip(frames, cs.FrameTimes, cs.Loop)
		if err != nil {
			return nil, fmt.Errorf("clip %q: %w", name, err)
		}
		clips[name] = clip
	}
	transitions := make([]animation.Transition, 0, len(spec.Transitions))
	for _, tr := range spec.Transitions {
		transitions = append(transitions, animation.Transition{From: tr.From, To: tr.To, Input: tr.Input})
	}
	return animation.NewStateMachine(clips, transitions, spec.Initial)
}

// NewTileset builds a tileset from its prefab.
func NewTileset(spec prefabs.TilesetSpec) (*tiles.Tileset, error) {
	ts := make([]tiles.Tile, len(spec.Tiles))
	for i, t := range spec.Tiles {
		ts[i] = tiles.Tile{Solid: t.Solid}
	}
	groups := make(map[string][]tiles.TileID, len(spec.Groups))
	for name, ids := range spec.Groups {
		for _, id := range ids {
			groups[name] = append(groups[name], tiles.TileID(id))
		}
	}
	tileset, err := tiles.NewTileset(spec.Sheet, spec.SheetWidth, ts, groups)
	if err != nil {
		return nil, fmt.Errorf("prefabs: %w", err)
	}
	if len(tileset.Group("ground")) == 0 {
		return nil, fmt.Errorf("prefabs: tileset %q has no ground tiles", spec.Sheet)
	}
	return tileset, nil
}
