package tiles

import (
	"errors"
	"fmt"

	"github.com/milk9111/scrollshooter/common"
)

var (
	ErrWrongSize   = errors.New("tiles: tilemap is the wrong size")
	ErrUnknownTile = errors.New("tiles: tilemap refers to nonexistent tiles")
	ErrOutOfBounds = errors.New("tiles: coordinate out of bounds")
)

// Dims is a size in tiles.
type Dims struct {
	W int
	H int
}

// Tilemap is a row-major grid of tile ids placed in world space.
type Tilemap struct {
	Position common.Vec2i
	dims     Dims
	tileset  *Tileset
	grid     []TileID
}

func NewTilemap(pos common.Vec2i, dims Dims, ts *Tileset, ids []TileID) (*Tilemap, error) {
	if ts == nil {
		return nil, fmt.Errorf("new tilemap: tileset is nil")
	}
	if dims.W <= 0 || dims.H <= 0 || dims.W*dims.H != len(ids) {
		return nil, fmt.Errorf("%w: %dx%d for %d ids", ErrWrongSize, dims.W, dims.H, len(ids))
	}
	for _, id := range ids {
		if !ts.Contains(id) {
			return nil, fmt.Errorf("%w: %d", ErrUnknownTile, id)
		}
	}
	return &Tilemap{
		Position: pos,
		dims:     dims,
		tileset:  ts,
		grid:     append([]TileID(nil), ids...),
	}, nil
}

func (m *Tilemap) Size() Dims {
	return m.dims
}

func (m *Tilemap) Tileset() *Tileset {
	return m.tileset
}

// Bounds is the world rect the map covers.
func (m *Tilemap) Bounds() common.Rect {
	return common.Rect{
		X: m.Position.X,
		Y: m.Position.Y,
		W: m.dims.W * common.TileSize,
		H: m.dims.H * common.TileSize,
	}
}

// TileIDAt returns the id under a world position.
func (m *Tilemap) TileIDAt(p common.Vec2i) (TileID, error) {
	dx := p.X - m.Position.X
	dy := p.Y - m.Position.Y
	if dx < 0 || dy < 0 {
		return 0, fmt.Errorf("%w: %s before map origin %s", ErrOutOfBounds, p, m.Position)
	}
	x := dx / common.TileSize
	y := dy / common.TileSize
	if x >= m.dims.W {
		return 0, fmt.Errorf("%w: tile x %d of %d", ErrOutOfBounds, x, m.dims.W)
	}
	if y >= m.dims.H {
		return 0, fmt.Errorf("%w: tile y %d of %d", ErrOutOfBounds, y, m.dims.H)
	}
	return m.grid[y*m.dims.W+x], nil
}

func (m *Tilemap) TileAt(p common.Vec2i) (Tile, error) {
	id, err := m.TileIDAt(p)
	if err != nil {
		return Tile{}, err
	}
	return m.tileset.Tile(id), nil
}

// At returns the id at tile coordinates without bounds translation.
func (m *Tilemap) At(x, y int) TileID {
	return m.grid[y*m.dims.W+x]
}

// Visible reports whether any part of the map lies within the view.
func (m *Tilemap) Visible(screenPos, screenDim common.Vec2i) bool {
	b := m.Bounds()
	return !(b.Right() < screenPos.X ||
		b.X > screenPos.X+screenDim.X ||
		b.Bottom() < screenPos.Y ||
		b.Y > screenPos.Y+screenDim.Y)
}

// TileRange is a half-open range of tile coordinates.
type TileRange struct {
	Left, Right, Top, Bottom int
}

// VisibleRange returns the tiles that intersect view, padded by one tile on
// the far edges and clamped to the map.
func (m *Tilemap) VisibleRange(view common.Rect) TileRange {
	ts := common.TileSize
	return TileRange{
		Left:   common.ClampInt(floorDiv(view.X-m.Position.X, ts), 0, m.dims.W),
		Right:  common.ClampInt(floorDiv(view.Right()+ts-m.Position.X, ts), 0, m.dims.W),
		Top:    common.ClampInt(floorDiv(view.Y-m.Position.Y, ts), 0, m.dims.H),
		Bottom: common.ClampInt(floorDiv(view.Bottom()+ts-m.Position.Y, ts), 0, m.dims.H),
	}
}

// Each calls fn with the world position and id of every tile in r.
func (m *Tilemap) Each(r TileRange, fn func(pos common.Vec2i, id TileID)) {
	for y := r.Top; y < r.Bottom; y++ {
		py := m.Position.Y + y*common.TileSize
		row := m.grid[y*m.dims.W : (y+1)*m.dims.W]
		for x := r.Left; x < r.Right; x++ {
			fn(common.Vec2i{X: m.Position.X + x*common.TileSize, Y: py}, row[x])
		}
	}
}

// SolidRuns merges vertically adjacent solid tiles of each column into world
// rects, top to bottom, left to right.
func (m *Tilemap) SolidRuns() []common.Rect {
	var out []common.Rect
	for x := 0; x < m.dims.W; x++ {
		start := -1
		for y := 0; y <= m.dims.H; y++ {
			solid := y < m.dims.H && m.tileset.Tile(m.At(x, y)).Solid
			if solid && start < 0 {
				start = y
			}
			if !solid && start >= 0 {
				out = append(out, common.Rect{
					X: m.Position.X + x*common.TileSize,
					Y: m.Position.Y + start*common.TileSize,
					W: common.TileSize,
					H: (y - start) * common.TileSize,
				})
				start = -1
			}
		}
	}
	return out
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
