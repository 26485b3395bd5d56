package tiles

import (
	"errors"
	"image"
	"testing"

	"github.com/milk9111/scrollshooter/common"
)

func testTileset(t *testing.T) *Tileset {
	t.Helper()
	tiles := make([]Tile, 8)
	tiles[5].Solid = true
	ts, err := NewTileset("sheet", 4*common.TileSize, tiles, map[string][]TileID{
		"ground": {0, 1, 2},
		"wall":   {5},
	})
	if err != nil {
		t.Fatal(err)
	}
	return ts
}

func TestNewTilesetRejectsUnknownGroupTile(t *testing.T) {
	_, err := NewTileset("sheet", 64, make([]Tile, 2), map[string][]TileID{"ground": {3}})
	if err == nil {
		t.Fatalf("expected error for group with unknown tile")
	}
}

func TestTilesetRect(t *testing.T) {
	ts := testTileset(t)
	cases := []struct {
		id   TileID
		want image.Rectangle
	}{
		{0, image.Rect(0, 0, 16, 16)},
		{3, image.Rect(48, 0, 64, 16)},
		{5, image.Rect(16, 16, 32, 32)},
	}
	for _, c := range cases {
		if got := ts.Rect(c.id); got != c.want {
			t.Fatalf("Rect(%d) = %v, want %v", c.id, got, c.want)
		}
	}
}

func TestNewTilemapValidation(t *testing.T) {
	ts := testTileset(t)
	cases := []struct {
		name string
		dims Dims
		ids  []TileID
		want error
	}{
		{"ok", Dims{W: 2, H: 2}, []TileID{0, 1, 2, 5}, nil},
		{"wrong_size", Dims{W: 2, H: 3}, []TileID{0, 1, 2, 5}, ErrWrongSize},
		{"unknown_tile", Dims{W: 2, H: 1}, []TileID{0, 9}, ErrUnknownTile},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := NewTilemap(common.Vec2i{}, c.dims, ts, c.ids)
			if c.want == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if c.want != nil && !errors.Is(err, c.want) {
				t.Fatalf("expected %v, got %v", c.want, err)
			}
		})
	}
}

func TestTileAt(t *testing.T) {
	ts := testTileset(t)
	m, err := NewTilemap(common.Vec2i{X: 100, Y: -32}, Dims{W: 2, H: 2}, ts, []TileID{0, 1, 2, 5})
	if err != nil {
		t.Fatal(err)
	}

	id, err := m.TileIDAt(common.Vec2i{X: 117, Y: -1})
	if err != nil || id != 5 {
		t.Fatalf("expected tile 5, got %d err=%v", id, err)
	}
	tile, err := m.TileAt(common.Vec2i{X: 117, Y: -1})
	if err != nil || !tile.Solid {
		t.Fatalf("expected solid tile, got %+v err=%v", tile, err)
	}

	for _, p := range []common.Vec2i{{X: 99, Y: -32}, {X: 132, Y: -32}, {X: 100, Y: 0}, {X: 100, Y: -33}} {
		if _, err := m.TileIDAt(p); !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("expected out of bounds for %v, got %v", p, err)
		}
	}
}

func TestVisible(t *testing.T) {
	ts := testTileset(t)
	m, err := NewTilemap(common.Vec2i{X: 0, Y: 0}, Dims{W: 30, H: 50}, ts, make([]TileID, 1500))
	if err != nil {
		t.Fatal(err)
	}
	screen := common.Vec2i{X: common.BaseWidth, Y: common.BaseHeight}
	cases := []struct {
		name   string
		scroll common.Vec2i
		want   bool
	}{
		{"same", common.Vec2i{}, true},
		{"one_screen_up", common.Vec2i{Y: -800}, true},
		{"past_top", common.Vec2i{Y: -801}, false},
		{"past_bottom", common.Vec2i{Y: 801}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := m.Visible(c.scroll, screen); got != c.want {
				t.Fatalf("Visible(%v) = %v, want %v", c.scroll, got, c.want)
			}
		})
	}
}

func TestVisibleRangeClamps(t *testing.T) {
	ts := testTileset(t)
	m, err := NewTilemap(common.Vec2i{X: 0, Y: -160}, Dims{W: 4, H: 10}, ts, make([]TileID, 40))
	if err != nil {
		t.Fatal(err)
	}
	r := m.VisibleRange(common.Rect{X: 0, Y: -40, W: 20, H: 30})
	want := TileRange{Left: 0, Right: 2, Top: 7, Bottom: 10}
	if r != want {
		t.Fatalf("expected %+v, got %+v", want, r)
	}

	count := 0
	m.Each(r, func(pos common.Vec2i, _ TileID) {
		if pos.Y < -160 || pos.Y >= 0 {
			t.Fatalf("tile position %v outside map", pos)
		}
		count++
	})
	if count != 6 {
		t.Fatalf("expected 6 tiles, got %d", count)
	}
}

func TestSolidRuns(t *testing.T) {
	ts := testTileset(t)
	// column 0 solid except row 2, column 2 fully solid
	ids := []TileID{
		5, 0, 5,
		5, 0, 5,
		0, 0, 5,
		5, 1, 5,
	}
	m, err := NewTilemap(common.Vec2i{X: 10, Y: 20}, Dims{W: 3, H: 4}, ts, ids)
	if err != nil {
		t.Fatal(err)
	}
	got := m.SolidRuns()
	want := []common.Rect{
		{X: 10, Y: 20, W: 16, H: 32},
		{X: 10, Y: 68, W: 16, H: 16},
		{X: 42, Y: 20, W: 16, H: 64},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d runs, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("run %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}
