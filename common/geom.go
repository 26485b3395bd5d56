package common

import "fmt"

type Vec2i struct {
	X int
	Y int
}

func (v Vec2i) Add(o Vec2i) Vec2i {
	return Vec2i{X: v.X + o.X, Y: v.Y + o.Y}
}

// LenSq is the squared length, used to order displacement vectors.
func (v Vec2i) LenSq() int {
	return v.X*v.X + v.Y*v.Y
}

func (v Vec2i) String() string {
	return fmt.Sprintf("(%d,%d)", v.X, v.Y)
}

// Rect is an axis aligned box with its origin at the top-left corner.
type Rect struct {
	X int
	Y int
	W int
	H int
}

func (r Rect) Right() int {
	return r.X + r.W
}

func (r Rect) Bottom() int {
	return r.Y + r.H
}

func (r Rect) Center() Vec2i {
	return Vec2i{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

func (r Rect) Translate(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Overlaps reports whether the interiors intersect. Rects that only share an
// edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

func (r Rect) Contains(p Vec2i) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}
