package collision

import (
	"errors"
	"fmt"
	"sort"

	"github.com/milk9111/scrollshooter/common"
)

var ErrBadInterval = errors.New("collision: interval end before start")

// Ref names one side of a contact. ID is the owning entity handle; the
// package never interprets it beyond ordering.
type Ref struct {
	Kind Kind
	ID   uint64
}

// Body is a collider snapshot handed to the gatherers.
type Body struct {
	Ref
	Rect common.Rect
}

// Contact is an overlapping pair in canonical order. MTV is the minimum
// translation that separates A from B; it is only filled for pairs that
// resolve by displacement.
type Contact struct {
	A     Ref
	B     Ref
	MTV   common.Vec2i
	Class PairClass
}

func (c Contact) String() string {
	return fmt.Sprintf("%s#%d/%s#%d mtv=%s", c.A.Kind, c.A.ID, c.B.Kind, c.B.ID, c.MTV)
}

// SeparatingAxis reports whether [a1,a2] and [b1,b2] are disjoint on one
// axis. Intervals that only touch are separated.
func SeparatingAxis(a1, a2, b1, b2 int) (bool, error) {
	if a1 > a2 || b1 > b2 {
		return false, fmt.Errorf("%w: [%d,%d] [%d,%d]", ErrBadInterval, a1, a2, b1, b2)
	}
	return a2 <= b1 || b2 <= a1, nil
}

// Overlapping is the narrow phase: true when no axis separates a and b.
func Overlapping(a, b common.Rect) (bool, error) {
	sepX, err := SeparatingAxis(a.X, a.Right(), b.X, b.Right())
	if err != nil {
		return false, err
	}
	if sepX {
		return false, nil
	}
	sepY, err := SeparatingAxis(a.Y, a.Bottom(), b.Y, b.Bottom())
	if err != nil {
		return false, err
	}
	return !sepY, nil
}

// Displacement returns the overlap of r1 and r2 along the axis with the
// smaller overlap, or false when they do not overlap.
func Displacement(r1, r2 common.Rect) (common.Vec2i, bool) {
	xOverlap := min(r1.Right(), r2.Right()) - max(r1.X, r2.X)
	yOverlap := min(r1.Bottom(), r2.Bottom()) - max(r1.Y, r2.Y)
	if xOverlap <= 0 || yOverlap <= 0 {
		return common.Vec2i{}, false
	}
	if xOverlap > yOverlap {
		return common.Vec2i{Y: yOverlap}, true
	}
	return common.Vec2i{X: xOverlap}, true
}

// makeContact runs the layer check and narrow phase for one candidate pair.
func makeContact(a, b Body) (Contact, bool, error) {
	if a.ID == b.ID {
		return Contact{}, false, nil
	}
	if !Collides(a.Kind, b.Kind) {
		return Contact{}, false, nil
	}
	class, swap, ok := classify(a.Kind, b.Kind)
	if !ok {
		return Contact{}, false, nil
	}
	if swap || (a.Kind == b.Kind && b.ID < a.ID) {
		a, b = b, a
	}
	hit, err := Overlapping(a.Rect, b.Rect)
	if err != nil || !hit {
		return Contact{}, false, err
	}
	c := Contact{A: a.Ref, B: b.Ref, Class: class}
	if class == PairMobileWall || class == PairMobileMobile {
		c.MTV, _ = Displacement(a.Rect, b.Rect)
	}
	return c, true, nil
}

// SortContacts puts contacts in resolution order: pair class, then A, then B.
func SortContacts(cs []Contact) {
	sort.Slice(cs, func(i, j int) bool {
		if cs[i].Class != cs[j].Class {
			return cs[i].Class < cs[j].Class
		}
		if cs[i].A.ID != cs[j].A.ID {
			return cs[i].A.ID < cs[j].A.ID
		}
		return cs[i].B.ID < cs[j].B.ID
	})
}

// GatherContacts tests every pair directly. It is the reference the
// broad-phase gatherer is checked against, and is fine for small scenes.
func GatherContacts(bodies []Body, into []Contact) ([]Contact, error) {
	for i := range bodies {
		for j := i + 1; j < len(bodies); j++ {
			c, ok, err := makeContact(bodies[i], bodies[j])
			if err != nil {
				return into, err
			}
			if ok {
				into = append(into, c)
			}
		}
	}
	SortContacts(into)
	return into, nil
}
