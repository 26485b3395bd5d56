package collision

import (
	"sort"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/scrollshooter/common"
)

// Broadphase keeps one kinematic Chipmunk body per collider and uses the
// space's bounding box tree to find candidate pairs. The space is never
// stepped; it only serves queries.
type Broadphase struct {
	space   *cp.Space
	proxies map[uint64]*proxy
	shapes  map[*cp.Shape]*proxy
}

type proxy struct {
	ref   Ref
	rect  common.Rect
	body  *cp.Body
	shape *cp.Shape
	seen  bool
}

func NewBroadphase() *Broadphase {
	return &Broadphase{
		space:   cp.NewSpace(),
		proxies: make(map[uint64]*proxy),
		shapes:  make(map[*cp.Shape]*proxy),
	}
}

// Len is the number of tracked colliders.
func (bp *Broadphase) Len() int {
	if bp == nil {
		return 0
	}
	return len(bp.proxies)
}

func filterFor(k Kind) cp.ShapeFilter {
	return cp.ShapeFilter{Group: cp.NO_GROUP, Categories: k.Category(), Mask: k.Mask()}
}

func centerOf(r common.Rect) cp.Vector {
	return cp.Vector{X: float64(r.X) + float64(r.W)/2, Y: float64(r.Y) + float64(r.H)/2}
}

// Sync makes the space mirror bodies: new colliders get shapes, moved ones
// are rebuilt and missing ones are removed.
func (bp *Broadphase) Sync(bodies []Body) {
	if bp == nil {
		return
	}
	for _, p := range bp.proxies {
		p.seen = false
	}
	for _, b := range bodies {
		p, ok := bp.proxies[b.ID]
		// shape bounds only refresh on AddShape, so a moved collider is
		// rebuilt rather than repositioned
		if ok && (p.ref.Kind != b.Kind || p.rect != b.Rect) {
			bp.remove(p)
			ok = false
		}
		if !ok {
			p = bp.add(b)
		}
		p.seen = true
	}
	for _, p := range bp.proxies {
		if !p.seen {
			bp.remove(p)
		}
	}
}

func (bp *Broadphase) add(b Body) *proxy {
	body := bp.space.AddBody(cp.NewKinematicBody())
	body.SetPosition(centerOf(b.Rect))
	shape := cp.NewBox(body, float64(b.Rect.W), float64(b.Rect.H), 0)
	shape.SetSensor(true)
	shape.SetFilter(filterFor(b.Kind))
	bp.space.AddShape(shape)

	p := &proxy{ref: b.Ref, rect: b.Rect, body: body, shape: shape}
	bp.proxies[b.ID] = p
	bp.shapes[shape] = p
	return p
}

func (bp *Broadphase) remove(p *proxy) {
	bp.space.RemoveShape(p.shape)
	bp.space.RemoveBody(p.body)
	delete(bp.shapes, p.shape)
	delete(bp.proxies, p.ref.ID)
}

// Gather appends every contact among the synced colliders, in the same order
// GatherContacts produces.
func (bp *Broadphase) Gather(into []Contact) ([]Contact, error) {
	if bp == nil {
		return into, nil
	}
	ordered := make([]*proxy, 0, len(bp.proxies))
	for _, p := range bp.proxies {
		ordered = append(ordered, p)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].ref.ID < ordered[j].ref.ID })

	var firstErr error
	for _, p := range ordered {
		a := Body{Ref: p.ref, Rect: p.rect}
		bp.space.BBQuery(p.shape.BB(), filterFor(p.ref.Kind), func(shape *cp.Shape, _ interface{}) {
			q, ok := bp.shapes[shape]
			// each unordered pair is seen from both sides; keep one
			if !ok || q.ref.ID <= p.ref.ID {
				return
			}
			c, hit, err := makeContact(a, Body{Ref: q.ref, Rect: q.rect})
			if err != nil && firstErr == nil {
				firstErr = err
			}
			if hit {
				into = append(into, c)
			}
		}, nil)
	}
	SortContacts(into)
	return into, firstErr
}
