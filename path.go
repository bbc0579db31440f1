package outline

import (
	"iter"
	"slices"
)

// Path is a sequence of path events, as produced by [Convert]. A valid path starts
// with a [MoveKind] event.
type Path []PathEvent

// Push adds an event to the path.
func (p *Path) Push(ev PathEvent) {
	*p = append(*p, ev)
}

// MoveTo pushes a "move" event onto the path.
func (p *Path) MoveTo(pt Point) { p.Push(Move(pt)) }

// LineTo pushes a "line to" event onto the path.
func (p *Path) LineTo(pt Point) { p.Push(LineTo(pt)) }

// ArcTo pushes an "arc to" event onto the path.
func (p *Path) ArcTo(a Arc) { p.Push(ArcTo(a)) }

// Events returns an iterator over the path's events.
func (p Path) Events() iter.Seq[PathEvent] { return slices.Values(p) }

// Arcs returns an iterator over the arcs in the path.
func (p Path) Arcs() iter.Seq[Arc] {
	return func(yield func(Arc) bool) {
		for _, ev := range p {
			if ev.Kind == ArcKind {
				if !yield(ev.Arc) {
					return
				}
			}
		}
	}
}

// Closed reports whether the path ends where it starts. Paths produced by [Convert]
// are closed unless an edge was dropped.
func (p Path) Closed() bool {
	if len(p) == 0 {
		return false
	}
	return p[0].EndPoint() == p[len(p)-1].EndPoint()
}

// BoundingBox returns the smallest rectangle that encloses the path.
func (p Path) BoundingBox() Rect {
	var bbox Rect
	first := true
	addRect := func(r Rect) {
		if first {
			first = false
			bbox = r
		} else {
			bbox = bbox.Union(r)
		}
	}
	for _, ev := range p {
		switch ev.Kind {
		case MoveKind, LineKind:
			addRect(NewRectFromPoints(ev.Point, ev.Point))
		case ArcKind:
			addRect(ev.Arc.BoundingBox())
		}
	}
	return bbox
}

func (p Path) IsInf() bool {
	for _, ev := range p {
		if ev.Point.IsInf() || (ev.Kind == ArcKind && ev.Arc.IsInf()) {
			return true
		}
	}
	return false
}

func (p Path) IsNaN() bool {
	for _, ev := range p {
		if ev.Point.IsNaN() || (ev.Kind == ArcKind && ev.Arc.IsNaN()) {
			return true
		}
	}
	return false
}
