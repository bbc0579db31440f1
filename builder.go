package outline

import (
	"math"
)

// Builder is implemented by consumers that construct their own path representation
// from a [Path], such as a renderer's path object or a polygon library's ring.
type Builder interface {
	// MoveTo begins a new subpath at pt.
	MoveTo(pt Point)
	// LineTo adds a straight segment from the current point to pt.
	LineTo(pt Point)
	// ArcTo adds a circular arc from the current point to pt. The angles follow the
	// convention documented on [Arc]: sweeping counter-clockwise from startAngle to
	// endAngle covers the arc, and sweep is the direction in which the arc is traced
	// from the current point to pt.
	ArcTo(radius, startAngle, endAngle float64, sweep Sweep, pt Point)
}

// Replay calls b once for every event in the path, in order.
func (p Path) Replay(b Builder) {
	for _, ev := range p {
		switch ev.Kind {
		case MoveKind:
			b.MoveTo(ev.Point)
		case LineKind:
			b.LineTo(ev.Point)
		case ArcKind:
			a := ev.Arc
			b.ArcTo(a.Radius, a.StartAngle, a.EndAngle, a.Sweep(), a.To)
		default:
			panic("unreachable")
		}
	}
}

// ArcThrough reconstructs the arc from from to to out of the arguments of
// [Builder.ArcTo]. It is the inverse of the decomposition done by [Path.Replay], up
// to rounding errors.
func ArcThrough(from, to Point, radius, startAngle, endAngle float64, sweep Sweep) Arc {
	toAngle := endAngle
	if sweep == Clockwise {
		toAngle = startAngle
	}
	span := math.Mod(endAngle-startAngle, 2*math.Pi)
	if span < 0 {
		span += 2 * math.Pi
	}
	bulge := math.Tan(span / 4)
	if sweep == Clockwise {
		bulge = -bulge
	}
	return Arc{
		From:       from,
		To:         to,
		Center:     Polar(to, toAngle, -radius),
		StartAngle: startAngle,
		EndAngle:   endAngle,
		Radius:     radius,
		Bulge:      bulge,
	}
}
