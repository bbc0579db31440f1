package outline

import (
	"fmt"
	"iter"
	"math"
)

// DefaultTolerance is used by functions that approximate arcs with Béziers when they
// are given a non-positive tolerance. It is appropriate for drawing at a scale of
// roughly one unit per pixel.
const DefaultTolerance = 0.1

// Sweep is the direction in which an arc is traced from its start to its end point.
type Sweep int

const (
	CounterClockwise Sweep = iota + 1
	Clockwise
)

func (s Sweep) String() string {
	switch s {
	case CounterClockwise:
		return "CounterClockwise"
	case Clockwise:
		return "Clockwise"
	default:
		return fmt.Sprintf("Sweep(%d)", int(s))
	}
}

// Arc is a circular arc from From to To, as described by a bulge.
//
// StartAngle and EndAngle are measured around Center and follow the convention of
// [BulgeToArc]: sweeping counter-clockwise from StartAngle to EndAngle covers the
// arc, regardless of the direction in which it is traced. Bulge is the bulge of the
// vertex the arc leaves and determines that direction.
type Arc struct {
	From       Point
	To         Point
	Center     Point
	StartAngle float64
	EndAngle   float64
	Radius     float64
	Bulge      float64
}

// NewArc returns the arc from from to to with the given bulge. The arc may be
// degenerate.
func NewArc(from, to Point, bulge float64) Arc {
	center, start, end, r := BulgeToArc(from, to, bulge)
	return Arc{
		From:       from,
		To:         to,
		Center:     center,
		StartAngle: start,
		EndAngle:   end,
		Radius:     r,
		Bulge:      bulge,
	}
}

func (a Arc) String() string {
	return fmt.Sprintf("Arc(%s → %s, center %s, r %g, %g..%g, bulge %g)",
		a.From, a.To, a.Center, a.Radius, a.StartAngle, a.EndAngle, a.Bulge)
}

// Degenerate reports whether the arc cannot be drawn. This is the case if its center
// isn't finite or if its radius isn't a positive, finite number.
func (a Arc) Degenerate() bool {
	return !a.Center.IsFinite() || !(a.Radius > 0) || math.IsInf(a.Radius, 0)
}

// Sweep returns the direction in which the arc is traced from From to To.
func (a Arc) Sweep() Sweep {
	if a.Bulge < 0 {
		return Clockwise
	}
	return CounterClockwise
}

// SweepAngle returns the signed angle swept when tracing the arc from From to To.
func (a Arc) SweepAngle() float64 {
	return IncludedAngle(a.Bulge)
}

// LargeArc reports whether the arc spans more than half a circle.
func (a Arc) LargeArc() bool {
	return math.Abs(a.Bulge) > 1
}

func (a Arc) IsInf() bool {
	return a.From.IsInf() || a.To.IsInf() || a.Center.IsInf() || math.IsInf(a.Radius, 0)
}

func (a Arc) IsNaN() bool {
	return a.From.IsNaN() || a.To.IsNaN() || a.Center.IsNaN() || math.IsNaN(a.Radius)
}

// Cubics approximates the arc with a sequence of cubic Béziers, traced from From to
// To. The first Bézier starts exactly at From and the last one ends exactly at To.
//
// The tolerance parameter bounds the distance between the arc and its approximation.
// A non-positive tolerance selects [DefaultTolerance].
func (a Arc) Cubics(tolerance float64) iter.Seq[CubicBez] {
	return func(yield func(CubicBez) bool) {
		if tolerance <= 0 {
			tolerance = DefaultTolerance
		}
		sweep := a.SweepAngle()
		scaledError := a.Radius / tolerance
		// Number of subdivisions per circle based on error tolerance.
		nError := max(math.Pow(1.1163*scaledError, 1.0/6.0), 3.999_999)
		n := max(math.Ceil(nError*math.Abs(sweep)*(1.0/(2.0*math.Pi))), 1)
		angleStep := sweep / n
		armLen := math.Copysign((4.0/3.0)*math.Tan(math.Abs(0.25*angleStep)), sweep) * a.Radius

		angle0 := ChordAngle(a.Center, a.From)
		p0 := a.From
		for i := range int(n) {
			angle1 := angle0 + angleStep
			p3 := Polar(a.Center, angle1, a.Radius)
			if i == int(n)-1 {
				p3 = a.To
			}
			p1 := Polar(p0, angle0+math.Pi/2, armLen)
			p2 := Polar(p3, angle1+math.Pi/2, -armLen)
			if !yield(CubicBez{p0, p1, p2, p3}) {
				return
			}
			angle0 = angle1
			p0 = p3
		}
	}
}

// BoundingBox returns the smallest rectangle that encloses the arc.
func (a Arc) BoundingBox() Rect {
	bbox := NewRectFromPoints(a.From, a.To)
	span := math.Abs(a.SweepAngle())
	// The arc reaches its extrema at the quadrant angles it passes through.
	for k := range 4 {
		th := float64(k) * (math.Pi / 2)
		d := math.Mod(th-a.StartAngle, 2*math.Pi)
		if d < 0 {
			d += 2 * math.Pi
		}
		if d <= span {
			bbox = bbox.UnionPoint(Polar(a.Center, th, a.Radius))
		}
	}
	return bbox
}

func (a Arc) Translate(v Vec2) Arc {
	a.From = a.From.Translate(v)
	a.To = a.To.Translate(v)
	a.Center = a.Center.Translate(v)
	return a
}
