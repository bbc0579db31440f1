package outline

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// GeomBuilder is a [Builder] that constructs a [path.Data] for the PDF/PostScript
// imaging model. Since that model has no circular arcs, arcs are approximated with
// cubic Béziers.
type GeomBuilder struct {
	// Tolerance for the approximation of arcs, see [Arc.Cubics].
	Tolerance float64

	data    *path.Data
	current Point
}

// NewGeomBuilder returns a builder that approximates arcs within tolerance. The zero
// value of GeomBuilder is usable as well and uses [DefaultTolerance].
func NewGeomBuilder(tolerance float64) *GeomBuilder {
	return &GeomBuilder{Tolerance: tolerance}
}

func (b *GeomBuilder) pathData() *path.Data {
	if b.data == nil {
		b.data = &path.Data{}
	}
	return b.data
}

func geomVec(pt Point) vec.Vec2 {
	return vec.Vec2{X: pt.X, Y: pt.Y}
}

func (b *GeomBuilder) MoveTo(pt Point) {
	b.pathData().MoveTo(geomVec(pt))
	b.current = pt
}

func (b *GeomBuilder) LineTo(pt Point) {
	b.pathData().LineTo(geomVec(pt))
	b.current = pt
}

func (b *GeomBuilder) ArcTo(radius, startAngle, endAngle float64, sweep Sweep, pt Point) {
	a := ArcThrough(b.current, pt, radius, startAngle, endAngle, sweep)
	for c := range a.Cubics(b.Tolerance) {
		b.pathData().CubeTo(geomVec(c.P1), geomVec(c.P2), geomVec(c.P3))
	}
	b.current = pt
}

// Close closes the current subpath.
func (b *GeomBuilder) Close() {
	b.pathData().Close()
}

// Data returns the path built so far.
func (b *GeomBuilder) Data() *path.Data {
	return b.pathData()
}

// GeomPath converts a path to a closed [path.Data], approximating arcs with cubic
// Béziers within tolerance.
func GeomPath(p Path, tolerance float64) *path.Data {
	b := NewGeomBuilder(tolerance)
	p.Replay(b)
	if len(p) > 0 {
		b.Close()
	}
	return b.Data()
}
