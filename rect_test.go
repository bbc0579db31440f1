package outline

import (
	"math"
	"testing"
)

func TestRectFromPoints(t *testing.T) {
	r := NewRectFromPoints(Pt(10, 0), Pt(0, 20))
	diff(t, Rect{0, 0, 10, 20}, r)
	diff(t, 10.0, r.Width())
	diff(t, 20.0, r.Height())
	diff(t, Rect{0, 0, 10, 20}, Rect{10, 20, 0, 0}.Abs())
}

func TestRectUnion(t *testing.T) {
	r := Rect{0, 0, 1, 1}
	diff(t, Rect{-1, 0, 1, 3}, r.Union(Rect{-1, 2, 0, 3}))
	diff(t, Rect{0, -5, 1, 1}, r.UnionPoint(Pt(0.5, -5)))

	// Zero-area rectangles grown point by point enclose all points.
	pts := []Point{Pt(3, 1), Pt(-2, 4), Pt(0, -1)}
	bbox := NewRectFromPoints(pts[0], pts[0])
	for _, pt := range pts[1:] {
		bbox = bbox.UnionPoint(pt)
	}
	diff(t, Rect{-2, -1, 3, 4}, bbox)
}

func TestRectInflate(t *testing.T) {
	diff(t, Rect{-1, -2, 11, 12}, Rect{0, 0, 10, 10}.Inflate(1, 2))
}

func TestRectInfNaN(t *testing.T) {
	if (Rect{0, 0, 1, 1}).IsInf() || (Rect{0, 0, 1, 1}).IsNaN() {
		t.Error("finite rectangle reports non-finite values")
	}
	if !(Rect{0, 0, math.Inf(1), 1}).IsInf() {
		t.Error("got IsInf false for infinite rectangle")
	}
	if !(Rect{0, math.NaN(), 1, 1}).IsNaN() {
		t.Error("got IsNaN false for NaN rectangle")
	}
}
