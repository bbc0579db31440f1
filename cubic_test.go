package outline

import (
	"math"
	"testing"
)

func TestCubicBezEval(t *testing.T) {
	const epsilon = 1e-12
	c := CubicBez{Pt(0, 0), Pt(1, 2), Pt(3, 2), Pt(4, 0)}
	assertNear(t, c.Eval(0), c.P0, epsilon)
	assertNear(t, c.Eval(1), c.P3, epsilon)
	// By symmetry, the midpoint lies on the axis x = 2 at height 3/4·2.
	assertNear(t, c.Eval(0.5), Pt(2, 1.5), epsilon)
}

func TestCubicBezInfNaN(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(1, 2), Pt(3, 2), Pt(4, 0)}
	if c.IsInf() || c.IsNaN() {
		t.Error("finite cubic reports non-finite values")
	}
	c.P2 = Pt(math.Inf(1), 0)
	if !c.IsInf() {
		t.Error("got IsInf false for infinite control point")
	}
	c.P1 = Pt(math.NaN(), 0)
	if !c.IsNaN() {
		t.Error("got IsNaN false for NaN control point")
	}
}
