package outline

// CubicBez is a cubic Bézier from P0 to P3 with control points P1 and P2.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

func (cb CubicBez) IsInf() bool {
	return cb.P0.IsInf() || cb.P1.IsInf() || cb.P2.IsInf() || cb.P3.IsInf()
}

func (cb CubicBez) IsNaN() bool {
	return cb.P0.IsNaN() || cb.P1.IsNaN() || cb.P2.IsNaN() || cb.P3.IsNaN()
}

func (cb CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(cb.P0).Mul(mt * mt * mt)
	b := Vec2(cb.P1).Mul(mt * mt * 3.0)
	c := Vec2(cb.P2).Mul(mt * 3.0)
	d := Vec2(cb.P3)
	v := a.Add(b.Add(c.Add(d.Mul(t)).Mul(t)).Mul(t))
	return Point(v)
}
