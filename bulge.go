package outline

import "math"

// ChordAngle returns the direction from p0 to p1 in radians. This is atan2(dy, dx).
func ChordAngle(p0, p1 Point) float64 {
	return p1.Sub(p0).Angle()
}

// Polar returns the point that is radius away from origin in the direction of angle.
// A negative radius points in the opposite direction.
func Polar(origin Point, angle, radius float64) Point {
	return origin.Translate(VecFromAngle(angle).Mul(radius))
}

// SignedRadius returns the radius of the arc with the given bulge whose chord has
// the given length. The result carries the sign of bulge. It is undefined for a
// bulge of zero.
func SignedRadius(distance, bulge float64) float64 {
	return distance * (1 + bulge*bulge) / (4 * bulge)
}

// IncludedAngle returns the signed sweep of an arc with the given bulge, in radians.
// Positive values sweep counter-clockwise.
func IncludedAngle(bulge float64) float64 {
	return 4 * math.Atan(bulge)
}

// BulgeToArc computes the circular arc from start to end described by bulge, which
// must not be zero.
//
// The returned angles are measured around center. Sweeping counter-clockwise from
// startAngle to endAngle always covers the arc: for a positive bulge startAngle
// points at start, and for a negative bulge, whose arc runs clockwise from start to
// end, startAngle points at end instead. The radius is the magnitude of
// [SignedRadius].
//
// The results are not checked. Nearly straight edges and coincident endpoints
// produce non-finite centers and zero radii, respectively; see [Arc.Degenerate].
func BulgeToArc(start, end Point, bulge float64) (center Point, startAngle, endAngle, radius float64) {
	distance := start.Distance(end)
	r := SignedRadius(distance, bulge)
	// Rotate the chord by the angle between it and the radius through start.
	base := ChordAngle(start, end) + (math.Pi/2 - 2*math.Atan(bulge))
	center = Polar(start, base, r)

	if bulge < 0 {
		return center, ChordAngle(center, end), ChordAngle(center, start), math.Abs(r)
	}
	return center, ChordAngle(center, start), ChordAngle(center, end), math.Abs(r)
}
