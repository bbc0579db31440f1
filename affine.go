package outline

import "math"

// Affine describes an affine transform via coefficients.
//
// If the coefficients are (a, b, c, d, e, f), then the resulting
// transformation represents this augmented matrix:
//
//	| a c e |
//	| b d f |
//	| 0 0 1 |
//
// The idea is that (A * B) * v == A * (B * v).
type Affine struct {
	N0, N1, N2, N3, N4, N5 float64
}

// Identity is the identity transform.
var Identity = Affine{1, 0, 0, 1, 0, 0}

// FlipY is a transform that is flipped on the y-axis. Useful for converting
// between y-up and y-down spaces, such as from DXF drawings to SVG.
var FlipY = Affine{1, 0, 0, -1, 0, 0}

// FlipX is a transform that is flipped on the x-axis.
var FlipX = Affine{-1, 0, 0, 1, 0, 0}

// Scale creates an affine transform representing non-uniform scaling with
// different scale values for x and y.
func Scale(x, y float64) Affine {
	return Affine{x, 0, 0, y, 0, 0}
}

// Translate creates an affine transform representing translation.
func Translate(v Vec2) Affine {
	return Affine{1, 0, 0, 1, v.X, v.Y}
}

// Rotate creates an affine transform representing rotation.
//
// The convention for rotation is that a positive angle rotates a
// positive X direction into positive Y.
//
// The angle th is expressed in radians.
func Rotate(th float64) Affine {
	sin, cos := math.Sincos(th)
	return Affine{cos, sin, -sin, cos, 0, 0}
}

func (aff Affine) Mul(o Affine) Affine {
	return Affine{
		aff.N0*o.N0 + aff.N2*o.N1,
		aff.N1*o.N0 + aff.N3*o.N1,
		aff.N0*o.N2 + aff.N2*o.N3,
		aff.N1*o.N2 + aff.N3*o.N3,
		aff.N0*o.N4 + aff.N2*o.N5 + aff.N4,
		aff.N1*o.N4 + aff.N3*o.N5 + aff.N5,
	}
}

// Then creates aff followed by o.
//
// Equivalent to "o * aff"
func (aff Affine) Then(o Affine) Affine {
	return o.Mul(aff)
}

// Determinant computes the determinant.
func (aff Affine) Determinant() float64 {
	return aff.N0*aff.N3 - aff.N1*aff.N2
}

// IsSimilarity reports whether the transform only translates, rotates, reflects and
// uniformly scales. Such transforms map circles to circles.
func (aff Affine) IsSimilarity() bool {
	const epsilon = 1e-9
	colX := aff.N0*aff.N0 + aff.N1*aff.N1
	colY := aff.N2*aff.N2 + aff.N3*aff.N3
	dot := aff.N0*aff.N2 + aff.N1*aff.N3
	scale := max(colX, colY)
	if scale == 0 || math.IsInf(scale, 0) || math.IsNaN(scale) {
		return false
	}
	return math.Abs(colX-colY) <= epsilon*scale && math.Abs(dot) <= epsilon*scale
}

// TransformVertices applies a similarity transform to an outline. Reflections reverse
// the direction of every arc, so bulges are negated when the transform's determinant
// is negative.
//
// It returns [ErrNotSimilarity] if aff is not a similarity, as arcs would turn into
// elliptical arcs.
func TransformVertices(vertices []Vertex, aff Affine) ([]Vertex, error) {
	if !aff.IsSimilarity() {
		return nil, ErrNotSimilarity
	}
	flip := aff.Determinant() < 0
	out := make([]Vertex, len(vertices))
	for i, v := range vertices {
		pt := v.Point().Transform(aff)
		bulge := v.Bulge
		if flip {
			bulge = -bulge
		}
		out[i] = Vertex{X: pt.X, Y: pt.Y, Bulge: bulge}
	}
	return out, nil
}
