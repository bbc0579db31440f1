package outline

import (
	"errors"
	"math"
	"testing"
)

func TestAffineTransformPoint(t *testing.T) {
	const epsilon = 1e-12
	tests := []struct {
		name string
		aff  Affine
		pt   Point
		want Point
	}{
		{"identity", Identity, Pt(3, 4), Pt(3, 4)},
		{"flip y", FlipY, Pt(3, 4), Pt(3, -4)},
		{"flip x", FlipX, Pt(3, 4), Pt(-3, 4)},
		{"scale", Scale(2, 3), Pt(3, 4), Pt(6, 12)},
		{"translate", Translate(Vec(1, -1)), Pt(3, 4), Pt(4, 3)},
		{"rotate", Rotate(math.Pi / 2), Pt(1, 0), Pt(0, 1)},
		{"then", Translate(Vec(1, 0)).Then(Scale(2, 2)), Pt(1, 1), Pt(4, 2)},
		{"mul", Translate(Vec(1, 0)).Mul(Scale(2, 2)), Pt(1, 1), Pt(3, 2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertNear(t, tt.pt.Transform(tt.aff), tt.want, epsilon)
		})
	}
}

func TestAffineIsSimilarity(t *testing.T) {
	tests := []struct {
		name string
		aff  Affine
		want bool
	}{
		{"identity", Identity, true},
		{"flip y", FlipY, true},
		{"rotate", Rotate(0.7), true},
		{"uniform scale", Scale(2, 2), true},
		{"rotate and translate", Rotate(1.3).Then(Translate(Vec(5, 6))), true},
		{"non-uniform scale", Scale(2, 1), false},
		{"shear", Affine{1, 0, 1, 1, 0, 0}, false},
		{"singular", Scale(0, 0), false},
		{"NaN", Scale(math.NaN(), math.NaN()), false},
	}
	for _, tt := range tests {
		if got := tt.aff.IsSimilarity(); got != tt.want {
			t.Errorf("%s: got %t, want %t", tt.name, got, tt.want)
		}
	}
}

func TestAffineDeterminant(t *testing.T) {
	diff(t, 1.0, Identity.Determinant())
	diff(t, -1.0, FlipY.Determinant())
	diff(t, 6.0, Scale(2, 3).Determinant())
}

func TestTransformVerticesFlip(t *testing.T) {
	const epsilon = 1e-12
	vertices := []Vertex{V(0, 0, 0.5), V(4, 0, 0), V(4, 3, -0.25)}
	flipped, err := TransformVertices(vertices, FlipY)
	if err != nil {
		t.Fatal(err)
	}
	want := []Vertex{V(0, 0, -0.5), V(4, 0, 0), V(4, -3, 0.25)}
	diff(t, want, flipped)

	orig := mustConvert(t, vertices...)
	mirrored := mustConvert(t, flipped...)
	if len(orig) != len(mirrored) {
		t.Fatalf("got %d events, want %d", len(mirrored), len(orig))
	}
	for i := range orig {
		if orig[i].Kind != ArcKind {
			continue
		}
		a, b := orig[i].Arc, mirrored[i].Arc
		assertNear(t, b.Center, a.Center.Transform(FlipY), epsilon)
		if math.Abs(a.Radius-b.Radius) > epsilon {
			t.Errorf("event %d: got radius %g, want %g", i, b.Radius, a.Radius)
		}
		if a.Sweep() == b.Sweep() {
			t.Errorf("event %d: reflection didn't reverse sweep %s", i, a.Sweep())
		}
	}
}

func TestTransformVerticesRotate(t *testing.T) {
	const epsilon = 1e-9
	vertices := []Vertex{V(0, 0, 1), V(2, 0, 0)}
	aff := Rotate(math.Pi / 2).Then(Translate(Vec(10, 0)))
	got, err := TransformVertices(vertices, aff)
	if err != nil {
		t.Fatal(err)
	}
	p := mustConvert(t, got...)
	a := p[2].Arc
	assertNear(t, a.Center, Pt(10, 1), epsilon)
	if math.Abs(a.Radius-1) > epsilon {
		t.Errorf("got radius %g, want 1", a.Radius)
	}
	diff(t, 1.0, a.Bulge)
}

func TestTransformVerticesNotSimilarity(t *testing.T) {
	got, err := TransformVertices([]Vertex{V(0, 0, 1), V(2, 0, 0)}, Scale(2, 1))
	if !errors.Is(err, ErrNotSimilarity) {
		t.Errorf("got error %v, want %v", err, ErrNotSimilarity)
	}
	if got != nil {
		t.Errorf("got vertices %v, want nil", got)
	}
}
