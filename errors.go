package outline

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is returned when converting an outline without vertices.
var ErrInvalidInput = errors.New("outline: no vertices")

// ErrNotSimilarity is returned by [TransformVertices] for transforms that don't map
// circles to circles.
var ErrNotSimilarity = errors.New("outline: transform is not a similarity")

// DegenerateArcError describes a curved edge that was dropped from an outline because
// its arc could not be computed. See [Arc.Degenerate].
type DegenerateArcError struct {
	// Index of the vertex the edge ends at.
	Edge int

	From       Point
	To         Point
	Bulge      float64
	Center     Point
	StartAngle float64
	EndAngle   float64
	Radius     float64
}

func newDegenerateArcError(edge int, a Arc) *DegenerateArcError {
	return &DegenerateArcError{
		Edge:       edge,
		From:       a.From,
		To:         a.To,
		Bulge:      a.Bulge,
		Center:     a.Center,
		StartAngle: a.StartAngle,
		EndAngle:   a.EndAngle,
		Radius:     a.Radius,
	}
}

func (err *DegenerateArcError) Error() string {
	return fmt.Sprintf("outline: degenerate arc at edge %d: center %s, start angle %g, end angle %g, radius %g",
		err.Edge, err.Center, err.StartAngle, err.EndAngle, err.Radius)
}
