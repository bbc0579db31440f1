package outline

import "fmt"

// Vertex is a corner of an outline. Bulge describes the edge that leaves the vertex
// towards the next vertex of the outline: it is the tangent of a quarter of the
// edge's included angle, positive for counter-clockwise arcs, negative for
// clockwise arcs, and zero for straight edges.
type Vertex struct {
	X     float64
	Y     float64
	Bulge float64
}

// V returns the vertex (x, y) with the given bulge.
func V(x, y, bulge float64) Vertex {
	return Vertex{X: x, Y: y, Bulge: bulge}
}

// Point returns the vertex's position.
func (v Vertex) Point() Point {
	return Point{X: v.X, Y: v.Y}
}

// Straight reports whether the edge leaving the vertex is a straight line.
func (v Vertex) Straight() bool {
	return v.Bulge == 0
}

func (v Vertex) String() string {
	return fmt.Sprintf("(%g, %g; bulge %g)", v.X, v.Y, v.Bulge)
}
