package outline_test

import (
	"fmt"
	"log"

	"honnef.co/go/outline"
)

// A semicircle over the chord from (0, 0) to (2, 0), closed by a straight edge.
func ExampleConvert() {
	p, err := outline.Convert([]outline.Vertex{
		outline.V(0, 0, 1),
		outline.V(2, 0, 0),
	})
	if err != nil {
		log.Fatal(err)
	}
	for ev := range p.Events() {
		fmt.Println(ev.Kind)
	}
	fmt.Println(outline.SVG(p, outline.SVGOptions{}))
	// Output:
	// Move
	// LineTo
	// ArcTo
	// M2,0 L0,0 A1,1 0 0,1 2,0 Z
}

func ExampleConvertOpt() {
	opts := outline.ConvertOptions{
		OnDegenerate: func(err *outline.DegenerateArcError) {
			fmt.Println(err)
		},
	}
	// A single curved vertex describes an arc from the vertex to itself.
	p, err := outline.ConvertOpt([]outline.Vertex{outline.V(5, 5, 0.3)}, opts)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(len(p), p[0])
	// Output:
	// outline: degenerate arc at edge 0: center (5, 5), start angle 0, end angle 0, radius 0
	// 1 Move(5, 5)
}

func ExampleTransformVertices() {
	// DXF drawings are y-up, SVG is y-down.
	vertices, err := outline.TransformVertices([]outline.Vertex{
		outline.V(0, 0, 0),
		outline.V(4, 0, -2),
	}, outline.FlipY)
	if err != nil {
		log.Fatal(err)
	}
	p, err := outline.Convert(vertices)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(outline.SVG(p, outline.SVGOptions{}))
	// Output:
	// M4,0 A2.5,2.5 0 1,1 0,0 L4,0 Z
}
