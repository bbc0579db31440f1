package outline

import "log/slog"

// ConvertOptions specifies optional settings for [ConvertOpt].
type ConvertOptions struct {
	// OnDegenerate, if set, is called for every curved edge that gets dropped
	// because its arc is degenerate.
	OnDegenerate func(*DegenerateArcError)

	// Logger overrides the package's logger, see [SetLogger].
	Logger *slog.Logger
}

// Convert converts a closed outline to a path. See [ConvertOpt] for details.
func Convert(vertices []Vertex) (Path, error) {
	return ConvertOpt(vertices, ConvertOptions{})
}

// ConvertOpt converts a closed outline to a path.
//
// Every vertex forms an edge with its predecessor, and the first vertex's
// predecessor is the last vertex, closing the outline. The path starts with a move
// to the last vertex, followed by one event per edge, in order: the edge ending at
// vertex 0 comes first. Edges leaving a vertex with zero bulge become lines, all
// others become arcs.
//
// Arcs that turn out to be degenerate (see [Arc.Degenerate]) are dropped from the
// path. They are reported to opts.OnDegenerate and logged, and conversion carries on
// with the next edge. Callers that need every edge can compare the length of the
// path with len(vertices)+1.
//
// It returns [ErrInvalidInput] if vertices is empty.
func ConvertOpt(vertices []Vertex, opts ConvertOptions) (Path, error) {
	n := len(vertices)
	if n == 0 {
		return nil, ErrInvalidInput
	}
	log := opts.Logger
	if log == nil {
		log = Logger()
	}

	p := make(Path, 0, n+1)
	for i, vertex := range vertices {
		last := vertices[(i+n-1)%n]
		if i == 0 {
			p.MoveTo(last.Point())
		}
		if last.Straight() {
			p.LineTo(vertex.Point())
			continue
		}

		a := NewArc(last.Point(), vertex.Point(), last.Bulge)
		if a.Degenerate() {
			err := newDegenerateArcError(i, a)
			log.Warn("dropping degenerate arc",
				slog.Int("edge", i),
				slog.Any("center", a.Center),
				slog.Float64("start_angle", a.StartAngle),
				slog.Float64("end_angle", a.EndAngle),
				slog.Float64("radius", a.Radius),
				slog.Float64("bulge", a.Bulge))
			if opts.OnDegenerate != nil {
				opts.OnDegenerate(err)
			}
			continue
		}
		p.ArcTo(a)
	}
	return p, nil
}
