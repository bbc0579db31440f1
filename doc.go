// Package outline converts closed outlines whose edges are described by bulges into
// sequences of primitive drawing instructions.
//
// # Bulges
//
// CAD formats such as DXF describe mixed straight and curved boundaries compactly as
// a list of vertices, each carrying a bulge. The bulge describes the edge that leaves
// the vertex: it is the tangent of a quarter of the arc's included angle. A bulge of
// zero denotes a straight edge, a bulge of 1 a counter-clockwise semicircle, and a
// bulge of -1 a clockwise one.
//
// [BulgeToArc] derives an arc's center, radius, and angles from its chord and bulge.
// [Arc] bundles the results together with the edge's end points.
//
// # Outlines and paths
//
// An outline is a slice of [Vertex] and is implicitly closed: the last vertex
// connects back to the first. [Convert] turns an outline into a [Path], a slice of
// [PathEvent]. Every path starts with a [Move] to the last vertex, followed by one
// [LineTo] or [ArcTo] per edge, starting with the edge that ends at the first vertex.
//
// Edges whose arcs cannot be computed, for example because the bulge is so small
// that the arc's center lies at infinity, are dropped. Use [ConvertOpt] to be
// notified of them, or [SetLogger] to have them logged.
//
// # Consumers
//
// Paths are meant to be consumed by other libraries. The package provides a few
// consumers of its own:
//   - [SVG] and [WriteSVG] write SVG path data, [WriteSVGDocument] writes whole
//     documents
//   - [GeomPath] and [GeomBuilder] build paths for the seehuhn.de/go/geom package,
//     approximating arcs with cubic Béziers (see [Arc.Cubics])
//   - [Path.Replay] drives any [Builder]
//
// # Concurrency
//
// All functions are pure and safe for concurrent use. [ConvertAll] converts many
// outlines in parallel.
package outline
