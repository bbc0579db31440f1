package outline

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// SVGOptions specifies optional settings for [SVG] and [WriteSVG].
type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
}

func (opts SVGOptions) format(n float64) string {
	if opts.MaxPrecision <= 0 {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	s := strconv.FormatFloat(n, 'f', opts.MaxPrecision, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}

// SVG converts a path to a string of SVG path commands.
//
// See [WriteSVG] for a version that writes to an [io.Writer] instead of returning a
// string.
func SVG(p Path, opts SVGOptions) string {
	sb := &strings.Builder{}
	WriteSVG(sb, p, opts)
	return sb.String()
}

// WriteSVG converts a path to a string of SVG path commands and writes it to w.
//
// Arcs are written as elliptical arc commands with equal radii. The large-arc flag is
// set for arcs spanning more than half a circle and the sweep flag is set for arcs
// with non-negative bulge. Since outlines are closed, the output ends with a "Z"
// command.
func WriteSVG(w io.Writer, p Path, opts SVGOptions) error {
	space := []byte(" ")
	z := []byte("Z")
	var err error
	write := func(s []byte) {
		if err != nil {
			return
		}
		_, err = w.Write(s)
	}
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	flag := func(b bool) int {
		if b {
			return 1
		}
		return 0
	}
	format := opts.format

	for _, ev := range p {
		switch ev.Kind {
		case MoveKind:
			writef("M%s,%s", format(ev.Point.X), format(ev.Point.Y))
		case LineKind:
			writef("L%s,%s", format(ev.Point.X), format(ev.Point.Y))
		case ArcKind:
			a := ev.Arc
			writef("A%s,%s 0 %d,%d %s,%s",
				format(a.Radius), format(a.Radius),
				flag(a.LargeArc()), flag(a.Bulge >= 0),
				format(a.To.X), format(a.To.Y))
		default:
			panic("unreachable")
		}
		write(space)
	}
	if len(p) > 0 {
		write(z)
	}
	return err
}

// SVGDocumentOptions specifies optional settings for [WriteSVGDocument].
type SVGDocumentOptions struct {
	SVGOptions

	// Width of the stroke used for every path. A value of 0 selects 0.05, which
	// suits drawings measured in millimeters.
	StrokeWidth float64

	// Space added around the paths' bounding box when computing the view box.
	Margin float64
}

// WriteSVGDocument writes a standalone SVG document to w that draws the outlines of
// all paths. The view box encloses all paths.
func WriteSVGDocument(w io.Writer, paths []Path, opts SVGDocumentOptions) error {
	strokeWidth := opts.StrokeWidth
	if strokeWidth <= 0 {
		strokeWidth = 0.05
	}
	format := opts.format

	var bbox Rect
	first := true
	for _, p := range paths {
		if len(p) == 0 {
			continue
		}
		if first {
			first = false
			bbox = p.BoundingBox()
		} else {
			bbox = bbox.Union(p.BoundingBox())
		}
	}
	bbox = bbox.Inflate(opts.Margin, opts.Margin)

	if _, err := fmt.Fprintf(w, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%s %s %s %s">`+"\n",
		format(bbox.X0), format(bbox.Y0), format(bbox.Width()), format(bbox.Height())); err != nil {
		return err
	}
	for _, p := range paths {
		if len(p) == 0 {
			continue
		}
		if _, err := io.WriteString(w, `<path fill="none" stroke="black" stroke-width="`+format(strokeWidth)+`" d="`); err != nil {
			return err
		}
		if err := WriteSVG(w, p, opts.SVGOptions); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\" />\n"); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</svg>\n")
	return err
}
