package outline

import "fmt"

type PathEventKind int

const (
	// Move to the point without drawing anything, starting a new subpath.
	MoveKind PathEventKind = iota + 1
	// Draw a line from the current location to the point.
	LineKind
	// Draw a circular arc from the current location to the arc's end point.
	ArcKind
)

func (k PathEventKind) String() string {
	switch k {
	case MoveKind:
		return "Move"
	case LineKind:
		return "LineTo"
	case ArcKind:
		return "ArcTo"
	default:
		return fmt.Sprintf("PathEventKind(%d)", int(k))
	}
}

// PathEvent is one drawing instruction of an outline. It acts as a tagged union:
// Point is only valid for [MoveKind] and [LineKind], Arc only for [ArcKind].
type PathEvent struct {
	Kind  PathEventKind
	Point Point
	Arc   Arc
}

func Move(pt Point) PathEvent {
	return PathEvent{Kind: MoveKind, Point: pt}
}

func LineTo(pt Point) PathEvent {
	return PathEvent{Kind: LineKind, Point: pt}
}

func ArcTo(a Arc) PathEvent {
	return PathEvent{Kind: ArcKind, Arc: a}
}

func (ev PathEvent) String() string {
	switch ev.Kind {
	case MoveKind, LineKind:
		return fmt.Sprintf("%s%s", ev.Kind, ev.Point)
	case ArcKind:
		return fmt.Sprintf("ArcTo(%s)", ev.Arc)
	default:
		return "InvalidPathEvent"
	}
}

// EndPoint returns the location of the pen after the event.
func (ev PathEvent) EndPoint() Point {
	switch ev.Kind {
	case MoveKind, LineKind:
		return ev.Point
	case ArcKind:
		return ev.Arc.To
	default:
		panic(fmt.Sprintf("invalid PathEvent kind %v", ev.Kind))
	}
}
