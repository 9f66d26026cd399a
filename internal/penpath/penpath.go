// Package penpath defines the segments a pen path is built from. Segments
// are produced incrementally by the path builder and appended to strokes in
// the store; they are flat records with a kind tag so they serialize
// directly onto the sync wire.
package penpath

import (
	"inkboard/internal/geometry"
	"inkboard/internal/input"
)

// Kind discriminates the segment variants.
type Kind string

const (
	KindDot   Kind = "dot"
	KindLine  Kind = "line"
	KindCubic Kind = "cubic"
)

// Segment is one piece of pen path geometry.
//   - dot: Start only
//   - line: Start, End
//   - cubic: Start, Cp1, Cp2, End
type Segment struct {
	Kind  Kind          `json:"kind"`
	Start input.Element `json:"start"`
	End   input.Element `json:"end,omitzero"`
	Cp1   geometry.Vec2 `json:"cp1,omitzero"`
	Cp2   geometry.Vec2 `json:"cp2,omitzero"`
}

func Dot(el input.Element) Segment {
	return Segment{Kind: KindDot, Start: el}
}

func Line(start, end input.Element) Segment {
	return Segment{Kind: KindLine, Start: start, End: end}
}

func Cubic(start input.Element, cp1, cp2 geometry.Vec2, end input.Element) Segment {
	return Segment{Kind: KindCubic, Start: start, Cp1: cp1, Cp2: cp2, End: end}
}

// Bounds returns the segment's bounding box loosened by half the stroke
// width. For cubics the control points are included, which over-covers but
// never under-covers the curve.
func (s Segment) Bounds(width float64) geometry.AABB {
	var b geometry.AABB
	switch s.Kind {
	case KindDot:
		b = geometry.FromPoints(s.Start.Pos)
	case KindLine:
		b = geometry.FromPoints(s.Start.Pos, s.End.Pos)
	case KindCubic:
		b = geometry.FromPoints(s.Start.Pos, s.Cp1, s.Cp2, s.End.Pos)
	}
	return b.Loosened(width / 2.0)
}

// Flatten approximates the segment as a polyline with at most steps line
// pieces. Dots flatten to a single point.
func (s Segment) Flatten(steps int) []geometry.Vec2 {
	switch s.Kind {
	case KindDot:
		return []geometry.Vec2{s.Start.Pos}
	case KindLine:
		return []geometry.Vec2{s.Start.Pos, s.End.Pos}
	case KindCubic:
		if steps < 1 {
			steps = 1
		}
		pts := make([]geometry.Vec2, 0, steps+1)
		for i := 0; i <= steps; i++ {
			t := float64(i) / float64(steps)
			pts = append(pts, s.eval(t))
		}
		return pts
	}
	return nil
}

// eval evaluates the cubic bezier at t with de Casteljau.
func (s Segment) eval(t float64) geometry.Vec2 {
	a := s.Start.Pos.Lerp(s.Cp1, t)
	b := s.Cp1.Lerp(s.Cp2, t)
	c := s.Cp2.Lerp(s.End.Pos, t)
	ab := a.Lerp(b, t)
	bc := b.Lerp(c, t)
	return ab.Lerp(bc, t)
}

// PressureAt interpolates pressure along the segment for variable-width
// rendering.
func (s Segment) PressureAt(t float64) float64 {
	switch s.Kind {
	case KindDot:
		return s.Start.Pressure
	default:
		return s.Start.Pressure + (s.End.Pressure-s.Start.Pressure)*t
	}
}
