package render

import (
	"inkboard/internal/geometry"
	"inkboard/internal/style"
)

// PrimKind discriminates display list primitives.
type PrimKind int

const (
	PrimLine PrimKind = iota
	PrimDot
)

// Primitive is one recorded drawing command.
type Primitive struct {
	Kind  PrimKind
	A, B  geometry.Vec2 // line endpoints; A is the center for dots
	Width float64       // line width, or dot radius
	Color style.Color
}

// DisplayList records primitives so they can be replayed onto another
// Canvas later. The store caches one per stroke.
type DisplayList struct {
	prims []Primitive
}

var _ Canvas = (*DisplayList)(nil)

func (d *DisplayList) DrawLine(a, b geometry.Vec2, width float64, c style.Color) {
	d.prims = append(d.prims, Primitive{Kind: PrimLine, A: a, B: b, Width: width, Color: c})
}

func (d *DisplayList) DrawDot(p geometry.Vec2, radius float64, c style.Color) {
	d.prims = append(d.prims, Primitive{Kind: PrimDot, A: p, Width: radius, Color: c})
}

// Replay issues every recorded primitive onto cv in order.
func (d *DisplayList) Replay(cv Canvas) {
	for _, p := range d.prims {
		switch p.Kind {
		case PrimLine:
			cv.DrawLine(p.A, p.B, p.Width, p.Color)
		case PrimDot:
			cv.DrawDot(p.A, p.Width, p.Color)
		}
	}
}

// Append moves the primitives of other onto the end of d.
func (d *DisplayList) Append(other *DisplayList) {
	d.prims = append(d.prims, other.prims...)
}

func (d *DisplayList) Len() int { return len(d.prims) }

func (d *DisplayList) Reset() { d.prims = d.prims[:0] }
