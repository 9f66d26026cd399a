// Package builder incrementally assembles a pen path from pen events.
// One builder is created per stroke and owned by the drawing tool; it emits
// finished segments as soon as enough samples are buffered, so the stroke
// can be extended and rendered append-only while the pen is still moving.
package builder

import (
	"inkboard/internal/geometry"
	"inkboard/internal/input"
	"inkboard/internal/penpath"
	"inkboard/internal/render"
	"inkboard/internal/style"
)

// PathBuilder buffers pen elements and emits Catmull-Rom smoothed cubic
// segments between consecutive samples once their neighborhood is known.
// The tail that never got a following neighbor is flushed as line segments
// when the pen lifts.
type PathBuilder struct {
	buf []input.Element
	// nextPair is the index of the first sample pair not yet emitted.
	nextPair int
	emitted  []penpath.Segment
}

// Start creates a builder anchored at el.
func Start(el input.Element) *PathBuilder {
	return &PathBuilder{buf: []input.Element{el}}
}

// HandleEvent feeds one pen event. It returns the segments finished by this
// event, in path order, or nil when the event finished nothing. Each
// returned segment is reported exactly once.
func (pb *PathBuilder) HandleEvent(event input.Event) []penpath.Segment {
	switch ev := event.(type) {
	case input.DownEvent:
		pb.push(ev.Element)
		return pb.emitReady()
	case input.UpEvent:
		pb.push(ev.Element)
		segs := pb.emitReady()
		segs = append(segs, pb.flushTail()...)
		return segs
	case input.ProximityEvent:
		return nil
	case input.CancelEvent:
		return nil
	}
	return nil
}

// push appends a sample, dropping exact duplicates of the previous one
// (the tool feeds the starting Down event to a builder anchored at the
// same element).
func (pb *PathBuilder) push(el input.Element) {
	if n := len(pb.buf); n > 0 && pb.buf[n-1] == el {
		return
	}
	pb.buf = append(pb.buf, el)
}

// emitReady emits every sample pair whose following neighbor has arrived.
// Pair (k, k+1) needs sample k+2 for its outgoing tangent; the incoming
// tangent clamps to the first sample at the path start.
func (pb *PathBuilder) emitReady() []penpath.Segment {
	var out []penpath.Segment
	for pb.nextPair+2 < len(pb.buf) {
		out = append(out, pb.catmullSegment(pb.nextPair))
		pb.nextPair++
	}
	pb.emitted = append(pb.emitted, out...)
	return out
}

// flushTail emits the remaining un-smoothed pairs as plain lines.
func (pb *PathBuilder) flushTail() []penpath.Segment {
	var out []penpath.Segment
	for pb.nextPair+1 < len(pb.buf) {
		out = append(out, penpath.Line(pb.buf[pb.nextPair], pb.buf[pb.nextPair+1]))
		pb.nextPair++
	}
	pb.emitted = append(pb.emitted, out...)
	return out
}

// catmullSegment builds the cubic for pair (k, k+1) with Catmull-Rom
// tangents, clamping the missing neighbor at the path start.
func (pb *PathBuilder) catmullSegment(k int) penpath.Segment {
	p1 := pb.buf[k]
	p2 := pb.buf[k+1]
	p0 := pb.buf[0]
	if k > 0 {
		p0 = pb.buf[k-1]
	}
	p3 := pb.buf[k+2]

	cp1 := p1.Pos.Add(p2.Pos.Sub(p0.Pos).Scale(1.0 / 6.0))
	cp2 := p2.Pos.Sub(p3.Pos.Sub(p1.Pos).Scale(1.0 / 6.0))
	return penpath.Cubic(p1, cp1, cp2, p2)
}

// ComposedBounds is the bounding box of everything built so far, emitted or
// still buffered, loosened by half the style's stroke width.
func (pb *PathBuilder) ComposedBounds(st style.Style) geometry.AABB {
	pts := make([]geometry.Vec2, 0, len(pb.buf))
	for _, el := range pb.buf {
		pts = append(pts, el.Pos)
	}
	bounds := geometry.FromPoints(pts...).Loosened(st.Width() / 2.0)
	for _, seg := range pb.emitted {
		bounds = bounds.Union(seg.Bounds(st.Width()))
	}
	return bounds
}

// DrawComposed renders the in-progress path onto cv: the emitted segments
// plus straight preview lines for the not-yet-smoothed tail.
func (pb *PathBuilder) DrawComposed(cv render.Canvas, st style.Style, scale float64) {
	render.DrawSegments(cv, pb.emitted, st, scale)
	for i := pb.nextPair; i+1 < len(pb.buf); i++ {
		cv.DrawLine(pb.buf[i].Pos, pb.buf[i+1].Pos, st.Width(), st.StrokeColor())
	}
}
