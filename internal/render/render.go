// Package render turns pen path segments into drawing primitives. Canvas is
// the one drawing interface in the engine; the UI backs it with fyne canvas
// objects, the exporter with PDF lines, and the store caches primitives in a
// DisplayList.
package render

import (
	"math"

	"inkboard/internal/geometry"
	"inkboard/internal/penpath"
	"inkboard/internal/style"
)

// Canvas receives drawing primitives in sheet coordinates.
type Canvas interface {
	DrawLine(a, b geometry.Vec2, width float64, c style.Color)
	DrawDot(p geometry.Vec2, radius float64, c style.Color)
}

// flattenSteps is the polyline resolution for one cubic segment. Scale
// bumps it so zoomed-in rendering stays smooth.
func flattenSteps(scale float64) int {
	steps := int(math.Ceil(8 * scale))
	if steps < 4 {
		steps = 4
	}
	if steps > 32 {
		steps = 32
	}
	return steps
}

// DrawSegment renders one segment onto cv using the given style. scale is
// the camera image scale and only affects flattening resolution, not
// coordinates.
func DrawSegment(cv Canvas, seg penpath.Segment, st style.Style, scale float64) {
	col := st.StrokeColor()
	baseWidth := st.Width()

	switch seg.Kind {
	case penpath.KindDot:
		w := baseWidth
		if !st.ConstantWidth() {
			w *= pressureFactor(seg.Start.Pressure)
		}
		cv.DrawDot(seg.Start.Pos, w/2.0, col)
	default:
		pts := seg.Flatten(flattenSteps(scale))
		for i := 1; i < len(pts); i++ {
			w := baseWidth
			if !st.ConstantWidth() {
				t := float64(i) / float64(len(pts)-1)
				w *= pressureFactor(seg.PressureAt(t))
			}
			cv.DrawLine(pts[i-1], pts[i], w, col)
		}
	}
}

// DrawSegments renders segs in order.
func DrawSegments(cv Canvas, segs []penpath.Segment, st style.Style, scale float64) {
	for _, seg := range segs {
		DrawSegment(cv, seg, st, scale)
	}
}

// pressureFactor maps pressure in [0,1] to a width multiplier. Zero
// pressure still leaves a thin trace.
func pressureFactor(p float64) float64 {
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}
	return 0.2 + 0.8*p
}
