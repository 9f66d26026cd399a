// Package sheet models the drawing sheet and the camera looking at it.
// Adapted from the board/viewport handling of the original whiteboard: the
// sheet is a finite rectangle that can grow to fit content, the camera pans
// and zooms over it.
package sheet

import "inkboard/internal/geometry"

// Sheet is the drawable area, in sheet units.
type Sheet struct {
	bounds geometry.AABB
}

func New(width, height float64) *Sheet {
	return &Sheet{bounds: geometry.NewAABB(0, 0, width, height)}
}

func (s *Sheet) Bounds() geometry.AABB { return s.bounds }

// ExpandToFit grows the sheet so content lies inside it. The sheet never
// shrinks.
func (s *Sheet) ExpandToFit(content geometry.AABB) {
	s.bounds = s.bounds.Union(content)
}

const (
	minScale = 0.3
	maxScale = 3.0
	zoomStep = 1.2
)

// Camera is the viewport over the sheet: a pan offset plus a zoom scale.
type Camera struct {
	scale  float64
	offset geometry.Vec2
}

func NewCamera() *Camera {
	return &Camera{scale: 1.0}
}

// ImageScale is the scale factor rendering regeneration should target.
func (c *Camera) ImageScale() float64 { return c.scale }

func (c *Camera) Offset() geometry.Vec2 { return c.offset }

// Pan moves the viewport by delta, in screen units.
func (c *Camera) Pan(delta geometry.Vec2) {
	c.offset = c.offset.Add(delta)
}

func (c *Camera) ZoomIn() {
	c.scale *= zoomStep
	if c.scale > maxScale {
		c.scale = maxScale
	}
}

func (c *Camera) ZoomOut() {
	c.scale /= zoomStep
	if c.scale < minScale {
		c.scale = minScale
	}
}

// Reset restores the default viewport.
func (c *Camera) Reset() {
	c.scale = 1.0
	c.offset = geometry.Vec2{}
}

// ToSheet converts a screen position to sheet coordinates.
func (c *Camera) ToSheet(screen geometry.Vec2) geometry.Vec2 {
	return geometry.Vec2{
		X: (screen.X + c.offset.X) / c.scale,
		Y: (screen.Y + c.offset.Y) / c.scale,
	}
}

// ToScreen converts a sheet position to screen coordinates.
func (c *Camera) ToScreen(sheet geometry.Vec2) geometry.Vec2 {
	return geometry.Vec2{
		X: sheet.X*c.scale - c.offset.X,
		Y: sheet.Y*c.scale - c.offset.Y,
	}
}
