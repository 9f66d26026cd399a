package sheet

import (
	"math"
	"testing"

	"inkboard/internal/geometry"
)

func TestSheetExpandToFit(t *testing.T) {
	s := New(100, 100)
	s.ExpandToFit(geometry.NewAABB(50, 50, 300, 120))

	b := s.Bounds()
	if b.MaxX != 300 || b.MaxY != 120 {
		t.Errorf("Bounds() = %+v, want grown to 300x120", b)
	}

	// The sheet never shrinks.
	s.ExpandToFit(geometry.NewAABB(10, 10, 20, 20))
	if s.Bounds() != b {
		t.Errorf("Bounds() shrank to %+v", s.Bounds())
	}
}

func TestCameraZoomClamped(t *testing.T) {
	c := NewCamera()
	for i := 0; i < 20; i++ {
		c.ZoomIn()
	}
	if c.ImageScale() > 3.0 {
		t.Errorf("scale %v above max", c.ImageScale())
	}
	for i := 0; i < 40; i++ {
		c.ZoomOut()
	}
	if c.ImageScale() < 0.3 {
		t.Errorf("scale %v below min", c.ImageScale())
	}
}

func TestCameraRoundTrip(t *testing.T) {
	c := NewCamera()
	c.ZoomIn()
	c.Pan(geometry.Vec2{X: 40, Y: -15})

	p := geometry.Vec2{X: 123, Y: 456}
	back := c.ToSheet(c.ToScreen(p))
	if math.Abs(back.X-p.X) > 1e-9 || math.Abs(back.Y-p.Y) > 1e-9 {
		t.Errorf("round trip moved %+v to %+v", p, back)
	}
}

func TestCameraReset(t *testing.T) {
	c := NewCamera()
	c.ZoomIn()
	c.Pan(geometry.Vec2{X: 10, Y: 10})
	c.Reset()
	if c.ImageScale() != 1.0 || c.Offset() != (geometry.Vec2{}) {
		t.Errorf("Reset() left scale %v offset %+v", c.ImageScale(), c.Offset())
	}
}
