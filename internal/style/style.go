// Package style holds the drawing-style parameters for brush strokes.
// A tool keeps one SmoothOptions and one TexturedOptions around and derives
// an immutable Style from the active selector when a stroke starts.
package style

import (
	"fmt"
	"image/color"
)

// Color is an RGBA color with float components in [0,1].
type Color struct {
	R float64 `json:"r" toml:"r"`
	G float64 `json:"g" toml:"g"`
	B float64 `json:"b" toml:"b"`
	A float64 `json:"a" toml:"a"`
}

var Black = Color{R: 0, G: 0, B: 0, A: 1}

// NRGBA converts to the 8-bit color the canvas layer wants.
func (c Color) NRGBA() color.NRGBA {
	clamp := func(v float64) uint8 {
		if v <= 0 {
			return 0
		}
		if v >= 1 {
			return 255
		}
		return uint8(v*255 + 0.5)
	}
	return color.NRGBA{R: clamp(c.R), G: clamp(c.G), B: clamp(c.B), A: clamp(c.A)}
}

// BrushStyle selects which option set a new stroke is drawn with.
type BrushStyle string

const (
	BrushStyleMarker   BrushStyle = "marker"
	BrushStyleSolid    BrushStyle = "solid"
	BrushStyleTextured BrushStyle = "textured"
)

// DefaultBrushStyle is used when no selector is configured.
const DefaultBrushStyle = BrushStyleSolid

func (b BrushStyle) Valid() bool {
	switch b {
	case BrushStyleMarker, BrushStyleSolid, BrushStyleTextured:
		return true
	}
	return false
}

// UnmarshalText decodes a selector, mapping the empty string to Solid so
// configs written before the selector existed still load.
func (b *BrushStyle) UnmarshalText(text []byte) error {
	s := BrushStyle(text)
	if s == "" {
		*b = DefaultBrushStyle
		return nil
	}
	if !s.Valid() {
		return fmt.Errorf("unknown brush style %q", text)
	}
	*b = s
	return nil
}

func (b BrushStyle) MarshalText() ([]byte, error) {
	return []byte(b), nil
}

// SmoothOptions parameterizes marker and solid strokes.
type SmoothOptions struct {
	Width float64 `json:"width" toml:"width"`
	Color Color   `json:"color" toml:"color"`
	// SegmentConstantWidth draws every segment at Width, ignoring pressure.
	SegmentConstantWidth bool `json:"segment_constant_width" toml:"segment_constant_width"`
}

func DefaultSmoothOptions() SmoothOptions {
	return SmoothOptions{
		Width: 2.0,
		Color: Black,
	}
}

// TexturedOptions parameterizes textured strokes. Seed is set once per
// stroke when the stroke starts; it is nil until the first textured stroke.
type TexturedOptions struct {
	Width   float64 `json:"width" toml:"width"`
	Color   Color   `json:"color" toml:"color"`
	Density float64 `json:"density" toml:"density"`
	Seed    *uint64 `json:"seed,omitempty" toml:"seed,omitempty"`
}

func DefaultTexturedOptions() TexturedOptions {
	return TexturedOptions{
		Width:   4.0,
		Color:   Black,
		Density: 5.0,
	}
}

// Style is the concrete drawing style captured into a stroke. Exactly one
// of Smooth or Textured is set.
type Style struct {
	Smooth   *SmoothOptions   `json:"smooth,omitempty"`
	Textured *TexturedOptions `json:"textured,omitempty"`
}

// NewSmoothStyle captures a copy of opts.
func NewSmoothStyle(opts SmoothOptions) Style {
	return Style{Smooth: &opts}
}

// NewTexturedStyle captures a copy of opts.
func NewTexturedStyle(opts TexturedOptions) Style {
	return Style{Textured: &opts}
}

// Width returns the stroke width of whichever option set is active.
func (s Style) Width() float64 {
	switch {
	case s.Smooth != nil:
		return s.Smooth.Width
	case s.Textured != nil:
		return s.Textured.Width
	}
	return 0
}

// Color returns the stroke color of whichever option set is active.
func (s Style) StrokeColor() Color {
	switch {
	case s.Smooth != nil:
		return s.Smooth.Color
	case s.Textured != nil:
		return s.Textured.Color
	}
	return Black
}

// ConstantWidth reports whether pressure should be ignored while drawing.
func (s Style) ConstantWidth() bool {
	if s.Smooth != nil {
		return s.Smooth.SegmentConstantWidth
	}
	// Textured strokes always spray at the configured width.
	return true
}
