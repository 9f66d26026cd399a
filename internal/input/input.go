// Package input defines the pen events the engine consumes. The UI layer
// translates whatever the windowing toolkit delivers (mouse, touch, stylus)
// into these before handing them to a tool.
package input

import "inkboard/internal/geometry"

// Element is a single sampled pen position with its pressure.
// Pressure is in [0,1]; mouse input reports 1.
type Element struct {
	Pos      geometry.Vec2 `json:"pos"`
	Pressure float64       `json:"pressure"`
}

func NewElement(x, y, pressure float64) Element {
	return Element{Pos: geometry.Vec2{X: x, Y: y}, Pressure: pressure}
}

// Event is one pen event. Exactly one of the concrete types below.
type Event interface {
	isPenEvent()
}

// DownEvent: the pen touched the surface or moved while touching.
type DownEvent struct {
	Element Element
}

// UpEvent: the pen was lifted.
type UpEvent struct {
	Element Element
}

// ProximityEvent: the pen is hovering near the surface.
type ProximityEvent struct {
	Element Element
}

// CancelEvent: the gesture was aborted (focus loss, palm rejection, ...).
type CancelEvent struct{}

func (DownEvent) isPenEvent()      {}
func (UpEvent) isPenEvent()        {}
func (ProximityEvent) isPenEvent() {}
func (CancelEvent) isPenEvent()    {}
