package pen

// PenStyle identifies a pen tool for tool-switch requests.
type PenStyle string

const (
	PenStyleBrush PenStyle = "brush"
)

// SurfaceFlags are returned to the surface driving the engine. Every event
// handled produces one; the surface merges them into its per-frame
// accumulator and acts on the result.
type SurfaceFlags struct {
	// Quit: the application should quit.
	Quit bool
	// Redraw: the surface needs redrawing.
	Redraw bool
	// Resize: the surface needs resizing.
	Resize bool
	// ResizeToFitStrokes: the sheet should be resized to fit its strokes.
	ResizeToFitStrokes bool
	// ChangeToPen: the holder should switch to this pen. Nil means no
	// request.
	ChangeToPen *PenStyle
	// PenChanged: the active pen changed.
	PenChanged bool
	// SheetChanged: strokes were inserted or modified.
	SheetChanged bool
	// SelectionChanged: the selection changed.
	SelectionChanged bool
	// HideScrollbars overrides scrollbar visibility when non-nil; nil
	// leaves it alone.
	HideScrollbars *bool
	// CameraOffsetChanged: the camera offset changed.
	CameraOffsetChanged bool
}

// Merged combines f with other, prioritizing other for the optional
// fields: booleans OR, non-nil optionals from other win, nil optionals
// from other leave f's value standing.
func (f SurfaceFlags) Merged(other SurfaceFlags) SurfaceFlags {
	f.Quit = f.Quit || other.Quit
	f.Redraw = f.Redraw || other.Redraw
	f.Resize = f.Resize || other.Resize
	f.ResizeToFitStrokes = f.ResizeToFitStrokes || other.ResizeToFitStrokes
	if other.ChangeToPen != nil {
		f.ChangeToPen = other.ChangeToPen
	}
	f.PenChanged = f.PenChanged || other.PenChanged
	f.SheetChanged = f.SheetChanged || other.SheetChanged
	f.SelectionChanged = f.SelectionChanged || other.SelectionChanged
	if other.HideScrollbars != nil {
		f.HideScrollbars = other.HideScrollbars
	}
	f.CameraOffsetChanged = f.CameraOffsetChanged || other.CameraOffsetChanged
	return f
}

// MergeWith folds other into f in place.
func (f *SurfaceFlags) MergeWith(other SurfaceFlags) {
	*f = f.Merged(other)
}
