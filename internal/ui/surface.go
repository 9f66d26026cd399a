package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/charmbracelet/log"

	"inkboard/internal/geometry"
	"inkboard/internal/input"
	"inkboard/internal/pen"
	"inkboard/internal/render"
	"inkboard/internal/sheet"
	"inkboard/internal/store"
	"inkboard/internal/style"
)

// Surface is the widget the pen draws on. It translates toolkit events
// into pen events, feeds them to the brush, merges the surface flags every
// event returns, and redraws from the store's display lists plus the live
// preview of the in-progress stroke.
type Surface struct {
	widget.BaseWidget

	Brush  *pen.Brush
	Sheet  *sheet.Sheet
	Store  *store.Store
	Camera *sheet.Camera
	Audio  pen.AudioPlayer

	// OnHideScrollbars is called when a pen event requests scrollbars to
	// be hidden or shown. The surface itself has none (the camera pans the
	// sheet), so the chrome that owns them hooks in here.
	OnHideScrollbars func(hidden bool)

	logger *log.Logger
	// flags accumulates the effect reports of a gesture until they are
	// consumed.
	flags pen.SurfaceFlags

	statusBar *widget.Label
}

var _ fyne.Widget = (*Surface)(nil)
var _ fyne.Draggable = (*Surface)(nil)
var _ desktop.Mouseable = (*Surface)(nil)
var _ desktop.Hoverable = (*Surface)(nil)

// NewSurface creates the drawing surface. If logger is nil the default
// logger is used.
func NewSurface(brush *pen.Brush, sh *sheet.Sheet, st *store.Store, cam *sheet.Camera, audio pen.AudioPlayer, logger *log.Logger) *Surface {
	if logger == nil {
		logger = log.Default()
	}
	s := &Surface{
		Brush:     brush,
		Sheet:     sh,
		Store:     st,
		Camera:    cam,
		Audio:     audio,
		logger:    logger,
		statusBar: widget.NewLabel("Ready"),
	}
	s.ExtendBaseWidget(s)
	return s
}

func (s *Surface) SetStatus(text string) {
	fyne.Do(func() { s.statusBar.SetText(text) })
}

func (s *Surface) StatusBar() fyne.CanvasObject { return s.statusBar }

// handlePenEvent runs one event through the brush and acts on the merged
// flags.
func (s *Surface) handlePenEvent(ev input.Event) {
	flags := s.Brush.HandleEvent(ev, s.Sheet, s.Store, s.Camera, s.Audio)
	s.flags.MergeWith(flags)
	s.consumeFlags()
	s.Refresh()
}

// consumeFlags acts on the accumulated flags and resets them.
func (s *Surface) consumeFlags() {
	flags := s.flags
	s.flags = pen.SurfaceFlags{}

	if flags.Quit {
		fyne.CurrentApp().Quit()
		return
	}
	if flags.ResizeToFitStrokes {
		s.Sheet.ExpandToFit(s.Store.Bounds())
	}
	if flags.ChangeToPen != nil {
		// The brush is the only tool so far; log and stay.
		s.logger.Debug("tool switch requested", "pen", *flags.ChangeToPen)
	}
	if flags.HideScrollbars != nil && s.OnHideScrollbars != nil {
		s.OnHideScrollbars(*flags.HideScrollbars)
	}
	// Redraw, Resize, SheetChanged and the rest all end in a refresh,
	// which the caller performs unconditionally.
}

// toSheet converts a widget-local event position to sheet coordinates.
func (s *Surface) toSheet(pos fyne.Position) geometry.Vec2 {
	return s.Camera.ToSheet(geometry.Vec2{X: float64(pos.X), Y: float64(pos.Y)})
}

func (s *Surface) MouseDown(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}
	p := s.toSheet(ev.Position)
	s.handlePenEvent(input.DownEvent{Element: input.Element{Pos: p, Pressure: 1}})
}

func (s *Surface) MouseUp(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}
	p := s.toSheet(ev.Position)
	s.handlePenEvent(input.UpEvent{Element: input.Element{Pos: p, Pressure: 1}})
}

// Dragged fires while the pointer moves with the button held.
func (s *Surface) Dragged(ev *fyne.DragEvent) {
	p := s.toSheet(ev.Position)
	s.handlePenEvent(input.DownEvent{Element: input.Element{Pos: p, Pressure: 1}})
}

func (s *Surface) DragEnd() {}

// MouseMoved fires while hovering without a button held.
func (s *Surface) MouseMoved(ev *desktop.MouseEvent) {
	p := s.toSheet(ev.Position)
	s.handlePenEvent(input.ProximityEvent{Element: input.Element{Pos: p, Pressure: 0}})
}

func (s *Surface) MouseIn(*desktop.MouseEvent) {}
func (s *Surface) MouseOut()                   {}

// CancelStroke aborts the in-progress stroke, e.g. when the style changes
// mid-gesture or the window loses focus.
func (s *Surface) CancelStroke() {
	s.handlePenEvent(input.CancelEvent{})
}

// Scrolled pans the camera.
func (s *Surface) Scrolled(ev *fyne.ScrollEvent) {
	s.Camera.Pan(geometry.Vec2{X: float64(-ev.Scrolled.DX), Y: float64(-ev.Scrolled.DY)})
	s.flags.MergeWith(pen.SurfaceFlags{CameraOffsetChanged: true})
	s.consumeFlags()
	s.Refresh()
}

func (s *Surface) ZoomIn() {
	s.Camera.ZoomIn()
	s.regenerateAll()
	s.Refresh()
}

func (s *Surface) ZoomOut() {
	s.Camera.ZoomOut()
	s.regenerateAll()
	s.Refresh()
}

// regenerateAll re-renders every stroke at the current image scale on the
// store's background worker.
func (s *Surface) regenerateAll() {
	for _, rs := range s.Store.RenderedStrokes() {
		s.Store.RegenerateRenderingForStrokeThreaded(rs.Key, s.Camera.ImageScale())
	}
}

func (s *Surface) CreateRenderer() fyne.WidgetRenderer {
	r := &surfaceRenderer{surface: s}
	r.background = canvas.NewRectangle(color.White)
	return r
}

// objectCanvas builds fyne canvas objects from render primitives, mapping
// sheet to screen coordinates.
type objectCanvas struct {
	cam     *sheet.Camera
	objects []fyne.CanvasObject
}

var _ render.Canvas = (*objectCanvas)(nil)

func (oc *objectCanvas) DrawLine(a, b geometry.Vec2, width float64, col style.Color) {
	sa := oc.cam.ToScreen(a)
	sb := oc.cam.ToScreen(b)
	line := canvas.NewLine(col.NRGBA())
	line.StrokeWidth = float32(width * oc.cam.ImageScale())
	line.Position1 = fyne.NewPos(float32(sa.X), float32(sa.Y))
	line.Position2 = fyne.NewPos(float32(sb.X), float32(sb.Y))
	oc.objects = append(oc.objects, line)
}

func (oc *objectCanvas) DrawDot(p geometry.Vec2, radius float64, col style.Color) {
	sp := oc.cam.ToScreen(p)
	r := radius * oc.cam.ImageScale()
	circle := canvas.NewCircle(col.NRGBA())
	circle.Position1 = fyne.NewPos(float32(sp.X-r), float32(sp.Y-r))
	circle.Position2 = fyne.NewPos(float32(sp.X+r), float32(sp.Y+r))
	oc.objects = append(oc.objects, circle)
}

type surfaceRenderer struct {
	surface    *Surface
	background *canvas.Rectangle
}

func (r *surfaceRenderer) Objects() []fyne.CanvasObject {
	s := r.surface
	oc := &objectCanvas{cam: s.Camera, objects: []fyne.CanvasObject{r.background}}

	for _, rs := range s.Store.RenderedStrokes() {
		rs.Rendered.Replay(oc)
	}
	// Live preview of the in-progress stroke on top.
	s.Brush.DrawOnSheet(oc, s.Camera)

	return oc.objects
}

func (r *surfaceRenderer) Refresh() {
	canvas.Refresh(r.surface)
}

func (r *surfaceRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
}

func (r *surfaceRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}

func (r *surfaceRenderer) Destroy() {}
