// Package pen implements the pen tools of the board engine. The only tool
// so far is the Brush: a two-state machine that turns the incoming pen
// event stream into a persisted stroke in the store, extending the stroke's
// rendered representation append-only while the pen is down.
package pen

import (
	"math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"inkboard/internal/builder"
	"inkboard/internal/geometry"
	"inkboard/internal/input"
	"inkboard/internal/penpath"
	"inkboard/internal/render"
	"inkboard/internal/sheet"
	"inkboard/internal/store"
	"inkboard/internal/style"
)

// InputOvershoot expands the sheet bounds for input acceptance. Pen
// hardware overshoots the sheet edge slightly; events inside the margin
// still belong to the stroke, events beyond it are dropped.
const InputOvershoot = 30.0

// AudioPlayer plays the pen feedback sounds. A nil player means silence.
type AudioPlayer interface {
	PlayRandomMarkerSound()
	StartRandomBrushSound()
	StopRandomBrushSound()
}

// drawing is the payload of the Drawing state: the builder accumulating
// the in-progress path, and the key of the stroke it extends. The stroke
// itself stays owned by the store.
type drawing struct {
	builder *builder.PathBuilder
	key     uuid.UUID
}

// Brush is the freehand drawing tool. Not safe for concurrent use: the
// surface delivers one event at a time.
type Brush struct {
	Style           style.BrushStyle
	SmoothOptions   style.SmoothOptions
	TexturedOptions style.TexturedOptions

	// state is nil while idle.
	state  *drawing
	logger *log.Logger
}

// NewBrush returns an idle brush with default options. If logger is nil
// the default logger is used.
func NewBrush(logger *log.Logger) *Brush {
	if logger == nil {
		logger = log.Default()
	}
	return &Brush{
		Style:           style.DefaultBrushStyle,
		SmoothOptions:   style.DefaultSmoothOptions(),
		TexturedOptions: style.DefaultTexturedOptions(),
		logger:          logger,
	}
}

// IsDrawing reports whether a stroke is in progress.
func (b *Brush) IsDrawing() bool { return b.state != nil }

// HandleEvent processes one pen event and returns the surface flags it
// produced. The brush itself currently raises no flags; the return value
// keeps it on the same channel every other tool reports through.
func (b *Brush) HandleEvent(
	event input.Event,
	sh *sheet.Sheet,
	st *store.Store,
	cam *sheet.Camera,
	audio AudioPlayer,
) SurfaceFlags {
	var flags SurfaceFlags

	switch ev := event.(type) {
	case input.DownEvent:
		accepted := sh.Bounds().Loosened(InputOvershoot).Contains(ev.Element.Pos)
		if b.state == nil {
			if accepted {
				b.startStroke(ev, st, cam, audio)
			}
		} else if accepted {
			b.extendStroke(ev, st, cam)
		}

	case input.UpEvent:
		b.stopAudio(audio)
		if b.state != nil {
			b.finishStroke(ev, st, cam)
			b.state = nil
		}

	case input.CancelEvent:
		b.stopAudio(audio)
		if b.state != nil {
			// Finalize without blocking the caller.
			if err := st.UpdateGeometryForStroke(b.state.key); err != nil {
				b.logger.Error("updating geometry on cancel failed", "stroke", b.state.key, "err", err)
			}
			st.RegenerateRenderingForStrokeThreaded(b.state.key, cam.ImageScale())
			st.EmitFinish(b.state.key)
			b.state = nil
		}

	case input.ProximityEvent:
		// Hover carries no drawing information for the brush.
	}

	return flags
}

// startStroke performs the Idle -> Drawing transition.
func (b *Brush) startStroke(ev input.DownEvent, st *store.Store, cam *sheet.Camera, audio AudioPlayer) {
	b.startAudio(audio)

	// A new seed for a new textured stroke.
	if b.Style == style.BrushStyleTextured {
		seed := rand.Uint64()
		b.TexturedOptions.Seed = &seed
	}

	stroke := store.NewStroke(penpath.Dot(ev.Element), b.StyleForCurrentOptions())
	key := st.InsertStroke(stroke)

	pb := builder.Start(ev.Element)
	for _, seg := range pb.HandleEvent(ev) {
		if err := st.AddSegmentToStroke(key, seg); err != nil {
			b.logger.Error("adding segment after stroke start failed", "stroke", key, "err", err)
		}
	}

	if err := st.RegenerateRenderingForStroke(key, cam.ImageScale()); err != nil {
		b.logger.Error("regenerating rendering after inserting brush stroke failed", "stroke", key, "err", err)
	}

	b.state = &drawing{builder: pb, key: key}
}

// extendStroke is the append-only fast path while drawing.
func (b *Brush) extendStroke(ev input.DownEvent, st *store.Store, cam *sheet.Camera) {
	segs := b.state.builder.HandleEvent(ev)
	if len(segs) == 0 {
		return
	}
	for _, seg := range segs {
		if err := st.AddSegmentToStroke(b.state.key, seg); err != nil {
			b.logger.Error("appending segment failed", "stroke", b.state.key, "err", err)
		}
	}
	if err := st.AppendRenderingLastSegments(b.state.key, len(segs), cam.ImageScale()); err != nil {
		b.logger.Error("appending rendering for last segments failed", "stroke", b.state.key, "err", err)
	}
}

// finishStroke flushes the builder and finalizes geometry and rendering.
func (b *Brush) finishStroke(ev input.UpEvent, st *store.Store, cam *sheet.Camera) {
	for _, seg := range b.state.builder.HandleEvent(ev) {
		if err := st.AddSegmentToStroke(b.state.key, seg); err != nil {
			b.logger.Error("adding final segment failed", "stroke", b.state.key, "err", err)
		}
	}

	if err := st.UpdateGeometryForStroke(b.state.key); err != nil {
		b.logger.Error("updating geometry after finishing stroke failed", "stroke", b.state.key, "err", err)
	}
	if err := st.RegenerateRenderingForStroke(b.state.key, cam.ImageScale()); err != nil {
		b.logger.Error("regenerating rendering after finishing brush stroke failed", "stroke", b.state.key, "err", err)
	}
	st.EmitFinish(b.state.key)
}

func (b *Brush) startAudio(audio AudioPlayer) {
	if audio == nil {
		return
	}
	switch b.Style {
	case style.BrushStyleMarker:
		audio.PlayRandomMarkerSound()
	case style.BrushStyleSolid, style.BrushStyleTextured:
		audio.StartRandomBrushSound()
	}
}

func (b *Brush) stopAudio(audio AudioPlayer) {
	if audio != nil {
		audio.StopRandomBrushSound()
	}
}

// StyleForCurrentOptions derives the immutable style a new stroke is
// created with. Marker forces constant width; solid keeps the smooth
// options as configured; textured embeds the per-stroke seed.
func (b *Brush) StyleForCurrentOptions() style.Style {
	switch b.Style {
	case style.BrushStyleMarker:
		opts := b.SmoothOptions
		opts.SegmentConstantWidth = true
		return style.NewSmoothStyle(opts)
	case style.BrushStyleTextured:
		return style.NewTexturedStyle(b.TexturedOptions)
	default:
		return style.NewSmoothStyle(b.SmoothOptions)
	}
}

// previewStyle is the style the live preview and its bounds are evaluated
// with: smooth parameters for marker and solid, textured for textured.
func (b *Brush) previewStyle() style.Style {
	if b.Style == style.BrushStyleTextured {
		return style.NewTexturedStyle(b.TexturedOptions)
	}
	return style.NewSmoothStyle(b.SmoothOptions)
}

// BoundsOnSheet returns the region the in-progress stroke covers, for
// minimal redraw. The second return is false while idle.
func (b *Brush) BoundsOnSheet() (geometry.AABB, bool) {
	if b.state == nil {
		return geometry.AABB{}, false
	}
	return b.state.builder.ComposedBounds(b.previewStyle()), true
}

// DrawOnSheet renders the live preview of the in-progress stroke. The
// finalized rendering is owned by the store.
func (b *Brush) DrawOnSheet(cv render.Canvas, cam *sheet.Camera) {
	if b.state == nil {
		return
	}
	b.state.builder.DrawComposed(cv, b.previewStyle(), cam.ImageScale())
}
