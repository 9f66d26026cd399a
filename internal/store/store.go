// Package store owns the persisted strokes of a board. It hands out opaque
// keys for strokes, extends their geometry segment by segment, and keeps a
// cached rendered representation (a display list) per stroke that can be
// regenerated fully, appended to incrementally, or regenerated on a
// background worker.
package store

import (
	"errors"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"inkboard/internal/geometry"
	"inkboard/internal/penpath"
	"inkboard/internal/render"
	"inkboard/internal/style"
)

var (
	// ErrStrokeNotFound is returned for keys the store does not know.
	ErrStrokeNotFound = errors.New("store: stroke not found")
	// ErrBadScale is returned for rendering requests with a scale <= 0.
	ErrBadScale = errors.New("store: image scale must be > 0")
	// ErrBadSegmentCount is returned when an append render asks for more
	// trailing segments than the stroke has.
	ErrBadSegmentCount = errors.New("store: segment count out of range")
)

// Stroke is a persisted vector stroke: ordered segments plus the style
// captured when it was started.
type Stroke struct {
	Segments []penpath.Segment `json:"segments"`
	Style    style.Style       `json:"style"`
	Bounds   geometry.AABB     `json:"bounds"`
}

// NewStroke creates a stroke from its opening segment.
func NewStroke(first penpath.Segment, st style.Style) *Stroke {
	return &Stroke{
		Segments: []penpath.Segment{first},
		Style:    st,
		Bounds:   first.Bounds(st.Width()),
	}
}

// recomputeBounds rebuilds Bounds from every segment.
func (s *Stroke) recomputeBounds() {
	if len(s.Segments) == 0 {
		s.Bounds = geometry.AABB{}
		return
	}
	b := s.Segments[0].Bounds(s.Style.Width())
	for _, seg := range s.Segments[1:] {
		b = b.Union(seg.Bounds(s.Style.Width()))
	}
	s.Bounds = b
}

type entry struct {
	stroke *Stroke
	// rendered is the cached display list; renderedSegments is how many
	// leading segments it covers.
	rendered         *render.DisplayList
	renderedSegments int
}

// RenderedStroke is a read-only view the surface draws from.
type RenderedStroke struct {
	Key      uuid.UUID
	Rendered *render.DisplayList
	Bounds   geometry.AABB
}

// Store holds all strokes of one board. All methods are safe for concurrent
// use; rendering regeneration requested through the Threaded variant runs on
// a single background worker.
type Store struct {
	mu      sync.RWMutex
	strokes map[uuid.UUID]*entry
	order   []uuid.UUID

	siteID  string
	lamport uint64
	// OnLocalOp, when set, is called for every locally produced op so the
	// sync layer can broadcast it. Set once at startup, before events flow.
	OnLocalOp func(Op)

	logger *log.Logger

	tasks  chan func()
	wg     sync.WaitGroup
	closed chan struct{}
}

// New creates an empty store and starts its render worker. If logger is
// nil the default logger is used.
func New(logger *log.Logger) *Store {
	if logger == nil {
		logger = log.Default()
	}
	s := &Store{
		strokes: make(map[uuid.UUID]*entry),
		siteID:  uuid.NewString(),
		logger:  logger,
		tasks:   make(chan func(), 64),
		closed:  make(chan struct{}),
	}
	go s.renderWorker()
	return s
}

// Close stops the background render worker after draining pending tasks.
func (s *Store) Close() {
	s.wg.Wait()
	close(s.closed)
}

func (s *Store) renderWorker() {
	for {
		select {
		case task := <-s.tasks:
			task()
			s.wg.Done()
		case <-s.closed:
			return
		}
	}
}

// Drain blocks until every queued background rendering task has run. Only
// used by tests and shutdown; the event-handling path never calls it.
func (s *Store) Drain() {
	s.wg.Wait()
}

// SiteID identifies this store instance in sync ops.
func (s *Store) SiteID() string { return s.siteID }

// InsertStroke adds a stroke and returns its key.
func (s *Store) InsertStroke(stroke *Stroke) uuid.UUID {
	s.mu.Lock()
	key := uuid.New()
	s.strokes[key] = &entry{stroke: stroke, rendered: &render.DisplayList{}}
	s.order = append(s.order, key)
	s.mu.Unlock()

	s.emitLocal(Op{Type: OpInsertStroke, Key: key, Stroke: stroke})
	return key
}

// AddSegmentToStroke appends one segment and grows the stroke's bounds.
func (s *Store) AddSegmentToStroke(key uuid.UUID, seg penpath.Segment) error {
	s.mu.Lock()
	e, ok := s.strokes[key]
	if !ok {
		s.mu.Unlock()
		return ErrStrokeNotFound
	}
	e.stroke.Segments = append(e.stroke.Segments, seg)
	e.stroke.Bounds = e.stroke.Bounds.Union(seg.Bounds(e.stroke.Style.Width()))
	s.mu.Unlock()

	s.emitLocal(Op{Type: OpAppendSegment, Key: key, Segment: &seg})
	return nil
}

// UpdateGeometryForStroke recomputes the stroke's bounds from scratch.
// Called when a stroke is finished or cancelled.
func (s *Store) UpdateGeometryForStroke(key uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.strokes[key]
	if !ok {
		return ErrStrokeNotFound
	}
	e.stroke.recomputeBounds()
	return nil
}

// RegenerateRenderingForStroke rebuilds the stroke's whole display list at
// the given image scale.
func (s *Store) RegenerateRenderingForStroke(key uuid.UUID, scale float64) error {
	if scale <= 0 {
		return ErrBadScale
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.strokes[key]
	if !ok {
		return ErrStrokeNotFound
	}
	dl := &render.DisplayList{}
	render.DrawSegments(dl, e.stroke.Segments, e.stroke.Style, scale)
	e.rendered = dl
	e.renderedSegments = len(e.stroke.Segments)
	return nil
}

// RegenerateRenderingForStrokeThreaded queues a full rendering regeneration
// on the background worker and returns immediately. Failures are logged,
// never reported; the caller has already moved on.
func (s *Store) RegenerateRenderingForStrokeThreaded(key uuid.UUID, scale float64) {
	s.wg.Add(1)
	select {
	case s.tasks <- func() {
		if err := s.RegenerateRenderingForStroke(key, scale); err != nil {
			s.logger.Error("background rendering regeneration failed", "stroke", key, "err", err)
		}
	}:
	case <-s.closed:
		s.wg.Done()
	}
}

// AppendRenderingLastSegments renders only the last n segments and appends
// them to the cached display list. This is the fast path while a stroke is
// being drawn.
func (s *Store) AppendRenderingLastSegments(key uuid.UUID, n int, scale float64) error {
	if scale <= 0 {
		return ErrBadScale
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.strokes[key]
	if !ok {
		return ErrStrokeNotFound
	}
	segs := e.stroke.Segments
	if n < 0 || n > len(segs) {
		return ErrBadSegmentCount
	}
	render.DrawSegments(e.rendered, segs[len(segs)-n:], e.stroke.Style, scale)
	e.renderedSegments = len(segs)
	return nil
}

// RenderedStrokes returns the strokes in insertion order with their cached
// display lists.
func (s *Store) RenderedStrokes() []RenderedStroke {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]RenderedStroke, 0, len(s.order))
	for _, key := range s.order {
		e := s.strokes[key]
		out = append(out, RenderedStroke{Key: key, Rendered: e.rendered, Bounds: e.stroke.Bounds})
	}
	return out
}

// Bounds is the union of every stroke's bounds.
func (s *Store) Bounds() geometry.AABB {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var b geometry.AABB
	first := true
	for _, key := range s.order {
		sb := s.strokes[key].stroke.Bounds
		if first {
			b = sb
			first = false
		} else {
			b = b.Union(sb)
		}
	}
	return b
}

func (s *Store) StrokeCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.strokes)
}

// SegmentCount returns how many segments the stroke has, or 0 for unknown
// keys.
func (s *Store) SegmentCount(key uuid.UUID) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.strokes[key]
	if !ok {
		return 0
	}
	return len(e.stroke.Segments)
}
