package store

import (
	"sync/atomic"

	"github.com/google/uuid"

	"inkboard/internal/penpath"
	"inkboard/internal/render"
)

// OpType identifies a board operation on the sync wire.
type OpType string

const (
	OpInsertStroke  OpType = "insert_stroke"
	OpAppendSegment OpType = "append_segment"
	OpFinishStroke  OpType = "finish_stroke"
)

// Op is one board mutation. Local ops get a lamport timestamp and this
// store's site ID before they are handed to OnLocalOp; remote ops carry the
// originating site's values.
type Op struct {
	Type    OpType           `json:"type"`
	Key     uuid.UUID        `json:"key"`
	Stroke  *Stroke          `json:"stroke,omitempty"`
	Segment *penpath.Segment `json:"segment,omitempty"`
	Lamport uint64           `json:"lamport"`
	Site    string           `json:"site"`
}

func (s *Store) nextLamport() uint64 {
	return atomic.AddUint64(&s.lamport, 1)
}

// observeLamport advances the clock past a remote timestamp.
func (s *Store) observeLamport(remote uint64) {
	for {
		cur := atomic.LoadUint64(&s.lamport)
		if remote <= cur {
			return
		}
		if atomic.CompareAndSwapUint64(&s.lamport, cur, remote) {
			return
		}
	}
}

func (s *Store) emitLocal(op Op) {
	if s.OnLocalOp == nil {
		return
	}
	op.Lamport = s.nextLamport()
	op.Site = s.siteID
	s.OnLocalOp(op)
}

// EmitFinish publishes that a stroke is complete so peers can finalize
// their copy. The local geometry/rendering work has already happened.
func (s *Store) EmitFinish(key uuid.UUID) {
	s.emitLocal(Op{Type: OpFinishStroke, Key: key})
}

// ApplyRemoteOp merges an op received from a peer into the store and
// reports whether anything changed and the surface should redraw. Ops from
// this store's own site and duplicate inserts are ignored.
func (s *Store) ApplyRemoteOp(op Op, scale float64) bool {
	if op.Site == s.siteID {
		return false
	}
	s.observeLamport(op.Lamport)

	switch op.Type {
	case OpInsertStroke:
		if op.Stroke == nil {
			return false
		}
		s.mu.Lock()
		if _, exists := s.strokes[op.Key]; exists {
			s.mu.Unlock()
			s.logger.Debug("duplicate remote stroke ignored", "stroke", op.Key)
			return false
		}
		s.strokes[op.Key] = &entry{stroke: op.Stroke, rendered: &render.DisplayList{}}
		s.order = append(s.order, op.Key)
		s.mu.Unlock()
		if err := s.RegenerateRenderingForStroke(op.Key, scale); err != nil {
			s.logger.Error("rendering remote stroke failed", "stroke", op.Key, "err", err)
		}
		return true

	case OpAppendSegment:
		if op.Segment == nil {
			return false
		}
		s.mu.Lock()
		e, ok := s.strokes[op.Key]
		if !ok {
			s.mu.Unlock()
			s.logger.Debug("segment for unknown remote stroke dropped", "stroke", op.Key)
			return false
		}
		e.stroke.Segments = append(e.stroke.Segments, *op.Segment)
		e.stroke.Bounds = e.stroke.Bounds.Union(op.Segment.Bounds(e.stroke.Style.Width()))
		s.mu.Unlock()
		if err := s.AppendRenderingLastSegments(op.Key, 1, scale); err != nil {
			s.logger.Error("rendering remote segment failed", "stroke", op.Key, "err", err)
		}
		return true

	case OpFinishStroke:
		if err := s.UpdateGeometryForStroke(op.Key); err != nil {
			return false
		}
		s.RegenerateRenderingForStrokeThreaded(op.Key, scale)
		return true
	}
	return false
}
