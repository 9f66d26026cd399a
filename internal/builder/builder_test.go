package builder

import (
	"testing"

	"inkboard/internal/input"
	"inkboard/internal/penpath"
	"inkboard/internal/style"
)

func TestSegmentsEmittedExactlyOnce(t *testing.T) {
	start := input.NewElement(0, 0, 1)
	pb := Start(start)

	// Down at the anchor is deduplicated, then a move sequence, then up.
	moves := []input.Element{
		input.NewElement(10, 0, 1),
		input.NewElement(20, 5, 1),
		input.NewElement(30, 5, 1),
		input.NewElement(40, 0, 1),
		input.NewElement(50, -5, 1),
	}

	total := 0
	if segs := pb.HandleEvent(input.DownEvent{Element: start}); segs != nil {
		total += len(segs)
	}
	for _, el := range moves {
		total += len(pb.HandleEvent(input.DownEvent{Element: el}))
	}
	up := input.NewElement(60, -5, 1)
	total += len(pb.HandleEvent(input.UpEvent{Element: up}))

	// 7 distinct samples means 6 consecutive pairs, each covered by
	// exactly one segment.
	if total != 6 {
		t.Errorf("total segments = %d, want 6", total)
	}
}

func TestSegmentContinuity(t *testing.T) {
	pb := Start(input.NewElement(0, 0, 1))
	var all []penpath.Segment
	for _, el := range []input.Element{
		input.NewElement(5, 0, 1),
		input.NewElement(10, 0, 1),
		input.NewElement(15, 0, 1),
		input.NewElement(20, 0, 1),
	} {
		all = append(all, pb.HandleEvent(input.DownEvent{Element: el})...)
	}
	all = append(all, pb.HandleEvent(input.UpEvent{Element: input.NewElement(25, 0, 1)})...)

	for i := 1; i < len(all); i++ {
		if all[i].Start != all[i-1].End {
			t.Errorf("segment %d starts at %+v, previous ended at %+v", i, all[i].Start, all[i-1].End)
		}
	}
	if len(all) == 0 {
		t.Fatal("no segments emitted")
	}
	if all[0].Start.Pos != (input.NewElement(0, 0, 1)).Pos {
		t.Errorf("path does not start at the anchor: %+v", all[0].Start)
	}
	last := all[len(all)-1]
	if last.End.Pos != (input.NewElement(25, 0, 1)).Pos {
		t.Errorf("path does not end at the lift point: %+v", last.End)
	}
}

func TestNoEmissionBeforeNeighborhood(t *testing.T) {
	pb := Start(input.NewElement(0, 0, 1))
	if segs := pb.HandleEvent(input.DownEvent{Element: input.NewElement(1, 1, 1)}); segs != nil {
		t.Errorf("expected no segments after second sample, got %d", len(segs))
	}
}

func TestProximityAndCancelEmitNothing(t *testing.T) {
	pb := Start(input.NewElement(0, 0, 1))
	pb.HandleEvent(input.DownEvent{Element: input.NewElement(10, 10, 1)})
	if segs := pb.HandleEvent(input.ProximityEvent{Element: input.NewElement(11, 11, 1)}); segs != nil {
		t.Errorf("proximity emitted %d segments", len(segs))
	}
	if segs := pb.HandleEvent(input.CancelEvent{}); segs != nil {
		t.Errorf("cancel emitted %d segments", len(segs))
	}
}

func TestComposedBoundsCoverSamples(t *testing.T) {
	pb := Start(input.NewElement(0, 0, 1))
	pb.HandleEvent(input.DownEvent{Element: input.NewElement(100, 40, 1)})
	pb.HandleEvent(input.DownEvent{Element: input.NewElement(-20, 80, 1)})

	st := style.NewSmoothStyle(style.SmoothOptions{Width: 10, Color: style.Black})
	b := pb.ComposedBounds(st)
	for _, p := range []struct{ x, y float64 }{{0, 0}, {100, 40}, {-20, 80}} {
		if p.x < b.MinX || p.x > b.MaxX || p.y < b.MinY || p.y > b.MaxY {
			t.Errorf("bounds %+v do not cover sample (%v,%v)", b, p.x, p.y)
		}
	}
	// Half the width of padding on each side.
	if b.MinX > -25 || b.MaxX < 105 {
		t.Errorf("bounds %+v not loosened by half width", b)
	}
}
