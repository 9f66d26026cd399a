package ui

import (
	"testing"

	"inkboard/internal/pen"
	"inkboard/internal/sheet"
	"inkboard/internal/store"
)

func testSurface(t *testing.T) *Surface {
	t.Helper()
	st := store.New(nil)
	t.Cleanup(st.Close)
	return NewSurface(pen.NewBrush(nil), sheet.New(1000, 1000), st, sheet.NewCamera(), nil, nil)
}

func TestConsumeFlagsForwardsHideScrollbars(t *testing.T) {
	s := testSurface(t)

	var got []bool
	s.OnHideScrollbars = func(hidden bool) { got = append(got, hidden) }

	hide := true
	s.flags.MergeWith(pen.SurfaceFlags{HideScrollbars: &hide})
	s.consumeFlags()

	if len(got) != 1 || !got[0] {
		t.Fatalf("OnHideScrollbars calls = %v, want [true]", got)
	}
	if s.flags.HideScrollbars != nil {
		t.Error("flags not reset after consume")
	}

	// Consuming again with nothing pending must not fire the hook.
	s.consumeFlags()
	if len(got) != 1 {
		t.Errorf("OnHideScrollbars calls = %v, want exactly one", got)
	}
}

func TestConsumeFlagsWithoutHookIsSafe(t *testing.T) {
	s := testSurface(t)

	hide := false
	s.flags.MergeWith(pen.SurfaceFlags{HideScrollbars: &hide})
	s.consumeFlags()
}
