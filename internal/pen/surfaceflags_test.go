package pen

import "testing"

func boolPtr(v bool) *bool { return &v }

func penPtr(p PenStyle) *PenStyle { return &p }

func TestMergedBooleanOr(t *testing.T) {
	a := SurfaceFlags{Redraw: true, SheetChanged: true}
	b := SurfaceFlags{Quit: true, SheetChanged: true}

	got := a.Merged(b)
	if !got.Redraw || !got.Quit || !got.SheetChanged {
		t.Errorf("Merged() = %+v, want redraw, quit and sheet-changed set", got)
	}
	if got.Resize || got.ResizeToFitStrokes || got.PenChanged || got.SelectionChanged || got.CameraOffsetChanged {
		t.Errorf("Merged() raised flags neither side requested: %+v", got)
	}
}

func TestMergedCommutativeOnBooleans(t *testing.T) {
	a := SurfaceFlags{Redraw: true, Resize: true}
	b := SurfaceFlags{Quit: true, Resize: true, CameraOffsetChanged: true}

	ab := a.Merged(b)
	ba := b.Merged(a)
	if ab.Quit != ba.Quit || ab.Redraw != ba.Redraw || ab.Resize != ba.Resize ||
		ab.CameraOffsetChanged != ba.CameraOffsetChanged {
		t.Errorf("boolean merge not commutative: %+v vs %+v", ab, ba)
	}
}

func TestMergedAssociativeOnBooleans(t *testing.T) {
	a := SurfaceFlags{Redraw: true}
	b := SurfaceFlags{Resize: true}
	c := SurfaceFlags{Quit: true, Redraw: true}

	left := a.Merged(b).Merged(c)
	right := a.Merged(b.Merged(c))
	if left.Quit != right.Quit || left.Redraw != right.Redraw || left.Resize != right.Resize {
		t.Errorf("boolean merge not associative: %+v vs %+v", left, right)
	}
}

func TestMergedOptionalsRightBiased(t *testing.T) {
	tests := []struct {
		name  string
		self  *bool
		other *bool
		want  *bool
	}{
		{"both unset", nil, nil, nil},
		{"self set, other silent", boolPtr(true), nil, boolPtr(true)},
		{"self silent, other set", nil, boolPtr(false), boolPtr(false)},
		{"other overrides", boolPtr(true), boolPtr(false), boolPtr(false)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SurfaceFlags{HideScrollbars: tt.self}.Merged(SurfaceFlags{HideScrollbars: tt.other})
			switch {
			case tt.want == nil && got.HideScrollbars != nil:
				t.Errorf("HideScrollbars = %v, want unset", *got.HideScrollbars)
			case tt.want != nil && got.HideScrollbars == nil:
				t.Errorf("HideScrollbars unset, want %v", *tt.want)
			case tt.want != nil && *got.HideScrollbars != *tt.want:
				t.Errorf("HideScrollbars = %v, want %v", *got.HideScrollbars, *tt.want)
			}
		})
	}
}

func TestMergedExplicitFalseIsNotUnset(t *testing.T) {
	// An explicit "show scrollbars" must survive merging with a silent
	// report, in either order.
	explicit := SurfaceFlags{HideScrollbars: boolPtr(false)}
	silent := SurfaceFlags{}

	if got := explicit.Merged(silent); got.HideScrollbars == nil || *got.HideScrollbars != false {
		t.Error("explicit false collapsed to unset when merged with silent right operand")
	}
	if got := silent.Merged(explicit); got.HideScrollbars == nil || *got.HideScrollbars != false {
		t.Error("explicit false lost when merged into silent left operand")
	}
}

func TestMergedToolSwitch(t *testing.T) {
	a := SurfaceFlags{ChangeToPen: penPtr(PenStyleBrush)}
	b := SurfaceFlags{}

	if got := a.Merged(b); got.ChangeToPen == nil || *got.ChangeToPen != PenStyleBrush {
		t.Error("pending tool switch cleared by silent report")
	}
	if got := b.Merged(a); got.ChangeToPen == nil || *got.ChangeToPen != PenStyleBrush {
		t.Error("incoming tool switch not adopted")
	}

	other := PenStyle("eraser")
	c := SurfaceFlags{ChangeToPen: &other}
	if got := a.Merged(c); got.ChangeToPen == nil || *got.ChangeToPen != other {
		t.Error("right operand's tool switch must win")
	}
	if got := c.Merged(a); got.ChangeToPen == nil || *got.ChangeToPen != PenStyleBrush {
		t.Error("right operand's tool switch must win in the reverse order too")
	}
}

func TestMergeWithMutatesReceiver(t *testing.T) {
	acc := SurfaceFlags{}
	acc.MergeWith(SurfaceFlags{Redraw: true})
	acc.MergeWith(SurfaceFlags{SheetChanged: true})
	if !acc.Redraw || !acc.SheetChanged {
		t.Errorf("accumulator = %+v, want redraw and sheet-changed", acc)
	}
}
