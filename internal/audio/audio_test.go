package audio

import "testing"

func TestPlayerCueState(t *testing.T) {
	p := NewPlayer(nil)
	if p.Active() {
		t.Error("new player reports an active cue")
	}

	p.StartRandomBrushSound()
	if !p.Active() {
		t.Error("cue not active after start")
	}

	p.StopRandomBrushSound()
	if p.Active() {
		t.Error("cue still active after stop")
	}

	// Stopping while idle is a no-op.
	p.StopRandomBrushSound()
	if p.Active() {
		t.Error("stop while idle activated the cue")
	}
}

func TestMarkerSoundIsOneShot(t *testing.T) {
	p := NewPlayer(nil)
	p.PlayRandomMarkerSound()
	if p.Active() {
		t.Error("one-shot marker cue must not report as looping")
	}
}
