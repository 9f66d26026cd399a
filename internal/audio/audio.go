// Package audio provides the pen feedback player. The actual sample
// playback is delegated to the platform; this player tracks cue state so
// the surface can show it and tests can observe it, and logs transitions.
package audio

import (
	"sync"

	"github.com/charmbracelet/log"
)

// Player implements pen.AudioPlayer.
type Player struct {
	mu     sync.Mutex
	active bool
	logger *log.Logger
}

// NewPlayer creates a player. If logger is nil the default logger is used.
func NewPlayer(logger *log.Logger) *Player {
	if logger == nil {
		logger = log.Default()
	}
	return &Player{logger: logger}
}

// PlayRandomMarkerSound fires the one-shot marker cue.
func (p *Player) PlayRandomMarkerSound() {
	p.logger.Debug("audio: marker cue")
}

// StartRandomBrushSound starts the looping brush cue.
func (p *Player) StartRandomBrushSound() {
	p.mu.Lock()
	p.active = true
	p.mu.Unlock()
	p.logger.Debug("audio: brush cue started")
}

// StopRandomBrushSound stops any running cue. Safe to call while idle.
func (p *Player) StopRandomBrushSound() {
	p.mu.Lock()
	was := p.active
	p.active = false
	p.mu.Unlock()
	if was {
		p.logger.Debug("audio: brush cue stopped")
	}
}

// Active reports whether the looping cue is running.
func (p *Player) Active() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.active
}
