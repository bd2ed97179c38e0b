package playback

import (
	"fmt"

	"github.com/san-kum/sortviz/internal/sorting"
)

// Phase is the externally visible state of a Player.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseStopped
	PhaseRunning
	PhasePaused
	PhaseComplete
)

var phaseNames = [...]string{"idle", "stopped", "running", "paused", "complete"}

func (p Phase) String() string {
	if p >= 0 && int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// Player is the playback state machine for a single algorithm.
type Player struct {
	running bool
	paused  bool
	current int
	trace   sorting.Trace
	stats   sorting.Stats
}

// Load installs a freshly generated trace and stops at its first snapshot.
func (p *Player) Load(trace sorting.Trace, stats sorting.Stats) {
	p.trace = trace
	p.stats = stats
	p.current = 0
	p.running = false
	p.paused = false
}

func (p *Player) HasTrace() bool { return len(p.trace) > 0 }

// Start resumes or begins auto-advance. A complete trace is rewound so it
// replays from the beginning. Start is a no-op without a trace.
func (p *Player) Start() bool {
	if !p.HasTrace() {
		return false
	}
	if p.atEnd() {
		p.current = 0
	}
	p.running = true
	p.paused = false
	return true
}

// Pause halts auto-advance and keeps the cursor where it is.
func (p *Player) Pause() {
	p.running = false
	p.paused = true
}

// Reset discards the trace and returns to Idle.
func (p *Player) Reset() {
	*p = Player{}
}

// StepForward moves the cursor one snapshot ahead. It reports false at the
// last snapshot.
func (p *Player) StepForward() bool {
	if p.current >= len(p.trace)-1 {
		return false
	}
	p.current++
	return true
}

// StepBackward moves the cursor one snapshot back. It reports false at 0.
func (p *Player) StepBackward() bool {
	if p.current <= 0 {
		return false
	}
	p.current--
	return true
}

// Advance performs one clock tick. While running it steps forward; the first
// tick that finds the trace exhausted stops the player. It reports whether
// the player is still running afterwards.
func (p *Player) Advance() bool {
	if !p.running || p.paused {
		return false
	}
	if !p.StepForward() {
		p.running = false
		return false
	}
	return true
}

func (p *Player) atEnd() bool { return len(p.trace) > 0 && p.current == len(p.trace)-1 }

func (p *Player) Phase() Phase {
	switch {
	case !p.HasTrace():
		return PhaseIdle
	case p.running:
		return PhaseRunning
	case p.paused:
		return PhasePaused
	case p.atEnd():
		return PhaseComplete
	default:
		return PhaseStopped
	}
}

// Current returns the snapshot under the cursor, or a zero Snapshot when idle.
func (p *Player) Current() sorting.Snapshot {
	if !p.HasTrace() {
		return sorting.Snapshot{}
	}
	return p.trace[p.current]
}

// Position returns the zero-based cursor and the trace length.
func (p *Player) Position() (step, total int) { return p.current, len(p.trace) }

func (p *Player) Stats() sorting.Stats { return p.stats }

func (p *Player) Running() bool { return p.running }

func (p *Player) Paused() bool { return p.paused }
