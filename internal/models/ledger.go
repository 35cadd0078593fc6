// ABOUTME: Experience/level ledger for the three practice tracks.
// ABOUTME: ApplyMinutes is exactly invertible unless the floor clamp fires.
package models

// TrackState is the experience and level for one track.
// Steady state after normalization: 0 <= XP < RequirementFor(Level).
type TrackState struct {
	XP    float64
	Level int
}

// Ledger holds the per-track experience state.
type Ledger struct {
	Basic      TrackState
	Vocal      TrackState
	Conducting TrackState
}

// NewLedger creates a ledger with every track at level 1, zero experience.
func NewLedger() *Ledger {
	return &Ledger{
		Basic:      TrackState{Level: 1},
		Vocal:      TrackState{Level: 1},
		Conducting: TrackState{Level: 1},
	}
}

// RequirementFor returns the experience needed to clear the given level.
func RequirementFor(level int) float64 {
	return float64(level) * 100
}

// State returns a copy of the track's current state.
func (l *Ledger) State(track Track) TrackState {
	return *l.state(track)
}

func (l *Ledger) state(track Track) *TrackState {
	switch track {
	case TrackVocal:
		return &l.Vocal
	case TrackConducting:
		return &l.Conducting
	default:
		return &l.Basic
	}
}

// ApplyMinutes adds delta minutes of experience to the track, then
// normalizes: level up while XP clears the current requirement, level
// down while XP is negative above level 1, and finally clamp XP at zero.
// Applying +m then -m restores the original state whenever the clamp
// never fires, which the reset operations rely on.
func (l *Ledger) ApplyMinutes(track Track, delta float64) {
	s := l.state(track)
	s.XP += delta

	for s.XP >= RequirementFor(s.Level) {
		s.XP -= RequirementFor(s.Level)
		s.Level++
	}
	for s.XP < 0 && s.Level > 1 {
		s.Level--
		s.XP += RequirementFor(s.Level)
	}
	if s.XP < 0 {
		s.XP = 0
	}
}

// Reset returns every track to level 1, zero experience.
func (l *Ledger) Reset() {
	l.Basic = TrackState{Level: 1}
	l.Vocal = TrackState{Level: 1}
	l.Conducting = TrackState{Level: 1}
}
