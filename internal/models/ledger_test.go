// ABOUTME: Tests for the experience/level ledger.
// ABOUTME: Covers level boundaries, floor clamp, and invertibility.
package models

import (
	"testing"
)

func TestNewLedger(t *testing.T) {
	l := NewLedger()
	for _, track := range AllTracks {
		s := l.State(track)
		if s.Level != 1 || s.XP != 0 {
			t.Errorf("track %s = {xp:%f lv:%d}, want {xp:0 lv:1}", track, s.XP, s.Level)
		}
	}
}

func TestRequirementFor(t *testing.T) {
	tests := []struct {
		level int
		want  float64
	}{
		{1, 100},
		{2, 200},
		{7, 700},
	}
	for _, tt := range tests {
		if got := RequirementFor(tt.level); got != tt.want {
			t.Errorf("RequirementFor(%d) = %f, want %f", tt.level, got, tt.want)
		}
	}
}

func TestLevelUpBoundary(t *testing.T) {
	l := NewLedger()
	l.Basic = TrackState{XP: 90, Level: 1}

	l.ApplyMinutes(TrackBasic, 15)

	s := l.State(TrackBasic)
	if s.XP != 5 || s.Level != 2 {
		t.Errorf("got {xp:%f lv:%d}, want {xp:5 lv:2}", s.XP, s.Level)
	}
}

func TestLevelDownBoundary(t *testing.T) {
	l := NewLedger()
	l.Basic = TrackState{XP: 5, Level: 2}

	l.ApplyMinutes(TrackBasic, -15)

	s := l.State(TrackBasic)
	if s.XP != 90 || s.Level != 1 {
		t.Errorf("got {xp:%f lv:%d}, want {xp:90 lv:1}", s.XP, s.Level)
	}
}

func TestFloorClamp(t *testing.T) {
	l := NewLedger()

	l.ApplyMinutes(TrackVocal, -50)

	s := l.State(TrackVocal)
	if s.XP != 0 || s.Level != 1 {
		t.Errorf("got {xp:%f lv:%d}, want {xp:0 lv:1}", s.XP, s.Level)
	}
}

func TestMultiLevelJump(t *testing.T) {
	// 350 minutes from scratch: clears level 1 (100) and level 2 (200),
	// leaving 50 toward level 3.
	l := NewLedger()

	l.ApplyMinutes(TrackBasic, 350)

	s := l.State(TrackBasic)
	if s.XP != 50 || s.Level != 3 {
		t.Errorf("got {xp:%f lv:%d}, want {xp:50 lv:3}", s.XP, s.Level)
	}
}

func TestMultiLevelDrop(t *testing.T) {
	l := NewLedger()
	l.Conducting = TrackState{XP: 50, Level: 3}

	l.ApplyMinutes(TrackConducting, -350)

	s := l.State(TrackConducting)
	if s.XP != 0 || s.Level != 1 {
		t.Errorf("got {xp:%f lv:%d}, want {xp:0 lv:1}", s.XP, s.Level)
	}
}

func TestApplyMinutesInvertible(t *testing.T) {
	tests := []struct {
		name  string
		start TrackState
		delta float64
	}{
		{"no level change", TrackState{XP: 40, Level: 1}, 30},
		{"single level up", TrackState{XP: 90, Level: 1}, 15},
		{"multiple levels up", TrackState{XP: 0, Level: 1}, 450},
		{"fractional minutes", TrackState{XP: 99.5, Level: 2}, 120.7},
		{"zero delta", TrackState{XP: 10, Level: 4}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLedger()
			l.Basic = tt.start

			l.ApplyMinutes(TrackBasic, tt.delta)
			l.ApplyMinutes(TrackBasic, -tt.delta)

			s := l.State(TrackBasic)
			if s.XP != tt.start.XP || s.Level != tt.start.Level {
				t.Errorf("got {xp:%f lv:%d}, want {xp:%f lv:%d}",
					s.XP, s.Level, tt.start.XP, tt.start.Level)
			}
		})
	}
}

func TestTracksAreIndependent(t *testing.T) {
	l := NewLedger()

	l.ApplyMinutes(TrackBasic, 120)

	if s := l.State(TrackVocal); s.XP != 0 || s.Level != 1 {
		t.Errorf("vocal track moved: {xp:%f lv:%d}", s.XP, s.Level)
	}
	if s := l.State(TrackConducting); s.XP != 0 || s.Level != 1 {
		t.Errorf("conducting track moved: {xp:%f lv:%d}", s.XP, s.Level)
	}
	if s := l.State(TrackBasic); s.XP != 20 || s.Level != 2 {
		t.Errorf("basic track = {xp:%f lv:%d}, want {xp:20 lv:2}", s.XP, s.Level)
	}
}

func TestLedgerReset(t *testing.T) {
	l := NewLedger()
	l.ApplyMinutes(TrackBasic, 250)
	l.ApplyMinutes(TrackVocal, 80)

	l.Reset()

	for _, track := range AllTracks {
		s := l.State(track)
		if s.XP != 0 || s.Level != 1 {
			t.Errorf("track %s after reset = {xp:%f lv:%d}", track, s.XP, s.Level)
		}
	}
}
