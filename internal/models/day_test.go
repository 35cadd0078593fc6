// ABOUTME: Tests for DayRecord and PracticeEntry.
// ABOUTME: Covers accumulator math, entry removal order, and divergence.
package models

import (
	"testing"
)

func TestNewDayRecord(t *testing.T) {
	d := NewDayRecord("2025-03-01")

	if d.Date != "2025-03-01" {
		t.Errorf("Date = %s, want 2025-03-01", d.Date)
	}
	for _, task := range AllTasks {
		if d.MinutesFor(task) != 0 {
			t.Errorf("MinutesFor(%s) = %f, want 0", task, d.MinutesFor(task))
		}
	}
	if len(d.Entries) != 0 {
		t.Errorf("expected empty entry list, got %d entries", len(d.Entries))
	}
	if d.HasActivity() {
		t.Error("fresh record should have no activity")
	}
}

func TestNewPracticeEntry(t *testing.T) {
	e := NewPracticeEntry(TaskPiano, 30, "Hanon")

	if e.ID.String() == "" {
		t.Error("expected UUID to be set")
	}
	if e.Task != TaskPiano {
		t.Errorf("Task = %s, want piano", e.Task)
	}
	if e.Minutes != 30 {
		t.Errorf("Minutes = %f, want 30", e.Minutes)
	}
	if e.Title != "Hanon" {
		t.Errorf("Title = %q, want Hanon", e.Title)
	}
	if e.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
}

func TestEntryMinutesRounding(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{30, 30},
		{1.55, 1.6},
		{1.54, 1.5},
		{0.04, 0},
		{12.25, 12.3},
	}

	for _, tt := range tests {
		if got := RoundMinutes(tt.in); got != tt.want {
			t.Errorf("RoundMinutes(%f) = %f, want %f", tt.in, got, tt.want)
		}
	}
}

func TestAddEntryAccumulates(t *testing.T) {
	d := NewDayRecord("2025-03-01")
	d.AddEntry(NewPracticeEntry(TaskPiano, 10, ""))
	d.AddEntry(NewPracticeEntry(TaskPiano, 20.5, ""))
	d.AddEntry(NewPracticeEntry(TaskVocal, 15, ""))

	if got := d.MinutesFor(TaskPiano); got != 30.5 {
		t.Errorf("piano minutes = %f, want 30.5", got)
	}
	if got := d.MinutesFor(TaskVocal); got != 15 {
		t.Errorf("vocal minutes = %f, want 15", got)
	}
	if got := d.TotalMinutes(); got != 45.5 {
		t.Errorf("total minutes = %f, want 45.5", got)
	}
	if len(d.Entries) != 3 {
		t.Errorf("expected 3 entries, got %d", len(d.Entries))
	}
}

func TestRemoveLastMatchesAccumulator(t *testing.T) {
	// Adding three 10-minute piano entries then removing one leaves the
	// accumulator at 20 with exactly the two oldest entries remaining.
	d := NewDayRecord("2025-03-01")
	first := NewPracticeEntry(TaskPiano, 10, "scales")
	second := NewPracticeEntry(TaskPiano, 10, "etude")
	third := NewPracticeEntry(TaskPiano, 10, "repertoire")
	d.AddEntry(first)
	d.AddEntry(second)
	d.AddEntry(third)

	removed := d.RemoveLast(TaskPiano, 10)

	if removed != 10 {
		t.Errorf("removed = %f, want 10", removed)
	}
	if got := d.MinutesFor(TaskPiano); got != 20 {
		t.Errorf("piano minutes = %f, want 20", got)
	}
	if len(d.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(d.Entries))
	}
	if d.Entries[0].ID != first.ID || d.Entries[1].ID != second.ID {
		t.Error("expected the most recently added entry to be removed")
	}
}

func TestRemoveLastClampsAtZero(t *testing.T) {
	d := NewDayRecord("2025-03-01")
	d.AddEntry(NewPracticeEntry(TaskStudy, 5, ""))

	removed := d.RemoveLast(TaskStudy, 30)

	if removed != 5 {
		t.Errorf("removed = %f, want 5", removed)
	}
	if got := d.MinutesFor(TaskStudy); got != 0 {
		t.Errorf("study minutes = %f, want 0", got)
	}
}

func TestRemoveLastWithoutMatchingEntry(t *testing.T) {
	// Accumulator and entry list may diverge: removing when no entry of
	// that task exists still decrements the accumulator.
	d := NewDayRecord("2025-03-01")
	d.Minutes[TaskVocal] = 25
	d.AddEntry(NewPracticeEntry(TaskPiano, 10, ""))

	removed := d.RemoveLast(TaskVocal, 10)

	if removed != 10 {
		t.Errorf("removed = %f, want 10", removed)
	}
	if got := d.MinutesFor(TaskVocal); got != 15 {
		t.Errorf("vocal minutes = %f, want 15", got)
	}
	if len(d.Entries) != 1 {
		t.Errorf("piano entry should be untouched, got %d entries", len(d.Entries))
	}
}

func TestRemoveLastOnlyRemovesMatchingTask(t *testing.T) {
	d := NewDayRecord("2025-03-01")
	d.AddEntry(NewPracticeEntry(TaskPiano, 10, ""))
	d.AddEntry(NewPracticeEntry(TaskVocal, 20, ""))

	d.RemoveLast(TaskPiano, 10)

	if len(d.Entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(d.Entries))
	}
	if d.Entries[0].Task != TaskVocal {
		t.Errorf("remaining entry task = %s, want vocal", d.Entries[0].Task)
	}
}
