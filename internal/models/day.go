// ABOUTME: DayRecord and PracticeEntry models for daily practice logs.
// ABOUTME: The per-task accumulators are authoritative; entries are an audit trail.
package models

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// PracticeEntry is a single logged practice session.
type PracticeEntry struct {
	ID        uuid.UUID
	Task      Task
	Title     string
	Minutes   float64
	CreatedAt time.Time
}

// NewPracticeEntry creates an entry with a generated UUID and current
// timestamp. Minutes are kept to one decimal place.
func NewPracticeEntry(task Task, minutes float64, title string) *PracticeEntry {
	return &PracticeEntry{
		ID:        uuid.New(),
		Task:      task,
		Title:     title,
		Minutes:   RoundMinutes(minutes),
		CreatedAt: time.Now(),
	}
}

// WithCreatedAt sets a custom creation timestamp.
func (e *PracticeEntry) WithCreatedAt(t time.Time) *PracticeEntry {
	e.CreatedAt = t
	return e
}

// RoundMinutes rounds a minutes value to one decimal place.
func RoundMinutes(m float64) float64 {
	return math.Round(m*10) / 10
}

// DayRecord holds everything logged for one calendar day, keyed by the
// canonical YYYY-MM-DD date string.
type DayRecord struct {
	Date    string
	Minutes map[Task]float64
	Entries []*PracticeEntry
}

// NewDayRecord creates an empty record for the given date key with all
// task accumulators at zero.
func NewDayRecord(date string) *DayRecord {
	minutes := make(map[Task]float64, len(AllTasks))
	for _, task := range AllTasks {
		minutes[task] = 0
	}
	return &DayRecord{Date: date, Minutes: minutes}
}

// MinutesFor returns the accumulated minutes for a task.
func (d *DayRecord) MinutesFor(task Task) float64 {
	return d.Minutes[task]
}

// TotalMinutes returns the day's minutes summed across all tasks.
func (d *DayRecord) TotalMinutes() float64 {
	var total float64
	for _, task := range AllTasks {
		total += d.Minutes[task]
	}
	return RoundMinutes(total)
}

// HasActivity reports whether anything at all was logged.
func (d *DayRecord) HasActivity() bool {
	return d.TotalMinutes() > 0
}

// AddEntry appends the entry and adds its minutes to the task accumulator.
func (d *DayRecord) AddEntry(e *PracticeEntry) {
	d.Entries = append(d.Entries, e)
	d.Minutes[e.Task] = RoundMinutes(d.Minutes[e.Task] + e.Minutes)
}

// RemoveLast decrements the task's accumulator by up to minutes, clamping
// at zero, and removes the most recently added entry for that task if one
// exists. The accumulator and entry list may legitimately diverge; the
// accumulator stays authoritative. Returns the minutes actually removed.
func (d *DayRecord) RemoveLast(task Task, minutes float64) float64 {
	removed := RoundMinutes(minutes)
	if removed > d.Minutes[task] {
		removed = d.Minutes[task]
	}
	d.Minutes[task] = RoundMinutes(d.Minutes[task] - removed)

	for i := len(d.Entries) - 1; i >= 0; i-- {
		if d.Entries[i].Task == task {
			d.Entries = append(d.Entries[:i], d.Entries[i+1:]...)
			break
		}
	}
	return removed
}
