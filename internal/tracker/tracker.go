// ABOUTME: The progress-accounting engine tying days, ledger, and storage together.
// ABOUTME: Every committed mutation persists both snapshots immediately.
package tracker

import (
	"fmt"
	"sort"

	"github.com/harperreed/practice/internal/dates"
	"github.com/harperreed/practice/internal/models"
	"github.com/harperreed/practice/internal/storage"
)

// Confirmer is a yes/no decision gate invoked before irreversible
// operations. The CLI wires a terminal prompt; tests and MCP inject
// their own.
type Confirmer func(prompt string) bool

// Tracker owns the day store and the experience ledger. It is a
// single-session, single-writer engine: callers do not access it
// concurrently.
type Tracker struct {
	days   map[string]*models.DayRecord
	ledger *models.Ledger
	repo   storage.Repository
	clock  Clock
}

// Load reads both snapshots from the repository and ensures a record
// exists for today. The fresh today record is only persisted on the
// first mutation, so read-only commands work against a read-only store.
func Load(repo storage.Repository, clock Clock) (*Tracker, error) {
	days, err := repo.LoadDays()
	if err != nil {
		return nil, fmt.Errorf("load days: %w", err)
	}
	ledger, err := repo.LoadLedger()
	if err != nil {
		return nil, fmt.Errorf("load ledger: %w", err)
	}

	t := &Tracker{days: days, ledger: ledger, repo: repo, clock: clock}
	t.getOrCreate(t.Today())
	return t, nil
}

// Today returns the current date key.
func (t *Tracker) Today() string {
	return dates.Format(t.clock.Now())
}

// Day returns the record for the date, creating an empty one in memory
// if it does not exist yet.
func (t *Tracker) Day(date string) *models.DayRecord {
	return t.getOrCreate(date)
}

// Recorded returns the stored record for the date, or nil. Unlike Day it
// never creates one.
func (t *Tracker) Recorded(date string) *models.DayRecord {
	return t.days[date]
}

// CalendarPrev returns the record for the calendar day before date, or
// nil if none was ever recorded. Calendar views judge the alternate
// carryover against this, while the streak uses sequence order.
func (t *Tracker) CalendarPrev(date string) *models.DayRecord {
	return t.days[dates.AddDays(date, -1)]
}

// Days returns every recorded day in ascending date order.
func (t *Tracker) Days() []*models.DayRecord {
	keys := make([]string, 0, len(t.days))
	for k := range t.days {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]*models.DayRecord, 0, len(keys))
	for _, k := range keys {
		out = append(out, t.days[k])
	}
	return out
}

// Ledger returns the current experience ledger.
func (t *Tracker) Ledger() *models.Ledger {
	return t.ledger
}

// Streak returns the current run of consecutive fully-done days.
func (t *Tracker) Streak() int {
	return Streak(t.Days())
}

// DayDone reports whether the date satisfies every requirement, judging
// the alternate carryover against the calendar-previous day.
func (t *Tracker) DayDone(date string) bool {
	return IsFullyDone(t.days[date], t.CalendarPrev(date))
}

// DayStatusOn classifies the date for calendar coloring.
func (t *Tracker) DayStatusOn(date string) DayStatus {
	return StatusOf(t.days[date], t.CalendarPrev(date))
}

// AddEntry logs minutes against a task on the given date: it appends a
// practice entry, bumps the task accumulator, credits the task's track
// with the same minutes, and persists. Minutes must already be validated
// positive at the boundary.
func (t *Tracker) AddEntry(date string, task models.Task, minutes float64, title string) (*models.PracticeEntry, error) {
	day := t.getOrCreate(date)

	e := models.NewPracticeEntry(task, minutes, title).WithCreatedAt(t.clock.Now())
	day.AddEntry(e)
	t.ledger.ApplyMinutes(task.TrackFor(), e.Minutes)

	return e, t.persist()
}

// RemoveLast undoes up to minutes of a task on the given date: the
// accumulator is decremented (clamped at zero), the newest matching
// entry is dropped if one exists, and the track gives back exactly the
// minutes actually removed. Persists. Returns the minutes removed.
func (t *Tracker) RemoveLast(date string, task models.Task, minutes float64) (float64, error) {
	day := t.getOrCreate(date)

	removed := day.RemoveLast(task, minutes)
	if removed > 0 {
		t.ledger.ApplyMinutes(task.TrackFor(), -removed)
	}

	return removed, t.persist()
}

// ResetDay rolls a whole day back: each task's logged minutes are
// subtracted from its track, then the record is replaced with a fresh
// empty one. The confirmer gates execution; a declined confirmation is
// not an error. Returns whether the reset ran.
func (t *Tracker) ResetDay(date string, confirm Confirmer) (bool, error) {
	if confirm != nil && !confirm(fmt.Sprintf("Reset all practice logged on %s?", date)) {
		return false, nil
	}

	if day, ok := t.days[date]; ok {
		for _, task := range models.AllTasks {
			if used := day.MinutesFor(task); used > 0 {
				t.ledger.ApplyMinutes(task.TrackFor(), -used)
			}
		}
	}
	t.days[date] = models.NewDayRecord(date)

	if err := t.persist(); err != nil {
		return true, err
	}
	return true, nil
}

// ResetAll wipes everything: the store keeps a single fresh record for
// today and every ledger track returns to level 1. Irreversible.
func (t *Tracker) ResetAll(confirm Confirmer) (bool, error) {
	if confirm != nil && !confirm("Reset ALL practice history and levels?") {
		return false, nil
	}

	today := t.Today()
	t.days = map[string]*models.DayRecord{today: models.NewDayRecord(today)}
	t.ledger.Reset()

	if err := t.persist(); err != nil {
		return true, err
	}
	return true, nil
}

func (t *Tracker) getOrCreate(date string) *models.DayRecord {
	if day, ok := t.days[date]; ok {
		return day
	}
	day := models.NewDayRecord(date)
	t.days[date] = day
	return day
}

func (t *Tracker) persist() error {
	if err := t.repo.SaveDays(t.days); err != nil {
		return fmt.Errorf("persist days: %w", err)
	}
	if err := t.repo.SaveLedger(t.ledger); err != nil {
		return fmt.Errorf("persist ledger: %w", err)
	}
	return nil
}
