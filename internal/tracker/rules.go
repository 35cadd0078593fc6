// ABOUTME: Completion rules for a practice day.
// ABOUTME: Daily tasks are required every day; alternate tasks every two days.
package tracker

import (
	"github.com/harperreed/practice/internal/models"
)

// DayStatus classifies a day for calendar coloring.
type DayStatus int

const (
	// StatusEmpty: nothing logged.
	StatusEmpty DayStatus = iota
	// StatusPartial: something logged but the requirements not met.
	StatusPartial
	// StatusDone: every requirement satisfied.
	StatusDone
)

// IsDailyDone reports whether every daily task (piano, solfege, study)
// has minutes logged. A nil day counts as not done.
func IsDailyDone(day *models.DayRecord) bool {
	if day == nil {
		return false
	}
	for _, task := range models.DailyTasks {
		if day.MinutesFor(task) <= 0 {
			return false
		}
	}
	return true
}

// IsAlternateDone reports whether the alternate requirement (vocal or
// conducting) holds for the day or for the previous day. An absent
// previous day is treated the same as an empty one.
func IsAlternateDone(day, prev *models.DayRecord) bool {
	return altPracticed(day) || altPracticed(prev)
}

func altPracticed(day *models.DayRecord) bool {
	if day == nil {
		return false
	}
	for _, task := range models.AlternateTasks {
		if day.MinutesFor(task) > 0 {
			return true
		}
	}
	return false
}

// IsFullyDone reports whether both the daily and alternate requirements
// are satisfied.
func IsFullyDone(day, prev *models.DayRecord) bool {
	return IsDailyDone(day) && IsAlternateDone(day, prev)
}

// StatusOf classifies a day: done beats partial beats empty.
func StatusOf(day, prev *models.DayRecord) DayStatus {
	if day == nil {
		return StatusEmpty
	}
	if IsFullyDone(day, prev) {
		return StatusDone
	}
	if day.HasActivity() {
		return StatusPartial
	}
	return StatusEmpty
}
