// ABOUTME: Streak calculation over the recorded day sequence.
// ABOUTME: "Previous day" is the prior record in sorted order, not calendar-yesterday.
package tracker

import (
	"github.com/harperreed/practice/internal/models"
)

// Streak counts consecutive fully-done days walking backward from the
// most recent record. Each day's alternate carryover is judged against
// the record immediately before it in the sorted sequence, so calendar
// gaps compress: a skipped date never breaks the chain by itself. The
// scan stops at the first day that is not fully done.
func Streak(days []*models.DayRecord) int {
	streak := 0
	for i := len(days) - 1; i >= 0; i-- {
		var prev *models.DayRecord
		if i > 0 {
			prev = days[i-1]
		}
		if !IsFullyDone(days[i], prev) {
			break
		}
		streak++
	}
	return streak
}
