// ABOUTME: Tests for daily/alternate completion rules and day status.
// ABOUTME: Absent previous days are treated the same as empty ones.
package tracker

import (
	"testing"

	"github.com/harperreed/practice/internal/models"
)

func dayWith(minutes map[models.Task]float64) *models.DayRecord {
	d := models.NewDayRecord("2025-03-01")
	for task, m := range minutes {
		d.Minutes[task] = m
	}
	return d
}

func TestIsDailyDone(t *testing.T) {
	tests := []struct {
		name    string
		minutes map[models.Task]float64
		want    bool
	}{
		{
			name:    "missing solfege",
			minutes: map[models.Task]float64{models.TaskPiano: 10, models.TaskStudy: 5},
			want:    false,
		},
		{
			name: "all daily tasks done",
			minutes: map[models.Task]float64{
				models.TaskPiano: 10, models.TaskSolfege: 5, models.TaskStudy: 1,
			},
			want: true,
		},
		{
			name:    "nothing logged",
			minutes: nil,
			want:    false,
		},
		{
			name: "alternate tasks do not count toward daily",
			minutes: map[models.Task]float64{
				models.TaskVocal: 60, models.TaskConducting: 60,
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsDailyDone(dayWith(tt.minutes)); got != tt.want {
				t.Errorf("IsDailyDone = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsDailyDoneNilDay(t *testing.T) {
	if IsDailyDone(nil) {
		t.Error("IsDailyDone(nil) = true, want false")
	}
}

func TestIsAlternateDone(t *testing.T) {
	empty := dayWith(nil)
	vocalDay := dayWith(map[models.Task]float64{models.TaskVocal: 20})
	conductingDay := dayWith(map[models.Task]float64{models.TaskConducting: 15})

	tests := []struct {
		name string
		day  *models.DayRecord
		prev *models.DayRecord
		want bool
	}{
		{"vocal today", vocalDay, empty, true},
		{"conducting today", conductingDay, nil, true},
		{"carryover from previous day", empty, vocalDay, true},
		{"nothing either day", empty, empty, false},
		{"absent previous same as empty", empty, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsAlternateDone(tt.day, tt.prev); got != tt.want {
				t.Errorf("IsAlternateDone = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsFullyDone(t *testing.T) {
	fullDay := dayWith(map[models.Task]float64{
		models.TaskPiano: 30, models.TaskSolfege: 10, models.TaskStudy: 20,
		models.TaskVocal: 15,
	})
	dailyOnly := dayWith(map[models.Task]float64{
		models.TaskPiano: 30, models.TaskSolfege: 10, models.TaskStudy: 20,
	})
	vocalPrev := dayWith(map[models.Task]float64{models.TaskVocal: 20})

	if !IsFullyDone(fullDay, nil) {
		t.Error("full day should be fully done")
	}
	if IsFullyDone(dailyOnly, nil) {
		t.Error("daily-only day with empty previous should not be fully done")
	}
	if !IsFullyDone(dailyOnly, vocalPrev) {
		t.Error("daily-only day with alternate carryover should be fully done")
	}
}

func TestStatusOf(t *testing.T) {
	done := dayWith(map[models.Task]float64{
		models.TaskPiano: 1, models.TaskSolfege: 1, models.TaskStudy: 1,
		models.TaskConducting: 1,
	})
	partial := dayWith(map[models.Task]float64{models.TaskPiano: 45})
	empty := dayWith(nil)

	tests := []struct {
		name string
		day  *models.DayRecord
		want DayStatus
	}{
		{"fully done", done, StatusDone},
		{"something but incomplete", partial, StatusPartial},
		{"nothing logged", empty, StatusEmpty},
		{"never recorded", nil, StatusEmpty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StatusOf(tt.day, nil); got != tt.want {
				t.Errorf("StatusOf = %v, want %v", got, tt.want)
			}
		})
	}
}
