// ABOUTME: Task, Category, and Track enums for the practice tracker.
// ABOUTME: Defines the fixed five-task, three-track structure.
package models

// Task identifies one of the five practice tasks.
type Task string

const (
	TaskPiano      Task = "piano"
	TaskSolfege    Task = "solfege"
	TaskStudy      Task = "study"
	TaskVocal      Task = "vocal"
	TaskConducting Task = "conducting"
)

// Category determines how often a task is required.
type Category string

const (
	// CategoryDaily tasks must be practiced every day.
	CategoryDaily Category = "daily"
	// CategoryAlternate tasks count if practiced on the current
	// or the immediately preceding recorded day.
	CategoryAlternate Category = "alternate"
)

// Track identifies an experience/level pool. Multiple tasks may feed
// the same track: piano, solfege, and study all feed Basic.
type Track string

const (
	TrackBasic      Track = "basic"
	TrackVocal      Track = "vocal"
	TrackConducting Track = "conducting"
)

// TaskLabels maps tasks to their display names.
var TaskLabels = map[Task]string{
	TaskPiano:      "Piano",
	TaskSolfege:    "Sight-singing",
	TaskStudy:      "Theory study",
	TaskVocal:      "Singing",
	TaskConducting: "Score reading",
}

// TrackLabels maps tracks to their display names.
var TrackLabels = map[Track]string{
	TrackBasic:      "Basic",
	TrackVocal:      "Vocal",
	TrackConducting: "Conducting",
}

// AllTasks lists every task in display order.
var AllTasks = []Task{
	TaskPiano, TaskSolfege, TaskStudy, TaskVocal, TaskConducting,
}

// DailyTasks lists the tasks required every day.
var DailyTasks = []Task{TaskPiano, TaskSolfege, TaskStudy}

// AlternateTasks lists the tasks on the every-other-day rule.
var AlternateTasks = []Task{TaskVocal, TaskConducting}

// AllTracks lists every experience track.
var AllTracks = []Track{TrackBasic, TrackVocal, TrackConducting}

// Category returns the task's requirement category.
func (t Task) Category() Category {
	switch t {
	case TaskVocal, TaskConducting:
		return CategoryAlternate
	default:
		return CategoryDaily
	}
}

// TrackFor returns the experience track the task feeds.
func (t Task) TrackFor() Track {
	switch t {
	case TaskVocal:
		return TrackVocal
	case TaskConducting:
		return TrackConducting
	default:
		return TrackBasic
	}
}

// IsValidTask checks if a string is a valid task key.
func IsValidTask(s string) bool {
	for _, task := range AllTasks {
		if string(task) == s {
			return true
		}
	}
	return false
}
