// ABOUTME: JSON wire shape for persisted day and ledger snapshots.
// ABOUTME: Decoding is forgiving; malformed input yields fresh state.
package storage

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/practice/internal/models"
)

// Snapshot key names shared by all KV backends.
const (
	DaysKey   = "days"
	LedgerKey = "ledger"
)

type entrySnapshot struct {
	Type  string  `json:"type"`
	Title string  `json:"title,omitempty"`
	Mins  float64 `json:"mins"`
	ID    string  `json:"id"`
	At    int64   `json:"at"`
}

type daySnapshot struct {
	Date       string          `json:"date"`
	Piano      float64         `json:"piano"`
	Solfege    float64         `json:"solfege"`
	Study      float64         `json:"study"`
	Vocal      float64         `json:"vocal"`
	Conducting float64         `json:"conducting"`
	Details    []entrySnapshot `json:"details"`
}

type ledgerSnapshot struct {
	BasicXP float64 `json:"basicXp"`
	BasicLv int     `json:"basicLv"`
	VocalXP float64 `json:"vocalXp"`
	VocalLv int     `json:"vocalLv"`
	CondXP  float64 `json:"condXp"`
	CondLv  int     `json:"condLv"`
}

// EncodeDays marshals the day store to its persisted JSON form, a mapping
// from date key to day snapshot.
func EncodeDays(days map[string]*models.DayRecord) ([]byte, error) {
	out := make(map[string]daySnapshot, len(days))
	for date, d := range days {
		snap := daySnapshot{
			Date:       d.Date,
			Piano:      d.MinutesFor(models.TaskPiano),
			Solfege:    d.MinutesFor(models.TaskSolfege),
			Study:      d.MinutesFor(models.TaskStudy),
			Vocal:      d.MinutesFor(models.TaskVocal),
			Conducting: d.MinutesFor(models.TaskConducting),
			Details:    make([]entrySnapshot, 0, len(d.Entries)),
		}
		for _, e := range d.Entries {
			snap.Details = append(snap.Details, entrySnapshot{
				Type:  string(e.Task),
				Title: e.Title,
				Mins:  e.Minutes,
				ID:    e.ID.String(),
				At:    e.CreatedAt.UnixMilli(),
			})
		}
		out[date] = snap
	}
	return json.Marshal(out)
}

// DecodeDays unmarshals a persisted day snapshot. Malformed data yields
// an empty store; entries with an unknown task are dropped, and entries
// with an unparseable id get a fresh one so the audit trail survives.
func DecodeDays(data []byte) map[string]*models.DayRecord {
	days := make(map[string]*models.DayRecord)
	if len(data) == 0 {
		return days
	}

	var raw map[string]daySnapshot
	if err := json.Unmarshal(data, &raw); err != nil {
		return make(map[string]*models.DayRecord)
	}

	for date, snap := range raw {
		d := models.NewDayRecord(date)
		d.Minutes[models.TaskPiano] = nonNegative(snap.Piano)
		d.Minutes[models.TaskSolfege] = nonNegative(snap.Solfege)
		d.Minutes[models.TaskStudy] = nonNegative(snap.Study)
		d.Minutes[models.TaskVocal] = nonNegative(snap.Vocal)
		d.Minutes[models.TaskConducting] = nonNegative(snap.Conducting)

		for _, es := range snap.Details {
			if !models.IsValidTask(es.Type) {
				continue
			}
			id, err := uuid.Parse(es.ID)
			if err != nil {
				id = uuid.New()
			}
			d.Entries = append(d.Entries, &models.PracticeEntry{
				ID:        id,
				Task:      models.Task(es.Type),
				Title:     es.Title,
				Minutes:   es.Mins,
				CreatedAt: time.UnixMilli(es.At),
			})
		}
		days[date] = d
	}
	return days
}

// EncodeLedger marshals the ledger to its persisted JSON form.
func EncodeLedger(l *models.Ledger) ([]byte, error) {
	return json.Marshal(ledgerSnapshot{
		BasicXP: l.Basic.XP,
		BasicLv: l.Basic.Level,
		VocalXP: l.Vocal.XP,
		VocalLv: l.Vocal.Level,
		CondXP:  l.Conducting.XP,
		CondLv:  l.Conducting.Level,
	})
}

// DecodeLedger unmarshals a persisted ledger snapshot. Malformed data
// yields a fresh ledger; out-of-range fields are clamped to the minimum.
func DecodeLedger(data []byte) *models.Ledger {
	l := models.NewLedger()
	if len(data) == 0 {
		return l
	}

	var snap ledgerSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return models.NewLedger()
	}

	l.Basic = models.TrackState{XP: nonNegative(snap.BasicXP), Level: minLevel(snap.BasicLv)}
	l.Vocal = models.TrackState{XP: nonNegative(snap.VocalXP), Level: minLevel(snap.VocalLv)}
	l.Conducting = models.TrackState{XP: nonNegative(snap.CondXP), Level: minLevel(snap.CondLv)}
	return l
}

func nonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

func minLevel(lv int) int {
	if lv < 1 {
		return 1
	}
	return lv
}
