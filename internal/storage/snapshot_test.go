// ABOUTME: Tests for the snapshot wire codec.
// ABOUTME: Pins the persisted JSON field names and the malformed-data fallback.
package storage

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harperreed/practice/internal/models"
)

func TestDaysRoundTrip(t *testing.T) {
	day := models.NewDayRecord("2025-03-01")
	e := models.NewPracticeEntry(models.TaskPiano, 30, "Chopin op.10")
	e.WithCreatedAt(time.UnixMilli(1740800000000))
	day.AddEntry(e)
	day.AddEntry(models.NewPracticeEntry(models.TaskVocal, 15.5, ""))

	data, err := EncodeDays(map[string]*models.DayRecord{"2025-03-01": day})
	require.NoError(t, err)

	decoded := DecodeDays(data)
	require.Len(t, decoded, 1)

	got := decoded["2025-03-01"]
	require.NotNil(t, got)
	assert.Equal(t, "2025-03-01", got.Date)
	assert.Equal(t, 30.0, got.MinutesFor(models.TaskPiano))
	assert.Equal(t, 15.5, got.MinutesFor(models.TaskVocal))
	assert.Equal(t, 0.0, got.MinutesFor(models.TaskStudy))
	require.Len(t, got.Entries, 2)
	assert.Equal(t, e.ID, got.Entries[0].ID)
	assert.Equal(t, "Chopin op.10", got.Entries[0].Title)
	assert.Equal(t, int64(1740800000000), got.Entries[0].CreatedAt.UnixMilli())
}

func TestDaysWireFieldNames(t *testing.T) {
	day := models.NewDayRecord("2025-03-01")
	day.AddEntry(models.NewPracticeEntry(models.TaskConducting, 20, "Brahms 4"))

	data, err := EncodeDays(map[string]*models.DayRecord{"2025-03-01": day})
	require.NoError(t, err)

	var raw map[string]map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))

	snap := raw["2025-03-01"]
	for _, field := range []string{"date", "piano", "solfege", "study", "vocal", "conducting", "details"} {
		assert.Contains(t, snap, field)
	}

	var details []map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(snap["details"], &details))
	require.Len(t, details, 1)
	for _, field := range []string{"type", "title", "mins", "id", "at"} {
		assert.Contains(t, details[0], field)
	}
}

func TestLedgerWireFieldNames(t *testing.T) {
	l := models.NewLedger()
	l.Basic = models.TrackState{XP: 45, Level: 3}

	data, err := EncodeLedger(l)
	require.NoError(t, err)

	var raw map[string]json.Number
	require.NoError(t, json.Unmarshal(data, &raw))
	for _, field := range []string{"basicXp", "basicLv", "vocalXp", "vocalLv", "condXp", "condLv"} {
		assert.Contains(t, raw, field)
	}
	assert.Equal(t, "45", raw["basicXp"].String())
	assert.Equal(t, "3", raw["basicLv"].String())
}

func TestLedgerRoundTrip(t *testing.T) {
	l := models.NewLedger()
	l.Basic = models.TrackState{XP: 12.5, Level: 2}
	l.Vocal = models.TrackState{XP: 99, Level: 1}
	l.Conducting = models.TrackState{XP: 0, Level: 5}

	data, err := EncodeLedger(l)
	require.NoError(t, err)

	got := DecodeLedger(data)
	assert.Equal(t, l.Basic, got.Basic)
	assert.Equal(t, l.Vocal, got.Vocal)
	assert.Equal(t, l.Conducting, got.Conducting)
}

func TestDecodeMalformedYieldsFreshState(t *testing.T) {
	days := DecodeDays([]byte("not json at all"))
	assert.Empty(t, days)

	l := DecodeLedger([]byte("{broken"))
	for _, track := range models.AllTracks {
		s := l.State(track)
		assert.Equal(t, models.TrackState{XP: 0, Level: 1}, s, "track %s", track)
	}
}

func TestDecodeAbsentYieldsFreshState(t *testing.T) {
	assert.Empty(t, DecodeDays(nil))

	l := DecodeLedger(nil)
	assert.Equal(t, 1, l.Basic.Level)
	assert.Equal(t, 0.0, l.Basic.XP)
}

func TestDecodeClampsOutOfRangeLedger(t *testing.T) {
	got := DecodeLedger([]byte(`{"basicXp":-20,"basicLv":0,"vocalXp":5,"vocalLv":2,"condXp":0,"condLv":1}`))

	assert.Equal(t, models.TrackState{XP: 0, Level: 1}, got.Basic)
	assert.Equal(t, models.TrackState{XP: 5, Level: 2}, got.Vocal)
}

func TestDecodeDropsUnknownTaskEntries(t *testing.T) {
	data := []byte(`{"2025-03-01":{"date":"2025-03-01","piano":10,"solfege":0,"study":0,"vocal":0,"conducting":0,"details":[{"type":"juggling","mins":10,"id":"x","at":0},{"type":"piano","mins":10,"id":"not-a-uuid","at":0}]}}`)

	days := DecodeDays(data)
	require.Len(t, days, 1)

	d := days["2025-03-01"]
	require.Len(t, d.Entries, 1)
	assert.Equal(t, models.TaskPiano, d.Entries[0].Task)
	// Unparseable id gets replaced so the entry survives.
	assert.NotEqual(t, "", d.Entries[0].ID.String())
	// Accumulator is authoritative regardless of what details decoded.
	assert.Equal(t, 10.0, d.MinutesFor(models.TaskPiano))
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := NewMemoryStore()

	days, err := s.LoadDays()
	require.NoError(t, err)
	assert.Empty(t, days)

	day := models.NewDayRecord("2025-03-01")
	day.AddEntry(models.NewPracticeEntry(models.TaskStudy, 25, ""))
	require.NoError(t, s.SaveDays(map[string]*models.DayRecord{"2025-03-01": day}))

	l := models.NewLedger()
	l.ApplyMinutes(models.TrackBasic, 25)
	require.NoError(t, s.SaveLedger(l))

	gotDays, err := s.LoadDays()
	require.NoError(t, err)
	require.Len(t, gotDays, 1)
	assert.Equal(t, 25.0, gotDays["2025-03-01"].MinutesFor(models.TaskStudy))

	gotLedger, err := s.LoadLedger()
	require.NoError(t, err)
	assert.Equal(t, 25.0, gotLedger.Basic.XP)
	assert.Equal(t, 1, s.Saves())
}
