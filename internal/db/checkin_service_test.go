package db

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balkashynov/wellbeing/internal/models"
)

func newTestStore(t *testing.T) *CheckinStore {
	t.Helper()
	conn, err := Open()
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(conn) })
	return NewCheckinStore(conn)
}

func TestCheckinStore_EmptyOnFreshSession(t *testing.T) {
	store := newTestStore(t)

	all, err := store.All()
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)

	summary, err := store.Summary()
	require.NoError(t, err)
	assert.Equal(t, models.CheckInSummary{}, summary)

	days, err := store.DailyAverages()
	require.NoError(t, err)
	assert.Empty(t, days)
}

func TestCheckinStore_AppendKeepsInsertionOrder(t *testing.T) {
	store := newTestStore(t)
	base := time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)

	c1 := models.CheckIn{Timestamp: base, Mood: 3, Stress: 8, Comment: "rough start"}
	c2 := models.CheckIn{Timestamp: base.Add(time.Hour), Mood: 7, Stress: 4}

	_, err := store.Append(c1)
	require.NoError(t, err)
	n, err := store.Count()
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = store.Append(c2)
	require.NoError(t, err)
	n, err = store.Count()
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	all, err := store.All()
	require.NoError(t, err)
	require.Len(t, all, 2)

	assert.Equal(t, 3, all[0].Mood)
	assert.Equal(t, 8, all[0].Stress)
	assert.Equal(t, "rough start", all[0].Comment)
	assert.Equal(t, base.Unix(), all[0].Timestamp.Unix())

	assert.Equal(t, 7, all[1].Mood)
	assert.Equal(t, 4, all[1].Stress)
	assert.Equal(t, "", all[1].Comment)
}

func TestCheckinStore_AppendDoesNotAlterEarlierEntries(t *testing.T) {
	store := newTestStore(t)
	base := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	_, err := store.Append(models.CheckIn{Timestamp: base, Mood: 5, Stress: 5, Comment: "first"})
	require.NoError(t, err)
	before, err := store.All()
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := store.Append(models.CheckIn{Timestamp: base.Add(time.Duration(i+1) * time.Minute), Mood: 9, Stress: 2})
		require.NoError(t, err)
	}

	after, err := store.All()
	require.NoError(t, err)
	require.Len(t, after, 4)
	assert.Equal(t, before[0].Mood, after[0].Mood)
	assert.Equal(t, before[0].Stress, after[0].Stress)
	assert.Equal(t, before[0].Comment, after[0].Comment)
	assert.Equal(t, before[0].Timestamp.Unix(), after[0].Timestamp.Unix())
}

func TestCheckinStore_DuplicatesAreKept(t *testing.T) {
	store := newTestStore(t)
	c := models.CheckIn{Timestamp: time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC), Mood: 6, Stress: 6}

	_, err := store.Append(c)
	require.NoError(t, err)
	_, err = store.Append(c)
	require.NoError(t, err)

	n, err := store.Count()
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestCheckinStore_TimestampHasSecondPrecision(t *testing.T) {
	store := newTestStore(t)
	ts := time.Date(2026, 3, 2, 9, 0, 12, 987654321, time.UTC)

	stored, err := store.Append(models.CheckIn{Timestamp: ts, Mood: 6, Stress: 3})
	require.NoError(t, err)
	assert.Equal(t, 0, stored.Timestamp.Nanosecond())
	assert.Equal(t, 12, stored.Timestamp.Second())
}

func TestCheckinStore_Summary(t *testing.T) {
	store := newTestStore(t)
	base := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	for i, pair := range [][2]int{{2, 9}, {6, 5}, {7, 1}} {
		_, err := store.Append(models.CheckIn{Timestamp: base.Add(time.Duration(i) * time.Hour), Mood: pair[0], Stress: pair[1]})
		require.NoError(t, err)
	}

	summary, err := store.Summary()
	require.NoError(t, err)
	assert.Equal(t, 3, summary.Count)
	assert.InDelta(t, 5.0, summary.AvgMood, 0.0001)
	assert.InDelta(t, 5.0, summary.AvgStress, 0.0001)
}

func TestCheckinStore_DailyAverages(t *testing.T) {
	store := newTestStore(t)
	day1 := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)

	entries := []models.CheckIn{
		{Timestamp: day2, Mood: 8, Stress: 2},
		{Timestamp: day1, Mood: 4, Stress: 6},
		{Timestamp: day1.Add(3 * time.Hour), Mood: 6, Stress: 8},
	}
	for _, c := range entries {
		_, err := store.Append(c)
		require.NoError(t, err)
	}

	days, err := store.DailyAverages()
	require.NoError(t, err)
	require.Len(t, days, 2)

	assert.Equal(t, 2, days[0].Day.Day())
	assert.Equal(t, 2, days[0].Entries)
	assert.InDelta(t, 5.0, days[0].AvgMood, 0.0001)
	assert.InDelta(t, 7.0, days[0].AvgStress, 0.0001)

	assert.Equal(t, 3, days[1].Day.Day())
	assert.Equal(t, 1, days[1].Entries)
	assert.InDelta(t, 8.0, days[1].AvgMood, 0.0001)
}

func TestOpen_SessionsAreIsolated(t *testing.T) {
	a := newTestStore(t)
	b := newTestStore(t)

	_, err := a.Append(models.CheckIn{Timestamp: time.Now(), Mood: 5, Stress: 5})
	require.NoError(t, err)

	n, err := b.Count()
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}
