package services

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitledger/models"
	"fitledger/storage"
)

func newTestTracker(t *testing.T) (*Tracker, *storage.MemoryKV) {
	t.Helper()
	kv := storage.NewMemoryKV()
	tracker := NewTracker(NewLedgerStore(kv, slog.Default()))
	base := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	tracker.SetClock(func() time.Time { return base })
	return tracker, kv
}

func TestAddFoodFreshDay(t *testing.T) {
	tracker, _ := newTestTracker(t)

	require.NoError(t, tracker.AddFood("Banana", 105))

	stats, err := tracker.Stats()
	require.NoError(t, err)
	assert.Equal(t, 105.0, stats.Consumed)
	assert.Equal(t, 0.0, stats.Burned)
	assert.Equal(t, 2400.0, stats.Goal)
	assert.Equal(t, 2295.0, stats.Remaining)
	assert.Equal(t, 105.0, stats.Net)
}

func TestFoodAndActivityStats(t *testing.T) {
	tracker, _ := newTestTracker(t)

	require.NoError(t, tracker.AddFood("Rice", 205))
	require.NoError(t, tracker.AddActivity("Running", 300, 30))

	stats, err := tracker.Stats()
	require.NoError(t, err)
	assert.Equal(t, 205.0, stats.Consumed)
	assert.Equal(t, 300.0, stats.Burned)
	assert.Equal(t, -95.0, stats.Net)
	assert.Equal(t, 2495.0, stats.Remaining)
}

func TestUpdateGoalThenAddFood(t *testing.T) {
	tracker, _ := newTestTracker(t)

	require.NoError(t, tracker.UpdateGoal(2000))
	require.NoError(t, tracker.AddFood("Egg", 70))

	stats, err := tracker.Stats()
	require.NoError(t, err)
	assert.Equal(t, 2000.0, stats.Goal)
	assert.Equal(t, 1930.0, stats.Remaining)
}

func TestRemainingFloorsAtZero(t *testing.T) {
	tracker, _ := newTestTracker(t)

	require.NoError(t, tracker.AddFood("Feast", 9000))

	stats, err := tracker.Stats()
	require.NoError(t, err)
	assert.Equal(t, 0.0, stats.Remaining)
	assert.Equal(t, 9000.0, stats.Net)
}

func TestTotalsAlwaysMatchEntries(t *testing.T) {
	tracker, _ := newTestTracker(t)

	foods := []float64{105, 205, 70, 0, 330}
	for _, cal := range foods {
		require.NoError(t, tracker.AddFood("food", cal))

		rec, err := tracker.TodayRecord()
		require.NoError(t, err)
		var sum float64
		for _, f := range rec.Foods {
			sum += f.Calories
		}
		assert.Equal(t, sum, rec.Consumed)
	}

	activities := []float64{120, 45, 300}
	for _, cal := range activities {
		require.NoError(t, tracker.AddActivity("move", cal, 10))

		rec, err := tracker.TodayRecord()
		require.NoError(t, err)
		var sum float64
		for _, a := range rec.Activities {
			sum += a.Calories
		}
		assert.Equal(t, sum, rec.Burned)
	}
}

func TestValidationRejectsBadInput(t *testing.T) {
	tracker, _ := newTestTracker(t)

	require.NoError(t, tracker.AddFood("Rice", 205))

	cases := []error{
		tracker.AddFood("bad", -10),
		tracker.AddFood("", 100),
		tracker.AddActivity("Running", -5, 30),
		tracker.AddActivity("Running", 100, 0),
		tracker.AddActivity("", 100, 30),
		tracker.UpdateGoal(0),
		tracker.UpdateGoal(-100),
		tracker.RemoveFood(5),
		tracker.RemoveFood(-1),
		tracker.RemoveActivity(0),
	}
	for _, err := range cases {
		assert.True(t, IsValidation(err), "expected validation error, got %v", err)
	}

	// record untouched by any of the rejected calls
	rec, err := tracker.TodayRecord()
	require.NoError(t, err)
	assert.Equal(t, 205.0, rec.Consumed)
	assert.Len(t, rec.Foods, 1)
	assert.Empty(t, rec.Activities)
}

func TestDuplicateFoodLogsTwoEntries(t *testing.T) {
	tracker, _ := newTestTracker(t)

	require.NoError(t, tracker.AddFood("Banana", 105))
	require.NoError(t, tracker.AddFood("Banana", 105))

	rec, err := tracker.TodayRecord()
	require.NoError(t, err)
	assert.Len(t, rec.Foods, 2)
	assert.Equal(t, 210.0, rec.Consumed)
}

func TestReadsAreIdempotentAndUnpersisted(t *testing.T) {
	tracker, kv := newTestTracker(t)

	a, err := tracker.TodayRecord()
	require.NoError(t, err)
	b, err := tracker.TodayRecord()
	require.NoError(t, err)
	assert.Equal(t, a, b)

	// a pure read never writes the default record
	_, err = kv.Get("ledger:2025-03-10")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestRecentOrdering(t *testing.T) {
	tracker, _ := newTestTracker(t)

	names := []string{"a", "b", "c", "d", "e", "f", "g"}
	for _, n := range names {
		require.NoError(t, tracker.AddFood(n, 10))
	}

	recent, err := tracker.RecentFoods(0) // default of 5
	require.NoError(t, err)
	require.Len(t, recent, 5)
	assert.Equal(t, "c", recent[0].Name)
	assert.Equal(t, "g", recent[4].Name)

	all, err := tracker.RecentFoods(100)
	require.NoError(t, err)
	assert.Len(t, all, 7)
}

func TestRemoveFoodRecomputes(t *testing.T) {
	tracker, _ := newTestTracker(t)

	require.NoError(t, tracker.AddFood("Rice", 205))
	require.NoError(t, tracker.AddFood("Egg", 70))
	require.NoError(t, tracker.AddFood("Banana", 105))

	require.NoError(t, tracker.RemoveFood(1))

	rec, err := tracker.TodayRecord()
	require.NoError(t, err)
	require.Len(t, rec.Foods, 2)
	assert.Equal(t, "Rice", rec.Foods[0].Name)
	assert.Equal(t, "Banana", rec.Foods[1].Name)
	assert.Equal(t, 310.0, rec.Consumed)
}

func TestDayRolloverIsolation(t *testing.T) {
	tracker, _ := newTestTracker(t)

	require.NoError(t, tracker.AddFood("Rice", 205))
	require.NoError(t, tracker.UpdateGoal(2000))

	rolled, err := tracker.ResetIfNewDay()
	require.NoError(t, err)
	assert.True(t, rolled) // first ever check

	// midnight passes
	next := time.Date(2025, 3, 11, 8, 0, 0, 0, time.UTC)
	tracker.SetClock(func() time.Time { return next })

	rolled, err = tracker.ResetIfNewDay()
	require.NoError(t, err)
	assert.True(t, rolled)

	// new day starts fresh with the default goal, not yesterday's override
	rec, err := tracker.TodayRecord()
	require.NoError(t, err)
	assert.Equal(t, "2025-03-11", rec.Date)
	assert.Equal(t, 0.0, rec.Consumed)
	assert.Equal(t, 2400.0, rec.Goal)
	assert.Empty(t, rec.Foods)

	// yesterday remains retrievable, unmodified
	prev, found, err := tracker.Record("2025-03-10")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 205.0, prev.Consumed)
	assert.Equal(t, 2000.0, prev.Goal)

	// mutating the new day leaves yesterday alone
	require.NoError(t, tracker.AddFood("Oats", 150))
	prev, _, err = tracker.Record("2025-03-10")
	require.NoError(t, err)
	assert.Equal(t, 205.0, prev.Consumed)

	rolled, err = tracker.ResetIfNewDay()
	require.NoError(t, err)
	assert.False(t, rolled) // same day, no change
}

func TestRecordRejectsBadDateKey(t *testing.T) {
	tracker, _ := newTestTracker(t)

	_, _, err := tracker.Record("not-a-date")
	assert.True(t, IsValidation(err))

	_, found, err := tracker.Record("2020-01-01")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestSubscribersNotifiedOnMutation(t *testing.T) {
	tracker, _ := newTestTracker(t)

	var got []*models.DailyLedgerRecord
	unsubscribe := tracker.Subscribe(func(rec *models.DailyLedgerRecord) {
		got = append(got, rec)
	})

	require.NoError(t, tracker.AddFood("Banana", 105))
	require.Len(t, got, 1)
	assert.Equal(t, 105.0, got[0].Consumed)

	// rejected input must not notify
	_ = tracker.AddFood("bad", -1)
	assert.Len(t, got, 1)

	// reads must not notify
	_, _ = tracker.Stats()
	assert.Len(t, got, 1)

	unsubscribe()
	require.NoError(t, tracker.AddFood("Egg", 70))
	assert.Len(t, got, 1)
}

func TestFailedWriteClaimsNothing(t *testing.T) {
	tracker, kv := newTestTracker(t)

	require.NoError(t, tracker.AddFood("Rice", 205))

	notified := 0
	tracker.Subscribe(func(*models.DailyLedgerRecord) { notified++ })

	kv.FailWrites = errors.New("disk full")
	err := tracker.AddFood("Egg", 70)
	require.Error(t, err)
	assert.False(t, IsValidation(err))
	assert.Zero(t, notified)

	// stored state still reflects only the successful write
	kv.FailWrites = nil
	rec, err := tracker.TodayRecord()
	require.NoError(t, err)
	assert.Equal(t, 205.0, rec.Consumed)
	assert.Len(t, rec.Foods, 1)
}

func TestCorruptRecordFailsOpen(t *testing.T) {
	tracker, kv := newTestTracker(t)

	require.NoError(t, kv.Set("ledger:2025-03-10", []byte("{not json")))

	rec, err := tracker.TodayRecord()
	require.NoError(t, err)
	assert.Equal(t, 0.0, rec.Consumed)
	assert.Empty(t, rec.Foods)

	// next mutation overwrites the corrupt blob
	require.NoError(t, tracker.AddFood("Banana", 105))
	rec, err = tracker.TodayRecord()
	require.NoError(t, err)
	assert.Equal(t, 105.0, rec.Consumed)
}

func TestSetDefaultGoalAppliesToFreshDaysOnly(t *testing.T) {
	tracker, _ := newTestTracker(t)

	require.NoError(t, tracker.AddFood("Rice", 205)) // today now persisted with goal 2400
	require.NoError(t, tracker.SetDefaultGoal(1800))

	stats, err := tracker.Stats()
	require.NoError(t, err)
	assert.Equal(t, 2400.0, stats.Goal) // existing record keeps its goal

	next := time.Date(2025, 3, 11, 8, 0, 0, 0, time.UTC)
	tracker.SetClock(func() time.Time { return next })

	rec, err := tracker.TodayRecord()
	require.NoError(t, err)
	assert.Equal(t, 1800.0, rec.Goal)
}
