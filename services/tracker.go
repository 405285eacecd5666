package services

import (
	"fmt"
	"math"
	"sync"
	"time"

	"fitledger/models"
)

const dateKeyLayout = "2006-01-02"

// DefaultRecentEntries is how many entries the recent-foods/activities views
// show when the caller does not ask for a specific count.
const DefaultRecentEntries = 5

// Tracker owns all mutation of daily ledger records. Every mutating call
// loads the day's record (synthesizing a default if absent), applies the
// change, recomputes the derived totals, persists, and notifies subscribers.
// Reads never persist, so a day with no logged entries leaves no trace in
// storage.
type Tracker struct {
	store *LedgerStore

	mu          sync.Mutex
	now         func() time.Time
	defaultGoal float64

	subMu   sync.Mutex
	subs    map[int]func(*models.DailyLedgerRecord)
	nextSub int
}

func NewTracker(store *LedgerStore) *Tracker {
	return &Tracker{
		store:       store,
		now:         time.Now,
		defaultGoal: models.DefaultDailyGoal,
		subs:        make(map[int]func(*models.DailyLedgerRecord)),
	}
}

// SetClock overrides the wall clock. Tests use it to pin "today" and to
// simulate day rollover.
func (t *Tracker) SetClock(now func() time.Time) {
	t.mu.Lock()
	t.now = now
	t.mu.Unlock()
}

// SetDefaultGoal changes the goal that freshly created day records start
// with. Existing records keep the goal they were saved with.
func (t *Tracker) SetDefaultGoal(goal float64) error {
	if goal <= 0 {
		return &ValidationError{Field: "goal", Reason: "must be positive"}
	}
	t.mu.Lock()
	t.defaultGoal = goal
	t.mu.Unlock()
	return nil
}

// CurrentDateKey returns the local calendar date as the canonical storage
// key. All "today" operations resolve through it.
func (t *Tracker) CurrentDateKey() string {
	t.mu.Lock()
	now := t.now
	t.mu.Unlock()
	return now().Format(dateKeyLayout)
}

// Subscribe registers fn to be called with a copy of the updated record
// after every successful mutation. The returned func unsubscribes; delivery
// is best-effort and at-most-once.
func (t *Tracker) Subscribe(fn func(*models.DailyLedgerRecord)) func() {
	t.subMu.Lock()
	id := t.nextSub
	t.nextSub++
	t.subs[id] = fn
	t.subMu.Unlock()

	return func() {
		t.subMu.Lock()
		delete(t.subs, id)
		t.subMu.Unlock()
	}
}

func (t *Tracker) notify(rec *models.DailyLedgerRecord) {
	t.subMu.Lock()
	fns := make([]func(*models.DailyLedgerRecord), 0, len(t.subs))
	for _, fn := range t.subs {
		fns = append(fns, fn)
	}
	t.subMu.Unlock()

	for _, fn := range fns {
		fn(rec.Clone())
	}
}

// loadOrDefault returns today's record, synthesizing (but not persisting) a
// zeroed default when nothing is stored yet. Caller holds t.mu.
func (t *Tracker) loadOrDefault(dateKey string) (*models.DailyLedgerRecord, error) {
	rec, found, err := t.store.Load(dateKey)
	if err != nil {
		return nil, err
	}
	if !found {
		return models.NewDailyLedgerRecord(dateKey, t.defaultGoal), nil
	}
	return rec, nil
}

// mutateToday runs fn against today's record, recomputes totals, persists,
// and notifies. If the save fails the in-memory change is discarded and the
// error is returned, so the tracker never claims a write it did not make.
func (t *Tracker) mutateToday(fn func(rec *models.DailyLedgerRecord) error) error {
	t.mu.Lock()
	dateKey := t.now().Format(dateKeyLayout)
	rec, err := t.loadOrDefault(dateKey)
	if err != nil {
		t.mu.Unlock()
		return err
	}
	if err := fn(rec); err != nil {
		t.mu.Unlock()
		return err
	}
	rec.RecomputeTotals()
	if err := t.store.Save(dateKey, rec); err != nil {
		t.mu.Unlock()
		return err
	}
	out := rec.Clone()
	t.mu.Unlock()

	t.notify(out)
	return nil
}

// TodayRecord returns a copy of today's record. Absent a stored record it
// returns the unsaved default.
func (t *Tracker) TodayRecord() (*models.DailyLedgerRecord, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	rec, err := t.loadOrDefault(t.now().Format(dateKeyLayout))
	if err != nil {
		return nil, err
	}
	return rec.Clone(), nil
}

// Record returns the stored record for an arbitrary date key, read-only.
// Past days are never synthesized: found is false when nothing was logged.
func (t *Tracker) Record(dateKey string) (*models.DailyLedgerRecord, bool, error) {
	if _, err := time.Parse(dateKeyLayout, dateKey); err != nil {
		return nil, false, &ValidationError{Field: "date", Reason: "must be YYYY-MM-DD"}
	}
	rec, found, err := t.store.Load(dateKey)
	if err != nil || !found {
		return nil, found, err
	}
	return rec.Clone(), true, nil
}

// AddFood appends a food entry to today's record. Two identical calls log
// two entries; each call is a new event, not a dedup.
func (t *Tracker) AddFood(name string, calories float64) error {
	if name == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if calories < 0 || math.IsNaN(calories) {
		return &ValidationError{Field: "calories", Reason: "must be non-negative"}
	}
	return t.mutateToday(func(rec *models.DailyLedgerRecord) error {
		rec.Foods = append(rec.Foods, models.FoodEntry{
			Name:     name,
			Calories: calories,
			LoggedAt: t.now(),
		})
		return nil
	})
}

// AddActivity appends an activity entry to today's record.
func (t *Tracker) AddActivity(name string, calories, durationMinutes float64) error {
	if name == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if calories < 0 || math.IsNaN(calories) {
		return &ValidationError{Field: "calories", Reason: "must be non-negative"}
	}
	if durationMinutes <= 0 || math.IsNaN(durationMinutes) {
		return &ValidationError{Field: "duration_minutes", Reason: "must be positive"}
	}
	return t.mutateToday(func(rec *models.DailyLedgerRecord) error {
		rec.Activities = append(rec.Activities, models.ActivityEntry{
			Name:            name,
			Calories:        calories,
			DurationMinutes: durationMinutes,
			LoggedAt:        t.now(),
		})
		return nil
	})
}

// RemoveFood deletes the food entry at index (in logged order) from today's
// record and recomputes totals.
func (t *Tracker) RemoveFood(index int) error {
	return t.mutateToday(func(rec *models.DailyLedgerRecord) error {
		if index < 0 || index >= len(rec.Foods) {
			return &ValidationError{Field: "index", Reason: fmt.Sprintf("out of range [0,%d)", len(rec.Foods))}
		}
		rec.Foods = append(rec.Foods[:index], rec.Foods[index+1:]...)
		return nil
	})
}

// RemoveActivity deletes the activity entry at index from today's record.
func (t *Tracker) RemoveActivity(index int) error {
	return t.mutateToday(func(rec *models.DailyLedgerRecord) error {
		if index < 0 || index >= len(rec.Activities) {
			return &ValidationError{Field: "index", Reason: fmt.Sprintf("out of range [0,%d)", len(rec.Activities))}
		}
		rec.Activities = append(rec.Activities[:index], rec.Activities[index+1:]...)
		return nil
	})
}

// UpdateGoal changes today's target. It does not carry to future days; a
// cross-day default goes through SetDefaultGoal (fed by the profile).
func (t *Tracker) UpdateGoal(goal float64) error {
	if goal <= 0 || math.IsNaN(goal) {
		return &ValidationError{Field: "goal", Reason: "must be positive"}
	}
	return t.mutateToday(func(rec *models.DailyLedgerRecord) error {
		rec.Goal = goal
		return nil
	})
}

// Stats computes the derived daily view. Remaining is floored at zero so a
// day far over goal reads as "0 left", never negative; net is unclamped.
func (t *Tracker) Stats() (models.DailyStats, error) {
	rec, err := t.TodayRecord()
	if err != nil {
		return models.DailyStats{}, err
	}
	remaining := rec.Goal - rec.Consumed + rec.Burned
	return models.DailyStats{
		Consumed:  rec.Consumed,
		Burned:    rec.Burned,
		Goal:      rec.Goal,
		Remaining: math.Max(0, remaining),
		Net:       rec.Consumed - rec.Burned,
	}, nil
}

// RecentFoods returns the last n food entries in logged order, oldest first.
// n <= 0 means DefaultRecentEntries.
func (t *Tracker) RecentFoods(n int) ([]models.FoodEntry, error) {
	rec, err := t.TodayRecord()
	if err != nil {
		return nil, err
	}
	if n <= 0 {
		n = DefaultRecentEntries
	}
	if len(rec.Foods) > n {
		rec.Foods = rec.Foods[len(rec.Foods)-n:]
	}
	return rec.Foods, nil
}

// RecentActivities mirrors RecentFoods for activity entries.
func (t *Tracker) RecentActivities(n int) ([]models.ActivityEntry, error) {
	rec, err := t.TodayRecord()
	if err != nil {
		return nil, err
	}
	if n <= 0 {
		n = DefaultRecentEntries
	}
	if len(rec.Activities) > n {
		rec.Activities = rec.Activities[len(rec.Activities)-n:]
	}
	return rec.Activities, nil
}

// ResetIfNewDay compares the remembered last-seen date with today and
// updates the marker when the day has rolled over. Records are already
// isolated by their storage keys, so no data moves; the returned flag just
// lets the UI refresh "new day" chrome.
func (t *Tracker) ResetIfNewDay() (bool, error) {
	today := t.CurrentDateKey()
	last, err := t.store.LastSeenDate()
	if err != nil {
		return false, err
	}
	if last == today {
		return false, nil
	}
	if err := t.store.SetLastSeenDate(today); err != nil {
		return false, err
	}
	return true, nil
}
