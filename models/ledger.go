package models

import "time"

// DefaultDailyGoal is the energy intake target (kcal) a fresh day starts with
// when the user has not configured one.
const DefaultDailyGoal = 2400

// FoodEntry is a single logged food event.
type FoodEntry struct {
	Name     string    `json:"name"`
	Calories float64   `json:"calories"`
	LoggedAt time.Time `json:"logged_at"`
}

// ActivityEntry is a single logged exercise event. Calories is energy
// expended, not consumed.
type ActivityEntry struct {
	Name            string    `json:"name"`
	Calories        float64   `json:"calories"`
	DurationMinutes float64   `json:"duration_minutes"`
	LoggedAt        time.Time `json:"logged_at"`
}

// DailyLedgerRecord aggregates everything logged on one calendar day.
// Consumed and Burned are derived from the entry slices and recomputed on
// every mutation; they are never written independently.
type DailyLedgerRecord struct {
	Date       string          `json:"date"` // YYYY-MM-DD, immutable
	Goal       float64         `json:"goal"`
	Consumed   float64         `json:"consumed"`
	Burned     float64         `json:"burned"`
	Foods      []FoodEntry     `json:"foods"`
	Activities []ActivityEntry `json:"activities"`
}

// NewDailyLedgerRecord returns a zeroed record for the given date key.
func NewDailyLedgerRecord(date string, goal float64) *DailyLedgerRecord {
	return &DailyLedgerRecord{
		Date:       date,
		Goal:       goal,
		Foods:      []FoodEntry{},
		Activities: []ActivityEntry{},
	}
}

// RecomputeTotals rebuilds Consumed and Burned from the entry slices.
func (r *DailyLedgerRecord) RecomputeTotals() {
	var consumed, burned float64
	for _, f := range r.Foods {
		consumed += f.Calories
	}
	for _, a := range r.Activities {
		burned += a.Calories
	}
	r.Consumed = consumed
	r.Burned = burned
}

// Clone returns a deep copy so callers can hand records to subscribers
// without sharing entry slices.
func (r *DailyLedgerRecord) Clone() *DailyLedgerRecord {
	cp := *r
	cp.Foods = append([]FoodEntry{}, r.Foods...)
	cp.Activities = append([]ActivityEntry{}, r.Activities...)
	return &cp
}

// DailyStats is the derived view the UI renders on the home screen.
type DailyStats struct {
	Consumed  float64 `json:"consumed"`
	Burned    float64 `json:"burned"`
	Goal      float64 `json:"goal"`
	Remaining float64 `json:"remaining"` // floored at zero
	Net       float64 `json:"net"`       // consumed - burned, may be negative
}
