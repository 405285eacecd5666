package services

import (
	"math"
	"time"
)

// AnalyticsService derives multi-day trends from the per-day ledger
// records. It only reads; all its numbers come from records the Tracker
// already keeps consistent.
type AnalyticsService struct {
	tracker *Tracker
}

func NewAnalyticsService(t *Tracker) *AnalyticsService {
	return &AnalyticsService{tracker: t}
}

// DayStat is one day's ledger reduced to the trend view. Logged is false
// for days with no stored record (nothing was tracked).
type DayStat struct {
	Date     string  `json:"date"`
	Consumed float64 `json:"consumed"`
	Burned   float64 `json:"burned"`
	Goal     float64 `json:"goal"`
	Net      float64 `json:"net"`
	Logged   bool    `json:"logged"`
}

// AnalyticsSummary covers a trailing window ending today.
type AnalyticsSummary struct {
	Range struct {
		From string `json:"from"`
		To   string `json:"to"`
	} `json:"range"`

	Days []DayStat `json:"days"` // oldest first

	AvgConsumed float64 `json:"avg_consumed"`
	AvgBurned   float64 `json:"avg_burned"`
	AvgNet      float64 `json:"avg_net"`
	DaysLogged  int     `json:"days_logged"`
	DaysOnGoal  int     `json:"days_on_goal"` // logged days with consumed <= goal
}

// Overview summarizes the last n days (today included). Averages are over
// logged days only; a window with nothing logged returns zeros.
func (s *AnalyticsService) Overview(n int) (*AnalyticsSummary, error) {
	if n <= 0 {
		n = 7
	}

	today, err := time.Parse(dateKeyLayout, s.tracker.CurrentDateKey())
	if err != nil {
		return nil, err
	}

	sum := &AnalyticsSummary{Days: make([]DayStat, 0, n)}
	sum.Range.From = today.AddDate(0, 0, -(n - 1)).Format(dateKeyLayout)
	sum.Range.To = today.Format(dateKeyLayout)

	var consumed, burned float64
	for i := n - 1; i >= 0; i-- {
		key := today.AddDate(0, 0, -i).Format(dateKeyLayout)
		rec, found, err := s.tracker.Record(key)
		if err != nil {
			return nil, err
		}
		day := DayStat{Date: key}
		if found {
			day.Consumed = rec.Consumed
			day.Burned = rec.Burned
			day.Goal = rec.Goal
			day.Net = rec.Consumed - rec.Burned
			day.Logged = true

			consumed += rec.Consumed
			burned += rec.Burned
			sum.DaysLogged++
			if rec.Consumed <= rec.Goal {
				sum.DaysOnGoal++
			}
		}
		sum.Days = append(sum.Days, day)
	}

	if sum.DaysLogged > 0 {
		den := float64(sum.DaysLogged)
		sum.AvgConsumed = round2(consumed / den)
		sum.AvgBurned = round2(burned / den)
		sum.AvgNet = round2((consumed - burned) / den)
	}
	return sum, nil
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
