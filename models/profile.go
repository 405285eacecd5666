package models

// Profile holds the single user's body stats and preferences. Stored as one
// JSON blob under its own storage key, independent of the daily ledger.
type Profile struct {
	HeightCm  float64 `json:"height_cm"`
	WeightKg  float64 `json:"weight_kg"`
	AgeYears  int     `json:"age_years"`
	Sex       string  `json:"sex"` // "male" | "female"
	DailyGoal float64 `json:"daily_goal"`
}
