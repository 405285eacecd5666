package models

// CatalogFood is a static catalog entry with per-portion nutrition facts.
type CatalogFood struct {
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Portion  string  `json:"portion"`
}

// CatalogActivity is a static catalog entry with an energy burn rate.
type CatalogActivity struct {
	Name              string  `json:"name"`
	CaloriesPerMinute float64 `json:"calories_per_minute"`
}

// QuickSuggestion is a time-of-day food or drink recommendation.
type QuickSuggestion struct {
	Name        string `json:"name"`
	Kind        string `json:"kind"` // "food" | "liquid"
	PrepMinutes int    `json:"prep_minutes"`
	Benefit     string `json:"benefit"`
}
