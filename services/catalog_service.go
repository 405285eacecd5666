package services

import (
	"strings"

	"fitledger/models"
)

// CatalogService serves the built-in food and activity catalogs the quick-log
// screens are built from. The tables are static; there is no external
// nutrition API behind them.
type CatalogService struct {
	foods      []models.CatalogFood
	activities []models.CatalogActivity
}

var commonFoods = []models.CatalogFood{
	{Name: "Rice (1 cup)", Calories: 205, Protein: 4, Carbs: 45, Fat: 0.5, Portion: "1 cup"},
	{Name: "Roti (1 piece)", Calories: 70, Protein: 3, Carbs: 15, Fat: 0.5, Portion: "1 piece"},
	{Name: "Dal (1 cup)", Calories: 230, Protein: 18, Carbs: 40, Fat: 1, Portion: "1 cup"},
	{Name: "Chicken Curry (1 cup)", Calories: 300, Protein: 25, Carbs: 8, Fat: 18, Portion: "1 cup"},
	{Name: "Paneer (100g)", Calories: 265, Protein: 20, Carbs: 1, Fat: 20, Portion: "100g"},
	{Name: "Yogurt (1 cup)", Calories: 150, Protein: 8, Carbs: 12, Fat: 8, Portion: "1 cup"},
	{Name: "Banana (1 medium)", Calories: 105, Protein: 1, Carbs: 27, Fat: 0.5, Portion: "1 medium"},
	{Name: "Oats (1 cup)", Calories: 150, Protein: 5, Carbs: 27, Fat: 3, Portion: "1 cup"},
	{Name: "Egg (1 large)", Calories: 70, Protein: 6, Carbs: 0.5, Fat: 5, Portion: "1 large"},
	{Name: "Almonds (10 pieces)", Calories: 70, Protein: 3, Carbs: 2, Fat: 6, Portion: "10 pieces"},
}

var commonActivities = []models.CatalogActivity{
	{Name: "Walking", CaloriesPerMinute: 4},
	{Name: "Running", CaloriesPerMinute: 10},
	{Name: "Cycling", CaloriesPerMinute: 8},
	{Name: "Weight Training", CaloriesPerMinute: 6},
	{Name: "Yoga", CaloriesPerMinute: 3},
	{Name: "Swimming", CaloriesPerMinute: 11},
	{Name: "Dancing", CaloriesPerMinute: 5},
	{Name: "Household Work", CaloriesPerMinute: 3},
}

func NewCatalogService() *CatalogService {
	return &CatalogService{foods: commonFoods, activities: commonActivities}
}

// SearchFoods returns catalog foods whose name contains query
// (case-insensitive). An empty query returns the whole catalog.
func (s *CatalogService) SearchFoods(query string) []models.CatalogFood {
	if query == "" {
		return append([]models.CatalogFood{}, s.foods...)
	}
	q := strings.ToLower(query)
	var out []models.CatalogFood
	for _, f := range s.foods {
		if strings.Contains(strings.ToLower(f.Name), q) {
			out = append(out, f)
		}
	}
	return out
}

// SearchActivities mirrors SearchFoods for the activity catalog.
func (s *CatalogService) SearchActivities(query string) []models.CatalogActivity {
	if query == "" {
		return append([]models.CatalogActivity{}, s.activities...)
	}
	q := strings.ToLower(query)
	var out []models.CatalogActivity
	for _, a := range s.activities {
		if strings.Contains(strings.ToLower(a.Name), q) {
			out = append(out, a)
		}
	}
	return out
}

// EstimateActivity returns the energy burned by a catalog activity over the
// given duration. ok is false for unknown activities.
func (s *CatalogService) EstimateActivity(name string, minutes float64) (calories float64, ok bool) {
	if minutes <= 0 {
		return 0, false
	}
	for _, a := range s.activities {
		if strings.EqualFold(a.Name, name) {
			return a.CaloriesPerMinute * minutes, true
		}
	}
	return 0, false
}

var quickSuggestions = map[string][]models.QuickSuggestion{
	"morning": {
		{Name: "Banana & Oats", Kind: "food", PrepMinutes: 5, Benefit: "Quick Energy"},
		{Name: "Greek Yogurt Bowl", Kind: "food", PrepMinutes: 3, Benefit: "Protein Rich"},
		{Name: "Peanut Butter Toast", Kind: "food", PrepMinutes: 4, Benefit: "Sustained Energy"},
		{Name: "Green Tea", Kind: "liquid", PrepMinutes: 2, Benefit: "Antioxidants"},
		{Name: "Lemon Water", Kind: "liquid", PrepMinutes: 1, Benefit: "Hydration"},
		{Name: "Protein Smoothie", Kind: "liquid", PrepMinutes: 5, Benefit: "Recovery"},
	},
	"afternoon": {
		{Name: "Mixed Nuts", Kind: "food", PrepMinutes: 0, Benefit: "Brain Food"},
		{Name: "Apple & Almonds", Kind: "food", PrepMinutes: 1, Benefit: "Natural Sugar"},
		{Name: "Whole Grain Crackers", Kind: "food", PrepMinutes: 2, Benefit: "Fiber Rich"},
		{Name: "Coconut Water", Kind: "liquid", PrepMinutes: 0, Benefit: "Electrolytes"},
		{Name: "Herbal Tea", Kind: "liquid", PrepMinutes: 3, Benefit: "Calm Focus"},
		{Name: "Fresh Juice", Kind: "liquid", PrepMinutes: 2, Benefit: "Vitamins"},
	},
	"evening": {
		{Name: "Dark Chocolate", Kind: "food", PrepMinutes: 0, Benefit: "Mood Boost"},
		{Name: "Berries & Yogurt", Kind: "food", PrepMinutes: 2, Benefit: "Antioxidants"},
		{Name: "Hummus & Veggies", Kind: "food", PrepMinutes: 3, Benefit: "Protein & Fiber"},
		{Name: "Chamomile Tea", Kind: "liquid", PrepMinutes: 5, Benefit: "Relaxation"},
		{Name: "Warm Milk", Kind: "liquid", PrepMinutes: 3, Benefit: "Sleep Aid"},
		{Name: "Tart Cherry Juice", Kind: "liquid", PrepMinutes: 0, Benefit: "Natural Melatonin"},
	},
	"night": {
		{Name: "Handful of Walnuts", Kind: "food", PrepMinutes: 0, Benefit: "Healthy Fats"},
		{Name: "Cottage Cheese", Kind: "food", PrepMinutes: 1, Benefit: "Casein Protein"},
		{Name: "Kiwi Fruit", Kind: "food", PrepMinutes: 2, Benefit: "Sleep Support"},
		{Name: "Golden Milk", Kind: "liquid", PrepMinutes: 5, Benefit: "Anti-inflammatory"},
		{Name: "Peppermint Tea", Kind: "liquid", PrepMinutes: 4, Benefit: "Digestive Aid"},
		{Name: "Water with Magnesium", Kind: "liquid", PrepMinutes: 1, Benefit: "Muscle Relaxation"},
	},
}

// TimeOfDay buckets an hour of day into the suggestion windows.
func TimeOfDay(hour int) string {
	switch {
	case hour >= 5 && hour < 11:
		return "morning"
	case hour >= 11 && hour < 16:
		return "afternoon"
	case hour >= 16 && hour < 19:
		return "evening"
	default:
		return "night"
	}
}

// Suggestions returns the quick food/drink recommendations for the given
// hour of day.
func (s *CatalogService) Suggestions(hour int) (window string, items []models.QuickSuggestion) {
	window = TimeOfDay(hour)
	return window, append([]models.QuickSuggestion{}, quickSuggestions[window]...)
}
