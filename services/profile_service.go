package services

import (
	"fitledger/models"
	"fitledger/utils"
)

// ProfileSummary is the profile plus the derived body metrics the profile
// screen shows.
type ProfileSummary struct {
	Profile       models.Profile `json:"profile"`
	BMI           float64        `json:"bmi"`
	BMICategory   string         `json:"bmi_category"`
	BMR           float64        `json:"bmr"`
	SuggestedGoal float64        `json:"suggested_goal"`
}

// ProfileService owns the single stored user profile. It is the only
// collaborator allowed to seed the tracker's cross-day default goal; the
// tracker itself never computes BMR or reads the profile.
type ProfileService struct {
	store   *LedgerStore
	tracker *Tracker
}

func NewProfileService(store *LedgerStore, tracker *Tracker) *ProfileService {
	return &ProfileService{store: store, tracker: tracker}
}

// Get returns the stored profile, or found=false when the user never
// completed setup.
func (s *ProfileService) Get() (*models.Profile, bool, error) {
	return s.store.LoadProfile()
}

// Summary returns the stored profile with BMI/BMR derived. found is false
// when no profile exists yet.
func (s *ProfileService) Summary() (*ProfileSummary, bool, error) {
	p, found, err := s.store.LoadProfile()
	if err != nil || !found {
		return nil, found, err
	}
	sum := &ProfileSummary{Profile: *p}
	if bmi, err := utils.CalculateBMI(p.HeightCm, p.WeightKg); err == nil {
		sum.BMI = bmi
		sum.BMICategory = utils.BMICategory(bmi)
	}
	if bmr, err := utils.CalculateBMR(p.HeightCm, p.WeightKg, p.AgeYears, p.Sex); err == nil {
		sum.BMR = bmr
		sum.SuggestedGoal = utils.SuggestDailyGoal(bmr)
	}
	return sum, true, nil
}

// Update validates and persists the profile, then reseeds the tracker's
// default goal: an explicit DailyGoal wins, otherwise the BMR-derived
// suggestion is used. Today's already-created record keeps its own goal.
func (s *ProfileService) Update(p models.Profile) error {
	if _, err := utils.CalculateBMI(p.HeightCm, p.WeightKg); err != nil {
		return &ValidationError{Field: "height/weight", Reason: err.Error()}
	}
	if p.DailyGoal < 0 {
		return &ValidationError{Field: "daily_goal", Reason: "must not be negative"}
	}
	if err := s.store.SaveProfile(&p); err != nil {
		return err
	}
	return s.applyGoal(&p)
}

// ApplyGoalDefault reseeds the tracker default from the stored profile.
// Called once at startup; a missing profile is not an error.
func (s *ProfileService) ApplyGoalDefault() error {
	p, found, err := s.store.LoadProfile()
	if err != nil || !found {
		return err
	}
	return s.applyGoal(p)
}

func (s *ProfileService) applyGoal(p *models.Profile) error {
	if p.DailyGoal > 0 {
		return s.tracker.SetDefaultGoal(p.DailyGoal)
	}
	bmr, err := utils.CalculateBMR(p.HeightCm, p.WeightKg, p.AgeYears, p.Sex)
	if err != nil {
		return nil // incomplete profile, keep the current default
	}
	return s.tracker.SetDefaultGoal(utils.SuggestDailyGoal(bmr))
}
