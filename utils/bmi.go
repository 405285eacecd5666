package utils

import "errors"

// CalculateBMI expects height in centimeters and weight in kilograms.
func CalculateBMI(heightCm, weightKg float64) (float64, error) {
	if heightCm <= 0 || weightKg <= 0 {
		return 0, errors.New("height and weight must be positive")
	}
	// Sanity checks to avoid garbage input
	if heightCm < 50 || heightCm > 250 || weightKg < 10 || weightKg > 400 {
		return 0, errors.New("height/weight out of plausible range")
	}

	h := heightCm / 100.0 // to meters
	bmi := weightKg / (h * h)
	return bmi, nil
}

func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25.0:
		return "Normal weight"
	case bmi < 30.0:
		return "Overweight"
	case bmi < 35.0:
		return "Obesity class I"
	case bmi < 40.0:
		return "Obesity class II"
	default:
		return "Obesity class III"
	}
}

// CalculateBMR estimates basal metabolic rate (kcal/day) with the
// Mifflin-St Jeor equation. Sex is "male" or "female".
func CalculateBMR(heightCm, weightKg float64, ageYears int, sex string) (float64, error) {
	if _, err := CalculateBMI(heightCm, weightKg); err != nil {
		return 0, err
	}
	if ageYears <= 0 || ageYears > 130 {
		return 0, errors.New("age out of plausible range")
	}

	bmr := 10*weightKg + 6.25*heightCm - 5*float64(ageYears)
	switch sex {
	case "male":
		bmr += 5
	case "female":
		bmr -= 161
	default:
		return 0, errors.New("sex must be \"male\" or \"female\"")
	}
	return bmr, nil
}

// SuggestDailyGoal converts a BMR into a daily intake target assuming a
// lightly active lifestyle, rounded to the nearest 50 kcal.
func SuggestDailyGoal(bmr float64) float64 {
	goal := bmr * 1.375
	return float64(int((goal+25)/50)) * 50
}
