package bodystats

import (
	"errors"
	"math"
)

var ErrInvalidMeasurements = errors.New("height and weight must be positive")

const (
	CategoryUnderweight = "Underweight"
	CategoryHealthy     = "Healthy"
	CategoryOverweight  = "Overweight"
	CategoryObese       = "Obese"

	// bmi band shown on the scale
	scaleMin = 15.0
	scaleMax = 35.0
)

type BMI struct {
	Value    float64 `json:"value"`
	Category string  `json:"category"`
	// ScalePercent is where Value sits on the 15..35 band, clamped to 0..100.
	ScalePercent float64 `json:"scalePercent"`
}

// CalculateBMI computes kg/m² rounded to one decimal.
func CalculateBMI(weightKg, heightCm float64) (BMI, error) {
	if weightKg <= 0 || heightCm <= 0 {
		return BMI{}, ErrInvalidMeasurements
	}

	heightM := heightCm / 100
	value := math.Round(weightKg/(heightM*heightM)*10) / 10

	return BMI{
		Value:        value,
		Category:     Category(value),
		ScalePercent: scalePercent(value),
	}, nil
}

func Category(bmi float64) string {
	switch {
	case bmi < 18.5:
		return CategoryUnderweight
	case bmi < 25:
		return CategoryHealthy
	case bmi < 30:
		return CategoryOverweight
	default:
		return CategoryObese
	}
}

func scalePercent(bmi float64) float64 {
	pct := (bmi - scaleMin) / (scaleMax - scaleMin) * 100
	return math.Min(math.Max(pct, 0), 100)
}

// BMR estimates the basal metabolic rate in kcal/day with the Mifflin-St Jeor
// equation, male constant.
func BMR(weightKg, heightCm float64, age int) (int, error) {
	if weightKg <= 0 || heightCm <= 0 {
		return 0, ErrInvalidMeasurements
	}
	bmr := 10*weightKg + 6.25*heightCm - 5*float64(age) + 5
	return int(math.Round(bmr)), nil
}
