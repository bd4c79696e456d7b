package insights

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownMetric = errors.New("unknown metric")

// Metric identifies one tracked fitness measurement.
type Metric string

const (
	MetricWeight   Metric = "weight"
	MetricCalories Metric = "calories"
	MetricFood     Metric = "food"
	MetricStamina  Metric = "stamina"
)

// AllMetrics in the order they are shown on the insights page.
var AllMetrics = []Metric{
	MetricWeight,
	MetricCalories,
	MetricFood,
	MetricStamina,
}

func ParseMetric(s string) (Metric, error) {
	m := Metric(strings.ToLower(strings.TrimSpace(s)))
	if !m.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownMetric, s)
	}
	return m, nil
}

func (m Metric) String() string {
	return string(m)
}

func (m Metric) IsValid() bool {
	switch m {
	case MetricWeight, MetricCalories, MetricFood, MetricStamina:
		return true
	default:
		return false
	}
}

// Unit is the short unit label used in charts.
func (m Metric) Unit() string {
	switch m {
	case MetricWeight:
		return "kg"
	case MetricStamina:
		return "min"
	default:
		return "cal"
	}
}

// Label is the Y axis label for the metric chart.
func (m Metric) Label() string {
	switch m {
	case MetricWeight:
		return "Weight (kg)"
	case MetricCalories:
		return "Calories Burned"
	case MetricFood:
		return "Calories Consumed"
	case MetricStamina:
		return "Duration (min)"
	default:
		return ""
	}
}

// SumsPerDay reports whether same-day observations add up (calories burned,
// calories eaten) rather than replace each other (weight, session duration).
func (m Metric) SumsPerDay() bool {
	return m == MetricCalories || m == MetricFood
}
