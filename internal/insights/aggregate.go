package insights

import (
	"sort"
	"time"
)

// Aggregate collapses same-day observations into one per day by summing their values.
// The result is ordered by day and holds only days present in the input.
func Aggregate(observations []Observation) []Observation {
	if len(observations) == 0 {
		return []Observation{}
	}

	day2value := make(map[time.Time]float64)
	for _, o := range observations {
		day2value[Day(o.Date)] += o.Value
	}

	aggregated := make([]Observation, 0, len(day2value))
	for day, value := range day2value {
		aggregated = append(aggregated, Observation{
			Date:  day,
			Value: value,
		})
	}

	sort.Slice(aggregated, func(i, j int) bool {
		return aggregated[i].Date.Before(aggregated[j].Date)
	})

	return aggregated
}

// ReduceByDay applies the metric's same-day rule: summed metrics are aggregated,
// the others are passed through untouched (Normalize keeps the last one of a day).
func ReduceByDay(metric Metric, observations []Observation) []Observation {
	if metric.SumsPerDay() {
		return Aggregate(observations)
	}
	return observations
}
