package insights

import (
	"fmt"
	"math"
)

const (
	MsgNotEnoughData = "Not enough data"
	MsgNoChange      = "No significant change detected"
	MsgNoDataYet     = "No data yet"
	MsgLogMore       = "Log more data to see streaks"
	MsgNoData        = "No data available"
)

// BestDay finds the biggest day-over-day move in the wanted direction:
// the largest drop for weight, the largest increase for everything else.
func BestDay(metric Metric, series []NormalizedPoint) string {
	if len(series) < 2 {
		return MsgNotEnoughData
	}

	var best float64
	bestIdx := -1
	for i := 1; i < len(series); i++ {
		change := series[i-1].Value - series[i].Value
		if metric == MetricWeight && change > best {
			best = change
			bestIdx = i
		} else if metric != MetricWeight && change < best {
			best = change
			bestIdx = i
		}
	}

	if bestIdx == -1 {
		return MsgNoChange
	}

	direction := "gain"
	if metric == MetricWeight {
		direction = "loss"
	}

	return fmt.Sprintf(
		"Highest %s: %.1f on %s",
		direction, math.Abs(best), series[bestIdx].Date.Format("Jan 2"),
	)
}

// LongestStreak counts the longest run of consecutive days with a real
// (non interpolated) observation.
func LongestStreak(series []NormalizedPoint) string {
	if len(series) == 0 {
		return MsgNoDataYet
	}

	observed := make([]NormalizedPoint, 0, len(series))
	for _, p := range series {
		if !p.IsInterpolated {
			observed = append(observed, p)
		}
	}
	if len(observed) < 2 {
		return MsgLogMore
	}

	current, longest := 1, 1
	for i := 1; i < len(observed); i++ {
		if daysBetween(Day(observed[i-1].Date), Day(observed[i].Date)) == 1 {
			current++
			longest = max(longest, current)
		} else {
			current = 1
		}
	}

	return fmt.Sprintf("Longest logging streak: %d days", longest)
}

// Average is the mean over the dense series, interpolated days included.
func Average(metric Metric, series []NormalizedPoint) string {
	if len(series) == 0 {
		return MsgNoData
	}

	var sum float64
	for _, p := range series {
		sum += p.Value
	}
	avg := sum / float64(len(series))

	switch metric {
	case MetricWeight:
		return fmt.Sprintf("Average weight: %.1f kg", avg)
	case MetricCalories:
		return fmt.Sprintf("Average daily burn: %.0f cal", avg)
	case MetricFood:
		return fmt.Sprintf("Average daily intake: %.0f cal", avg)
	case MetricStamina:
		return fmt.Sprintf("Average duration: %.0f min", avg)
	default:
		return MsgNoData
	}
}

type GoalProgress struct {
	Start   float64 `json:"start"`
	Current float64 `json:"current"`
	Target  float64 `json:"target"`
	Percent int     `json:"percent"`
}

// Progress measures how far the series has moved from its first value towards target.
// Returns nil for an empty series.
func Progress(series []NormalizedPoint, target float64) *GoalProgress {
	if len(series) == 0 {
		return nil
	}

	start := series[0].Value
	current := series[len(series)-1].Value
	progress := &GoalProgress{
		Start:   start,
		Current: current,
		Target:  target,
	}

	if start == target {
		if current == target {
			progress.Percent = 100
		}
		return progress
	}

	pct := (start - current) / (start - target) * 100
	pct = math.Min(math.Max(pct, 0), 100)
	progress.Percent = int(math.Round(pct))

	return progress
}
