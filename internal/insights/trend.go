package insights

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

const (
	MsgNoTrend      = "No clear trend yet"
	MsgNoForecast   = "No forecast available"
	MsgNoProgress   = "No clear progress toward goal"
	trendNoiseLevel = 0.01
	// forecasts further out than this are reported as no progress
	maxForecastDays = 100 * 366
)

type TrendResult struct {
	// Slope is the average change in metric units per day.
	Slope       float64 `json:"slope"`
	Description string  `json:"description"`
}

// Trend computes the average daily change between the first and the last point
// of a normalized series. Forecast relies on exactly this two-point definition.
func Trend(series []NormalizedPoint) TrendResult {
	if len(series) < 2 {
		return TrendResult{Slope: 0, Description: MsgNoTrend}
	}

	first, last := series[0], series[len(series)-1]
	days := daysBetween(Day(first.Date), Day(last.Date))
	if days == 0 {
		return TrendResult{Slope: 0, Description: MsgNoTrend}
	}

	slope := (last.Value - first.Value) / float64(days)

	description := MsgNoTrend
	if math.Abs(slope) > trendNoiseLevel {
		if slope < 0 {
			description = fmt.Sprintf("losing %.2f per day", math.Abs(slope))
		} else {
			description = fmt.Sprintf("gaining %.2f per day", slope)
		}
	}

	return TrendResult{
		Slope:       slope,
		Description: description,
	}
}

type ForecastResult struct {
	// Reachable is false when the current trend does not lead to the target.
	Reachable  bool       `json:"reachable"`
	DaysToGoal int        `json:"daysToGoal,omitempty"`
	Date       *time.Time `json:"date,omitempty"`
	Message    string     `json:"message"`
}

// Forecast extrapolates the series trend to estimate when target is reached,
// counting days from today.
//
// A target equal to the current value yields a forecast for today.
func Forecast(series []NormalizedPoint, target float64, today time.Time) ForecastResult {
	if len(series) == 0 {
		return ForecastResult{Message: MsgNoForecast}
	}

	slope := Trend(series).Slope
	current := series[len(series)-1].Value

	if math.Abs(slope) < trendNoiseLevel ||
		(target < current && slope >= 0) ||
		(target > current && slope <= 0) {
		return ForecastResult{Message: MsgNoProgress}
	}

	rawDays := math.Ceil(math.Abs(target-current) / math.Abs(slope))
	if math.IsNaN(rawDays) || rawDays > maxForecastDays {
		return ForecastResult{Message: MsgNoProgress}
	}
	daysToGoal := int(rawDays)
	date := Day(today).AddDate(0, 0, daysToGoal)

	return ForecastResult{
		Reachable:  true,
		DaysToGoal: daysToGoal,
		Date:       &date,
		Message: fmt.Sprintf(
			"At this rate, you'll hit %s by %s",
			strconv.FormatFloat(target, 'f', -1, 64),
			date.Format("January 2, 2006"),
		),
	}
}
