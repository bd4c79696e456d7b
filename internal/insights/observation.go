package insights

import (
	"encoding/json"
	"fmt"
	"time"
)

const dayLayout = "2006-01-02"

// Observation is a single dated measurement of one metric, as handed over by the tracker.
type Observation struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

// NormalizedPoint is one day of a dense series.
type NormalizedPoint struct {
	Date           time.Time `json:"-"`
	Value          float64   `json:"value"`
	IsInterpolated bool      `json:"isInterpolated"`
}

type normalizedPointJSON struct {
	Date           string  `json:"date"`
	Value          float64 `json:"value"`
	IsInterpolated bool    `json:"isInterpolated"`
}

func (p NormalizedPoint) MarshalJSON() ([]byte, error) {
	return json.Marshal(normalizedPointJSON{
		Date:           p.Date.Format(dayLayout),
		Value:          p.Value,
		IsInterpolated: p.IsInterpolated,
	})
}

func (p *NormalizedPoint) UnmarshalJSON(data []byte) error {
	var raw normalizedPointJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	date, err := ParseDay(raw.Date)
	if err != nil {
		return err
	}
	p.Date = date
	p.Value = raw.Value
	p.IsInterpolated = raw.IsInterpolated
	return nil
}

// Day truncates t to its calendar day, expressed as midnight UTC.
// The calendar day is taken in t's own location.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDay parses a YYYY-MM-DD date.
func ParseDay(s string) (time.Time, error) {
	d, err := time.Parse(dayLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse day %q: %w", s, err)
	}
	return d, nil
}

const secondsPerDay = 24 * 60 * 60

// daysBetween returns the number of whole days from a to b; both must be Day values.
// Counted on unix seconds, time.Duration saturates past ~292 years.
func daysBetween(a, b time.Time) int {
	return int((b.Unix() - a.Unix()) / secondsPerDay)
}

// DaysBetween is daysBetween for arbitrary times, compared by calendar day.
func DaysBetween(a, b time.Time) int {
	return daysBetween(Day(a), Day(b))
}
