package insights

import (
	"sort"
	"time"
)

// NormalizeParams bounds the produced series. Both ends are inclusive.
type NormalizeParams struct {
	// From defaults to the earliest observation's day.
	From *time.Time
	// To defaults to today.
	To *time.Time
}

// Normalize turns sparse observations into a dense daily series over [From, To].
//
// Observed days keep their value. A missing day is linearly interpolated between
// the nearest observed days before and after it, or takes the value of the only
// neighbour when it sits at an edge of the data. Neighbours are searched only
// inside the range. If several observations share a day the last one wins.
func Normalize(observations []Observation, params NormalizeParams) []NormalizedPoint {
	if len(observations) == 0 {
		return []NormalizedPoint{}
	}

	from := earliestDay(observations)
	if params.From != nil {
		from = Day(*params.From)
	}
	to := Day(time.Now())
	if params.To != nil {
		to = Day(*params.To)
	}

	days := daysBetween(from, to) + 1
	if days <= 0 {
		return []NormalizedPoint{}
	}

	// day offset from 'from' -> observed value
	observed := make(map[int]float64, len(observations))
	for _, o := range observations {
		offset := daysBetween(from, Day(o.Date))
		if offset < 0 || offset >= days {
			continue
		}
		observed[offset] = o.Value
	}

	known := make([]int, 0, len(observed))
	for offset := range observed {
		known = append(known, offset)
	}
	sort.Ints(known)

	series := make([]NormalizedPoint, 0, days)
	// next points at the first known offset >= i
	next := 0
	for i := 0; i < days; i++ {
		for next < len(known) && known[next] < i {
			next++
		}

		date := from.AddDate(0, 0, i)
		if next < len(known) && known[next] == i {
			series = append(series, NormalizedPoint{
				Date:  date,
				Value: observed[i],
			})
			continue
		}

		hasPrev := next > 0
		hasNext := next < len(known)

		var value float64
		switch {
		case hasPrev && hasNext:
			prevOffset, nextOffset := known[next-1], known[next]
			prevValue, nextValue := observed[prevOffset], observed[nextOffset]
			ratio := float64(i-prevOffset) / float64(nextOffset-prevOffset)
			value = prevValue + ratio*(nextValue-prevValue)
		case hasPrev:
			value = observed[known[next-1]]
		case hasNext:
			value = observed[known[next]]
		default:
			// no observation inside the range at all
			continue
		}

		series = append(series, NormalizedPoint{
			Date:           date,
			Value:          value,
			IsInterpolated: true,
		})
	}

	return series
}

func earliestDay(observations []Observation) time.Time {
	earliest := Day(observations[0].Date)
	for _, o := range observations[1:] {
		if d := Day(o.Date); d.Before(earliest) {
			earliest = d
		}
	}
	return earliest
}
