package report

import "time"

func (a *Analyzer) SetNow(now func() time.Time) {
	a.now = now
}
