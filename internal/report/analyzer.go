package report

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/2beens/gymlog/internal/bodystats"
	"github.com/2beens/gymlog/internal/insights"
	"github.com/2beens/gymlog/internal/telemetry/metrics"
	"github.com/2beens/gymlog/internal/telemetry/tracing"
	"github.com/2beens/gymlog/internal/tracker"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=$GOFILE -destination=analyzer_mocks_test.go -package=report_test

const (
	reportCacheExpire = 6 * time.Hour

	// MaxRangeDays bounds every report series, requested or defaulted.
	MaxRangeDays = 10 * 366

	MsgMissingMeasurements = "Add your height and weight to see body stats"
)

type trackerRepo interface {
	ListObservations(ctx context.Context, params tracker.ObservationParams) ([]insights.Observation, error)
	ActiveGoal(ctx context.Context, profileID string, metric insights.Metric) (*tracker.Goal, error)
	GetProfile(ctx context.Context, profileID string) (*tracker.Profile, error)
	LatestWeightEntry(ctx context.Context, profileID string) (*tracker.WeightEntry, error)
}

// Params bound the report range in whole days, both ends inclusive.
// Nil From starts at the earliest observation, nil To ends today.
type Params struct {
	From *time.Time
	To   *time.Time
}

type Report struct {
	Metric   insights.Metric            `json:"metric"`
	Unit     string                     `json:"unit"`
	Label    string                     `json:"label"`
	Series   []insights.NormalizedPoint `json:"series"`
	Trend    insights.TrendResult       `json:"trend"`
	Goal     *tracker.Goal              `json:"goal,omitempty"`
	Forecast *insights.ForecastResult   `json:"forecast,omitempty"`
	Progress *insights.GoalProgress     `json:"progress,omitempty"`
	BestDay  string                     `json:"bestDay"`
	Streak   string                     `json:"streak"`
	Average  string                     `json:"average"`
}

type Overview struct {
	Reports []Report `json:"reports"`
}

type BodyReport struct {
	Weight  *float64       `json:"weight,omitempty"`
	Height  *float64       `json:"height,omitempty"`
	BMI     *bodystats.BMI `json:"bmi,omitempty"`
	BMR     *int           `json:"bmr,omitempty"`
	Message string         `json:"message,omitempty"`
}

// Analyzer builds insight reports from the tracked entries of a profile.
type Analyzer struct {
	repo           trackerRepo
	cache          *freecache.Cache
	metricsManager *metrics.Manager
	now            func() time.Time

	mu sync.Mutex
	// generation per profile, part of every cache key
	generations map[string]uint64
}

func NewAnalyzer(repo trackerRepo, cacheSizeBytes int, metricsManager *metrics.Manager) *Analyzer {
	return &Analyzer{
		repo:           repo,
		cache:          freecache.NewCache(cacheSizeBytes),
		metricsManager: metricsManager,
		now:            time.Now,
		generations:    make(map[string]uint64),
	}
}

// Invalidate makes every cached report of the profile unreachable.
func (a *Analyzer) Invalidate(profileID string) {
	a.mu.Lock()
	a.generations[profileID]++
	a.mu.Unlock()
}

func (a *Analyzer) generation(profileID string) uint64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.generations[profileID]
}

func (a *Analyzer) Report(
	ctx context.Context,
	profileID string,
	metric insights.Metric,
	params Params,
) (_ *Report, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.report")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("profile.id", profileID),
		attribute.String("metric", metric.String()),
	)

	if !metric.IsValid() {
		return nil, fmt.Errorf("%w: %q", insights.ErrUnknownMetric, metric)
	}

	// report days are UTC days, as stored by the tracker
	now := a.now().UTC()
	today := insights.Day(now)
	to := today
	if params.To != nil {
		to = insights.Day(*params.To)
	}
	var from *time.Time
	if params.From != nil {
		d := insights.Day(*params.From)
		from = &d
	}

	cacheKey := a.cacheKey(profileID, metric, from, to, today)
	if reportBytes, err := a.cache.Get(cacheKey); err == nil {
		var cached Report
		unmarshalErr := json.Unmarshal(reportBytes, &cached)
		if unmarshalErr == nil {
			a.metricsManager.CounterReportCacheHits.Inc()
			span.SetAttributes(attribute.Bool("cache.hit", true))
			return &cached, nil
		}
		log.Errorf("analyzer, unmarshal cached report: %s", unmarshalErr)
	}

	// the repo range is end exclusive; an open start still stops at MaxRangeDays
	toExclusive := to.AddDate(0, 0, 1)
	queryFrom := to.AddDate(0, 0, -MaxRangeDays)
	if from != nil && from.After(queryFrom) {
		queryFrom = *from
	}
	observations, err := a.repo.ListObservations(ctx, tracker.ObservationParams{
		ProfileID: profileID,
		Metric:    metric,
		From:      &queryFrom,
		To:        &toExclusive,
	})
	if err != nil {
		return nil, fmt.Errorf("list %s observations: %w", metric, err)
	}

	series := insights.Normalize(
		insights.ReduceByDay(metric, observations),
		insights.NormalizeParams{From: from, To: &to},
	)

	report := &Report{
		Metric:  metric,
		Unit:    metric.Unit(),
		Label:   metric.Label(),
		Series:  series,
		Trend:   insights.Trend(series),
		BestDay: insights.BestDay(metric, series),
		Streak:  insights.LongestStreak(series),
		Average: insights.Average(metric, series),
	}
	if len(series) == 0 {
		report.Trend.Description = insights.MsgNoData
	}

	goal, err := a.repo.ActiveGoal(ctx, profileID, metric)
	switch {
	case errors.Is(err, tracker.ErrGoalNotFound):
	case err != nil:
		return nil, fmt.Errorf("active %s goal: %w", metric, err)
	default:
		forecast := insights.Forecast(series, goal.TargetValue, now)
		report.Goal = goal
		report.Forecast = &forecast
		report.Progress = insights.Progress(series, goal.TargetValue)
	}

	a.metricsManager.CounterInsightReports.WithLabelValues(metric.String()).Inc()

	if reportBytes, err := json.Marshal(report); err != nil {
		log.Errorf("analyzer, marshal report: %s", err)
	} else if err := a.cache.Set(cacheKey, reportBytes, int(reportCacheExpire.Seconds())); err != nil {
		log.Errorf("analyzer, cache report: %s", err)
	}

	return report, nil
}

// Overview builds the reports of all metrics concurrently.
func (a *Analyzer) Overview(ctx context.Context, profileID string, params Params) (_ *Overview, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.overview")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	reports := make([]Report, len(insights.AllMetrics))
	g, gctx := errgroup.WithContext(ctx)
	for i, metric := range insights.AllMetrics {
		g.Go(func() error {
			report, err := a.Report(gctx, profileID, metric, params)
			if err != nil {
				return err
			}
			reports[i] = *report
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Overview{Reports: reports}, nil
}

// Body computes BMI and BMR. The latest weight entry wins over the weight
// stored on the profile.
func (a *Analyzer) Body(ctx context.Context, profileID string) (_ *BodyReport, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.body")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	profile, err := a.repo.GetProfile(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}

	weight := profile.Weight
	latest, err := a.repo.LatestWeightEntry(ctx, profileID)
	switch {
	case errors.Is(err, tracker.ErrNoEntries):
	case err != nil:
		return nil, fmt.Errorf("latest weight entry: %w", err)
	default:
		weight = &latest.Weight
	}

	body := &BodyReport{
		Weight: weight,
		Height: profile.Height,
	}
	if weight == nil || profile.Height == nil {
		body.Message = MsgMissingMeasurements
		return body, nil
	}

	bmi, err := bodystats.CalculateBMI(*weight, *profile.Height)
	if errors.Is(err, bodystats.ErrInvalidMeasurements) {
		body.Message = MsgMissingMeasurements
		return body, nil
	}
	if err != nil {
		return nil, err
	}
	body.BMI = &bmi

	if profile.Age != nil {
		bmr, err := bodystats.BMR(*weight, *profile.Height, *profile.Age)
		if err != nil {
			return nil, err
		}
		body.BMR = &bmr
	}

	return body, nil
}

func (a *Analyzer) cacheKey(profileID string, metric insights.Metric, from *time.Time, to, today time.Time) []byte {
	fromKey := "-"
	if from != nil {
		fromKey = from.Format(time.DateOnly)
	}
	return fmt.Appendf(nil, "report|%s|%d|%s|%s|%s|%s",
		profileID,
		a.generation(profileID),
		metric,
		fromKey,
		to.Format(time.DateOnly),
		today.Format(time.DateOnly),
	)
}
