package report

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/2beens/gymlog/internal/auth"
	"github.com/2beens/gymlog/internal/insights"
	"github.com/2beens/gymlog/internal/telemetry/tracing"
	"github.com/2beens/gymlog/internal/tracker"
	"github.com/2beens/gymlog/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=report_test

type reportBuilder interface {
	Report(ctx context.Context, profileID string, metric insights.Metric, params Params) (*Report, error)
	Overview(ctx context.Context, profileID string, params Params) (*Overview, error)
	Body(ctx context.Context, profileID string) (*BodyReport, error)
}

type Handler struct {
	reports reportBuilder
}

func NewHandler(reports reportBuilder) *Handler {
	return &Handler{
		reports: reports,
	}
}

func (handler *Handler) HandleReport(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.insights.report")
	defer span.End()

	profileID, ok := auth.ProfileIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	metric, err := insights.ParseMetric(mux.Vars(r)["metric"])
	if err != nil {
		http.Error(w, "unknown metric", http.StatusNotFound)
		return
	}

	params, err := rangeParams(r)
	if err != nil {
		log.Tracef("insights report, range params: %s", err)
		writeRangeError(w, err)
		return
	}

	report, err := handler.reports.Report(ctx, profileID, metric, params)
	if err != nil {
		writeReportError(w, "build "+metric.String()+" report", err)
		return
	}

	pkg.WriteJSON(w, report, http.StatusOK)
}

func (handler *Handler) HandleOverview(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.insights.overview")
	defer span.End()

	profileID, ok := auth.ProfileIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	params, err := rangeParams(r)
	if err != nil {
		log.Tracef("insights overview, range params: %s", err)
		writeRangeError(w, err)
		return
	}

	overview, err := handler.reports.Overview(ctx, profileID, params)
	if err != nil {
		writeReportError(w, "build overview", err)
		return
	}

	pkg.WriteJSON(w, overview, http.StatusOK)
}

func (handler *Handler) HandleBody(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.insights.body")
	defer span.End()

	profileID, ok := auth.ProfileIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	body, err := handler.reports.Body(ctx, profileID)
	if err != nil {
		writeReportError(w, "build body stats", err)
		return
	}

	pkg.WriteJSON(w, body, http.StatusOK)
}

var errRangeTooLong = fmt.Errorf("date range longer than %d days", MaxRangeDays)

// rangeParams reads the optional from/to query params.
func rangeParams(r *http.Request) (Params, error) {
	var params Params
	query := r.URL.Query()

	parse := func(key string) (*time.Time, error) {
		raw := query.Get(key)
		if raw == "" {
			return nil, nil
		}
		d, err := insights.ParseDay(raw)
		if err != nil {
			return nil, err
		}
		return &d, nil
	}

	var err error
	if params.From, err = parse("from"); err != nil {
		return Params{}, err
	}
	if params.To, err = parse("to"); err != nil {
		return Params{}, err
	}

	today := time.Now().UTC()
	to := today
	if params.To != nil {
		if insights.DaysBetween(today, *params.To) > MaxRangeDays {
			return Params{}, errRangeTooLong
		}
		to = *params.To
	}
	if params.From != nil && insights.DaysBetween(*params.From, to) > MaxRangeDays {
		return Params{}, errRangeTooLong
	}

	return params, nil
}

func writeRangeError(w http.ResponseWriter, err error) {
	if errors.Is(err, errRangeTooLong) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	http.Error(w, "invalid date range, expected YYYY-MM-DD", http.StatusBadRequest)
}

func writeReportError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, insights.ErrUnknownMetric):
		http.Error(w, "unknown metric", http.StatusNotFound)
	case errors.Is(err, tracker.ErrProfileNotFound):
		http.Error(w, "profile not found", http.StatusNotFound)
	case errors.Is(err, context.Canceled):
		log.Debugf("%s: %s", op, err)
		http.Error(w, "request canceled", http.StatusRequestTimeout)
	default:
		log.Errorf("%s: %s", op, err)
		http.Error(w, "failed to "+op, http.StatusInternalServerError)
	}
}
