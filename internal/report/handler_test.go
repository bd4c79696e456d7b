package report_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/2beens/gymlog/internal/auth"
	"github.com/2beens/gymlog/internal/bodystats"
	"github.com/2beens/gymlog/internal/insights"
	"github.com/2beens/gymlog/internal/report"
	"github.com/2beens/gymlog/internal/tracker"

	"github.com/golang/mock/gomock"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReportRequest(t *testing.T, target, profileID string, vars map[string]string) *http.Request {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, target, nil)
	require.NoError(t, err)
	if profileID != "" {
		req = req.WithContext(auth.WithProfileID(req.Context(), profileID))
	}
	if vars != nil {
		req = mux.SetURLVars(req, vars)
	}
	return req
}

func TestHandler_HandleReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	builder := NewMockreportBuilder(ctrl)
	h := report.NewHandler(builder)

	from, to := day(t, "2024-01-01"), day(t, "2024-01-05")
	builder.EXPECT().
		Report(gomock.Any(), "p-1", insights.MetricWeight, report.Params{From: &from, To: &to}).
		Return(&report.Report{
			Metric: insights.MetricWeight,
			Series: []insights.NormalizedPoint{{Date: from, Value: 80}},
			Trend:  insights.TrendResult{Description: insights.MsgNoTrend},
		}, nil)

	rec := httptest.NewRecorder()
	h.HandleReport(rec, newReportRequest(t, "/insights/weight?from=2024-01-01&to=2024-01-05", "p-1",
		map[string]string{"metric": "weight"}))
	require.Equal(t, http.StatusOK, rec.Code)

	var r report.Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &r))
	assert.Equal(t, insights.MetricWeight, r.Metric)
	require.Len(t, r.Series, 1)
	assert.Equal(t, from, r.Series[0].Date)
	assert.Contains(t, rec.Body.String(), `"date":"2024-01-01"`)
}

func TestHandler_HandleReport_BadRequests(t *testing.T) {
	ctrl := gomock.NewController(t)
	builder := NewMockreportBuilder(ctrl)
	h := report.NewHandler(builder)

	rec := httptest.NewRecorder()
	h.HandleReport(rec, newReportRequest(t, "/insights/steps", "p-1", map[string]string{"metric": "steps"}))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	h.HandleReport(rec, newReportRequest(t, "/insights/food?from=01/02/2024", "p-1", map[string]string{"metric": "food"}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// longer than MaxRangeDays, from either end
	for _, path := range []string{
		"/insights/food?from=1700-01-01",
		"/insights/food?from=2000-01-01&to=2024-01-01",
		"/insights/food?to=9999-12-31",
	} {
		rec = httptest.NewRecorder()
		h.HandleReport(rec, newReportRequest(t, path, "p-1", map[string]string{"metric": "food"}))
		assert.Equal(t, http.StatusBadRequest, rec.Code, path)
		assert.Contains(t, rec.Body.String(), "date range longer than", path)
	}

	rec = httptest.NewRecorder()
	h.HandleOverview(rec, newReportRequest(t, "/insights?from=1700-01-01", "p-1", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	h.HandleReport(rec, newReportRequest(t, "/insights/food", "", map[string]string{"metric": "food"}))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	builder.EXPECT().
		Report(gomock.Any(), "p-1", insights.MetricFood, report.Params{}).
		Return(nil, errors.New("db down"))
	rec = httptest.NewRecorder()
	h.HandleReport(rec, newReportRequest(t, "/insights/food", "p-1", map[string]string{"metric": "food"}))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHandler_HandleOverview(t *testing.T) {
	ctrl := gomock.NewController(t)
	builder := NewMockreportBuilder(ctrl)
	h := report.NewHandler(builder)

	builder.EXPECT().
		Overview(gomock.Any(), "p-1", report.Params{}).
		Return(&report.Overview{Reports: []report.Report{
			{Metric: insights.MetricWeight},
			{Metric: insights.MetricCalories},
			{Metric: insights.MetricFood},
			{Metric: insights.MetricStamina},
		}}, nil)

	rec := httptest.NewRecorder()
	h.HandleOverview(rec, newReportRequest(t, "/insights", "p-1", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var overview report.Overview
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &overview))
	assert.Len(t, overview.Reports, 4)

	builder.EXPECT().
		Overview(gomock.Any(), "p-1", report.Params{}).
		Return(nil, context.Canceled)
	rec = httptest.NewRecorder()
	h.HandleOverview(rec, newReportRequest(t, "/insights", "p-1", nil))
	assert.Equal(t, http.StatusRequestTimeout, rec.Code)
}

func TestHandler_HandleBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	builder := NewMockreportBuilder(ctrl)
	h := report.NewHandler(builder)

	bmr := 1790
	builder.EXPECT().
		Body(gomock.Any(), "p-1").
		Return(&report.BodyReport{
			BMI: &bodystats.BMI{Value: 25, Category: bodystats.CategoryOverweight, ScalePercent: 50},
			BMR: &bmr,
		}, nil)

	rec := httptest.NewRecorder()
	h.HandleBody(rec, newReportRequest(t, "/insights/body", "p-1", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"category":"Overweight"`)
	assert.Contains(t, rec.Body.String(), `"bmr":1790`)

	builder.EXPECT().
		Body(gomock.Any(), "p-2").
		Return(nil, tracker.ErrProfileNotFound)
	rec = httptest.NewRecorder()
	h.HandleBody(rec, newReportRequest(t, "/insights/body", "p-2", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
