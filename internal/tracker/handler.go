package tracker

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/2beens/gymlog/internal/auth"
	"github.com/2beens/gymlog/internal/insights"
	"github.com/2beens/gymlog/internal/telemetry/metrics"
	"github.com/2beens/gymlog/internal/telemetry/tracing"
	"github.com/2beens/gymlog/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=tracker_test

type trackerRepo interface {
	AddWeightEntry(ctx context.Context, entry WeightEntry) (*WeightEntry, error)
	AddCalorieBurn(ctx context.Context, entry CalorieBurn) (*CalorieBurn, error)
	AddFoodIntake(ctx context.Context, entry FoodIntake) (*FoodIntake, error)
	AddStaminaSession(ctx context.Context, entry StaminaSession) (*StaminaSession, error)
	AddGoal(ctx context.Context, goal Goal) (*Goal, error)
	ActiveGoal(ctx context.Context, profileID string, metric insights.Metric) (*Goal, error)
	ListGoals(ctx context.Context, profileID string) ([]Goal, error)
	GetProfile(ctx context.Context, profileID string) (*Profile, error)
	UpdateProfile(ctx context.Context, p Profile) error
}

// reportInvalidator drops cached insight reports of a profile.
type reportInvalidator interface {
	Invalidate(profileID string)
}

type GoalsListResponse struct {
	Goals []Goal `json:"goals"`
}

type Handler struct {
	repo           trackerRepo
	reports        reportInvalidator
	validator      *Validator
	metricsManager *metrics.Manager
}

func NewHandler(
	repo trackerRepo,
	reports reportInvalidator,
	metricsManager *metrics.Manager,
) *Handler {
	return &Handler{
		repo:           repo,
		reports:        reports,
		validator:      NewValidator(),
		metricsManager: metricsManager,
	}
}

func (handler *Handler) HandleAddWeight(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracker.addWeight")
	defer span.End()

	profileID, entry, ok := decodeEntry[WeightEntry](w, r, handler.validator)
	if !ok {
		return
	}
	entry.ProfileID = profileID

	added, err := handler.repo.AddWeightEntry(ctx, entry)
	handler.respondAdded(w, insights.MetricWeight, profileID, added, err)
}

func (handler *Handler) HandleAddCalories(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracker.addCalories")
	defer span.End()

	profileID, entry, ok := decodeEntry[CalorieBurn](w, r, handler.validator)
	if !ok {
		return
	}
	entry.ProfileID = profileID

	added, err := handler.repo.AddCalorieBurn(ctx, entry)
	handler.respondAdded(w, insights.MetricCalories, profileID, added, err)
}

func (handler *Handler) HandleAddFood(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracker.addFood")
	defer span.End()

	profileID, entry, ok := decodeEntry[FoodIntake](w, r, handler.validator)
	if !ok {
		return
	}
	entry.ProfileID = profileID

	added, err := handler.repo.AddFoodIntake(ctx, entry)
	handler.respondAdded(w, insights.MetricFood, profileID, added, err)
}

func (handler *Handler) HandleAddStamina(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracker.addStamina")
	defer span.End()

	profileID, entry, ok := decodeEntry[StaminaSession](w, r, handler.validator)
	if !ok {
		return
	}
	entry.ProfileID = profileID

	added, err := handler.repo.AddStaminaSession(ctx, entry)
	handler.respondAdded(w, insights.MetricStamina, profileID, added, err)
}

func (handler *Handler) HandleAddGoal(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracker.addGoal")
	defer span.End()

	profileID, goal, ok := decodeEntry[Goal](w, r, handler.validator)
	if !ok {
		return
	}
	goal.ProfileID = profileID

	added, err := handler.repo.AddGoal(ctx, goal)
	if err != nil {
		writeRepoError(w, "add goal", err)
		return
	}

	log.Debugf("goal %s added for profile %s: %.1f", added.GoalType, profileID, added.TargetValue)
	handler.reports.Invalidate(profileID)
	pkg.WriteJSON(w, added, http.StatusCreated)
}

func (handler *Handler) HandleGetGoal(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracker.getGoal")
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

	goal, err := handler.repo.ActiveGoal(ctx, profileID, metric)
	if err != nil {
		writeRepoError(w, "get goal", err)
		return
	}

	pkg.WriteJSON(w, goal, http.StatusOK)
}

func (handler *Handler) HandleListGoals(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracker.listGoals")
	defer span.End()

	profileID, ok := auth.ProfileIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	goals, err := handler.repo.ListGoals(ctx, profileID)
	if err != nil {
		writeRepoError(w, "list goals", err)
		return
	}

	pkg.WriteJSON(w, GoalsListResponse{Goals: goals}, http.StatusOK)
}

func (handler *Handler) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracker.getProfile")
	defer span.End()

	profileID, ok := auth.ProfileIDFromContext(ctx)
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	profile, err := handler.repo.GetProfile(ctx, profileID)
	if err != nil {
		writeRepoError(w, "get profile", err)
		return
	}

	pkg.WriteJSON(w, profile, http.StatusOK)
}

func (handler *Handler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.tracker.updateProfile")
	defer span.End()

	profileID, profile, ok := decodeEntry[Profile](w, r, handler.validator)
	if !ok {
		return
	}
	profile.ID = profileID

	if err := handler.repo.UpdateProfile(ctx, profile); err != nil {
		writeRepoError(w, "update profile", err)
		return
	}

	handler.reports.Invalidate(profileID)
	pkg.WriteJSON(w, profile, http.StatusOK)
}

func (handler *Handler) respondAdded(w http.ResponseWriter, metric insights.Metric, profileID string, added any, err error) {
	if err != nil {
		writeRepoError(w, "add "+metric.String()+" entry", err)
		return
	}

	log.Debugf("new %s entry added for profile %s", metric, profileID)
	handler.metricsManager.CounterEntries.WithLabelValues(metric.String()).Inc()
	handler.reports.Invalidate(profileID)
	pkg.WriteJSON(w, added, http.StatusCreated)
}

// decodeEntry reads and validates a JSON body for the logged in profile.
// On failure the response is already written.
func decodeEntry[T any](w http.ResponseWriter, r *http.Request, v *Validator) (string, T, bool) {
	var entry T

	profileID, ok := auth.ProfileIDFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return "", entry, false
	}

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return "", entry, false
	}

	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		log.Errorf("unmarshal json body: %s", err)
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return "", entry, false
	}

	if err := v.Validate(entry); err != nil {
		var validationErr *ValidationError
		if errors.As(err, &validationErr) {
			pkg.WriteJSON(w, validationErr, http.StatusBadRequest)
			return "", entry, false
		}
		log.Errorf("validate request body: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return "", entry, false
	}

	return profileID, entry, true
}

func writeRepoError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, ErrProfileNotFound):
		http.Error(w, "profile not found", http.StatusNotFound)
	case errors.Is(err, ErrGoalNotFound):
		http.Error(w, "goal not found", http.StatusNotFound)
	case errors.Is(err, ErrInvalidEntry):
		http.Error(w, "invalid entry", http.StatusBadRequest)
	case errors.Is(err, ErrDuplicateEntry):
		http.Error(w, "entry already exists", http.StatusConflict)
	default:
		log.Errorf("%s: %s", op, err)
		http.Error(w, "failed to "+op, http.StatusInternalServerError)
	}
}
