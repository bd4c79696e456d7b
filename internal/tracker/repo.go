package tracker

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/gymlog/internal/insights"
	"github.com/2beens/gymlog/internal/telemetry/tracing"
	"github.com/2beens/gymlog/pkg"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.opentelemetry.io/otel/attribute"
)

//go:embed schema.sql
var Schema string

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrGoalNotFound    = errors.New("goal not found")
	ErrNoEntries       = errors.New("no entries")
	ErrInvalidEntry    = errors.New("invalid entry")
	ErrDuplicateEntry  = errors.New("duplicate entry")
)

// dbConn is the subset of *pgxpool.Pool the repo needs.
type dbConn interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// table and value column holding each metric's observations
var metricSources = map[insights.Metric]struct {
	table  string
	column string
}{
	insights.MetricWeight:   {table: "weight_entries", column: "weight"},
	insights.MetricCalories: {table: "calorie_burns", column: "calories_burned"},
	insights.MetricFood:     {table: "food_intakes", column: "calories"},
	insights.MetricStamina:  {table: "stamina_sessions", column: "duration"},
}

type ObservationParams struct {
	ProfileID string
	Metric    insights.Metric
	// From is inclusive, To is exclusive; nil leaves the side open.
	From *time.Time
	To   *time.Time
}

type Repo struct {
	db  dbConn
	now func() time.Time
}

func NewRepo(db dbConn) *Repo {
	return &Repo{
		db:  db,
		now: time.Now,
	}
}

func (r *Repo) AddWeightEntry(ctx context.Context, entry WeightEntry) (_ *WeightEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.tracker.addWeightEntry")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	entry.ID = uuid.NewString()
	if entry.Date.IsZero() {
		entry.Date = r.now()
	}

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO weight_entries (id, profile_id, weight, notes, date)
			VALUES ($1, $2, $3, $4, $5);`,
		entry.ID, entry.ProfileID, entry.Weight, entry.Notes, entry.Date,
	)
	if err != nil {
		return nil, insertErr("weight entry", err)
	}

	span.SetAttributes(attribute.String("entry.id", entry.ID))
	return &entry, nil
}

func (r *Repo) AddCalorieBurn(ctx context.Context, entry CalorieBurn) (_ *CalorieBurn, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.tracker.addCalorieBurn")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	entry.ID = uuid.NewString()
	if entry.Date.IsZero() {
		entry.Date = r.now()
	}

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO calorie_burns (id, profile_id, activity_type, duration, calories_burned, date)
			VALUES ($1, $2, $3, $4, $5, $6);`,
		entry.ID, entry.ProfileID, entry.ActivityType, entry.Duration, entry.CaloriesBurned, entry.Date,
	)
	if err != nil {
		return nil, insertErr("calorie burn", err)
	}

	span.SetAttributes(attribute.String("entry.id", entry.ID))
	return &entry, nil
}

func (r *Repo) AddFoodIntake(ctx context.Context, entry FoodIntake) (_ *FoodIntake, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.tracker.addFoodIntake")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	entry.ID = uuid.NewString()
	if entry.Date.IsZero() {
		entry.Date = r.now()
	}

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO food_intakes (id, profile_id, meal_type, food_name, calories, protein, carbs, fat, date)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`,
		entry.ID, entry.ProfileID, entry.MealType, entry.FoodName, entry.Calories,
		entry.Protein, entry.Carbs, entry.Fat, entry.Date,
	)
	if err != nil {
		return nil, insertErr("food intake", err)
	}

	span.SetAttributes(attribute.String("entry.id", entry.ID))
	return &entry, nil
}

func (r *Repo) AddStaminaSession(ctx context.Context, entry StaminaSession) (_ *StaminaSession, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.tracker.addStaminaSession")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	entry.ID = uuid.NewString()
	if entry.Date.IsZero() {
		entry.Date = r.now()
	}

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO stamina_sessions (id, profile_id, activity_type, duration, distance, date)
			VALUES ($1, $2, $3, $4, $5, $6);`,
		entry.ID, entry.ProfileID, entry.ActivityType, entry.Duration, entry.Distance, entry.Date,
	)
	if err != nil {
		return nil, insertErr("stamina session", err)
	}

	span.SetAttributes(attribute.String("entry.id", entry.ID))
	return &entry, nil
}

// ListObservations returns the metric's raw observations for the profile,
// ordered by date and then by insertion, so the last one of a day comes last.
func (r *Repo) ListObservations(ctx context.Context, params ObservationParams) (_ []insights.Observation, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.tracker.listObservations")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("profile.id", params.ProfileID),
		attribute.String("metric", params.Metric.String()),
	)

	source, ok := metricSources[params.Metric]
	if !ok {
		return nil, insights.ErrUnknownMetric
	}

	query := fmt.Sprintf(
		`SELECT date, %s FROM %s
			WHERE profile_id = $1
				AND ($2::timestamptz IS NULL OR date >= $2)
				AND ($3::timestamptz IS NULL OR date < $3)
			ORDER BY date ASC, created_at ASC;`,
		source.column, source.table,
	)

	rows, err := r.db.Query(ctx, query, params.ProfileID, params.From, params.To)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", source.table, err)
	}
	defer rows.Close()

	observations := make([]insights.Observation, 0)
	for rows.Next() {
		var o insights.Observation
		if err := rows.Scan(&o.Date, &o.Value); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		// days are UTC days, same as the range bounds above
		o.Date = o.Date.UTC()
		observations = append(observations, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("observations", len(observations)))
	return observations, nil
}

func (r *Repo) LatestWeightEntry(ctx context.Context, profileID string) (_ *WeightEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.tracker.latestWeightEntry")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var entry WeightEntry
	err = r.db.QueryRow(
		ctx,
		`SELECT id, profile_id, weight, notes, date FROM weight_entries
			WHERE profile_id = $1
			ORDER BY date DESC, created_at DESC
			LIMIT 1;`,
		profileID,
	).Scan(&entry.ID, &entry.ProfileID, &entry.Weight, &entry.Notes, &entry.Date)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNoEntries
	}
	if err != nil {
		return nil, err
	}
	entry.Date = entry.Date.UTC()

	return &entry, nil
}

func (r *Repo) AddGoal(ctx context.Context, goal Goal) (_ *Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.tracker.addGoal")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	goal.ID = uuid.NewString()
	goal.CreatedAt = r.now()

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO fitness_goals (id, profile_id, goal_type, target_value, created_at)
			VALUES ($1, $2, $3, $4, $5);`,
		goal.ID, goal.ProfileID, string(goal.GoalType), goal.TargetValue, goal.CreatedAt,
	)
	if err != nil {
		return nil, insertErr("goal", err)
	}

	return &goal, nil
}

// ActiveGoal is the most recently set goal measured on the metric.
func (r *Repo) ActiveGoal(ctx context.Context, profileID string, metric insights.Metric) (_ *Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.tracker.activeGoal")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("metric", metric.String()))

	var (
		goal     Goal
		goalType string
	)
	err = r.db.QueryRow(
		ctx,
		`SELECT id, profile_id, goal_type, target_value, created_at FROM fitness_goals
			WHERE profile_id = $1 AND goal_type = ANY($2)
			ORDER BY created_at DESC
			LIMIT 1;`,
		profileID, GoalTypesFor(metric),
	).Scan(&goal.ID, &goal.ProfileID, &goalType, &goal.TargetValue, &goal.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrGoalNotFound
	}
	if err != nil {
		return nil, err
	}

	goal.GoalType = GoalType(goalType)
	return &goal, nil
}

func (r *Repo) ListGoals(ctx context.Context, profileID string) (_ []Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.tracker.listGoals")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, profile_id, goal_type, target_value, created_at FROM fitness_goals
			WHERE profile_id = $1
			ORDER BY created_at DESC;`,
		profileID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	goals := make([]Goal, 0)
	for rows.Next() {
		var (
			goal     Goal
			goalType string
		)
		if err := rows.Scan(&goal.ID, &goal.ProfileID, &goalType, &goal.TargetValue, &goal.CreatedAt); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		goal.GoalType = GoalType(goalType)
		goals = append(goals, goal)
	}

	return goals, rows.Err()
}

func (r *Repo) GetProfile(ctx context.Context, profileID string) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.tracker.getProfile")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var p Profile
	err = r.db.QueryRow(
		ctx,
		`SELECT id, first_name, last_name, age, weight, height, activity_level FROM profiles
			WHERE id = $1;`,
		profileID,
	).Scan(&p.ID, &p.FirstName, &p.LastName, &p.Age, &p.Weight, &p.Height, &p.ActivityLevel)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}

	return &p, nil
}

// UpdateProfile overwrites the body measurements of an existing profile.
func (r *Repo) UpdateProfile(ctx context.Context, p Profile) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.tracker.updateProfile")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(
		ctx,
		`UPDATE profiles SET age = $1, weight = $2, height = $3, activity_level = $4
			WHERE id = $5;`,
		p.Age, p.Weight, p.Height, p.ActivityLevel, p.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrProfileNotFound
	}

	return nil
}

func insertErr(what string, err error) error {
	switch {
	case pkg.IsForeignKeyViolationError(err):
		return ErrProfileNotFound
	case pkg.IsCheckViolationError(err):
		return fmt.Errorf("insert %s: %w", what, ErrInvalidEntry)
	case pkg.IsUniqueViolationError(err):
		return fmt.Errorf("insert %s: %w", what, ErrDuplicateEntry)
	}
	return fmt.Errorf("insert %s: %w", what, err)
}
