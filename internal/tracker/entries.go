package tracker

import (
	"time"

	"github.com/2beens/gymlog/internal/insights"
)

type Profile struct {
	ID            string   `json:"id"`
	FirstName     string   `json:"firstName"`
	LastName      string   `json:"lastName"`
	Age           *int     `json:"age,omitempty" validate:"omitempty,gt=0,lt=130"`
	Weight        *float64 `json:"weight,omitempty" validate:"omitempty,gt=0,lte=500"`
	Height        *float64 `json:"height,omitempty" validate:"omitempty,gt=0,lte=300"`
	ActivityLevel string   `json:"activityLevel,omitempty" validate:"omitempty,oneof=low medium high"`
}

type WeightEntry struct {
	ID        string    `json:"id"`
	ProfileID string    `json:"profileId"`
	Weight    float64   `json:"weight" validate:"gt=0,lte=500"`
	Notes     string    `json:"notes,omitempty" validate:"max=500"`
	Date      time.Time `json:"date"`
}

type CalorieBurn struct {
	ID             string    `json:"id"`
	ProfileID      string    `json:"profileId"`
	ActivityType   string    `json:"activityType" validate:"required,max=64"`
	Duration       float64   `json:"duration" validate:"gt=0,lte=1440"`
	CaloriesBurned float64   `json:"caloriesBurned" validate:"gt=0,lte=20000"`
	Date           time.Time `json:"date"`
}

type FoodIntake struct {
	ID        string    `json:"id"`
	ProfileID string    `json:"profileId"`
	MealType  string    `json:"mealType" validate:"required,oneof=breakfast lunch dinner snack"`
	FoodName  string    `json:"foodName" validate:"required,max=128"`
	Calories  float64   `json:"calories" validate:"gte=0,lte=20000"`
	Protein   *float64  `json:"protein,omitempty" validate:"omitempty,gte=0"`
	Carbs     *float64  `json:"carbs,omitempty" validate:"omitempty,gte=0"`
	Fat       *float64  `json:"fat,omitempty" validate:"omitempty,gte=0"`
	Date      time.Time `json:"date"`
}

type StaminaSession struct {
	ID           string    `json:"id"`
	ProfileID    string    `json:"profileId"`
	ActivityType string    `json:"activityType" validate:"required,max=64"`
	Duration     float64   `json:"duration" validate:"gt=0,lte=1440"`
	Distance     *float64  `json:"distance,omitempty" validate:"omitempty,gte=0"`
	Date         time.Time `json:"date"`
}

type GoalType string

const (
	GoalWeightLoss    GoalType = "WEIGHT_LOSS"
	GoalWeightGain    GoalType = "WEIGHT_GAIN"
	GoalCalorieBurn   GoalType = "CALORIE_BURN"
	GoalCalorieIntake GoalType = "CALORIE_INTAKE"
	GoalStamina       GoalType = "STAMINA"
)

var goalType2metric = map[GoalType]insights.Metric{
	GoalWeightLoss:    insights.MetricWeight,
	GoalWeightGain:    insights.MetricWeight,
	GoalCalorieBurn:   insights.MetricCalories,
	GoalCalorieIntake: insights.MetricFood,
	GoalStamina:       insights.MetricStamina,
}

// Metric is the tracked metric a goal of this type is measured on.
func (g GoalType) Metric() (insights.Metric, bool) {
	m, ok := goalType2metric[g]
	return m, ok
}

// GoalTypesFor lists goal types measured on the metric, in a stable order.
func GoalTypesFor(metric insights.Metric) []string {
	var types []string
	for _, g := range []GoalType{GoalWeightLoss, GoalWeightGain, GoalCalorieBurn, GoalCalorieIntake, GoalStamina} {
		if goalType2metric[g] == metric {
			types = append(types, string(g))
		}
	}
	return types
}

type Goal struct {
	ID          string    `json:"id"`
	ProfileID   string    `json:"profileId"`
	GoalType    GoalType  `json:"goalType" validate:"required,oneof=WEIGHT_LOSS WEIGHT_GAIN CALORIE_BURN CALORIE_INTAKE STAMINA"`
	TargetValue float64   `json:"targetValue" validate:"gt=0,lte=20000"`
	CreatedAt   time.Time `json:"createdAt"`
}
