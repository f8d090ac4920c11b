package dashboard

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/mkovacevic/fitlog/internal/nutrition"
	"github.com/mkovacevic/fitlog/internal/telemetry/tracing"
	"github.com/mkovacevic/fitlog/internal/workouts"

	"go.opentelemetry.io/otel/attribute"
)

// minutesPerSet converts set counts into workout minutes for the
// summary charts. No per-set durations are stored, every set counts
// as five minutes.
const minutesPerSet = 5

const (
	dayWindow   = 7
	monthWindow = 7
	dayKey      = "2006-01-02"
	monthKey    = "2006-01"
)

//go:generate mockgen -source=$GOFILE -destination=aggregator_mocks_test.go -package=dashboard_test

type workoutSource interface {
	ListDaySetCounts(ctx context.Context, userID int, from, to time.Time) (_ []workouts.DaySetCount, err error)
	ListMonthSetCounts(ctx context.Context, userID int, from, to time.Time) (_ []workouts.MonthSetCount, err error)
}

type nutritionSource interface {
	ListDailyCalorieTotals(ctx context.Context, userID int, from, to time.Time) (_ []nutrition.DayCalorieTotal, err error)
	GetCalorieGoal(ctx context.Context, userID int) (_ nutrition.CalorieGoal, err error)
}

// Aggregator assembles the home summary report from the workout and
// nutrition repos. It is stateless and safe for concurrent use; the
// reference date is injected per call so the report is reproducible.
type Aggregator struct {
	workouts  workoutSource
	nutrition nutritionSource
}

func NewAggregator(workoutSrc workoutSource, nutritionSrc nutritionSource) *Aggregator {
	return &Aggregator{
		workouts:  workoutSrc,
		nutrition: nutritionSrc,
	}
}

// dayBucket accumulates one day of the 7 day window.
type dayBucket struct {
	label     string
	sets      int
	exercises int
	calories  float64
}

// Summary builds the report for the 7 day window ending on
// referenceDate, plus the 7 month set-count trail. A user id with no
// data (including id 0, which some older clients still send) yields a
// well-formed all-zero report.
func (a *Aggregator) Summary(ctx context.Context, userID int, referenceDate time.Time) (_ *Summary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "dashboard.aggregator.summary")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("user.id", userID),
		attribute.String("reference.date", referenceDate.Format(dayKey)),
	)

	refDay := time.Date(
		referenceDate.Year(), referenceDate.Month(), referenceDate.Day(),
		0, 0, 0, 0, referenceDate.Location(),
	)
	windowStart := refDay.AddDate(0, 0, -(dayWindow - 1))

	// seed the dense 7 day window, oldest first
	dayKeys := make([]string, 0, dayWindow)
	days := make(map[string]*dayBucket, dayWindow)
	for i := 0; i < dayWindow; i++ {
		day := windowStart.AddDate(0, 0, i)
		key := day.Format(dayKey)
		dayKeys = append(dayKeys, key)
		days[key] = &dayBucket{label: day.Format("Mon")}
	}

	daySetCounts, err := a.workouts.ListDaySetCounts(ctx, userID, windowStart, refDay)
	if err != nil {
		return nil, fmt.Errorf("day set counts: %w", err)
	}

	// merge workout rows into the window; rows outside it (clock skew,
	// sloppy sources) are dropped
	var fallbackKey string
	for _, count := range daySetCounts {
		key := count.Date.Format(dayKey)
		bucket, ok := days[key]
		if !ok {
			continue
		}
		bucket.sets = count.TotalSets
		bucket.exercises = count.DistinctExercises
		// most recent day with actual sets; key compare keeps this
		// independent of the row order
		if count.TotalSets > 0 && key > fallbackKey {
			fallbackKey = key
		}
	}

	calorieTotals, err := a.nutrition.ListDailyCalorieTotals(ctx, userID, windowStart, refDay)
	if err != nil {
		return nil, fmt.Errorf("daily calorie totals: %w", err)
	}

	var totalCalories float64
	for _, total := range calorieTotals {
		key := total.Date.Format(dayKey)
		bucket, ok := days[key]
		if !ok {
			continue
		}
		bucket.calories = total.Calories
		totalCalories += total.Calories
	}

	goal, err := a.nutrition.GetCalorieGoal(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("calorie goal: %w", err)
	}

	monthlyStats, err := a.monthlyStats(ctx, userID, refDay)
	if err != nil {
		return nil, err
	}

	avgCalories := 0
	if totalCalories > 0 {
		avgCalories = int(math.Round(totalCalories / dayWindow))
	}

	var (
		totalSets   int
		workoutDays int
	)
	for _, bucket := range days {
		totalSets += bucket.sets
		if bucket.sets > 0 {
			workoutDays++
		}
	}

	todayKey := refDay.Format(dayKey)
	workoutBucket := days[todayKey]
	if workoutBucket.sets == 0 && fallbackKey != "" {
		// nothing logged today, show the most recent workout instead
		workoutBucket = days[fallbackKey]
	}

	// a day can carry performed exercises with no sets yet; without
	// sets there is no workout to show
	var todayWorkout TodayWorkout
	if workoutBucket.sets > 0 {
		todayWorkout = TodayWorkout{
			Exercises:       workoutBucket.exercises,
			TotalSets:       workoutBucket.sets,
			DurationMinutes: workoutBucket.sets * minutesPerSet,
			Completed:       workoutBucket.exercises > 0,
		}
	}

	dailyStats := make([]DayStat, 0, dayWindow)
	for _, key := range dayKeys {
		bucket := days[key]
		dailyStats = append(dailyStats, DayStat{
			Label:          bucket.label,
			WorkoutMinutes: bucket.sets * minutesPerSet,
			Calories:       bucket.calories,
		})
	}

	return &Summary{
		TodayWorkout: todayWorkout,
		TodayCalories: TodayCalories{
			Consumed: int(math.Round(days[todayKey].calories)),
			Goal:     goal.DailyGoal,
		},
		WeeklyStats: WeeklyStats{
			WorkoutsCompleted: totalSets,
			WorkoutDays:       workoutDays,
			AvgCalories:       avgCalories,
		},
		DailyStats:   dailyStats,
		MonthlyStats: monthlyStats,
	}, nil
}

// monthlyStats covers the reference month and the 6 before it.
func (a *Aggregator) monthlyStats(ctx context.Context, userID int, refDay time.Time) ([]MonthStat, error) {
	firstMonth := time.Date(refDay.Year(), refDay.Month(), 1, 0, 0, 0, 0, refDay.Location()).
		AddDate(0, -(monthWindow - 1), 0)

	monthKeys := make([]string, 0, monthWindow)
	totals := make(map[string]int, monthWindow)
	labels := make(map[string]string, monthWindow)
	for i := 0; i < monthWindow; i++ {
		month := firstMonth.AddDate(0, i, 0)
		key := month.Format(monthKey)
		monthKeys = append(monthKeys, key)
		labels[key] = month.Format("Jan")
	}

	monthSetCounts, err := a.workouts.ListMonthSetCounts(ctx, userID, firstMonth, refDay)
	if err != nil {
		return nil, fmt.Errorf("month set counts: %w", err)
	}

	for _, count := range monthSetCounts {
		key := count.Month.Format(monthKey)
		if _, ok := labels[key]; ok {
			totals[key] = count.TotalSets
		}
	}

	stats := make([]MonthStat, 0, monthWindow)
	for _, key := range monthKeys {
		stats = append(stats, MonthStat{
			Label:     labels[key],
			TotalSets: totals[key],
		})
	}
	return stats, nil
}
