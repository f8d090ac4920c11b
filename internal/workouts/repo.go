package workouts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mkovacevic/fitlog/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrWorkoutNotFound           = errors.New("workout not found")
	ErrPerformedExerciseNotFound = errors.New("performed exercise not found")
	ErrSetNotFound               = errors.New("set not found")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, params AddWorkoutParams) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	workout := Workout{
		UserID: params.UserID,
		Name:   params.Name,
		Date:   params.Date,
	}
	if workout.Date.IsZero() {
		workout.Date = time.Now()
	}

	err = r.db.QueryRow(ctx, `
		INSERT INTO workouts (user_id, name, workout_date)
		VALUES ($1, $2, $3)
		RETURNING id
	`,
		workout.UserID,
		workout.Name,
		workout.Date,
	).Scan(&workout.ID)
	if err != nil {
		return nil, fmt.Errorf("insert workout: %w", err)
	}

	return &workout, nil
}

// Delete removes a workout together with its performed exercises and
// their sets, all in a single transaction.
func (r *Repo) Delete(ctx context.Context, workoutID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("workout.id", workoutID))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
			}
		} else {
			err = tx.Commit(ctx)
		}
	}()

	if _, err = tx.Exec(ctx, `
		DELETE FROM sets
		WHERE performed_exercise_id IN (
			SELECT id FROM performed_exercises WHERE workout_id = $1
		)
	`, workoutID); err != nil {
		return fmt.Errorf("delete workout sets: %w", err)
	}

	if _, err = tx.Exec(ctx, `
		DELETE FROM performed_exercises WHERE workout_id = $1
	`, workoutID); err != nil {
		return fmt.Errorf("delete workout exercises: %w", err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM workouts WHERE id = $1`, workoutID)
	if err != nil {
		return fmt.Errorf("delete workout: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrWorkoutNotFound
	}

	return nil
}

func (r *Repo) AddPerformedExercise(ctx context.Context, params AddPerformedExerciseParams) (_ *PerformedExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.addPerformedExercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	performedExercise := PerformedExercise{
		WorkoutID:  params.WorkoutID,
		ExerciseID: params.ExerciseID,
	}
	err = r.db.QueryRow(ctx, `
		INSERT INTO performed_exercises (workout_id, exercise_id)
		VALUES ($1, $2)
		RETURNING id
	`,
		performedExercise.WorkoutID,
		performedExercise.ExerciseID,
	).Scan(&performedExercise.ID)
	if err != nil {
		return nil, fmt.Errorf("insert performed exercise: %w", err)
	}

	return &performedExercise, nil
}

// DeletePerformedExercise removes a performed exercise and its sets.
func (r *Repo) DeletePerformedExercise(ctx context.Context, performedExerciseID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.deletePerformedExercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
			}
		} else {
			err = tx.Commit(ctx)
		}
	}()

	if _, err = tx.Exec(ctx, `
		DELETE FROM sets WHERE performed_exercise_id = $1
	`, performedExerciseID); err != nil {
		return fmt.Errorf("delete sets: %w", err)
	}

	tag, err := tx.Exec(ctx, `
		DELETE FROM performed_exercises WHERE id = $1
	`, performedExerciseID)
	if err != nil {
		return fmt.Errorf("delete performed exercise: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrPerformedExerciseNotFound
	}

	return nil
}

func (r *Repo) AddSet(ctx context.Context, params AddSetParams) (_ *Set, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.addSet")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	set := Set{
		PerformedExerciseID: params.PerformedExerciseID,
		Weight:              params.Weight,
		Reps:                params.Reps,
	}
	err = r.db.QueryRow(ctx, `
		INSERT INTO sets (performed_exercise_id, weight, reps)
		VALUES ($1, $2, $3)
		RETURNING id
	`,
		set.PerformedExerciseID,
		set.Weight,
		set.Reps,
	).Scan(&set.ID)
	if err != nil {
		return nil, fmt.Errorf("insert set: %w", err)
	}

	return &set, nil
}

func (r *Repo) DeleteSet(ctx context.Context, setID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.deleteSet")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `DELETE FROM sets WHERE id = $1`, setID)
	if err != nil {
		return fmt.Errorf("delete set: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrSetNotFound
	}

	return nil
}

// Details returns the full workout tree for a user and date in one
// joined query: the workout row, its performed exercises with catalog
// names, and their sets.
func (r *Repo) Details(ctx context.Context, userID int, date time.Time) (_ *WorkoutDetails, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.details")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("user.id", userID),
		attribute.String("workout.date", date.Format(time.DateOnly)),
	)

	rows, err := r.db.Query(ctx, `
		SELECT
		    w.id, w.user_id, w.name, w.workout_date,
		    pe.id, pe.exercise_id, e.name, e.muscle_group,
		    s.id, s.weight, s.reps
		FROM workouts w
		LEFT JOIN performed_exercises pe ON pe.workout_id = w.id
		LEFT JOIN exercises e ON e.id = pe.exercise_id
		LEFT JOIN sets s ON s.performed_exercise_id = pe.id
		WHERE w.user_id = $1 AND w.workout_date = $2::date
		ORDER BY pe.id, s.id
	`, userID, date)
	if err != nil {
		return nil, fmt.Errorf("workout details [query]: %w", err)
	}
	defer rows.Close()

	details, err := scanWorkoutTree(rows)
	if err != nil {
		return nil, err
	}
	if len(details) == 0 {
		return nil, ErrWorkoutNotFound
	}

	return details[0], nil
}

// History returns all workouts of a user with their full exercise and
// set trees, newest first, grouped from a single joined query.
func (r *Repo) History(ctx context.Context, userID int) (_ []*WorkoutDetails, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.history")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(ctx, `
		SELECT
		    w.id, w.user_id, w.name, w.workout_date,
		    pe.id, pe.exercise_id, e.name, e.muscle_group,
		    s.id, s.weight, s.reps
		FROM workouts w
		LEFT JOIN performed_exercises pe ON pe.workout_id = w.id
		LEFT JOIN exercises e ON e.id = pe.exercise_id
		LEFT JOIN sets s ON s.performed_exercise_id = pe.id
		WHERE w.user_id = $1
		ORDER BY w.workout_date DESC, w.id DESC, pe.id, s.id
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("workout history [query]: %w", err)
	}
	defer rows.Close()

	history, err := scanWorkoutTree(rows)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int("workouts.count", len(history)))
	return history, nil
}

// ListDaySetCounts returns, per workout date within [from, to], the
// number of distinct performed exercises and the total set count.
func (r *Repo) ListDaySetCounts(ctx context.Context, userID int, from, to time.Time) (_ []DaySetCount, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.listDaySetCounts")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(ctx, `
		SELECT
		    w.workout_date,
		    COUNT(DISTINCT pe.id),
		    COUNT(s.id)
		FROM workouts w
		LEFT JOIN performed_exercises pe ON pe.workout_id = w.id
		LEFT JOIN sets s ON s.performed_exercise_id = pe.id
		WHERE w.user_id = $1
		  AND w.workout_date BETWEEN $2::date AND $3::date
		GROUP BY w.workout_date
		ORDER BY w.workout_date
	`, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("day set counts [query]: %w", err)
	}
	defer rows.Close()

	var counts []DaySetCount
	for rows.Next() {
		var count DaySetCount
		if err := rows.Scan(
			&count.Date,
			&count.DistinctExercises,
			&count.TotalSets,
		); err != nil {
			return nil, fmt.Errorf("day set counts [rows scan]: %w", err)
		}
		counts = append(counts, count)
	}

	return counts, nil
}

// ListMonthSetCounts returns total set counts grouped by month,
// Month being the first day of each month within [from, to].
func (r *Repo) ListMonthSetCounts(ctx context.Context, userID int, from, to time.Time) (_ []MonthSetCount, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.listMonthSetCounts")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(ctx, `
		SELECT
		    date_trunc('month', w.workout_date)::date AS month,
		    COUNT(s.id)
		FROM workouts w
		JOIN performed_exercises pe ON pe.workout_id = w.id
		JOIN sets s ON s.performed_exercise_id = pe.id
		WHERE w.user_id = $1
		  AND w.workout_date BETWEEN $2::date AND $3::date
		GROUP BY month
		ORDER BY month
	`, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("month set counts [query]: %w", err)
	}
	defer rows.Close()

	var counts []MonthSetCount
	for rows.Next() {
		var count MonthSetCount
		if err := rows.Scan(&count.Month, &count.TotalSets); err != nil {
			return nil, fmt.Errorf("month set counts [rows scan]: %w", err)
		}
		counts = append(counts, count)
	}

	return counts, nil
}

// scanWorkoutTree groups flat workout/exercise/set join rows into
// WorkoutDetails values, preserving row order.
func scanWorkoutTree(rows pgx.Rows) ([]*WorkoutDetails, error) {
	var (
		ordered   []*WorkoutDetails
		byWorkout = map[int]*WorkoutDetails{}
	)
	for rows.Next() {
		var (
			workout    Workout
			peID       *int
			exerciseID *int
			exName     *string
			exMuscle   *string
			setID      *int
			setWeight  *float64
			setReps    *int
		)
		if err := rows.Scan(
			&workout.ID, &workout.UserID, &workout.Name, &workout.Date,
			&peID, &exerciseID, &exName, &exMuscle,
			&setID, &setWeight, &setReps,
		); err != nil {
			return nil, fmt.Errorf("workout tree [rows scan]: %w", err)
		}

		details, ok := byWorkout[workout.ID]
		if !ok {
			details = &WorkoutDetails{
				Workout:   workout,
				Exercises: []PerformedExercise{},
			}
			byWorkout[workout.ID] = details
			ordered = append(ordered, details)
		}

		// left joins produce null exercise columns for empty workouts
		if peID == nil {
			continue
		}

		var performedExercise *PerformedExercise
		for i := range details.Exercises {
			if details.Exercises[i].ID == *peID {
				performedExercise = &details.Exercises[i]
				break
			}
		}
		if performedExercise == nil {
			details.Exercises = append(details.Exercises, PerformedExercise{
				ID:           *peID,
				WorkoutID:    workout.ID,
				ExerciseID:   *exerciseID,
				ExerciseName: derefString(exName),
				MuscleGroup:  derefString(exMuscle),
				Sets:         []Set{},
			})
			performedExercise = &details.Exercises[len(details.Exercises)-1]
		}

		if setID != nil {
			performedExercise.Sets = append(performedExercise.Sets, Set{
				ID:                  *setID,
				PerformedExerciseID: *peID,
				Weight:              derefFloat(setWeight),
				Reps:                derefInt(setReps),
			})
		}
	}

	return ordered, nil
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefFloat(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}

func derefInt(i *int) int {
	if i == nil {
		return 0
	}
	return *i
}
