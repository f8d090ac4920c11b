package workouts

import "time"

type Workout struct {
	ID     int       `json:"id"`
	UserID int       `json:"userId"`
	Name   string    `json:"name"`
	Date   time.Time `json:"date"`
}

// PerformedExercise is one catalog exercise done within a workout,
// together with its sets.
type PerformedExercise struct {
	ID           int    `json:"id"`
	WorkoutID    int    `json:"workoutId"`
	ExerciseID   int    `json:"exerciseId"`
	ExerciseName string `json:"exerciseName"`
	MuscleGroup  string `json:"muscleGroup"`
	Sets         []Set  `json:"sets"`
}

type Set struct {
	ID                  int     `json:"id"`
	PerformedExerciseID int     `json:"performedExerciseId"`
	Weight              float64 `json:"weight"`
	Reps                int     `json:"reps"`
}

// WorkoutDetails is a workout with its full exercise and set tree,
// as shown on the workout screen for a single day.
type WorkoutDetails struct {
	Workout   Workout             `json:"workout"`
	Exercises []PerformedExercise `json:"exercises"`
}

// DaySetCount is the per-day workout rollup consumed by the
// dashboard summary: how many distinct exercises and how many sets
// were logged on a given date.
type DaySetCount struct {
	Date              time.Time `json:"date"`
	DistinctExercises int       `json:"distinctExercises"`
	TotalSets         int       `json:"totalSets"`
}

// MonthSetCount is the per-month set total, Month being the first
// day of the month.
type MonthSetCount struct {
	Month     time.Time `json:"month"`
	TotalSets int       `json:"totalSets"`
}

type AddWorkoutParams struct {
	UserID int       `json:"userId"`
	Name   string    `json:"name"`
	Date   time.Time `json:"date"`
}

type AddPerformedExerciseParams struct {
	WorkoutID  int `json:"workoutId"`
	ExerciseID int `json:"exerciseId"`
}

type AddSetParams struct {
	PerformedExerciseID int     `json:"performedExerciseId"`
	Weight              float64 `json:"weight"`
	Reps                int     `json:"reps"`
}
