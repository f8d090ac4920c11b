package dashboard

// Summary is the home screen report. Field names are part of the
// mobile client contract and must not change.
type Summary struct {
	TodayWorkout  TodayWorkout  `json:"todayWorkout"`
	TodayCalories TodayCalories `json:"todayCalories"`
	WeeklyStats   WeeklyStats   `json:"weeklyStats"`
	DailyStats    []DayStat     `json:"dailyStats"`
	MonthlyStats  []MonthStat   `json:"monthlyStats"`
}

type TodayWorkout struct {
	Exercises       int  `json:"exercises"`
	TotalSets       int  `json:"totalSets"`
	DurationMinutes int  `json:"durationMinutes"`
	Completed       bool `json:"completed"`
}

type TodayCalories struct {
	Consumed int `json:"consumed"`
	Goal     int `json:"goal"`
}

// WeeklyStats covers the 7 day window ending on the reference date.
// WorkoutsCompleted is in fact the total number of sets in the
// window; the client renders it under that name and relies on it, so
// the misleading field name stays.
type WeeklyStats struct {
	WorkoutsCompleted int `json:"workoutsCompleted"`
	WorkoutDays       int `json:"workoutDays"`
	AvgCalories       int `json:"avgCalories"`
}

// DayStat is one bar of the weekly chart, Label being the weekday
// abbreviation ("Mon"). Calories stays unrounded here; only the
// todayCalories and avgCalories projections round.
type DayStat struct {
	Label          string  `json:"label"`
	WorkoutMinutes int     `json:"workoutMinutes"`
	Calories       float64 `json:"calories"`
}

// MonthStat is one bar of the monthly chart, Label being the month
// abbreviation ("Jan").
type MonthStat struct {
	Label     string `json:"label"`
	TotalSets int    `json:"totalSets"`
}
