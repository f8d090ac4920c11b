package nutrition

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
	ErrFoodNotFound         = errors.New("food not found")
	ErrFoodLogEntryNotFound = errors.New("food log entry not found")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) ListFoods(ctx context.Context) (_ []Food, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.listFoods")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT
		    id, name, calories_per_serving, category
		FROM foods
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("foods [query]: %w", err)
	}
	defer rows.Close()

	var foods []Food
	for rows.Next() {
		var food Food
		if err := rows.Scan(
			&food.ID,
			&food.Name,
			&food.CaloriesPerServing,
			&food.Category,
		); err != nil {
			return nil, fmt.Errorf("foods [rows scan]: %w", err)
		}
		foods = append(foods, food)
	}

	span.SetAttributes(attribute.Int("foods.count", len(foods)))
	return foods, nil
}

func (r *Repo) AddFood(ctx context.Context, params AddFoodParams) (_ *Food, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.addFood")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	food := Food{
		Name:               params.Name,
		CaloriesPerServing: params.CaloriesPerServing,
		Category:           params.Category,
	}
	err = r.db.QueryRow(ctx, `
		INSERT INTO foods (name, calories_per_serving, category)
		VALUES ($1, $2, $3)
		RETURNING id
	`,
		food.Name,
		food.CaloriesPerServing,
		food.Category,
	).Scan(&food.ID)
	if err != nil {
		return nil, fmt.Errorf("insert food: %w", err)
	}

	return &food, nil
}

func (r *Repo) UpdateFood(ctx context.Context, food Food) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.updateFood")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `
		UPDATE foods
		SET name = $2, calories_per_serving = $3, category = $4
		WHERE id = $1
	`,
		food.ID,
		food.Name,
		food.CaloriesPerServing,
		food.Category,
	)
	if err != nil {
		return fmt.Errorf("update food: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrFoodNotFound
	}

	return nil
}

func (r *Repo) DeleteFood(ctx context.Context, foodID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.deleteFood")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `DELETE FROM foods WHERE id = $1`, foodID)
	if err != nil {
		return fmt.Errorf("delete food: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrFoodNotFound
	}

	return nil
}

// ListFoodLog returns a user's log entries for a single date, joined
// with the food catalog so each entry carries its name and computed
// calories.
func (r *Repo) ListFoodLog(ctx context.Context, userID int, date time.Time) (_ []FoodLogEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.listFoodLog")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(ctx, `
		SELECT
		    fl.id, fl.user_id, fl.food_id, f.name,
		    fl.log_date, fl.serving_quantity, fl.meal_type,
		    f.calories_per_serving * fl.serving_quantity AS calories
		FROM food_log fl
		JOIN foods f ON f.id = fl.food_id
		WHERE fl.user_id = $1 AND fl.log_date = $2::date
		ORDER BY fl.id
	`, userID, date)
	if err != nil {
		return nil, fmt.Errorf("food log [query]: %w", err)
	}
	defer rows.Close()

	var entries []FoodLogEntry
	for rows.Next() {
		var entry FoodLogEntry
		if err := rows.Scan(
			&entry.ID,
			&entry.UserID,
			&entry.FoodID,
			&entry.FoodName,
			&entry.Date,
			&entry.ServingQuantity,
			&entry.MealType,
			&entry.Calories,
		); err != nil {
			return nil, fmt.Errorf("food log [rows scan]: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

func (r *Repo) AddFoodLog(ctx context.Context, params AddFoodLogParams) (_ *FoodLogEntry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.addFoodLog")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	entry := FoodLogEntry{
		UserID:          params.UserID,
		FoodID:          params.FoodID,
		Date:            params.Date,
		ServingQuantity: params.ServingQuantity,
		MealType:        params.MealType,
	}
	if entry.Date.IsZero() {
		entry.Date = time.Now()
	}
	if entry.MealType == "" {
		entry.MealType = MealType.Snacks
	}

	err = r.db.QueryRow(ctx, `
		INSERT INTO food_log (user_id, food_id, log_date, serving_quantity, meal_type)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`,
		entry.UserID,
		entry.FoodID,
		entry.Date,
		entry.ServingQuantity,
		entry.MealType,
	).Scan(&entry.ID)
	if err != nil {
		return nil, fmt.Errorf("insert food log entry: %w", err)
	}

	return &entry, nil
}

func (r *Repo) UpdateFoodLog(ctx context.Context, params UpdateFoodLogParams) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.updateFoodLog")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `
		UPDATE food_log
		SET
		    serving_quantity = COALESCE($2, serving_quantity),
		    meal_type = COALESCE($3, meal_type)
		WHERE id = $1
	`,
		params.ID,
		params.ServingQuantity,
		params.MealType,
	)
	if err != nil {
		return fmt.Errorf("update food log entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrFoodLogEntryNotFound
	}

	return nil
}

func (r *Repo) DeleteFoodLog(ctx context.Context, entryID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.deleteFoodLog")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx, `DELETE FROM food_log WHERE id = $1`, entryID)
	if err != nil {
		return fmt.Errorf("delete food log entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrFoodLogEntryNotFound
	}

	return nil
}

// DailyCalories returns the summed calories a user logged on a date.
func (r *Repo) DailyCalories(ctx context.Context, userID int, date time.Time) (_ float64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.dailyCalories")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	var calories float64
	err = r.db.QueryRow(ctx, `
		SELECT COALESCE(SUM(f.calories_per_serving * fl.serving_quantity), 0)
		FROM food_log fl
		JOIN foods f ON f.id = fl.food_id
		WHERE fl.user_id = $1 AND fl.log_date = $2::date
	`, userID, date).Scan(&calories)
	if err != nil {
		return 0, fmt.Errorf("daily calories [query row]: %w", err)
	}

	return calories, nil
}

// ListDailyCalorieTotals returns per-date calorie sums within
// [from, to], ordered by date. Dates without entries yield no row.
func (r *Repo) ListDailyCalorieTotals(ctx context.Context, userID int, from, to time.Time) (_ []DayCalorieTotal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.listDailyCalorieTotals")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(ctx, `
		SELECT
		    fl.log_date,
		    SUM(f.calories_per_serving * fl.serving_quantity)
		FROM food_log fl
		JOIN foods f ON f.id = fl.food_id
		WHERE fl.user_id = $1
		  AND fl.log_date BETWEEN $2::date AND $3::date
		GROUP BY fl.log_date
		ORDER BY fl.log_date
	`, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("daily calorie totals [query]: %w", err)
	}
	defer rows.Close()

	var totals []DayCalorieTotal
	for rows.Next() {
		var total DayCalorieTotal
		if err := rows.Scan(&total.Date, &total.Calories); err != nil {
			return nil, fmt.Errorf("daily calorie totals [rows scan]: %w", err)
		}
		totals = append(totals, total)
	}

	return totals, nil
}

// GetCalorieGoal returns a user's saved goals, or the documented
// defaults when the user never saved any.
func (r *Repo) GetCalorieGoal(ctx context.Context, userID int) (_ CalorieGoal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.getCalorieGoal")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	goal := CalorieGoal{UserID: userID}
	err = r.db.QueryRow(ctx, `
		SELECT
		    daily_goal,
		    COALESCE(breakfast, 600),
		    COALESCE(lunch, 600),
		    COALESCE(dinner, 600),
		    COALESCE(snacks, 200)
		FROM user_calorie_goals
		WHERE user_id = $1
	`, userID).Scan(
		&goal.DailyGoal,
		&goal.Breakfast,
		&goal.Lunch,
		&goal.Dinner,
		&goal.Snacks,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return DefaultCalorieGoal(userID), nil
	}
	if err != nil {
		return CalorieGoal{}, fmt.Errorf("calorie goal [query row]: %w", err)
	}

	return goal, nil
}

// UpsertCalorieGoal saves a user's goals, overwriting existing ones.
func (r *Repo) UpsertCalorieGoal(ctx context.Context, goal CalorieGoal) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.upsertCalorieGoal")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", goal.UserID))

	_, err = r.db.Exec(ctx, `
		INSERT INTO user_calorie_goals (user_id, daily_goal, breakfast, lunch, dinner, snacks)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id) DO UPDATE SET
		    daily_goal = EXCLUDED.daily_goal,
		    breakfast = EXCLUDED.breakfast,
		    lunch = EXCLUDED.lunch,
		    dinner = EXCLUDED.dinner,
		    snacks = EXCLUDED.snacks
	`,
		goal.UserID,
		goal.DailyGoal,
		goal.Breakfast,
		goal.Lunch,
		goal.Dinner,
		goal.Snacks,
	)
	if err != nil {
		return fmt.Errorf("upsert calorie goal: %w", err)
	}

	return nil
}
