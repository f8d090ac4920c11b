package nutrition

import "time"

type Food struct {
	ID                 int     `json:"id"`
	Name               string  `json:"name"`
	CaloriesPerServing float64 `json:"caloriesPerServing"`
	Category           *string `json:"category"`
}

var MealType = struct {
	Breakfast string
	Lunch     string
	Dinner    string
	Snacks    string
}{
	Breakfast: "Breakfast",
	Lunch:     "Lunch",
	Dinner:    "Dinner",
	Snacks:    "Snacks",
}

var MealTypes = []string{
	MealType.Breakfast,
	MealType.Lunch,
	MealType.Dinner,
	MealType.Snacks,
}

// FoodLogEntry is one logged portion of a food for a user and date.
type FoodLogEntry struct {
	ID              int       `json:"id"`
	UserID          int       `json:"userId"`
	FoodID          int       `json:"foodId"`
	FoodName        string    `json:"foodName"`
	Date            time.Time `json:"date"`
	ServingQuantity float64   `json:"servingQuantity"`
	MealType        string    `json:"mealType"`
	Calories        float64   `json:"calories"`
}

// CalorieGoal holds a user's daily calorie targets. Absent rows fall
// back to the documented defaults, see DefaultCalorieGoal.
type CalorieGoal struct {
	UserID    int `json:"userId"`
	DailyGoal int `json:"dailyGoal"`
	Breakfast int `json:"breakfast"`
	Lunch     int `json:"lunch"`
	Dinner    int `json:"dinner"`
	Snacks    int `json:"snacks"`
}

// DefaultCalorieGoal is returned for users who never saved goals.
func DefaultCalorieGoal(userID int) CalorieGoal {
	return CalorieGoal{
		UserID:    userID,
		DailyGoal: 2000,
		Breakfast: 600,
		Lunch:     600,
		Dinner:    600,
		Snacks:    200,
	}
}

// DayCalorieTotal is the consumed-calories rollup for one date,
// consumed by the dashboard summary.
type DayCalorieTotal struct {
	Date     time.Time `json:"date"`
	Calories float64   `json:"calories"`
}

type AddFoodParams struct {
	Name               string  `json:"name"`
	CaloriesPerServing float64 `json:"caloriesPerServing"`
	Category           *string `json:"category"`
}

type AddFoodLogParams struct {
	UserID          int       `json:"userId"`
	FoodID          int       `json:"foodId"`
	Date            time.Time `json:"date"`
	ServingQuantity float64   `json:"servingQuantity"`
	MealType        string    `json:"mealType"`
}

type UpdateFoodLogParams struct {
	ID              int      `json:"id"`
	ServingQuantity *float64 `json:"servingQuantity"`
	MealType        *string  `json:"mealType"`
}
