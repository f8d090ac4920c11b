package nutrition

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/mkovacevic/fitlog/internal/telemetry/metrics"
	"github.com/mkovacevic/fitlog/internal/telemetry/tracing"
	"github.com/mkovacevic/fitlog/pkg"

	"github.com/coocood/freecache"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

const (
	oneHour          = 60 * 60
	foodsCacheExpire = oneHour * 6
)

var foodsCacheKey = []byte("foods::all")

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=nutrition_test

type nutritionRepo interface {
	ListFoods(ctx context.Context) (_ []Food, err error)
	AddFood(ctx context.Context, params AddFoodParams) (_ *Food, err error)
	UpdateFood(ctx context.Context, food Food) (err error)
	DeleteFood(ctx context.Context, foodID int) (err error)
	ListFoodLog(ctx context.Context, userID int, date time.Time) (_ []FoodLogEntry, err error)
	AddFoodLog(ctx context.Context, params AddFoodLogParams) (_ *FoodLogEntry, err error)
	UpdateFoodLog(ctx context.Context, params UpdateFoodLogParams) (err error)
	DeleteFoodLog(ctx context.Context, entryID int) (err error)
	DailyCalories(ctx context.Context, userID int, date time.Time) (_ float64, err error)
	GetCalorieGoal(ctx context.Context, userID int) (_ CalorieGoal, err error)
	UpsertCalorieGoal(ctx context.Context, goal CalorieGoal) (err error)
}

type Handler struct {
	repo           nutritionRepo
	cache          *freecache.Cache
	metricsManager *metrics.Manager
}

func NewHandler(repo nutritionRepo, metricsManager *metrics.Manager) *Handler {
	megabyte := 1024 * 1024
	return &Handler{
		repo:           repo,
		cache:          freecache.NewCache(10 * megabyte),
		metricsManager: metricsManager,
	}
}

// HandleListFoods serves the food catalog from an in-process cache,
// falling through to the database on miss or unmarshal failure.
func (handler *Handler) HandleListFoods(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.listFoods")
	defer span.End()

	if cachedFoods, err := handler.cache.Get(foodsCacheKey); err == nil {
		log.Tracef("food catalog served from cache, %d bytes", len(cachedFoods))
		pkg.WriteResponseBytes(w, pkg.ContentType.JSON, cachedFoods, http.StatusOK)
		return
	}

	foods, err := handler.repo.ListFoods(ctx)
	if err != nil {
		log.Errorf("list foods: %s", err)
		http.Error(w, "failed to list foods", http.StatusInternalServerError)
		return
	}
	if foods == nil {
		foods = []Food{}
	}

	foodsJson, err := json.Marshal(foods)
	if err != nil {
		log.Errorf("marshal foods: %s", err)
		http.Error(w, "failed to list foods", http.StatusInternalServerError)
		return
	}

	if err := handler.cache.Set(foodsCacheKey, foodsJson, foodsCacheExpire); err != nil {
		log.Errorf("failed to cache food catalog: %s", err)
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, foodsJson, http.StatusOK)
}

func (handler *Handler) HandleAddFood(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.newFood")
	defer span.End()

	var params AddFoodParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		log.Errorf("new food, unmarshal json params: %s", err)
		http.Error(w, "add food failed", http.StatusBadRequest)
		return
	}

	if params.Name == "" || params.CaloriesPerServing < 0 {
		http.Error(w, "error, food name missing or calories negative", http.StatusBadRequest)
		return
	}

	food, err := handler.repo.AddFood(ctx, params)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			http.Error(w, "error, food already exists", http.StatusConflict)
			return
		}
		log.Errorf("add food: %s", err)
		http.Error(w, "add food failed", http.StatusInternalServerError)
		return
	}

	handler.invalidateFoodsCache()

	foodJson, err := json.Marshal(food)
	if err != nil {
		log.Errorf("marshal food: %s", err)
		http.Error(w, "add food failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, foodJson, http.StatusCreated)
}

func (handler *Handler) HandleUpdateFood(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.updateFood")
	defer span.End()

	var food Food
	if err := json.NewDecoder(r.Body).Decode(&food); err != nil {
		log.Errorf("update food, unmarshal json params: %s", err)
		http.Error(w, "update food failed", http.StatusBadRequest)
		return
	}

	if food.ID <= 0 || food.Name == "" {
		http.Error(w, "error, food id or name missing", http.StatusBadRequest)
		return
	}

	if err := handler.repo.UpdateFood(ctx, food); err != nil {
		if errors.Is(err, ErrFoodNotFound) {
			http.Error(w, "food not found", http.StatusNotFound)
			return
		}
		log.Errorf("update food %d: %s", food.ID, err)
		http.Error(w, "update food failed", http.StatusInternalServerError)
		return
	}

	handler.invalidateFoodsCache()
	pkg.WriteJSONResponseOK(w, updatedResponse(food.ID))
}

func (handler *Handler) HandleDeleteFood(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.deleteFood")
	defer span.End()

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := handler.repo.DeleteFood(ctx, id); err != nil {
		if errors.Is(err, ErrFoodNotFound) {
			http.Error(w, "food not found", http.StatusNotFound)
			return
		}
		log.Errorf("delete food %d: %s", id, err)
		http.Error(w, "delete food failed", http.StatusInternalServerError)
		return
	}

	handler.invalidateFoodsCache()
	pkg.WriteJSONResponseOK(w, deletedResponse(id))
}

func (handler *Handler) HandleListFoodLog(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.listFoodLog")
	defer span.End()

	userID, ok := queryUserID(w, r)
	if !ok {
		return
	}

	date, ok := queryDate(w, r)
	if !ok {
		return
	}

	entries, err := handler.repo.ListFoodLog(ctx, userID, date)
	if err != nil {
		log.Errorf("list food log for user %d: %s", userID, err)
		http.Error(w, "failed to list food log", http.StatusInternalServerError)
		return
	}
	if entries == nil {
		entries = []FoodLogEntry{}
	}

	entriesJson, err := json.Marshal(entries)
	if err != nil {
		log.Errorf("marshal food log: %s", err)
		http.Error(w, "failed to list food log", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, entriesJson, http.StatusOK)
}

func (handler *Handler) HandleAddFoodLog(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.newFoodLog")
	defer span.End()

	var params AddFoodLogParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		log.Errorf("new food log entry, unmarshal json params: %s", err)
		http.Error(w, "add food log entry failed", http.StatusBadRequest)
		return
	}

	if params.UserID <= 0 || params.FoodID <= 0 {
		http.Error(w, "error, user id or food id missing", http.StatusBadRequest)
		return
	}
	if params.ServingQuantity <= 0 {
		http.Error(w, "error, serving quantity must be positive", http.StatusBadRequest)
		return
	}
	if params.MealType != "" && !validMealType(params.MealType) {
		http.Error(w, "error, invalid meal type", http.StatusBadRequest)
		return
	}

	entry, err := handler.repo.AddFoodLog(ctx, params)
	if err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			http.Error(w, "error, unknown user or food", http.StatusBadRequest)
			return
		}
		log.Errorf("add food log entry: %s", err)
		http.Error(w, "add food log entry failed", http.StatusInternalServerError)
		return
	}

	handler.metricsManager.CounterFoodLogEntries.Inc()

	entryJson, err := json.Marshal(entry)
	if err != nil {
		log.Errorf("marshal food log entry: %s", err)
		http.Error(w, "add food log entry failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, entryJson, http.StatusCreated)
}

func (handler *Handler) HandleUpdateFoodLog(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.updateFoodLog")
	defer span.End()

	var params UpdateFoodLogParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		log.Errorf("update food log entry, unmarshal json params: %s", err)
		http.Error(w, "update food log entry failed", http.StatusBadRequest)
		return
	}

	if params.ID <= 0 {
		http.Error(w, "error, entry id missing", http.StatusBadRequest)
		return
	}
	if params.MealType != nil && !validMealType(*params.MealType) {
		http.Error(w, "error, invalid meal type", http.StatusBadRequest)
		return
	}

	if err := handler.repo.UpdateFoodLog(ctx, params); err != nil {
		if errors.Is(err, ErrFoodLogEntryNotFound) {
			http.Error(w, "food log entry not found", http.StatusNotFound)
			return
		}
		log.Errorf("update food log entry %d: %s", params.ID, err)
		http.Error(w, "update food log entry failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, updatedResponse(params.ID))
}

func (handler *Handler) HandleDeleteFoodLog(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.deleteFoodLog")
	defer span.End()

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := handler.repo.DeleteFoodLog(ctx, id); err != nil {
		if errors.Is(err, ErrFoodLogEntryNotFound) {
			http.Error(w, "food log entry not found", http.StatusNotFound)
			return
		}
		log.Errorf("delete food log entry %d: %s", id, err)
		http.Error(w, "delete food log entry failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, deletedResponse(id))
}

func (handler *Handler) HandleDailyCalories(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.dailyCalories")
	defer span.End()

	userID, ok := queryUserID(w, r)
	if !ok {
		return
	}

	date, ok := queryDate(w, r)
	if !ok {
		return
	}

	calories, err := handler.repo.DailyCalories(ctx, userID, date)
	if err != nil {
		log.Errorf("daily calories for user %d: %s", userID, err)
		http.Error(w, "failed to get daily calories", http.StatusInternalServerError)
		return
	}

	resp, err := json.Marshal(struct {
		Date     string  `json:"date"`
		Calories float64 `json:"calories"`
	}{
		Date:     date.Format(time.DateOnly),
		Calories: calories,
	})
	if err != nil {
		log.Errorf("marshal daily calories: %s", err)
		http.Error(w, "failed to get daily calories", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, resp, http.StatusOK)
}

func (handler *Handler) HandleGetCalorieGoal(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.getCalorieGoal")
	defer span.End()

	userID, ok := queryUserID(w, r)
	if !ok {
		return
	}

	goal, err := handler.repo.GetCalorieGoal(ctx, userID)
	if err != nil {
		log.Errorf("get calorie goal for user %d: %s", userID, err)
		http.Error(w, "failed to get calorie goal", http.StatusInternalServerError)
		return
	}

	goalJson, err := json.Marshal(goal)
	if err != nil {
		log.Errorf("marshal calorie goal: %s", err)
		http.Error(w, "failed to get calorie goal", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, goalJson, http.StatusOK)
}

func (handler *Handler) HandleSetCalorieGoal(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.nutrition.setCalorieGoal")
	defer span.End()

	var goal CalorieGoal
	if err := json.NewDecoder(r.Body).Decode(&goal); err != nil {
		log.Errorf("set calorie goal, unmarshal json params: %s", err)
		http.Error(w, "set calorie goal failed", http.StatusBadRequest)
		return
	}

	if goal.UserID <= 0 || goal.DailyGoal <= 0 {
		http.Error(w, "error, user id or daily goal missing", http.StatusBadRequest)
		return
	}

	if err := handler.repo.UpsertCalorieGoal(ctx, goal); err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			http.Error(w, "error, unknown user", http.StatusBadRequest)
			return
		}
		log.Errorf("set calorie goal for user %d: %s", goal.UserID, err)
		http.Error(w, "set calorie goal failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, updatedResponse(goal.UserID))
}

func (handler *Handler) invalidateFoodsCache() {
	handler.cache.Del(foodsCacheKey)
}

func validMealType(mealType string) bool {
	for _, known := range MealTypes {
		if mealType == known {
			return true
		}
	}
	return false
}

func pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id <= 0 {
		http.Error(w, "error, invalid id", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func queryUserID(w http.ResponseWriter, r *http.Request) (int, bool) {
	userID, err := strconv.Atoi(r.URL.Query().Get("userId"))
	if err != nil || userID <= 0 {
		http.Error(w, "error, user id missing", http.StatusBadRequest)
		return 0, false
	}
	return userID, true
}

// queryDate reads an optional date query param, defaulting to today.
func queryDate(w http.ResponseWriter, r *http.Request) (time.Time, bool) {
	dateParam := r.URL.Query().Get("date")
	if dateParam == "" {
		return time.Now(), true
	}
	date, err := time.Parse(time.DateOnly, dateParam)
	if err != nil {
		http.Error(w, "error, invalid date, use YYYY-MM-DD", http.StatusBadRequest)
		return time.Time{}, false
	}
	return date, true
}

func updatedResponse(id int) string {
	return `{"updated":` + strconv.Itoa(id) + `}`
}

func deletedResponse(id int) string {
	return `{"deleted":` + strconv.Itoa(id) + `}`
}
