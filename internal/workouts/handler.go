package workouts

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

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=workouts_test

type workoutsRepo interface {
	Add(ctx context.Context, params AddWorkoutParams) (_ *Workout, err error)
	Delete(ctx context.Context, workoutID int) (err error)
	AddPerformedExercise(ctx context.Context, params AddPerformedExerciseParams) (_ *PerformedExercise, err error)
	DeletePerformedExercise(ctx context.Context, performedExerciseID int) (err error)
	AddSet(ctx context.Context, params AddSetParams) (_ *Set, err error)
	DeleteSet(ctx context.Context, setID int) (err error)
	Details(ctx context.Context, userID int, date time.Time) (_ *WorkoutDetails, err error)
	History(ctx context.Context, userID int) (_ []*WorkoutDetails, err error)
}

type Handler struct {
	repo           workoutsRepo
	metricsManager *metrics.Manager
}

func NewHandler(repo workoutsRepo, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:           repo,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.new")
	defer span.End()

	var params AddWorkoutParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		log.Errorf("new workout, unmarshal json params: %s", err)
		http.Error(w, "add workout failed", http.StatusBadRequest)
		return
	}

	if params.UserID <= 0 {
		http.Error(w, "error, user id missing", http.StatusBadRequest)
		return
	}

	workout, err := handler.repo.Add(ctx, params)
	if err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			http.Error(w, "error, unknown user", http.StatusBadRequest)
			return
		}
		log.Errorf("add workout: %s", err)
		http.Error(w, "add workout failed", http.StatusInternalServerError)
		return
	}

	handler.metricsManager.CounterWorkoutsCreated.Inc()

	workoutJson, err := json.Marshal(workout)
	if err != nil {
		log.Errorf("marshal workout: %s", err)
		http.Error(w, "add workout failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, workoutJson, http.StatusCreated)
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.delete")
	defer span.End()

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := handler.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrWorkoutNotFound) {
			http.Error(w, "workout not found", http.StatusNotFound)
			return
		}
		log.Errorf("delete workout %d: %s", id, err)
		http.Error(w, "delete workout failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, deletedResponse(id))
}

func (handler *Handler) HandleDetails(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.details")
	defer span.End()

	userID, ok := queryUserID(w, r)
	if !ok {
		return
	}

	date := time.Now()
	if dateParam := r.URL.Query().Get("date"); dateParam != "" {
		parsed, err := time.Parse(time.DateOnly, dateParam)
		if err != nil {
			http.Error(w, "error, invalid date, use YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		date = parsed
	}

	details, err := handler.repo.Details(ctx, userID, date)
	if err != nil {
		if errors.Is(err, ErrWorkoutNotFound) {
			http.Error(w, "workout not found", http.StatusNotFound)
			return
		}
		log.Errorf("workout details for user %d: %s", userID, err)
		http.Error(w, "get workout details failed", http.StatusInternalServerError)
		return
	}

	detailsJson, err := json.Marshal(details)
	if err != nil {
		log.Errorf("marshal workout details: %s", err)
		http.Error(w, "get workout details failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, detailsJson, http.StatusOK)
}

func (handler *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.history")
	defer span.End()

	userID, ok := queryUserID(w, r)
	if !ok {
		return
	}

	history, err := handler.repo.History(ctx, userID)
	if err != nil {
		log.Errorf("workout history for user %d: %s", userID, err)
		http.Error(w, "get workout history failed", http.StatusInternalServerError)
		return
	}
	if history == nil {
		history = []*WorkoutDetails{}
	}

	historyJson, err := json.Marshal(history)
	if err != nil {
		log.Errorf("marshal workout history: %s", err)
		http.Error(w, "get workout history failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, historyJson, http.StatusOK)
}

func (handler *Handler) HandleAddExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.newExercise")
	defer span.End()

	var params AddPerformedExerciseParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		log.Errorf("new performed exercise, unmarshal json params: %s", err)
		http.Error(w, "add exercise failed", http.StatusBadRequest)
		return
	}

	if params.WorkoutID <= 0 || params.ExerciseID <= 0 {
		http.Error(w, "error, workout id or exercise id missing", http.StatusBadRequest)
		return
	}

	performedExercise, err := handler.repo.AddPerformedExercise(ctx, params)
	if err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			http.Error(w, "error, unknown workout or exercise", http.StatusBadRequest)
			return
		}
		log.Errorf("add performed exercise: %s", err)
		http.Error(w, "add exercise failed", http.StatusInternalServerError)
		return
	}

	peJson, err := json.Marshal(performedExercise)
	if err != nil {
		log.Errorf("marshal performed exercise: %s", err)
		http.Error(w, "add exercise failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, peJson, http.StatusCreated)
}

func (handler *Handler) HandleDeleteExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.deleteExercise")
	defer span.End()

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := handler.repo.DeletePerformedExercise(ctx, id); err != nil {
		if errors.Is(err, ErrPerformedExerciseNotFound) {
			http.Error(w, "performed exercise not found", http.StatusNotFound)
			return
		}
		log.Errorf("delete performed exercise %d: %s", id, err)
		http.Error(w, "delete exercise failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, deletedResponse(id))
}

func (handler *Handler) HandleAddSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.newSet")
	defer span.End()

	var params AddSetParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		log.Errorf("new set, unmarshal json params: %s", err)
		http.Error(w, "add set failed", http.StatusBadRequest)
		return
	}

	if params.PerformedExerciseID <= 0 {
		http.Error(w, "error, performed exercise id missing", http.StatusBadRequest)
		return
	}
	if params.Reps <= 0 {
		http.Error(w, "error, reps must be positive", http.StatusBadRequest)
		return
	}

	set, err := handler.repo.AddSet(ctx, params)
	if err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			http.Error(w, "error, unknown performed exercise", http.StatusBadRequest)
			return
		}
		log.Errorf("add set: %s", err)
		http.Error(w, "add set failed", http.StatusInternalServerError)
		return
	}

	setJson, err := json.Marshal(set)
	if err != nil {
		log.Errorf("marshal set: %s", err)
		http.Error(w, "add set failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, setJson, http.StatusCreated)
}

func (handler *Handler) HandleDeleteSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.deleteSet")
	defer span.End()

	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := handler.repo.DeleteSet(ctx, id); err != nil {
		if errors.Is(err, ErrSetNotFound) {
			http.Error(w, "set not found", http.StatusNotFound)
			return
		}
		log.Errorf("delete set %d: %s", id, err)
		http.Error(w, "delete set failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONResponseOK(w, deletedResponse(id))
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

func deletedResponse(id int) string {
	return `{"deleted":` + strconv.Itoa(id) + `}`
}
