package users

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"github.com/mkovacevic/fitlog/internal/telemetry/metrics"
	"github.com/mkovacevic/fitlog/internal/telemetry/tracing"
	"github.com/mkovacevic/fitlog/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=users_test

type usersRepo interface {
	Add(ctx context.Context, user User) (*User, error)
	Get(ctx context.Context, id int) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, params UpdateParams) error
	UpdateEmail(ctx context.Context, id int, email string) error
	UpdateUsername(ctx context.Context, id int, username string) error
}

type loginService interface {
	Login(ctx context.Context, userID int, createdAt time.Time) (string, error)
	Logout(ctx context.Context, token string) error
}

type RegisterRequest struct {
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Email     string  `json:"email"`
	Password  string  `json:"password"`
	Age       *int    `json:"age"`
	Gender    *string `json:"gender"`
}

type RegisterResponse struct {
	User User `json:"user"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type UpdateResponse struct {
	UpdatedID int `json:"updatedId"`
}

type Handler struct {
	repo           usersRepo
	authService    loginService
	metricsManager *metrics.Manager
}

func NewHandler(repo usersRepo, authService loginService, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:           repo,
		authService:    authService,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.register")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("register, unmarshal json params: %s", err)
		http.Error(w, "register failed", http.StatusBadRequest)
		return
	}

	if req.FirstName == "" || req.LastName == "" || req.Email == "" || req.Password == "" {
		http.Error(w, "error, first name, last name, email or password empty", http.StatusBadRequest)
		return
	}

	passwordHash, err := pkg.HashPassword(req.Password)
	if err != nil {
		log.Errorf("register, hash password: %s", err)
		http.Error(w, "register failed", http.StatusInternalServerError)
		return
	}

	user := User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Username:     generateUsername(req.FirstName),
		Age:          req.Age,
		Gender:       req.Gender,
		PasswordHash: passwordHash,
	}

	addedUser, err := handler.repo.Add(ctx, user)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			http.Error(w, "error, email or username already taken", http.StatusConflict)
			return
		}
		log.Errorf("failed to register user [%s]: %s", req.Email, err)
		http.Error(w, "error, failed to register user", http.StatusInternalServerError)
		return
	}

	if handler.metricsManager != nil {
		handler.metricsManager.CounterUserRegistrations.Inc()
	}

	respJson, err := json.Marshal(RegisterResponse{User: *addedUser})
	if err != nil {
		log.Errorf("failed to marshal register response: %s", err)
		http.Error(w, "error, failed to register user", http.StatusInternalServerError)
		return
	}

	log.Debugf("new user registered: %d [%s]", addedUser.ID, addedUser.Username)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusCreated)
}

func (handler *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.login")
	defer span.End()

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("login, unmarshal json params: %s", err)
		http.Error(w, "login failed", http.StatusBadRequest)
		return
	}

	if req.Email == "" || req.Password == "" {
		http.Error(w, "error, email or password empty", http.StatusBadRequest)
		return
	}

	user, err := handler.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			log.Tracef("[unknown email] failed login attempt: %s", req.Email)
			http.Error(w, "error, wrong credentials", http.StatusUnauthorized)
			return
		}
		log.Errorf("login, get user by email: %s", err)
		http.Error(w, "login failed", http.StatusInternalServerError)
		return
	}

	if !pkg.CheckPasswordHash(req.Password, user.PasswordHash) {
		log.Tracef("[password] failed login attempt for user: %d", user.ID)
		http.Error(w, "error, wrong credentials", http.StatusUnauthorized)
		return
	}

	token, err := handler.authService.Login(ctx, user.ID, time.Now())
	if err != nil {
		log.Errorf("login, create session: %s", err)
		http.Error(w, "login failed", http.StatusInternalServerError)
		return
	}

	respJson, err := json.Marshal(LoginResponse{Token: token, User: *user})
	if err != nil {
		log.Errorf("failed to marshal login response: %s", err)
		http.Error(w, "login failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

func (handler *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.logout")
	defer span.End()

	authToken := r.Header.Get("X-FITLOG-TOKEN")
	if authToken == "" {
		http.Error(w, "error, token empty", http.StatusBadRequest)
		return
	}

	if err := handler.authService.Logout(ctx, authToken); err != nil {
		log.Errorf("logout failed: %s", err)
		http.Error(w, "logout failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, "logged-out")
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.update")
	defer span.End()

	var params UpdateParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		log.Errorf("update user, unmarshal json params: %s", err)
		http.Error(w, "update user failed", http.StatusBadRequest)
		return
	}

	if params.ID <= 0 {
		http.Error(w, "error, user id missing", http.StatusBadRequest)
		return
	}

	if err := handler.repo.Update(ctx, params); err != nil {
		if errors.Is(err, ErrUserNotFound) {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		if pkg.IsUniqueViolationError(err) {
			http.Error(w, "error, email or username already taken", http.StatusConflict)
			return
		}
		log.Errorf("failed to update user %d: %s", params.ID, err)
		http.Error(w, "error, failed to update user", http.StatusInternalServerError)
		return
	}

	handler.writeUpdateResponse(w, params.ID)
}

func (handler *Handler) HandleChangeEmail(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.changeEmail")
	defer span.End()

	var req struct {
		UserID int    `json:"userId"`
		Email  string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "change email failed", http.StatusBadRequest)
		return
	}
	if req.UserID <= 0 || req.Email == "" {
		http.Error(w, "error, user id or email missing", http.StatusBadRequest)
		return
	}

	if err := handler.repo.UpdateEmail(ctx, req.UserID, req.Email); err != nil {
		if errors.Is(err, ErrUserNotFound) {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		if pkg.IsUniqueViolationError(err) {
			http.Error(w, "error, email already taken", http.StatusConflict)
			return
		}
		log.Errorf("failed to change email for user %d: %s", req.UserID, err)
		http.Error(w, "error, failed to change email", http.StatusInternalServerError)
		return
	}

	handler.writeUpdateResponse(w, req.UserID)
}

func (handler *Handler) HandleChangeUsername(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.changeUsername")
	defer span.End()

	var req struct {
		UserID   int    `json:"userId"`
		Username string `json:"username"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "change username failed", http.StatusBadRequest)
		return
	}
	if req.UserID <= 0 || req.Username == "" {
		http.Error(w, "error, user id or username missing", http.StatusBadRequest)
		return
	}

	if err := handler.repo.UpdateUsername(ctx, req.UserID, req.Username); err != nil {
		if errors.Is(err, ErrUserNotFound) {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		if pkg.IsUniqueViolationError(err) {
			http.Error(w, "error, username already taken", http.StatusConflict)
			return
		}
		log.Errorf("failed to change username for user %d: %s", req.UserID, err)
		http.Error(w, "error, failed to change username", http.StatusInternalServerError)
		return
	}

	handler.writeUpdateResponse(w, req.UserID)
}

func (handler *Handler) writeUpdateResponse(w http.ResponseWriter, id int) {
	respJson, err := json.Marshal(UpdateResponse{UpdatedID: id})
	if err != nil {
		log.Errorf("failed to marshal update response: %s", err)
		http.Error(w, "failed to marshal update response", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSONResponseOK(w, string(respJson))
}

// generateUsername makes a default username from the first name
// plus a 4 digit suffix, e.g. "ana4821"
func generateUsername(firstName string) string {
	return fmt.Sprintf("%s%d", strings.ToLower(firstName), 1000+rand.Intn(9000))
}
