package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/JanRezzonico/API-Dipendenze/internal/domain"
	"github.com/JanRezzonico/API-Dipendenze/internal/service/auth"
	"github.com/JanRezzonico/API-Dipendenze/internal/service/user"
)

type authService interface {
	Signup(ctx context.Context, input auth.SignupInput) (*auth.AuthResult, error)
	Login(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error)
	Logout(ctx context.Context) error
}

type accountService interface {
	Update(ctx context.Context, input user.UpdateInput) (*domain.User, error)
	Delete(ctx context.Context) error
	UsernameAvailable(ctx context.Context, username string) (bool, error)
}

// UserHandler serves the account endpoints under /api/user and the
// username availability check.
type UserHandler struct {
	auth     authService
	accounts accountService
	log      *slog.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(authSvc authService, accounts accountService, logger *slog.Logger) *UserHandler {
	return &UserHandler{auth: authSvc, accounts: accounts, log: logger.With("handler", "user")}
}

type signupRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Language string `json:"language"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type updateUserRequest struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
	Name     *string `json:"name"`
	Language *string `json:"language"`
}

type userResponse struct {
	Token    string `json:"token,omitempty"`
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Language string `json:"language"`
}

type availabilityResponse struct {
	Unique bool `json:"unique"`
}

// Signup handles POST /api/user/signup.
func (h *UserHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.auth.Signup(r.Context(), auth.SignupInput{
		Username: req.Username,
		Password: req.Password,
		Name:     req.Name,
		Language: req.Language,
	})
	if errors.Is(err, domain.ErrAlreadyExists) {
		writeMessage(w, http.StatusBadRequest, fmt.Sprintf("User with username '%s' already exists", req.Username))
		return
	}
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toUserResponse(result.User, result.Token))
}

// Login handles POST /api/user/login.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.auth.Login(r.Context(), auth.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toUserResponse(result.User, result.Token))
}

// Logout handles POST /api/user/logout. Logging out twice is not an error.
func (h *UserHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.auth.Logout(r.Context()); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// Delete handles DELETE /api/user/delete.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.accounts.Delete(r.Context()); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// Update handles PATCH /api/user/update.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateUserRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	u, err := h.accounts.Update(r.Context(), user.UpdateInput{
		Username: req.Username,
		Password: req.Password,
		Name:     req.Name,
		Language: req.Language,
	})
	if errors.Is(err, domain.ErrAlreadyExists) {
		writeMessage(w, http.StatusBadRequest, "Username already taken")
		return
	}
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(u, ""))
}

// CheckUsername handles GET /api/check-username-availability?username=.
func (h *UserHandler) CheckUsername(w http.ResponseWriter, r *http.Request) {
	unique, err := h.accounts.UsernameAvailable(r.Context(), r.URL.Query().Get("username"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, availabilityResponse{Unique: unique})
}

func toUserResponse(u *domain.User, token string) userResponse {
	return userResponse{
		Token:    token,
		ID:       u.ID.String(),
		Username: u.Username,
		Name:     u.Name,
		Language: u.Language,
	}
}
