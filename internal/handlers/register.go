package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/pavlenkodm/movie-stats/internal/logger"
	"github.com/pavlenkodm/movie-stats/internal/services"
)

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, email, password, username string) error
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Email
	// required: true
	// example: john@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// example: secret123
	Password string `json:"password"`

	// Username, defaults to the email local part when omitted
	// example: john
	Username string `json:"username"`
}

// RegisterResponse represents a successful registration response
// swagger:model RegisterResponse
type RegisterResponse struct {
	// Success message
	// example: ok
	Message string `json:"message"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account keyed by normalized email. Password is hashed before storing.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 200 {object} handlers.RegisterResponse "User successfully registered"
// @Failure 400 {object} handlers.ErrorResponse "Missing email or password"
// @Failure 409 {object} handlers.ErrorResponse "Email already exists"
// @Router /api/auth/register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		var req RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(ErrorResponse{
				Error: "email and password required",
			})
			return
		}

		email := strings.ToLower(strings.TrimSpace(req.Email))
		password := req.Password
		username := strings.TrimSpace(req.Username)
		if username == "" {
			username = localPart(email)
		}

		if email == "" || password == "" {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(ErrorResponse{
				Error: "email and password required",
			})
			return
		}

		if err := svc.Register(r.Context(), email, password, username); err != nil {
			switch {
			case errors.Is(err, services.ErrEmailAlreadyExists):
				w.WriteHeader(http.StatusConflict)
				_ = json.NewEncoder(w).Encode(ErrorResponse{
					Error: "email already exists",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				_ = json.NewEncoder(w).Encode(ErrorResponse{
					Error: "internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(RegisterResponse{
			Message: "ok",
		})
	}
}

// localPart returns everything before the first "@", or the whole
// string when there is none.
func localPart(email string) string {
	if i := strings.Index(email, "@"); i >= 0 {
		return email[:i]
	}
	return email
}
