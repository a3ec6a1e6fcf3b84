package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/pavlenkodm/movie-stats/internal/middlewares"
)

// MeResponse echoes the identity embedded in the verified token
// swagger:model MeResponse
type MeResponse struct {
	// User identifier
	// example: 42
	UID int64 `json:"uid"`

	// Email at token issuance
	// example: john@example.com
	Email string `json:"email"`
}

// NewMeHandler returns an HTTP handler that echoes the identity from
// the verified token claims. The store is never consulted.
// @Summary Current identity
// @Description Returns the uid and email embedded in the presented token
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.MeResponse "Token identity"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /api/me [get]
// @Security BearerAuth
func NewMeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		claims := middlewares.GetClaimsFromContext(r.Context())
		if claims == nil {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(ErrorResponse{
				Error: "unauthorized",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(MeResponse{
			UID:   claims.UID,
			Email: claims.Email,
		})
	}
}
