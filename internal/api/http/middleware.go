package http

import (
	"context"
	"net/http"
	"strings"

	"campreserv-backend/internal/security"
	"campreserv-backend/internal/service"

	"github.com/gorilla/mux"
)

type contextKey string

const actorContextKey contextKey = "actor"

// Authenticate validates the bearer token and stores the staff actor in the
// request context. Requests without a valid token are rejected with 401.
func Authenticate(tokens security.TokenManager) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				respondJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing bearer token"})
				return
			}
			claims, err := tokens.ValidateToken(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				respondJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error()})
				return
			}
			actor := service.Actor{ID: claims.UserID, CampgroundID: claims.CampgroundID}
			ctx := context.WithValue(r.Context(), actorContextKey, actor)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// actorFrom returns the authenticated actor; the zero Actor when the
// middleware did not run. Services treat the zero value as missing context.
func actorFrom(r *http.Request) service.Actor {
	actor, _ := r.Context().Value(actorContextKey).(service.Actor)
	return actor
}
