package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/inkmatch/booking-service/internal/api/handlers"
	"github.com/inkmatch/booking-service/internal/domain"
)

type contextKey string

const (
	userIDKey   contextKey = "userID"
	userRoleKey contextKey = "userRole"

	// HeaderUserID and HeaderUserRole are set by the API gateway after it
	// verifies the caller's token. This service trusts them.
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"
)

// Auth requires the gateway identity headers on every protected route and
// puts the authenticated actor into the request context.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userIDStr := r.Header.Get(HeaderUserID)
		if userIDStr == "" {
			handlers.RespondUnauthorized(w, "missing "+HeaderUserID+" header")
			return
		}

		userID, err := strconv.ParseInt(userIDStr, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, "invalid "+HeaderUserID+" header")
			return
		}

		role := domain.Role(r.Header.Get(HeaderUserRole))
		switch role {
		case domain.RoleClient, domain.RoleArtist:
		default:
			handlers.RespondUnauthorized(w, "invalid "+HeaderUserRole+" header")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		ctx = context.WithValue(ctx, userRoleKey, role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID returns the authenticated user's id from the context.
func GetUserID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}

// GetUserRole returns the authenticated user's role from the context.
func GetUserRole(ctx context.Context) (domain.Role, bool) {
	role, ok := ctx.Value(userRoleKey).(domain.Role)
	return role, ok
}

// GetActor returns the authenticated actor from the context.
func GetActor(ctx context.Context) (domain.Actor, bool) {
	id, okID := GetUserID(ctx)
	role, okRole := GetUserRole(ctx)
	if !okID || !okRole {
		return domain.Actor{}, false
	}
	return domain.Actor{ID: id, Role: role}, true
}
