package middleware

import (
	"context"
	"net/http"

	"github.com/Monirul480/Language-club-serversite/internal/models"
	"github.com/Monirul480/Language-club-serversite/internal/utils"
)

// RoleResolver maps an authenticated email to its current role. The Mongo
// implementation lives in the store package.
type RoleResolver interface {
	ResolveRole(ctx context.Context, email string) (models.UserRole, error)
}

// RequireAdmin composes after RequireAuth. The role is resolved from the
// store on every request, never read from the token, so a demotion takes
// effect on the caller's next request.
func RequireAdmin(roles RoleResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFrom(r.Context())
			if !ok {
				utils.WriteError(w, http.StatusUnauthorized, "unauthorized access")
				return
			}

			role, err := roles.ResolveRole(r.Context(), claims.Email)
			if err != nil || role != models.RoleAdmin {
				utils.WriteError(w, http.StatusForbidden, "forbidden message")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
