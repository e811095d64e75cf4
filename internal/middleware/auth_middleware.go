package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/Monirul480/Language-club-serversite/internal/auth"
	"github.com/Monirul480/Language-club-serversite/internal/utils"
)

type contextKey struct{}

var claimsKey contextKey

// ClaimsFrom returns the verified identity attached by RequireAuth.
func ClaimsFrom(ctx context.Context) (*auth.IdentityClaims, bool) {
	claims, ok := ctx.Value(claimsKey).(*auth.IdentityClaims)
	return claims, ok
}

// RequireAuth verifies the Authorization bearer token and attaches the
// verified claims to the request context. A missing or malformed header and
// a failed verification all answer 401 without running the handler.
func RequireAuth(tokens *auth.TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authorization := r.Header.Get("Authorization")
			if authorization == "" {
				utils.WriteError(w, http.StatusUnauthorized, "unauthorized access")
				return
			}

			parts := strings.Split(authorization, " ")
			if len(parts) != 2 {
				utils.WriteError(w, http.StatusUnauthorized, "unauthorized access")
				return
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				utils.WriteError(w, http.StatusUnauthorized, "unauthorized access")
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
