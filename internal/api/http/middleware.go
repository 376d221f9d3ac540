package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/domain"
	"github.com/liveedevteam/techcreator-inventorybuyandrental-sub001/internal/security"
)

type contextKey string

const claimsKey contextKey = "user_claims"

// AuthMiddleware validates the Bearer token and attaches the authenticated
// identity to the request context. Every mutating call downstream reads its
// acting user id and role from here; the credential itself is not
// re-verified.
func AuthMiddleware(tokens security.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing bearer token"})
				return
			}

			claims, err := tokens.ValidateToken(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				writeError(w, r, err)
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// claimsFrom returns the authenticated identity attached by AuthMiddleware.
func claimsFrom(r *http.Request) *security.UserClaims {
	claims, _ := r.Context().Value(claimsKey).(*security.UserClaims)
	return claims
}

// requireRole gates a handler on a role predicate.
func requireRole(pred func(domain.UserRole) bool, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := claimsFrom(r)
		if claims == nil || !pred(claims.Role) {
			writeJSON(w, http.StatusForbidden, errorResponse{Error: "insufficient role"})
			return
		}
		next(w, r)
	}
}

func adminOnly(next http.HandlerFunc) http.HandlerFunc {
	return requireRole(domain.UserRole.IsAdmin, next)
}
