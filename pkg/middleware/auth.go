package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/shashiranjanraj/leadhub/pkg/auth"
	"github.com/shashiranjanraj/leadhub/pkg/response"
)

type claimsKey struct{}

// Auth validates the Bearer token and injects the claims into the request
// context for downstream handlers and the rbac middleware.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if token == "" || token == r.Header.Get("Authorization") {
			response.Unauthorized(w)
			return
		}

		claims, err := auth.ValidateToken(token)
		if err != nil {
			response.Error(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), claimsKey{}, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ClaimsFromCtx returns the authenticated claims, if any.
func ClaimsFromCtx(r *http.Request) (*auth.Claims, bool) {
	c, ok := r.Context().Value(claimsKey{}).(*auth.Claims)
	return c, ok
}

// UserIDFromCtx returns the authenticated user id.
func UserIDFromCtx(r *http.Request) (string, bool) {
	if c, ok := ClaimsFromCtx(r); ok {
		return c.UserID, true
	}
	return "", false
}

// RoleFromCtx returns the authenticated user's role.
func RoleFromCtx(r *http.Request) (string, bool) {
	if c, ok := ClaimsFromCtx(r); ok {
		return c.Role, true
	}
	return "", false
}
