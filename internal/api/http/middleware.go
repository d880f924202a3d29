package http

import (
	"context"
	"net/http"
	"strings"

	"courtside-backend/internal/domain"
	"courtside-backend/internal/security"
)

type contextKey string

const (
	contextKeyUserID  contextKey = "user_id"
	contextKeyIsAdmin contextKey = "is_admin"
)

// AuthMiddleware validates the bearer token and stores the caller identity on
// the request context.
type AuthMiddleware struct {
	tokens security.TokenManager
}

func NewAuthMiddleware(tokens security.TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

func (m *AuthMiddleware) Require(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, err := m.claims(r)
		if err != nil {
			writeError(w, err)
			return
		}
		ctx := context.WithValue(r.Context(), contextKeyUserID, claims.UserID)
		ctx = context.WithValue(ctx, contextKeyIsAdmin, claims.IsAdmin)
		next(w, r.WithContext(ctx))
	}
}

func (m *AuthMiddleware) RequireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, err := m.claims(r)
		if err != nil {
			writeError(w, err)
			return
		}
		if !claims.IsAdmin {
			writeJSON(w, http.StatusForbidden, errorResponse{Error: "admin access required"})
			return
		}
		ctx := context.WithValue(r.Context(), contextKeyUserID, claims.UserID)
		ctx = context.WithValue(ctx, contextKeyIsAdmin, true)
		next(w, r.WithContext(ctx))
	}
}

func (m *AuthMiddleware) claims(r *http.Request) (*security.UserClaims, error) {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return nil, domain.ErrInvalidToken
	}
	return m.tokens.ValidateToken(strings.TrimPrefix(header, "Bearer "))
}

func userIDFromContext(ctx context.Context) int32 {
	id, _ := ctx.Value(contextKeyUserID).(int32)
	return id
}
