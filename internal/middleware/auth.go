package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"portfolio-api/internal/model"
)

type tokenAuthenticator interface {
	VerifyToken(tokenString string) (*model.AuthClaims, error)
	ResolveUser(ctx context.Context, claims *model.AuthClaims) (model.User, error)
}

type contextKey string

const authUserContextKey contextKey = "auth_user"

type AuthMiddleware struct {
	auth tokenAuthenticator
}

func NewAuthMiddleware(auth tokenAuthenticator) *AuthMiddleware {
	return &AuthMiddleware{auth: auth}
}

// RequireAuth gates protected routes behind a bearer token. A missing or
// shapeless Authorization header is a 400, a failed verification a 403, and
// a token whose user no longer exists a 500. Raw verification errors are
// logged, never forwarded to the client.
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := bearerToken(r.Header.Get("Authorization"))
		if err != nil {
			writeMessage(w, http.StatusBadRequest, "No token provided.")
			return
		}

		claims, err := m.auth.VerifyToken(token)
		if err != nil {
			if errors.Is(err, model.ErrTokenMissing) {
				writeMessage(w, http.StatusBadRequest, "No token provided.")
				return
			}
			slog.Warn("token verification failed", "error", err)
			writeMessage(w, http.StatusForbidden, "Unauthorized.")
			return
		}

		user, err := m.auth.ResolveUser(r.Context(), claims)
		if err != nil {
			slog.Error("token subject lookup failed", "error", err, "user_id", claims.UserID)
			writeMessage(w, http.StatusInternalServerError, "Cannot verify user.")
			return
		}

		ctx := context.WithValue(r.Context(), authUserContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header. Any other shape, including an empty token segment, counts as a
// missing token.
func bearerToken(header string) (string, error) {
	header = strings.TrimSpace(header)
	if header == "" {
		return "", model.ErrTokenMissing
	}

	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", model.ErrTokenMissing
	}

	return parts[1], nil
}

// UserFromContext returns the authenticated user attached by RequireAuth.
func UserFromContext(ctx context.Context) (model.User, bool) {
	user, ok := ctx.Value(authUserContextKey).(model.User)
	return user, ok
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(model.MessageResponse{Message: message})
}
