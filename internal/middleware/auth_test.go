package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"portfolio-api/internal/model"
)

type stubAuthenticator struct {
	verifyErr  error
	resolveErr error
	user       model.User
}

func (s *stubAuthenticator) VerifyToken(tokenString string) (*model.AuthClaims, error) {
	if tokenString == "" {
		return nil, model.ErrTokenMissing
	}
	if s.verifyErr != nil {
		return nil, s.verifyErr
	}
	return &model.AuthClaims{UserID: s.user.ID, TokenID: "jti-1"}, nil
}

func (s *stubAuthenticator) ResolveUser(_ context.Context, claims *model.AuthClaims) (model.User, error) {
	if s.resolveErr != nil {
		return model.User{}, s.resolveErr
	}
	if claims.UserID != s.user.ID {
		return model.User{}, model.ErrUserGone
	}
	return s.user, nil
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body model.MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Message
}

func TestRequireAuth(t *testing.T) {
	t.Parallel()

	user := model.User{ID: "user-1", Email: "a@b.com"}

	protect := func(auth *stubAuthenticator) (http.Handler, *model.User) {
		var seen model.User
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if u, ok := UserFromContext(r.Context()); ok {
				seen = u
			}
			w.WriteHeader(http.StatusOK)
		})
		return NewAuthMiddleware(auth).RequireAuth(next), &seen
	}

	t.Run("no authorization header is a 400", func(t *testing.T) {
		handler, _ := protect(&stubAuthenticator{user: user})

		req := httptest.NewRequest(http.MethodGet, "/auth/validate", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, "No token provided.", decodeMessage(t, rec))
	})

	t.Run("malformed header shapes are a 400", func(t *testing.T) {
		handler, _ := protect(&stubAuthenticator{user: user})

		for _, header := range []string{"Bearer", "Bearer  ", "token-without-scheme", "Basic abc123", "Bearer one two"} {
			req := httptest.NewRequest(http.MethodGet, "/auth/validate", nil)
			req.Header.Set("Authorization", header)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			require.Equal(t, http.StatusBadRequest, rec.Code, "header %q", header)
			require.Equal(t, "No token provided.", decodeMessage(t, rec))
		}
	})

	t.Run("invalid token is a 403 with a fixed message", func(t *testing.T) {
		handler, _ := protect(&stubAuthenticator{user: user, verifyErr: model.ErrTokenInvalid})

		req := httptest.NewRequest(http.MethodGet, "/auth/validate", nil)
		req.Header.Set("Authorization", "Bearer bad-token")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusForbidden, rec.Code)
		require.Equal(t, "Unauthorized.", decodeMessage(t, rec))
	})

	t.Run("expired token is a 403 with the same message", func(t *testing.T) {
		handler, _ := protect(&stubAuthenticator{user: user, verifyErr: model.ErrTokenExpired})

		req := httptest.NewRequest(http.MethodGet, "/auth/validate", nil)
		req.Header.Set("Authorization", "Bearer expired-token")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusForbidden, rec.Code)
		require.Equal(t, "Unauthorized.", decodeMessage(t, rec))
	})

	t.Run("deleted token subject is a 500", func(t *testing.T) {
		handler, _ := protect(&stubAuthenticator{user: user, resolveErr: model.ErrUserGone})

		req := httptest.NewRequest(http.MethodGet, "/auth/validate", nil)
		req.Header.Set("Authorization", "Bearer ok-token")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.Equal(t, "Cannot verify user.", decodeMessage(t, rec))
	})

	t.Run("valid token attaches the user to the context", func(t *testing.T) {
		handler, seen := protect(&stubAuthenticator{user: user})

		req := httptest.NewRequest(http.MethodGet, "/auth/validate", nil)
		req.Header.Set("Authorization", "Bearer ok-token")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, user.ID, seen.ID)
	})

	t.Run("bearer scheme is case-insensitive", func(t *testing.T) {
		handler, seen := protect(&stubAuthenticator{user: user})

		req := httptest.NewRequest(http.MethodGet, "/auth/validate", nil)
		req.Header.Set("Authorization", "bearer ok-token")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, user.ID, seen.ID)
	})
}

func TestUserFromContext_Empty(t *testing.T) {
	t.Parallel()

	_, ok := UserFromContext(context.Background())
	require.False(t, ok)
}
