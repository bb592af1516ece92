package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"portfolio-api/internal/model"
	"portfolio-api/internal/service"
)

type memUserStore struct {
	users map[string]model.User
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: map[string]model.User{}}
}

func (s *memUserStore) FindByID(_ context.Context, id string) (model.User, error) {
	u, ok := s.users[id]
	if !ok {
		return model.User{}, model.ErrUserNotFound
	}
	return u, nil
}

func (s *memUserStore) FindByEmail(_ context.Context, email string) (model.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return model.User{}, model.ErrUserNotFound
}

func (s *memUserStore) Create(_ context.Context, u model.User) error {
	s.users[u.ID] = u
	return nil
}

func (s *memUserStore) Update(_ context.Context, u model.User) error {
	if _, ok := s.users[u.ID]; !ok {
		return model.ErrUserNotFound
	}
	s.users[u.ID] = u
	return nil
}

func (s *memUserStore) Delete(_ context.Context, id string) error {
	if _, ok := s.users[id]; !ok {
		return model.ErrUserNotFound
	}
	delete(s.users, id)
	return nil
}

func (s *memUserStore) List(_ context.Context) ([]model.User, error) {
	out := make([]model.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	return out, nil
}

type nopImageStore struct{}

func (nopImageStore) Save(_ context.Context, name string, _ string, _ []byte) (string, error) {
	return "/images/" + name, nil
}

func newUserRouter(t *testing.T) (http.Handler, model.User) {
	t.Helper()

	store := newMemUserStore()
	svc := service.NewUserService(store, nopImageStore{})

	user, err := svc.Create(context.Background(), model.CreateUserRequest{
		FirstName: "Ada", LastName: "Lovelace", Email: "a@b.com", Password: "secret1",
	})
	require.NoError(t, err)

	h := NewUserHandler(svc, 5*1024*1024)
	r := chi.NewRouter()
	r.Put("/user/{id}", h.Update)
	return r, user
}

func multipartBody(t *testing.T, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for key, value := range fields {
		require.NoError(t, w.WriteField(key, value))
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestUserHandler_Update_MultipartValidation(t *testing.T) {
	t.Parallel()

	putMultipart := func(t *testing.T, router http.Handler, id string, fields map[string]string) *httptest.ResponseRecorder {
		t.Helper()

		body, contentType := multipartBody(t, fields)
		req := httptest.NewRequest(http.MethodPut, "/user/"+id, body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	t.Run("malformed email is a 400", func(t *testing.T) {
		router, user := newUserRouter(t)

		rec := putMultipart(t, router, user.ID, map[string]string{"email": "not-an-email"})
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("short password is a 400", func(t *testing.T) {
		router, user := newUserRouter(t)

		rec := putMultipart(t, router, user.ID, map[string]string{"password": "x"})
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("valid fields pass through", func(t *testing.T) {
		router, user := newUserRouter(t)

		rec := putMultipart(t, router, user.ID, map[string]string{"firstName": "Augusta"})
		require.Equal(t, http.StatusOK, rec.Code)

		var body model.User
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Equal(t, "Augusta", body.FirstName)
		require.Empty(t, body.Password)
	})
}

func TestUserHandler_Update_JSONValidation(t *testing.T) {
	t.Parallel()

	putJSON := func(t *testing.T, router http.Handler, id string, body string) *httptest.ResponseRecorder {
		t.Helper()

		req := httptest.NewRequest(http.MethodPut, "/user/"+id, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	t.Run("malformed email is a 400", func(t *testing.T) {
		router, user := newUserRouter(t)

		rec := putJSON(t, router, user.ID, `{"email":"not-an-email"}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("valid partial update succeeds", func(t *testing.T) {
		router, user := newUserRouter(t)

		rec := putJSON(t, router, user.ID, `{"lastName":"Byron"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var body model.User
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Equal(t, "Byron", body.LastName)
	})
}
