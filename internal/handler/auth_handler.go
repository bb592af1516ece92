package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"portfolio-api/internal/middleware"
	"portfolio-api/internal/model"
	"portfolio-api/internal/service"
)

type AuthHandler struct {
	auth *service.AuthService
}

func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Signin verifies credentials and returns the user together with a fresh
// bearer token. Unknown email and wrong password produce the same response
// so the message never reveals which part was wrong.
func (h *AuthHandler) Signin(w http.ResponseWriter, r *http.Request) {
	var payload model.SigninRequest
	if err := decodeJSON(r.Body, &payload); err != nil {
		writeError(w, err)
		return
	}

	if err := validate.Struct(payload); err != nil {
		writeMessage(w, http.StatusBadRequest, "Please provide an email and password.")
		return
	}

	user, err := h.auth.Login(r.Context(), payload.Email, payload.Password)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) || errors.Is(err, model.ErrIncorrectPassword) {
			slog.Warn("login failed", "error", err)
			writeMessage(w, http.StatusBadRequest, "Username or password invalid.")
			return
		}
		writeError(w, err)
		return
	}

	token, err := h.auth.IssueToken(user.ID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.SigninResponse{
		User:        user.Sanitized(),
		AccessToken: token,
	})
}

// Validate echoes the identity resolved by the auth middleware; it exists so
// clients can check whether a stored token is still good.
func (h *AuthHandler) Validate(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Authentication required.")
		return
	}

	writeJSON(w, http.StatusOK, model.ValidateResponse{User: user.Sanitized()})
}
