package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"portfolio-api/internal/model"
	"portfolio-api/pkg/apierror"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type errorResponse struct {
	Message string `json:"message"`
	Errors  string `json:"errors,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, model.MessageResponse{Message: message})
}

// writeError maps sentinel errors to stable HTTP responses. Internal error
// detail is logged, never forwarded on credential or token failure paths.
func writeError(w http.ResponseWriter, err error) {
	var apiErr *apierror.APIError
	if errors.As(err, &apiErr) {
		writeJSON(w, apiErr.HTTPStatus, errorResponse{Message: apiErr.Message, Errors: apiErr.Details})
		return
	}

	switch {
	case errors.Is(err, model.ErrUserNotFound):
		writeMessage(w, http.StatusNotFound, "User does not exist.")
	case errors.Is(err, model.ErrSkillNotFound):
		writeMessage(w, http.StatusNotFound, "Skill not found.")
	case errors.Is(err, model.ErrItemNotFound):
		writeMessage(w, http.StatusNotFound, "Portfolio item not found.")
	case errors.Is(err, model.ErrDuplicateEmail):
		writeMessage(w, http.StatusConflict, "User email already exists.")
	case errors.Is(err, model.ErrDuplicateSkill):
		writeMessage(w, http.StatusBadRequest, "Skill already exists.")
	case errors.Is(err, model.ErrDuplicateTitle):
		writeMessage(w, http.StatusBadRequest, "Portfolio item already exists.")
	case errors.Is(err, model.ErrPasswordTooShort):
		writeMessage(w, http.StatusBadRequest, "Password must have a minimum of 6 characters.")
	case errors.Is(err, model.ErrTokenMissing):
		writeMessage(w, http.StatusBadRequest, "No token provided.")
	case errors.Is(err, model.ErrTokenExpired), errors.Is(err, model.ErrTokenInvalid):
		writeMessage(w, http.StatusForbidden, "Unauthorized.")
	case errors.Is(err, model.ErrUserGone):
		slog.Error("token subject lookup failed", "error", err)
		writeMessage(w, http.StatusInternalServerError, "Cannot verify user.")
	default:
		slog.Error("unhandled error", "error", err)
		writeMessage(w, http.StatusInternalServerError, "Unexpected server error.")
	}
}

func decodeJSON(body io.ReadCloser, dst any) error {
	defer body.Close()
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		return apierror.New("Invalid JSON body.", "", http.StatusBadRequest)
	}
	return nil
}
