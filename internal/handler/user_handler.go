package handler

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"portfolio-api/internal/model"
	"portfolio-api/internal/service"
	"portfolio-api/pkg/apierror"
)

type UserHandler struct {
	service       *service.UserService
	maxUploadSize int64
}

func NewUserHandler(service *service.UserService, maxUploadSize int64) *UserHandler {
	return &UserHandler{service: service, maxUploadSize: maxUploadSize}
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	sanitized := make([]model.User, 0, len(users))
	for _, u := range users {
		sanitized = append(sanitized, u.Sanitized())
	}

	writeJSON(w, http.StatusOK, sanitized)
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user.Sanitized())
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload model.CreateUserRequest
	if err := decodeJSON(r.Body, &payload); err != nil {
		writeError(w, err)
		return
	}

	if err := validate.Struct(payload); err != nil {
		writeError(w, apierror.New("Please provide first name, last name, a valid email and a password of at least 6 characters.", "", http.StatusBadRequest))
		return
	}

	user, err := h.service.Create(r.Context(), payload)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, user.Sanitized())
}

// Update accepts either a JSON body or a multipart form carrying an optional
// "avatar" image. The password is only re-hashed when the request actually
// carries one.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeMessage(w, http.StatusBadRequest, "User ID missing from request.")
		return
	}

	params, err := h.updateParams(w, r)
	if err != nil {
		writeError(w, err)
		return
	}

	user, err := h.service.Update(r.Context(), id, params)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user.Sanitized())
}

func (h *UserHandler) updateParams(w http.ResponseWriter, r *http.Request) (service.UpdateUserParams, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if !strings.HasPrefix(mediaType, "multipart/") {
		var payload model.UpdateUserRequest
		if err := decodeJSON(r.Body, &payload); err != nil {
			return service.UpdateUserParams{}, err
		}
		if err := validate.Struct(payload); err != nil {
			return service.UpdateUserParams{}, apierror.New("Invalid user data.", "", http.StatusBadRequest)
		}

		return service.UpdateUserParams{
			FirstName:       payload.FirstName,
			LastName:        payload.LastName,
			Email:           payload.Email,
			Password:        payload.Password,
			PasswordChanged: payload.Password != "",
		}, nil
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		return service.UpdateUserParams{}, apierror.New("Invalid form data.", "", http.StatusBadRequest)
	}

	avatar, err := readFormFile(r, "avatar")
	if err != nil {
		return service.UpdateUserParams{}, err
	}

	// Run the form fields through the same validation rules as a JSON body.
	payload := model.UpdateUserRequest{
		FirstName: r.FormValue("firstName"),
		LastName:  r.FormValue("lastName"),
		Email:     r.FormValue("email"),
		Password:  r.FormValue("password"),
	}
	if err := validate.Struct(payload); err != nil {
		return service.UpdateUserParams{}, apierror.New("Invalid user data.", "", http.StatusBadRequest)
	}

	return service.UpdateUserParams{
		FirstName:       payload.FirstName,
		LastName:        payload.LastName,
		Email:           payload.Email,
		Password:        payload.Password,
		PasswordChanged: payload.Password != "",
		AvatarData:      avatar,
	}, nil
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeMessage(w, http.StatusBadRequest, "User ID missing from request.")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	writeMessage(w, http.StatusOK, "User with ID: "+id+" deleted.")
}

// DeleteMissingID answers DELETE /user without an id segment.
func (h *UserHandler) DeleteMissingID(w http.ResponseWriter, _ *http.Request) {
	writeMessage(w, http.StatusBadRequest, "User ID missing from request.")
}

// readFormFile returns the bytes of an uploaded form file, or nil when the
// field is absent.
func readFormFile(r *http.Request, field string) ([]byte, error) {
	file, _, err := r.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, apierror.New("Invalid form data.", "", http.StatusBadRequest)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, apierror.New("Failed to read uploaded file.", "", http.StatusBadRequest)
	}

	return data, nil
}
