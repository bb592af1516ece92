package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"portfolio-api/internal/service"
	"portfolio-api/pkg/apierror"
)

type ItemHandler struct {
	service       *service.ItemService
	maxUploadSize int64
}

func NewItemHandler(service *service.ItemService, maxUploadSize int64) *ItemHandler {
	return &ItemHandler{service: service, maxUploadSize: maxUploadSize}
}

func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, items)
}

func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	params, err := h.itemParams(w, r)
	if err != nil {
		writeError(w, err)
		return
	}

	if strings.TrimSpace(params.Title) == "" || strings.TrimSpace(params.Link) == "" ||
		strings.TrimSpace(params.Description) == "" || strings.TrimSpace(params.Type) == "" {
		writeMessage(w, http.StatusBadRequest, "Please provide title, link, description and type.")
		return
	}

	item, err := h.service.Create(r.Context(), params)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, item)
}

func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeMessage(w, http.StatusBadRequest, "No ID parameter provided.")
		return
	}

	params, err := h.itemParams(w, r)
	if err != nil {
		writeError(w, err)
		return
	}

	item, err := h.service.Update(r.Context(), id, params)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, item)
}

func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeMessage(w, http.StatusBadRequest, "No ID parameter provided.")
		return
	}

	if _, err := h.service.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// itemParams parses the multipart create/update form. The showcase image is
// uploaded under the "image" field; "tech" carries a JSON-encoded array.
func (h *ItemHandler) itemParams(w http.ResponseWriter, r *http.Request) (service.ItemParams, error) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		return service.ItemParams{}, apierror.New("Empty body received.", "", http.StatusBadRequest)
	}

	image, err := readFormFile(r, "image")
	if err != nil {
		return service.ItemParams{}, err
	}

	var sortKey *int
	if raw := strings.TrimSpace(r.FormValue("sortKey")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return service.ItemParams{}, apierror.New("Invalid sortKey value.", "", http.StatusBadRequest)
		}
		sortKey = &parsed
	}

	return service.ItemParams{
		Title:       r.FormValue("title"),
		Link:        r.FormValue("link"),
		Description: r.FormValue("description"),
		Type:        r.FormValue("type"),
		SortKey:     sortKey,
		TechJSON:    r.FormValue("tech"),
		ImageData:   image,
	}, nil
}
