package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"portfolio-api/internal/model"
	"portfolio-api/internal/service"
	"portfolio-api/pkg/apierror"
)

type SkillHandler struct {
	service *service.SkillService
}

func NewSkillHandler(service *service.SkillService) *SkillHandler {
	return &SkillHandler{service: service}
}

func (h *SkillHandler) List(w http.ResponseWriter, r *http.Request) {
	skills, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, skills)
}

func (h *SkillHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload model.CreateSkillRequest
	if err := decodeJSON(r.Body, &payload); err != nil {
		writeError(w, err)
		return
	}

	if err := validate.Struct(payload); err != nil {
		writeError(w, apierror.New("Please provide a skill name.", "", http.StatusBadRequest))
		return
	}

	skill, err := h.service.Create(r.Context(), payload)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, skill)
}

func (h *SkillHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeMessage(w, http.StatusBadRequest, "No ID parameter provided.")
		return
	}

	var payload model.UpdateSkillRequest
	if err := decodeJSON(r.Body, &payload); err != nil {
		writeError(w, err)
		return
	}

	if err := validate.Struct(payload); err != nil {
		writeError(w, apierror.New("Please provide a skill name.", "", http.StatusBadRequest))
		return
	}

	skill, err := h.service.Update(r.Context(), id, payload)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, skill)
}

func (h *SkillHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeMessage(w, http.StatusBadRequest, "No ID parameter provided.")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}

	writeMessage(w, http.StatusOK, "Skill deleted.")
}
