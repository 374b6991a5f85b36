package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/aliar-cursos/internal/infra/http/middleware"
	"github.com/xavierca1/aliar-cursos/internal/usecase"
)

type TrialClassHandler struct {
	uc *usecase.TrialClassUseCase
}

func NewTrialClassHandler(uc *usecase.TrialClassUseCase) *TrialClassHandler {
	return &TrialClassHandler{uc: uc}
}

func (h *TrialClassHandler) Slots(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"slots": h.uc.Slots()})
}

func (h *TrialClassHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateTrialClassInput
	if err := decodeJSON(w, r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	tc, err := h.uc.Create(r.Context(), input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	middleware.RecordFormSubmission(usecase.ResourceTrialClasses)
	writeJSON(w, http.StatusCreated, tc)
}

func (h *TrialClassHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.uc.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *TrialClassHandler) Get(w http.ResponseWriter, r *http.Request) {
	tc, err := h.uc.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tc)
}

func (h *TrialClassHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input usecase.UpdateTrialClassInput
	if err := decodeJSON(w, r, &input); err != nil {
		writeError(w, r, err)
		return
	}
	input.ID = chi.URLParam(r, "id")

	tc, err := h.uc.Update(r.Context(), input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tc)
}

func (h *TrialClassHandler) Delete(w http.ResponseWriter, r *http.Request) {
	out, err := h.uc.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}
