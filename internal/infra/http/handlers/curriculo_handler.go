package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/aliar-cursos/internal/infra/http/middleware"
	"github.com/xavierca1/aliar-cursos/internal/usecase"
)

type CurriculoHandler struct {
	uc *usecase.CurriculoUseCase
}

func NewCurriculoHandler(uc *usecase.CurriculoUseCase) *CurriculoHandler {
	return &CurriculoHandler{uc: uc}
}

func (h *CurriculoHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateCurriculoInput
	if err := decodeJSON(w, r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	c, err := h.uc.Create(r.Context(), input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	middleware.RecordFormSubmission(usecase.ResourceCurriculos)
	writeJSON(w, http.StatusCreated, c)
}

func (h *CurriculoHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.uc.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *CurriculoHandler) ListByArea(w http.ResponseWriter, r *http.Request) {
	list, err := h.uc.ListByArea(r.Context(), chi.URLParam(r, "area"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *CurriculoHandler) Get(w http.ResponseWriter, r *http.Request) {
	c, err := h.uc.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *CurriculoHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input usecase.UpdateCurriculoInput
	if err := decodeJSON(w, r, &input); err != nil {
		writeError(w, r, err)
		return
	}
	input.ID = chi.URLParam(r, "id")

	c, err := h.uc.Update(r.Context(), input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *CurriculoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	out, err := h.uc.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}
