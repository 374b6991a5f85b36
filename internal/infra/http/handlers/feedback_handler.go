package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/aliar-cursos/internal/infra/http/middleware"
	"github.com/xavierca1/aliar-cursos/internal/usecase"
)

type FeedbackHandler struct {
	uc *usecase.FeedbackUseCase
}

func NewFeedbackHandler(uc *usecase.FeedbackUseCase) *FeedbackHandler {
	return &FeedbackHandler{uc: uc}
}

func (h *FeedbackHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateFeedbackInput
	if err := decodeJSON(w, r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	f, err := h.uc.Create(r.Context(), input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	middleware.RecordFormSubmission(usecase.ResourceFeedbacks)
	writeJSON(w, http.StatusCreated, f)
}

// ListApproved alimenta a seção de depoimentos do site.
func (h *FeedbackHandler) ListApproved(w http.ResponseWriter, r *http.Request) {
	list, err := h.uc.ListApproved(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *FeedbackHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.uc.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *FeedbackHandler) Get(w http.ResponseWriter, r *http.Request) {
	f, err := h.uc.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, f)
}

func (h *FeedbackHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input usecase.UpdateFeedbackInput
	if err := decodeJSON(w, r, &input); err != nil {
		writeError(w, r, err)
		return
	}
	input.ID = chi.URLParam(r, "id")

	f, err := h.uc.Update(r.Context(), input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, f)
}

func (h *FeedbackHandler) Delete(w http.ResponseWriter, r *http.Request) {
	out, err := h.uc.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}
