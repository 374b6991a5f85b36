package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/aliar-cursos/internal/infra/export"
	"github.com/xavierca1/aliar-cursos/internal/infra/http/middleware"
	"github.com/xavierca1/aliar-cursos/internal/usecase"
)

type LeadHandler struct {
	uc  *usecase.LeadUseCase
	loc *time.Location
}

func NewLeadHandler(uc *usecase.LeadUseCase, loc *time.Location) *LeadHandler {
	return &LeadHandler{uc: uc, loc: loc}
}

func (h *LeadHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateLeadInput
	if err := decodeJSON(w, r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	lead, err := h.uc.Create(r.Context(), input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	middleware.RecordFormSubmission(usecase.ResourceLeads)
	writeJSON(w, http.StatusCreated, lead)
}

func (h *LeadHandler) List(w http.ResponseWriter, r *http.Request) {
	leads, err := h.uc.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, leads)
}

// Export baixa os leads em planilha. Mesma regra de acesso da listagem.
func (h *LeadHandler) Export(w http.ResponseWriter, r *http.Request) {
	leads, err := h.uc.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := export.WriteLeadsXLSX(&buf, leads, h.loc); err != nil {
		writeError(w, r, err)
		return
	}

	filename := fmt.Sprintf("leads-%s.xlsx", time.Now().In(h.loc).Format("2006-01-02"))
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

func (h *LeadHandler) Get(w http.ResponseWriter, r *http.Request) {
	lead, err := h.uc.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, lead)
}

func (h *LeadHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input usecase.UpdateLeadInput
	if err := decodeJSON(w, r, &input); err != nil {
		writeError(w, r, err)
		return
	}
	input.ID = chi.URLParam(r, "id")

	lead, err := h.uc.Update(r.Context(), input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, lead)
}

func (h *LeadHandler) Delete(w http.ResponseWriter, r *http.Request) {
	out, err := h.uc.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}
