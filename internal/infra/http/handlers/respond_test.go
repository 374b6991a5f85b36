package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/aliar-cursos/internal/usecase"
)

func TestWriteError_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"validação", &usecase.ValidationError{Fields: []usecase.FieldError{{Field: "email", Message: "is invalid"}}}, http.StatusBadRequest, usecase.CodeValidation},
		{"sem login", &usecase.UnauthenticatedError{}, http.StatusUnauthorized, usecase.CodeUnauthorized},
		{"sem papel", &usecase.AuthorizationError{Message: "Only admins can view leads"}, http.StatusForbidden, usecase.CodeForbidden},
		{"não encontrado", &usecase.NotFoundError{Resource: "leads", ID: "x"}, http.StatusNotFound, usecase.CodeNotFound},
		{"banco fora", &usecase.StorageUnavailableError{Resource: "leads", Err: errors.New("dial tcp")}, http.StatusServiceUnavailable, usecase.CodeStorageUnavailable},
		{"embrulhado", fmt.Errorf("contexto: %w", &usecase.NotFoundError{Resource: "leads"}), http.StatusNotFound, usecase.CodeNotFound},
		{"desconhecido", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/leads", nil)

			writeError(rec, req, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantCode, resp.Error)
			assert.NotEmpty(t, resp.Message)
		})
	}
}

func TestWriteError_ValidationFields(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/feedbacks", nil)

	writeError(rec, req, &usecase.ValidationError{Fields: []usecase.FieldError{
		{Field: "avaliacao", Message: "must have exactly 1 character(s)"},
	}})

	assert.JSONEq(t, `{
		"error": "VALIDATION_ERROR",
		"message": "validation failed: avaliacao (must have exactly 1 character(s))",
		"fields": [{"field": "avaliacao", "message": "must have exactly 1 character(s)"}]
	}`, rec.Body.String())
}

func TestDecodeJSON(t *testing.T) {
	t.Run("válido", func(t *testing.T) {
		var in usecase.CreateLeadInput
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"nome":"Ana","email":"a@b.com","telefone":"1"}`))

		require.NoError(t, decodeJSON(httptest.NewRecorder(), req, &in))
		assert.Equal(t, "Ana", in.Nome)
		assert.Nil(t, in.Area)
	})

	t.Run("malformado", func(t *testing.T) {
		var in usecase.CreateLeadInput
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"nome":`))

		err := decodeJSON(httptest.NewRecorder(), req, &in)

		assert.Equal(t, usecase.CodeValidation, usecase.ErrorCode(err))
	})

	t.Run("corpo grande demais", func(t *testing.T) {
		var in usecase.CreateLeadInput
		big := `{"nome":"` + strings.Repeat("a", maxBodyBytes+1) + `"}`
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(big))

		assert.Error(t, decodeJSON(httptest.NewRecorder(), req, &in))
	})
}
