package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/xavierca1/aliar-cursos/internal/usecase"
)

const maxBodyBytes = 1 << 20

type ErrorResponse struct {
	Error   string               `json:"error"`
	Message string               `json:"message"`
	Fields  []usecase.FieldError `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeErrorResponse(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Error: code, Message: message})
}

// writeError traduz a taxonomia do usecase para status HTTP.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := usecase.ErrorCode(err)
	resp := ErrorResponse{Error: code, Message: err.Error()}

	var status int
	switch code {
	case usecase.CodeValidation:
		status = http.StatusBadRequest
		var verr *usecase.ValidationError
		if errors.As(err, &verr) {
			resp.Fields = verr.Fields
		}
	case usecase.CodeUnauthorized:
		status = http.StatusUnauthorized
	case usecase.CodeForbidden:
		status = http.StatusForbidden
	case usecase.CodeNotFound:
		status = http.StatusNotFound
	case usecase.CodeStorageUnavailable:
		status = http.StatusServiceUnavailable
		slog.Error("banco indisponível",
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		resp.Message = "Serviço temporariamente indisponível"
	default:
		slog.Error("erro inesperado",
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		writeErrorResponse(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Erro interno")
		return
	}

	writeJSON(w, status, resp)
}

// decodeJSON lê o corpo; JSON malformado vira ValidationError no campo "body".
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return &usecase.ValidationError{Fields: []usecase.FieldError{{Field: "body", Message: "invalid JSON"}}}
	}
	return nil
}
