package usecase

import (
	"errors"
	"fmt"
	"strings"
)

const (
	CodeValidation         = "VALIDATION_ERROR"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeForbidden          = "FORBIDDEN"
	CodeNotFound           = "NOT_FOUND"
	CodeStorageUnavailable = "STORAGE_UNAVAILABLE"
)

// FieldError aponta um campo do input que não passou no schema.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) String() string {
	return e.Field + " (" + e.Message + ")"
}

// ValidationError: input fora do schema. Nunca chega no banco.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.String())
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// UnauthenticatedError: operação de admin chamada sem identidade.
type UnauthenticatedError struct{}

func (e *UnauthenticatedError) Error() string {
	return "Please login (10001)"
}

// AuthorizationError: identidade presente mas sem o papel exigido.
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.ID)
}

// StorageUnavailableError embrulha qualquer falha do banco.
type StorageUnavailableError struct {
	Resource string
	Err      error
}

func (e *StorageUnavailableError) Error() string {
	return fmt.Sprintf("storage unavailable (%s): %v", e.Resource, e.Err)
}

func (e *StorageUnavailableError) Unwrap() error {
	return e.Err
}

// ErrorCode devolve o código público do erro, ou "" se não for da taxonomia.
func ErrorCode(err error) string {
	var (
		validationErr *ValidationError
		unauthErr     *UnauthenticatedError
		forbiddenErr  *AuthorizationError
		notFoundErr   *NotFoundError
		storageErr    *StorageUnavailableError
	)
	switch {
	case errors.As(err, &validationErr):
		return CodeValidation
	case errors.As(err, &unauthErr):
		return CodeUnauthorized
	case errors.As(err, &forbiddenErr):
		return CodeForbidden
	case errors.As(err, &notFoundErr):
		return CodeNotFound
	case errors.As(err, &storageErr):
		return CodeStorageUnavailable
	}
	return ""
}

func isContractError(err error) bool {
	return ErrorCode(err) != ""
}
