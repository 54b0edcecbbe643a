// Package apperr defines the error kinds shared by the repositories, the auth
// service and the HTTP layer.
package apperr

import (
	"errors"
	"net/http"

	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrNotFound           = errors.New("not found")
	ErrValidation         = errors.New("validation failed")
	ErrConflict           = errors.New("conflict")
)

const (
	CodeInvalidCredentials = "invalid_credentials"
	CodeUnauthorized       = "unauthorized"
	CodeNotFound           = "not_found"
	CodeValidation         = "validation_error"
	CodeConflict           = "conflict"
	CodeInternal           = "internal_error"
)

type kind struct {
	err    error
	code   string
	status int
}

var kinds = []kind{
	{ErrInvalidCredentials, CodeInvalidCredentials, http.StatusUnauthorized},
	{ErrUnauthorized, CodeUnauthorized, http.StatusUnauthorized},
	{ErrNotFound, CodeNotFound, http.StatusNotFound},
	{ErrValidation, CodeValidation, http.StatusBadRequest},
	{ErrConflict, CodeConflict, http.StatusConflict},
}

func lookup(err error) (kind, bool) {
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k, true
		}
	}
	return kind{}, false
}

// Status maps err to the HTTP status code of its kind; unknown errors are 500.
func Status(err error) int {
	if k, ok := lookup(err); ok {
		return k.status
	}
	return http.StatusInternalServerError
}

// Code maps err to its machine-readable error string.
func Code(err error) string {
	if k, ok := lookup(err); ok {
		return k.code
	}
	return CodeInternal
}

// IsKnown reports whether err belongs to one of the kinds above.
func IsKnown(err error) bool {
	_, ok := lookup(err)
	return ok
}

// FromGorm converts translated gorm errors into application kinds and keeps
// the original error in the chain.
func FromGorm(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return errors.Join(ErrNotFound, err)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return errors.Join(ErrConflict, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return errors.Join(ErrValidation, err)
	}
	return err
}
