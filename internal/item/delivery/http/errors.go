package http

import (
	"errors"
	"net/http"

	"freezer-inventory/internal/item"
	pkgErrors "freezer-inventory/pkg/errors"
)

// Item domain error codes.
const (
	codeInvalidBody = 110001 + iota
	codeEmptyInput
	codeInputTooLong
	codeInvalidDefaultDays
	codeEmptyBatch
	codeTooManyItems
)

func errInvalidBody(err error) error {
	return pkgErrors.NewHTTPErrorCode(http.StatusBadRequest, codeInvalidBody, "invalid request body: "+err.Error())
}

// mapError translates use-case errors into HTTP errors from pkg/errors.
// The wrapped message is kept so batch errors name the failing index.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, item.ErrEmptyInput):
		return pkgErrors.NewHTTPErrorCode(http.StatusBadRequest, codeEmptyInput, err.Error())
	case errors.Is(err, item.ErrInputTooLong):
		return pkgErrors.NewHTTPErrorCode(http.StatusBadRequest, codeInputTooLong, err.Error())
	case errors.Is(err, item.ErrInvalidDefaultDays):
		return pkgErrors.NewHTTPErrorCode(http.StatusBadRequest, codeInvalidDefaultDays, err.Error())
	case errors.Is(err, item.ErrEmptyBatch):
		return pkgErrors.NewHTTPErrorCode(http.StatusBadRequest, codeEmptyBatch, err.Error())
	case errors.Is(err, item.ErrTooManyItems):
		return pkgErrors.NewHTTPErrorCode(http.StatusBadRequest, codeTooManyItems, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
