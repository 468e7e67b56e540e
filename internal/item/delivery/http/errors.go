package http

import (
	"net/http"

	"item-catalog/internal/item"
	pkgErrors "item-catalog/pkg/errors"
	"item-catalog/pkg/response"
)

// mapError translates domain errors into HTTP errors from pkg/errors.
// ErrItemNotFound is the only domain error this module raises; every
// other failure is a store-level error and maps to a plain 500.
func (h *handler) mapError(err error) error {
	switch err {
	case item.ErrItemNotFound:
		return pkgErrors.NewHTTPError(http.StatusNotFound, "item not found")
	default:
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, response.DefaultErrorMessage)
	}
}
