package http

import (
	"errors"
	"net/http"

	"task-suggestion/internal/suggestion"
	pkgErrors "task-suggestion/pkg/errors"
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, suggestion.ErrInvalidNumSuggestions):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
