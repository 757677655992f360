package controller

import (
	"errors"
	"net/http"

	"github.com/hiostage/news-feed-service/internal/domain"
)

// statusFromError maps domain errors onto response codes; anything
// unrecognised is a server error.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrAlreadyExists):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
