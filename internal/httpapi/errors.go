package httpapi

import (
	"context"
	"errors"
	"net/http"

	catalogapp "github.com/neonthreads/storefront/internal/catalog/app"
)

// errBadRequest marks request-shape problems detected at the boundary.
var errBadRequest = errors.New("bad request")

func httpStatusFromErr(err error) (int, string, string) {
	switch {
	case errors.Is(err, errBadRequest), errors.Is(err, catalogapp.ErrInvalidInput):
		return http.StatusBadRequest, "INVALID_INPUT", err.Error()
	case errors.Is(err, catalogapp.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND", err.Error()
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable, "UNAVAILABLE", err.Error()
	default:
		return http.StatusInternalServerError, "INTERNAL", "internal error"
	}
}
