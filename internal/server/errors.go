package server

import (
	"errors"
	"net/http"

	"github.com/bhadmusolaide/grammar-checker-sub000/internal/dispatch"
)

// HTTPStatus returns the appropriate HTTP status code for an error from the
// dispatch or pipeline layers. Client mistakes (bad provider, missing
// credential, empty input) map to 400; upstream transport failures to 502.
func HTTPStatus(err error) int {
	var (
		unsupported *dispatch.UnsupportedProviderError
		credential  *dispatch.MissingCredentialError
		empty       *dispatch.EmptyInputError
		transport   *dispatch.TransportError
	)
	switch {
	case errors.As(err, &unsupported), errors.As(err, &credential), errors.As(err, &empty):
		return http.StatusBadRequest
	case errors.As(err, &transport):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
