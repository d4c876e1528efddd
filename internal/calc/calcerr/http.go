package calcerr

import (
	"errors"
	"net/http"
)

// HTTPStatus maps a calculation error to a response status: bad input and
// out-of-range queries are 400, unknown catalog ids 404, cross-segment
// violations 422, anything else 500.
func HTTPStatus(err error) int {
	var (
		inputErr       *InputError
		rangeErr       *RangeError
		lookupErr      *LookupError
		consistencyErr *ConsistencyError
	)
	switch {
	case errors.As(err, &inputErr), errors.As(err, &rangeErr):
		return http.StatusBadRequest
	case errors.As(err, &lookupErr):
		return http.StatusNotFound
	case errors.As(err, &consistencyErr):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

// WriteHTTP sends err as a plain-text response with its mapped status.
func WriteHTTP(w http.ResponseWriter, err error) {
	http.Error(w, err.Error(), HTTPStatus(err))
}
