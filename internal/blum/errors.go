package blum

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/osse101/BlumBot_Go/internal/backoff"
	"github.com/osse101/BlumBot_Go/internal/domain"
)

// RequestError describes a failed remote call. Kind is the backoff category.
type RequestError struct {
	Op     string
	Kind   backoff.Category
	Status int
	Err    error
}

func (e *RequestError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: %s (status %d): %v", e.Op, e.Kind, e.Status, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// Category implements backoff.Categorized
func (e *RequestError) Category() backoff.Category {
	return e.Kind
}

// StatusCode returns the HTTP status of a status-kind RequestError in err's chain
func StatusCode(err error) (int, bool) {
	var reqErr *RequestError
	if errors.As(err, &reqErr) && reqErr.Kind == backoff.CategoryStatus && reqErr.Status != 0 {
		return reqErr.Status, true
	}
	return 0, false
}

// IsNonSuccess reports whether err is only a non-2xx answer (not auth, not transport)
func IsNonSuccess(err error) bool {
	status, ok := StatusCode(err)
	return ok && status != http.StatusUnauthorized && status != http.StatusForbidden
}

func statusError(op string, status int, body []byte) error {
	var cause error
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		cause = fmt.Errorf("%w: %s", domain.ErrUnauthorized, snippet(body))
	default:
		cause = fmt.Errorf("unexpected status: %s", snippet(body))
	}
	return &RequestError{Op: op, Kind: backoff.CategoryStatus, Status: status, Err: cause}
}

func decodeError(op string, status int, err error) error {
	return &RequestError{Op: op, Kind: backoff.CategoryDecode, Status: status, Err: err}
}

func shapeError(op string, field string) error {
	return &RequestError{Op: op, Kind: backoff.CategoryShape, Err: fmt.Errorf("%w: missing %s", domain.ErrUnexpectedShape, field)}
}

func snippet(body []byte) string {
	const max = 200
	if len(body) > max {
		return string(body[:max]) + "..."
	}
	return string(body)
}

// transportError wraps a failure that produced no HTTP response
func transportError(op string, err error) error {
	kind := backoff.Classify(err)
	if kind == backoff.CategoryUnknown || kind == backoff.CategoryStatus {
		kind = backoff.CategoryClient
	}
	return &RequestError{Op: op, Kind: kind, Err: err}
}

// readError wraps a failure while reading a response body; the peer dropped mid-request
func readError(op string, status int, err error) error {
	kind := backoff.CategoryDisconnected
	if backoff.Classify(err) == backoff.CategoryTimeout {
		kind = backoff.CategoryTimeout
	}
	return &RequestError{Op: op, Kind: kind, Status: status, Err: err}
}
