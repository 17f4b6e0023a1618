package btce

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrNoCredentials = errors.New("btce: api key and secret are required for private calls")
	ErrInvalidParam  = errors.New("btce: invalid parameter")
)

// APIError is a failure reported by the exchange in an otherwise successful HTTP exchange.
type APIError struct {
	// Method is the private API method name, or the public path for public calls.
	Method  string
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// HTTPError represents a non-2xx answer from the exchange.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("server responded with a %d status code", e.StatusCode)
	}
	return fmt.Sprintf("server responded with a %d status code: %s", e.StatusCode, e.Body)
}

// IsAPIError reports whether err (or its cause) was reported by the exchange itself.
func IsAPIError(err error) bool {
	_, ok := errors.Cause(err).(*APIError)
	return ok
}

func invalidParam(format string, a ...interface{}) error {
	return errors.Wrapf(ErrInvalidParam, format, a...)
}
