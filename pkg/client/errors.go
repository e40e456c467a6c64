package client

import (
	"errors"
	"fmt"
	"net/http"
)

// TransportError is returned for network failures (StatusCode 0) and for
// every non-2xx response, carrying the server's message.
type TransportError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("transport error: %s", e.Message)
	}
	return fmt.Sprintf("%d %s: %s", e.StatusCode, http.StatusText(e.StatusCode), e.Message)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func IsNotFound(err error) bool {
	var te *TransportError
	return errors.As(err, &te) && te.StatusCode == http.StatusNotFound
}

func IsValidation(err error) bool {
	var te *TransportError
	return errors.As(err, &te) && te.StatusCode == http.StatusBadRequest
}
