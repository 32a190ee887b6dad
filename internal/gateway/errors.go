package gateway

import (
	"errors"
	"fmt"
)

// NetworkError is a transport-level failure: the request never produced a
// response.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network failure: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// RequestError is a non-2xx response. Code and Message are taken from the
// response body when the server provided them.
type RequestError struct {
	Status  int
	Code    string
	Message string
}

func (e *RequestError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("request failed (%d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("request failed (%d)", e.Status)
}

// Reason converts a gateway error into the human-readable message stored on
// the owning collection.
func Reason(err error) string {
	var reqErr *RequestError
	if errors.As(err, &reqErr) && reqErr.Message != "" {
		return reqErr.Message
	}
	return err.Error()
}
