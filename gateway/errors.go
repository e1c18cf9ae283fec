package gateway

import "fmt"

// TransportError means that no HTTP response was received, because of a connection failure,
// a timeout, or an invalid request.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s failed: %s", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
