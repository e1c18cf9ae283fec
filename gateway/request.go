package gateway

import (
	"net/http"

	"github.com/launchdarkly/todo-contract-tests/codec"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// Request describes one call to the service.
type Request struct {
	Method string
	// Path may contain placeholders such as "{id}", which are filled in from PathParams.
	Path       string
	PathParams map[string]string
	Query      map[string]string
	// Headers override the default and computed headers. An empty value removes the header.
	Headers map[string]string
	// Body is nil if the request has no body.
	Body *Body
}

// Body is a request body: either bytes to send as they are, or a record to encode for the
// request's Content-Type.
type Body struct {
	raw   []byte
	value ldvalue.Value
}

// RawBody returns a body that is sent without encoding.
func RawBody(data []byte) *Body {
	if data == nil {
		data = []byte{}
	}
	return &Body{raw: data}
}

// ValueBody returns a body that is encoded for the request's Content-Type when it is sent.
func ValueBody(record ldvalue.Value) *Body {
	return &Body{value: record}
}

// Response is the normalized result of a request.
type Response struct {
	Status  int
	Headers http.Header
	Body    codec.Body
}

// Header returns the first value of a response header, looked up case-insensitively.
func (r Response) Header(name string) string {
	return r.Headers.Get(name)
}
