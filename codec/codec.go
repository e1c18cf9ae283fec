// Package codec converts todo records between their generic form (an ldvalue.Value object) and
// the JSON and XML wire representations used by the Todo Manager API.
//
// Encoding is strict: a record can only be encoded as JSON or XML, and any other declared content
// type is an error. Decoding is lenient: an empty body always decodes to the "no body" marker, and
// a body of any other content type is kept as raw text.
package codec

import (
	"mime"
	"strings"
)

const (
	ContentTypeJSON = "application/json"
	ContentTypeXML  = "application/xml"
)

// MediaType is the representation chosen for one direction of an exchange.
type MediaType int

const (
	Unrecognized MediaType = iota
	JSON
	XML
)

func (m MediaType) String() string {
	switch m {
	case JSON:
		return ContentTypeJSON
	case XML:
		return ContentTypeXML
	default:
		return "unrecognized"
	}
}

// ResolveMediaType maps a Content-Type header value to a MediaType. Parameters such as charset
// are ignored.
func ResolveMediaType(contentType string) MediaType {
	if contentType == "" {
		return Unrecognized
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mediaType = strings.ToLower(strings.TrimSpace(strings.SplitN(contentType, ";", 2)[0]))
	}
	switch mediaType {
	case ContentTypeJSON:
		return JSON
	case ContentTypeXML:
		return XML
	default:
		return Unrecognized
	}
}
