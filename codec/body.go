package codec

import (
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

type BodyKind int

const (
	// BodyNone means the response had no body at all. It is the only representation of an
	// absent body; an empty string is never used for that.
	BodyNone BodyKind = iota
	// BodyValue means the body was JSON or XML and has been decoded into Value.
	BodyValue
	// BodyText means the body had some other content type and is kept in Text as it was.
	BodyText
)

// Body is a decoded response body.
type Body struct {
	Kind  BodyKind
	Value ldvalue.Value
	Text  string

	raw string // The original text, for debug logging
}

// NoBody returns the marker for an absent body.
func NoBody() Body {
	return Body{Kind: BodyNone}
}

func (b Body) IsNone() bool {
	return b.Kind == BodyNone
}

func (b Body) String() string {
	switch b.Kind {
	case BodyNone:
		return "<no body>"
	case BodyText:
		return b.Text
	default:
		return b.raw
	}
}
