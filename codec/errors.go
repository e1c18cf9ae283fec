package codec

import (
	"errors"
	"fmt"
)

// ErrUnsupportedContentType is wrapped by the CodecError returned from Encode when the declared
// content type is neither JSON nor XML.
var ErrUnsupportedContentType = errors.New("unsupported content type")

// CodecError means that a body could not be encoded or decoded under its declared content type.
type CodecError struct {
	// Op is "encode" or "decode".
	Op          string
	ContentType string
	Err         error
}

func (e *CodecError) Error() string {
	return fmt.Sprintf("cannot %s body as %q: %s", e.Op, e.ContentType, e.Err)
}

func (e *CodecError) Unwrap() error {
	return e.Err
}
