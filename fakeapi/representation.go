package fakeapi

import (
	"io"
	"net/http"
	"strings"

	"github.com/launchdarkly/todo-contract-tests/codec"
	"github.com/launchdarkly/todo-contract-tests/servicedef"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// document is a response body in both of its representations. The XML form has a named root
// element, and collections inside it are written as repeated child elements.
type document struct {
	json    ldvalue.Value
	xmlRoot string
	xml     ldvalue.Value
}

func todoDocument(t servicedef.Todo) document {
	v := t.AsValue()
	return document{json: v, xmlRoot: "todo", xml: v}
}

func todosDocument(todos []servicedef.Todo) document {
	items := make([]ldvalue.Value, 0, len(todos))
	for _, t := range todos {
		items = append(items, t.AsValue())
	}
	list := ldvalue.ArrayOf(items...)
	return document{
		json:    ldvalue.ObjectBuild().Set("todos", list).Build(),
		xmlRoot: "todos",
		xml:     ldvalue.ObjectBuild().Set("todo", list).Build(),
	}
}

func errorsDocument(messages ...string) document {
	v := servicedef.ErrorMessagesAsValue(messages...)
	return document{
		json:    v,
		xmlRoot: "errorMessages",
		xml:     ldvalue.ObjectBuild().Set("errorMessage", v.GetByKey("errorMessages")).Build(),
	}
}

// negotiate picks the response representation from the Accept header. The first media type in
// the header that the service can produce wins; wildcards and a missing header mean JSON. If
// nothing is acceptable it writes a 406 response and returns false.
func (s *Service) negotiate(w http.ResponseWriter, r *http.Request) (codec.MediaType, bool) {
	accept := r.Header.Get(servicedef.HeaderAccept)
	if strings.TrimSpace(accept) == "" {
		return codec.JSON, true
	}
	for _, part := range strings.Split(accept, ",") {
		if mt := codec.ResolveMediaType(part); mt != codec.Unrecognized {
			return mt, true
		}
		switch strings.TrimSpace(strings.SplitN(part, ";", 2)[0]) {
		case "*/*", "application/*":
			return codec.JSON, true
		}
	}
	s.send(w, http.StatusNotAcceptable, codec.JSON, errorsDocument(servicedef.ErrUnrecognisedAccept))
	return codec.Unrecognized, false
}

func (s *Service) send(w http.ResponseWriter, status int, mt codec.MediaType, doc document) {
	var data []byte
	var err error
	if mt == codec.XML {
		data, err = codec.MarshalXMLElement(doc.xmlRoot, doc.xml)
	} else {
		mt = codec.JSON
		data, err = codec.Encode(doc.json, codec.ContentTypeJSON)
	}
	if err != nil {
		s.logger.Printf("Failed to encode response: %s", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set(servicedef.HeaderContentType, mt.String())
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

func (s *Service) sendErrors(w http.ResponseWriter, status int, mt codec.MediaType, messages ...string) {
	s.logger.Printf("Returning HTTP %d: %s", status, strings.Join(messages, "; "))
	s.send(w, status, mt, errorsDocument(messages...))
}

// readRecord reads and decodes a request body. It returns the fields of the todo record and
// whether it came as XML. If the body is unusable it writes the error response and returns false.
func (s *Service) readRecord(w http.ResponseWriter, r *http.Request, mt codec.MediaType) (map[string]ldvalue.Value, bool, bool) {
	contentType := r.Header.Get(servicedef.HeaderContentType)
	requestType := codec.JSON
	if contentType != "" {
		requestType = codec.ResolveMediaType(contentType)
		if requestType == codec.Unrecognized {
			s.sendErrors(w, http.StatusUnsupportedMediaType, mt, servicedef.UnsupportedContentType(contentType))
			return nil, false, false
		}
	}

	data, err := io.ReadAll(io.LimitReader(r.Body, servicedef.MaxBodyBytes+1))
	if err != nil {
		s.sendErrors(w, http.StatusBadRequest, mt, servicedef.ErrMalformedBody)
		return nil, false, false
	}
	if len(data) > servicedef.MaxBodyBytes {
		s.sendErrors(w, http.StatusRequestEntityTooLarge, mt, servicedef.ErrBodyTooLarge)
		return nil, false, false
	}

	body, err := codec.Decode(data, requestType.String())
	if err != nil {
		s.sendErrors(w, http.StatusBadRequest, mt, servicedef.ErrMalformedBody)
		return nil, false, false
	}
	isXML := requestType == codec.XML
	record := body.Value
	if isXML {
		record = record.GetByKey("todo")
		if record.Type() == ldvalue.StringType && record.StringValue() == "" {
			record = ldvalue.ObjectBuild().Build()
		}
	}
	if body.IsNone() {
		record = ldvalue.ObjectBuild().Build()
	}
	fields, ok := record.AsArbitraryValue().(map[string]interface{})
	if !ok {
		s.sendErrors(w, http.StatusBadRequest, mt, servicedef.ErrMalformedBody)
		return nil, false, false
	}
	ret := make(map[string]ldvalue.Value, len(fields))
	for k, v := range fields {
		ret[k] = ldvalue.CopyArbitraryValue(v)
	}
	return ret, isXML, true
}
