package fakeapi

import (
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/launchdarkly/todo-contract-tests/servicedef"

	"github.com/gorilla/mux"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

const allowTodos = "OPTIONS, GET, HEAD, POST"

// HandleListTodos returns every todo, or the ones whose fields equal all of the query parameters.
func (s *Service) HandleListTodos(w http.ResponseWriter, r *http.Request) {
	mt, ok := s.negotiate(w, r)
	if !ok {
		return
	}
	s.lock.Lock()
	todos := s.storeFor(r).list()
	s.lock.Unlock()

	query := r.URL.Query()
	filtered := todos[:0]
	for _, t := range todos {
		if matchesQuery(t, query) {
			filtered = append(filtered, t)
		}
	}
	s.send(w, http.StatusOK, mt, todosDocument(filtered))
}

func matchesQuery(t servicedef.Todo, query map[string][]string) bool {
	for name, values := range query {
		var actual string
		switch name {
		case servicedef.FieldID:
			actual = strconv.Itoa(t.ID.IntValue())
		case servicedef.FieldTitle:
			actual = t.Title
		case servicedef.FieldDescription:
			actual = t.Description
		case servicedef.FieldDoneStatus:
			actual = strconv.FormatBool(t.DoneStatus)
		default:
			continue
		}
		for _, v := range values {
			if v != actual {
				return false
			}
		}
	}
	return true
}

func (s *Service) HandleTodosOptions(w http.ResponseWriter, r *http.Request) {
	w.Header().Set(servicedef.HeaderAllow, allowTodos)
	w.WriteHeader(http.StatusOK)
}

func (s *Service) HandleGetTodo(w http.ResponseWriter, r *http.Request) {
	mt, ok := s.negotiate(w, r)
	if !ok {
		return
	}
	idParam := mux.Vars(r)["id"]
	s.lock.Lock()
	t, found := s.lookup(r, idParam)
	s.lock.Unlock()
	if !found {
		s.sendErrors(w, http.StatusNotFound, mt, servicedef.NotFoundInstance(idParam))
		return
	}
	s.send(w, http.StatusOK, mt, todosDocument([]servicedef.Todo{t}))
}

func (s *Service) HandleCreateTodo(w http.ResponseWriter, r *http.Request) {
	mt, ok := s.negotiate(w, r)
	if !ok {
		return
	}
	fields, isXML, ok := s.readRecord(w, r, mt)
	if !ok {
		return
	}
	if _, hasID := fields[servicedef.FieldID]; hasID {
		s.sendErrors(w, http.StatusBadRequest, mt, servicedef.ErrCreateWithID)
		return
	}
	p, problems := parsePatch(fields, isXML, true)
	if len(problems) != 0 {
		s.sendErrors(w, http.StatusBadRequest, mt, problems...)
		return
	}
	var t servicedef.Todo
	p.applyTo(&t)

	s.lock.Lock()
	t = s.storeFor(r).add(t)
	s.lock.Unlock()

	w.Header().Set("Location", servicedef.PathTodos+"/"+strconv.Itoa(t.ID.IntValue()))
	s.send(w, http.StatusCreated, mt, todoDocument(t))
}

// HandleAmendTodo changes only the fields present in the request.
func (s *Service) HandleAmendTodo(w http.ResponseWriter, r *http.Request) {
	s.update(w, r, false)
}

// HandleReplaceTodo replaces a todo. It cannot create one, because ids are assigned by the
// service.
func (s *Service) HandleReplaceTodo(w http.ResponseWriter, r *http.Request) {
	s.update(w, r, true)
}

func (s *Service) update(w http.ResponseWriter, r *http.Request, replace bool) {
	mt, ok := s.negotiate(w, r)
	if !ok {
		return
	}
	fields, isXML, ok := s.readRecord(w, r, mt)
	if !ok {
		return
	}
	idParam := mux.Vars(r)["id"]

	s.lock.Lock()
	defer s.lock.Unlock()

	existing, found := s.lookup(r, idParam)
	if !found {
		if replace {
			s.sendErrors(w, http.StatusBadRequest, mt, servicedef.ErrCreateWithPut)
		} else {
			s.sendErrors(w, http.StatusNotFound, mt, servicedef.NoSuchEntity(idParam))
		}
		return
	}
	if v, hasID := fields[servicedef.FieldID]; hasID {
		if idText := scalarText(v); idText != idParam {
			s.sendErrors(w, http.StatusBadRequest, mt, fmt.Sprintf("Can not amend id from %s to %s", idParam, idText))
			return
		}
	}
	p, problems := parsePatch(fields, isXML, replace)
	if len(problems) != 0 {
		s.sendErrors(w, http.StatusBadRequest, mt, problems...)
		return
	}
	t := existing
	if replace {
		t = servicedef.Todo{ID: existing.ID}
	}
	p.applyTo(&t)
	s.storeFor(r).put(t)
	s.send(w, http.StatusOK, mt, todoDocument(t))
}

func (s *Service) HandleDeleteTodo(w http.ResponseWriter, r *http.Request) {
	mt, ok := s.negotiate(w, r)
	if !ok {
		return
	}
	idParam := mux.Vars(r)["id"]
	s.lock.Lock()
	deleted := false
	if id, err := strconv.Atoi(idParam); err == nil {
		deleted = s.storeFor(r).remove(id)
	}
	s.lock.Unlock()
	if !deleted {
		s.sendErrors(w, http.StatusNotFound, mt, servicedef.NotFoundAnyInstances(idParam))
		return
	}
	w.WriteHeader(http.StatusOK)
}

// lookup finds a todo by the text of its id. The caller must hold the lock.
func (s *Service) lookup(r *http.Request, idParam string) (servicedef.Todo, bool) {
	id, err := strconv.Atoi(idParam)
	if err != nil {
		return servicedef.Todo{}, false
	}
	return s.storeFor(r).get(id)
}

// patch is the set of todo fields present in a valid request.
type patch struct {
	title       *string
	description *string
	doneStatus  *bool
}

func (p patch) applyTo(t *servicedef.Todo) {
	if p.title != nil {
		t.Title = *p.title
	}
	if p.description != nil {
		t.Description = *p.description
	}
	if p.doneStatus != nil {
		t.DoneStatus = *p.doneStatus
	}
}

// parsePatch validates the fields of a request record. An unknown field is reported on its own;
// otherwise every problem with the known fields is reported. In XML every value is text, so
// doneStatus may be "true" or "false".
func parsePatch(fields map[string]ldvalue.Value, isXML bool, titleRequired bool) (patch, []string) {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		switch name {
		case servicedef.FieldID, servicedef.FieldTitle, servicedef.FieldDescription, servicedef.FieldDoneStatus:
		default:
			return patch{}, []string{servicedef.CouldNotFindField(name)}
		}
	}

	var p patch
	var problems []string

	if v, ok := fields[servicedef.FieldDoneStatus]; ok {
		switch {
		case v.Type() == ldvalue.BoolType:
			b := v.BoolValue()
			p.doneStatus = &b
		case isXML && v.Type() == ldvalue.StringType && (v.StringValue() == "true" || v.StringValue() == "false"):
			b := v.StringValue() == "true"
			p.doneStatus = &b
		default:
			problems = append(problems,
				fmt.Sprintf("Failed Validation: doneStatus should be BOOLEAN but was %s", typeName(v)))
		}
	}

	if v, ok := fields[servicedef.FieldTitle]; ok {
		if s, ok := textField(v, servicedef.FieldTitle, servicedef.MaxTitleLength, &problems); ok {
			if strings.TrimSpace(s) == "" {
				problems = append(problems, servicedef.ErrTitleMandatory)
			} else {
				p.title = &s
			}
		}
	} else if titleRequired {
		problems = append(problems, servicedef.ErrTitleMandatory)
	}

	if v, ok := fields[servicedef.FieldDescription]; ok {
		if s, ok := textField(v, servicedef.FieldDescription, servicedef.MaxDescriptionLength, &problems); ok {
			p.description = &s
		}
	}

	return p, problems
}

func textField(v ldvalue.Value, name string, maxLength int, problems *[]string) (string, bool) {
	if v.Type() != ldvalue.StringType {
		*problems = append(*problems, fmt.Sprintf("Failed Validation: %s should be STRING but was %s", name, typeName(v)))
		return "", false
	}
	s := v.StringValue()
	if utf8.RuneCountInString(s) > maxLength {
		*problems = append(*problems, fmt.Sprintf(
			"Failed Validation: Maximum allowable length exceeded for %s - maximum allowed is %d", name, maxLength))
		return "", false
	}
	return s, true
}

func typeName(v ldvalue.Value) string {
	switch v.Type() {
	case ldvalue.BoolType:
		return "BOOLEAN"
	case ldvalue.NumberType:
		return "NUMBER"
	case ldvalue.StringType:
		return "STRING"
	case ldvalue.NullType:
		return "NULL"
	default:
		return "OBJECT"
	}
}

func scalarText(v ldvalue.Value) string {
	switch v.Type() {
	case ldvalue.StringType:
		return v.StringValue()
	case ldvalue.NumberType:
		if v.IsInt() {
			return strconv.Itoa(v.IntValue())
		}
	}
	return v.JSONString()
}
