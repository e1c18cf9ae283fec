package servicedef

import (
	"fmt"
	"strconv"

	"github.com/launchdarkly/todo-contract-tests/codec"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// Field names of a todo, as they appear in both the JSON and XML representations.
const (
	FieldID          = "id"
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldDoneStatus  = "doneStatus"
)

// Todo is a single todo item. ID is only defined for items that the service has already created.
type Todo struct {
	ID          ldvalue.OptionalInt
	Title       string
	Description string
	DoneStatus  bool
}

// AsValue converts the todo to the generic record form that the codec encodes. The id field is
// omitted if it is not defined.
func (t Todo) AsValue() ldvalue.Value {
	b := ldvalue.ObjectBuild()
	if t.ID.IsDefined() {
		b.Set(FieldID, ldvalue.Int(t.ID.IntValue()))
	}
	return b.
		Set(FieldTitle, ldvalue.String(t.Title)).
		Set(FieldDescription, ldvalue.String(t.Description)).
		Set(FieldDoneStatus, ldvalue.Bool(t.DoneStatus)).
		Build()
}

// With returns the record form of the todo with one field added or replaced. This is how tests
// build deliberately invalid records, such as a string doneStatus or an unknown field name.
func (t Todo) With(field string, value ldvalue.Value) ldvalue.Value {
	return WithField(t.AsValue(), field, value)
}

// WithField returns a copy of an object record with one field added or replaced.
func WithField(record ldvalue.Value, field string, value ldvalue.Value) ldvalue.Value {
	b := ldvalue.ObjectBuild()
	if m, ok := record.AsArbitraryValue().(map[string]interface{}); ok {
		for k, v := range m {
			b.Set(k, ldvalue.CopyArbitraryValue(v))
		}
	}
	return b.Set(field, value).Build()
}

// TodoFromValue converts a decoded body to a Todo.
//
// It accepts the JSON shape (a bare todo object with a numeric id and boolean doneStatus) as well
// as the XML shape, where the object is wrapped in a "todo" key and every field is a string.
func TodoFromValue(v ldvalue.Value) (Todo, error) {
	if inner := v.GetByKey("todo"); inner.Type() == ldvalue.ObjectType {
		v = inner
	}
	if v.Type() != ldvalue.ObjectType {
		return Todo{}, fmt.Errorf("expected a todo object but got %s", v.JSONString())
	}
	var t Todo
	switch id := v.GetByKey(FieldID); id.Type() {
	case ldvalue.NullType:
	case ldvalue.NumberType:
		if !id.IsInt() {
			return Todo{}, fmt.Errorf("todo id was not an integer: %s", id.JSONString())
		}
		t.ID = ldvalue.NewOptionalInt(id.IntValue())
	case ldvalue.StringType:
		n, err := strconv.Atoi(id.StringValue())
		if err != nil {
			return Todo{}, fmt.Errorf("todo id was not an integer: %q", id.StringValue())
		}
		t.ID = ldvalue.NewOptionalInt(n)
	default:
		return Todo{}, fmt.Errorf("unexpected type for todo id: %s", id.JSONString())
	}
	var err error
	if t.Title, err = stringField(v, FieldTitle); err != nil {
		return Todo{}, err
	}
	if t.Description, err = stringField(v, FieldDescription); err != nil {
		return Todo{}, err
	}
	switch done := v.GetByKey(FieldDoneStatus); done.Type() {
	case ldvalue.NullType:
	case ldvalue.BoolType:
		t.DoneStatus = done.BoolValue()
	case ldvalue.StringType:
		b, err := strconv.ParseBool(done.StringValue())
		if err != nil {
			return Todo{}, fmt.Errorf("todo doneStatus was not a boolean: %q", done.StringValue())
		}
		t.DoneStatus = b
	default:
		return Todo{}, fmt.Errorf("unexpected type for todo doneStatus: %s", done.JSONString())
	}
	return t, nil
}

// TodosFromValue converts a decoded collection body, {"todos": [...]} in JSON or
// <todos><todo>...</todo></todos> in XML, to a list of todos.
func TodosFromValue(v ldvalue.Value) ([]Todo, error) {
	list := v.GetByKey("todos")
	if list.Type() == ldvalue.ObjectType {
		list = list.GetByKey("todo")
	}
	var ret []Todo
	for _, item := range codec.Elements(list) {
		t, err := TodoFromValue(item)
		if err != nil {
			return nil, err
		}
		ret = append(ret, t)
	}
	return ret, nil
}

func stringField(v ldvalue.Value, name string) (string, error) {
	switch f := v.GetByKey(name); f.Type() {
	case ldvalue.NullType:
		return "", nil
	case ldvalue.StringType:
		return f.StringValue(), nil
	default:
		return "", fmt.Errorf("todo %s was not a string: %s", name, f.JSONString())
	}
}
