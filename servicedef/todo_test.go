package servicedef

import (
	"testing"

	"github.com/launchdarkly/todo-contract-tests/codec"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

func sampleTodos() []Todo {
	return []Todo{
		{Title: "Buy milk", Description: "2%", DoneStatus: true},
		{Title: `Tom & Jerry's <"great"> escape`, Description: "&amp; is not decoded twice"},
		{ID: ldvalue.NewOptionalInt(42), Title: "with id", Description: ""},
		{Title: "", Description: "line 1\nline 2"},
	}
}

func TestTodoRoundTripThroughCodec(t *testing.T) {
	for _, contentType := range []string{codec.ContentTypeJSON, codec.ContentTypeXML} {
		for _, todo := range sampleTodos() {
			data, err := codec.Encode(todo.AsValue(), contentType)
			require.NoError(t, err)
			body, err := codec.Decode(data, contentType)
			require.NoError(t, err)
			decoded, err := TodoFromValue(body.Value)
			require.NoError(t, err)
			assert.Equal(t, todo, decoded, "content type %s, wire form %s", contentType, string(data))
		}
	}
}

func TestTodoAsValueOmitsUndefinedID(t *testing.T) {
	v := Todo{Title: "a"}.AsValue()
	assert.True(t, v.GetByKey(FieldID).IsNull())
	assert.Equal(t, 3, v.Count())

	v = Todo{ID: ldvalue.NewOptionalInt(9), Title: "a"}.AsValue()
	assert.Equal(t, 9, v.GetByKey(FieldID).IntValue())
}

func TestTodoWithAddsOrReplacesField(t *testing.T) {
	todo := Todo{Title: "a", DoneStatus: true}
	v := todo.With(FieldDoneStatus, ldvalue.String("invalid"))
	assert.Equal(t, "invalid", v.GetByKey(FieldDoneStatus).StringValue())
	assert.Equal(t, "a", v.GetByKey(FieldTitle).StringValue())

	v = todo.With("descriptionTest", ldvalue.String("x"))
	assert.Equal(t, 4, v.Count())
	assert.Equal(t, "x", v.GetByKey("descriptionTest").StringValue())
}

func TestTodoFromValueRejectsWrongTypes(t *testing.T) {
	for _, raw := range []string{
		`"not an object"`,
		`{"id":"abc"}`,
		`{"id":1.5}`,
		`{"title":3}`,
		`{"doneStatus":"maybe"}`,
		`{"doneStatus":[]}`,
	} {
		body, err := codec.Decode([]byte(raw), codec.ContentTypeJSON)
		require.NoError(t, err)
		_, err = TodoFromValue(body.Value)
		assert.Error(t, err, raw)
	}
}

func TestTodosFromValue(t *testing.T) {
	jsonBody, err := codec.Decode([]byte(`{"todos":[{"id":1,"title":"a","doneStatus":true},{"id":2,"title":"b"}]}`),
		codec.ContentTypeJSON)
	require.NoError(t, err)
	todos, err := TodosFromValue(jsonBody.Value)
	require.NoError(t, err)
	assert.Equal(t, []Todo{
		{ID: ldvalue.NewOptionalInt(1), Title: "a", DoneStatus: true},
		{ID: ldvalue.NewOptionalInt(2), Title: "b"},
	}, todos)

	xmlBody, err := codec.Decode([]byte(`<todos><todo><id>3</id><title>c</title><doneStatus>false</doneStatus></todo></todos>`),
		codec.ContentTypeXML)
	require.NoError(t, err)
	todos, err = TodosFromValue(xmlBody.Value)
	require.NoError(t, err)
	assert.Equal(t, []Todo{{ID: ldvalue.NewOptionalInt(3), Title: "c"}}, todos)

	emptyBody, err := codec.Decode([]byte(`{"todos":[]}`), codec.ContentTypeJSON)
	require.NoError(t, err)
	todos, err = TodosFromValue(emptyBody.Value)
	require.NoError(t, err)
	assert.Len(t, todos, 0)
}

func TestErrorMessagesFromValue(t *testing.T) {
	v := ErrorMessagesAsValue(ErrTitleMandatory, NotFoundInstance("7"))
	assert.Equal(t, []string{"title : field is mandatory", "Could not find an instance with todos/7"},
		ErrorMessagesFromValue(v))

	data, err := codec.MarshalXMLElement("errorMessages",
		ldvalue.ObjectBuild().Set("errorMessage", ldvalue.ArrayOf(ldvalue.String(ErrTitleTooLong))).Build())
	require.NoError(t, err)
	body, err := codec.Decode(data, codec.ContentTypeXML)
	require.NoError(t, err)
	assert.Equal(t, []string{ErrTitleTooLong}, ErrorMessagesFromValue(body.Value))

	assert.Nil(t, ErrorMessagesFromValue(ldvalue.Null()))
}
