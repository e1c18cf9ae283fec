package todotests

import (
	"github.com/launchdarkly/todo-contract-tests/client"
	"github.com/launchdarkly/todo-contract-tests/codec"
	"github.com/launchdarkly/todo-contract-tests/servicedef"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withHeaders(headers map[string]string) client.RequestOptions {
	return client.RequestOptions{Headers: headers}
}

func DoContentNegotiationTests(t *T) {
	for _, c := range []struct {
		name     string
		accept   string
		expected codec.MediaType
	}{
		{"XML", codec.ContentTypeXML, codec.XML},
		{"JSON", codec.ContentTypeJSON, codec.JSON},
		{"ANY", "*/*", codec.JSON},
		{"XML pref", "application/xml, application/json", codec.XML},
		{"no accept", "", codec.JSON},
	} {
		t.Run("GET /todos (200) "+c.name+" @get @positive @accept", func(t *T) {
			resp, err := t.API().Todos.GetTodos(withHeaders(map[string]string{servicedef.HeaderAccept: c.accept}))
			RequireStatus(t, resp, err, 200)
			assert.Equal(t, c.expected, contentTypeOf(resp), "response Content-Type was %q",
				resp.Header(servicedef.HeaderContentType))
			assert.NotEmpty(t, RequireTodos(t, resp))
		})
	}

	t.Run("GET /todos (406) @get @negative @accept", func(t *T) {
		resp, err := t.API().Todos.GetTodos(withHeaders(map[string]string{servicedef.HeaderAccept: "application/gzip"}))
		RequireStatus(t, resp, err, 406)
		AssertErrorMessage(t, resp, servicedef.ErrUnrecognisedAccept)
	})

	for _, c := range []struct {
		name        string
		contentType string
		accept      string
		expected    codec.MediaType
	}{
		{"XML", codec.ContentTypeXML, codec.ContentTypeXML, codec.XML},
		{"JSON", codec.ContentTypeJSON, codec.ContentTypeJSON, codec.JSON},
		{"XML to JSON", codec.ContentTypeXML, codec.ContentTypeJSON, codec.JSON},
		{"JSON to XML", codec.ContentTypeJSON, codec.ContentTypeXML, codec.XML},
	} {
		t.Run("POST /todos "+c.name+" @post @positive @content-type", func(t *T) {
			todo := RandomTodo()
			resp, err := t.API().Todos.CreateTodo(todo.AsValue(), withHeaders(map[string]string{
				servicedef.HeaderContentType: c.contentType,
				servicedef.HeaderAccept:      c.accept,
			}))
			RequireStatus(t, resp, err, 201)
			assert.Equal(t, c.expected, contentTypeOf(resp))
			AssertSameContent(t, todo, RequireTodo(t, resp))
		})
	}

	t.Run("POST /todos (415) @post @negative @content-type", func(t *T) {
		data, err := codec.Encode(RandomTodo().AsValue(), codec.ContentTypeJSON)
		require.NoError(t, err)
		resp, err := t.API().Todos.CreateTodoRaw(data, withHeaders(map[string]string{servicedef.HeaderContentType: "bob"}))
		RequireStatus(t, resp, err, 415)
		AssertErrorMessage(t, resp, servicedef.UnsupportedContentType("bob"))
	})

	t.Run("POST /todos XML escaping @post @positive @content-type", func(t *T) {
		todo := servicedef.Todo{Title: `Tom & Jerry's <"pets">`, Description: `a < b > c & 'd' "e"`}
		resp, err := t.API().Todos.CreateTodo(todo.AsValue(), withHeaders(map[string]string{
			servicedef.HeaderContentType: codec.ContentTypeXML,
			servicedef.HeaderAccept:      codec.ContentTypeXML,
		}))
		RequireStatus(t, resp, err, 201)
		created := RequireTodo(t, resp)
		AssertSameContent(t, todo, created)

		resp, err = t.API().Todos.GetTodoByID(created.ID.IntValue(),
			withHeaders(map[string]string{servicedef.HeaderAccept: codec.ContentTypeXML}))
		RequireStatus(t, resp, err, 200)
		todos := RequireTodos(t, resp)
		require.Len(t, todos, 1)
		AssertSameContent(t, todo, todos[0])
	})
}
