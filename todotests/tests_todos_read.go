package todotests

import (
	"strconv"

	"github.com/launchdarkly/todo-contract-tests/client"
	"github.com/launchdarkly/todo-contract-tests/servicedef"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

func DoReadTests(t *T) {
	t.Run("GET /todos (200) @get @positive", func(t *T) {
		resp, err := t.API().Todos.GetTodos()
		RequireStatus(t, resp, err, 200)
		todos := RequireTodos(t, resp)
		assert.NotEmpty(t, todos)
		for _, todo := range todos {
			assert.True(t, todo.ID.IsDefined(), "todo %q has no id", todo.Title)
		}
	})

	t.Run("GET /todo (404) @get @negative", func(t *T) {
		resp, err := t.API().Todos.GetTodoInvalidEndpoint()
		RequireStatus(t, resp, err, 404)
	})

	t.Run("GET /todos/{id} (200) @get @positive", func(t *T) {
		resp, err := t.API().Todos.GetTodoByID(existentID)
		RequireStatus(t, resp, err, 200)
		todos := RequireTodos(t, resp)
		require.Len(t, todos, 1)
		assert.Equal(t, existentID, todos[0].ID.IntValue())
		assert.NotEmpty(t, todos[0].Title)

		record := resp.Body.Value.GetByKey("todos").GetByIndex(0)
		for _, field := range []string{servicedef.FieldID, servicedef.FieldTitle, servicedef.FieldDescription,
			servicedef.FieldDoneStatus} {
			assert.NotEqual(t, ldvalue.NullType, record.GetByKey(field).Type(), "field %q is missing", field)
		}
	})

	t.Run("GET /todos/{id} (404) @get @negative", func(t *T) {
		id := RandomNumberID()
		resp, err := t.API().Todos.GetTodoByID(id)
		RequireStatus(t, resp, err, 404)
		AssertErrorMessage(t, resp, servicedef.NotFoundInstance(strconv.Itoa(id)))
	})

	t.Run("GET /todos?doneStatus=true (200) @get @positive @filter", func(t *T) {
		done := RandomTodo()
		done.DoneStatus = true
		resp, err := t.API().Todos.CreateTodo(done.AsValue())
		created := RequireTodo(t, RequireStatus(t, resp, err, 201))

		resp, err = t.API().Todos.GetTodos(client.RequestOptions{Query: map[string]string{"doneStatus": "true"}})
		RequireStatus(t, resp, err, 200)
		todos := RequireTodos(t, resp)
		var ids []int
		for _, todo := range todos {
			assert.True(t, todo.DoneStatus, "todo %d is not done", todo.ID.IntValue())
			ids = append(ids, todo.ID.IntValue())
		}
		assert.Contains(t, ids, created.ID.IntValue())
	})

	t.Run("HEAD /todos (200) @head @positive", func(t *T) {
		resp, err := t.API().Todos.HeadTodos()
		RequireStatus(t, resp, err, 200)
		assert.True(t, resp.Body.IsNone())
		assert.NotEmpty(t, resp.Header("content-type"))
		assert.Equal(t, t.Token(), resp.Header("x-challenger"))
	})

	t.Run("OPTIONS /todos (200) @options @positive", func(t *T) {
		resp, err := t.API().Todos.OptionsTodos()
		RequireStatus(t, resp, err, 200)
		assert.Contains(t, resp.Header(servicedef.HeaderAllow), "OPTIONS")
	})
}
