package todotests

import (
	"strconv"

	"github.com/launchdarkly/todo-contract-tests/servicedef"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func DoDeleteTests(t *T) {
	t.Run("DELETE /todos/{id} (200) @delete @positive", func(t *T) {
		resp, err := t.API().Todos.DeleteTodo(existentID)
		RequireStatus(t, resp, err, 200)
		assert.True(t, resp.Body.IsNone(), "expected no body but got: %s", resp.Body)

		resp, err = t.API().Todos.GetTodoByID(existentID)
		RequireStatus(t, resp, err, 404)
	})

	t.Run("DELETE /todos/{id} (404) @delete @negative", func(t *T) {
		id := RandomNumberID()
		resp, err := t.API().Todos.DeleteTodo(id)
		RequireStatus(t, resp, err, 404)
		AssertErrorMessage(t, resp, servicedef.NotFoundAnyInstances(strconv.Itoa(id)))
	})

	t.Run("create then delete Buy milk @post @delete @positive", func(t *T) {
		todo := servicedef.Todo{Title: "Buy milk", Description: "2%", DoneStatus: true}
		resp, err := t.API().Todos.CreateTodo(todo.AsValue())
		RequireStatus(t, resp, err, 201)
		created := RequireTodo(t, resp)
		AssertSameContent(t, todo, created)
		require.True(t, created.ID.IsDefined())

		resp, err = t.API().Todos.DeleteTodo(created.ID.IntValue())
		RequireStatus(t, resp, err, 200)

		resp, err = t.API().Todos.GetTodoByID(created.ID.IntValue())
		RequireStatus(t, resp, err, 404)
	})
}

// DoDeleteAllTests empties the todo list. It runs last, because it destroys the state that the
// other tests rely on.
func DoDeleteAllTests(t *T) {
	t.Run("DELETE /todos/{id} (200) all @delete @positive", func(t *T) {
		resp, err := t.API().Todos.GetTodos()
		RequireStatus(t, resp, err, 200)
		for _, todo := range RequireTodos(t, resp) {
			resp, err := t.API().Todos.DeleteTodo(todo.ID.IntValue())
			RequireStatus(t, resp, err, 200)
		}

		resp, err = t.API().Todos.GetTodos()
		RequireStatus(t, resp, err, 200)
		assert.Empty(t, RequireTodos(t, resp))
	})
}
