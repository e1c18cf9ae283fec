package todotests

import (
	"strconv"

	"github.com/launchdarkly/todo-contract-tests/servicedef"

	"github.com/stretchr/testify/assert"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

func DoUpdateTests(t *T) {
	t.Run("PUT /todos/{id} (400) non-existent @put @negative", func(t *T) {
		resp, err := t.API().Todos.PutTodo(RandomNumberID(), RandomTodo().AsValue())
		RequireStatus(t, resp, err, 400)
		AssertErrorMessage(t, resp, servicedef.ErrCreateWithPut)
	})

	t.Run("POST /todos/{id} (200) @post @positive", func(t *T) {
		title := RandomTodo().Title
		record := ldvalue.ObjectBuild().Set(servicedef.FieldTitle, ldvalue.String(title)).Build()
		resp, err := t.API().Todos.PostUpdateTodo(existentID, record)
		RequireStatus(t, resp, err, 200)
		updated := RequireTodo(t, resp)
		assert.Equal(t, existentID, updated.ID.IntValue())
		assert.Equal(t, title, updated.Title)
	})

	t.Run("POST /todos/{id} (404) @post @negative", func(t *T) {
		id := RandomNumberID()
		resp, err := t.API().Todos.PostUpdateTodo(id, RandomTodo().AsValue())
		RequireStatus(t, resp, err, 404)
		AssertErrorMessage(t, resp, servicedef.NoSuchEntity(strconv.Itoa(id)))
	})

	t.Run("PUT /todos/{id} full (200) @put @positive", func(t *T) {
		todo := RandomTodo()
		resp, err := t.API().Todos.PutTodo(existentID, todo.AsValue())
		RequireStatus(t, resp, err, 200)
		updated := RequireTodo(t, resp)
		assert.Equal(t, existentID, updated.ID.IntValue())
		AssertSameContent(t, todo, updated)
	})

	t.Run("PUT /todos/{id} partial (200) @put @positive", func(t *T) {
		record := PartialTodoUpdate()
		resp, err := t.API().Todos.PutTodo(existentID, record)
		RequireStatus(t, resp, err, 200)
		updated := RequireTodo(t, resp)
		assert.Equal(t, record.GetByKey(servicedef.FieldTitle).StringValue(), updated.Title)
		assert.Equal(t, defaultDescription, updated.Description, "PUT should reset description")
		assert.Equal(t, defaultDoneStatus, updated.DoneStatus, "PUT should reset doneStatus")
	})

	t.Run("PUT /todos/{id} no title (400) @put @negative", func(t *T) {
		resp, err := t.API().Todos.PutTodo(existentID, TodoWithoutTitle())
		RequireStatus(t, resp, err, 400)
		AssertErrorMessage(t, resp, servicedef.ErrTitleMandatory)
	})
}
