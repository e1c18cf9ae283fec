package todotests

import (
	"github.com/launchdarkly/todo-contract-tests/servicedef"

	"github.com/stretchr/testify/assert"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

func DoCreateTests(t *T) {
	t.Run("POST /todos (201) @post @positive", func(t *T) {
		todo := RandomTodo()
		resp, err := t.API().Todos.CreateTodo(todo.AsValue())
		RequireStatus(t, resp, err, 201)
		created := RequireTodo(t, resp)
		assert.True(t, created.ID.IsDefined(), "created todo has no id")
		AssertSameContent(t, todo, created)
	})

	t.Run("POST /todos (400) doneStatus @post @negative", func(t *T) {
		record := RandomTodo().With(servicedef.FieldDoneStatus, ldvalue.String("invalid"))
		resp, err := t.API().Todos.CreateTodo(record)
		RequireStatus(t, resp, err, 400)
		AssertErrorMessage(t, resp, servicedef.ErrDoneStatusType)
	})

	t.Run("POST /todos (400) title too long @post @negative", func(t *T) {
		record := RandomTodo().With(servicedef.FieldTitle, ldvalue.String(LongString(servicedef.MaxTitleLength+5)))
		resp, err := t.API().Todos.CreateTodo(record)
		RequireStatus(t, resp, err, 400)
		AssertErrorMessage(t, resp, servicedef.ErrTitleTooLong)
	})

	t.Run("POST /todos (400) description too long @post @negative", func(t *T) {
		record := RandomTodo().With(servicedef.FieldDescription,
			ldvalue.String(LongString(servicedef.MaxDescriptionLength+5)))
		resp, err := t.API().Todos.CreateTodo(record)
		RequireStatus(t, resp, err, 400)
		AssertErrorMessage(t, resp, servicedef.ErrDescriptionTooLong)
	})

	t.Run("POST /todos (201) max out content @post @positive", func(t *T) {
		todo := RandomTodo()
		todo.Title = LongString(servicedef.MaxTitleLength)
		todo.Description = LongString(servicedef.MaxDescriptionLength)
		resp, err := t.API().Todos.CreateTodo(todo.AsValue())
		RequireStatus(t, resp, err, 201)
		AssertSameContent(t, todo, RequireTodo(t, resp))
	})

	t.Run("POST /todos (413) content too long @post @negative", func(t *T) {
		record := RandomTodo().With(servicedef.FieldDescription, ldvalue.String(LongString(servicedef.MaxBodyBytes)))
		resp, err := t.API().Todos.CreateTodo(record)
		RequireStatus(t, resp, err, 413)
		AssertErrorMessage(t, resp, servicedef.ErrBodyTooLarge)
	})

	t.Run("POST /todos (400) extra field @post @negative", func(t *T) {
		record := RandomTodo().With("descriptionTest", ldvalue.String("a"))
		resp, err := t.API().Todos.CreateTodo(record)
		RequireStatus(t, resp, err, 400)
		AssertErrorMessage(t, resp, servicedef.CouldNotFindField("descriptionTest"))
	})
}
