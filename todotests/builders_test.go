package todotests

import (
	"testing"
	"unicode/utf8"

	"github.com/launchdarkly/todo-contract-tests/servicedef"

	"github.com/stretchr/testify/assert"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

func TestRandomTodoIsValid(t *testing.T) {
	for i := 0; i < 100; i++ {
		todo := RandomTodo()
		assert.False(t, todo.ID.IsDefined())
		assert.NotEmpty(t, todo.Title)
		assert.LessOrEqual(t, utf8.RuneCountInString(todo.Title), servicedef.MaxTitleLength)
		assert.LessOrEqual(t, utf8.RuneCountInString(todo.Description), servicedef.MaxDescriptionLength)
	}
}

func TestLongString(t *testing.T) {
	assert.Len(t, LongString(0), 0)
	assert.Len(t, LongString(205), 205)
}

func TestRandomNumberID(t *testing.T) {
	for i := 0; i < 1000; i++ {
		id := RandomNumberID()
		assert.GreaterOrEqual(t, id, 1000)
		assert.LessOrEqual(t, id, 9999)
	}
}

func TestRandomUUID(t *testing.T) {
	a, b := RandomUUID(), RandomUUID()
	assert.Len(t, a, 36)
	assert.NotEqual(t, a, b)
}

func TestPartialTodoUpdateAndTodoWithoutTitle(t *testing.T) {
	partial := PartialTodoUpdate()
	assert.Equal(t, 1, partial.Count())
	assert.Equal(t, ldvalue.StringType, partial.GetByKey(servicedef.FieldTitle).Type())

	noTitle := TodoWithoutTitle()
	assert.Equal(t, ldvalue.NullType, noTitle.GetByKey(servicedef.FieldTitle).Type())
	assert.Equal(t, ldvalue.BoolType, noTitle.GetByKey(servicedef.FieldDoneStatus).Type())
}
