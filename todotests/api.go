package todotests

import (
	"github.com/launchdarkly/todo-contract-tests/client"
	"github.com/launchdarkly/todo-contract-tests/codec"
	"github.com/launchdarkly/todo-contract-tests/framework"
	"github.com/launchdarkly/todo-contract-tests/gateway"
	"github.com/launchdarkly/todo-contract-tests/servicedef"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type environment struct {
	harness *framework.TestHarness
	api     *client.API
}

// T represents a test or subtest in our todo test suite.
//
// It implements the same basic functionality as Go's testing.T, but in an environment that is outside
// of the Go test runner, and with some extra features such as debug logging that are convenient for
// our use case. Those features are provided by our lower-level framework package.
//
// Every T has access to the resource clients of the current run through API(). All tests in a
// run share one challenger session, so a test can rely on what earlier tests did to the todo list.
//
// To make test assertions, you can use the assert and require packages, passing the *T as if it were
// a *testing.T.
type T struct {
	context *framework.Context
	env     *environment
	api     *client.API
}

// Errorf is called by assertions to log a test failure. It does not cause an immediate exit.
func (t *T) Errorf(format string, args ...interface{}) {
	t.context.Errorf(format, args...)
}

// FailNow is called by assertions when a test should fail and immediately exit. The methods in
// the require package call FailNow.
func (t *T) FailNow() {
	t.context.FailNow()
}

// Run runs a subtest. This is equivalent to the Run method of testing.T.
func (t *T) Run(name string, action func(*T)) {
	t.context.Run(name, func(c *framework.Context) {
		action(&T{context: c, env: t.env})
	})
}

// Group runs a subtest that contains other subtests. Filters apply to the tests inside it, not
// to the group.
func (t *T) Group(name string, action func(*T)) {
	t.context.Group(name, func(c *framework.Context) {
		action(&T{context: c, env: t.env})
	})
}

// Debug logs some debug output for the test. The output will be passed to the test logger at
// the end of the test.
func (t *T) Debug(format string, args ...interface{}) {
	t.context.Debug(format, args...)
}

func (t *T) DebugLogger() framework.Logger {
	return t.context.DebugLogger()
}

// Defer schedules a function to run when the test ends.
func (t *T) Defer(f func()) {
	t.context.Defer(f)
}

func (t *T) Skip(reason string) {
	t.context.SkipWithReason(reason)
}

// RequireStatusResource skips this test if the service did not have a heartbeat resource when
// the harness started.
func (t *T) RequireStatusResource() {
	if !t.env.harness.HasStatusResource() {
		t.Skip("service has no " + framework.StatusPath + " resource")
	}
}

// API returns the resource clients, logging to this test's debug output.
func (t *T) API() *client.API {
	if t.api == nil {
		t.api = t.env.api.WithLogger(t.context.DebugLogger())
	}
	return t.api
}

// Token returns the challenger token of the current run.
func (t *T) Token() string {
	token, _ := t.env.api.Session().Get()
	return token
}

// RequireStatus fails the test immediately if the request could not be made, or if the service
// answered with a different status.
func RequireStatus(t *T, resp gateway.Response, err error, status int) gateway.Response {
	require.NoError(t, err)
	require.Equal(t, status, resp.Status, "unexpected status code; response body was: %s", resp.Body)
	return resp
}

// RequireTodo decodes a response body that is a single todo.
func RequireTodo(t *T, resp gateway.Response) servicedef.Todo {
	require.Equal(t, codec.BodyValue, resp.Body.Kind, "expected a JSON or XML body but got: %s", resp.Body)
	todo, err := servicedef.TodoFromValue(resp.Body.Value)
	require.NoError(t, err)
	return todo
}

// RequireTodos decodes a response body that is a list of todos.
func RequireTodos(t *T, resp gateway.Response) []servicedef.Todo {
	require.Equal(t, codec.BodyValue, resp.Body.Kind, "expected a JSON or XML body but got: %s", resp.Body)
	todos, err := servicedef.TodosFromValue(resp.Body.Value)
	require.NoError(t, err)
	return todos
}

// AssertErrorMessage checks that an error response lists the expected message.
func AssertErrorMessage(t *T, resp gateway.Response, message string) {
	assert.Contains(t, servicedef.ErrorMessagesFromValue(resp.Body.Value), message,
		"expected error message was missing; response body was: %s", resp.Body)
}

// AssertSameContent checks that two todos are equal apart from their ids.
func AssertSameContent(t *T, expected, actual servicedef.Todo) {
	assert.Equal(t, expected.Title, actual.Title, "title")
	assert.Equal(t, expected.Description, actual.Description, "description")
	assert.Equal(t, expected.DoneStatus, actual.DoneStatus, "doneStatus")
}

func contentTypeOf(resp gateway.Response) codec.MediaType {
	return codec.ResolveMediaType(resp.Header(servicedef.HeaderContentType))
}
