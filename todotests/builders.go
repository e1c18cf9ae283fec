package todotests

import (
	"math/rand"
	"strings"

	"github.com/launchdarkly/todo-contract-tests/servicedef"

	"github.com/google/uuid"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// existentID is the id of a todo that the service creates for every challenger.
const existentID = 2

const (
	defaultDescription = ""
	defaultDoneStatus  = false
)

var (
	verbs = []string{"file", "scan", "review", "email", "archive", "print", "sign", "book", "order", "fix"}
	nouns = []string{"invoices", "paperwork", "reports", "tickets", "contracts", "receipts", "slides", "notes"}
	words = []string{"before", "the", "meeting", "on", "friday", "with", "care", "for", "team", "review"}
)

const letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

func pick(list []string) string {
	return list[rand.Intn(len(list))]
}

// RandomTodo returns a valid todo with random content and no id.
func RandomTodo() servicedef.Todo {
	return servicedef.Todo{
		Title:       pick(verbs) + " " + pick(nouns),
		Description: strings.Join([]string{pick(words), pick(words), pick(words), pick(words)}, " "),
		DoneStatus:  rand.Intn(2) == 1,
	}
}

// LongString returns a random string of exactly n characters.
func LongString(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}

// RandomNumberID returns an id between 1000 and 9999, which no todo is expected to have.
func RandomNumberID() int {
	return 1000 + rand.Intn(9000)
}

func RandomUUID() string {
	return uuid.New().String()
}

// PartialTodoUpdate returns a record with only a title, for replacing a todo with PUT.
func PartialTodoUpdate() ldvalue.Value {
	return ldvalue.ObjectBuild().Set(servicedef.FieldTitle, ldvalue.String(RandomTodo().Title)).Build()
}

// TodoWithoutTitle returns a record that has every field except the mandatory title.
func TodoWithoutTitle() ldvalue.Value {
	t := RandomTodo()
	return ldvalue.ObjectBuild().
		Set(servicedef.FieldDescription, ldvalue.String(t.Description)).
		Set(servicedef.FieldDoneStatus, ldvalue.Bool(t.DoneStatus)).
		Build()
}
