package fakeapi

import (
	"sort"

	"github.com/launchdarkly/todo-contract-tests/servicedef"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

var seedTitles = []string{
	"scan paperwork",
	"file paperwork",
	"process payments",
	"escalate late payments",
	"pay invoices",
	"process payroll",
	"train staff",
	"schedule meeting",
	"tidy meeting room",
	"install webcam",
}

// todoStore is the todo list of one challenger.
type todoStore struct {
	todos  map[int]servicedef.Todo
	nextID int
}

func newTodoStore() *todoStore {
	st := &todoStore{todos: make(map[int]servicedef.Todo), nextID: 1}
	for _, title := range seedTitles {
		st.add(servicedef.Todo{Title: title})
	}
	return st
}

func (st *todoStore) add(t servicedef.Todo) servicedef.Todo {
	t.ID = ldvalue.NewOptionalInt(st.nextID)
	st.nextID++
	st.todos[t.ID.IntValue()] = t
	return t
}

func (st *todoStore) get(id int) (servicedef.Todo, bool) {
	t, ok := st.todos[id]
	return t, ok
}

func (st *todoStore) put(t servicedef.Todo) {
	st.todos[t.ID.IntValue()] = t
}

func (st *todoStore) remove(id int) bool {
	if _, ok := st.todos[id]; !ok {
		return false
	}
	delete(st.todos, id)
	return true
}

func (st *todoStore) list() []servicedef.Todo {
	ret := make([]servicedef.Todo, 0, len(st.todos))
	for _, t := range st.todos {
		ret = append(ret, t)
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i].ID.IntValue() < ret[j].ID.IntValue() })
	return ret
}
