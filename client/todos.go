package client

import (
	"strconv"

	"github.com/launchdarkly/todo-contract-tests/codec"
	"github.com/launchdarkly/todo-contract-tests/gateway"
	"github.com/launchdarkly/todo-contract-tests/servicedef"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

type TodosClient struct {
	gateway *gateway.Gateway
}

func (c *TodosClient) GetTodos(opts ...RequestOptions) (gateway.Response, error) {
	return c.gateway.Send(optionsOf(opts).request("GET", servicedef.PathTodos))
}

func (c *TodosClient) GetTodoByID(id int, opts ...RequestOptions) (gateway.Response, error) {
	return c.gateway.Send(withID(optionsOf(opts).request("GET", servicedef.PathTodo), id))
}

// GetTodoInvalidEndpoint requests the singular /todo path, which the service does not have.
func (c *TodosClient) GetTodoInvalidEndpoint(opts ...RequestOptions) (gateway.Response, error) {
	return c.gateway.Send(optionsOf(opts).request("GET", "/todo"))
}

// CreateTodo sends a record encoded for the request Content-Type, which is JSON unless a header
// option says otherwise. The record is sent as given, including any extra or mistyped fields.
func (c *TodosClient) CreateTodo(record ldvalue.Value, opts ...RequestOptions) (gateway.Response, error) {
	req := optionsOf(opts).request("POST", servicedef.PathTodos)
	req.Body = gateway.ValueBody(record)
	return c.gateway.Send(req)
}

// CreateTodoRaw sends a body that has already been encoded.
func (c *TodosClient) CreateTodoRaw(data []byte, opts ...RequestOptions) (gateway.Response, error) {
	req := optionsOf(opts).request("POST", servicedef.PathTodos)
	req.Body = gateway.RawBody(data)
	return c.gateway.Send(req)
}

// HeadTodos returns the headers of GET /todos. The body is always absent.
func (c *TodosClient) HeadTodos(opts ...RequestOptions) (gateway.Response, error) {
	resp, err := c.gateway.Send(optionsOf(opts).request("HEAD", servicedef.PathTodos))
	if err != nil {
		return resp, err
	}
	resp.Body = codec.NoBody()
	return resp, nil
}

func (c *TodosClient) OptionsTodos(opts ...RequestOptions) (gateway.Response, error) {
	return c.gateway.Send(optionsOf(opts).request("OPTIONS", servicedef.PathTodos))
}

// PostUpdateTodo amends the fields of an existing todo that are present in the record.
func (c *TodosClient) PostUpdateTodo(id int, record ldvalue.Value, opts ...RequestOptions) (gateway.Response, error) {
	req := withID(optionsOf(opts).request("POST", servicedef.PathTodo), id)
	req.Body = gateway.ValueBody(record)
	return c.gateway.Send(req)
}

// PutTodo replaces an existing todo. Fields missing from the record are reset to their defaults.
func (c *TodosClient) PutTodo(id int, record ldvalue.Value, opts ...RequestOptions) (gateway.Response, error) {
	req := withID(optionsOf(opts).request("PUT", servicedef.PathTodo), id)
	req.Body = gateway.ValueBody(record)
	return c.gateway.Send(req)
}

func (c *TodosClient) DeleteTodo(id int, opts ...RequestOptions) (gateway.Response, error) {
	return c.gateway.Send(withID(optionsOf(opts).request("DELETE", servicedef.PathTodo), id))
}

func withID(req gateway.Request, id int) gateway.Request {
	req.PathParams = map[string]string{"id": strconv.Itoa(id)}
	return req
}
