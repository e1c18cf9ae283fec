// Package client has one client per resource of the Todo Manager API. Each operation builds a
// request, sends it through the gateway, and returns the normalized response; an unexpected
// status code is not an error.
package client

import (
	"github.com/launchdarkly/todo-contract-tests/config"
	"github.com/launchdarkly/todo-contract-tests/framework"
	"github.com/launchdarkly/todo-contract-tests/gateway"
	"github.com/launchdarkly/todo-contract-tests/session"
)

// RequestOptions are optional settings for a single operation.
type RequestOptions struct {
	// Headers override the default and computed headers. An empty value removes the header, so
	// for instance {"X-Challenger": ""} makes an unauthenticated call.
	Headers map[string]string
	// Query parameters are added to the URL.
	Query map[string]string
}

func (o RequestOptions) request(method, path string) gateway.Request {
	return gateway.Request{
		Method:  method,
		Path:    path,
		Query:   o.Query,
		Headers: o.Headers,
	}
}

func optionsOf(opts []RequestOptions) RequestOptions {
	var ret RequestOptions
	for _, o := range opts {
		if o.Headers != nil {
			if ret.Headers == nil {
				ret.Headers = make(map[string]string)
			}
			for k, v := range o.Headers {
				ret.Headers[k] = v
			}
		}
		if o.Query != nil {
			if ret.Query == nil {
				ret.Query = make(map[string]string)
			}
			for k, v := range o.Query {
				ret.Query[k] = v
			}
		}
	}
	return ret
}

// API is the set of resource clients for one scenario run. They share one gateway and one
// session store.
type API struct {
	Challenger *ChallengerClient
	Todos      *TodosClient
	Heartbeat  *HeartbeatClient

	gateway *gateway.Gateway
}

// New creates the clients for a new scenario run, with an empty session.
func New(cfg config.Config, logger framework.Logger) *API {
	return newAPI(gateway.New(cfg, session.NewStore(), logger))
}

func newAPI(g *gateway.Gateway) *API {
	return &API{
		Challenger: &ChallengerClient{gateway: g},
		Todos:      &TodosClient{gateway: g},
		Heartbeat:  &HeartbeatClient{gateway: g},
		gateway:    g,
	}
}

// WithLogger returns clients that log to a different destination but keep the same session.
func (a *API) WithLogger(logger framework.Logger) *API {
	return newAPI(a.gateway.WithLogger(logger))
}

func (a *API) Session() *session.Store {
	return a.gateway.Session()
}
