package client

import (
	"github.com/launchdarkly/todo-contract-tests/gateway"
	"github.com/launchdarkly/todo-contract-tests/servicedef"
)

type HeartbeatClient struct {
	gateway *gateway.Gateway
}

func (c *HeartbeatClient) GetHeartbeat(opts ...RequestOptions) (gateway.Response, error) {
	return c.gateway.Send(optionsOf(opts).request("GET", servicedef.PathHeartbeat))
}

func (c *HeartbeatClient) DeleteHeartbeat(opts ...RequestOptions) (gateway.Response, error) {
	return c.gateway.Send(optionsOf(opts).request("DELETE", servicedef.PathHeartbeat))
}

func (c *HeartbeatClient) PatchHeartbeat(opts ...RequestOptions) (gateway.Response, error) {
	return c.gateway.Send(optionsOf(opts).request("PATCH", servicedef.PathHeartbeat))
}
