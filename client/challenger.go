package client

import (
	"github.com/launchdarkly/todo-contract-tests/gateway"
	"github.com/launchdarkly/todo-contract-tests/servicedef"
)

type ChallengerClient struct {
	gateway *gateway.Gateway
}

// CreateChallenger starts a new challenger session. If the service returns a token, it is stored
// and sent with every later request.
func (c *ChallengerClient) CreateChallenger(opts ...RequestOptions) (gateway.Response, error) {
	resp, err := c.gateway.Send(optionsOf(opts).request("POST", servicedef.PathChallenger))
	if err != nil {
		return resp, err
	}
	if token := resp.Header(servicedef.HeaderChallenger); token != "" {
		c.gateway.Session().Set(token)
	}
	return resp, nil
}

func (c *ChallengerClient) GetChallenges(opts ...RequestOptions) (gateway.Response, error) {
	return c.gateway.Send(optionsOf(opts).request("GET", servicedef.PathChallenges))
}
