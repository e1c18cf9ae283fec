package todotests

import (
	"github.com/launchdarkly/todo-contract-tests/client"
	"github.com/launchdarkly/todo-contract-tests/config"
	"github.com/launchdarkly/todo-contract-tests/framework"
	"github.com/launchdarkly/todo-contract-tests/servicedef"

	"github.com/stretchr/testify/require"
)

// RunTestSuite runs every scenario against the service that the harness points to. It creates a
// challenger first, so that all of the scenarios share one fresh todo list.
func RunTestSuite(
	harness *framework.TestHarness,
	cfg config.Config,
	filter framework.Filter,
	testLogger framework.TestLogger,
) framework.Results {
	cfg.BaseURL = harness.ServiceBaseURL()
	return framework.Run(filter, testLogger, func(c *framework.Context) {
		api := client.New(cfg, harness.Logger())
		resp, err := api.Challenger.CreateChallenger()
		require.NoError(c, err)
		require.Equal(c, 201, resp.Status, "could not create a challenger")
		require.NotEmpty(c, resp.Header(servicedef.HeaderChallenger), "service did not return a challenger token")

		t := &T{context: c, env: &environment{harness: harness, api: api}}

		t.Group("challenges", DoChallengeTests)
		t.Group("todos read", DoReadTests)
		t.Group("todos create", DoCreateTests)
		t.Group("todos update", DoUpdateTests)
		t.Group("todos delete", DoDeleteTests)
		t.Group("content negotiation", DoContentNegotiationTests)
		t.Group("heartbeat", DoHeartbeatTests)
		t.Group("delete all", DoDeleteAllTests)
	})
}
