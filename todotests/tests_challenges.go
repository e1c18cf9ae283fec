package todotests

import (
	"encoding/json"

	"github.com/launchdarkly/todo-contract-tests/servicedef"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func DoChallengeTests(t *T) {
	t.Run("GET /challenges (200) @get @positive", func(t *T) {
		resp, err := t.API().Challenger.GetChallenges()
		RequireStatus(t, resp, err, 200)

		var body struct {
			Challenges []servicedef.Challenge `json:"challenges"`
		}
		require.NoError(t, json.Unmarshal([]byte(resp.Body.Value.JSONString()), &body))
		assert.Len(t, body.Challenges, servicedef.ChallengeCount)
		for _, c := range body.Challenges {
			assert.NotEmpty(t, c.Name, "challenge %q has no name", c.ID)
		}
	})

	t.Run("challenger token is echoed @get @positive", func(t *T) {
		resp, err := t.API().Challenger.GetChallenges()
		RequireStatus(t, resp, err, 200)
		assert.Equal(t, t.Token(), resp.Header(servicedef.HeaderChallenger))
	})
}
