package todotests

import (
	"github.com/stretchr/testify/assert"
)

func DoHeartbeatTests(t *T) {
	t.RequireStatusResource()

	t.Run("GET /heartbeat (204) @get @positive", func(t *T) {
		resp, err := t.API().Heartbeat.GetHeartbeat()
		RequireStatus(t, resp, err, 204)
		assert.True(t, resp.Body.IsNone())
	})

	t.Run("DELETE /heartbeat (405) @delete @negative", func(t *T) {
		resp, err := t.API().Heartbeat.DeleteHeartbeat()
		RequireStatus(t, resp, err, 405)
	})

	t.Run("PATCH /heartbeat (500) @patch @negative", func(t *T) {
		resp, err := t.API().Heartbeat.PatchHeartbeat()
		RequireStatus(t, resp, err, 500)
	})
}
