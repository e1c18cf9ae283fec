// Package servicedef describes the resources of the Todo Manager API: the todo record, the
// challenge list, header and path names, limits and the error messages the service returns.
package servicedef

const (
	// HeaderChallenger carries the challenger token. The service returns it when a challenger is
	// created, and every later request echoes it.
	HeaderChallenger = "X-Challenger"

	HeaderAccept      = "Accept"
	HeaderContentType = "Content-Type"
	HeaderAllow       = "Allow"
)

const (
	PathChallenger = "/challenger"
	PathChallenges = "/challenges"
	PathTodos      = "/todos"
	PathTodo       = "/todos/{id}"
	PathHeartbeat  = "/heartbeat"
)

// ChallengeCount is the number of challenges the service lists for a challenger.
const ChallengeCount = 59

// Challenge is one entry of the GET /challenges response.
type Challenge struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      bool   `json:"status"`
}
