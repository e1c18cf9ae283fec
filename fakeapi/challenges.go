package fakeapi

import (
	"fmt"

	"github.com/launchdarkly/todo-contract-tests/servicedef"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

var challengeNames = []string{
	"POST /challenger (201)",
	"GET /challenges (200)",
	"GET /todos (200)",
	"GET /todo (404) not plural",
	"GET /todos/{id} (200)",
	"GET /todos/{id} (404)",
	"GET /todos (200) ?filter",
	"HEAD /todos (200)",
	"POST /todos (201)",
	"POST /todos (400) doneStatus",
	"POST /todos (400) title too long",
	"POST /todos (400) description too long",
	"POST /todos (201) max out content",
	"POST /todos (413) content too long",
	"POST /todos (400) extra",
	"PUT /todos/{id} (400)",
	"POST /todos/{id} (200)",
	"POST /todos/{id} (404)",
	"PUT /todos/{id} full (200)",
	"PUT /todos/{id} partial (200)",
	"PUT /todos/{id} no title (400)",
	"PUT /todos/{id} no amend id (400)",
	"DELETE /todos/{id} (200)",
	"OPTIONS /todos (200)",
	"GET /todos (200) XML",
	"GET /todos (200) JSON",
	"GET /todos (200) ANY",
	"GET /todos (200) XML pref",
	"GET /todos (200) no accept",
	"GET /todos (406)",
	"POST /todos XML",
	"POST /todos JSON",
	"POST /todos (415)",
	"GET /challenger/guid (existing X-CHALLENGER)",
	"PUT /challenger/guid RESTORE",
	"PUT /challenger/guid CREATE",
	"GET /challenger/database/guid (200)",
	"PUT /challenger/database/guid (Update)",
	"POST /todos XML to JSON",
	"POST /todos JSON to XML",
	"DELETE /heartbeat (405)",
	"PATCH /heartbeat (500)",
	"TRACE /heartbeat (501)",
	"GET /heartbeat (204)",
	"POST /heartbeat as DELETE (405)",
	"POST /heartbeat as PATCH (500)",
	"POST /heartbeat as Trace (501)",
	"POST /secret/token (401)",
	"POST /secret/token (201)",
	"GET /secret/note (403)",
	"GET /secret/note (401)",
	"GET /secret/note (200)",
	"POST /secret/note (200)",
	"POST /secret/note (401)",
	"POST /secret/note (403)",
	"GET /secret/note (Bearer)",
	"POST /secret/note (Bearer)",
	"DELETE /todos/{id} (200) all",
	"POST /todos (201) all",
}

func challengesDocument() document {
	items := make([]ldvalue.Value, 0, len(challengeNames))
	for i, name := range challengeNames {
		items = append(items, challengeValue(servicedef.Challenge{
			ID:   fmt.Sprintf("%02d", i+1),
			Name: name,
		}))
	}
	list := ldvalue.ArrayOf(items...)
	return document{
		json:    ldvalue.ObjectBuild().Set("challenges", list).Build(),
		xmlRoot: "challenges",
		xml:     ldvalue.ObjectBuild().Set("challenge", list).Build(),
	}
}

func challengeValue(c servicedef.Challenge) ldvalue.Value {
	return ldvalue.ObjectBuild().
		Set("id", ldvalue.String(c.ID)).
		Set("name", ldvalue.String(c.Name)).
		Set("description", ldvalue.String(c.Description)).
		Set("status", ldvalue.Bool(c.Status)).
		Build()
}
