package servicedef

import (
	"fmt"

	"github.com/launchdarkly/todo-contract-tests/codec"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// Limits enforced by the service.
const (
	MaxTitleLength       = 50
	MaxDescriptionLength = 200
	MaxBodyBytes         = 5000
)

// Error messages returned by the service in the errorMessages array.
const (
	ErrDescriptionTooLong = "Failed Validation: Maximum allowable length exceeded for description - maximum allowed is 200"
	ErrDoneStatusType     = "Failed Validation: doneStatus should be BOOLEAN but was STRING"
	ErrCreateWithPut      = "Cannot create todo with PUT due to Auto fields id"
	ErrCreateWithID       = "Invalid Creation: Failed Validation: Not allowed to create with id"
	ErrMalformedBody      = "Failed to parse request body"
	ErrBodyTooLarge       = "Error: Request body too large, max allowed is 5000 bytes"
	ErrTitleMandatory     = "title : field is mandatory"
	ErrTitleTooLong       = "Failed Validation: Maximum allowable length exceeded for title - maximum allowed is 50"
	ErrUnrecognisedAccept = "Unrecognised Accept Type"
)

func CouldNotFindField(field string) string {
	return fmt.Sprintf("Could not find field: %s", field)
}

func NotFoundInstance(id string) string {
	return fmt.Sprintf("Could not find an instance with todos/%s", id)
}

func NotFoundAnyInstances(id string) string {
	return fmt.Sprintf("Could not find any instances with todos/%s", id)
}

func NoSuchEntity(id string) string {
	return fmt.Sprintf("No such todo entity instance with id == %s found", id)
}

func UnsupportedContentType(name string) string {
	return fmt.Sprintf("Unsupported Content Type - %s", name)
}

// ErrorMessagesAsValue builds the error body that the service returns for a failed request.
// In XML it becomes <errorMessages><errorMessage>...</errorMessage></errorMessages>.
func ErrorMessagesAsValue(messages ...string) ldvalue.Value {
	values := make([]ldvalue.Value, 0, len(messages))
	for _, m := range messages {
		values = append(values, ldvalue.String(m))
	}
	return ldvalue.ObjectBuild().Set("errorMessages", ldvalue.ArrayOf(values...)).Build()
}

// ErrorMessagesFromValue extracts the errorMessages list from a decoded error body in either
// representation. It returns nil if there is no such list.
func ErrorMessagesFromValue(v ldvalue.Value) []string {
	list := v.GetByKey("errorMessages")
	if list.Type() == ldvalue.ObjectType {
		list = list.GetByKey("errorMessage")
	}
	var ret []string
	for _, m := range codec.Elements(list) {
		if m.Type() == ldvalue.StringType {
			ret = append(ret, m.StringValue())
		}
	}
	return ret
}
