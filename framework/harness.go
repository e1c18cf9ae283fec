package framework

import (
	"io"
	"strings"
	"time"
)

// StatusPath is the resource the harness queries to find out whether the service is up.
const StatusPath = "/heartbeat"

// TestHarness represents the service under test as seen at startup: where it is, and how it
// answered the status query.
type TestHarness struct {
	serviceBaseURL  string
	testServiceInfo TestServiceInfo
	logger          Logger
}

// NewTestHarness creates a TestHarness instance, and verifies that the service is responding by
// querying its status resource until it gets an answer or the timeout expires.
func NewTestHarness(
	serviceBaseURL string,
	statusQueryTimeout time.Duration,
	debugLogger Logger,
	startupOutput io.Writer,
) (*TestHarness, error) {
	if debugLogger == nil {
		debugLogger = NullLogger()
	}
	if startupOutput == nil {
		startupOutput = io.Discard
	}

	h := &TestHarness{
		serviceBaseURL: strings.TrimSuffix(serviceBaseURL, "/"),
		logger:         debugLogger,
	}

	testServiceInfo, err := queryTestServiceInfo(h.serviceBaseURL+StatusPath, statusQueryTimeout, startupOutput)
	if err != nil {
		return nil, err
	}
	h.testServiceInfo = testServiceInfo
	debugLogger.Printf("Service at %s answered status query with HTTP %d", h.serviceBaseURL, testServiceInfo.StatusCode)

	return h, nil
}

func (h *TestHarness) ServiceBaseURL() string {
	return h.serviceBaseURL
}

func (h *TestHarness) TestServiceInfo() TestServiceInfo {
	return h.testServiceInfo
}

// HasStatusResource is false if the status query got a 404, meaning that the service does not
// implement the resource at all. Tests of that resource are skipped in that case.
func (h *TestHarness) HasStatusResource() bool {
	return h.testServiceInfo.StatusCode != 404
}

func (h *TestHarness) Logger() Logger {
	return h.logger
}
