package framework

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintResultsAllPassed(t *testing.T) {
	var buf bytes.Buffer
	PrintResults(Results{Tests: []TestResult{{TestID: testID("a")}, {TestID: testID("b"), Skipped: true}}}, &buf)
	assert.Equal(t, "All tests passed (1 run, 1 skipped)\n", buf.String())
}

func TestPrintResultsWithFailures(t *testing.T) {
	failure := TestResult{TestID: testID("todos", "x"), Errors: []error{errors.New("first\nsecond")}}
	var buf bytes.Buffer
	PrintResults(Results{Tests: []TestResult{failure, {TestID: testID("y")}}, Failures: []TestResult{failure}}, &buf)
	assert.Equal(t, "FAILED TESTS (1 of 2 run, 0 skipped):\n* todos/x\n    first\n    second\n", buf.String())
}

func TestReformatErrorDropsTestifyTrace(t *testing.T) {
	err := errors.New("\n\tError Trace:\tsuite.go:12\n\t            \t\tother.go:5\n" +
		"\tError:      \tNot equal: \n\t            \texpected: 404\n\t            \tactual  : 200\n" +
		"\tMessages:   \tstatus\n")
	assert.Equal(t,
		"Error:      \tNot equal: \n            \texpected: 404\n            \tactual  : 200\nMessages:   \tstatus",
		reformatError(err).Error())
}
