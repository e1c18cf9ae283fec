package framework

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

type Results struct {
	Tests    []TestResult
	Failures []TestResult
}

type TestResult struct {
	TestID  TestID
	Errors  []error
	Skipped bool
}

func (r Results) OK() bool {
	return len(r.Failures) == 0
}

func (r Results) SkippedCount() int {
	n := 0
	for _, t := range r.Tests {
		if t.Skipped {
			n++
		}
	}
	return n
}

// TestID identifies a test by the names of the test and all of its parents. Names may contain
// tags such as "@negative", which filters can select on like any other part of the name.
type TestID struct {
	Path []string
}

// Plus returns the ID of a subtest.
func (t TestID) Plus(name string) TestID {
	return TestID{Path: append(append([]string(nil), t.Path...), name)}
}

func (t TestID) String() string {
	return strings.Join(t.Path, "/")
}

type TestFailure struct {
	ID  TestID
	Err error
}

func (f TestFailure) Error() string {
	return fmt.Sprintf("[%s]: %s", f.ID, f.Err)
}

// PrintResults writes a summary of a test run, listing each failed test with its errors.
func PrintResults(results Results, out io.Writer) {
	skipped := results.SkippedCount()
	ran := len(results.Tests) - skipped
	if results.OK() {
		fmt.Fprintf(out, "All tests passed (%d run, %d skipped)\n", ran, skipped)
		return
	}
	fmt.Fprintf(out, "FAILED TESTS (%d of %d run, %d skipped):\n", len(results.Failures), ran, skipped)
	for _, f := range results.Failures {
		fmt.Fprintf(out, "* %s\n", f.TestID)
		for _, err := range f.Errors {
			for _, line := range strings.Split(reformatError(err).Error(), "\n") {
				fmt.Fprintf(out, "    %s\n", line)
			}
		}
	}
}

// reformatError drops the "Error Trace" block from a testify failure message. The trace points
// into the test suite's own source, which is not useful in console output.
func reformatError(err error) error {
	var kept []string
	inTrace := false
	for _, line := range strings.Split(err.Error(), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		trimmed := strings.TrimLeft(line, "\t")
		label := strings.TrimSpace(strings.SplitN(trimmed, "\t", 2)[0])
		switch {
		case label == "Error Trace:":
			inTrace = true
			continue
		case label != "":
			inTrace = false
		}
		if !inTrace {
			kept = append(kept, trimmed)
		}
	}
	return errors.New(strings.Join(kept, "\n"))
}
