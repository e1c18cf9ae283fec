package framework

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingTestLogger struct {
	events []string
}

func (r *recordingTestLogger) TestStarted(id TestID) {
	r.events = append(r.events, "started "+id.String())
}

func (r *recordingTestLogger) TestError(id TestID, err error) {
	r.events = append(r.events, "error "+id.String()+": "+err.Error())
}

func (r *recordingTestLogger) TestFinished(id TestID, failed bool, debugOutput CapturedOutput) {
	status := "passed"
	if failed {
		status = "failed"
	}
	r.events = append(r.events, "finished "+id.String()+" "+status)
}

func (r *recordingTestLogger) TestSkipped(id TestID, reason string) {
	r.events = append(r.events, "skipped "+id.String()+" ("+reason+")")
}

func TestRunRecordsPassesAndFailures(t *testing.T) {
	logger := &recordingTestLogger{}
	results := Run(nil, logger, func(c *Context) {
		c.Run("a", func(c *Context) {})
		c.Run("b", func(c *Context) {
			c.Errorf("bad thing %d", 1)
		})
		c.Run("c", func(c *Context) {
			c.Run("d", func(c *Context) {})
		})
	})

	assert.False(t, results.OK())
	require.Len(t, results.Tests, 4)
	require.Len(t, results.Failures, 1)
	assert.Equal(t, "b", results.Failures[0].TestID.String())
	assert.Equal(t, []error{errors.New("bad thing 1")}, results.Failures[0].Errors)
	assert.Equal(t, []string{
		"started a",
		"finished a passed",
		"started b",
		"error b: bad thing 1",
		"finished b failed",
		"started c",
		"started c/d",
		"finished c/d passed",
		"finished c passed",
	}, logger.events)
}

func TestFailNowStopsTheTest(t *testing.T) {
	reachedEnd := false
	results := Run(nil, nil, func(c *Context) {
		c.Run("a", func(c *Context) {
			require.Equal(c, 1, 2)
			reachedEnd = true
		})
	})
	assert.False(t, reachedEnd)
	require.Len(t, results.Failures, 1)
}

func TestFailNowWithoutMessage(t *testing.T) {
	results := Run(nil, nil, func(c *Context) {
		c.Run("a", func(c *Context) { c.FailNow() })
	})
	require.Len(t, results.Failures, 1)
	assert.Equal(t, "test failed with no failure message", results.Failures[0].Errors[0].Error())
}

func TestUnexpectedPanicFailsTheTest(t *testing.T) {
	results := Run(nil, nil, func(c *Context) {
		c.Run("a", func(c *Context) { panic("boom") })
		c.Run("b", func(c *Context) {})
	})
	require.Len(t, results.Tests, 2)
	require.Len(t, results.Failures, 1)
	assert.Contains(t, results.Failures[0].Errors[0].Error(), "unexpected panic in test: boom")
}

func TestSkip(t *testing.T) {
	logger := &recordingTestLogger{}
	results := Run(nil, logger, func(c *Context) {
		c.Run("a", func(c *Context) { c.SkipWithReason("not today") })
	})
	assert.True(t, results.OK())
	assert.Equal(t, 1, results.SkippedCount())
	assert.Equal(t, []string{"started a", "skipped a (not today)"}, logger.events)
}

func TestFilterExcludesTests(t *testing.T) {
	ran := []string{}
	Run(func(id TestID) bool { return id.String() != "b" }, nil, func(c *Context) {
		for _, name := range []string{"a", "b", "c"} {
			n := name
			c.Run(n, func(c *Context) { ran = append(ran, n) })
		}
	})
	assert.Equal(t, []string{"a", "c"}, ran)
}

func TestFilterIsNotAppliedToGroups(t *testing.T) {
	ran := []string{}
	Run(func(id TestID) bool { return strings.Contains(id.String(), "@negative") }, nil, func(c *Context) {
		c.Group("todos", func(c *Context) {
			ran = append(ran, "todos")
			c.Run("GET /todos (200) @positive", func(c *Context) { ran = append(ran, "positive") })
			c.Run("GET /todo (404) @negative", func(c *Context) { ran = append(ran, "negative") })
		})
	})
	assert.Equal(t, []string{"todos", "negative"}, ran)
}

func TestDeferredFunctionsRunInReverseOrderEvenAfterFailure(t *testing.T) {
	var calls []string
	Run(nil, nil, func(c *Context) {
		c.Run("a", func(c *Context) {
			c.Defer(func() { calls = append(calls, "first") })
			c.Defer(func() { calls = append(calls, "second") })
			c.FailNow()
		})
	})
	assert.Equal(t, []string{"second", "first"}, calls)
}

func TestDebugOutputIsPassedToLoggerAtEnd(t *testing.T) {
	var captured CapturedOutput
	logger := &capturingTestLogger{onFinish: func(o CapturedOutput) { captured = o }}
	Run(nil, logger, func(c *Context) {
		c.Run("a", func(c *Context) {
			c.Debug("hello %s", "there")
			c.DebugLogger().Printf("again")
		})
	})
	require.Len(t, captured, 2)
	assert.Equal(t, "hello there", captured[0].Message)
	assert.Equal(t, "again", captured[1].Message)
}

func TestRootFailureIsReported(t *testing.T) {
	results := Run(nil, nil, func(c *Context) {
		c.Errorf("setup failed")
	})
	require.Len(t, results.Failures, 1)
	assert.Equal(t, "", results.Failures[0].TestID.String())
}

type capturingTestLogger struct {
	nullTestLogger
	onFinish func(CapturedOutput)
}

func (c *capturingTestLogger) TestFinished(id TestID, failed bool, debugOutput CapturedOutput) {
	c.onFinish(debugOutput)
}
