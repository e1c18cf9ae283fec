// Package framework contains the low-level test harness infrastructure that does not know
// anything about todos: test contexts, results, filters and loggers.
//
// The general model is:
//
// 1. The harness tests a remote HTTP service that it does not control. Before any tests run, it
// queries the service's status resource so that an unreachable service is reported once, up
// front, rather than as a failure in every test.
//
// 2. There is a general notion of a test context which is similar to Go's *testing.T, allowing
// pieces of test logic to be associated with a test identifier and to accumulate success/failure
// results. Unlike *testing.T, subtests always run sequentially in the order they are declared,
// because tests of a stateful service depend on what earlier tests did.
//
// 3. Each test has its own capturing debug logger. Whatever the test logs there is shown only if
// the test fails, or if the user asked for all debug output.
//
// The domain-specific code that knows what is being tested is responsible for issuing requests to
// the service and for providing a domain-specific test API on top of the test context.
package framework
