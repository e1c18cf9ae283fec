// Package todotests contains the Todo Manager API contract tests themselves and their supporting
// API.
//
// Test harness infrastructure that is not specific to the todo domain, such as the test context,
// filters and result reporting, is in the lower-level framework package. Requests are made with
// the resource clients in the client package.
package todotests
