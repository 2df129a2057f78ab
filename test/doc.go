// Package test provides infrastructure and utilities for integration testing in lunchdesk.
//
// A Suite runs the fixture API over a file-based sqlite database behind a real
// HTTP server, and hands tests a real API client and query store pointed at it.
// Tests that need the whole stack (client, store, coordinators, CLI commands)
// use it instead of mocking the transport.
//
// Example Usage:
//
//	func TestExample(t *testing.T) {
//	    suite := test.NewSuite(t)
//	    defer suite.Cleanup()
//
//	    // Use suite.APIClient to make requests
//	    // Use suite.DB or the repositories to arrange rows
//	}
package test
