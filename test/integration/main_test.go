package integration_test

import (
	"testing"

	"github.com/Xae97/TaskFundi/test/helpers"
)

// newServer boots a fresh application with the default seed for one test.
// Stores are in-memory, so a new server per test is the isolation boundary.
func newServer(t *testing.T) *helpers.TestServer {
	ts := helpers.NewTestServer(t)
	t.Cleanup(ts.Close)
	return ts
}
