// Package testing provides test utilities for the Atomix client library.
//
// It follows Go's convention of providing testing utilities in a dedicated
// package (similar to net/http/httptest):
//   - StartEmbeddedNATS: in-process NATS server for transport tests
//   - ServePartition: loopback partition server answering lifecycle verbs
//   - StateRecorder: listener that records aggregate state notifications
//   - NewTestLogger: types.Logger writing through testing.T
//
// Example usage:
//
//	import (
//	    "testing"
//	    atomixtest "github.com/woojoong88/atomix/testing"
//	)
//
//	func TestMyComponent(t *testing.T) {
//	    _, nc := atomixtest.StartEmbeddedNATS(t)
//	    // Use nc for your tests
//	}
package testing
