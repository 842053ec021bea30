package testing

import (
	"fmt"
	"testing"
	"time"

	"github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"

	"github.com/woojoong88/atomix/types"
)

// StartEmbeddedNATS starts an embedded NATS server for testing.
//
// The server runs in-process on a random available port, so tests need no
// external dependencies and parallelize safely. Both the server and the
// returned client connection are cleaned up via t.Cleanup().
//
// Parameters:
//   - t: Testing context for logging and cleanup
//
// Returns:
//   - *server.Server: The embedded NATS server instance
//   - *nats.Conn: Connected NATS client
//
// Example:
//
//	func TestSession(t *testing.T) {
//	    _, nc := atomixtest.StartEmbeddedNATS(t)
//	    // Use nc for your tests
//	}
func StartEmbeddedNATS(t *testing.T) (*server.Server, *nats.Conn) {
	t.Helper()

	opts := &server.Options{
		Host:  "127.0.0.1",
		Port:  -1, // Use random available port
		NoLog: true,
	}

	ns, err := server.NewServer(opts)
	if err != nil {
		t.Fatalf("Failed to create embedded NATS server: %v", err)
	}

	go ns.Start()

	if !ns.ReadyForConnections(5 * time.Second) {
		ns.Shutdown()
		t.Fatal("Embedded NATS server not ready within timeout")
	}

	nc, err := nats.Connect(ns.ClientURL(),
		nats.Timeout(2*time.Second),
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(3),
	)
	if err != nil {
		ns.Shutdown()
		t.Fatalf("Failed to connect to embedded NATS server: %v", err)
	}

	// Cleanup handlers run in reverse order
	t.Cleanup(func() {
		nc.Close()
		ns.Shutdown()
		ns.WaitForShutdown()
	})

	return ns, nc
}

// ServePartition runs a loopback partition server for one partition.
//
// It subscribes to every lifecycle verb under the partition's subject and
// acknowledges each request, which is all the natsproxy transport needs for
// a session to connect. To simulate a failing partition, simply don't serve
// it: requests then fail with "no responders".
//
// Parameters:
//   - t: Testing context for cleanup
//   - nc: NATS connection (usually from StartEmbeddedNATS)
//   - prefix: Subject prefix the transport is configured with
//   - id: Partition to serve
func ServePartition(t *testing.T, nc *nats.Conn, prefix string, id types.PartitionID) {
	t.Helper()

	subject := fmt.Sprintf("%s.%d.*", prefix, int(id))
	sub, err := nc.Subscribe(subject, func(m *nats.Msg) {
		_ = m.Respond([]byte("+OK"))
	})
	if err != nil {
		t.Fatalf("Failed to serve partition %s: %v", id, err)
	}
	t.Cleanup(func() {
		_ = sub.Unsubscribe()
	})

	// Make sure the subscription is active before the test sends requests
	if err := nc.Flush(); err != nil {
		t.Fatalf("Failed to flush subscription for partition %s: %v", id, err)
	}
}
