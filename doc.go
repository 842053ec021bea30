// Package atomix provides the client-side proxy for partitioned distributed
// primitives.
//
// A primitive (replicated map, counter, ...) is physically split across
// multiple independently replicated partitions. The ProxyClient lets
// application code treat it as a single object: operations are routed to the
// owning partition by key, lifecycle calls fan out to every partition, and
// the partitions' individual connectivity is collapsed into one aggregate
// state with exactly-once transition notifications.
//
// # Quick Start
//
//	import (
//	    "github.com/woojoong88/atomix"
//	    "github.com/woojoong88/atomix/partitioner"
//	    "github.com/woojoong88/atomix/transport/natsproxy"
//	)
//
//	sessions, _ := natsproxy.NewSessions(nc, natsproxy.Config{}, ids)
//	cfg := atomix.Config{Name: "orders", Type: "map", Protocol: "multi-raft"}
//
//	client, err := atomix.NewProxyClient(&cfg, sessions, partitioner.NewModulo())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	cancel := client.OnStateChange(func(state atomix.State) {
//	    log.Printf("client is now %s", state)
//	})
//	defer cancel()
//
//	if err := client.Connect(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
//	id, _ := client.PartitionIDForKey("user-42")
//	session, _ := client.Partition(id)
//
// # Aggregate State
//
// The client exposes one of three states, derived from all partitions:
//
//	Closed    — at least one partition session is closed (initial state)
//	Connected — every partition session is healthy
//	Suspended — previously connected, at least one partition degraded
//
// Transitions are fail-pessimistic: a single closed partition closes the
// whole client, because every key maps to exactly one partition and losing
// any partition loses part of the keyspace. Listeners registered with
// OnStateChange receive exactly one notification per transition, in order.
//
// # Limitations
//
// The partition set is fixed at construction. Dynamic repartitioning is not
// supported; build a new client to pick up a changed partition layout.
package atomix
