// Package natsproxy implements the per-partition session capability over
// NATS request/reply.
//
// Each partition is served on its own subject hierarchy
// (<prefix>.<partition>.<verb>); lifecycle verbs are plain requests and the
// partition server's reply acknowledges completion. Session state events are
// derived from two sources: the outcome of lifecycle requests, and the
// shared connection's status (a reconnecting connection suspends every
// connected session, a closed connection closes them).
//
// Retry and backoff are delegated to the NATS client's reconnect machinery;
// this package adds none of its own, matching the proxy client's contract
// that retry policy lives below the session boundary.
package natsproxy
