// Package partitioner provides routing strategies that map application keys
// to partition ids.
//
// All partitioners are pure functions of the key and the ordered partition
// id sequence: the same inputs always produce the same output, across calls
// and across process restarts. The proxy client relies on this determinism
// for per-key partition stickiness.
//
// Two strategies are provided:
//   - Modulo: hash the key and take it modulo the partition count. Matches
//     the classic primitive partitioner and is the recommended default.
//   - ConsistentHash: place partitions on a virtual-node hash ring. Keeps
//     most keys stable when routing against differently sized partition
//     sets.
package partitioner
