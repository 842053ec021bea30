// Package types defines the core types and interfaces shared across the
// Atomix client library.
//
// The root atomix package re-exports these definitions via type aliases,
// allowing internal packages to depend on types without importing the root
// package and creating import cycles.
package types
