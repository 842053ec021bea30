// Package metrics provides types.MetricsCollector implementations.
package metrics

import "github.com/woojoong88/atomix/types"

// NopMetrics is a no-op metrics collector.
//
// Used as the default when no collector is injected.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// RecordStateTransition discards the event.
func (n *NopMetrics) RecordStateTransition(_, _ /* from, to */ types.State) {}

// RecordLifecycleDuration discards the event.
func (n *NopMetrics) RecordLifecycleDuration(_ /* op */ string, _ /* seconds */ float64, _ /* success */ bool) {
}

// RecordRoute discards the event.
func (n *NopMetrics) RecordRoute(_ /* id */ types.PartitionID) {}
