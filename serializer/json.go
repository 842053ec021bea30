// Package serializer provides routing-key serializers.
package serializer

import (
	"encoding/json"

	"github.com/woojoong88/atomix/types"
)

// JSON serializes routing keys with encoding/json.
//
// encoding/json sorts map keys, so structurally equal values always encode
// to identical bytes — the determinism the router's partition stickiness
// depends on. Values must be JSON-serializable; channels, funcs, and cyclic
// structures return an error.
type JSON struct{}

var _ types.Serializer = (*JSON)(nil)

// NewJSON creates a new JSON serializer.
func NewJSON() *JSON {
	return &JSON{}
}

// Encode serializes value into its canonical JSON representation.
func (j *JSON) Encode(value any) ([]byte, error) {
	return json.Marshal(value)
}
