package types

// Serializer turns arbitrary routing keys into a canonical byte form.
//
// The proxy client only uses it to derive routing strings for non-string
// keys, so the single hard requirement is determinism: structurally equal
// values must encode to identical bytes, otherwise two lookups of the same
// logical key could route to different partitions.
type Serializer interface {
	// Encode serializes value into its canonical byte representation.
	Encode(value any) ([]byte, error)
}
