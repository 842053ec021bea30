package serializer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestJSON_StructurallyEqualValuesEncodeIdentically(t *testing.T) {
	s := NewJSON()

	// Different insertion orders, same structure: encoding/json sorts map
	// keys, so the canonical forms must match.
	a := map[string]int{"x": 1, "y": 2, "z": 3}
	b := map[string]int{"z": 3, "x": 1, "y": 2}

	ea, err := s.Encode(a)
	require.NoError(t, err)
	eb, err := s.Encode(b)
	require.NoError(t, err)

	require.Equal(t, ea, eb)
}

func TestJSON_StructKeys(t *testing.T) {
	s := NewJSON()

	type orderKey struct {
		Region string `json:"region"`
		ID     int    `json:"id"`
	}

	ea, err := s.Encode(orderKey{Region: "eu", ID: 42})
	require.NoError(t, err)
	eb, err := s.Encode(orderKey{Region: "eu", ID: 42})
	require.NoError(t, err)
	require.Equal(t, ea, eb)

	ec, err := s.Encode(orderKey{Region: "us", ID: 42})
	require.NoError(t, err)
	require.NotEqual(t, ea, ec)
}

func TestJSON_UnsupportedValue(t *testing.T) {
	s := NewJSON()

	_, err := s.Encode(make(chan int))
	require.Error(t, err)
}
