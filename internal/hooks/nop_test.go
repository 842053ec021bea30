package hooks

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/woojoong88/atomix/types"
)

func TestNopHooks(t *testing.T) {
	h := NewNop()

	require.NotNil(t, h.OnStateChanged)
	require.NotNil(t, h.OnError)

	require.NoError(t, h.OnStateChanged(context.Background(), types.StateClosed, types.StateConnected))
	require.NoError(t, h.OnError(context.Background(), errors.New("boom")))
}
