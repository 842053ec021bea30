package types

import "testing"

func TestStateString(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StateClosed, "Closed"},
		{StateConnected, "Connected"},
		{StateSuspended, "Suspended"},
		{State(999), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.state.String(); got != tt.want {
				t.Errorf("State.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStateZeroValueIsClosed(t *testing.T) {
	var s State
	if s != StateClosed {
		t.Errorf("zero value State = %v, want StateClosed", s)
	}
}
