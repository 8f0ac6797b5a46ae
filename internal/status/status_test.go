package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyCoversEveryStatus(t *testing.T) {
	known := []string{
		StatusPending, StatusProcessing, StatusShipped,
		StatusInTransit, StatusOutForDelivery, StatusDelivered, StatusCancelled,
	}
	for _, s := range known {
		d := Classify(s)
		assert.NotEmpty(t, d.Icon, "icon para %s", s)
		assert.NotEmpty(t, d.Label, "label para %s", s)
		assert.NotEqual(t, displayUnknown.Label, d.Label, "%s no debe caer en fallback", s)
	}
}

func TestClassifyUnknownFallback(t *testing.T) {
	// Un enum extendido en el backend nunca debe romper al cliente
	for _, s := range []string{"", "refunded", "EN TRÁNSITO", "???"} {
		d := Classify(s)
		assert.Equal(t, displayUnknown, d, "input %q", s)
	}
}

func TestValidateTransition(t *testing.T) {
	cases := []struct {
		current, next string
		wantErr       error
	}{
		{StatusPending, StatusProcessing, nil},
		{StatusPending, StatusDelivered, nil}, // saltar pasos está permitido
		{StatusPending, StatusCancelled, nil},
		{StatusShipped, StatusCancelled, nil},
		{StatusOutForDelivery, StatusCancelled, nil},
		{StatusProcessing, StatusProcessing, nil}, // igual es no-op válido
		{StatusDelivered, StatusPending, ErrFinalState},
		{StatusDelivered, StatusCancelled, ErrFinalState},
		{StatusCancelled, StatusProcessing, ErrFinalState},
		{StatusShipped, StatusPending, ErrInvalidTransition}, // sin retrocesos
		{StatusInTransit, StatusProcessing, ErrInvalidTransition},
		{StatusPending, "refunded", ErrInvalidTransition},
	}

	for _, tc := range cases {
		err := ValidateTransition(tc.current, tc.next)
		if tc.wantErr == nil {
			assert.NoError(t, err, "%s -> %s", tc.current, tc.next)
		} else {
			assert.ErrorIs(t, err, tc.wantErr, "%s -> %s", tc.current, tc.next)
		}
	}
}

func TestComputeProgressInTransit(t *testing.T) {
	p := ComputeProgress(StatusInTransit)

	assert.Equal(t, 3, p.StepIndex)
	assert.InDelta(t, 60.0, p.Percent, 0.001)
	require.Len(t, p.CompletedSteps, 6)
	assert.Equal(t, []bool{true, true, true, true, false, false}, p.CompletedSteps)
}

func TestComputeProgressBounds(t *testing.T) {
	first := ComputeProgress(StatusPending)
	assert.Equal(t, 0, first.StepIndex)
	assert.Equal(t, 0.0, first.Percent)
	assert.Equal(t, []bool{true, false, false, false, false, false}, first.CompletedSteps)

	last := ComputeProgress(StatusDelivered)
	assert.Equal(t, 5, last.StepIndex)
	assert.Equal(t, 100.0, last.Percent)
	assert.Equal(t, []bool{true, true, true, true, true, true}, last.CompletedSteps)
}

func TestComputeProgressCancelledAndUnknown(t *testing.T) {
	for _, s := range []string{StatusCancelled, "", "refunded"} {
		p := ComputeProgress(s)
		assert.Equal(t, -1, p.StepIndex, "input %q", s)
		assert.Equal(t, 0.0, p.Percent, "input %q", s)
		assert.Equal(t, []bool{false, false, false, false, false, false}, p.CompletedSteps, "input %q", s)
	}
}

func TestPartitionPreservesOrder(t *testing.T) {
	type row struct {
		id string
		st string
	}
	in := []row{
		{"a", StatusPending},
		{"b", StatusDelivered},
		{"c", StatusCancelled},
		{"d", StatusShipped},
	}

	active, completed := Partition(in, func(r row) string { return r.st })

	require.Len(t, active, 2)
	require.Len(t, completed, 2)
	assert.Equal(t, "a", active[0].id)
	assert.Equal(t, "d", active[1].id)
	assert.Equal(t, "b", completed[0].id)
	assert.Equal(t, "c", completed[1].id)
}

func TestIsFinal(t *testing.T) {
	assert.True(t, IsFinal(StatusDelivered))
	assert.True(t, IsFinal(StatusCancelled))
	assert.False(t, IsFinal(StatusPending))
	assert.False(t, IsFinal(StatusOutForDelivery))
	assert.False(t, IsFinal("refunded"))
}
