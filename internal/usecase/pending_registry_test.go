package usecase

import (
	"testing"
	"time"

	"cloudpayments_bridge/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPendingRegistry_BeginAndResolve(t *testing.T) {
	var records []entities.FlowRecord
	reg := NewPendingRegistry(InlineExecutor{}, nil, func(rec entities.FlowRecord) { records = append(records, rec) })
	res := &recordingResult{}

	id, err := reg.Begin(entities.FlowKindGooglePay, res)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	pending, ok := reg.Pending(entities.FlowKindGooglePay)
	assert.True(t, ok)
	assert.Equal(t, id, pending)

	assert.True(t, reg.Resolve(entities.FlowKindGooglePay, id, GooglePayResolution(entities.CanceledOutcome())))
	assert.Equal(t, 1, res.count())
	assert.Equal(t, map[string]any{"status": "CANCELED"}, res.payload)

	_, ok = reg.Pending(entities.FlowKindGooglePay)
	assert.False(t, ok, "handle must be cleared after resolution")

	assert.False(t, reg.Resolve(entities.FlowKindGooglePay, id, GooglePayResolution(entities.CanceledOutcome())))
	assert.Equal(t, 1, res.count())

	require.Len(t, records, 1)
	assert.Equal(t, id, records[0].ID)
	assert.Equal(t, entities.OutcomeStatusCanceled, records[0].Status)
}

func TestPendingRegistry_RejectsSecondFlowOfSameKind(t *testing.T) {
	reg := NewPendingRegistry(InlineExecutor{}, nil, nil)
	first := &recordingResult{}
	second := &recordingResult{}

	id, err := reg.Begin(entities.FlowKindThreeDS, first)
	require.NoError(t, err)

	_, err = reg.Begin(entities.FlowKindThreeDS, second)
	assert.ErrorIs(t, err, ErrFlowInProgress)

	_, err = reg.Begin(entities.FlowKindGooglePay, &recordingResult{})
	assert.NoError(t, err, "kinds are independent")

	reg.Resolve(entities.FlowKindThreeDS, id, ThreeDSResolution(entities.CanceledOutcome()))
	assert.Equal(t, 1, first.count())
	assert.Equal(t, 0, second.count())
}

func TestPendingRegistry_IgnoresStaleID(t *testing.T) {
	reg := NewPendingRegistry(InlineExecutor{}, nil, nil)
	res := &recordingResult{}
	_, err := reg.Begin(entities.FlowKindThreeDS, res)
	require.NoError(t, err)

	assert.False(t, reg.Resolve(entities.FlowKindThreeDS, "stale", ThreeDSResolution(entities.CanceledOutcome())))
	assert.Equal(t, 0, res.count())
	_, ok := reg.Pending(entities.FlowKindThreeDS)
	assert.True(t, ok)
}

func TestPendingRegistry_DeadlineResolvesWithTimeout(t *testing.T) {
	done := make(chan entities.FlowRecord, 1)
	reg := NewPendingRegistry(InlineExecutor{}, map[entities.FlowKind]time.Duration{
		entities.FlowKindGooglePay: 10 * time.Millisecond,
	}, func(rec entities.FlowRecord) { done <- rec })
	res := &recordingResult{}

	_, err := reg.Begin(entities.FlowKindGooglePay, res)
	require.NoError(t, err)

	select {
	case rec := <-done:
		assert.Equal(t, string(entities.ErrorCodeFlowTimeout), rec.ErrorCode)
	case <-time.After(2 * time.Second):
		t.Fatalf("deadline did not fire")
	}
	assert.Equal(t, entities.ErrorCodeFlowTimeout, res.errorCode())
	_, ok := reg.Pending(entities.FlowKindGooglePay)
	assert.False(t, ok)
}

func TestPendingRegistry_ResolveStopsDeadline(t *testing.T) {
	reg := NewPendingRegistry(InlineExecutor{}, map[entities.FlowKind]time.Duration{
		entities.FlowKindThreeDS: 20 * time.Millisecond,
	}, nil)
	res := &recordingResult{}
	id, err := reg.Begin(entities.FlowKindThreeDS, res)
	require.NoError(t, err)

	reg.Resolve(entities.FlowKindThreeDS, id, ThreeDSResolution(entities.CanceledOutcome()))
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, 1, res.count())
	assert.Nil(t, res.err)
}

func TestPendingRegistry_Close(t *testing.T) {
	reg := NewPendingRegistry(InlineExecutor{}, nil, nil)
	gpay := &recordingResult{}
	tds := &recordingResult{}
	_, _ = reg.Begin(entities.FlowKindGooglePay, gpay)
	_, _ = reg.Begin(entities.FlowKindThreeDS, tds)

	reg.Close()
	assert.Equal(t, entities.ErrorCodeBridgeClosed, gpay.errorCode())
	assert.Equal(t, entities.ErrorCodeBridgeClosed, tds.errorCode())
	_, ok := reg.Pending(entities.FlowKindGooglePay)
	assert.False(t, ok)
}
