package response

import (
	"testing"
	"time"

	"cloudpayments_bridge/internal/domain/entities"
)

func TestFromFlowRecord(t *testing.T) {
	started := time.Date(2026, time.October, 15, 8, 0, 0, 0, time.UTC)
	got := FromFlowRecord(entities.FlowRecord{
		ID:         "f-1",
		Kind:       entities.FlowKindThreeDS,
		Status:     entities.OutcomeStatusError,
		ErrorCode:  string(entities.ErrorCodeFlowTimeout),
		StartedAt:  started,
		ResolvedAt: started.Add(2 * time.Second),
	})

	if got.Kind != "threeDs" || got.Status != "ERROR" || got.ErrorCode != "FlowTimeout" {
		t.Fatalf("unexpected response: %+v", got)
	}
	if got.DurationMS != 2000 {
		t.Fatalf("expected 2000ms, got %d", got.DurationMS)
	}
}
