package response

import (
	"time"

	"cloudpayments_bridge/internal/domain/entities"
	"cloudpayments_bridge/internal/infrastructure/sandbox"
)

type HostStateResponse struct {
	ActivityID string `json:"activityId,omitempty"`
	Attached   bool   `json:"attached"`
}

type ActivityResultResponse struct {
	Handled bool `json:"handled"`
}

type SurfacesResponse struct {
	ActivityID string            `json:"activityId,omitempty"`
	Surfaces   []sandbox.Surface `json:"surfaces"`
}

type ChallengeCallbackResponse struct {
	TransactionID string `json:"transactionId"`
	Delivered     bool   `json:"delivered"`
}

type FlowRecordResponse struct {
	ID         string    `json:"id"`
	Kind       string    `json:"kind"`
	Status     string    `json:"status"`
	ErrorCode  string    `json:"errorCode,omitempty"`
	StartedAt  time.Time `json:"startedAt"`
	ResolvedAt time.Time `json:"resolvedAt"`
	DurationMS int64     `json:"durationMs"`
}

func FromFlowRecord(rec entities.FlowRecord) FlowRecordResponse {
	return FlowRecordResponse{
		ID:         rec.ID,
		Kind:       string(rec.Kind),
		Status:     string(rec.Status),
		ErrorCode:  rec.ErrorCode,
		StartedAt:  rec.StartedAt,
		ResolvedAt: rec.ResolvedAt,
		DurationMS: rec.ResolvedAt.Sub(rec.StartedAt).Milliseconds(),
	}
}
