package interfaces

import (
	"context"

	"cloudpayments_bridge/internal/domain/entities"
)

// IFlowJournal stores a record of every resolved flow for traceability.
type IFlowJournal interface {
	Record(ctx context.Context, rec entities.FlowRecord) error
}

// IFlowRepository is a journal that can be read back. GetByID returns a zero
// record when id is unknown.
type IFlowRepository interface {
	IFlowJournal
	GetByID(ctx context.Context, id string) (entities.FlowRecord, error)
}
