package usecase

import (
	"cloudpayments_bridge/internal/domain/entities"
	"cloudpayments_bridge/internal/usecase/interfaces"
)

// Resolution is a mapped flow outcome ready to hand to a pending handle.
// Exactly one of Payload or Err is meaningful: Err set means a channel failure.
type Resolution struct {
	Payload any
	Err     *entities.ChannelError
	Status  entities.OutcomeStatus
}

func (r Resolution) deliver(res interfaces.IResult) {
	if r.Err != nil {
		res.Error(r.Err)
		return
	}
	res.Success(r.Payload)
}

func (r Resolution) errorCode() string {
	if r.Err != nil {
		return string(r.Err.Code)
	}
	return ""
}

func failureResolution(err *entities.ChannelError) Resolution {
	return Resolution{Err: err, Status: entities.OutcomeStatusError}
}

// MapOutcome turns a FlowOutcome into the uniform response shape
// {status, ...outcome fields}. It is pure.
func MapOutcome(o entities.FlowOutcome) map[string]any {
	switch o.Status {
	case entities.OutcomeStatusSuccess:
		out := make(map[string]any, len(o.Payload)+1)
		for k, v := range o.Payload {
			out[k] = v
		}
		out["status"] = string(entities.OutcomeStatusSuccess)
		return out
	case entities.OutcomeStatusCanceled:
		return map[string]any{"status": string(entities.OutcomeStatusCanceled)}
	default:
		return map[string]any{
			"status":            string(entities.OutcomeStatusError),
			"error_code":        o.Code,
			"error_message":     o.Message,
			"error_description": o.Description,
		}
	}
}

// GooglePayResolution replies with the uniform shape for every outcome,
// including a platform-signaled error.
func GooglePayResolution(o entities.FlowOutcome) Resolution {
	return Resolution{Payload: MapOutcome(o), Status: o.Status}
}

// ThreeDSResolution replies {md, paRes} on success, an empty success on
// cancel, and a channel failure on error.
func ThreeDSResolution(o entities.FlowOutcome) Resolution {
	switch o.Status {
	case entities.OutcomeStatusSuccess:
		return Resolution{Payload: o.Payload, Status: o.Status}
	case entities.OutcomeStatusCanceled:
		return Resolution{Status: o.Status}
	default:
		return failureResolution(entities.NewChannelError(entities.ErrorCode(o.Code), o.Message))
	}
}
