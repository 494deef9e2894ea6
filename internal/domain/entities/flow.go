package entities

import "time"

// FlowKind names a multi-step interaction that completes through a later
// external callback. At most one flow of each kind is outstanding.
type FlowKind string

const (
	FlowKindThreeDS   FlowKind = "threeDs"
	FlowKindGooglePay FlowKind = "googlePay"
)

// OutcomeStatus is the uniform status vocabulary of a resolved flow.
type OutcomeStatus string

const (
	OutcomeStatusSuccess  OutcomeStatus = "SUCCESS"
	OutcomeStatusCanceled OutcomeStatus = "CANCELED"
	OutcomeStatusError    OutcomeStatus = "ERROR"
)

// FlowOutcome is a closed variant over Success(payload), Canceled and
// Error(code, message, description). Build values with the constructors below.
type FlowOutcome struct {
	Status      OutcomeStatus
	Payload     map[string]any
	Code        string
	Message     string
	Description string
}

func SuccessOutcome(payload map[string]any) FlowOutcome {
	return FlowOutcome{Status: OutcomeStatusSuccess, Payload: payload}
}

func CanceledOutcome() FlowOutcome {
	return FlowOutcome{Status: OutcomeStatusCanceled}
}

func ErrorOutcome(code, message, description string) FlowOutcome {
	return FlowOutcome{Status: OutcomeStatusError, Code: code, Message: message, Description: description}
}

// FlowRecord is the audit entry written once a flow resolves. It never holds
// card data or payment tokens.
type FlowRecord struct {
	ID         string
	Kind       FlowKind
	Status     OutcomeStatus
	ErrorCode  string
	StartedAt  time.Time
	ResolvedAt time.Time
}
