package entities

import (
	"errors"
	"fmt"
)

// ErrorCode is the closed set of failure codes a channel response may carry.
type ErrorCode string

const (
	ErrorCodeMissingParam        ErrorCode = "MissingParam"
	ErrorCodeGooglePay           ErrorCode = "GooglePayError"
	ErrorCodeRequestPayment      ErrorCode = "RequestPayment"
	ErrorCodeAuthorizationFailed ErrorCode = "AuthorizationFailed"
	ErrorCodeNoActiveContext     ErrorCode = "NoActiveContext"
	ErrorCodeFlowInProgress      ErrorCode = "FlowInProgress"
	ErrorCodeFlowTimeout         ErrorCode = "FlowTimeout"
	ErrorCodeBridgeClosed        ErrorCode = "BridgeClosed"
)

// ChannelError is the (code, message, details) triple sent back to the caller.
// Details is always nil in this bridge.
type ChannelError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details any       `json:"details"`
}

func (e *ChannelError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewChannelError(code ErrorCode, message string) *ChannelError {
	return &ChannelError{Code: code, Message: message}
}

// MissingParam builds the failure returned when a required argument is absent
// or has the wrong type.
func MissingParam(name string) *ChannelError {
	return NewChannelError(ErrorCodeMissingParam, name+" is required")
}

// CryptogramErrorKind is the closed taxonomy reported by the card SDK when a
// cryptogram cannot be produced. Callers branch on the string value.
type CryptogramErrorKind string

const (
	CryptogramErrorInvalidCardNumber CryptogramErrorKind = "InvalidCardNumber"
	CryptogramErrorInvalidExpiryDate CryptogramErrorKind = "InvalidExpiryDate"
	CryptogramErrorInvalidCVC        CryptogramErrorKind = "InvalidCVC"
	CryptogramErrorInvalidPublicID   CryptogramErrorKind = "InvalidPublicId"
	CryptogramErrorEncryptionFailed  CryptogramErrorKind = "EncryptionFailed"
	CryptogramErrorUnknown           CryptogramErrorKind = "Unknown"
)

// CryptogramError is the typed error card SDK implementations must return.
type CryptogramError struct {
	Kind CryptogramErrorKind
	Err  error
}

func (e *CryptogramError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cryptogram %s: %v", e.Kind, e.Err)
	}
	return "cryptogram " + string(e.Kind)
}

func (e *CryptogramError) Unwrap() error { return e.Err }

// CryptogramErrorKindOf extracts the kind from err. Errors that are not a
// *CryptogramError report CryptogramErrorUnknown.
func CryptogramErrorKindOf(err error) CryptogramErrorKind {
	var ce *CryptogramError
	if errors.As(err, &ce) && ce.Kind != "" {
		return ce.Kind
	}
	return CryptogramErrorUnknown
}
