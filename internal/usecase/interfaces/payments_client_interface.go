package interfaces

import (
	"encoding/json"

	"cloudpayments_bridge/internal/domain/entities"
)

// IPaymentsClientFactory builds a wallet client bound to the attached UI context.
type IPaymentsClientFactory interface {
	CreatePaymentsClient(ui IUIContext, env entities.Environment) (IPaymentsClient, error)
}

// IPaymentsClient abstracts the Google Pay client SDK.
//
// IsReadyToPay completes asynchronously by calling done exactly once, possibly
// from another goroutine. LoadPaymentData starts the OS-mediated payment sheet;
// its outcome arrives later as an activity result tagged with requestCode.
type IPaymentsClient interface {
	IsReadyToPay(request json.RawMessage, done func(ready bool, err error))
	LoadPaymentData(ui IUIContext, request json.RawMessage, requestCode int) error
}

// IPaymentRequestBuilder produces the wallet request descriptors sent to
// IPaymentsClient.
type IPaymentRequestBuilder interface {
	IsReadyToPayRequest() (json.RawMessage, error)
	PaymentDataRequest(req entities.PaymentRequest) (json.RawMessage, error)
}
