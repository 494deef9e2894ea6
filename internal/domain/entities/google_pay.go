package entities

import "encoding/json"

// LoadPaymentDataRequestCode tags the activity result produced by the Google
// Pay payment sheet.
const LoadPaymentDataRequestCode = 991

// Activity result codes delivered with an external callback.
const (
	ResultCodeOK       = -1
	ResultCodeCanceled = 0
	ResultCodeError    = 1
)

// PaymentRequest holds the arguments of requestGooglePayPayment.
type PaymentRequest struct {
	Price        string
	CurrencyCode string
	CountryCode  string
	MerchantName string
	PublicID     string
}

// ResultStatus is the structured status attached to a failed payment sheet.
type ResultStatus struct {
	Code        int    `json:"statusCode"`
	Message     string `json:"statusMessage"`
	Description string `json:"description"`
}

// ActivityResultData is the payload of an activity result. Either field may be
// absent depending on the result code.
type ActivityResultData struct {
	PaymentData json.RawMessage `json:"paymentData,omitempty"`
	Status      *ResultStatus   `json:"status,omitempty"`
}

// ActivityResult is one external callback for a correlation code.
type ActivityResult struct {
	RequestCode int                 `json:"requestCode"`
	ResultCode  int                 `json:"resultCode"`
	Data        *ActivityResultData `json:"data,omitempty"`
}
