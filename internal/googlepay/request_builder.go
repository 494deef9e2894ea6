package googlepay

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"

	"cloudpayments_bridge/internal/domain/entities"
	"cloudpayments_bridge/internal/usecase/interfaces"
)

const (
	gatewayName       = "cloudpayments"
	apiVersion        = 2
	apiVersionMinor   = 0
	totalPriceStatus  = "FINAL"
	paymentMethodCard = "CARD"
	tokenizationType  = "PAYMENT_GATEWAY"
)

var (
	ErrInvalidPrice        = errors.New("price must be a decimal string")
	ErrInvalidCurrencyCode = errors.New("currency code must be three letters")
	ErrInvalidCountryCode  = errors.New("country code must be two letters")
	ErrMissingPublicID     = errors.New("public id is required")

	pricePattern = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)

	allowedAuthMethods  = []string{"PAN_ONLY", "CRYPTOGRAM_3DS"}
	allowedCardNetworks = []string{"VISA", "MASTERCARD"}
)

type baseRequest struct {
	APIVersion            int             `json:"apiVersion"`
	APIVersionMinor       int             `json:"apiVersionMinor"`
	AllowedPaymentMethods []paymentMethod `json:"allowedPaymentMethods"`
}

type paymentMethod struct {
	Type                      string            `json:"type"`
	Parameters                cardParameters    `json:"parameters"`
	TokenizationSpecification *tokenizationSpec `json:"tokenizationSpecification,omitempty"`
}

type cardParameters struct {
	AllowedAuthMethods     []string `json:"allowedAuthMethods"`
	AllowedCardNetworks    []string `json:"allowedCardNetworks"`
	BillingAddressRequired bool     `json:"billingAddressRequired"`
}

type tokenizationSpec struct {
	Type       string            `json:"type"`
	Parameters map[string]string `json:"parameters"`
}

type transactionInfo struct {
	TotalPrice       string `json:"totalPrice"`
	TotalPriceStatus string `json:"totalPriceStatus"`
	CurrencyCode     string `json:"currencyCode"`
	CountryCode      string `json:"countryCode"`
}

type merchantInfo struct {
	MerchantName string `json:"merchantName"`
}

type paymentDataRequest struct {
	baseRequest
	TransactionInfo transactionInfo `json:"transactionInfo"`
	MerchantInfo    merchantInfo    `json:"merchantInfo"`
}

// Builder produces Google Pay API v2 request descriptors for the
// CloudPayments gateway.
type Builder struct{}

var _ interfaces.IPaymentRequestBuilder = Builder{}

func NewBuilder() Builder { return Builder{} }

func (Builder) IsReadyToPayRequest() (json.RawMessage, error) {
	return json.Marshal(baseRequest{
		APIVersion:            apiVersion,
		APIVersionMinor:       apiVersionMinor,
		AllowedPaymentMethods: []paymentMethod{baseCardMethod()},
	})
}

func (Builder) PaymentDataRequest(req entities.PaymentRequest) (json.RawMessage, error) {
	if !pricePattern.MatchString(req.Price) {
		return nil, ErrInvalidPrice
	}
	if len(req.CurrencyCode) != 3 {
		return nil, ErrInvalidCurrencyCode
	}
	if len(req.CountryCode) != 2 {
		return nil, ErrInvalidCountryCode
	}
	if strings.TrimSpace(req.PublicID) == "" {
		return nil, ErrMissingPublicID
	}

	card := baseCardMethod()
	card.TokenizationSpecification = &tokenizationSpec{
		Type: tokenizationType,
		Parameters: map[string]string{
			"gateway":           gatewayName,
			"gatewayMerchantId": req.PublicID,
		},
	}
	return json.Marshal(paymentDataRequest{
		baseRequest: baseRequest{
			APIVersion:            apiVersion,
			APIVersionMinor:       apiVersionMinor,
			AllowedPaymentMethods: []paymentMethod{card},
		},
		TransactionInfo: transactionInfo{
			TotalPrice:       req.Price,
			TotalPriceStatus: totalPriceStatus,
			CurrencyCode:     strings.ToUpper(req.CurrencyCode),
			CountryCode:      strings.ToUpper(req.CountryCode),
		},
		MerchantInfo: merchantInfo{MerchantName: req.MerchantName},
	})
}

func baseCardMethod() paymentMethod {
	return paymentMethod{
		Type: paymentMethodCard,
		Parameters: cardParameters{
			AllowedAuthMethods:  allowedAuthMethods,
			AllowedCardNetworks: allowedCardNetworks,
		},
	}
}
