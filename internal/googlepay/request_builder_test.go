package googlepay

import (
	"encoding/json"
	"testing"

	"cloudpayments_bridge/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() entities.PaymentRequest {
	return entities.PaymentRequest{
		Price:        "10.50",
		CurrencyCode: "rub",
		CountryCode:  "ru",
		MerchantName: "Shop",
		PublicID:     "pk_test",
	}
}

func TestBuilder_IsReadyToPayRequest(t *testing.T) {
	raw, err := NewBuilder().IsReadyToPayRequest()
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.EqualValues(t, 2, body["apiVersion"])
	assert.EqualValues(t, 0, body["apiVersionMinor"])

	methods := body["allowedPaymentMethods"].([]any)
	require.Len(t, methods, 1)
	card := methods[0].(map[string]any)
	assert.Equal(t, "CARD", card["type"])
	assert.NotContains(t, card, "tokenizationSpecification")
}

func TestBuilder_PaymentDataRequest(t *testing.T) {
	raw, err := NewBuilder().PaymentDataRequest(validRequest())
	require.NoError(t, err)

	var body struct {
		AllowedPaymentMethods []struct {
			Parameters struct {
				AllowedAuthMethods []string `json:"allowedAuthMethods"`
			} `json:"parameters"`
			TokenizationSpecification struct {
				Type       string            `json:"type"`
				Parameters map[string]string `json:"parameters"`
			} `json:"tokenizationSpecification"`
		} `json:"allowedPaymentMethods"`
		TransactionInfo struct {
			TotalPrice       string `json:"totalPrice"`
			TotalPriceStatus string `json:"totalPriceStatus"`
			CurrencyCode     string `json:"currencyCode"`
			CountryCode      string `json:"countryCode"`
		} `json:"transactionInfo"`
		MerchantInfo struct {
			MerchantName string `json:"merchantName"`
		} `json:"merchantInfo"`
	}
	require.NoError(t, json.Unmarshal(raw, &body))

	require.Len(t, body.AllowedPaymentMethods, 1)
	m := body.AllowedPaymentMethods[0]
	assert.Equal(t, []string{"PAN_ONLY", "CRYPTOGRAM_3DS"}, m.Parameters.AllowedAuthMethods)
	assert.Equal(t, "PAYMENT_GATEWAY", m.TokenizationSpecification.Type)
	assert.Equal(t, "cloudpayments", m.TokenizationSpecification.Parameters["gateway"])
	assert.Equal(t, "pk_test", m.TokenizationSpecification.Parameters["gatewayMerchantId"])
	assert.Equal(t, "10.50", body.TransactionInfo.TotalPrice)
	assert.Equal(t, "FINAL", body.TransactionInfo.TotalPriceStatus)
	assert.Equal(t, "RUB", body.TransactionInfo.CurrencyCode)
	assert.Equal(t, "RU", body.TransactionInfo.CountryCode)
	assert.Equal(t, "Shop", body.MerchantInfo.MerchantName)
}

func TestBuilder_PaymentDataRequest_Invalid(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*entities.PaymentRequest)
		want   error
	}{
		{"price not decimal", func(r *entities.PaymentRequest) { r.Price = "ten" }, ErrInvalidPrice},
		{"price three decimals", func(r *entities.PaymentRequest) { r.Price = "1.005" }, ErrInvalidPrice},
		{"currency", func(r *entities.PaymentRequest) { r.CurrencyCode = "RUBL" }, ErrInvalidCurrencyCode},
		{"country", func(r *entities.PaymentRequest) { r.CountryCode = "RUS" }, ErrInvalidCountryCode},
		{"public id", func(r *entities.PaymentRequest) { r.PublicID = " " }, ErrMissingPublicID},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mutate(&req)
			_, err := NewBuilder().PaymentDataRequest(req)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}
