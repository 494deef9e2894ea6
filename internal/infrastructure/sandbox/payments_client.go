package sandbox

import (
	"encoding/json"
	"errors"
	"log"

	"cloudpayments_bridge/internal/domain/entities"
	"cloudpayments_bridge/internal/usecase/interfaces"
)

var ErrUnsupportedUIContext = errors.New("ui context cannot present surfaces")

// PaymentsClientFactory hands out sandbox wallet clients.
type PaymentsClientFactory struct{}

var _ interfaces.IPaymentsClientFactory = PaymentsClientFactory{}

func (PaymentsClientFactory) CreatePaymentsClient(ui interfaces.IUIContext, env entities.Environment) (interfaces.IPaymentsClient, error) {
	if _, ok := ui.(*Activity); !ok {
		return nil, ErrUnsupportedUIContext
	}
	log.Printf("[sandbox][gpay] client created ui=%s environment=%s", ui.ID(), env)
	return &PaymentsClient{env: env}, nil
}

// PaymentsClient always reports readiness and shows the payment sheet as a
// surface on the activity. The host answers it through an activity result.
type PaymentsClient struct {
	env entities.Environment
}

var _ interfaces.IPaymentsClient = (*PaymentsClient)(nil)

func (c *PaymentsClient) IsReadyToPay(request json.RawMessage, done func(bool, error)) {
	go func() {
		if !json.Valid(request) {
			done(false, errors.New("invalid isReadyToPay request"))
			return
		}
		done(true, nil)
	}()
}

func (c *PaymentsClient) LoadPaymentData(ui interfaces.IUIContext, request json.RawMessage, requestCode int) error {
	a, ok := ui.(*Activity)
	if !ok {
		return ErrUnsupportedUIContext
	}
	a.show(Surface{Kind: SurfacePaymentSheet, RequestCode: requestCode, Request: request})
	log.Printf("[sandbox][gpay] payment sheet shown ui=%s request_code=%d environment=%s", a.ID(), requestCode, c.env)
	return nil
}
