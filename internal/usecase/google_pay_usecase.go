package usecase

import (
	"encoding/json"
	"errors"
	"log"
	"strconv"

	"cloudpayments_bridge/internal/domain/entities"
	"cloudpayments_bridge/internal/usecase/interfaces"
)

func (b *BridgeUseCase) createPaymentsClient(call entities.MethodCall, res interfaces.IResult) {
	raw, _ := call.StringArgument("environment")
	env := entities.ParseEnvironment(raw)

	if b.ui == nil {
		log.Printf("[bridge][gpay] create client without ui environment=%s", env)
		res.Error(entities.NewChannelError(entities.ErrorCodeGooglePay, "Couldn't create Payments Client"))
		return
	}
	client, err := b.clients.CreatePaymentsClient(b.ui, env)
	if err != nil || client == nil {
		log.Printf("[bridge][gpay] create client failed environment=%s err=%v", env, err)
		res.Error(entities.NewChannelError(entities.ErrorCodeGooglePay, "Couldn't create Payments Client"))
		return
	}
	b.paymentsClient = client
	log.Printf("[bridge][gpay] client created environment=%s", env)
	res.Success(nil)
}

// isGooglePayAvailable replies from inside the client's own completion
// callback; the handle never enters the pending registry.
func (b *BridgeUseCase) isGooglePayAvailable(_ entities.MethodCall, res interfaces.IResult) {
	if b.paymentsClient == nil {
		res.Error(entities.NewChannelError(entities.ErrorCodeGooglePay, "Payments Client is not created"))
		return
	}
	request, err := b.requests.IsReadyToPayRequest()
	if err != nil || len(request) == 0 {
		log.Printf("[bridge][gpay] ready-to-pay request build failed err=%v", err)
		res.Error(entities.NewChannelError(entities.ErrorCodeGooglePay, "Google Pay is not available"))
		return
	}
	b.paymentsClient.IsReadyToPay(request, func(ready bool, err error) {
		b.exec.Post(func() {
			if err != nil {
				log.Printf("[bridge][gpay] ready-to-pay failed err=%v", err)
				res.Error(entities.NewChannelError(entities.ErrorCodeGooglePay, err.Error()))
				return
			}
			res.Success(ready)
		})
	})
}

func (b *BridgeUseCase) requestGooglePayPayment(call entities.MethodCall, res interfaces.IResult) {
	var req entities.PaymentRequest
	fields := []struct {
		name string
		dst  *string
	}{
		{"price", &req.Price},
		{"currencyCode", &req.CurrencyCode},
		{"countryCode", &req.CountryCode},
		{"merchantName", &req.MerchantName},
		{"publicId", &req.PublicID},
	}
	for _, f := range fields {
		v, ok := call.StringArgument(f.name)
		if !ok {
			res.Error(entities.MissingParam(f.name))
			return
		}
		*f.dst = v
	}

	request, err := b.requests.PaymentDataRequest(req)
	if err != nil || len(request) == 0 {
		log.Printf("[bridge][gpay] payment data request build failed err=%v", err)
		res.Error(entities.NewChannelError(entities.ErrorCodeRequestPayment, "Can't fetch payment data request"))
		return
	}

	if b.ui == nil || b.paymentsClient == nil {
		log.Printf("[bridge][gpay] cannot start flow ui=%t client=%t", b.ui != nil, b.paymentsClient != nil)
		res.Error(entities.NewChannelError(entities.ErrorCodeRequestPayment, "Cannot start Google Pay flow"))
		return
	}

	id, err := b.registry.Begin(entities.FlowKindGooglePay, res)
	if errors.Is(err, ErrFlowInProgress) {
		res.Error(entities.NewChannelError(entities.ErrorCodeFlowInProgress, "Google Pay flow is already in progress"))
		return
	}

	if err := b.paymentsClient.LoadPaymentData(b.ui, request, entities.LoadPaymentDataRequestCode); err != nil {
		log.Printf("[bridge][gpay] load payment data failed id=%s err=%v", id, err)
		b.registry.Resolve(entities.FlowKindGooglePay, id, failureResolution(
			entities.NewChannelError(entities.ErrorCodeRequestPayment, err.Error()),
		))
		return
	}
	log.Printf("[bridge][gpay] payment sheet requested id=%s currency=%s", id, req.CurrencyCode)
}

// onActivityResult consumes results tagged with the payment correlation code
// and a known result code. Anything else is left to other listeners.
func (b *BridgeUseCase) onActivityResult(ar entities.ActivityResult) bool {
	if !b.listening || ar.RequestCode != entities.LoadPaymentDataRequestCode {
		return false
	}

	var resolution Resolution
	switch ar.ResultCode {
	case entities.ResultCodeOK:
		resolution = paymentDataResolution(ar.Data)
	case entities.ResultCodeCanceled:
		resolution = GooglePayResolution(entities.CanceledOutcome())
	case entities.ResultCodeError:
		if ar.Data == nil || ar.Data.Status == nil {
			resolution = failureResolution(entities.NewChannelError(entities.ErrorCodeRequestPayment, "Status is null"))
		} else {
			s := ar.Data.Status
			resolution = GooglePayResolution(entities.ErrorOutcome(strconv.Itoa(s.Code), s.Message, s.Description))
		}
	default:
		return false
	}

	log.Printf("[bridge][gpay] activity result result_code=%d", ar.ResultCode)
	b.registry.Resolve(entities.FlowKindGooglePay, "", resolution)
	return true
}

func paymentDataResolution(data *entities.ActivityResultData) Resolution {
	if data == nil {
		return failureResolution(entities.NewChannelError(entities.ErrorCodeRequestPayment, "Intent is null"))
	}
	if len(data.PaymentData) == 0 || !json.Valid(data.PaymentData) {
		return failureResolution(entities.NewChannelError(entities.ErrorCodeRequestPayment, "PaymentData is null"))
	}
	var probe map[string]any
	if err := json.Unmarshal(data.PaymentData, &probe); err != nil || probe == nil {
		return failureResolution(entities.NewChannelError(entities.ErrorCodeRequestPayment, "PaymentData is null"))
	}
	return GooglePayResolution(entities.SuccessOutcome(map[string]any{"result": string(data.PaymentData)}))
}
