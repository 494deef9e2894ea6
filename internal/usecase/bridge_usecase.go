package usecase

import (
	"log"
	"time"

	"cloudpayments_bridge/internal/domain/entities"
	"cloudpayments_bridge/internal/usecase/interfaces"
)

// Channel method names.
const (
	MethodIsValidNumber           = "isValidNumber"
	MethodIsValidExpiryDate       = "isValidExpiryDate"
	MethodCardCryptogram          = "cardCryptogram"
	MethodShow3DS                 = "show3ds"
	MethodCreatePaymentsClient    = "createPaymentsClient"
	MethodIsGooglePayAvailable    = "isGooglePayAvailable"
	MethodRequestGooglePayPayment = "requestGooglePayPayment"
)

// IBridgeUseCase is the message-channel surface exposed to the application
// shell plus the host lifecycle hooks. Every method is safe to call from any
// goroutine: work is posted to the UI thread.
type IBridgeUseCase interface {
	Dispatch(call entities.MethodCall, result interfaces.IResult)
	Attach(ui interfaces.IUIContext)
	Detach()
	DetachForConfigChanges()
	Reattach(ui interfaces.IUIContext)
	DeliverActivityResult(res entities.ActivityResult) <-chan bool
	Close()
}

// BridgeOptions tunes the async flows.
type BridgeOptions struct {
	ThreeDSTimeout   time.Duration
	GooglePayTimeout time.Duration
	OnFlowResolved   func(entities.FlowRecord)
}

// BridgeUseCase routes channel calls to their handlers and owns the UI-bound
// state: the attached UI context, the payments client and the pending
// registry. That state is only touched from exec.
type BridgeUseCase struct {
	exec      Executor
	card      interfaces.ICardSDK
	clients   interfaces.IPaymentsClientFactory
	requests  interfaces.IPaymentRequestBuilder
	presenter interfaces.IChallengePresenter
	registry  *PendingRegistry

	ui             interfaces.IUIContext
	paymentsClient interfaces.IPaymentsClient
	listening      bool

	handlers map[string]func(entities.MethodCall, interfaces.IResult)
}

var _ IBridgeUseCase = (*BridgeUseCase)(nil)

func NewBridgeUseCase(exec Executor, card interfaces.ICardSDK, clients interfaces.IPaymentsClientFactory, requests interfaces.IPaymentRequestBuilder, presenter interfaces.IChallengePresenter, opts BridgeOptions) *BridgeUseCase {
	b := &BridgeUseCase{
		exec:      exec,
		card:      card,
		clients:   clients,
		requests:  requests,
		presenter: presenter,
	}
	b.registry = NewPendingRegistry(exec, map[entities.FlowKind]time.Duration{
		entities.FlowKindThreeDS:   opts.ThreeDSTimeout,
		entities.FlowKindGooglePay: opts.GooglePayTimeout,
	}, opts.OnFlowResolved)
	b.handlers = map[string]func(entities.MethodCall, interfaces.IResult){
		MethodIsValidNumber: func(call entities.MethodCall, res interfaces.IResult) {
			res.Success(b.isValidNumber(call))
		},
		MethodIsValidExpiryDate: func(call entities.MethodCall, res interfaces.IResult) {
			res.Success(b.isValidExpiryDate(call))
		},
		MethodCardCryptogram: func(call entities.MethodCall, res interfaces.IResult) {
			res.Success(b.cardCryptogram(call))
		},
		MethodShow3DS:                 b.show3DS,
		MethodCreatePaymentsClient:    b.createPaymentsClient,
		MethodIsGooglePayAvailable:    b.isGooglePayAvailable,
		MethodRequestGooglePayPayment: b.requestGooglePayPayment,
	}
	return b
}

// Registry exposes the pending registry for inspection.
func (b *BridgeUseCase) Registry() *PendingRegistry { return b.registry }

// Dispatch routes call to exactly one handler. Unknown methods reply
// NotImplemented.
func (b *BridgeUseCase) Dispatch(call entities.MethodCall, result interfaces.IResult) {
	res := newOnceResult(call.Method, result)
	if !b.exec.Post(func() { b.route(call, res) }) {
		log.Printf("[bridge][router] dispatch rejected method=%s reason=closed", call.Method)
		res.Error(entities.NewChannelError(entities.ErrorCodeBridgeClosed, "bridge closed"))
	}
}

func (b *BridgeUseCase) route(call entities.MethodCall, res interfaces.IResult) {
	h, ok := b.handlers[call.Method]
	if !ok {
		log.Printf("[bridge][router] not implemented method=%q", call.Method)
		res.NotImplemented()
		return
	}
	log.Printf("[bridge][router] dispatch method=%s args=%d", call.Method, len(call.Arguments))
	h(call, res)
}

// Attach binds the UI context and starts listening for activity results.
func (b *BridgeUseCase) Attach(ui interfaces.IUIContext) {
	b.exec.Post(func() { b.attach(ui) })
}

// Reattach is Attach after a configuration change.
func (b *BridgeUseCase) Reattach(ui interfaces.IUIContext) {
	b.exec.Post(func() { b.attach(ui) })
}

// Detach drops the UI context and the payments client bound to it. Pending
// flows stay registered.
func (b *BridgeUseCase) Detach() {
	b.exec.Post(b.detach)
}

// DetachForConfigChanges behaves like Detach.
func (b *BridgeUseCase) DetachForConfigChanges() {
	b.exec.Post(b.detach)
}

func (b *BridgeUseCase) attach(ui interfaces.IUIContext) {
	b.ui = ui
	b.listening = ui != nil
	if ui != nil {
		log.Printf("[bridge][host] attached ui=%s", ui.ID())
	}
}

func (b *BridgeUseCase) detach() {
	if b.ui != nil {
		log.Printf("[bridge][host] detached ui=%s", b.ui.ID())
	}
	b.ui = nil
	b.paymentsClient = nil
	b.listening = false
}

// DeliverActivityResult hands an external activity result to the bridge. The
// returned channel reports whether the bridge consumed it; false means other
// listeners should get a chance.
func (b *BridgeUseCase) DeliverActivityResult(res entities.ActivityResult) <-chan bool {
	handled := make(chan bool, 1)
	if !b.exec.Post(func() { handled <- b.onActivityResult(res) }) {
		handled <- false
	}
	return handled
}

// Close resolves outstanding flows with BridgeClosed. The executor is owned by
// the caller and must be stopped after Close.
func (b *BridgeUseCase) Close() {
	if !b.exec.Post(b.registry.Close) {
		b.registry.Close()
	}
}
