package usecase

import (
	"errors"
	"log"

	"cloudpayments_bridge/internal/domain/entities"
	"cloudpayments_bridge/internal/usecase/interfaces"
)

func (b *BridgeUseCase) show3DS(call entities.MethodCall, res interfaces.IResult) {
	var req entities.ChallengeRequest
	var ok bool
	if req.AcsURL, ok = call.StringArgument("acsUrl"); !ok {
		res.Error(entities.MissingParam("acsUrl"))
		return
	}
	if req.TransactionID, ok = call.StringArgument("transactionId"); !ok {
		res.Error(entities.MissingParam("transactionId"))
		return
	}
	if req.PaReq, ok = call.StringArgument("paReq"); !ok {
		res.Error(entities.MissingParam("paReq"))
		return
	}

	if b.ui == nil {
		log.Printf("[bridge][3ds] no active ui transaction_id=%s", req.TransactionID)
		res.Error(entities.NewChannelError(entities.ErrorCodeNoActiveContext, "No active UI context"))
		return
	}

	id, err := b.registry.Begin(entities.FlowKindThreeDS, res)
	if errors.Is(err, ErrFlowInProgress) {
		res.Error(entities.NewChannelError(entities.ErrorCodeFlowInProgress, "3DS challenge is already in progress"))
		return
	}

	listener := &threeDSListener{bridge: b, id: id}
	if err := b.presenter.Present(b.ui, req, listener); err != nil {
		log.Printf("[bridge][3ds] present failed transaction_id=%s err=%v", req.TransactionID, err)
		b.registry.Resolve(entities.FlowKindThreeDS, id, ThreeDSResolution(
			entities.ErrorOutcome(string(entities.ErrorCodeAuthorizationFailed), "authorizationFailed", err.Error()),
		))
		return
	}
	log.Printf("[bridge][3ds] challenge presented transaction_id=%s id=%s", req.TransactionID, id)
}

// threeDSListener forwards the challenge outcome of one flow back to the UI
// thread. Callbacks for a flow that is no longer outstanding are dropped.
type threeDSListener struct {
	bridge *BridgeUseCase
	id     string
}

var _ interfaces.IChallengeListener = (*threeDSListener)(nil)

func (l *threeDSListener) OnAuthorizationCompleted(md, paRes string) {
	l.resolve(entities.SuccessOutcome(map[string]any{"md": md, "paRes": paRes}))
}

func (l *threeDSListener) OnAuthorizationFailed(html *string) {
	l.resolve(entities.ErrorOutcome(string(entities.ErrorCodeAuthorizationFailed), "authorizationFailed", ""))
}

func (l *threeDSListener) OnCancel() {
	l.resolve(entities.CanceledOutcome())
}

func (l *threeDSListener) resolve(o entities.FlowOutcome) {
	l.bridge.exec.Post(func() {
		l.bridge.registry.Resolve(entities.FlowKindThreeDS, l.id, ThreeDSResolution(o))
	})
}
